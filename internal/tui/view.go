package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	// Render the current scene
	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneSweep:
		content = m.sweepModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	// Wrap content with app styling and status bar
	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := m.height - 4

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("TaxGo - Income Tax Regime Comparison")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("c", "compare"),
		formatShortcut("s", "sweep"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	// Right-align the assessment year once rules are loaded
	if m.rules.Metadata.FinancialYear != "" {
		yearLabel := SubtitleStyle.Render("FY " + m.rules.Metadata.FinancialYear)
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(yearLabel) - 4
		spacer := strings.Repeat(" ", max(0, width))
		statusText = statusText + spacer + yearLabel
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders the animated loading screen
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(m.spinner.WithMessage(message).Render())

	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err),
	)

	return m.renderApp(content)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
TaxGo - Income Tax Regime Comparison

KEYBOARD SHORTCUTS:
  h        Go to the Home dashboard
  c        Compare what-if scenarios
  s        Sweep a salary range
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

HOME:
  ↑/↓ move between the salary slider and the toggles
  ←/→ adjust the focused control
  Space flips a toggle, Enter recalculates, r resets

COMPARE:
  Space selects templates, Enter runs the comparison
  c clears the selection and results

SWEEP:
  Configure the range, Enter runs the sweep
  r returns from the chart to the range form
`

	return BorderStyle.Render(helpText)
}
