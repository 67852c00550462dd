package scenes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/compare"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/transform"
	"github.com/taxgo/regime-calculator/internal/tui/tuimsg"
	"github.com/taxgo/regime-calculator/internal/tui/tuistyles"
)

// templateEntry pairs a template name with its description for the
// selection list.
type templateEntry struct {
	name        string
	description string
}

// CompareModel is the what-if comparison scene: pick templates, apply them
// to the base scenario and compare the outcomes side by side.
type CompareModel struct {
	templates   []templateEntry
	selected    map[int]bool
	cursorIndex int
	set         *compare.ComparisonSet
	width       int
	height      int
}

// NewCompareModel creates a new compare scene model listing the built-in
// templates.
func NewCompareModel() *CompareModel {
	registry := transform.CreateBuiltInTemplates()
	names := registry.List()
	sort.Strings(names)

	templates := make([]templateEntry, 0, len(names))
	for _, name := range names {
		entry := templateEntry{name: name}
		if t, ok := registry.Get(name); ok {
			entry.description = t.Description
		}
		templates = append(templates, entry)
	}

	return &CompareModel{
		templates: templates,
		selected:  make(map[int]bool),
	}
}

// SetResults stores a completed comparison set for display.
func (m *CompareModel) SetResults(set *compare.ComparisonSet) {
	m.set = set
}

// SetSize updates the model dimensions.
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene.
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.cursorIndex > 0 {
				m.cursorIndex--
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.cursorIndex < len(m.templates)-1 {
				m.cursorIndex++
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys(" ", "x"))):
			m.selected[m.cursorIndex] = !m.selected[m.cursorIndex]
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if len(m.selectedTemplates()) == 0 {
				return m, nil
			}
			return m, m.startComparisonCmd()

		case key.Matches(msg, key.NewBinding(key.WithKeys("c"))):
			m.selected = make(map[int]bool)
			m.set = nil
			return m, nil
		}
	}

	return m, nil
}

// selectedTemplates returns the selected template names in list order.
func (m *CompareModel) selectedTemplates() []string {
	var selected []string
	for idx := 0; idx < len(m.templates); idx++ {
		if m.selected[idx] {
			selected = append(selected, m.templates[idx].name)
		}
	}
	return selected
}

// startComparisonCmd asks the parent model to run the comparison.
func (m *CompareModel) startComparisonCmd() tea.Cmd {
	templates := m.selectedTemplates()
	return func() tea.Msg {
		return tuimsg.ComparisonStartedMsg{Templates: templates}
	}
}

// View renders the compare scene.
func (m *CompareModel) View() string {
	if m.set != nil {
		return m.renderResults()
	}
	return m.renderSelection()
}

// renderSelection shows the template selection list.
func (m *CompareModel) renderSelection() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Compare What-If Scenarios"))
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(subtleStyle.Render(
		"Use ↑/↓ to navigate • Space/x to select • Enter to compare • c to clear",
	))
	content.WriteString("\n\n")

	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary)

	for idx, entry := range m.templates {
		var line strings.Builder

		if idx == m.cursorIndex {
			line.WriteString(cursorStyle.Render("❯ "))
		} else {
			line.WriteString("  ")
		}

		if m.selected[idx] {
			line.WriteString(highlightStyle.Render("[✓] "))
		} else {
			line.WriteString(subtleStyle.Render("[ ] "))
		}

		name := padRight(entry.name, 18)
		if idx == m.cursorIndex {
			name = highlightStyle.Render(name)
		}
		line.WriteString(name)
		line.WriteString(subtleStyle.Render(entry.description))

		content.WriteString(line.String())
		content.WriteString("\n")
	}

	selectedCount := len(m.selectedTemplates())
	content.WriteString("\n")
	successStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	if selectedCount == 0 {
		content.WriteString(subtleStyle.Render("Select at least one template to compare against the base scenario"))
	} else {
		content.WriteString(successStyle.Render(
			fmt.Sprintf("Selected: %d template%s • Press Enter to compare", selectedCount, plural(selectedCount)),
		))
	}

	return tuistyles.BorderStyle.Render(content.String())
}

// renderResults shows the comparison results table and recommendations.
func (m *CompareModel) renderResults() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Scenario Comparison Results"))
	content.WriteString("\n\n")

	content.WriteString(m.renderResultsTable())

	if len(m.set.Recommendations) > 0 {
		content.WriteString("\n")
		sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorSecondary)
		content.WriteString(sectionStyle.Render("Recommendations"))
		content.WriteString("\n")

		recStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)
		for _, rec := range m.set.Recommendations {
			content.WriteString(recStyle.Render("• " + rec))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(subtleStyle.Render("c to start a new comparison • ESC to go back"))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderResultsTable builds the side-by-side results table.
func (m *CompareModel) renderResultsTable() string {
	var table strings.Builder

	results := []compare.ComparisonResult{*m.set.BaseResult}
	results = append(results, m.set.AlternativeResults...)

	// Lowest payable tax wins the star
	best := decimal.Zero
	for i, r := range results {
		if i == 0 || r.PayableTax.LessThan(best) {
			best = r.PayableTax
		}
	}

	nameWidth := 22
	colWidth := 14

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	table.WriteString(headerStyle.Render(padRight("Scenario", nameWidth)))
	for _, col := range []string{"Gross", "Tax Payable", "Regime", "In-Hand/mo", "vs Base"} {
		table.WriteString(" ")
		table.WriteString(headerStyle.Render(padRight(col, colWidth)))
	}
	table.WriteString("\n")
	table.WriteString(strings.Repeat("─", nameWidth+5*(colWidth+1)))
	table.WriteString("\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	successStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	dangerStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorDanger)

	for i, r := range results {
		table.WriteString(padRight(truncate(r.ScenarioName, nameWidth), nameWidth))

		tax := tuistyles.FormatCompact(r.PayableTax)
		if r.PayableTax.Equal(best) {
			tax = successStyle.Render(tax + " ★")
		}

		delta := subtleStyle.Render("base")
		if i > 0 {
			deltaStr := formatDelta(r.TaxDiffFromBase)
			if r.TaxDiffFromBase.IsNegative() {
				delta = successStyle.Render(deltaStr)
			} else if r.TaxDiffFromBase.IsPositive() {
				delta = dangerStyle.Render(deltaStr)
			} else {
				delta = subtleStyle.Render(deltaStr)
			}
		}

		cells := []string{
			tuistyles.FormatCompact(r.GrossAnnual),
			tax,
			regimeShort(r.CheaperRegime),
			tuistyles.FormatCompact(r.MonthlyInHand),
			delta,
		}
		for _, cell := range cells {
			table.WriteString(" ")
			table.WriteString(padRight(cell, colWidth))
		}
		table.WriteString("\n")
	}

	return table.String()
}

// Helper functions

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

func padRight(s string, width int) string {
	// lipgloss.Width accounts for ANSI escape codes
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func formatDelta(d decimal.Decimal) string {
	if d.IsZero() {
		return "±0"
	}
	if d.IsNegative() {
		return "-" + tuistyles.FormatCompact(d.Abs())
	}
	return "+" + tuistyles.FormatCompact(d)
}

func regimeShort(r domain.Regime) string {
	if r == domain.RegimeOld {
		return "Old"
	}
	return "New"
}

