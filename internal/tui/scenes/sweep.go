package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/tui/components"
	"github.com/taxgo/regime-calculator/internal/tui/tuimsg"
	"github.com/taxgo/regime-calculator/internal/tui/tuistyles"
)

// Focusable rows on the sweep scene, top to bottom.
const (
	sweepFocusFrom = iota
	sweepFocusTo
	sweepFocusStep
	sweepFocusMetro
	sweepFocusPF
	sweepFocusCount
)

// SweepModel is the salary sweep scene: walk a salary range and chart where
// the cheaper regime flips.
type SweepModel struct {
	fromSlider *components.ParameterSlider
	toSlider   *components.ParameterSlider
	stepSlider *components.ParameterSlider
	metro      bool
	pf         bool
	focusIndex int
	points     []calculation.SweepPoint
	width      int
	height     int
}

// NewSweepModel creates a new sweep scene model with a range that brackets
// the typical crossover.
func NewSweepModel() *SweepModel {
	rupees := func(v float64) string {
		return tuistyles.FormatCurrency(decimal.NewFromFloat(v))
	}

	fromSlider := components.NewParameterSlider("From", 1000000, 300000, 10000000, 100000).
		WithWidth(36).
		WithFormatter(rupees)
	fromSlider.SetFocused(true)

	toSlider := components.NewParameterSlider("To", 4000000, 500000, 20000000, 100000).
		WithWidth(36).
		WithFormatter(rupees)

	stepSlider := components.NewParameterSlider("Step", 250000, 50000, 1000000, 50000).
		WithWidth(36).
		WithFormatter(rupees)

	return &SweepModel{
		fromSlider: fromSlider,
		toSlider:   toSlider,
		stepSlider: stepSlider,
		metro:      true,
		pf:         true,
	}
}

// Options returns the sweep options currently configured.
func (m *SweepModel) Options() calculation.SweepOptions {
	return calculation.SweepOptions{
		From:        decimal.NewFromFloat(m.fromSlider.Value),
		To:          decimal.NewFromFloat(m.toSlider.Value),
		Step:        decimal.NewFromFloat(m.stepSlider.Value),
		IsMetroCity: m.metro,
		PFIncluded:  m.pf,
	}
}

// SetPoints stores completed sweep results for display.
func (m *SweepModel) SetPoints(points []calculation.SweepPoint) {
	m.points = points
}

// SetSize updates the model dimensions.
func (m *SweepModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the sweep scene.
func (m *SweepModel) Update(msg tea.Msg) (*SweepModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *SweepModel) handleKeyPress(msg tea.KeyMsg) (*SweepModel, tea.Cmd) {
	// Results view only offers a way back to the range form
	if len(m.points) > 0 {
		if key.Matches(msg, key.NewBinding(key.WithKeys("r"))) {
			m.points = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("left"))):
		m.adjust(false)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("right"))):
		m.adjust(true)
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys(" ", "x"))):
		m.toggleFocused()
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.startSweepCmd()
	}

	return m, nil
}

// moveFocus shifts focus between the three sliders and the two toggles.
func (m *SweepModel) moveFocus(delta int) {
	next := m.focusIndex + delta
	if next < 0 || next >= sweepFocusCount {
		return
	}
	m.focusIndex = next
	m.fromSlider.SetFocused(m.focusIndex == sweepFocusFrom)
	m.toSlider.SetFocused(m.focusIndex == sweepFocusTo)
	m.stepSlider.SetFocused(m.focusIndex == sweepFocusStep)
}

// adjust changes the focused control.
func (m *SweepModel) adjust(increase bool) {
	slider := m.focusedSlider()
	if slider == nil {
		m.toggleFocused()
		return
	}
	if increase {
		slider.Increment()
	} else {
		slider.Decrement()
	}
}

// focusedSlider returns the slider under focus, nil for the toggles.
func (m *SweepModel) focusedSlider() *components.ParameterSlider {
	switch m.focusIndex {
	case sweepFocusFrom:
		return m.fromSlider
	case sweepFocusTo:
		return m.toSlider
	case sweepFocusStep:
		return m.stepSlider
	}
	return nil
}

// toggleFocused flips the focused policy toggle.
func (m *SweepModel) toggleFocused() {
	switch m.focusIndex {
	case sweepFocusMetro:
		m.metro = !m.metro
	case sweepFocusPF:
		m.pf = !m.pf
	}
}

// startSweepCmd asks the parent model to run the sweep.
func (m *SweepModel) startSweepCmd() tea.Cmd {
	options := m.Options()
	return func() tea.Msg {
		return tuimsg.SweepStartedMsg{Options: options}
	}
}

// View renders the sweep scene.
func (m *SweepModel) View() string {
	if len(m.points) > 0 {
		return m.renderChart()
	}
	return m.renderForm()
}

// renderForm shows the range configuration.
func (m *SweepModel) renderForm() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render("Salary Sweep"))
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(subtleStyle.Render(
		"Walk a salary range and chart where the cheaper regime flips",
	))
	content.WriteString("\n\n")

	var form strings.Builder
	form.WriteString(m.fromSlider.Render())
	form.WriteString("\n\n")
	form.WriteString(m.toSlider.Render())
	form.WriteString("\n\n")
	form.WriteString(m.stepSlider.Render())
	form.WriteString("\n\n")
	form.WriteString(m.renderToggle(sweepFocusMetro, m.metro, "Metro city posting"))
	form.WriteString("\n")
	form.WriteString(m.renderToggle(sweepFocusPF, m.pf, "Provident fund in CTC"))

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(56)
	content.WriteString(containerStyle.Render(form.String()))

	content.WriteString("\n\n")
	content.WriteString(subtleStyle.Render("Press Enter to run the sweep"))

	return content.String()
}

// renderToggle renders one checkbox row.
func (m *SweepModel) renderToggle(focusTarget int, checked bool, label string) string {
	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Bold(true)

	box := "[ ] "
	if checked {
		box = "[✓] "
	}

	if m.focusIndex == focusTarget {
		return highlightStyle.Render("❯ " + box + label)
	}
	return "  " + box + label
}

// renderChart shows the sweep results as a two-line chart.
func (m *SweepModel) renderChart() string {
	var content strings.Builder

	oldSeries := make([]float64, len(m.points))
	newSeries := make([]float64, len(m.points))
	labels := make([]string, len(m.points))
	for i, p := range m.points {
		oldSeries[i] = p.OldTotalTax.InexactFloat64()
		newSeries[i] = p.NewTotalTax.InexactFloat64()
		labels[i] = tuistyles.FormatCompact(p.GrossAnnual)
	}

	chart := components.NewASCIIChart("Total Tax by Gross Salary").
		AddSeries("Old Regime", oldSeries, tuistyles.ColorChartLine1).
		AddSeries("New Regime", newSeries, tuistyles.ColorChartLine2).
		WithLabels(labels).
		WithSize(70, 16).
		WithAxisLabel("Gross annual salary")

	if flip := m.firstCrossover(); flip > 0 {
		chart = chart.WithMarker(flip, fmt.Sprintf(
			"cheaper regime flips between %s and %s",
			tuistyles.FormatCurrency(m.points[flip-1].GrossAnnual),
			tuistyles.FormatCurrency(m.points[flip].GrossAnnual),
		))
	}

	content.WriteString(chart.Render())
	content.WriteString("\n\n")
	content.WriteString(m.renderSummary())
	content.WriteString("\n\n")

	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(subtleStyle.Render("r to adjust the range • ESC to go back"))

	return content.String()
}

// firstCrossover returns the first index where the cheaper regime differs
// from the previous point, 0 when none.
func (m *SweepModel) firstCrossover() int {
	for i := 1; i < len(m.points); i++ {
		if m.points[i].Cheaper != m.points[i-1].Cheaper {
			return i
		}
	}
	return 0
}

// renderSummary states the verdict over the swept range.
func (m *SweepModel) renderSummary() string {
	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	successStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)

	var content strings.Builder
	content.WriteString(subtleStyle.Render(fmt.Sprintf(
		"%d points from %s to %s",
		len(m.points),
		tuistyles.FormatCurrency(m.points[0].GrossAnnual),
		tuistyles.FormatCurrency(m.points[len(m.points)-1].GrossAnnual),
	)))
	content.WriteString("\n")

	if flip := m.firstCrossover(); flip > 0 {
		content.WriteString(successStyle.Render(fmt.Sprintf(
			"The %s wins below the flip, the %s above it",
			m.points[0].Cheaper, m.points[len(m.points)-1].Cheaper,
		)))
	} else {
		content.WriteString(successStyle.Render(fmt.Sprintf(
			"The %s is cheaper across the entire range", m.points[0].Cheaper,
		)))
	}

	return content.String()
}
