package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/tui/components"
	"github.com/taxgo/regime-calculator/internal/tui/tuimsg"
	"github.com/taxgo/regime-calculator/internal/tui/tuistyles"
)

// Focusable rows on the home scene, top to bottom.
const (
	homeFocusSalary = iota
	homeFocusMetro
	homeFocusPF
	homeFocusCount
)

const defaultGrossAnnual = 1500000

// HomeModel is the main dashboard: a salary scenario editor with live
// old-vs-new regime results.
type HomeModel struct {
	scenario      domain.Scenario
	run           *domain.ComparisonRun
	financialYear string
	salarySlider  *components.ParameterSlider
	focusIndex    int
	modified      bool
	width         int
	height        int
}

// NewHomeModel creates a new home scene model with the default scenario.
func NewHomeModel() *HomeModel {
	slider := components.NewParameterSlider("Gross Annual Salary (CTC)", defaultGrossAnnual, 300000, 10000000, 50000).
		WithWidth(40).
		WithFormatter(func(v float64) string {
			return tuistyles.FormatCurrency(decimal.NewFromFloat(v))
		}).
		WithDescription("Adjusts in steps of Rs. 50,000")
	slider.SetFocused(true)

	return &HomeModel{
		scenario: domain.Scenario{
			Name:        "base",
			GrossAnnual: decimal.NewFromInt(defaultGrossAnnual),
			IsMetroCity: true,
			PFIncluded:  true,
		},
		salarySlider: slider,
		focusIndex:   homeFocusSalary,
	}
}

// Scenario returns the scenario currently configured on the dashboard.
func (m *HomeModel) Scenario() domain.Scenario {
	return m.scenario
}

// SetRun stores a completed comparison for display.
func (m *HomeModel) SetRun(run *domain.ComparisonRun) {
	m.run = run
	m.modified = false
}

// SetFinancialYear sets the year shown on the scenario card.
func (m *HomeModel) SetFinancialYear(fy string) {
	m.financialYear = fy
}

// SetSize updates the model dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene.
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m *HomeModel) handleKeyPress(msg tea.KeyMsg) (*HomeModel, tea.Cmd) {
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
		return m, m.recalculate()

	case key.Matches(msg, key.NewBinding(key.WithKeys("r"))):
		m.reset()
		return m, m.recalculate()
	}

	return m, nil
}

// moveFocus shifts focus between the salary slider and the two toggles.
func (m *HomeModel) moveFocus(delta int) {
	next := m.focusIndex + delta
	if next < 0 || next >= homeFocusCount {
		return
	}
	m.focusIndex = next
	m.salarySlider.SetFocused(m.focusIndex == homeFocusSalary)
}

// adjust changes the focused control. Left/right adjust the slider and also
// flip the toggles so the arrow keys work on every row.
func (m *HomeModel) adjust(increase bool) {
	switch m.focusIndex {
	case homeFocusSalary:
		if increase {
			m.salarySlider.Increment()
		} else {
			m.salarySlider.Decrement()
		}
		m.scenario.GrossAnnual = decimal.NewFromFloat(m.salarySlider.Value)
		m.modified = true
	default:
		m.toggleFocused()
	}
}

// toggleFocused flips the focused policy toggle.
func (m *HomeModel) toggleFocused() {
	switch m.focusIndex {
	case homeFocusMetro:
		m.scenario.IsMetroCity = !m.scenario.IsMetroCity
		m.modified = true
	case homeFocusPF:
		m.scenario.PFIncluded = !m.scenario.PFIncluded
		m.modified = true
	}
}

// reset restores the default scenario.
func (m *HomeModel) reset() {
	m.scenario = domain.Scenario{
		Name:        "base",
		GrossAnnual: decimal.NewFromInt(defaultGrossAnnual),
		IsMetroCity: true,
		PFIncluded:  true,
	}
	m.salarySlider.SetValue(defaultGrossAnnual)
	m.modified = true
}

// recalculate asks the parent model to rerun the comparison.
func (m *HomeModel) recalculate() tea.Cmd {
	scenario := m.scenario
	return func() tea.Msg {
		return tuimsg.ScenarioChangedMsg{Scenario: scenario}
	}
}

// View renders the home dashboard.
func (m *HomeModel) View() string {
	var content strings.Builder

	content.WriteString(m.renderScenarioCard())
	content.WriteString("\n\n")
	content.WriteString(m.renderControls())
	content.WriteString("\n\n")
	content.WriteString(m.renderResults())
	content.WriteString("\n\n")
	content.WriteString(m.renderTip())

	return content.String()
}

// renderScenarioCard shows the configured scenario at a glance.
func (m *HomeModel) renderScenarioCard() string {
	card := components.NewScenarioCard("Salary Scenario").
		WithSubtitle("FY " + m.financialYear).
		AddHighlight("Gross: " + tuistyles.FormatCurrency(m.scenario.GrossAnnual) + " per annum").
		AddHighlight("City: " + cityLabel(m.scenario.IsMetroCity)).
		AddHighlight("PF: " + pfLabel(m.scenario.PFIncluded)).
		WithWidth(50)

	return card.Render()
}

// renderControls shows the editable parameters.
func (m *HomeModel) renderControls() string {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary)
	content.WriteString(sectionStyle.Render("📋 Parameters"))
	content.WriteString("\n\n")

	content.WriteString(m.salarySlider.Render())
	content.WriteString("\n\n")
	content.WriteString(m.renderToggle(homeFocusMetro, m.scenario.IsMetroCity,
		"Metro city posting", "50% of basic HRA exemption cap instead of 40%"))
	content.WriteString("\n")
	content.WriteString(m.renderToggle(homeFocusPF, m.scenario.PFIncluded,
		"Provident fund in CTC", "12% employee PF counts toward 80C in the Old Regime"))

	if m.modified {
		content.WriteString("\n\n")
		statusStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorInfo).
			Bold(true)
		content.WriteString(statusStyle.Render("⚠ Modified - Press Enter to recalculate"))
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(60)

	return containerStyle.Render(content.String())
}

// renderToggle renders one checkbox row.
func (m *HomeModel) renderToggle(focusTarget int, checked bool, label, hint string) string {
	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	highlightStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorAccent).Bold(true)

	var line strings.Builder

	box := "[ ] "
	if checked {
		box = "[✓] "
	}

	if m.focusIndex == focusTarget {
		line.WriteString(highlightStyle.Render("❯ " + box + label))
	} else {
		line.WriteString("  " + box + label)
	}
	line.WriteString("\n")
	line.WriteString(subtleStyle.Render("      " + hint))

	return line.String()
}

// renderResults shows the comparison outcome as metric cards.
func (m *HomeModel) renderResults() string {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorSecondary)
	content.WriteString(sectionStyle.Render("📊 Regime Comparison"))
	content.WriteString("\n\n")

	if m.run == nil {
		subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
		content.WriteString(subtleStyle.Render("Calculating..."))
		return content.String()
	}

	cheaper := m.run.CheaperRegime()
	inHand := m.run.New.MonthlyInHand
	if cheaper == domain.RegimeOld {
		inHand = m.run.Old.MonthlyInHand
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Old Regime Tax", tuistyles.FormatCurrency(m.run.Old.TotalTax)).
			WithFootnote("taxable " + tuistyles.FormatCompact(m.run.Old.TaxableIncome)),
		components.NewMetricCard("New Regime Tax", tuistyles.FormatCurrency(m.run.New.TotalTax)).
			WithFootnote("taxable " + tuistyles.FormatCompact(m.run.New.TaxableIncome)),
		components.NewMetricCard("Cheaper Regime", string(cheaper)).
			WithTrend(true, "saves "+tuistyles.FormatCurrency(m.run.Savings())),
		components.NewMetricCard("Monthly In-Hand", tuistyles.FormatCurrency(inHand)).
			WithFootnote("under the " + strings.ToLower(string(cheaper))),
	}

	content.WriteString(components.MetricGrid(cards, 2))

	return content.String()
}

// renderTip shows getting started hints.
func (m *HomeModel) renderTip() string {
	subtleStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)

	var content strings.Builder
	content.WriteString(subtleStyle.Render("💡 Tip: Press 'c' to compare what-if scenarios, 's' to sweep a salary range"))
	content.WriteString("\n")
	content.WriteString(subtleStyle.Render("    Press '?' at any time for help"))

	return content.String()
}

// Helper functions

func cityLabel(isMetro bool) string {
	if isMetro {
		return "Metro"
	}
	return "Non-metro"
}

func pfLabel(included bool) string {
	if included {
		return "Included in CTC"
	}
	return "Not part of CTC"
}
