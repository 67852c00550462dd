package tuistyles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Color palette shared by every scene and component.
var (
	ColorPrimary   = lipgloss.Color("#36A3D9")
	ColorSecondary = lipgloss.Color("#8B5CF6")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#22C55E")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#06B6D4")

	ColorBackground = lipgloss.Color("#1E1E2E")
	ColorForeground = lipgloss.Color("#CDD6F4")
	ColorMuted      = lipgloss.Color("#6C7086")
	ColorBorder     = lipgloss.Color("#45475A")

	// Chart series colors: old regime first, new regime second.
	ColorChartLine1 = lipgloss.Color("#F38BA8")
	ColorChartLine2 = lipgloss.Color("#A6E3A1")
	ColorChartLine3 = lipgloss.Color("#F9E2AF")
	ColorChartLine4 = lipgloss.Color("#89B4FA")
)

// Base styles.
var (
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	MetricNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)

	TableHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)
)

// MetricTrendStyle returns the style for a trend indicator.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns the arrow for a trend direction.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "↑"
	}
	return "↓"
}

// FormatCurrency renders a rupee amount with thousands separators for
// display inside TUI widgets.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(0)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := "Rs. " + strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	return out
}

// FormatCompact renders a rupee amount in lakh/crore shorthand for
// narrow table cells and chart axes.
func FormatCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	if abs.GreaterThanOrEqual(decimal.NewFromInt(10000000)) {
		return amount.Div(decimal.NewFromInt(10000000)).StringFixed(2) + " Cr"
	}
	if abs.GreaterThanOrEqual(decimal.NewFromInt(100000)) {
		return amount.Div(decimal.NewFromInt(100000)).StringFixed(2) + " L"
	}
	return amount.StringFixed(0)
}
