package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taxgo/regime-calculator/internal/tui/tuistyles"
)

// ScenarioCard displays a compact salary scenario overview.
type ScenarioCard struct {
	Name       string
	Subtitle   string
	Highlights []string // key parameters, one per line
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a new scenario card.
func NewScenarioCard(name string) *ScenarioCard {
	return &ScenarioCard{
		Name:       name,
		Highlights: []string{},
		Width:      50,
	}
}

// WithSubtitle sets the secondary line under the title.
func (s *ScenarioCard) WithSubtitle(subtitle string) *ScenarioCard {
	s.Subtitle = subtitle
	return s
}

// AddHighlight adds a key parameter line.
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as selected.
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width.
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the styled scenario card.
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(s.Name))
	content.WriteString("\n")

	if s.Subtitle != "" {
		subtitleStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(subtitleStyle.Render(s.Subtitle))
		content.WriteString("\n")
	}

	if len(s.Highlights) > 0 {
		content.WriteString("\n")
		highlightStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted)
		for _, h := range s.Highlights {
			content.WriteString(highlightStyle.Render("• " + h))
			content.WriteString("\n")
		}
	}

	borderColor := tuistyles.ColorBorder
	if s.IsSelected {
		borderColor = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(s.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a compact single-line version.
func (s *ScenarioCard) RenderCompact() string {
	var parts []string

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	parts = append(parts, nameStyle.Render(s.Name))

	if s.Subtitle != "" {
		subtitleStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted)
		parts = append(parts, subtitleStyle.Render("("+s.Subtitle+")"))
	}

	if len(s.Highlights) > 0 {
		highlightStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted)
		parts = append(parts, highlightStyle.Render("• "+s.Highlights[0]))
	}

	return strings.Join(parts, " ")
}
