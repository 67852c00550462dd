package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taxgo/regime-calculator/internal/tui/tuistyles"
)

// Spinner is an animated indicator for loading states.
type Spinner struct {
	Frame   int
	Message string
}

// NewSpinner creates a new spinner.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// WithMessage sets the spinner message.
func (s *Spinner) WithMessage(message string) *Spinner {
	s.Message = message
	return s
}

// Next advances the spinner to the next frame.
func (s *Spinner) Next() {
	s.Frame++
}

// Render returns the current spinner frame.
func (s *Spinner) Render() string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := frames[s.Frame%len(frames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)

	rendered := spinnerStyle.Render(frame)

	if s.Message != "" {
		messageStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)
		rendered += " " + messageStyle.Render(s.Message)
	}

	return rendered
}
