package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxgo/regime-calculator/internal/tui"
)

func main() {
	// Optional rules file path; without one the built-in FY 2025-26
	// rules apply
	rulesPath := ""
	if len(os.Args) > 1 {
		rulesPath = os.Args[1]
	}

	if rulesPath != "" {
		if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
			fmt.Printf("Error: Rules file not found: %s\n", rulesPath)
			os.Exit(1)
		}
	}

	// Create the application model
	model := tui.NewModel(rulesPath)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
