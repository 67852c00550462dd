package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/compare"
	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/tui/components"
	"github.com/taxgo/regime-calculator/internal/tui/scenes"
	"github.com/taxgo/regime-calculator/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Rule set
	rulesPath string
	rules     domain.TaxRules

	// Engines
	calcEngine    *calculation.CalculationEngine
	compareEngine *compare.CompareEngine

	// Scene models
	homeModel    *scenes.HomeModel
	compareModel *scenes.CompareModel
	sweepModel   *scenes.SweepModel

	// Loading state
	loading        bool
	loadingMessage string
	spinner        *components.Spinner

	// Error state
	err error
}

// NewModel creates a new application model. An empty rules path uses the
// built-in FY 2025-26 rule set.
func NewModel(rulesPath string) Model {
	return Model{
		currentScene: SceneHome,
		rulesPath:    rulesPath,
		homeModel:    scenes.NewHomeModel(),
		compareModel: scenes.NewCompareModel(),
		sweepModel:   scenes.NewSweepModel(),
		spinner:      components.NewSpinner(),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadRulesCmd(m.rulesPath)
}

// loadRulesCmd returns a command that loads the rule set
func loadRulesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		rules, err := config.LoadOrDefault(path)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		return tuimsg.RulesLoadedMsg{Rules: rules, Path: path}
	}
}

// calculateCmd returns a command that runs one regime comparison
func calculateCmd(engine *calculation.CalculationEngine, scenario domain.Scenario) tea.Cmd {
	return func() tea.Msg {
		run, err := engine.RunComparison(scenario)
		return tuimsg.CalculationCompleteMsg{Run: run, Err: err}
	}
}

// compareCmd returns a command that applies templates to the base scenario
// and compares the outcomes
func compareCmd(engine *compare.CompareEngine, base domain.Scenario, templates []string) tea.Cmd {
	return func() tea.Msg {
		set, err := engine.Compare(context.Background(), base, compare.CompareOptions{
			Templates: templates,
		})
		return tuimsg.ComparisonCompleteMsg{Set: set, Err: err}
	}
}

// sweepCmd returns a command that walks a salary range
func sweepCmd(engine *calculation.CalculationEngine, options calculation.SweepOptions) tea.Cmd {
	return func() tea.Msg {
		points, err := engine.RunSweep(context.Background(), options)
		return tuimsg.SweepCompleteMsg{Points: points, Err: err}
	}
}

// tickCmd schedules the next spinner frame
func tickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneCompare:
		return "Compare"
	case SceneSweep:
		return "Sweep"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
