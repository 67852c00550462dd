package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/compare"
	"github.com/taxgo/regime-calculator/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.homeModel.SetSize(msg.Width, msg.Height)
		m.compareModel.SetSize(msg.Width, msg.Height)
		m.sweepModel.SetSize(msg.Width, msg.Height)
		return m, nil

	// Custom messages
	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case TickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinner.Next()
		return m, tickCmd()

	case tuimsg.ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tuimsg.RulesLoadedMsg:
		m.rules = msg.Rules
		m.calcEngine = calculation.NewCalculationEngineWithConfig(msg.Rules)
		m.compareEngine = compare.NewCompareEngine(m.calcEngine)
		m.homeModel.SetFinancialYear(msg.Rules.Metadata.FinancialYear)
		// Compute the default scenario right away
		return m, calculateCmd(m.calcEngine, m.homeModel.Scenario())

	case tuimsg.ScenarioChangedMsg:
		if m.calcEngine == nil {
			return m, nil
		}
		return m, calculateCmd(m.calcEngine, msg.Scenario)

	case tuimsg.CalculationCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.homeModel.SetRun(msg.Run)
		return m, nil

	case tuimsg.ComparisonStartedMsg:
		if m.compareEngine == nil {
			return m, nil
		}
		m.loading = true
		m.loadingMessage = "Comparing scenarios..."
		return m, tea.Batch(
			compareCmd(m.compareEngine, m.homeModel.Scenario(), msg.Templates),
			tickCmd(),
		)

	case tuimsg.ComparisonCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.compareModel.SetResults(msg.Set)
		return m, nil

	case tuimsg.SweepStartedMsg:
		if m.calcEngine == nil {
			return m, nil
		}
		m.loading = true
		m.loadingMessage = "Sweeping the salary range..."
		return m, tea.Batch(
			sweepCmd(m.calcEngine, msg.Options),
			tickCmd(),
		)

	case tuimsg.SweepCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.sweepModel.SetPoints(msg.Points)
		return m, nil
	}

	// Delegate to scene-specific update handlers
	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses an error screen
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	// While a calculation is in flight only quitting is allowed
	if m.loading {
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}

	// Global keyboard shortcuts. Scene-local bindings win where they
	// overlap, hence the current-scene guards.
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, navigateCmd(SceneHelp)
		}

	case "esc":
		if m.currentScene != SceneHome {
			target := SceneHome
			if m.previousScene != m.currentScene {
				target = m.previousScene
			}
			return m, navigateCmd(target)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigateCmd(SceneHome)
		}

	case "c":
		if m.currentScene != SceneCompare {
			return m, navigateCmd(SceneCompare)
		}

	case "s":
		if m.currentScene != SceneSweep {
			return m, navigateCmd(SceneSweep)
		}
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

// navigateCmd returns a command that switches scenes
func navigateCmd(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneHome:
		updatedModel, cmd := m.homeModel.Update(msg)
		m.homeModel = updatedModel
		return m, cmd

	case SceneCompare:
		updatedModel, cmd := m.compareModel.Update(msg)
		m.compareModel = updatedModel
		return m, cmd

	case SceneSweep:
		updatedModel, cmd := m.sweepModel.Update(msg)
		m.sweepModel = updatedModel
		return m, cmd

	case SceneHelp:
		// Help is static text, nothing to update
		return m, nil
	}

	return m, nil
}
