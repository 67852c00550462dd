package tui

import "time"

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneCompare
	SceneSweep
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// TickMsg is sent at regular intervals to animate the loading spinner
type TickMsg time.Time
