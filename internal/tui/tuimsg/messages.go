package tuimsg

import (
	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/compare"
	"github.com/taxgo/regime-calculator/internal/domain"
)

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}

// RulesLoadedMsg signals the tax rule set has been loaded.
type RulesLoadedMsg struct {
	Rules domain.TaxRules
	Path  string
}

// ScenarioChangedMsg signals the active salary scenario has been edited
// and needs recalculating.
type ScenarioChangedMsg struct {
	Scenario domain.Scenario
}

// CalculationCompleteMsg signals a regime comparison has finished.
type CalculationCompleteMsg struct {
	Run *domain.ComparisonRun
	Err error
}

// ComparisonStartedMsg signals a what-if comparison has begun.
type ComparisonStartedMsg struct {
	Templates []string
}

// ComparisonCompleteMsg signals a what-if comparison has finished.
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// SweepStartedMsg signals a salary sweep has begun.
type SweepStartedMsg struct {
	Options calculation.SweepOptions
}

// SweepCompleteMsg signals a salary sweep has finished.
type SweepCompleteMsg struct {
	Points []calculation.SweepPoint
	Err    error
}
