package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// CalculationEngine orchestrates a full regime comparison: decompose the
// salary once, then run each regime's calculator over the same context.
type CalculationEngine struct {
	Rules      domain.TaxRules
	Decomposer *SalaryDecomposer
	OldRegime  *RegimeCalculator
	NewRegime  *RegimeCalculator
	Logger     Logger
}

// NewCalculationEngine creates an engine with the built-in FY 2025-26 rules.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(domain.DefaultTaxRules2025())
}

// NewCalculationEngineWithConfig creates an engine over a configurable rule
// set, typically one loaded from a rules file for another assessment year.
func NewCalculationEngineWithConfig(rules domain.TaxRules) *CalculationEngine {
	return &CalculationEngine{
		Rules:      rules,
		Decomposer: NewSalaryDecomposer(rules.Salary),
		OldRegime:  NewRegimeCalculator(rules.OldRegime, rules.SurchargeBands, rules.CessRate),
		NewRegime:  NewRegimeCalculator(rules.NewRegime, rules.SurchargeBands, rules.CessRate),
		Logger:     NopLogger{},
	}
}

// SetLogger installs a logger on the engine. A nil logger resets to the
// silent default.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunComparison decomposes the scenario's salary and computes both regime
// results. The only error condition is a negative gross salary.
func (ce *CalculationEngine) RunComparison(scenario domain.Scenario) (*domain.ComparisonRun, error) {
	sc, err := ce.Decomposer.Decompose(scenario.GrossAnnual, scenario.IsMetroCity, scenario.PFIncluded)
	if err != nil {
		return nil, fmt.Errorf("decomposing salary: %w", err)
	}

	ce.Logger.Debugf("decomposed gross %s: basic=%s hra=%s pf=%s",
		sc.GrossAnnual.StringFixed(0), sc.Basic.StringFixed(0),
		sc.HRAReceived.StringFixed(0), sc.TotalPF.StringFixed(0))

	run := &domain.ComparisonRun{
		Context: sc,
		Old:     ce.OldRegime.Compute(sc),
		New:     ce.NewRegime.Compute(sc),
	}

	ce.Logger.Debugf("comparison for gross %s: old=%s new=%s cheaper=%s",
		sc.GrossAnnual.StringFixed(0), run.Old.TotalTax.StringFixed(0),
		run.New.TotalTax.StringFixed(0), run.CheaperRegime())

	return run, nil
}

// TaxGapAt computes old minus new total tax for a gross salary, reusing the
// scenario's policy flags. The crossover solver drives this.
func (ce *CalculationEngine) TaxGapAt(gross decimal.Decimal, isMetroCity, pfIncluded bool) (decimal.Decimal, error) {
	run, err := ce.RunComparison(domain.Scenario{
		GrossAnnual: gross,
		IsMetroCity: isMetroCity,
		PFIncluded:  pfIncluded,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return run.TaxGap(), nil
}
