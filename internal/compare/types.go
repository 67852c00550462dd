package compare

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Description  string                `json:"description,omitempty"`
	Run          *domain.ComparisonRun `json:"run,omitempty"`

	// Key Metrics
	GrossAnnual      decimal.Decimal `json:"grossAnnual"`
	OldTotalTax      decimal.Decimal `json:"oldTotalTax"`
	NewTotalTax      decimal.Decimal `json:"newTotalTax"`
	CheaperRegime    domain.Regime   `json:"cheaperRegime"`
	PayableTax       decimal.Decimal `json:"payableTax"` // Tax under the cheaper regime
	Savings          decimal.Decimal `json:"savings"`    // What electing the cheaper regime saves
	OldEffectiveRate decimal.Decimal `json:"oldEffectiveRate"`
	NewEffectiveRate decimal.Decimal `json:"newEffectiveRate"`
	MonthlyInHand    decimal.Decimal `json:"monthlyInHand"` // Under the cheaper regime

	// Comparison to Base
	TaxDiffFromBase     decimal.Decimal `json:"taxDiffFromBase"`
	TaxPctFromBase      decimal.Decimal `json:"taxPctFromBase"`
	InHandDiffFromBase  decimal.Decimal `json:"inHandDiffFromBase"`
	SavingsDiffFromBase decimal.Decimal `json:"savingsDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	RulesPath          string             `json:"rulesPath,omitempty"`
}

// MetricsCalculator extracts key metrics from comparison runs
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one run
func (mc *MetricsCalculator) CalculateMetrics(name string, run *domain.ComparisonRun) ComparisonResult {
	gross := run.Context.GrossAnnual
	cheaper := run.CheaperRegime()

	result := ComparisonResult{
		ScenarioName:     name,
		Run:              run,
		GrossAnnual:      gross,
		OldTotalTax:      run.Old.TotalTax,
		NewTotalTax:      run.New.TotalTax,
		CheaperRegime:    cheaper,
		Savings:          run.Savings(),
		OldEffectiveRate: run.Old.EffectiveTaxRate(gross),
		NewEffectiveRate: run.New.EffectiveTaxRate(gross),
	}

	if cheaper == domain.RegimeOld {
		result.PayableTax = run.Old.TotalTax
		result.MonthlyInHand = run.Old.MonthlyInHand
	} else {
		result.PayableTax = run.New.TotalTax
		result.MonthlyInHand = run.New.MonthlyInHand
	}

	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TaxDiffFromBase = scenario.PayableTax.Sub(base.PayableTax)

	if !base.PayableTax.IsZero() {
		scenario.TaxPctFromBase = scenario.TaxDiffFromBase.
			Div(base.PayableTax).
			Mul(decimal.NewFromInt(100))
	}

	scenario.InHandDiffFromBase = scenario.MonthlyInHand.Sub(base.MonthlyInHand)
	scenario.SavingsDiffFromBase = scenario.Savings.Sub(base.Savings)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet, highIncomeThreshold decimal.Decimal) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil {
		return recommendations
	}

	base := compSet.BaseResult

	// Which regime to elect for the base scenario
	if base.Savings.IsZero() {
		recommendations = append(recommendations,
			"Both regimes charge identical tax on the base scenario; the New Regime is the default")
	} else {
		recommendations = append(recommendations,
			"Elect the "+string(base.CheaperRegime)+": it saves Rs. "+base.Savings.StringFixed(0)+
				" over the other regime for the base scenario")
	}

	// Find best alternative by monthly in-hand
	bestInHand := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.MonthlyInHand.GreaterThan(bestInHand.MonthlyInHand) {
			bestInHand = alt
		}
	}

	if bestInHand != base {
		inHandGain := bestInHand.MonthlyInHand.Sub(base.MonthlyInHand)
		recommendations = append(recommendations,
			"Best In-Hand: "+bestInHand.ScenarioName+" adds Rs. "+inHandGain.StringFixed(0)+
				" to the monthly in-hand over the base scenario")
	}

	// Find lowest tax burden
	lowestTax := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.PayableTax.LessThan(lowestTax.PayableTax) {
			lowestTax = alt
		}
	}

	if lowestTax != base {
		taxSavings := base.PayableTax.Sub(lowestTax.PayableTax)
		recommendations = append(recommendations,
			"Lowest Taxes: "+lowestTax.ScenarioName+" pays Rs. "+taxSavings.StringFixed(0)+
				" less tax than the base scenario")
	}

	// High incomes deserve planning beyond a two-regime comparison
	if highIncomeThreshold.IsPositive() && base.GrossAnnual.GreaterThan(highIncomeThreshold) {
		recommendations = append(recommendations,
			"Income is high: it is advisable to consult a CA for detailed tax planning")
	}

	return recommendations
}
