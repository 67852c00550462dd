package domain

import (
	"github.com/shopspring/decimal"
)

// Regime identifies which rule set produced a TaxResult.
type Regime string

const (
	RegimeOld Regime = "Old Regime"
	RegimeNew Regime = "New Regime"
)

// TaxResult is the fully itemized outcome of running one regime's rules over
// a SalaryContext. It is constructed exactly once per computation and carries
// no reference back to the context that produced it.
type TaxResult struct {
	Regime Regime `yaml:"regime" json:"regime"`

	// Deduction breakdown. Fields a regime does not use stay zero.
	HRAExemption      decimal.Decimal `yaml:"hra_exemption" json:"hra_exemption"`
	Deduction80C      decimal.Decimal `yaml:"deduction_80c" json:"deduction_80c"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	TotalDeductions   decimal.Decimal `yaml:"total_deductions" json:"total_deductions"`

	// Tax computation
	TaxableIncome decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	IncomeTax     decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	Surcharge     decimal.Decimal `yaml:"surcharge" json:"surcharge"`
	Cess          decimal.Decimal `yaml:"cess" json:"cess"`
	TotalTax      decimal.Decimal `yaml:"total_tax" json:"total_tax"`

	// In-hand derivation
	NetAnnualIncome decimal.Decimal `yaml:"net_annual_income" json:"net_annual_income"`
	MonthlyInHand   decimal.Decimal `yaml:"monthly_in_hand" json:"monthly_in_hand"`
	MonthlyPF       decimal.Decimal `yaml:"monthly_pf" json:"monthly_pf"`
	MonthlyTotal    decimal.Decimal `yaml:"monthly_total" json:"monthly_total"`
}

// EffectiveTaxRate returns total tax as a fraction of gross salary.
// Returns zero for a zero gross to keep the rate total over all inputs.
func (tr TaxResult) EffectiveTaxRate(gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return tr.TotalTax.Div(gross)
}

// ComparisonRun bundles one salary context with the two regime results it
// produced. Exactly one context feeds exactly two results per run; the
// results never reference each other or the context.
type ComparisonRun struct {
	Context SalaryContext `yaml:"context" json:"context"`
	Old     TaxResult     `yaml:"old" json:"old"`
	New     TaxResult     `yaml:"new" json:"new"`
}

// TaxGap returns old-regime total tax minus new-regime total tax. Positive
// means the new regime is cheaper.
func (cr ComparisonRun) TaxGap() decimal.Decimal {
	return cr.Old.TotalTax.Sub(cr.New.TotalTax)
}

// CheaperRegime names the regime with the lower total tax. Ties go to the
// new regime, which is the default regime since FY 2023-24.
func (cr ComparisonRun) CheaperRegime() Regime {
	if cr.Old.TotalTax.LessThan(cr.New.TotalTax) {
		return RegimeOld
	}
	return RegimeNew
}

// Savings returns the absolute tax difference between the two regimes.
func (cr ComparisonRun) Savings() decimal.Decimal {
	return cr.TaxGap().Abs()
}
