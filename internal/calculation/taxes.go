package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Slab tables: FY 2025-26 figures for both regimes
//    - Old regime: 4 bands, rebate below 5,00,000 taxable
//    - New regime: 7 bands, rebate below 12,00,000 taxable
//    - Band upper bounds are inclusive
//
// 2. Rebate (Section 87A): all-or-nothing. Taxable income at or below the
//    limit pays zero tax; one rupee above pays the full slab schedule.
//    The resulting cliff is statutory, not smoothed here.
//
// 3. Old-regime deductions: HRA exemption equals the full allowance
//    received (no least-of-three test), Section 80C capped at 1,50,000,
//    standard deduction 50,000, plus a flat 50,000 under Section 80D
//    applied whether or not a premium was paid.
//
// 4. Surcharge: tiered on taxable income, same tiers for both regimes up
//    to 5 crore; above that the old regime pays 37% and the new regime is
//    capped at 25%. No marginal relief at tier boundaries.
//
// 5. Health and education cess: 4% of tax plus surcharge.

// RegimeCalculator computes a full tax result under one regime's rule set.
// Two instances exist per comparison run, one per regime; each is pure and
// carries no state beyond its immutable rules.
type RegimeCalculator struct {
	Rules          domain.RegimeRules
	SurchargeBands []domain.SurchargeBand
	CessRate       decimal.Decimal
}

// NewOldRegimeCalculator2025 creates an old-regime calculator with the
// FY 2025-26 rule set.
func NewOldRegimeCalculator2025() *RegimeCalculator {
	rules := domain.DefaultTaxRules2025()
	return NewRegimeCalculator(rules.OldRegime, rules.SurchargeBands, rules.CessRate)
}

// NewNewRegimeCalculator2025 creates a new-regime calculator with the
// FY 2025-26 rule set.
func NewNewRegimeCalculator2025() *RegimeCalculator {
	rules := domain.DefaultTaxRules2025()
	return NewRegimeCalculator(rules.NewRegime, rules.SurchargeBands, rules.CessRate)
}

// NewRegimeCalculator creates a calculator over a configurable rule set.
func NewRegimeCalculator(rules domain.RegimeRules, surchargeBands []domain.SurchargeBand, cessRate decimal.Decimal) *RegimeCalculator {
	return &RegimeCalculator{
		Rules:          rules,
		SurchargeBands: surchargeBands,
		CessRate:       cessRate,
	}
}

// Compute runs the regime's rules over a salary context and returns the
// itemized result. It is a total function for any context with non-negative
// gross: taxable income is clamped at zero before the slab lookup, so no
// band match can fail.
func (rc *RegimeCalculator) Compute(sc domain.SalaryContext) domain.TaxResult {
	hra, c80, std, totalDeductions := rc.computeDeductions(sc)

	taxableIncome := sc.GrossAnnual.Sub(totalDeductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	var incomeTax decimal.Decimal
	if taxableIncome.GreaterThan(rc.Rules.RebateLimit) {
		incomeTax = rc.slabTax(taxableIncome)
	}

	surcharge := rc.computeSurcharge(taxableIncome, incomeTax)
	cess := incomeTax.Add(surcharge).Mul(rc.CessRate)
	totalTax := incomeTax.Add(surcharge).Add(cess)

	twelve := decimal.NewFromInt(12)
	cashSalary := sc.GrossAnnual.Sub(sc.TotalPF).Sub(totalTax)
	monthlyInHand := cashSalary.Div(twelve)
	monthlyPF := sc.TotalPF.Div(twelve)

	return domain.TaxResult{
		Regime:            rc.Rules.Name,
		HRAExemption:      hra,
		Deduction80C:      c80,
		StandardDeduction: std,
		TotalDeductions:   totalDeductions,
		TaxableIncome:     taxableIncome,
		IncomeTax:         incomeTax,
		Surcharge:         surcharge,
		Cess:              cess,
		TotalTax:          totalTax,
		NetAnnualIncome:   sc.GrossAnnual.Sub(totalTax),
		MonthlyInHand:     monthlyInHand,
		MonthlyPF:         monthlyPF,
		MonthlyTotal:      monthlyInHand.Add(monthlyPF),
	}
}

// computeDeductions itemizes the regime's deductions against the context.
// Disabled deductions stay zero, which is how the new regime reduces to the
// standard deduction alone.
func (rc *RegimeCalculator) computeDeductions(sc domain.SalaryContext) (hra, c80, std, total decimal.Decimal) {
	if rc.Rules.AllowHRAExemption {
		hra = sc.HRAReceived
	}
	if rc.Rules.Section80CLimit.GreaterThan(decimal.Zero) {
		c80 = decimal.Min(sc.PFEmployee, rc.Rules.Section80CLimit)
	}
	std = rc.Rules.StandardDeduction

	total = hra.Add(c80).Add(std).Add(rc.Rules.Section80DAmount)
	return hra, c80, std, total
}

// slabTax evaluates the marginal schedule by matching the single band that
// contains the taxable income. Each band's Base already embeds the tax of
// all lower bands.
func (rc *RegimeCalculator) slabTax(taxableIncome decimal.Decimal) decimal.Decimal {
	for _, slab := range rc.Rules.Slabs {
		if slab.Unbounded() || taxableIncome.LessThanOrEqual(slab.UpTo) {
			return slab.Base.Add(taxableIncome.Sub(slab.Over).Mul(slab.Rate))
		}
	}
	return decimal.Zero
}

// computeSurcharge applies the tiered surcharge schedule to the tax payable.
// Taxable income above the last shared band is charged at the regime's own
// top rate, which is where the two regimes differ.
func (rc *RegimeCalculator) computeSurcharge(taxableIncome, taxPayable decimal.Decimal) decimal.Decimal {
	for _, band := range rc.SurchargeBands {
		if taxableIncome.LessThanOrEqual(band.UpTo) {
			return taxPayable.Mul(band.Rate)
		}
	}
	return taxPayable.Mul(rc.Rules.SurchargeTopRate)
}
