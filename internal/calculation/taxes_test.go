package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/regime-calculator/internal/domain"
)

func mustDecompose(t *testing.T, gross int64, isMetro, pfIncluded bool) domain.SalaryContext {
	t.Helper()
	sc, err := NewSalaryDecomposer2025().Decompose(decimal.NewFromInt(gross), isMetro, pfIncluded)
	assert.NoError(t, err)
	return sc
}

func TestOldRegime_ConcreteScenario(t *testing.T) {
	// Gross 15,00,000, metro, PF included.
	calc := NewOldRegimeCalculator2025()
	sc := mustDecompose(t, 1500000, true, true)

	result := calc.Compute(sc)

	assert.Equal(t, domain.RegimeOld, result.Regime)
	assert.True(t, decimal.NewFromInt(375000).Equal(result.HRAExemption), "hra exemption: got %s", result.HRAExemption)
	assert.True(t, decimal.NewFromInt(90000).Equal(result.Deduction80C), "80c: got %s", result.Deduction80C) // pf 90000 below the 150000 cap
	assert.True(t, decimal.NewFromInt(50000).Equal(result.StandardDeduction))
	// 375000 + 90000 + 50000 + 50000 (flat 80d)
	assert.True(t, decimal.NewFromInt(565000).Equal(result.TotalDeductions), "deductions: got %s", result.TotalDeductions)
	assert.True(t, decimal.NewFromInt(935000).Equal(result.TaxableIncome), "taxable: got %s", result.TaxableIncome)
	// 12500 + 20% of (935000 - 500000) = 12500 + 87000
	assert.True(t, decimal.NewFromInt(99500).Equal(result.IncomeTax), "income tax: got %s", result.IncomeTax)
	assert.True(t, result.Surcharge.IsZero(), "surcharge below 50L taxable: got %s", result.Surcharge)
	// 99500 * 0.04
	assert.True(t, decimal.NewFromInt(3980).Equal(result.Cess), "cess: got %s", result.Cess)
	assert.True(t, decimal.NewFromInt(103480).Equal(result.TotalTax), "total tax: got %s", result.TotalTax)

	assert.True(t, decimal.NewFromInt(1396520).Equal(result.NetAnnualIncome)) // 1500000 - 103480
	assert.True(t, decimal.NewFromInt(15000).Equal(result.MonthlyPF))         // 180000 / 12
}

func TestNewRegime_ConcreteScenario(t *testing.T) {
	// Same gross 15,00,000; the new regime only grants the standard deduction.
	calc := NewNewRegimeCalculator2025()
	sc := mustDecompose(t, 1500000, true, true)

	result := calc.Compute(sc)

	assert.Equal(t, domain.RegimeNew, result.Regime)
	assert.True(t, result.HRAExemption.IsZero())
	assert.True(t, result.Deduction80C.IsZero())
	assert.True(t, decimal.NewFromInt(75000).Equal(result.StandardDeduction))
	assert.True(t, decimal.NewFromInt(75000).Equal(result.TotalDeductions))
	assert.True(t, decimal.NewFromInt(1425000).Equal(result.TaxableIncome))
	// 60000 + 15% of (1425000 - 1200000) = 60000 + 33750
	assert.True(t, decimal.NewFromInt(93750).Equal(result.IncomeTax), "income tax: got %s", result.IncomeTax)
	assert.True(t, result.Surcharge.IsZero())
	assert.True(t, decimal.NewFromInt(3750).Equal(result.Cess))
	assert.True(t, decimal.NewFromInt(97500).Equal(result.TotalTax))

	// 1500000 - 180000 - 97500 = 1222500, split over 12 months
	assert.True(t, decimal.NewFromInt(101875).Equal(result.MonthlyInHand), "monthly in-hand: got %s", result.MonthlyInHand)
	assert.True(t, decimal.NewFromInt(116875).Equal(result.MonthlyTotal))
}

func TestRebateCliff_OldRegime(t *testing.T) {
	// Non-metro, no PF: deductions are 40% of basic plus 100000 flat, so
	// gross 750000 lands taxable income exactly on the 500000 rebate limit.
	calc := NewOldRegimeCalculator2025()

	atLimit := calc.Compute(mustDecompose(t, 750000, false, false))
	assert.True(t, decimal.NewFromInt(500000).Equal(atLimit.TaxableIncome), "taxable: got %s", atLimit.TaxableIncome)
	assert.True(t, atLimit.IncomeTax.IsZero(), "at the rebate limit tax must be zero")
	assert.True(t, atLimit.TotalTax.IsZero())

	justAbove := calc.Compute(mustDecompose(t, 750001, false, false))
	assert.True(t, decimal.RequireFromString("500000.8").Equal(justAbove.TaxableIncome), "taxable: got %s", justAbove.TaxableIncome)
	// Full schedule, no smoothing: 12500 + 20% of 0.8
	assert.True(t, decimal.RequireFromString("12500.16").Equal(justAbove.IncomeTax), "income tax: got %s", justAbove.IncomeTax)
}

func TestRebateCliff_NewRegime(t *testing.T) {
	// New-regime deductions are a constant 75000, so gross 1275000 lands
	// taxable income exactly on the 1200000 rebate limit.
	calc := NewNewRegimeCalculator2025()

	atLimit := calc.Compute(mustDecompose(t, 1275000, true, true))
	assert.True(t, decimal.NewFromInt(1200000).Equal(atLimit.TaxableIncome))
	assert.True(t, atLimit.IncomeTax.IsZero(), "at the rebate limit tax must be zero")

	justAbove := calc.Compute(mustDecompose(t, 1275001, true, true))
	assert.True(t, decimal.NewFromInt(1200001).Equal(justAbove.TaxableIncome))
	// 60000 + 15% of 1 = 60000.15: the cliff jumps straight to the full schedule
	assert.True(t, decimal.RequireFromString("60000.15").Equal(justAbove.IncomeTax), "income tax: got %s", justAbove.IncomeTax)
}

func TestSlabTax_MatchesSchedule(t *testing.T) {
	oldCalc := NewOldRegimeCalculator2025()
	newCalc := NewNewRegimeCalculator2025()

	tests := []struct {
		name     string
		calc     *RegimeCalculator
		taxable  decimal.Decimal
		expected decimal.Decimal
	}{
		{"old: inside zero band", oldCalc, decimal.NewFromInt(200000), decimal.Zero},
		{"old: 5% band boundary", oldCalc, decimal.NewFromInt(500000), decimal.NewFromInt(12500)},   // 5% of 250000
		{"old: 20% band", oldCalc, decimal.NewFromInt(800000), decimal.NewFromInt(72500)},           // 12500 + 20% of 300000
		{"old: top band", oldCalc, decimal.NewFromInt(2000000), decimal.NewFromInt(412500)},         // 112500 + 30% of 1000000
		{"new: inside zero band", newCalc, decimal.NewFromInt(350000), decimal.Zero},
		{"new: 5% band boundary", newCalc, decimal.NewFromInt(800000), decimal.NewFromInt(20000)},   // 5% of 400000
		{"new: 10% band", newCalc, decimal.NewFromInt(1000000), decimal.NewFromInt(40000)},          // 20000 + 10% of 200000
		{"new: 20% band", newCalc, decimal.NewFromInt(1800000), decimal.NewFromInt(160000)},         // 120000 + 20% of 200000
		{"new: top band", newCalc, decimal.NewFromInt(3000000), decimal.NewFromInt(480000)},         // 300000 + 30% of 600000
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.calc.slabTax(tt.taxable)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestSlabTax_MonotonicWithinAndAcrossBands(t *testing.T) {
	// Marginal schedules never decrease, and inside a band the increase is
	// linear at the band rate.
	for _, calc := range []*RegimeCalculator{NewOldRegimeCalculator2025(), NewNewRegimeCalculator2025()} {
		prev := decimal.Zero
		prevTax := calc.slabTax(prev)
		step := decimal.NewFromInt(50000)
		for i := 0; i < 200; i++ { // 0 to 1 crore
			next := prev.Add(step)
			nextTax := calc.slabTax(next)
			assert.True(t, nextTax.GreaterThanOrEqual(prevTax),
				"%s: tax decreased from %s at %s to %s at %s", calc.Rules.Name, prevTax, prev, nextTax, next)
			prev, prevTax = next, nextTax
		}
	}
}

func TestSurcharge_Bands(t *testing.T) {
	calc := NewOldRegimeCalculator2025()
	tax := decimal.NewFromInt(1000000)

	tests := []struct {
		name     string
		taxable  decimal.Decimal
		expected decimal.Decimal
	}{
		{"below first threshold", decimal.NewFromInt(4000000), decimal.Zero},
		{"exactly 50 lakh", decimal.NewFromInt(5000000), decimal.Zero}, // inclusive bound
		{"just above 50 lakh", decimal.NewFromInt(5000001), decimal.NewFromInt(100000)},
		{"exactly 1 crore", decimal.NewFromInt(10000000), decimal.NewFromInt(100000)},
		{"above 1 crore", decimal.NewFromInt(10000001), decimal.NewFromInt(150000)},
		{"above 2 crore", decimal.NewFromInt(20000001), decimal.NewFromInt(250000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.computeSurcharge(tt.taxable, tax)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestSurcharge_TopRateAsymmetry(t *testing.T) {
	// Above 5 crore taxable the old regime pays 37% while the new regime is
	// capped at 25%. Same tax payable, same taxable income, different rates.
	oldCalc := NewOldRegimeCalculator2025()
	newCalc := NewNewRegimeCalculator2025()

	taxable := decimal.NewFromInt(60000000)
	tax := decimal.NewFromInt(1000000)

	oldSurcharge := oldCalc.computeSurcharge(taxable, tax)
	newSurcharge := newCalc.computeSurcharge(taxable, tax)

	assert.True(t, decimal.NewFromInt(370000).Equal(oldSurcharge), "old: got %s", oldSurcharge)
	assert.True(t, decimal.NewFromInt(250000).Equal(newSurcharge), "new: got %s", newSurcharge)
}

func TestCompute_TotalsAddUp(t *testing.T) {
	// TotalTax and MonthlyTotal are exact sums of their parts for any input.
	grosses := []int64{0, 300000, 750000, 1275000, 1500000, 2500000, 7500000, 15000000, 60000000, 120000000}

	for _, calc := range []*RegimeCalculator{NewOldRegimeCalculator2025(), NewNewRegimeCalculator2025()} {
		for _, gross := range grosses {
			sc := mustDecompose(t, gross, true, true)
			result := calc.Compute(sc)

			sum := result.IncomeTax.Add(result.Surcharge).Add(result.Cess)
			assert.True(t, result.TotalTax.Equal(sum),
				"%s at %d: total %s != parts %s", calc.Rules.Name, gross, result.TotalTax, sum)

			monthly := result.MonthlyInHand.Add(result.MonthlyPF)
			assert.True(t, result.MonthlyTotal.Equal(monthly),
				"%s at %d: monthly total %s != parts %s", calc.Rules.Name, gross, result.MonthlyTotal, monthly)
		}
	}
}

func TestCompute_NonNegativeEverywhere(t *testing.T) {
	grosses := []int64{0, 1, 100000, 500000, 1000000, 5000000, 50000000, 100000000}

	for _, calc := range []*RegimeCalculator{NewOldRegimeCalculator2025(), NewNewRegimeCalculator2025()} {
		for _, gross := range grosses {
			sc := mustDecompose(t, gross, false, false)
			result := calc.Compute(sc)

			for label, v := range map[string]decimal.Decimal{
				"total deductions": result.TotalDeductions,
				"taxable income":   result.TaxableIncome,
				"income tax":       result.IncomeTax,
				"surcharge":        result.Surcharge,
				"cess":             result.Cess,
				"total tax":        result.TotalTax,
			} {
				assert.False(t, v.IsNegative(), "%s at %d: %s is negative: %s", calc.Rules.Name, gross, label, v)
			}
		}
	}
}

func TestCompute_TaxableClampedAtZero(t *testing.T) {
	// A small gross produces deductions larger than the salary itself; the
	// taxable income clamps to zero instead of going negative.
	calc := NewOldRegimeCalculator2025()
	sc := mustDecompose(t, 90000, true, true)

	result := calc.Compute(sc)
	assert.True(t, result.TaxableIncome.IsZero(), "taxable: got %s", result.TaxableIncome)
	assert.True(t, result.TotalTax.IsZero())
}

func TestCompute_Idempotent(t *testing.T) {
	// The calculator holds no hidden state: computing twice over the same
	// context yields identical results.
	calc := NewNewRegimeCalculator2025()
	sc := mustDecompose(t, 4321000, true, true)

	first := calc.Compute(sc)
	second := calc.Compute(sc)

	assert.True(t, first.IncomeTax.Equal(second.IncomeTax))
	assert.True(t, first.Surcharge.Equal(second.Surcharge))
	assert.True(t, first.Cess.Equal(second.Cess))
	assert.True(t, first.TotalTax.Equal(second.TotalTax))
	assert.True(t, first.MonthlyInHand.Equal(second.MonthlyInHand))
	assert.Equal(t, first, second)
}

func TestCompute_SurchargeAppliesAboveFiftyLakh(t *testing.T) {
	// New regime, gross 60,75,000: taxable is exactly 60,00,000 which sits
	// in the 10% surcharge band.
	calc := NewNewRegimeCalculator2025()
	sc := mustDecompose(t, 6075000, true, true)

	result := calc.Compute(sc)
	assert.True(t, decimal.NewFromInt(6000000).Equal(result.TaxableIncome))
	// 300000 + 30% of 3600000 = 1380000
	assert.True(t, decimal.NewFromInt(1380000).Equal(result.IncomeTax), "income tax: got %s", result.IncomeTax)
	// 10% band
	assert.True(t, decimal.NewFromInt(138000).Equal(result.Surcharge), "surcharge: got %s", result.Surcharge)
	// (1380000 + 138000) * 0.04
	assert.True(t, decimal.NewFromInt(60720).Equal(result.Cess), "cess: got %s", result.Cess)
	assert.True(t, decimal.NewFromInt(1578720).Equal(result.TotalTax))
}
