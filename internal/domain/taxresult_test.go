package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComparisonRun_TaxGap(t *testing.T) {
	run := ComparisonRun{
		Old: TaxResult{TotalTax: decimal.NewFromInt(103480)},
		New: TaxResult{TotalTax: decimal.NewFromInt(97500)},
	}

	assert.True(t, run.TaxGap().Equal(decimal.NewFromInt(5980)), "gap: got %s", run.TaxGap())
	assert.True(t, run.Savings().Equal(decimal.NewFromInt(5980)))
}

func TestComparisonRun_CheaperRegime(t *testing.T) {
	oldWins := ComparisonRun{
		Old: TaxResult{TotalTax: decimal.NewFromInt(429000)},
		New: TaxResult{TotalTax: decimal.NewFromInt(475800)},
	}
	assert.Equal(t, RegimeOld, oldWins.CheaperRegime())
	assert.True(t, oldWins.Savings().Equal(decimal.NewFromInt(46800)))

	newWins := ComparisonRun{
		Old: TaxResult{TotalTax: decimal.NewFromInt(103480)},
		New: TaxResult{TotalTax: decimal.NewFromInt(97500)},
	}
	assert.Equal(t, RegimeNew, newWins.CheaperRegime())

	// Ties go to the new regime, the statutory default
	tie := ComparisonRun{
		Old: TaxResult{TotalTax: decimal.NewFromInt(457500)},
		New: TaxResult{TotalTax: decimal.NewFromInt(457500)},
	}
	assert.Equal(t, RegimeNew, tie.CheaperRegime())
	assert.True(t, tie.Savings().IsZero())
}

func TestSalaryContext_IsHighIncome(t *testing.T) {
	threshold := decimal.NewFromInt(10000000)

	below := SalaryContext{GrossAnnual: decimal.NewFromInt(9999999)}
	assert.False(t, below.IsHighIncome(threshold))

	// The threshold itself is not high income; only income above it is
	at := SalaryContext{GrossAnnual: decimal.NewFromInt(10000000)}
	assert.False(t, at.IsHighIncome(threshold))

	above := SalaryContext{GrossAnnual: decimal.NewFromInt(10000001)}
	assert.True(t, above.IsHighIncome(threshold))
}
