package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalaryDecomposer_Decompose(t *testing.T) {
	decomposer := NewSalaryDecomposer2025()

	tests := []struct {
		name        string
		gross       decimal.Decimal
		isMetro     bool
		pfIncluded  bool
		expBasic    decimal.Decimal
		expHRA      decimal.Decimal
		expPFSide   decimal.Decimal
		expTotalPF  decimal.Decimal
	}{
		{
			name:       "metro with pf",
			gross:      decimal.NewFromInt(1500000),
			isMetro:    true,
			pfIncluded: true,
			expBasic:   decimal.NewFromInt(750000),  // 1500000 * 0.5
			expHRA:     decimal.NewFromInt(375000),  // 750000 * 0.5
			expPFSide:  decimal.NewFromInt(90000),   // 750000 * 0.12
			expTotalPF: decimal.NewFromInt(180000),
		},
		{
			name:       "non-metro with pf",
			gross:      decimal.NewFromInt(1500000),
			isMetro:    false,
			pfIncluded: true,
			expBasic:   decimal.NewFromInt(750000),
			expHRA:     decimal.NewFromInt(300000), // 750000 * 0.4
			expPFSide:  decimal.NewFromInt(90000),
			expTotalPF: decimal.NewFromInt(180000),
		},
		{
			name:       "metro without pf",
			gross:      decimal.NewFromInt(1200000),
			isMetro:    true,
			pfIncluded: false,
			expBasic:   decimal.NewFromInt(600000),
			expHRA:     decimal.NewFromInt(300000),
			expPFSide:  decimal.Zero,
			expTotalPF: decimal.Zero,
		},
		{
			name:       "zero gross",
			gross:      decimal.Zero,
			isMetro:    true,
			pfIncluded: true,
			expBasic:   decimal.Zero,
			expHRA:     decimal.Zero,
			expPFSide:  decimal.Zero,
			expTotalPF: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := decomposer.Decompose(tt.gross, tt.isMetro, tt.pfIncluded)
			assert.NoError(t, err)

			assert.True(t, tt.expBasic.Equal(sc.Basic), "basic: expected %s, got %s", tt.expBasic, sc.Basic)
			assert.True(t, tt.expHRA.Equal(sc.HRAReceived), "hra: expected %s, got %s", tt.expHRA, sc.HRAReceived)
			assert.True(t, tt.expPFSide.Equal(sc.PFEmployee), "pf employee: expected %s, got %s", tt.expPFSide, sc.PFEmployee)
			assert.True(t, tt.expPFSide.Equal(sc.PFEmployer), "pf employer: expected %s, got %s", tt.expPFSide, sc.PFEmployer)
			assert.True(t, tt.expTotalPF.Equal(sc.TotalPF), "total pf: expected %s, got %s", tt.expTotalPF, sc.TotalPF)

			assert.Equal(t, tt.isMetro, sc.IsMetroCity)
			assert.Equal(t, tt.pfIncluded, sc.PFIncluded)
			assert.True(t, tt.gross.Equal(sc.GrossAnnual))
		})
	}
}

func TestSalaryDecomposer_NegativeGross(t *testing.T) {
	decomposer := NewSalaryDecomposer2025()

	_, err := decomposer.Decompose(decimal.NewFromInt(-1), true, true)
	assert.Error(t, err, "negative gross must be rejected, not propagated")
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestSalaryDecomposer_DerivedFieldsAreConsistent(t *testing.T) {
	decomposer := NewSalaryDecomposer2025()

	sc, err := decomposer.Decompose(decimal.NewFromInt(2345678), false, true)
	assert.NoError(t, err)

	assert.True(t, sc.TotalPF.Equal(sc.PFEmployee.Add(sc.PFEmployer)))
	assert.True(t, sc.Basic.Equal(sc.GrossAnnual.Mul(decimal.NewFromFloat(0.5))))
}
