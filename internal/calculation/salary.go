package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// SALARY STRUCTURE ASSUMPTIONS:
//
// 1. Basic pay is a fixed fraction of gross CTC (50% by default). Real
//    offer letters vary; this matches the common structuring convention.
//
// 2. House-rent allowance is a fraction of basic: 50% in metro cities,
//    40% elsewhere.
//
// 3. When the PF flag is set, employee and employer each contribute 12%
//    of basic and both sides are treated as embedded in the quoted gross.
//    When unset, both contributions are zero.

// SalaryDecomposer derives the structural components of a gross annual
// salary. It is stateless apart from its immutable ratio configuration.
type SalaryDecomposer struct {
	Rules domain.DecompositionRules
}

// NewSalaryDecomposer2025 creates a decomposer with the FY 2025-26
// structural assumptions.
func NewSalaryDecomposer2025() *SalaryDecomposer {
	return &SalaryDecomposer{Rules: domain.DefaultTaxRules2025().Salary}
}

// NewSalaryDecomposer creates a decomposer with configurable ratios.
func NewSalaryDecomposer(rules domain.DecompositionRules) *SalaryDecomposer {
	return &SalaryDecomposer{Rules: rules}
}

// Decompose splits a gross annual salary into basic, allowance, and
// retirement contributions. Gross must be non-negative; zero is valid and
// yields zero components throughout.
func (sd *SalaryDecomposer) Decompose(grossAnnual decimal.Decimal, isMetroCity, pfIncluded bool) (domain.SalaryContext, error) {
	if grossAnnual.IsNegative() {
		return domain.SalaryContext{}, fmt.Errorf("gross annual salary cannot be negative, got %s", grossAnnual.StringFixed(2))
	}

	basic := grossAnnual.Mul(sd.Rules.BasicRatio)

	hraRatio := sd.Rules.HRANonMetroRatio
	if isMetroCity {
		hraRatio = sd.Rules.HRAMetroRatio
	}
	hra := basic.Mul(hraRatio)

	var pfEmployee, pfEmployer decimal.Decimal
	if pfIncluded {
		pfEmployee = basic.Mul(sd.Rules.PFRate)
		pfEmployer = basic.Mul(sd.Rules.PFRate)
	}

	return domain.SalaryContext{
		GrossAnnual: grossAnnual,
		IsMetroCity: isMetroCity,
		PFIncluded:  pfIncluded,
		Basic:       basic,
		HRAReceived: hra,
		PFEmployee:  pfEmployee,
		PFEmployer:  pfEmployer,
		TotalPF:     pfEmployee.Add(pfEmployer),
	}, nil
}
