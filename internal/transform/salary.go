package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// HikeSalary raises the gross annual salary by a percentage.
// This is useful for exploring "what does my appraisal do to my tax" scenarios.
type HikeSalary struct {
	Percent decimal.Decimal // Hike in percent (10 means +10%)
}

func (hs *HikeSalary) Name() string {
	return "hike_salary"
}

func (hs *HikeSalary) Description() string {
	return fmt.Sprintf("Hike gross annual salary by %s%%", hs.Percent.StringFixed(0))
}

func (hs *HikeSalary) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(hs.Name(), "validate", "base scenario cannot be nil", nil)
	}

	if hs.Percent.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return NewTransformError(hs.Name(), "validate",
			fmt.Sprintf("percent must be greater than -100, got %s", hs.Percent.String()), nil)
	}

	return nil
}

func (hs *HikeSalary) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Copy()

	factor := decimal.NewFromInt(1).Add(hs.Percent.Div(decimal.NewFromInt(100)))
	modified.GrossAnnual = base.GrossAnnual.Mul(factor)

	return &modified, nil
}

// RaiseSalary raises the gross annual salary by an absolute amount.
// Unlike HikeSalary which is relative, this adds a fixed sum.
type RaiseSalary struct {
	Amount decimal.Decimal // Amount to add to the gross annual salary
}

func (rs *RaiseSalary) Name() string {
	return "raise_salary"
}

func (rs *RaiseSalary) Description() string {
	return fmt.Sprintf("Raise gross annual salary by %s", rs.Amount.StringFixed(0))
}

func (rs *RaiseSalary) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(rs.Name(), "validate", "base scenario cannot be nil", nil)
	}

	if base.GrossAnnual.Add(rs.Amount).IsNegative() {
		return NewTransformError(rs.Name(), "validate",
			fmt.Sprintf("raise of %s would push gross salary below zero", rs.Amount.String()), nil)
	}

	return nil
}

func (rs *RaiseSalary) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Copy()

	modified.GrossAnnual = base.GrossAnnual.Add(rs.Amount)

	return &modified, nil
}

// SetSalary sets the gross annual salary to an absolute amount.
type SetSalary struct {
	Amount decimal.Decimal // The new gross annual salary
}

func (ss *SetSalary) Name() string {
	return "set_salary"
}

func (ss *SetSalary) Description() string {
	return fmt.Sprintf("Set gross annual salary to %s", ss.Amount.StringFixed(0))
}

func (ss *SetSalary) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(ss.Name(), "validate", "base scenario cannot be nil", nil)
	}

	if ss.Amount.IsNegative() {
		return NewTransformError(ss.Name(), "validate",
			fmt.Sprintf("salary cannot be negative, got %s", ss.Amount.String()), nil)
	}

	return nil
}

func (ss *SetSalary) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Copy()

	modified.GrossAnnual = ss.Amount

	return &modified, nil
}
