package domain

import (
	"github.com/shopspring/decimal"
)

// SalaryContext holds a gross annual salary together with the structural
// components derived from it. All derived fields are computed once from the
// three inputs (gross, metro flag, PF flag) and never reassigned afterward.
type SalaryContext struct {
	GrossAnnual decimal.Decimal `yaml:"gross_annual" json:"gross_annual"`
	IsMetroCity bool            `yaml:"is_metro_city" json:"is_metro_city"`
	PFIncluded  bool            `yaml:"pf_included" json:"pf_included"`

	// Derived components
	Basic       decimal.Decimal `yaml:"basic" json:"basic"`
	HRAReceived decimal.Decimal `yaml:"hra_received" json:"hra_received"`
	PFEmployee  decimal.Decimal `yaml:"pf_employee" json:"pf_employee"`
	PFEmployer  decimal.Decimal `yaml:"pf_employer" json:"pf_employer"`
	TotalPF     decimal.Decimal `yaml:"total_pf" json:"total_pf"`
}

// IsHighIncome reports whether the gross salary crosses the advisory
// threshold above which the report suggests professional tax planning.
func (sc SalaryContext) IsHighIncome(threshold decimal.Decimal) bool {
	return sc.GrossAnnual.GreaterThan(threshold)
}

// Scenario is the transformable input of a comparison run: the gross salary
// plus the two policy flags. What-if transforms produce modified copies.
type Scenario struct {
	Name        string          `yaml:"name" json:"name"`
	GrossAnnual decimal.Decimal `yaml:"gross_annual" json:"gross_annual"`
	IsMetroCity bool            `yaml:"is_metro_city" json:"is_metro_city"`
	PFIncluded  bool            `yaml:"pf_included" json:"pf_included"`
}

// Copy returns an independent copy of the scenario.
func (s Scenario) Copy() Scenario {
	return Scenario{
		Name:        s.Name,
		GrossAnnual: s.GrossAnnual,
		IsMetroCity: s.IsMetroCity,
		PFIncluded:  s.PFIncluded,
	}
}
