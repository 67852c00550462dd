package domain

import (
	"github.com/shopspring/decimal"
)

// TaxSlab is one band of a marginal slab schedule. Base carries the tax
// already accumulated by all lower bands, so a single matching band yields
// the full tax: Base + Rate * (taxable - Over). UpTo is the inclusive upper
// bound of the band; a zero UpTo marks the open-ended top slab and is only
// valid on the last entry.
type TaxSlab struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Over decimal.Decimal `yaml:"over" json:"over"`
	Base decimal.Decimal `yaml:"base" json:"base"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the slab has no upper bound.
func (s TaxSlab) Unbounded() bool {
	return s.UpTo.IsZero()
}

// SurchargeBand is one tier of the surcharge schedule, keyed on taxable
// income. UpTo is inclusive. Income above the last band's bound is charged
// at the regime's SurchargeTopRate instead.
type SurchargeBand struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// RegimeRules is the complete parameter set of one tax regime: slab table,
// rebate limit, deduction policy, and the top surcharge rate that differs
// between regimes.
type RegimeRules struct {
	Name              Regime          `yaml:"name" json:"name"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	RebateLimit       decimal.Decimal `yaml:"rebate_limit" json:"rebate_limit"`
	Slabs             []TaxSlab       `yaml:"slabs" json:"slabs"`
	SurchargeTopRate  decimal.Decimal `yaml:"surcharge_top_rate" json:"surcharge_top_rate"`

	// Old-regime deduction knobs. Zero disables the deduction, which is how
	// the new regime leaves them off.
	AllowHRAExemption bool            `yaml:"allow_hra_exemption" json:"allow_hra_exemption"`
	Section80CLimit   decimal.Decimal `yaml:"section_80c_limit" json:"section_80c_limit"`
	Section80DAmount  decimal.Decimal `yaml:"section_80d_amount" json:"section_80d_amount"`
}

// DecompositionRules holds the structural salary assumptions used to split a
// gross figure into basic, allowance, and retirement contributions.
type DecompositionRules struct {
	BasicRatio       decimal.Decimal `yaml:"basic_ratio" json:"basic_ratio"`
	HRAMetroRatio    decimal.Decimal `yaml:"hra_metro_ratio" json:"hra_metro_ratio"`
	HRANonMetroRatio decimal.Decimal `yaml:"hra_non_metro_ratio" json:"hra_non_metro_ratio"`
	PFRate           decimal.Decimal `yaml:"pf_rate" json:"pf_rate"`
}

// RulesMetadata describes which assessment year a rule set models.
type RulesMetadata struct {
	FinancialYear  string `yaml:"financial_year" json:"financial_year"`
	AssessmentYear string `yaml:"assessment_year" json:"assessment_year"`
	Description    string `yaml:"description" json:"description"`
}

// TaxRules is the immutable configuration both regime calculators are built
// from. It can be loaded from a YAML file to version the rule set per
// assessment year; DefaultTaxRules2025 supplies the built-in FY 2025-26 set.
type TaxRules struct {
	Metadata            RulesMetadata      `yaml:"metadata" json:"metadata"`
	Salary              DecompositionRules `yaml:"salary" json:"salary"`
	CessRate            decimal.Decimal    `yaml:"cess_rate" json:"cess_rate"`
	SurchargeBands      []SurchargeBand    `yaml:"surcharge_bands" json:"surcharge_bands"`
	OldRegime           RegimeRules        `yaml:"old_regime" json:"old_regime"`
	NewRegime           RegimeRules        `yaml:"new_regime" json:"new_regime"`
	HighIncomeThreshold decimal.Decimal    `yaml:"high_income_threshold" json:"high_income_threshold"`
}

// DefaultTaxRules2025 returns the FY 2025-26 rule set.
//
// RULE SET ASSUMPTIONS:
//
//  1. Old-regime HRA exemption uses the full allowance received, not the
//     three-way statutory minimum (least of rent paid, allowance, percent
//     of basic). A deliberate simplification.
//  2. The Old-regime Section 80D amount is a flat deduction applied whether
//     or not a health-insurance premium was actually paid.
//  3. No marginal relief at surcharge band boundaries.
//  4. Slab and surcharge upper bounds are inclusive.
func DefaultTaxRules2025() TaxRules {
	return TaxRules{
		Metadata: RulesMetadata{
			FinancialYear:  "2025-26",
			AssessmentYear: "2026-27",
			Description:    "Statutory slab, rebate, surcharge and cess figures for FY 2025-26",
		},
		Salary: DecompositionRules{
			BasicRatio:       decimal.NewFromFloat(0.5),
			HRAMetroRatio:    decimal.NewFromFloat(0.5),
			HRANonMetroRatio: decimal.NewFromFloat(0.4),
			PFRate:           decimal.NewFromFloat(0.12),
		},
		CessRate: decimal.NewFromFloat(0.04),
		SurchargeBands: []SurchargeBand{
			{UpTo: decimal.NewFromInt(5000000), Rate: decimal.Zero},
			{UpTo: decimal.NewFromInt(10000000), Rate: decimal.NewFromFloat(0.10)},
			{UpTo: decimal.NewFromInt(20000000), Rate: decimal.NewFromFloat(0.15)},
			{UpTo: decimal.NewFromInt(50000000), Rate: decimal.NewFromFloat(0.25)},
		},
		OldRegime: RegimeRules{
			Name:              RegimeOld,
			StandardDeduction: decimal.NewFromInt(50000),
			RebateLimit:       decimal.NewFromInt(500000),
			Slabs: []TaxSlab{
				{UpTo: decimal.NewFromInt(250000), Over: decimal.Zero, Base: decimal.Zero, Rate: decimal.Zero},
				{UpTo: decimal.NewFromInt(500000), Over: decimal.NewFromInt(250000), Base: decimal.Zero, Rate: decimal.NewFromFloat(0.05)},
				{UpTo: decimal.NewFromInt(1000000), Over: decimal.NewFromInt(500000), Base: decimal.NewFromInt(12500), Rate: decimal.NewFromFloat(0.20)},
				{Over: decimal.NewFromInt(1000000), Base: decimal.NewFromInt(112500), Rate: decimal.NewFromFloat(0.30)},
			},
			SurchargeTopRate:  decimal.NewFromFloat(0.37),
			AllowHRAExemption: true,
			Section80CLimit:   decimal.NewFromInt(150000),
			Section80DAmount:  decimal.NewFromInt(50000),
		},
		NewRegime: RegimeRules{
			Name:              RegimeNew,
			StandardDeduction: decimal.NewFromInt(75000),
			RebateLimit:       decimal.NewFromInt(1200000),
			Slabs: []TaxSlab{
				{UpTo: decimal.NewFromInt(400000), Over: decimal.Zero, Base: decimal.Zero, Rate: decimal.Zero},
				{UpTo: decimal.NewFromInt(800000), Over: decimal.NewFromInt(400000), Base: decimal.Zero, Rate: decimal.NewFromFloat(0.05)},
				{UpTo: decimal.NewFromInt(1200000), Over: decimal.NewFromInt(800000), Base: decimal.NewFromInt(20000), Rate: decimal.NewFromFloat(0.10)},
				{UpTo: decimal.NewFromInt(1600000), Over: decimal.NewFromInt(1200000), Base: decimal.NewFromInt(60000), Rate: decimal.NewFromFloat(0.15)},
				{UpTo: decimal.NewFromInt(2000000), Over: decimal.NewFromInt(1600000), Base: decimal.NewFromInt(120000), Rate: decimal.NewFromFloat(0.20)},
				{UpTo: decimal.NewFromInt(2400000), Over: decimal.NewFromInt(2000000), Base: decimal.NewFromInt(200000), Rate: decimal.NewFromFloat(0.25)},
				{Over: decimal.NewFromInt(2400000), Base: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.30)},
			},
			SurchargeTopRate:  decimal.NewFromFloat(0.25),
			AllowHRAExemption: false,
			Section80CLimit:   decimal.Zero,
			Section80DAmount:  decimal.Zero,
		},
		HighIncomeThreshold: decimal.NewFromInt(10000000),
	}
}

// RegimeByName returns the rule set matching the given regime.
func (tr TaxRules) RegimeByName(r Regime) RegimeRules {
	if r == RegimeOld {
		return tr.OldRegime
	}
	return tr.NewRegime
}
