package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// RulesParser handles parsing of tax-rules files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads a tax rule set from a YAML file. The file carries the
// complete rule set for one assessment year; partial overrides are not
// merged with the defaults.
func (rp *RulesParser) LoadFromFile(filename string) (*domain.TaxRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules domain.TaxRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rules, nil
}

// ValidateRules validates a loaded rule set
func (rp *RulesParser) ValidateRules(rules *domain.TaxRules) error {
	if rules.Metadata.FinancialYear == "" {
		return fmt.Errorf("metadata.financial_year is required")
	}

	if err := rp.validateRate("cess_rate", rules.CessRate); err != nil {
		return err
	}

	if err := rp.validateSalaryRules(&rules.Salary); err != nil {
		return fmt.Errorf("salary rules validation failed: %w", err)
	}

	if err := rp.validateSurchargeBands(rules.SurchargeBands); err != nil {
		return fmt.Errorf("surcharge bands validation failed: %w", err)
	}

	for _, rr := range []*domain.RegimeRules{&rules.OldRegime, &rules.NewRegime} {
		if err := rp.validateRegime(rr); err != nil {
			return fmt.Errorf("regime %q validation failed: %w", rr.Name, err)
		}
	}

	if rules.HighIncomeThreshold.IsNegative() {
		return fmt.Errorf("high_income_threshold cannot be negative")
	}

	return nil
}

// validateSalaryRules checks the structural decomposition ratios
func (rp *RulesParser) validateSalaryRules(salary *domain.DecompositionRules) error {
	if err := rp.validatePositiveRatio("basic_ratio", salary.BasicRatio); err != nil {
		return err
	}
	if err := rp.validatePositiveRatio("hra_metro_ratio", salary.HRAMetroRatio); err != nil {
		return err
	}
	if err := rp.validatePositiveRatio("hra_non_metro_ratio", salary.HRANonMetroRatio); err != nil {
		return err
	}
	return rp.validatePositiveRatio("pf_rate", salary.PFRate)
}

// validatePositiveRatio checks a fraction is within (0, 1]
func (rp *RulesParser) validatePositiveRatio(name string, r decimal.Decimal) error {
	if !r.GreaterThan(decimal.Zero) || r.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, r)
	}
	return nil
}

// validateSurchargeBands checks the shared surcharge tiers
func (rp *RulesParser) validateSurchargeBands(bands []domain.SurchargeBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("at least one surcharge band is required")
	}

	prev := decimal.Zero
	for i, band := range bands {
		if band.UpTo.IsZero() {
			return fmt.Errorf("band %d: surcharge bands must have an upper bound; the top rate lives on each regime", i)
		}
		if !band.UpTo.GreaterThan(prev) {
			return fmt.Errorf("band %d: bound %s must exceed previous bound %s", i, band.UpTo, prev)
		}
		if err := rp.validateRate(fmt.Sprintf("band %d rate", i), band.Rate); err != nil {
			return err
		}
		prev = band.UpTo
	}
	return nil
}

// validateRegime checks one regime's slab schedule and deduction policy
func (rp *RulesParser) validateRegime(rr *domain.RegimeRules) error {
	if rr.Name == "" {
		return fmt.Errorf("name is required")
	}
	if rr.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard_deduction cannot be negative")
	}
	if rr.RebateLimit.IsNegative() {
		return fmt.Errorf("rebate_limit cannot be negative")
	}
	if rr.Section80CLimit.IsNegative() {
		return fmt.Errorf("section_80c_limit cannot be negative")
	}
	if rr.Section80DAmount.IsNegative() {
		return fmt.Errorf("section_80d_amount cannot be negative")
	}
	if err := rp.validateRate("surcharge_top_rate", rr.SurchargeTopRate); err != nil {
		return err
	}

	if len(rr.Slabs) == 0 {
		return fmt.Errorf("at least one slab is required")
	}

	for i, slab := range rr.Slabs {
		if err := rp.validateRate(fmt.Sprintf("slab %d rate", i), slab.Rate); err != nil {
			return err
		}
		if slab.Unbounded() && i != len(rr.Slabs)-1 {
			return fmt.Errorf("slab %d: only the last slab may omit an upper bound", i)
		}
		if i == len(rr.Slabs)-1 && !slab.Unbounded() {
			return fmt.Errorf("the last slab must be open-ended (omit up_to)")
		}
		if i == 0 {
			if !slab.Over.IsZero() {
				return fmt.Errorf("slab 0 must start at zero, got over=%s", slab.Over)
			}
			if !slab.Base.IsZero() {
				return fmt.Errorf("slab 0 cannot carry a base amount, got %s", slab.Base)
			}
			continue
		}

		// Bands must tile the income line without gaps or overlap, and each
		// base must carry exactly the tax accumulated below it, or a single
		// band match silently misprices income.
		prev := rr.Slabs[i-1]
		if !slab.Over.Equal(prev.UpTo) {
			return fmt.Errorf("slab %d: over=%s does not continue previous bound %s", i, slab.Over, prev.UpTo)
		}
		expectedBase := prev.Base.Add(prev.UpTo.Sub(prev.Over).Mul(prev.Rate))
		if !slab.Base.Equal(expectedBase) {
			return fmt.Errorf("slab %d: base %s does not match accumulated tax %s of the bands below", i, slab.Base, expectedBase)
		}
	}

	return nil
}

// validateRate checks a fraction is within [0, 1]
func (rp *RulesParser) validateRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate)
	}
	return nil
}

// LoadOrDefault returns the rules from the given file, or the built-in
// FY 2025-26 set when the path is empty.
func LoadOrDefault(filename string) (domain.TaxRules, error) {
	if filename == "" {
		return domain.DefaultTaxRules2025(), nil
	}
	rules, err := NewRulesParser().LoadFromFile(filename)
	if err != nil {
		return domain.TaxRules{}, err
	}
	return *rules, nil
}
