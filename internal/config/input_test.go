package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

func TestValidateDefaultRules(t *testing.T) {
	rules := domain.DefaultTaxRules2025()

	parser := NewRulesParser()
	if err := parser.ValidateRules(&rules); err != nil {
		t.Errorf("Expected built-in rules to validate but got error: %s", err.Error())
	}
}

func TestValidateRules_SlabContinuity(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	// Break the chain: second old-regime slab no longer starts where the
	// first one ends.
	rules.OldRegime.Slabs[1].Over = decimal.NewFromInt(300000)

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for discontinuous slabs")
	}
	if !strings.Contains(err.Error(), "does not continue previous bound") {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestValidateRules_SlabBaseMismatch(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.NewRegime.Slabs[2].Base = decimal.NewFromInt(99999)

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for a base that does not match the bands below")
	}
	if !strings.Contains(err.Error(), "does not match accumulated tax") {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestValidateRules_MisplacedOpenSlab(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.OldRegime.Slabs[1].UpTo = decimal.Zero

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for an open-ended slab before the last position")
	}
}

func TestValidateRules_BoundedLastSlab(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.NewRegime.Slabs[len(rules.NewRegime.Slabs)-1].UpTo = decimal.NewFromInt(99000000)

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error when the last slab has an upper bound")
	}
}

func TestValidateRules_CessOutOfRange(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.CessRate = decimal.NewFromInt(4)

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for cess rate above 1")
	}
	if !strings.Contains(err.Error(), "cess_rate") {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestValidateRules_MissingFinancialYear(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.Metadata.FinancialYear = ""

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for missing financial year")
	}
}

func TestValidateRules_SurchargeBandOrdering(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.SurchargeBands[1].UpTo = decimal.NewFromInt(4000000) // below band 0's bound

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for out-of-order surcharge bands")
	}
}

func TestValidateRules_ZeroPFRate(t *testing.T) {
	rules := domain.DefaultTaxRules2025()
	rules.Salary.PFRate = decimal.Zero

	parser := NewRulesParser()
	err := parser.ValidateRules(&rules)
	if err == nil {
		t.Fatal("Expected error for zero pf_rate")
	}
}
