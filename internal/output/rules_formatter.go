package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// RulesFormatter renders a tax rule set for inspection.
type RulesFormatter interface {
	FormatRules(rules *domain.TaxRules) (string, error)
	Name() string
}

// NewRulesFormatter creates a rules formatter based on the format name.
// Unrecognized names fall back to the table formatter.
func NewRulesFormatter(format string) RulesFormatter {
	switch NormalizeFormatName(format) {
	case "yaml":
		return &RulesYAMLFormatter{}
	default:
		return &RulesTableFormatter{}
	}
}

// RulesTableFormatter formats a tax rule set as a console table.
type RulesTableFormatter struct{}

func (f *RulesTableFormatter) Name() string {
	return "table"
}

func (f *RulesTableFormatter) FormatRules(rules *domain.TaxRules) (string, error) {
	if rules == nil {
		return "", fmt.Errorf("rules cannot be nil")
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("TAX RULE SET: FY %s (AY %s)\n", rules.Metadata.FinancialYear, rules.Metadata.AssessmentYear))
	output.WriteString("=================================================================\n")
	if rules.Metadata.Description != "" {
		output.WriteString(rules.Metadata.Description + "\n")
	}
	output.WriteString("\n")

	output.WriteString("SALARY DECOMPOSITION:\n")
	output.WriteString(fmt.Sprintf("  %-24s %s of gross\n", "Basic Pay:", formatRulePercent(rules.Salary.BasicRatio)))
	output.WriteString(fmt.Sprintf("  %-24s %s of basic\n", "HRA (metro):", formatRulePercent(rules.Salary.HRAMetroRatio)))
	output.WriteString(fmt.Sprintf("  %-24s %s of basic\n", "HRA (non-metro):", formatRulePercent(rules.Salary.HRANonMetroRatio)))
	output.WriteString(fmt.Sprintf("  %-24s %s of basic, employee and employer each\n\n", "Provident Fund:", formatRulePercent(rules.Salary.PFRate)))

	f.writeRegime(&output, rules.OldRegime)
	f.writeRegime(&output, rules.NewRegime)

	output.WriteString("SURCHARGE (on income tax, by taxable income):\n")
	for i, band := range rules.SurchargeBands {
		label := fmt.Sprintf("Up to Rs. %s:", FormatAmount(band.UpTo))
		if i > 0 {
			label = fmt.Sprintf("Rs. %s - Rs. %s:", FormatAmount(rules.SurchargeBands[i-1].UpTo), FormatAmount(band.UpTo))
		}
		output.WriteString(fmt.Sprintf("  %-32s %s\n", label, formatRulePercent(band.Rate)))
	}
	if len(rules.SurchargeBands) > 0 {
		top := rules.SurchargeBands[len(rules.SurchargeBands)-1].UpTo
		output.WriteString(fmt.Sprintf("  %-32s %s (Old) / %s (New)\n",
			fmt.Sprintf("Above Rs. %s:", FormatAmount(top)),
			formatRulePercent(rules.OldRegime.SurchargeTopRate),
			formatRulePercent(rules.NewRegime.SurchargeTopRate)))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("CESS: %s Health & Education Cess on tax plus surcharge\n", formatRulePercent(rules.CessRate)))
	output.WriteString(fmt.Sprintf("HIGH INCOME ADVISORY: above Rs. %s gross\n", FormatAmount(rules.HighIncomeThreshold)))

	return output.String(), nil
}

func (f *RulesTableFormatter) writeRegime(output *strings.Builder, regime domain.RegimeRules) {
	output.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(string(regime.Name))))
	output.WriteString(fmt.Sprintf("  %-24s Rs. %s\n", "Standard Deduction:", FormatAmount(regime.StandardDeduction)))
	output.WriteString(fmt.Sprintf("  %-24s Rs. %s\n", "Rebate Limit (87A):", FormatAmount(regime.RebateLimit)))
	if regime.AllowHRAExemption {
		output.WriteString(fmt.Sprintf("  %-24s allowed\n", "HRA Exemption:"))
	} else {
		output.WriteString(fmt.Sprintf("  %-24s not allowed\n", "HRA Exemption:"))
	}
	if regime.Section80CLimit.IsPositive() {
		output.WriteString(fmt.Sprintf("  %-24s Rs. %s\n", "Section 80C Limit:", FormatAmount(regime.Section80CLimit)))
	}
	if regime.Section80DAmount.IsPositive() {
		output.WriteString(fmt.Sprintf("  %-24s Rs. %s\n", "Section 80D Amount:", FormatAmount(regime.Section80DAmount)))
	}
	output.WriteString("\n")

	output.WriteString(fmt.Sprintf("  %-34s %s\n", "Slab", "Rate"))
	output.WriteString("  " + strings.Repeat("-", 40) + "\n")
	for _, slab := range regime.Slabs {
		output.WriteString(fmt.Sprintf("  %-34s %s\n", formatSlabRange(slab), formatRulePercent(slab.Rate)))
	}
	output.WriteString("\n")
}

// formatSlabRange describes the income band a slab covers.
func formatSlabRange(slab domain.TaxSlab) string {
	if slab.Unbounded() {
		return fmt.Sprintf("Above Rs. %s", FormatAmount(slab.Over))
	}
	if slab.Over.IsZero() {
		return fmt.Sprintf("Up to Rs. %s", FormatAmount(slab.UpTo))
	}
	return fmt.Sprintf("Rs. %s - Rs. %s", FormatAmount(slab.Over), FormatAmount(slab.UpTo))
}

// formatRulePercent renders a fractional rate as a percentage.
func formatRulePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

// RulesYAMLFormatter formats a tax rule set as YAML, in the same shape
// LoadFromFile reads back.
type RulesYAMLFormatter struct{}

func (f *RulesYAMLFormatter) Name() string {
	return "yaml"
}

func (f *RulesYAMLFormatter) FormatRules(rules *domain.TaxRules) (string, error) {
	if rules == nil {
		return "", fmt.Errorf("rules cannot be nil")
	}

	data, err := yaml.Marshal(rules)
	if err != nil {
		return "", fmt.Errorf("failed to marshal rules: %w", err)
	}
	return string(data), nil
}
