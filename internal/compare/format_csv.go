package compare

import (
	"encoding/csv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Scenario",
		"Type",
		"Gross Annual",
		"Old Regime Tax",
		"New Regime Tax",
		"Cheaper Regime",
		"Payable Tax",
		"Savings",
		"Old Effective Rate (%)",
		"New Effective Rate (%)",
		"Monthly In-Hand",
		"Tax Diff from Base",
		"Tax % Change",
		"In-Hand Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base scenario
	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	// Write alternative scenarios
	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		result.ScenarioName,
		scenarioType,
		result.GrossAnnual.StringFixed(2),
		result.OldTotalTax.StringFixed(2),
		result.NewTotalTax.StringFixed(2),
		string(result.CheaperRegime),
		result.PayableTax.StringFixed(2),
		result.Savings.StringFixed(2),
		result.OldEffectiveRate.Mul(hundred).StringFixed(2),
		result.NewEffectiveRate.Mul(hundred).StringFixed(2),
		result.MonthlyInHand.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.TaxPctFromBase.StringFixed(2),
		result.InHandDiffFromBase.StringFixed(2),
	}
}
