package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("SALARY SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.RulesPath != "" {
		sb.WriteString(fmt.Sprintf("Tax Rules:     %s\n", compSet.RulesPath))
	}
	sb.WriteString("\n")

	// Create table with all scenarios

	// Column widths
	nameWidth := 25
	numWidth := 12

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Gross Salary",
		numWidth, "Old Tax",
		numWidth, "New Tax",
		numWidth, "Cheaper",
		numWidth, "Savings"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base scenario row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			// Tax difference
			taxSymbol := tf.deltaSymbol(alt.TaxDiffFromBase.Neg()) // Lower taxes are better
			sb.WriteString(fmt.Sprintf("  Tax Impact:       %sRs. %s (%s%%)\n",
				taxSymbol,
				tf.formatDecimal(alt.TaxDiffFromBase.Abs()),
				alt.TaxPctFromBase.StringFixed(1)))

			// Monthly in-hand difference
			if !alt.InHandDiffFromBase.IsZero() {
				inHandSymbol := tf.deltaSymbol(alt.InHandDiffFromBase)
				sb.WriteString(fmt.Sprintf("  Monthly In-Hand:  %sRs. %s\n",
					inHandSymbol,
					tf.formatDecimal(alt.InHandDiffFromBase.Abs())))
			}

			// Regime flip
			if base != nil && alt.CheaperRegime != base.CheaperRegime {
				sb.WriteString(fmt.Sprintf("  Cheaper Regime:   flips to the %s\n",
					alt.CheaperRegime))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.GrossAnnual),
		numWidth, tf.formatDecimal(result.OldTotalTax),
		numWidth, tf.formatDecimal(result.NewTotalTax),
		numWidth, string(result.CheaperRegime),
		numWidth, tf.formatDecimal(result.Savings))
}

// formatDecimal formats a decimal for display (in lakh and crore)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000000)) {
		// Format in crore
		crore := d.Div(decimal.NewFromInt(10000000))
		return crore.StringFixed(2) + " Cr"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(100000)) {
		// Format in lakh
		lakh := d.Div(decimal.NewFromInt(100000))
		return lakh.StringFixed(2) + " L"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		inHandChange := "="
		if alt.InHandDiffFromBase.IsPositive() {
			inHandChange = fmt.Sprintf("+Rs. %s", tf.formatDecimal(alt.InHandDiffFromBase))
		} else if alt.InHandDiffFromBase.IsNegative() {
			inHandChange = fmt.Sprintf("-Rs. %s", tf.formatDecimal(alt.InHandDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, inHandChange))
	}

	return sb.String()
}
