package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats crossover results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a crossover result
func (tf *TableFormatter) Format(result *CrossoverResult) string {
	var sb strings.Builder

	sb.WriteString("REGIME CROSSOVER RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Search metadata
	sb.WriteString(fmt.Sprintf("Salary Structure:    %s\n", describeFlags(result.Request.Constraints)))
	if result.Request.Constraints.MinGross != nil && result.Request.Constraints.MaxGross != nil {
		sb.WriteString(fmt.Sprintf("Search Range:        Rs. %s to Rs. %s\n",
			tf.formatCurrency(*result.Request.Constraints.MinGross),
			tf.formatCurrency(*result.Request.Constraints.MaxGross)))
	}
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	// The crossover point itself
	sb.WriteString("CROSSOVER POINT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Gross Annual Salary: Rs. %s (%s)\n",
		tf.formatCurrency(result.CrossoverGross), tf.formatShort(result.CrossoverGross)))
	sb.WriteString(fmt.Sprintf("Tax Gap (Old - New): %sRs. %s\n",
		tf.deltaSymbol(result.GapAtCrossover), tf.formatCurrency(result.GapAtCrossover.Abs())))
	sb.WriteString(fmt.Sprintf("Cheaper Below:       %s\n", result.CheaperBelow))
	sb.WriteString(fmt.Sprintf("Cheaper Above:       %s\n", result.CheaperAbove))
	sb.WriteString("\n")

	// Tax picture at the crossover salary
	if result.Run != nil {
		sb.WriteString("TAX AT THE CROSSOVER SALARY\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "", "Old Regime", "New Regime"))
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "Taxable Income",
			tf.formatCurrency(result.Run.Old.TaxableIncome),
			tf.formatCurrency(result.Run.New.TaxableIncome)))
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "Total Tax",
			tf.formatCurrency(result.Run.Old.TotalTax),
			tf.formatCurrency(result.Run.New.TotalTax)))
		sb.WriteString(fmt.Sprintf("%-20s %18s %18s\n", "Monthly In-Hand",
			tf.formatCurrency(result.Run.Old.MonthlyInHand),
			tf.formatCurrency(result.Run.New.MonthlyInHand)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMatrix formats results from a crossover matrix run
func (tf *TableFormatter) FormatMatrix(result *MatrixResult) string {
	var sb strings.Builder

	sb.WriteString("CROSSOVER MATRIX RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	// Summary table of all combinations
	sb.WriteString("SUMMARY OF ALL FLAG COMBINATIONS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-24s %16s %16s %16s\n",
		"Salary Structure", "Crossover Gross", "Old Tax", "New Tax"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i := range result.Results {
		res := &result.Results[i]
		oldTax := "-"
		newTax := "-"
		if res.Run != nil {
			oldTax = tf.formatShort(res.Run.Old.TotalTax)
			newTax = tf.formatShort(res.Run.New.TotalTax)
		}
		sb.WriteString(fmt.Sprintf("%-24s %16s %16s %16s\n",
			tf.truncate(describeFlags(res.Request.Constraints), 24),
			tf.formatShort(res.CrossoverGross),
			oldTax,
			newTax))
	}
	sb.WriteString("\n")

	// Recommendations
	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *CrossoverResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FormatMatrix formats matrix results as JSON
func (jf *JSONFormatter) FormatMatrix(result *MatrixResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(10000000)) {
		crore := d.Div(decimal.NewFromInt(10000000))
		return crore.StringFixed(2) + " Cr"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(100000)) {
		lakh := d.Div(decimal.NewFromInt(100000))
		return lakh.StringFixed(2) + " L"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
