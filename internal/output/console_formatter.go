package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// ConsoleFormatter renders the side-by-side regime comparison in the fixed
// report layout: 28-character labels, 18-character right-aligned amounts,
// whole rupees with thousands separators.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(run *domain.ComparisonRun) ([]byte, error) {
	var buf bytes.Buffer
	writeComparisonTable(&buf, run)
	return buf.Bytes(), nil
}

// writeComparisonTable renders the comparison block shared by the console
// formatters.
func writeComparisonTable(buf *bytes.Buffer, run *domain.ComparisonRun) {
	oldRes := run.Old
	newRes := run.New
	rule := strings.Repeat("-", 75)

	row := func(label string, left, right decimal.Decimal) {
		fmt.Fprintf(buf, "%-28s | %18s | %18s\n", label, FormatAmount(left), FormatAmount(right))
	}
	subRow := func(label string, left, right decimal.Decimal) {
		fmt.Fprintf(buf, "  %-26s | %18s | %18s\n", label, FormatAmount(left), FormatAmount(right))
	}
	section := func(label string) {
		fmt.Fprintf(buf, "%-28s | %-18s | %-20s\n", label, "", "")
	}

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "--- Salary & Tax Comparison (FY 2025-26) ---")
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-28s | %-20s | %-20s\n", "", string(oldRes.Regime), string(newRes.Regime))
	fmt.Fprintln(buf, rule)
	row("Gross Annual Salary:", run.Context.GrossAnnual, run.Context.GrossAnnual)
	fmt.Fprintln(buf, rule)
	section("Exemptions & Deductions")
	subRow("HRA Exemption", oldRes.HRAExemption, newRes.HRAExemption)
	subRow("Section 80C Deduction", oldRes.Deduction80C, newRes.Deduction80C)
	subRow("Standard Deduction", oldRes.StandardDeduction, newRes.StandardDeduction)
	row("Total Deductions:", oldRes.TotalDeductions, newRes.TotalDeductions)
	fmt.Fprintln(buf, rule)
	row("Taxable Income:", oldRes.TaxableIncome, newRes.TaxableIncome)
	fmt.Fprintln(buf, rule)
	section("Tax Calculation")
	subRow("Income Tax", oldRes.IncomeTax, newRes.IncomeTax)
	subRow("Surcharge", oldRes.Surcharge, newRes.Surcharge)
	subRow("Health & Edu Cess", oldRes.Cess, newRes.Cess)
	row("Total Annual Tax:", oldRes.TotalTax, newRes.TotalTax)
	fmt.Fprintln(buf, rule)
	row("Net Annual Income:", oldRes.NetAnnualIncome, newRes.NetAnnualIncome)
	row("Monthly In-Hand:", oldRes.MonthlyInHand, newRes.MonthlyInHand)
	row("Monthly PF Contribution:", oldRes.MonthlyPF, newRes.MonthlyPF)
	row("Monthly Total:", oldRes.MonthlyTotal, newRes.MonthlyTotal)
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "--- End of Report ---")

	if AnalyzeRun(run).HighIncome {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "NOTE: Your income is high. It is advisable to consult a CA for detailed tax planning.")
	}
}
