package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the comparison with the salary structure
// breakdown and regime election spelled out around the report table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "verbose" }

func (c ConsoleVerboseFormatter) Format(run *domain.ComparisonRun) ([]byte, error) {
	var buf bytes.Buffer
	ctx := run.Context

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "DETAILED REGIME COMPARISON: OLD vs NEW (FY 2025-26)")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SALARY STRUCTURE")
	fmt.Fprintln(&buf, "================")
	fmt.Fprintf(&buf, "  %-26s %s\n", "Gross Annual Salary:", FormatINR(ctx.GrossAnnual))
	fmt.Fprintf(&buf, "  %-26s %s\n", "Basic Pay:", FormatINR(ctx.Basic))
	fmt.Fprintf(&buf, "  %-26s %s\n", "HRA Received:", FormatINR(ctx.HRAReceived))
	if ctx.PFIncluded {
		fmt.Fprintf(&buf, "  %-26s %s\n", "Employee PF:", FormatINR(ctx.PFEmployee))
		fmt.Fprintf(&buf, "  %-26s %s\n", "Employer PF:", FormatINR(ctx.PFEmployer))
		fmt.Fprintf(&buf, "  %-26s %s\n", "Total PF:", FormatINR(ctx.TotalPF))
	} else {
		fmt.Fprintf(&buf, "  %-26s %s\n", "Provident Fund:", "not part of CTC")
	}
	fmt.Fprintf(&buf, "  %-26s %s\n", "City Classification:", cityLabel(ctx.IsMetroCity))
	fmt.Fprintln(&buf)

	writeComparisonTable(&buf, run)

	rec := AnalyzeRun(run)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "REGIME RECOMMENDATION")
	fmt.Fprintln(&buf, "=====================")
	if rec.Savings.IsZero() {
		fmt.Fprintln(&buf, "Both regimes charge identical tax; the New Regime is the default.")
	} else {
		fmt.Fprintf(&buf, "Cheaper Regime:  %s\n", rec.Regime)
		fmt.Fprintf(&buf, "Annual Savings:  %s\n", FormatINR(rec.Savings))
		fmt.Fprintf(&buf, "Monthly Savings: %s\n", FormatINR(rec.MonthlySavings))
	}
	fmt.Fprintf(&buf, "Effective Rate (Old): %s\n", effectiveRate(run.Old, ctx.GrossAnnual))
	fmt.Fprintf(&buf, "Effective Rate (New): %s\n", effectiveRate(run.New, ctx.GrossAnnual))

	return buf.Bytes(), nil
}

func cityLabel(metro bool) string {
	if metro {
		return "metro"
	}
	return "non-metro"
}

func effectiveRate(result domain.TaxResult, gross decimal.Decimal) string {
	return FormatPercentage(result.EffectiveTaxRate(gross).Mul(decimal.NewFromInt(100)))
}
