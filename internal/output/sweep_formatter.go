package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/domain"
)

// SweepFormatter renders a salary sweep in a single output format.
type SweepFormatter interface {
	FormatSweep(points []calculation.SweepPoint) (string, error)
	Name() string
}

// SweepConsoleFormatter formats a salary sweep as a console table.
type SweepConsoleFormatter struct{}

func (scf SweepConsoleFormatter) Name() string { return "console" }

func (scf SweepConsoleFormatter) FormatSweep(points []calculation.SweepPoint) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("no sweep points to format")
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "SALARY SWEEP: OLD vs NEW REGIME (FY 2025-26)\n")
	fmt.Fprintf(&buf, "=================================================================\n")
	fmt.Fprintf(&buf, "Range: Rs. %s to Rs. %s (%d points)\n",
		FormatAmount(points[0].GrossAnnual),
		FormatAmount(points[len(points)-1].GrossAnnual),
		len(points))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-14s %-14s %-14s %-14s %-12s\n",
		"Gross Salary", "Old Tax", "New Tax", "Gap (Old-New)", "Cheaper")
	fmt.Fprintln(&buf, strings.Repeat("-", 80))

	crossovers := sweepCrossoverIndices(points)
	crossoverAt := make(map[int]bool, len(crossovers))
	for _, idx := range crossovers {
		crossoverAt[idx] = true
	}

	for i, point := range points {
		cheaperStr := string(point.Cheaper)
		if crossoverAt[i] {
			cheaperStr += " ← CROSSOVER"
		}

		fmt.Fprintf(&buf, "%-14s %-14s %-14s %-14s %-12s\n",
			FormatAmount(point.GrossAnnual),
			FormatAmount(point.OldTotalTax),
			FormatAmount(point.NewTotalTax),
			FormatAmount(point.TaxGap),
			cheaperStr)
	}

	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY:")
	for _, obs := range sweepObservations(points, crossovers) {
		fmt.Fprintf(&buf, "  • %s\n", obs)
	}

	return buf.String(), nil
}

// sweepCrossoverIndices returns the indices of the points where the
// cheaper regime differs from the previous point.
func sweepCrossoverIndices(points []calculation.SweepPoint) []int {
	var indices []int
	for i := 1; i < len(points); i++ {
		if points[i].Cheaper != points[i-1].Cheaper {
			indices = append(indices, i)
		}
	}
	return indices
}

// sweepObservations summarizes a sweep: where the cheaper regime flips,
// and where the gap between the regimes is widest.
func sweepObservations(points []calculation.SweepPoint, crossovers []int) []string {
	var observations []string

	if len(crossovers) == 0 {
		observations = append(observations,
			fmt.Sprintf("The %s is cheaper across the entire range", points[0].Cheaper))
	}
	for _, idx := range crossovers {
		observations = append(observations,
			fmt.Sprintf("The cheaper regime flips from the %s to the %s between Rs. %s and Rs. %s",
				points[idx-1].Cheaper, points[idx].Cheaper,
				FormatAmount(points[idx-1].GrossAnnual), FormatAmount(points[idx].GrossAnnual)))
	}

	widest := points[0]
	for _, point := range points[1:] {
		if point.TaxGap.Abs().GreaterThan(widest.TaxGap.Abs()) {
			widest = point
		}
	}
	if !widest.TaxGap.IsZero() {
		dearer := domain.RegimeOld
		if widest.TaxGap.IsNegative() {
			dearer = domain.RegimeNew
		}
		observations = append(observations,
			fmt.Sprintf("Widest gap: the %s charges Rs. %s more at Rs. %s gross",
				dearer, FormatAmount(widest.TaxGap.Abs()), FormatAmount(widest.GrossAnnual)))
	}

	return observations
}

// SweepCSVFormatter formats a salary sweep as CSV.
type SweepCSVFormatter struct{}

func (scf SweepCSVFormatter) Name() string { return "csv" }

func (scf SweepCSVFormatter) FormatSweep(points []calculation.SweepPoint) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("no sweep points to format")
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "gross_annual,old_total_tax,new_total_tax,tax_gap,cheaper_regime,old_monthly_in_hand,new_monthly_in_hand\n")

	for _, point := range points {
		fmt.Fprintf(&buf, "%s,%s,%s,%s,%s,%s,%s\n",
			point.GrossAnnual.StringFixed(2),
			point.OldTotalTax.StringFixed(2),
			point.NewTotalTax.StringFixed(2),
			point.TaxGap.StringFixed(2),
			point.Cheaper,
			point.OldMonthlyInHand.StringFixed(2),
			point.NewMonthlyInHand.StringFixed(2))
	}

	return buf.String(), nil
}

// SweepJSONFormatter formats a salary sweep as JSON.
type SweepJSONFormatter struct{}

func (sjf SweepJSONFormatter) Name() string { return "json" }

func (sjf SweepJSONFormatter) FormatSweep(points []calculation.SweepPoint) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("no sweep points to format")
	}

	crossoverGross := make([]decimal.Decimal, 0, 1)
	for _, idx := range sweepCrossoverIndices(points) {
		crossoverGross = append(crossoverGross, points[idx].GrossAnnual)
	}

	payload := struct {
		Points         []calculation.SweepPoint `json:"points"`
		CrossoverGross []decimal.Decimal        `json:"crossover_gross"`
	}{Points: points, CrossoverGross: crossoverGross}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal sweep: %w", err)
	}
	return string(data), nil
}

// NewSweepFormatter creates a sweep formatter based on the format name.
// Unrecognized names fall back to the console formatter.
func NewSweepFormatter(format string) SweepFormatter {
	switch NormalizeFormatName(format) {
	case "csv":
		return SweepCSVFormatter{}
	case "json":
		return SweepJSONFormatter{}
	default:
		return SweepConsoleFormatter{}
	}
}
