package calculation

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// SweepPoint is one row of a salary sweep: both regimes evaluated at a
// single gross salary.
type SweepPoint struct {
	GrossAnnual      decimal.Decimal `json:"gross_annual"`
	OldTotalTax      decimal.Decimal `json:"old_total_tax"`
	NewTotalTax      decimal.Decimal `json:"new_total_tax"`
	TaxGap           decimal.Decimal `json:"tax_gap"`
	Cheaper          domain.Regime   `json:"cheaper"`
	OldMonthlyInHand decimal.Decimal `json:"old_monthly_in_hand"`
	NewMonthlyInHand decimal.Decimal `json:"new_monthly_in_hand"`
}

// SweepOptions defines the gross-salary range to evaluate.
type SweepOptions struct {
	From        decimal.Decimal
	To          decimal.Decimal
	Step        decimal.Decimal
	IsMetroCity bool
	PFIncluded  bool
}

// maxSweepPoints bounds the number of rows a single sweep may produce.
const maxSweepPoints = 10000

// Validate checks the sweep range for usability.
func (so SweepOptions) Validate() error {
	if so.From.IsNegative() {
		return fmt.Errorf("sweep start cannot be negative, got %s", so.From.StringFixed(0))
	}
	if !so.To.GreaterThan(so.From) {
		return fmt.Errorf("sweep end %s must be greater than start %s", so.To.StringFixed(0), so.From.StringFixed(0))
	}
	if !so.Step.GreaterThan(decimal.Zero) {
		return fmt.Errorf("sweep step must be positive, got %s", so.Step.StringFixed(0))
	}
	points := so.To.Sub(so.From).Div(so.Step).IntPart() + 1
	if points > maxSweepPoints {
		return fmt.Errorf("sweep would produce %d points, maximum is %d; use a larger step", points, maxSweepPoints)
	}
	return nil
}

// RunSweep evaluates both regimes at each salary in the range. The context
// is checked between iterations so a long sweep can be cancelled.
func (ce *CalculationEngine) RunSweep(ctx context.Context, opts SweepOptions) ([]SweepPoint, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep options: %w", err)
	}

	ce.Logger.Debugf("sweeping gross %s..%s step %s",
		opts.From.StringFixed(0), opts.To.StringFixed(0), opts.Step.StringFixed(0))

	var points []SweepPoint
	for gross := opts.From; gross.LessThanOrEqual(opts.To); gross = gross.Add(opts.Step) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		run, err := ce.RunComparison(domain.Scenario{
			GrossAnnual: gross,
			IsMetroCity: opts.IsMetroCity,
			PFIncluded:  opts.PFIncluded,
		})
		if err != nil {
			return nil, fmt.Errorf("sweep at gross %s: %w", gross.StringFixed(0), err)
		}

		points = append(points, SweepPoint{
			GrossAnnual:      gross,
			OldTotalTax:      run.Old.TotalTax,
			NewTotalTax:      run.New.TotalTax,
			TaxGap:           run.TaxGap(),
			Cheaper:          run.CheaperRegime(),
			OldMonthlyInHand: run.Old.MonthlyInHand,
			NewMonthlyInHand: run.New.MonthlyInHand,
		})
	}

	return points, nil
}
