package breakeven

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/domain"
)

// Solver locates the gross salary where the old and new regimes charge the
// same total tax. The tax gap (old minus new) is piecewise linear in gross
// salary, so a coarse scan brackets the sign change and bisection finishes
// the job.
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new crossover solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// FindCrossover searches the constrained range for the salary at which the
// regimes trade places. Zero-gap plateaus (both regimes fully rebated at
// low salaries) never bracket a crossover; only a signed gap followed by a
// zero or opposite-signed gap does.
func (s *Solver) FindCrossover(ctx context.Context, req CrossoverRequest) (*CrossoverResult, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	minGross := decimal.Zero
	maxGross := decimal.NewFromInt(100000000)
	if req.Constraints.MinGross != nil {
		minGross = *req.Constraints.MinGross
	}
	if req.Constraints.MaxGross != nil {
		maxGross = *req.Constraints.MaxGross
	}

	lo, hi, err := s.bracketSignChange(ctx, req, minGross, maxGross)
	if err != nil {
		return nil, err
	}

	return s.bisect(ctx, req, lo, hi)
}

// bracketSignChange scans a coarse grid for an adjacent pair where a
// strictly signed gap is followed by a zero or opposite-signed gap. The
// zero plateau at low salaries starts every transition from zero, so it
// can never bracket.
func (s *Solver) bracketSignChange(ctx context.Context, req CrossoverRequest, minGross, maxGross decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	points := s.Options.ScanPoints
	if points < 2 {
		points = 2
	}
	step := maxGross.Sub(minGross).Div(decimal.NewFromInt(int64(points)))

	prevGross := minGross
	prevGap, err := s.gapAt(req, prevGross)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	sawPositive := prevGap.IsPositive()
	sawNegative := prevGap.IsNegative()

	for i := 1; i <= points; i++ {
		select {
		case <-ctx.Done():
			return decimal.Zero, decimal.Zero, ctx.Err()
		default:
		}

		gross := minGross.Add(step.Mul(decimal.NewFromInt(int64(i))))
		gap, err := s.gapAt(req, gross)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}

		if (prevGap.IsPositive() && !gap.IsPositive()) || (prevGap.IsNegative() && !gap.IsNegative()) {
			return prevGross, gross, nil
		}

		sawPositive = sawPositive || gap.IsPositive()
		sawNegative = sawNegative || gap.IsNegative()
		prevGross, prevGap = gross, gap
	}

	// No sign change anywhere in the range.
	msg := "the two regimes charge identical tax across the whole range"
	if sawPositive && !sawNegative {
		msg = fmt.Sprintf("%s stays cheaper across the whole range", domain.RegimeNew)
	} else if sawNegative && !sawPositive {
		msg = fmt.Sprintf("%s stays cheaper across the whole range", domain.RegimeOld)
	}
	return decimal.Zero, decimal.Zero, &CrossoverError{
		Operation: "bracket_sign_change",
		Message:   fmt.Sprintf("no crossover between %s and %s: %s", minGross.StringFixed(0), maxGross.StringFixed(0), msg),
	}
}

// bisect narrows a bracketing interval down to the tolerance.
func (s *Solver) bisect(ctx context.Context, req CrossoverRequest, lo, hi decimal.Decimal) (*CrossoverResult, error) {
	gapLo, err := s.gapAt(req, lo)
	if err != nil {
		return nil, err
	}

	iterations := 0
	for hi.Sub(lo).GreaterThan(req.Tolerance) && iterations < req.MaxIterations {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		gapMid, err := s.gapAt(req, mid)
		if err != nil {
			return nil, err
		}

		if gapMid.IsZero() {
			return s.buildResult(req, mid, gapLo, iterations, "Exact crossover found")
		}

		if gapMid.IsPositive() == gapLo.IsPositive() {
			lo, gapLo = mid, gapMid
		} else {
			hi = mid
		}
	}

	if hi.Sub(lo).GreaterThan(req.Tolerance) {
		return nil, &CrossoverError{
			Operation: "bisect",
			Message:   fmt.Sprintf("did not converge after %d iterations", req.MaxIterations),
		}
	}

	info := fmt.Sprintf("Converged within %s after %d iterations", req.Tolerance.StringFixed(0), iterations)
	return s.buildResult(req, hi, gapLo, iterations, info)
}

// buildResult evaluates the full comparison at the crossover point.
func (s *Solver) buildResult(req CrossoverRequest, gross, gapBelow decimal.Decimal, iterations int, info string) (*CrossoverResult, error) {
	run, err := s.CalcEngine.RunComparison(domain.Scenario{
		GrossAnnual: gross,
		IsMetroCity: req.Constraints.IsMetroCity,
		PFIncluded:  req.Constraints.PFIncluded,
	})
	if err != nil {
		return nil, &CrossoverError{
			Operation: "build_result",
			Message:   "failed to evaluate comparison at crossover",
			Cause:     err,
		}
	}

	cheaperBelow := domain.RegimeNew
	cheaperAbove := domain.RegimeOld
	if gapBelow.IsNegative() {
		cheaperBelow, cheaperAbove = cheaperAbove, cheaperBelow
	}

	return &CrossoverResult{
		Request:         req,
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: info,
		CrossoverGross:  gross,
		GapAtCrossover:  run.TaxGap(),
		Run:             run,
		CheaperBelow:    cheaperBelow,
		CheaperAbove:    cheaperAbove,
	}, nil
}

// gapAt evaluates old minus new total tax at a gross salary.
func (s *Solver) gapAt(req CrossoverRequest, gross decimal.Decimal) (decimal.Decimal, error) {
	gap, err := s.CalcEngine.TaxGapAt(gross, req.Constraints.IsMetroCity, req.Constraints.PFIncluded)
	if err != nil {
		return decimal.Zero, &CrossoverError{
			Operation: "evaluate_gap",
			Message:   fmt.Sprintf("failed at gross %s", gross.StringFixed(0)),
			Cause:     err,
		}
	}
	return gap, nil
}
