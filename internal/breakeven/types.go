package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// Constraints bound the gross-salary search range and fix the policy flags
// the crossover is solved under.
type Constraints struct {
	MinGross *decimal.Decimal `json:"min_gross,omitempty"`
	MaxGross *decimal.Decimal `json:"max_gross,omitempty"`

	IsMetroCity bool `json:"is_metro_city"`
	PFIncluded  bool `json:"pf_included"`
}

// DefaultConstraints returns a search range wide enough to contain the
// crossover for every realistic salary structure.
func DefaultConstraints(isMetroCity, pfIncluded bool) Constraints {
	minGross := decimal.Zero
	maxGross := decimal.NewFromInt(100000000)

	return Constraints{
		MinGross:    &minGross,
		MaxGross:    &maxGross,
		IsMetroCity: isMetroCity,
		PFIncluded:  pfIncluded,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.MinGross != nil && c.MinGross.IsNegative() {
		return &CrossoverError{
			Operation: "validate_constraints",
			Message:   "min_gross cannot be negative",
		}
	}

	if c.MinGross != nil && c.MaxGross != nil {
		if c.MinGross.GreaterThanOrEqual(*c.MaxGross) {
			return &CrossoverError{
				Operation: "validate_constraints",
				Message:   "min_gross must be below max_gross",
			}
		}
	}

	return nil
}

// CrossoverRequest defines the parameters for a crossover search
type CrossoverRequest struct {
	Constraints   Constraints
	MaxIterations int             // Maximum bisection iterations
	Tolerance     decimal.Decimal // Gross-salary tolerance for convergence
}

// CrossoverResult contains the gross salary at which the two regimes charge
// the same total tax, plus the full comparison at that point.
type CrossoverResult struct {
	Request         CrossoverRequest
	Success         bool
	Iterations      int
	ConvergenceInfo string

	CrossoverGross decimal.Decimal       `json:"crossover_gross"`
	GapAtCrossover decimal.Decimal       `json:"gap_at_crossover"`
	Run            *domain.ComparisonRun `json:"run"`

	// Which regime wins on either side of the crossover
	CheaperBelow domain.Regime `json:"cheaper_below"`
	CheaperAbove domain.Regime `json:"cheaper_above"`
}

// MatrixResult holds crossover searches across all four policy-flag
// combinations.
type MatrixResult struct {
	Results         []CrossoverResult
	Recommendations []string
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	ScanPoints    int             // Coarse grid resolution used to bracket the sign change
	Tolerance     decimal.Decimal // Convergence tolerance on gross salary
	MaxIterations int             // Maximum bisection iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		ScanPoints:    200,
		Tolerance:     decimal.NewFromInt(1), // converge to the rupee
		MaxIterations: 64,
	}
}

// CrossoverError represents errors from the crossover solver
type CrossoverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *CrossoverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *CrossoverError) Unwrap() error {
	return e.Cause
}
