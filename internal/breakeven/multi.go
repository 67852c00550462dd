package breakeven

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// FindCrossoverMatrix runs the crossover search across all four combinations
// of city class and PF structuring, so the effect of each flag on the
// switch-over salary can be compared side by side.
func (s *Solver) FindCrossoverMatrix(
	ctx context.Context,
	minGross, maxGross *decimal.Decimal,
) (*MatrixResult, error) {

	// Define flag combinations to test
	combos := []struct {
		isMetroCity bool
		pfIncluded  bool
	}{
		{true, true},
		{true, false},
		{false, true},
		{false, false},
	}

	var results []CrossoverResult

	// Run the crossover search for each combination
	for _, combo := range combos {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		constraints := DefaultConstraints(combo.isMetroCity, combo.pfIncluded)
		if minGross != nil {
			constraints.MinGross = minGross
		}
		if maxGross != nil {
			constraints.MaxGross = maxGross
		}

		req := CrossoverRequest{
			Constraints:   constraints,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.FindCrossover(ctx, req)
		if err != nil {
			// A combination with no crossover in range is a finding, not a
			// failure of the whole matrix; continue with the others.
			continue
		}

		if result != nil && result.Success {
			results = append(results, *result)
		}
	}

	if len(results) == 0 {
		return nil, &CrossoverError{
			Operation: "crossover_matrix",
			Message:   "no flag combination has a crossover in the search range",
		}
	}

	mdResult := &MatrixResult{
		Results: results,
	}

	mdResult.Recommendations = s.generateMatrixRecommendations(mdResult)

	return mdResult, nil
}

// generateMatrixRecommendations creates recommendations from matrix results
func (s *Solver) generateMatrixRecommendations(result *MatrixResult) []string {
	var recommendations []string

	// Find the extremes of the crossover range
	lowest := &result.Results[0]
	highest := &result.Results[0]
	for i := range result.Results {
		r := &result.Results[i]
		if r.CrossoverGross.LessThan(lowest.CrossoverGross) {
			lowest = r
		}
		if r.CrossoverGross.GreaterThan(highest.CrossoverGross) {
			highest = r
		}
	}

	if !lowest.CrossoverGross.Equal(highest.CrossoverGross) {
		recommendations = append(recommendations,
			fmt.Sprintf("Crossover ranges from %s (%s) to %s (%s) depending on salary structure",
				formatGrossShort(lowest.CrossoverGross), describeFlags(lowest.Request.Constraints),
				formatGrossShort(highest.CrossoverGross), describeFlags(highest.Request.Constraints)))
	}

	// Per-combination guidance
	for i := range result.Results {
		r := &result.Results[i]
		recommendations = append(recommendations,
			fmt.Sprintf("%s: below %s prefer the %s, above it the %s",
				describeFlags(r.Request.Constraints),
				formatGrossShort(r.CrossoverGross),
				r.CheaperBelow, r.CheaperAbove))
	}

	return recommendations
}

// describeFlags renders a flag combination for display.
func describeFlags(c Constraints) string {
	city := "non-metro"
	if c.IsMetroCity {
		city = "metro"
	}
	pf := "PF excluded"
	if c.PFIncluded {
		pf = "PF included"
	}
	return city + ", " + pf
}

// formatGrossShort renders a gross salary in lakh for compact display.
func formatGrossShort(gross decimal.Decimal) string {
	lakh := gross.Div(decimal.NewFromInt(100000))
	return lakh.StringFixed(2) + " lakh"
}
