package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/compare"
	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/output"
)

// TestBasicIntegration tests the basic flow from rule loading through
// calculation to report generation.
func TestBasicIntegration(t *testing.T) {
	t.Run("rules_loading", func(t *testing.T) {
		rules, err := config.LoadOrDefault("")
		require.NoError(t, err, "Should load built-in rules")

		assert.Equal(t, "2025-26", rules.Metadata.FinancialYear)
		assert.Equal(t, "2026-27", rules.Metadata.AssessmentYear)
		assert.Len(t, rules.OldRegime.Slabs, 4, "Old regime should have 4 slabs")
		assert.Len(t, rules.NewRegime.Slabs, 7, "New regime should have 7 slabs")

		// The built-in set must satisfy its own validation
		err = config.NewRulesParser().ValidateRules(&rules)
		assert.NoError(t, err, "Built-in rules should validate")
	})

	t.Run("rules_roundtrip", func(t *testing.T) {
		rules, err := config.LoadOrDefault("")
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "rules.yaml")
		err = output.SaveRules(&rules, path)
		require.NoError(t, err, "Should save rules to YAML")

		reloaded, err := config.LoadOrDefault(path)
		require.NoError(t, err, "Should reload saved rules")

		assert.Equal(t, rules.Metadata.FinancialYear, reloaded.Metadata.FinancialYear)
		assert.Len(t, reloaded.NewRegime.Slabs, len(rules.NewRegime.Slabs))
		assert.True(t, rules.OldRegime.StandardDeduction.Equal(reloaded.OldRegime.StandardDeduction),
			"standard deduction: got %s", reloaded.OldRegime.StandardDeduction)
		assert.True(t, rules.CessRate.Equal(reloaded.CessRate),
			"cess rate: got %s", reloaded.CessRate)
	})

	t.Run("calculation_engine", func(t *testing.T) {
		run := mustRunComparison(t, 1500000, true, true)

		// Structural decomposition
		assert.True(t, decimal.NewFromInt(750000).Equal(run.Context.Basic), "basic: got %s", run.Context.Basic)
		assert.True(t, decimal.NewFromInt(375000).Equal(run.Context.HRAReceived), "hra: got %s", run.Context.HRAReceived)
		assert.True(t, decimal.NewFromInt(90000).Equal(run.Context.PFEmployee), "pf employee: got %s", run.Context.PFEmployee)
		assert.True(t, decimal.NewFromInt(180000).Equal(run.Context.TotalPF), "total pf: got %s", run.Context.TotalPF)

		// Old regime: 375000 HRA + 90000 80C + 50000 std + 50000 80D
		assert.True(t, decimal.NewFromInt(565000).Equal(run.Old.TotalDeductions), "old deductions: got %s", run.Old.TotalDeductions)
		assert.True(t, decimal.NewFromInt(935000).Equal(run.Old.TaxableIncome), "old taxable: got %s", run.Old.TaxableIncome)
		assert.True(t, decimal.NewFromInt(99500).Equal(run.Old.IncomeTax), "old slab tax: got %s", run.Old.IncomeTax)
		assert.True(t, decimal.NewFromInt(3980).Equal(run.Old.Cess), "old cess: got %s", run.Old.Cess)
		assert.True(t, decimal.NewFromInt(103480).Equal(run.Old.TotalTax), "old total: got %s", run.Old.TotalTax)
		assert.True(t, decimal.NewFromInt(1396520).Equal(run.Old.NetAnnualIncome), "old net: got %s", run.Old.NetAnnualIncome)

		// New regime: only the 75000 standard deduction applies
		assert.True(t, decimal.NewFromInt(1425000).Equal(run.New.TaxableIncome), "new taxable: got %s", run.New.TaxableIncome)
		assert.True(t, decimal.NewFromInt(93750).Equal(run.New.IncomeTax), "new slab tax: got %s", run.New.IncomeTax)
		assert.True(t, decimal.NewFromInt(97500).Equal(run.New.TotalTax), "new total: got %s", run.New.TotalTax)
		assert.True(t, decimal.NewFromInt(101875).Equal(run.New.MonthlyInHand), "new monthly in-hand: got %s", run.New.MonthlyInHand)
		assert.True(t, decimal.NewFromInt(116875).Equal(run.New.MonthlyTotal), "new monthly total: got %s", run.New.MonthlyTotal)

		assert.Equal(t, domain.RegimeNew, run.CheaperRegime())
		assert.True(t, decimal.NewFromInt(5980).Equal(run.TaxGap()), "gap: got %s", run.TaxGap())
	})

	t.Run("output_generation", func(t *testing.T) {
		run := mustRunComparison(t, 1500000, true, true)

		console, err := output.ConsoleFormatter{}.Format(run)
		require.NoError(t, err)
		text := string(console)
		assert.Contains(t, text, "--- Salary & Tax Comparison (FY 2025-26) ---")
		assert.Contains(t, text, "Old Regime")
		assert.Contains(t, text, "New Regime")
		assert.Contains(t, text, "--- End of Report ---")

		csvOut, err := output.CSVFormatter{}.Format(run)
		require.NoError(t, err)
		assert.Contains(t, string(csvOut), "Regime,GrossAnnual", "CSV should start with the column header")

		jsonOut, err := output.JSONFormatter{Pretty: true}.Format(run)
		require.NoError(t, err)
		assert.Contains(t, string(jsonOut), `"cheaper_regime"`)
		assert.Contains(t, string(jsonOut), `"total_tax"`)
	})

	t.Run("whatif_comparison", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()
		compareEngine := compare.NewCompareEngine(engine)

		base := domain.Scenario{
			Name:        "base",
			GrossAnnual: decimal.NewFromInt(1500000),
			IsMetroCity: true,
			PFIncluded:  true,
		}

		set, err := compareEngine.Compare(context.Background(), base, compare.CompareOptions{
			Templates: []string{"non_metro", "hike_10pct"},
		})
		require.NoError(t, err, "Should run template comparison")
		require.NotNil(t, set)

		assert.Equal(t, "base", set.BaseScenarioName)
		require.Len(t, set.AlternativeResults, 2, "Should produce one result per template")
		assert.Equal(t, "base_non_metro", set.AlternativeResults[0].ScenarioName)
		assert.Equal(t, "base_hike_10pct", set.AlternativeResults[1].ScenarioName)
		assert.NotEmpty(t, set.Recommendations, "Should generate recommendations")

		// The 10% hike raises gross; the base deltas must reflect that
		hiked := set.AlternativeResults[1]
		assert.True(t, decimal.NewFromInt(1650000).Equal(hiked.GrossAnnual), "hiked gross: got %s", hiked.GrossAnnual)
		assert.True(t, hiked.TaxDiffFromBase.GreaterThan(decimal.Zero), "Higher gross should owe more tax")
	})
}

// TestErrorHandling exercises the failure paths a user can reach from
// the command line.
func TestErrorHandling(t *testing.T) {
	t.Run("negative_gross", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()

		run, err := engine.RunComparison(domain.Scenario{
			GrossAnnual: decimal.NewFromInt(-100000),
			IsMetroCity: true,
			PFIncluded:  true,
		})
		assert.Error(t, err, "Should reject negative gross")
		assert.Nil(t, run)
		assert.Contains(t, err.Error(), "cannot be negative")
	})

	t.Run("missing_rules_file", func(t *testing.T) {
		_, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "no-such-rules.yaml"))
		assert.Error(t, err, "Should fail for a missing rules file")
	})

	t.Run("malformed_rules_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		err := os.WriteFile(path, []byte("metadata: [not: a: mapping"), 0644)
		require.NoError(t, err)

		_, err = config.LoadOrDefault(path)
		assert.Error(t, err, "Should reject malformed YAML")
	})

	t.Run("invalid_rules_rejected", func(t *testing.T) {
		// Valid YAML but no financial year; validation must catch it
		path := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(path, []byte("metadata:\n  description: missing year\n"), 0644)
		require.NoError(t, err)

		_, err = config.LoadOrDefault(path)
		require.Error(t, err, "Should reject rules without a financial year")
		assert.Contains(t, err.Error(), "financial_year")
	})

	t.Run("unknown_template", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()
		compareEngine := compare.NewCompareEngine(engine)

		base := domain.Scenario{
			Name:        "base",
			GrossAnnual: decimal.NewFromInt(1500000),
		}

		_, err := compareEngine.Compare(context.Background(), base, compare.CompareOptions{
			Templates: []string{"no_such_template"},
		})
		require.Error(t, err, "Should fail for an unknown template")
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("invalid_sweep_range", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()

		_, err := engine.RunSweep(context.Background(), calculation.SweepOptions{
			From: decimal.NewFromInt(2000000),
			To:   decimal.NewFromInt(1000000),
			Step: decimal.NewFromInt(100000),
		})
		assert.Error(t, err, "Should reject an inverted sweep range")
	})
}

// TestPerformance ensures calculations complete in reasonable time
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance test in short mode")
	}

	engine := calculation.NewCalculationEngine()

	t.Run("single_comparison_performance", func(t *testing.T) {
		start := time.Now()

		for i := 0; i < 1000; i++ {
			_, err := engine.RunComparison(domain.Scenario{
				GrossAnnual: decimal.NewFromInt(1500000),
				IsMetroCity: true,
				PFIncluded:  true,
			})
			require.NoError(t, err)
		}

		duration := time.Since(start)
		assert.Less(t, duration, 5*time.Second, "1000 comparisons should complete within 5 seconds")
		t.Logf("1000 comparisons completed in %v", duration)
	})

	t.Run("sweep_performance", func(t *testing.T) {
		start := time.Now()

		points, err := engine.RunSweep(context.Background(), calculation.SweepOptions{
			From:        decimal.NewFromInt(300000),
			To:          decimal.NewFromInt(10000000),
			Step:        decimal.NewFromInt(10000),
			IsMetroCity: true,
			PFIncluded:  true,
		})
		require.NoError(t, err)
		require.NotEmpty(t, points)

		duration := time.Since(start)
		assert.Less(t, duration, 10*time.Second, "A full-range sweep should complete within 10 seconds")
		t.Logf("Sweep of %d points completed in %v", len(points), duration)
	})
}

// TestDataConsistency checks that the independent calculation paths agree.
func TestDataConsistency(t *testing.T) {
	t.Run("engine_matches_direct_calculators", func(t *testing.T) {
		run := mustRunComparison(t, 1800000, true, true)

		decomposer := calculation.NewSalaryDecomposer2025()
		sc, err := decomposer.Decompose(decimal.NewFromInt(1800000), true, true)
		require.NoError(t, err)

		oldResult := calculation.NewOldRegimeCalculator2025().Compute(sc)
		newResult := calculation.NewNewRegimeCalculator2025().Compute(sc)

		assert.True(t, run.Old.TotalTax.Equal(oldResult.TotalTax),
			"engine old %s should match direct calculator %s", run.Old.TotalTax, oldResult.TotalTax)
		assert.True(t, run.New.TotalTax.Equal(newResult.TotalTax),
			"engine new %s should match direct calculator %s", run.New.TotalTax, newResult.TotalTax)
	})

	t.Run("sweep_matches_single_runs", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()

		points, err := engine.RunSweep(context.Background(), calculation.SweepOptions{
			From:        decimal.NewFromInt(1000000),
			To:          decimal.NewFromInt(2000000),
			Step:        decimal.NewFromInt(500000),
			IsMetroCity: true,
			PFIncluded:  true,
		})
		require.NoError(t, err)
		require.Len(t, points, 3)

		for _, point := range points {
			run, err := engine.RunComparison(domain.Scenario{
				GrossAnnual: point.GrossAnnual,
				IsMetroCity: true,
				PFIncluded:  true,
			})
			require.NoError(t, err)

			assert.True(t, point.OldTotalTax.Equal(run.Old.TotalTax),
				"sweep old at %s: got %s want %s", point.GrossAnnual, point.OldTotalTax, run.Old.TotalTax)
			assert.True(t, point.NewTotalTax.Equal(run.New.TotalTax),
				"sweep new at %s: got %s want %s", point.GrossAnnual, point.NewTotalTax, run.New.TotalTax)
			assert.Equal(t, run.CheaperRegime(), point.Cheaper)
		}
	})

	t.Run("tax_gap_definition", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()

		run, err := engine.RunComparison(domain.Scenario{
			GrossAnnual: decimal.NewFromInt(2400000),
			IsMetroCity: false,
			PFIncluded:  true,
		})
		require.NoError(t, err)

		gap, err := engine.TaxGapAt(decimal.NewFromInt(2400000), false, true)
		require.NoError(t, err)

		expected := run.Old.TotalTax.Sub(run.New.TotalTax)
		assert.True(t, gap.Equal(expected), "gap %s should equal old minus new %s", gap, expected)
		assert.True(t, gap.Equal(run.TaxGap()), "TaxGapAt should agree with ComparisonRun.TaxGap")
	})

	t.Run("recommendation_matches_run", func(t *testing.T) {
		run := mustRunComparison(t, 12000000, true, true)

		rec := output.AnalyzeRun(run)
		assert.Equal(t, run.CheaperRegime(), rec.Regime)
		assert.True(t, rec.Savings.Equal(run.Savings()), "savings: got %s", rec.Savings)
		assert.True(t, rec.HighIncome, "A 1.2 crore gross should trip the high-income advisory")
	})
}
