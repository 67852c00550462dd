package integration

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/output"
)

// TestIntegrationSuite runs all integration tests
func TestIntegrationSuite(t *testing.T) {
	t.Run("Basic_Integration", TestBasicIntegration)
	t.Run("Error_Handling", TestErrorHandling)
	t.Run("Data_Consistency", TestDataConsistency)
	t.Run("Golden_Scenarios", TestGoldenScenarios)
	t.Run("Crossover_Analysis", TestCrossoverAnalysis)
}

// TestIntegrationSmokeTest runs a quick smoke test of core functionality
func TestIntegrationSmokeTest(t *testing.T) {
	t.Run("basic_calculation", func(t *testing.T) {
		rules, err := config.LoadOrDefault("")
		require.NoError(t, err)

		engine := calculation.NewCalculationEngineWithConfig(rules)
		run, err := engine.RunComparison(domain.Scenario{
			GrossAnnual: decimal.NewFromInt(1500000),
			IsMetroCity: true,
			PFIncluded:  true,
		})
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, domain.RegimeOld, run.Old.Regime)
		assert.Equal(t, domain.RegimeNew, run.New.Regime)
	})

	t.Run("basic_output_generation", func(t *testing.T) {
		run := mustRunComparison(t, 1500000, true, true)

		// Console and JSON cover the two report paths (writer and formatter)
		err := output.GenerateReport(run, "console")
		assert.NoError(t, err, "Should generate console output")

		err = output.GenerateReport(run, "json")
		assert.NoError(t, err, "Should generate JSON output")
	})
}

// TestIntegrationRegression tests for regression issues
func TestIntegrationRegression(t *testing.T) {
	t.Run("calculation_consistency", func(t *testing.T) {
		engine := calculation.NewCalculationEngine()
		scenario := domain.Scenario{
			GrossAnnual: decimal.NewFromInt(1500000),
			IsMetroCity: true,
			PFIncluded:  true,
		}

		// The engine is pure; repeated runs must agree to the paisa
		run1, err := engine.RunComparison(scenario)
		require.NoError(t, err)

		run2, err := engine.RunComparison(scenario)
		require.NoError(t, err)

		assert.True(t, run1.Old.TotalTax.Equal(run2.Old.TotalTax), "Old-regime tax should be identical across runs")
		assert.True(t, run1.New.TotalTax.Equal(run2.New.TotalTax), "New-regime tax should be identical across runs")
		assert.True(t, run1.TaxGap().Equal(run2.TaxGap()), "Tax gap should be identical across runs")
	})

	t.Run("output_format_consistency", func(t *testing.T) {
		run := mustRunComparison(t, 1500000, true, true)

		formats := []string{"console", "verbose", "json", "csv", "html"}

		for _, format := range formats {
			t.Run(fmt.Sprintf("format_%s", format), func(t *testing.T) {
				f := output.GetFormatterByName(format)
				require.NotNil(t, f, "Should find formatter %s", format)

				data, err := f.Format(run)
				require.NoError(t, err, "Should format %s output", format)
				assert.NotEmpty(t, data, "%s output should not be empty", format)
			})
		}
	})
}

// mustRunComparison runs a full comparison under the built-in rules and fails
// the test on any error.
func mustRunComparison(t *testing.T, gross int64, metro, pf bool) *domain.ComparisonRun {
	t.Helper()

	engine := calculation.NewCalculationEngine()
	run, err := engine.RunComparison(domain.Scenario{
		GrossAnnual: decimal.NewFromInt(gross),
		IsMetroCity: metro,
		PFIncluded:  pf,
	})
	require.NoError(t, err, "Comparison run should succeed")
	require.NotNil(t, run)
	return run
}
