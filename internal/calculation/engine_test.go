package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxgo/regime-calculator/internal/domain"
)

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Decomposer, "Should initialize salary decomposer")
	assert.NotNil(t, engine.OldRegime, "Should initialize old-regime calculator")
	assert.NotNil(t, engine.NewRegime, "Should initialize new-regime calculator")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	// Test setting a custom logger
	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// Test setting nil logger (should use no-op logger)
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_RunComparison(t *testing.T) {
	engine := NewCalculationEngine()

	run, err := engine.RunComparison(domain.Scenario{
		GrossAnnual: decimal.NewFromInt(1500000),
		IsMetroCity: true,
		PFIncluded:  true,
	})

	assert.NoError(t, err)
	assert.NotNil(t, run)
	assert.Equal(t, domain.RegimeOld, run.Old.Regime)
	assert.Equal(t, domain.RegimeNew, run.New.Regime)
	assert.True(t, decimal.NewFromInt(103480).Equal(run.Old.TotalTax), "old total: got %s", run.Old.TotalTax)
	assert.True(t, decimal.NewFromInt(97500).Equal(run.New.TotalTax), "new total: got %s", run.New.TotalTax)
	assert.Equal(t, domain.RegimeNew, run.CheaperRegime())
	assert.True(t, decimal.NewFromInt(5980).Equal(run.TaxGap()), "gap: got %s", run.TaxGap())
}

func TestCalculationEngine_RunComparison_NegativeGross(t *testing.T) {
	engine := NewCalculationEngine()

	run, err := engine.RunComparison(domain.Scenario{
		GrossAnnual: decimal.NewFromInt(-500000),
	})

	assert.Error(t, err, "Should error for negative gross")
	assert.Nil(t, run, "Should return nil result")
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestCalculationEngine_RunComparison_BothRegimesSeeSameContext(t *testing.T) {
	engine := NewCalculationEngine()

	run, err := engine.RunComparison(domain.Scenario{
		GrossAnnual: decimal.NewFromInt(2400000),
		IsMetroCity: false,
		PFIncluded:  true,
	})

	assert.NoError(t, err)
	// Both results derive from one decomposition: identical gross and PF split
	assert.True(t, run.Old.MonthlyPF.Equal(run.New.MonthlyPF))
	assert.True(t, run.Context.TotalPF.Equal(decimal.NewFromInt(288000))) // 2 * 12% of 1200000
}

func TestCalculationEngine_TaxGapAt(t *testing.T) {
	engine := NewCalculationEngine()

	gap, err := engine.TaxGapAt(decimal.NewFromInt(1500000), true, true)
	assert.NoError(t, err)
	// 103480 - 97500
	assert.True(t, decimal.NewFromInt(5980).Equal(gap), "gap: got %s", gap)

	_, err = engine.TaxGapAt(decimal.NewFromInt(-1), true, true)
	assert.Error(t, err)
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
