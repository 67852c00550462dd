package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// Formatter renders one comparison run in a single output format.
type Formatter interface {
	Name() string
	Format(run *domain.ComparisonRun) ([]byte, error)
}

// NormalizeFormatName lowercases a user-supplied format name and folds
// the accepted aliases onto their canonical formatter names.
func NormalizeFormatName(name string) string {
	switch normalized := strings.ToLower(strings.TrimSpace(name)); normalized {
	case "table":
		return "console"
	case "console-verbose", "detailed":
		return "verbose"
	default:
		return normalized
	}
}

// GetFormatterByName returns the formatter registered under name, or nil
// when no formatter matches.
func GetFormatterByName(name string) Formatter {
	switch NormalizeFormatName(name) {
	case "console":
		return ConsoleFormatter{}
	case "verbose":
		return ConsoleVerboseFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "csv":
		return CSVFormatter{}
	case "html":
		return HTMLFormatter{}
	}
	return nil
}

// Recommendation summarizes which regime to elect for a comparison run.
type Recommendation struct {
	Regime         domain.Regime
	Savings        decimal.Decimal
	MonthlySavings decimal.Decimal
	HighIncome     bool
}

// AnalyzeRun derives the regime election from a comparison run. The
// high-income advisory mirrors the fixed FY 2025-26 cliff regardless of
// any custom rules the run was computed under.
func AnalyzeRun(run *domain.ComparisonRun) Recommendation {
	threshold := domain.DefaultTaxRules2025().HighIncomeThreshold
	savings := run.Savings()
	return Recommendation{
		Regime:         run.CheaperRegime(),
		Savings:        savings,
		MonthlySavings: savings.Div(decimal.NewFromInt(12)),
		HighIncome:     run.Context.IsHighIncome(threshold),
	}
}
