package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// JSONFormatter produces the machine-readable report.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(run *domain.ComparisonRun) ([]byte, error) {
	rec := AnalyzeRun(run)
	report := struct {
		*domain.ComparisonRun
		CheaperRegime domain.Regime   `json:"cheaper_regime"`
		Savings       decimal.Decimal `json:"savings"`
		HighIncome    bool            `json:"high_income"`
	}{run, rec.Regime, rec.Savings, rec.HighIncome}

	if j.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
