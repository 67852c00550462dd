package output

import (
	"bytes"
	"encoding/csv"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// CSVFormatter implements the summary CSV output (one row per regime).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(run *domain.ComparisonRun) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Regime", "GrossAnnual", "HRAExemption", "Deduction80C", "StandardDeduction",
		"TotalDeductions", "TaxableIncome", "IncomeTax", "Surcharge", "Cess", "TotalTax",
		"NetAnnualIncome", "MonthlyInHand", "MonthlyPF", "MonthlyTotal",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, result := range []domain.TaxResult{run.Old, run.New} {
		row := []string{
			string(result.Regime),
			run.Context.GrossAnnual.StringFixed(2),
			result.HRAExemption.StringFixed(2),
			result.Deduction80C.StringFixed(2),
			result.StandardDeduction.StringFixed(2),
			result.TotalDeductions.StringFixed(2),
			result.TaxableIncome.StringFixed(2),
			result.IncomeTax.StringFixed(2),
			result.Surcharge.StringFixed(2),
			result.Cess.StringFixed(2),
			result.TotalTax.StringFixed(2),
			result.NetAnnualIncome.StringFixed(2),
			result.MonthlyInHand.StringFixed(2),
			result.MonthlyPF.StringFixed(2),
			result.MonthlyTotal.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
