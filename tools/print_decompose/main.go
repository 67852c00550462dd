package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/domain"
)

func main() {
	sd := calculation.NewSalaryDecomposer2025()
	oldCalc := calculation.NewOldRegimeCalculator2025()
	newCalc := calculation.NewNewRegimeCalculator2025()

	cases := []struct {
		label string
		gross decimal.Decimal
		metro bool
		pf    bool
	}{
		{"metro with PF", decimal.NewFromInt(1800000), true, true},
		{"non-metro without PF", decimal.NewFromInt(1800000), false, false},
		{"rebate edge", decimal.NewFromInt(1275000), true, true},
	}

	for _, tc := range cases {
		sc, err := sd.Decompose(tc.gross, tc.metro, tc.pf)
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s (gross %s):\n", tc.label, tc.gross.StringFixed(0))
		fmt.Printf("  Basic: %s  HRA received: %s  Employee PF: %s\n",
			sc.Basic.StringFixed(2), sc.HRAReceived.StringFixed(2), sc.PFEmployee.StringFixed(2))

		for _, res := range []domain.TaxResult{oldCalc.Compute(sc), newCalc.Compute(sc)} {
			fmt.Printf("  %s: deductions %s taxable %s slab tax %s surcharge %s cess %s total %s\n",
				res.Regime,
				res.TotalDeductions.StringFixed(0),
				res.TaxableIncome.StringFixed(0),
				res.IncomeTax.StringFixed(0),
				res.Surcharge.StringFixed(0),
				res.Cess.StringFixed(0),
				res.TotalTax.StringFixed(0))
		}
		fmt.Println()
	}
}
