package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/domain"
)

func main() {
	from := decimal.NewFromInt(500000)
	to := decimal.NewFromInt(5000000)
	step := decimal.NewFromInt(100000)
	if len(os.Args) > 3 {
		from = decimal.RequireFromString(os.Args[1])
		to = decimal.RequireFromString(os.Args[2])
		step = decimal.RequireFromString(os.Args[3])
	}

	engine := calc.NewCalculationEngine()

	// Header
	fmt.Println("Gross,OldTax,NewTax,Gap,Cheaper")

	type gridPoint struct {
		gross decimal.Decimal
		gap   decimal.Decimal
	}
	var prev *gridPoint
	var bracketLo, bracketHi *gridPoint

	for gross := from; gross.LessThanOrEqual(to); gross = gross.Add(step) {
		run, err := engine.RunComparison(domain.Scenario{
			GrossAnnual: gross,
			IsMetroCity: true,
			PFIncluded:  true,
		})
		if err != nil {
			panic(err)
		}
		gap := run.TaxGap()
		fmt.Printf("%s,%s,%s,%s,%s\n",
			gross.StringFixed(0),
			run.Old.TotalTax.StringFixed(0),
			run.New.TotalTax.StringFixed(0),
			gap.StringFixed(0),
			run.CheaperRegime(),
		)

		point := gridPoint{gross: gross, gap: gap}
		if prev != nil && bracketLo == nil {
			// A strictly signed gap followed by a zero or opposite-signed
			// gap brackets the crossover. The zero plateau at low salaries
			// never does.
			if (prev.gap.IsPositive() && !gap.IsPositive()) || (prev.gap.IsNegative() && !gap.IsNegative()) {
				lo, hi := *prev, point
				bracketLo, bracketHi = &lo, &hi
			}
		}
		prev = &point
	}

	if bracketLo != nil {
		fmt.Printf("\nSign change between gross %s (gap %s) and gross %s (gap %s)\n",
			bracketLo.gross.StringFixed(0), bracketLo.gap.StringFixed(0),
			bracketHi.gross.StringFixed(0), bracketHi.gap.StringFixed(0))
	} else {
		fmt.Println("\nNo sign change within the grid")
	}
}
