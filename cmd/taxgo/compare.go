package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/output"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare Old and New regime tax for a gross salary",
	Long: `Compare the tax liability under the Old and New regimes for a gross
annual salary (CTC).

Examples:
  ./taxgo compare --gross 1800000
  ./taxgo compare --gross 2400000 --metro=false --format json
  ./taxgo compare --gross 1200000 --pf=false --format verbose
  ./taxgo compare --gross 3600000 --rules my-rules.yaml --format csv
`,
	Args: cobra.NoArgs,
	Run:  runCompare,
}

var (
	compareGross   string
	compareMetro   bool
	comparePF      bool
	compareRules   string
	compareFormat  string
	compareVerbose bool
)

func init() {
	compareCmd.Flags().StringVar(&compareGross, "gross", "1500000", "Gross annual salary (CTC) in rupees")
	compareCmd.Flags().BoolVar(&compareMetro, "metro", true, "Metro city residence (50% HRA exemption cap instead of 40%)")
	compareCmd.Flags().BoolVar(&comparePF, "pf", true, "Employee PF is part of the CTC (counts toward 80C in the Old Regime)")
	compareCmd.Flags().StringVar(&compareRules, "rules", "", "Path to a tax rules YAML file (default: built-in FY 2025-26 rules)")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "console", "Output format (console, verbose, json, csv, html)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Log calculation steps to stderr")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	gross, err := decimal.NewFromString(compareGross)
	if err != nil {
		log.Fatalf("invalid --gross value %q: %v", compareGross, err)
	}

	rules, err := config.LoadOrDefault(compareRules)
	if err != nil {
		log.Fatal(err)
	}

	engine := calculation.NewCalculationEngineWithConfig(rules)
	if compareVerbose {
		engine.SetLogger(simpleCLILogger{})
	}

	run, err := engine.RunComparison(domain.Scenario{
		Name:        "base",
		GrossAnnual: gross,
		IsMetroCity: compareMetro,
		PFIncluded:  comparePF,
	})
	if err != nil {
		log.Fatal(err)
	}

	// Get the formatter and write to stdout
	if f := output.GetFormatterByName(compareFormat); f != nil {
		data, err := f.Format(run)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	} else {
		// Fall back to GenerateReport for unregistered format names
		if err := output.GenerateReport(run, compareFormat); err != nil {
			log.Fatal(err)
		}
	}
}
