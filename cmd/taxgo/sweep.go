package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/output"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate both regimes across a salary range",
	Long: `Walk a gross-salary range and evaluate both regimes at each step,
showing where the cheaper regime flips.

Examples:
  ./taxgo sweep --from 1000000 --to 4000000 --step 250000
  ./taxgo sweep --from 500000 --to 10000000 --step 500000 --metro=false
  ./taxgo sweep --from 1000000 --to 3000000 --step 100000 --format csv
`,
	Args: cobra.NoArgs,
	Run:  runSweep,
}

var (
	sweepFrom    string
	sweepTo      string
	sweepStep    string
	sweepMetro   bool
	sweepPF      bool
	sweepRules   string
	sweepFormat  string
	sweepVerbose bool
)

func init() {
	sweepCmd.Flags().StringVar(&sweepFrom, "from", "1000000", "Start of the gross salary range in rupees")
	sweepCmd.Flags().StringVar(&sweepTo, "to", "4000000", "End of the gross salary range in rupees")
	sweepCmd.Flags().StringVar(&sweepStep, "step", "250000", "Increment between evaluated salaries in rupees")
	sweepCmd.Flags().BoolVar(&sweepMetro, "metro", true, "Metro city residence")
	sweepCmd.Flags().BoolVar(&sweepPF, "pf", true, "Employee PF is part of the CTC")
	sweepCmd.Flags().StringVar(&sweepRules, "rules", "", "Path to a tax rules YAML file (default: built-in FY 2025-26 rules)")
	sweepCmd.Flags().StringVarP(&sweepFormat, "format", "f", "console", "Output format (console, csv, json)")
	sweepCmd.Flags().BoolVarP(&sweepVerbose, "verbose", "v", false, "Log calculation steps to stderr")

	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) {
	from, err := decimal.NewFromString(sweepFrom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid --from value %q: %v\n", sweepFrom, err)
		os.Exit(1)
	}
	to, err := decimal.NewFromString(sweepTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid --to value %q: %v\n", sweepTo, err)
		os.Exit(1)
	}
	step, err := decimal.NewFromString(sweepStep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid --step value %q: %v\n", sweepStep, err)
		os.Exit(1)
	}

	rules, err := config.LoadOrDefault(sweepRules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	engine := calculation.NewCalculationEngineWithConfig(rules)
	if sweepVerbose {
		engine.SetLogger(simpleCLILogger{})
	}

	points, err := engine.RunSweep(context.Background(), calculation.SweepOptions{
		From:        from,
		To:          to,
		Step:        step,
		IsMetroCity: sweepMetro,
		PFIncluded:  sweepPF,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sweep failed: %v\n", err)
		os.Exit(1)
	}

	formatter := output.NewSweepFormatter(sweepFormat)
	out, err := formatter.FormatSweep(points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(out)
}
