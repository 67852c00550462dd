package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxgo/regime-calculator/internal/breakeven"
	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/config"
)

var crossoverCmd = &cobra.Command{
	Use:   "crossover",
	Short: "Find the salary where both regimes charge the same tax",
	Long: `Search for the gross salary at which the Old and New regimes charge
identical total tax. Below the crossover one regime is cheaper, above
it the other. The solver brackets the sign change of the tax gap and
bisects down to the rupee.

Examples:
  ./taxgo crossover
  ./taxgo crossover --metro=false --pf=false
  ./taxgo crossover --min 500000 --max 5000000 --format json
  ./taxgo crossover --matrix  # All four metro/PF combinations
`,
	Args: cobra.NoArgs,
	Run:  runCrossover,
}

var (
	crossoverMetro   bool
	crossoverPF      bool
	crossoverMin     string
	crossoverMax     string
	crossoverMatrix  bool
	crossoverRules   string
	crossoverFormat  string
	crossoverVerbose bool
)

func init() {
	crossoverCmd.Flags().BoolVar(&crossoverMetro, "metro", true, "Metro city residence")
	crossoverCmd.Flags().BoolVar(&crossoverPF, "pf", true, "Employee PF is part of the CTC")
	crossoverCmd.Flags().StringVar(&crossoverMin, "min", "", "Lower bound of the search range in rupees (default 0)")
	crossoverCmd.Flags().StringVar(&crossoverMax, "max", "", "Upper bound of the search range in rupees (default 10 crore)")
	crossoverCmd.Flags().BoolVar(&crossoverMatrix, "matrix", false, "Solve for all four metro/PF combinations")
	crossoverCmd.Flags().StringVar(&crossoverRules, "rules", "", "Path to a tax rules YAML file (default: built-in FY 2025-26 rules)")
	crossoverCmd.Flags().StringVarP(&crossoverFormat, "format", "f", "table", "Output format (table, json)")
	crossoverCmd.Flags().BoolVarP(&crossoverVerbose, "verbose", "v", false, "Log calculation steps to stderr")

	rootCmd.AddCommand(crossoverCmd)
}

func runCrossover(cmd *cobra.Command, args []string) {
	minGross := parseGrossFlag("--min", crossoverMin)
	maxGross := parseGrossFlag("--max", crossoverMax)

	rules, err := config.LoadOrDefault(crossoverRules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	engine := calculation.NewCalculationEngineWithConfig(rules)
	if crossoverVerbose {
		engine.SetLogger(simpleCLILogger{})
	}

	solver := breakeven.NewDefaultSolver(engine)
	ctx := context.Background()

	if crossoverMatrix {
		result, err := solver.FindCrossoverMatrix(ctx, minGross, maxGross)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crossover matrix failed: %v\n", err)
			os.Exit(1)
		}

		switch strings.ToLower(crossoverFormat) {
		case "json":
			formatter := &breakeven.JSONFormatter{Pretty: true}
			out, err := formatter.FormatMatrix(result)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(out)
		case "table", "console", "":
			formatter := &breakeven.TableFormatter{}
			fmt.Print(formatter.FormatMatrix(result))
		default:
			fmt.Fprintf(os.Stderr, "Unknown output format: %s (valid: table, json)\n", crossoverFormat)
			os.Exit(1)
		}
		return
	}

	constraints := breakeven.DefaultConstraints(crossoverMetro, crossoverPF)
	if minGross != nil {
		constraints.MinGross = minGross
	}
	if maxGross != nil {
		constraints.MaxGross = maxGross
	}

	result, err := solver.FindCrossover(ctx, breakeven.CrossoverRequest{
		Constraints: constraints,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crossover search failed: %v\n", err)
		os.Exit(1)
	}

	switch strings.ToLower(crossoverFormat) {
	case "json":
		formatter := &breakeven.JSONFormatter{Pretty: true}
		out, err := formatter.Format(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	case "table", "console", "":
		formatter := &breakeven.TableFormatter{}
		fmt.Print(formatter.Format(result))
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format: %s (valid: table, json)\n", crossoverFormat)
		os.Exit(1)
	}
}

// parseGrossFlag parses an optional rupee-amount flag. Empty means unset.
func parseGrossFlag(flag, value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid %s value %q: %v\n", flag, value, err)
		os.Exit(1)
	}
	return &d
}
