package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxgo/regime-calculator/internal/calculation"
	"github.com/taxgo/regime-calculator/internal/compare"
	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/domain"
	"github.com/taxgo/regime-calculator/internal/transform"
)

var whatifCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Compare a base salary scenario against what-if templates",
	Long: `Run the base scenario through built-in what-if templates and compare
the outcomes side by side.

Examples:
  ./taxgo whatif --gross 1800000 --with non_metro,no_pf
  ./taxgo whatif --gross 2400000 --with hike_10pct,lakh_plus --format csv
  ./taxgo whatif --list-templates  # Show all available templates
`,
	Args: cobra.NoArgs,
	Run:  runWhatIf,
}

var (
	whatifGross         string
	whatifMetro         bool
	whatifPF            bool
	whatifWith          string
	whatifRules         string
	whatifFormat        string
	whatifVerbose       bool
	whatifListTemplates bool
)

func init() {
	whatifCmd.Flags().StringVar(&whatifGross, "gross", "1500000", "Gross annual salary (CTC) in rupees")
	whatifCmd.Flags().BoolVar(&whatifMetro, "metro", true, "Metro city residence for the base scenario")
	whatifCmd.Flags().BoolVar(&whatifPF, "pf", true, "Employee PF is part of the CTC for the base scenario")
	whatifCmd.Flags().StringVar(&whatifWith, "with", "", "Comma-separated list of templates to compare (required)")
	whatifCmd.Flags().StringVar(&whatifRules, "rules", "", "Path to a tax rules YAML file (default: built-in FY 2025-26 rules)")
	whatifCmd.Flags().StringVarP(&whatifFormat, "format", "f", "table", "Output format (table, csv, json)")
	whatifCmd.Flags().BoolVarP(&whatifVerbose, "verbose", "v", false, "Log calculation steps to stderr")
	whatifCmd.Flags().BoolVar(&whatifListTemplates, "list-templates", false, "List all available what-if templates")

	rootCmd.AddCommand(whatifCmd)
}

func runWhatIf(cmd *cobra.Command, args []string) {
	// Handle --list-templates flag
	if whatifListTemplates {
		registry := transform.CreateBuiltInTemplates()
		fmt.Print(transform.GetTemplateHelp(registry))
		return
	}

	if whatifWith == "" {
		log.Fatal("--with flag is required to specify templates to compare (or use --list-templates)")
	}

	templateNames := transform.ParseTemplateList(whatifWith)
	if len(templateNames) == 0 {
		log.Fatal("no valid templates specified in --with flag")
	}

	gross, err := decimal.NewFromString(whatifGross)
	if err != nil {
		log.Fatalf("invalid --gross value %q: %v", whatifGross, err)
	}

	rules, err := config.LoadOrDefault(whatifRules)
	if err != nil {
		log.Fatal(err)
	}

	// Create calculation engine
	engine := calculation.NewCalculationEngineWithConfig(rules)
	if whatifVerbose {
		engine.SetLogger(simpleCLILogger{})
	}

	// Create comparison engine
	compareEngine := compare.NewCompareEngine(engine)

	// Run comparison
	ctx := context.Background()
	comparisonSet, err := compareEngine.Compare(ctx, domain.Scenario{
		Name:        "base",
		GrossAnnual: gross,
		IsMetroCity: whatifMetro,
		PFIncluded:  whatifPF,
	}, compare.CompareOptions{
		Templates: templateNames,
	})
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}

	// Set rules path for display
	comparisonSet.RulesPath = whatifRules

	// Format and output results
	switch strings.ToLower(whatifFormat) {
	case "csv":
		formatter := &compare.CSVFormatter{}
		out, err := formatter.Format(comparisonSet)
		if err != nil {
			log.Fatalf("Failed to format CSV: %v", err)
		}
		fmt.Print(out)

	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		out, err := formatter.Format(comparisonSet)
		if err != nil {
			log.Fatalf("Failed to format JSON: %v", err)
		}
		fmt.Print(out)

	case "table", "console", "":
		formatter := &compare.TableFormatter{}
		fmt.Print(formatter.Format(comparisonSet))

	default:
		log.Fatalf("Unknown output format: %s (valid: table, csv, json)", whatifFormat)
	}
}
