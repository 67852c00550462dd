package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxgo/regime-calculator/internal/config"
	"github.com/taxgo/regime-calculator/internal/output"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the active tax rule set",
	Long: `Print the slab tables, deductions, rebate limits, surcharge bands and
cess of the active rule set, so the numbers behind a comparison can be
verified against the assessment year.

Examples:
  ./taxgo rules
  ./taxgo rules --format yaml
  ./taxgo rules --rules my-rules.yaml
  ./taxgo rules --save rules-2025.yaml  # Write the built-in rules out for editing
`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

var (
	rulesFile       string
	rulesFormatName string
	rulesSave       string
)

func init() {
	rulesCmd.Flags().StringVar(&rulesFile, "rules", "", "Path to a tax rules YAML file (default: built-in FY 2025-26 rules)")
	rulesCmd.Flags().StringVarP(&rulesFormatName, "format", "f", "table", "Output format (table, yaml)")
	rulesCmd.Flags().StringVar(&rulesSave, "save", "", "Write the active rule set to this YAML file instead of printing it")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) {
	rules, err := config.LoadOrDefault(rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	if rulesSave != "" {
		if err := output.SaveRules(&rules, rulesSave); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving rules: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Rule set for FY %s written to %s\n", rules.Metadata.FinancialYear, rulesSave)
		return
	}

	formatter := output.NewRulesFormatter(rulesFormatName)
	out, err := formatter.FormatRules(&rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting rules: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(out)
}
