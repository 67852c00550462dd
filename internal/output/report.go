package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// ReportGenerator handles report generation in various formats
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport generates a report in the specified format. Console output
// goes to stdout; the file formats write a timestamped report file.
func GenerateReport(run *domain.ComparisonRun, format string) error {
	generator := NewReportGenerator()

	switch NormalizeFormatName(format) {
	case "console":
		return generator.GenerateConsoleReport(run)
	case "verbose":
		return generator.GenerateVerboseConsoleReport(run)
	case "html":
		return generator.GenerateHTMLReport(run)
	case "json":
		return generator.GenerateJSONReport(run)
	case "csv":
		return generator.GenerateCSVReport(run)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport prints the side-by-side regime comparison to stdout
func (rg *ReportGenerator) GenerateConsoleReport(run *domain.ComparisonRun) error {
	data, err := ConsoleFormatter{}.Format(run)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// GenerateVerboseConsoleReport prints the annotated comparison to stdout
func (rg *ReportGenerator) GenerateVerboseConsoleReport(run *domain.ComparisonRun) error {
	data, err := ConsoleVerboseFormatter{}.Format(run)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

// GenerateHTMLReport writes an HTML-formatted report file
func (rg *ReportGenerator) GenerateHTMLReport(run *domain.ComparisonRun) error {
	data, err := HTMLFormatter{}.Format(run)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("tax_report_%s.html", time.Now().Format("20060102_150405"))
	return os.WriteFile(filename, data, 0644)
}

// GenerateJSONReport writes a JSON-formatted report file
func (rg *ReportGenerator) GenerateJSONReport(run *domain.ComparisonRun) error {
	data, err := JSONFormatter{Pretty: true}.Format(run)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("tax_report_%s.json", time.Now().Format("20060102_150405"))
	return os.WriteFile(filename, data, 0644)
}

// GenerateCSVReport writes a CSV-formatted report file
func (rg *ReportGenerator) GenerateCSVReport(run *domain.ComparisonRun) error {
	data, err := CSVFormatter{}.Format(run)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("tax_report_%s.csv", time.Now().Format("20060102_150405"))
	return os.WriteFile(filename, data, 0644)
}

// SaveRules saves a tax rule set to a YAML file
func SaveRules(rules *domain.TaxRules, filename string) error {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// FormatAmount formats a decimal as a whole-rupee figure with thousands
// separators, the way the report columns render money.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.StringFixed(0)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	return out
}

// FormatINR formats a decimal as a rupee amount with a currency marker
func FormatINR(amount decimal.Decimal) string {
	return "Rs. " + FormatAmount(amount)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
