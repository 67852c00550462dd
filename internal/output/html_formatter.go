package output

import (
	"bytes"
	_ "embed"
	"html/template"
	"time"

	"github.com/taxgo/regime-calculator/internal/domain"
)

// HTMLFormatter produces an HTML report from the embedded template.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"inr": FormatINR,
	"amt": FormatAmount,
	"pct": FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(run *domain.ComparisonRun) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.ComparisonRun
		Recommendation Recommendation
		Assumptions    []string
		GeneratedAt    string
	}{run, AnalyzeRun(run), DefaultAssumptions, time.Now().Format("2006-01-02 15:04:05")}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
