package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":       FormatCurrency,
	"dcurr":      FormatDecimalCurrency,
	"pct":        FormatPercentage,
	"pct1":       FormatPercentageShort,
	"years":      FormatYears,
	"multiplier": FormatMultiplier,
	"barWidth": func(value, scale float64) string {
		if scale <= 0 || value <= 0 {
			return "0"
		}
		return floatToString(min(value/scale*100, 100), 1)
	},
	"scale": func(p *domain.ProjectionSeries) float64 {
		if p == nil || len(p.Points) == 0 {
			return 0
		}
		return max(p.FireTarget, p.Final().Portfolio)
	},
	"json": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		return template.JS(b), err
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.PlanReport
		Recommendation Recommendation
		Assumptions    []string
		Data           jsonReport
	}{report, AnalyzeScenarios(report), assumptionsFor(report), buildJSONReport(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
