package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a Chart.js net worth chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"currWhole": FormatWholeCurrency,
	"pct":       FormatPercentage,
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil
	},
}).Parse(htmlTemplateSource))

type chartData struct {
	Labels      []int     `json:"labels"`
	Investments []float64 `json:"investments"`
	HomeEquity  []float64 `json:"homeEquity"`
	NetWorth    []float64 `json:"netWorth"`
}

func (h HTMLFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer

	inv, home, nw := Series(result)
	labels := make([]int, len(result.Trajectory))
	for i, p := range result.Trajectory {
		labels[i] = p.YearOffset
	}

	data := struct {
		*domain.ProjectionResult
		Composition Composition
		Milestones  []domain.TrajectoryPoint
		Assumptions []string
		Chart       chartData
	}{
		ProjectionResult: result,
		Composition:      AnalyzeComposition(result),
		Milestones:       Milestones(result, 5),
		Assumptions:      GenerateAssumptions(result),
		Chart:            chartData{Labels: labels, Investments: inv, HomeEquity: home, NetWorth: nw},
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
