package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVDetailedExporter provides the wealth projection per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Portfolio", "FireTarget", "ProgressPercent", "ReachedTarget"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(report) {
		if sc.Projection == nil {
			continue
		}
		for _, p := range sc.Projection.Points {
			progress := 0.0
			if p.FireTarget > 0 {
				progress = p.Portfolio / p.FireTarget * 100
			}
			row := []string{
				sc.Name,
				intToString(p.Year),
				floatToString(p.Portfolio, 0),
				floatToString(p.FireTarget, 2),
				floatToString(progress, 2),
				boolToString(p.Portfolio >= p.FireTarget),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
