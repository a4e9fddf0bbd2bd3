package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FIRE PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Plan: %s\n", report.Name)
	}
	fmt.Fprintln(&buf)
	for _, sc := range sortedScenarios(report) {
		fmt.Fprintf(&buf, "%s: FireNumber=%s Progress=%s TimeToFire=%s\n",
			sc.Name,
			FormatCurrency(sc.FireNumber.FireNumber),
			FormatPercentageShort(sc.ProgressPercent),
			FormatYears(sc.TimeToFire.YearsToFire),
		)
		coast := "not reached"
		if sc.Coast.HasReached {
			coast = "reached"
		}
		fmt.Fprintf(&buf, "  Target=%s CoastNumber=%s (%s) Withdrawal=%s/year\n",
			FormatCurrency(sc.Target),
			FormatCurrency(sc.Coast.Threshold),
			coast,
			FormatCurrency(sc.Withdrawal.AnnualAmount),
		)
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Fastest path: %s (%s)\n", rec.ScenarioName, formatRecommendationYears(rec.YearsToFire))
	}
	return buf.Bytes(), nil
}

func formatRecommendationYears(years float64) string {
	if years == 0 {
		return "target already reached"
	}
	return FormatYears(years)
}
