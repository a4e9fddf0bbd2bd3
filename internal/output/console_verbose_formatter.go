package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full styled console report: every
// calculator view for every scenario.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer

	title := "FIRE PLAN REPORT"
	if report.Name != "" {
		title += ": " + report.Name
	}
	fmt.Fprintln(&buf, RenderTitle(title))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headerStyle.Render("  KEY ASSUMPTIONS"))
	for _, a := range assumptionsFor(report) {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeComparison(&buf, report)

	for i, sc := range report.Scenarios {
		fmt.Fprintf(&buf, "\n%s\n", headerStyle.Render(fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Name)))
		fmt.Fprintln(&buf, dimStyle.Render(strings.Repeat("=", 55)))
		fmt.Fprintln(&buf, RenderFireNumber(sc.FireNumber, sc.Inputs.CurrentSavings.Float64()))
		if sc.Target != sc.FireNumber.FireNumber {
			fmt.Fprintln(&buf, RenderKeyValue("Target used", FormatCurrency(sc.Target)))
			fmt.Fprintln(&buf)
		}
		fmt.Fprintln(&buf, RenderCoast(sc.Coast, sc.Inputs.ReturnRatePercent.Float64()))
		fmt.Fprintln(&buf, RenderTimeToFire(sc.TimeToFire, sc.Projection, false))
		fmt.Fprintln(&buf, RenderWithdrawals(sc.Withdrawal, sc.WithdrawalTable))
		_, total := domain.SelectMaxStrategy(sc.ContributionCaps)
		fmt.Fprint(&buf, RenderLimits(sc.LimitsYear, sc.LimitsAge, sc.ContributionCaps, total))
	}
	return buf.Bytes(), nil
}

// writeComparison renders the side-by-side scenario table and the fastest path.
func writeComparison(buf *bytes.Buffer, report *domain.PlanReport) {
	t := Table{
		Title:   "SCENARIO COMPARISON",
		Headers: []string{"Scenario", "Type", "FIRE number", "Progress", "Coast", "Time to FIRE"},
	}
	for _, sc := range report.Scenarios {
		coast := "no"
		if sc.Coast.HasReached {
			coast = "yes"
		}
		t.Rows = append(t.Rows, []string{
			sc.Name,
			sc.FireType.Label(),
			FormatCurrency(sc.FireNumber.FireNumber),
			FormatPercentageShort(sc.ProgressPercent),
			coast,
			FormatYears(sc.TimeToFire.YearsToFire),
		})
	}
	fmt.Fprint(buf, RenderTable(t))

	if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
		fmt.Fprintf(buf, "\n  Fastest path: %s (%s)\n",
			goodStyle.Render(rec.ScenarioName), formatRecommendationYears(rec.YearsToFire))
	}
}
