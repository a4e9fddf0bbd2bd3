package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
	shopspring "github.com/shopspring/decimal"
)

const chartWidth = 40

// RenderFireNumber renders the FIRE number view. A positive savings balance
// adds a progress bar toward the FIRE number.
func RenderFireNumber(res domain.FireNumberResult, savings float64) string {
	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("%s: %s", res.FireType.Label(), res.FireType.Tagline())))
	b.WriteString("\n\n")
	b.WriteString(RenderKeyValue("Annual expenses", FormatCurrency(res.AnnualExpenses)) + "\n")
	b.WriteString(RenderKeyValue("Multiplier", FormatMultiplier(res.Multiplier)) + "\n")
	b.WriteString(RenderKeyValue("FIRE number", headerStyle.Render(FormatCurrency(res.FireNumber))) + "\n")
	b.WriteString(RenderKeyValue("Withdrawal rate", FormatPercentage(res.WithdrawalRatePercent)) + "\n")
	b.WriteString(RenderKeyValue("Annual withdrawal", FormatCurrency(res.AnnualWithdrawal)) + "\n")
	b.WriteString(RenderKeyValue("Monthly withdrawal", FormatCurrency(res.MonthlyWithdrawal)) + "\n")
	if savings > 0 {
		b.WriteString(RenderKeyValue("Progress", RenderProgressBar(res.ProgressPercent(savings), 30)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("  " + mutedStyle.Render(res.FireType.Explanation()) + "\n")
	return b.String()
}

// RenderCoast renders the Coast FIRE view.
func RenderCoast(res domain.CoastFireResult, ratePercent float64) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Coast FIRE"))
	b.WriteString("\n\n")
	b.WriteString(RenderKeyValue("Years to retirement", fmt.Sprintf("%g", res.YearsRemaining)) + "\n")
	b.WriteString(RenderKeyValue("Current savings", FormatCurrency(res.CurrentSavings)) + "\n")
	b.WriteString(RenderKeyValue("Future value", FormatCurrency(res.FutureValue)) + "\n")
	b.WriteString(RenderKeyValue("Coast FIRE number", headerStyle.Render(FormatCurrency(res.Threshold))) + "\n")
	if res.HasReached {
		b.WriteString(RenderKeyValue("Status", goodStyle.Render("Coast FIRE reached")) + "\n")
	} else {
		b.WriteString(RenderKeyValue("Status", warnStyle.Render(FormatCurrency(res.Remaining)+" to go")) + "\n")
	}
	b.WriteString(RenderKeyValue("Progress", RenderProgressBar(res.ProgressPercent, 30)) + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Your current %s will grow to %s in %g years at %s annual return.\n",
		FormatCurrency(res.CurrentSavings), FormatCurrency(res.FutureValue), res.YearsRemaining, FormatPercentageShort(ratePercent)))
	return b.String()
}

// RenderTimeToFire renders the time-to-FIRE view with its projection table
// and, when chart is set, a bar chart of the projection.
func RenderTimeToFire(res domain.TimeToFireResult, series *domain.ProjectionSeries, chart bool) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Time to FIRE"))
	b.WriteString("\n\n")
	b.WriteString(RenderKeyValue("Time to FIRE", headerStyle.Render(FormatYears(res.YearsToFire))) + "\n")
	if res.Reachable() {
		b.WriteString(RenderKeyValue("Months", intToString(res.Months())) + "\n")
		b.WriteString(RenderKeyValue("Total contributed", FormatCurrency(res.TotalContributed)) + "\n")
	}
	b.WriteString(RenderKeyValue("Annual contribution", FormatCurrency(res.AnnualContribution)) + "\n")

	if series != nil && len(series.Points) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderTable(projectionTable(series)))
		if chart {
			b.WriteString("\n")
			b.WriteString(RenderProjectionChart(series))
		}
		if !series.ReachedTarget() {
			b.WriteString(fmt.Sprintf("\n  %s\n", warnStyle.Render(
				fmt.Sprintf("Target not reached within %d years.", domain.MaxProjectionYears))))
		}
	}
	return b.String()
}

func projectionTable(series *domain.ProjectionSeries) Table {
	t := Table{
		Title:   "Wealth projection",
		Headers: []string{"Year", "Portfolio", "FIRE target", "Progress"},
	}
	for _, p := range series.Points {
		progress := 0.0
		if p.FireTarget > 0 {
			progress = p.Portfolio / p.FireTarget * 100
		}
		t.Rows = append(t.Rows, []string{
			intToString(p.Year),
			FormatCurrency(p.Portfolio),
			FormatCurrency(p.FireTarget),
			FormatPercentageShort(progress),
		})
	}
	return t
}

// RenderProjectionChart renders the projection as horizontal bars scaled
// against the larger of the target and the final portfolio value.
func RenderProjectionChart(series *domain.ProjectionSeries) string {
	if series == nil || len(series.Points) == 0 {
		return ""
	}
	scale := max(series.FireTarget, series.Final().Portfolio)

	var b strings.Builder
	for _, p := range series.Points {
		label := fmt.Sprintf("Y%-3d %12s", p.Year, FormatCurrency(p.Portfolio))
		b.WriteString(RenderHorizontalBar(label, p.Portfolio, scale, chartWidth))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", mutedStyle.Render(fmt.Sprintf("%-17s", "FIRE target")), FormatCurrency(series.FireTarget)))
	return b.String()
}

// RenderWithdrawals renders the safe withdrawal view: the chosen rate
// followed by the fixed scenario table.
func RenderWithdrawals(chosen domain.WithdrawalAmount, table []domain.WithdrawalAmount) string {
	var b strings.Builder
	b.WriteString(RenderTitle("Safe Withdrawal Rate"))
	b.WriteString("\n\n")
	b.WriteString(RenderKeyValue("Portfolio value", FormatCurrency(chosen.PortfolioValue)) + "\n")
	b.WriteString(RenderKeyValue("Withdrawal rate", FormatPercentageShort(chosen.RatePercent)) + "\n")
	b.WriteString(RenderKeyValue("Annual withdrawal", headerStyle.Render(FormatCurrency(chosen.AnnualAmount))) + "\n")
	b.WriteString(RenderKeyValue("Monthly withdrawal", FormatCurrency(chosen.MonthlyAmount)+"/month") + "\n")
	b.WriteString("\n")
	b.WriteString(RenderTable(withdrawalTable(table)))
	return b.String()
}

func withdrawalTable(rows []domain.WithdrawalAmount) Table {
	t := Table{
		Title:   "Withdrawal scenarios",
		Headers: []string{"Rate", "Strategy", "Risk", "Annual", "Monthly"},
	}
	for _, w := range rows {
		t.Rows = append(t.Rows, []string{
			FormatPercentageShort(w.RatePercent),
			w.Description,
			w.Risk,
			FormatCurrency(w.AnnualAmount) + "/year",
			FormatCurrency(w.MonthlyAmount) + "/month",
		})
	}
	return t
}

// RenderLimits renders a contribution limits table. A positive age adds the
// limit that applies at that age.
func RenderLimits(year, age int, entries []domain.ContributionLimitEntry, strategyTotal shopspring.Decimal) string {
	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("%d Contribution Limits", year)))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(limitsTable(entries, age)))
	b.WriteString("\n")
	b.WriteString(RenderKeyValue(fmt.Sprintf("Max strategy (%d)", year), headerStyle.Render(FormatDecimalCurrency(strategyTotal))) + "\n")
	b.WriteString("  " + mutedStyle.Render("401k + Roth IRA + HSA (Family), all with catch-up") + "\n")
	return b.String()
}

func limitsTable(entries []domain.ContributionLimitEntry, age int) Table {
	t := Table{Headers: []string{"Account", "Standard", "Catch-up", "Catch-up age", "Total"}}
	if age > 0 {
		t.Headers = append(t.Headers, fmt.Sprintf("At age %d", age))
	}
	for _, e := range entries {
		row := []string{
			e.Account,
			FormatDecimalCurrency(e.StandardLimit),
			FormatDecimalCurrency(e.CatchUpLimit),
			intToString(e.CatchUpAge) + "+",
			FormatDecimalCurrency(e.Total()),
		}
		if age > 0 {
			row = append(row, FormatDecimalCurrency(e.LimitForAge(age)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
