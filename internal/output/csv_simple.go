package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "FireType", "AnnualExpenses", "Multiplier", "FireNumber", "WithdrawalRatePercent", "TargetFireNumber", "ProgressPercent", "CoastFireNumber", "CoastReached", "YearsToFire", "MonthsToFire", "ProjectionYears", "ReachedTarget", "AnnualWithdrawal", "MonthlyWithdrawal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(report) {
		projectionYears, reached := 0, false
		if sc.Projection != nil {
			projectionYears, reached = sc.Projection.YearsToFire(), sc.Projection.ReachedTarget()
		}
		row := []string{
			sc.Name,
			string(sc.FireType),
			floatToString(sc.FireNumber.AnnualExpenses, 2),
			floatToString(sc.FireNumber.Multiplier, -1),
			floatToString(sc.FireNumber.FireNumber, 2),
			floatToString(sc.FireNumber.WithdrawalRatePercent, 4),
			floatToString(sc.Target, 2),
			floatToString(sc.ProgressPercent, 2),
			floatToString(sc.Coast.Threshold, 2),
			boolToString(sc.Coast.HasReached),
			floatToString(sc.TimeToFire.YearsToFire, 4),
			intToString(sc.TimeToFire.Months()),
			intToString(projectionYears),
			boolToString(reached),
			floatToString(sc.Withdrawal.AnnualAmount, 2),
			floatToString(sc.Withdrawal.MonthlyAmount, 2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
