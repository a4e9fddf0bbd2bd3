package output

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

var reportTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// buildTestReport runs a small plan through the engine: one scenario that
// reaches its target, one that never can, and one already past it.
func buildTestReport(t *testing.T) *domain.PlanReport {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return reportTime })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	cfg := &domain.Configuration{
		Name: "Test plan",
		Scenarios: []domain.Scenario{
			{
				Name:                "Baseline",
				FireType:            domain.FireTraditional,
				AnnualExpenses:      40000,
				CurrentAge:          30,
				RetirementAge:       65,
				CurrentSavings:      100000,
				MonthlyContribution: 3000,
				ReturnRatePercent:   7,
			},
			{
				Name:              "Stalled",
				FireType:          domain.FireLean,
				AnnualExpenses:    40000,
				CurrentAge:        30,
				RetirementAge:     65,
				ReturnRatePercent: 7,
			},
			{
				Name:              "Already There",
				FireType:          domain.FireFat,
				AnnualExpenses:    40000,
				CurrentAge:        52,
				RetirementAge:     60,
				CurrentSavings:    2000000,
				ReturnRatePercent: 5,
			},
		},
	}
	report, err := calculation.NewCalculationEngine().RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	return report
}
