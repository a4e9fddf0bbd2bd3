package calculation

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Name: "Household plan",
		Scenarios: []domain.Scenario{
			{
				Name:                "Traditional at 7%",
				FireType:            domain.FireTraditional,
				AnnualExpenses:      40000,
				CurrentAge:          30,
				RetirementAge:       65,
				CurrentSavings:      100000,
				MonthlyContribution: 3000,
				ReturnRatePercent:   7,
			},
			{
				Name:                  "Lean with explicit target",
				FireType:              domain.FireLean,
				AnnualExpenses:        30000,
				CurrentAge:            52,
				RetirementAge:         60,
				CurrentSavings:        50000,
				MonthlyContribution:   1000,
				ReturnRatePercent:     5,
				TargetFireNumber:      750000,
				WithdrawalRatePercent: 3.5,
				PortfolioValue:        900000,
				LimitsYear:            2025,
			},
		},
	}
}

// TestFullScenarioCalculation runs a complete scenario through every calculator
func TestFullScenarioCalculation(t *testing.T) {
	withNow(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	config := createTestConfiguration()
	engine := NewCalculationEngine()

	t.Run("Traditional at 7%", func(t *testing.T) {
		result, err := engine.RunScenario(context.Background(), &config.Scenarios[0])
		require.NoError(t, err)

		assert.Equal(t, domain.FireTraditional, result.FireType)
		assert.Equal(t, 1000000.0, result.FireNumber.FireNumber)
		assert.Equal(t, 1000000.0, result.Target, "target should default to the FIRE number")
		assert.InDelta(t, 10.0, result.ProgressPercent, 1e-9)

		assert.InDelta(t, 93663, result.Coast.Threshold, 1)
		assert.True(t, result.Coast.HasReached)

		assert.InDelta(t, 12.93, result.TimeToFire.YearsToFire, 0.01)
		require.NotNil(t, result.Projection)
		assert.Len(t, result.Projection.Points, 14)

		assert.Equal(t, 1000000.0, result.PortfolioValue)
		assert.Equal(t, 4.0, result.Withdrawal.RatePercent)
		assert.InDelta(t, 40000, result.Withdrawal.AnnualAmount, 1e-6)
		assert.Len(t, result.WithdrawalTable, 5)

		assert.Equal(t, 2026, result.LimitsYear)
		assert.Equal(t, 30, result.LimitsAge)
		assert.Len(t, result.ContributionCaps, 6)
	})

	t.Run("Lean with explicit target", func(t *testing.T) {
		result, err := engine.RunScenario(context.Background(), &config.Scenarios[1])
		require.NoError(t, err)

		assert.Equal(t, 600000.0, result.FireNumber.FireNumber)
		assert.Equal(t, 750000.0, result.Target)
		assert.Equal(t, 900000.0, result.PortfolioValue)
		assert.Equal(t, "Conservative", result.Withdrawal.Description)
		assert.InDelta(t, 31500, result.Withdrawal.AnnualAmount, 1e-6)
		assert.Equal(t, 2025, result.LimitsYear)
		assert.Equal(t, 52, result.LimitsAge)
		assert.Equal(t, 750000.0, result.Projection.FireTarget)
	})
}

func TestRunPlan(t *testing.T) {
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	withNow(t, fixed)

	var buf bytes.Buffer
	engine := NewCalculationEngine()
	engine.SetLogger(NewWriterLogger(&buf, true))

	report, err := engine.RunPlan(context.Background(), createTestConfiguration())
	require.NoError(t, err)

	assert.Equal(t, "Household plan", report.Name)
	assert.Equal(t, fixed, report.GeneratedAt)
	require.Len(t, report.Scenarios, 2)
	assert.Equal(t, "Traditional at 7%", report.Scenarios[0].Name)
	assert.NotEmpty(t, report.Assumptions)

	out := buf.String()
	assert.Contains(t, out, "DEBUG Traditional at 7%: fire number")
	assert.Contains(t, out, "INFO ran 2 scenarios")
}

func TestRunScenarioErrors(t *testing.T) {
	engine := NewCalculationEngine()

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := engine.RunScenario(ctx, &createTestConfiguration().Scenarios[0])
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unknown fire type", func(t *testing.T) {
		sc := createTestConfiguration().Scenarios[0]
		sc.FireType = "chubby"
		_, err := engine.RunScenario(context.Background(), &sc)
		assert.ErrorIs(t, err, domain.ErrUnknownFireType)
	})

	t.Run("total loss return rate", func(t *testing.T) {
		sc := createTestConfiguration().Scenarios[0]
		sc.ReturnRatePercent = -100
		_, err := engine.RunScenario(context.Background(), &sc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidReturnRate))
		assert.Contains(t, err.Error(), "coast FIRE")
	})

	t.Run("unknown limits year", func(t *testing.T) {
		sc := createTestConfiguration().Scenarios[0]
		sc.LimitsYear = 1990
		_, err := engine.RunScenario(context.Background(), &sc)
		assert.ErrorIs(t, err, domain.ErrUnknownLimitsYear)
	})

	t.Run("plan wraps scenario name", func(t *testing.T) {
		cfg := createTestConfiguration()
		cfg.Scenarios[1].FireType = "chubby"
		_, err := engine.RunPlan(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `scenario "Lean with explicit target"`)
	})
}

func TestWriterLoggerDropsDebugUnlessEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)
	l.Debugf("hidden %d", 1)
	l.Warnf("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN shown 2")
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
