package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
)

const examplePlan = "../testdata/example_plan.yaml"

func loadPlan(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(examplePlan)
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadPlan(t)
	assert.Len(t, cfg.Scenarios, 2)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunPlan(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Scenarios, 2)
	assert.NotEmpty(t, report.Assumptions)

	traditional := report.Scenarios[0]
	assert.Equal(t, 1000000.0, traditional.FireNumber.FireNumber)
	assert.InDelta(t, 12.93, traditional.TimeToFire.YearsToFire, 0.01)
	assert.Equal(t, 156, traditional.TimeToFire.Months())
	assert.Len(t, traditional.Projection.Points, 14)
	assert.True(t, traditional.Projection.ReachedTarget())
	assert.Equal(t, 2025, traditional.LimitsYear)

	coast := report.Scenarios[1]
	assert.InDelta(t, 93662.94, coast.Coast.Threshold, 0.01)
	assert.InDelta(t, 43662.94, coast.Coast.Remaining, 0.01)
	assert.False(t, coast.Coast.HasReached)
	assert.InDelta(t, 34.03, coast.TimeToFire.YearsToFire, 0.01)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	cfg := loadPlan(t)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Scenarios[1].Name = cfg.Scenarios[0].Name
	assert.Error(t, parser.ValidateConfiguration(cfg))
}

func TestRunPlanHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := calculation.NewCalculationEngine().RunPlan(ctx, loadPlan(t))
	assert.ErrorIs(t, err, context.Canceled)
}
