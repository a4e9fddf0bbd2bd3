package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardProjectionInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		CurrentSavings:      100000,
		MonthlyContribution: 3000,
		FireTarget:          1000000,
		ReturnRatePercent:   7,
	}
}

func TestGenerateProjectionStandardScenario(t *testing.T) {
	series, err := GenerateProjection(standardProjectionInput())
	require.NoError(t, err)

	require.Len(t, series.Points, 14)
	assert.Equal(t, 13, series.YearsToFire())
	assert.True(t, series.ReachedTarget())

	expected := map[int]float64{
		0:  100000,
		1:  144407,
		2:  192024,
		12: 905157,
		13: 1007769,
	}
	for year, value := range expected {
		p := series.Points[year]
		assert.Equal(t, year, p.Year)
		assert.Equal(t, value, p.Portfolio, "year %d", year)
		assert.Equal(t, 1000000.0, p.FireTarget)
	}
}

func TestGenerateProjectionInvariants(t *testing.T) {
	inputs := []domain.ProjectionInput{
		standardProjectionInput(),
		{CurrentSavings: 0, MonthlyContribution: 500, FireTarget: 100000, ReturnRatePercent: 5},
		{CurrentSavings: 10000, MonthlyContribution: 0, FireTarget: 5000000, ReturnRatePercent: 7},
		{CurrentSavings: 250000, MonthlyContribution: 1000, FireTarget: 750000, ReturnRatePercent: 0},
	}

	for _, in := range inputs {
		series, err := GenerateProjection(in)
		require.NoError(t, err)
		require.NotEmpty(t, series.Points)
		assert.LessOrEqual(t, len(series.Points), domain.MaxProjectionYears+1)
		assert.Equal(t, in.CurrentSavings, series.Points[0].Portfolio)

		for i := 1; i < len(series.Points); i++ {
			assert.Equal(t, i, series.Points[i].Year)
			assert.GreaterOrEqual(t, series.Points[i].Portfolio, series.Points[i-1].Portfolio)
			if i < len(series.Points)-1 {
				assert.Less(t, series.Points[i].Portfolio, in.FireTarget, "only the last point may meet the target")
			}
		}
	}
}

func TestGenerateProjectionNeverReached(t *testing.T) {
	series, err := GenerateProjection(domain.ProjectionInput{
		CurrentSavings:      10000,
		MonthlyContribution: 100,
		FireTarget:          10000000,
		ReturnRatePercent:   3,
	})
	require.NoError(t, err)
	assert.Len(t, series.Points, domain.MaxProjectionYears+1)
	assert.False(t, series.ReachedTarget())
	assert.Equal(t, domain.MaxProjectionYears, series.Final().Year)
}

func TestGenerateProjectionAlreadyAtTarget(t *testing.T) {
	series, err := GenerateProjection(domain.ProjectionInput{
		CurrentSavings:      1200000,
		MonthlyContribution: 3000,
		FireTarget:          1000000,
		ReturnRatePercent:   7,
	})
	require.NoError(t, err)
	require.Len(t, series.Points, 1)
	assert.Equal(t, 0, series.Points[0].Year)
	assert.Equal(t, 0, series.YearsToFire())
	assert.True(t, series.ReachedTarget())
}

func TestGenerateProjectionFractionalTarget(t *testing.T) {
	tests := []struct {
		name       string
		in         domain.ProjectionInput
		wantPoints int
		reached    bool
	}{
		{
			name:       "rounds up onto the target",
			in:         domain.ProjectionInput{CurrentSavings: 999.6, FireTarget: 999.8},
			wantPoints: 1,
			reached:    true,
		},
		{
			name:       "rounds down below the target",
			in:         domain.ProjectionInput{CurrentSavings: 1000.45, FireTarget: 1000.4},
			wantPoints: domain.MaxProjectionYears + 1,
			reached:    false,
		},
		{
			name:       "non-integer expenses target",
			in:         domain.ProjectionInput{CurrentSavings: 10000, MonthlyContribution: 1000, FireTarget: 40000.3 * 25, ReturnRatePercent: 6},
			wantPoints: -1,
			reached:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := GenerateProjection(tt.in)
			require.NoError(t, err)
			if tt.wantPoints > 0 {
				assert.Len(t, series.Points, tt.wantPoints)
			}
			assert.Equal(t, tt.reached, series.ReachedTarget())
			for _, p := range series.Points[:len(series.Points)-1] {
				assert.Less(t, p.Portfolio, series.FireTarget, "year %d", p.Year)
			}
		})
	}
}

func TestProjectionPointsStopsWhenConsumerBreaks(t *testing.T) {
	var years []int
	for p := range ProjectionPoints(standardProjectionInput()) {
		years = append(years, p.Year)
		if p.Year == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, years)

	// a fresh range restarts from year 0
	var first domain.ProjectionPoint
	for p := range ProjectionPoints(standardProjectionInput()) {
		first = p
		break
	}
	assert.Equal(t, 0, first.Year)
	assert.Equal(t, 100000.0, first.Portfolio)
}

func TestGenerateProjectionRejectsTotalLoss(t *testing.T) {
	in := standardProjectionInput()
	in.ReturnRatePercent = -100
	_, err := GenerateProjection(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidReturnRate))
}
