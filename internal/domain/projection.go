package domain

import "math"

// MaxProjectionYears caps the wealth projection horizon.
const MaxProjectionYears = 30

// FireNumberResult is the output of the FIRE number calculator.
type FireNumberResult struct {
	FireType              FireType `json:"fire_type"`
	AnnualExpenses        float64  `json:"annual_expenses"`
	Multiplier            float64  `json:"multiplier"`
	FireNumber            float64  `json:"fire_number"`
	AnnualWithdrawal      float64  `json:"annual_withdrawal"`
	MonthlyWithdrawal     float64  `json:"monthly_withdrawal"`
	WithdrawalRatePercent float64  `json:"withdrawal_rate_percent"`
}

// ProgressPercent reports savings as a percentage of the FIRE number, or 0
// when there is no FIRE number to measure against.
func (r FireNumberResult) ProgressPercent(currentSavings float64) float64 {
	if r.FireNumber <= 0 {
		return 0
	}
	return currentSavings / r.FireNumber * 100
}

// CoastFireInput holds the Coast FIRE calculator inputs.
type CoastFireInput struct {
	CurrentAge        float64
	RetirementAge     float64
	CurrentSavings    float64
	TargetFireNumber  float64
	ReturnRatePercent float64
}

// CoastFireResult is the output of the Coast FIRE calculator.
type CoastFireResult struct {
	YearsRemaining float64 `json:"years_remaining"`
	CurrentSavings float64 `json:"current_savings"`
	FutureValue    float64 `json:"future_value"`
	Threshold      float64 `json:"coast_fire_number"`
	HasReached     bool    `json:"has_reached"`
	// Remaining is zero once the threshold is reached.
	Remaining       float64 `json:"remaining"`
	ProgressPercent float64 `json:"progress_percent"`
}

// TimeToFireInput holds the time-to-FIRE solver inputs.
type TimeToFireInput struct {
	CurrentSavings      float64
	MonthlyContribution float64
	TargetFireNumber    float64
	ReturnRatePercent   float64
}

// TimeToFireResult is the output of the time-to-FIRE solver. YearsToFire may
// be negative, zero, NaN or infinite; check Reachable before showing it as a
// duration.
type TimeToFireResult struct {
	YearsToFire         float64
	AnnualContribution  float64
	TotalContributed    float64
	CurrentSavings      float64
	MonthlyContribution float64
}

// Reachable reports whether YearsToFire is a positive, finite duration.
func (r TimeToFireResult) Reachable() bool {
	return r.YearsToFire > 0 && !math.IsInf(r.YearsToFire, 0) && !math.IsNaN(r.YearsToFire)
}

// Months rounds the duration up to whole months, or 0 when unreachable.
func (r TimeToFireResult) Months() int {
	if !r.Reachable() {
		return 0
	}
	return int(math.Ceil(r.YearsToFire * 12))
}

// ProjectionInput holds the wealth projection inputs.
type ProjectionInput struct {
	CurrentSavings      float64
	MonthlyContribution float64
	FireTarget          float64
	ReturnRatePercent   float64
}

// ProjectionPoint is one year of the wealth projection chart.
type ProjectionPoint struct {
	Year       int     `json:"year"`
	Portfolio  float64 `json:"portfolio"`
	FireTarget float64 `json:"fire_target"`
}

// ProjectionSeries is a chronological projection, year 0 first.
type ProjectionSeries struct {
	FireTarget float64           `json:"fire_target"`
	Points     []ProjectionPoint `json:"points"`
}

// YearsToFire is the number of projected years shown before the series ends.
func (s *ProjectionSeries) YearsToFire() int {
	if s == nil || len(s.Points) == 0 {
		return 0
	}
	return len(s.Points) - 1
}

// ReachedTarget reports whether the final point meets the FIRE target.
func (s *ProjectionSeries) ReachedTarget() bool {
	if s == nil || len(s.Points) == 0 {
		return false
	}
	return s.Points[len(s.Points)-1].Portfolio >= s.FireTarget
}

// Final returns the last projected point.
func (s *ProjectionSeries) Final() ProjectionPoint {
	if s == nil || len(s.Points) == 0 {
		return ProjectionPoint{}
	}
	return s.Points[len(s.Points)-1]
}
