package calculation

import (
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// TimeToFire solves the compound-growth-with-contributions formula for the
// number of years until savings reach the target.
//
// With a monthly contribution M > 0 and monthly rate r the closed form is
//
//	n = ln((T·r + M) / (S·r + M)) / ln(1 + r)   (months)
//
// and without contributions it falls back to annual compounding,
// ln(T/S) / ln(1 + rate). The result is not clamped: a negative value means
// the target is already behind, and NaN or ±Inf mean it cannot be reached
// with these inputs.
func TimeToFire(in domain.TimeToFireInput) (domain.TimeToFireResult, error) {
	if err := validateReturnRate(in.ReturnRatePercent); err != nil {
		return domain.TimeToFireResult{}, err
	}

	s, m, t := in.CurrentSavings, in.MonthlyContribution, in.TargetFireNumber
	r := monthlyRate(in.ReturnRatePercent)

	var years float64
	switch {
	case m > 0 && r == 0:
		// limit of the closed form as r -> 0
		years = (t - s) / m / 12
	case m > 0:
		months := math.Log((t*r+m)/(s*r+m)) / math.Log(1+r)
		years = months / 12
	default:
		years = math.Log(t/s) / math.Log(1+annualRate(in.ReturnRatePercent))
	}

	return domain.TimeToFireResult{
		YearsToFire:         years,
		AnnualContribution:  m * 12,
		TotalContributed:    s + m*12*years,
		CurrentSavings:      s,
		MonthlyContribution: m,
	}, nil
}
