package calculation

import (
	"math"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CoastFire finds the savings balance that grows into the target FIRE number
// by retirement age with no further contributions, and compares it with the
// current balance. Years remaining may be zero or negative; the growth factor
// is then evaluated with the same real exponent.
func CoastFire(in domain.CoastFireInput) (domain.CoastFireResult, error) {
	if err := validateReturnRate(in.ReturnRatePercent); err != nil {
		return domain.CoastFireResult{}, err
	}

	years := in.RetirementAge - in.CurrentAge
	growth := math.Pow(1+annualRate(in.ReturnRatePercent), years)

	threshold := in.TargetFireNumber / growth
	res := domain.CoastFireResult{
		YearsRemaining: years,
		CurrentSavings: in.CurrentSavings,
		FutureValue:    in.CurrentSavings * growth,
		Threshold:      threshold,
		HasReached:     in.CurrentSavings >= threshold,
	}
	if !res.HasReached {
		res.Remaining = math.Max(0, threshold-in.CurrentSavings)
	}
	if threshold > 0 {
		res.ProgressPercent = in.CurrentSavings / threshold * 100
	}
	return res, nil
}
