package calculation

import "github.com/rpgo/fire-calculator/internal/domain"

// FireNumber computes the portfolio needed to retire on annualExpenses using
// the multiplier of the given FIRE type.
func FireNumber(annualExpenses float64, fireType domain.FireType) domain.FireNumberResult {
	return FireNumberWithMultiplier(annualExpenses, fireType, 0)
}

// FireNumberWithMultiplier is FireNumber with an explicit multiplier. A
// non-positive multiplier falls back to the FIRE type's multiplier.
func FireNumberWithMultiplier(annualExpenses float64, fireType domain.FireType, multiplier float64) domain.FireNumberResult {
	if multiplier <= 0 {
		multiplier = fireType.Multiplier()
	}
	expenses := domain.NonNegative(annualExpenses)
	fireNumber := expenses * multiplier
	annual := fireNumber / multiplier

	return domain.FireNumberResult{
		FireType:              fireType,
		AnnualExpenses:        expenses,
		Multiplier:            multiplier,
		FireNumber:            fireNumber,
		AnnualWithdrawal:      annual,
		MonthlyWithdrawal:     annual / 12,
		WithdrawalRatePercent: 1 / multiplier * 100,
	}
}
