package calculation

import (
	shopspring "github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/decimal"
)

// WithdrawalScenarios prices every fixed withdrawal rate against the portfolio.
func WithdrawalScenarios(portfolioValue float64) []domain.WithdrawalAmount {
	table := domain.WithdrawalScenarios()
	out := make([]domain.WithdrawalAmount, 0, len(table))
	for _, sc := range table {
		out = append(out, priceWithdrawal(sc, portfolioValue))
	}
	return out
}

// CustomWithdrawal prices a user-chosen withdrawal rate.
func CustomWithdrawal(portfolioValue, ratePercent float64) domain.WithdrawalAmount {
	sc := domain.WithdrawalScenario{RatePercent: ratePercent, Description: "Custom"}
	for _, known := range domain.WithdrawalScenarios() {
		if known.RatePercent == ratePercent {
			sc = known
			break
		}
	}
	return priceWithdrawal(sc, portfolioValue)
}

// priceWithdrawal prices in decimal. A portfolio that is already NaN or ±Inf
// has no decimal form and is priced in float64 so the sentinel carries over.
func priceWithdrawal(sc domain.WithdrawalScenario, portfolioValue float64) domain.WithdrawalAmount {
	w := domain.WithdrawalAmount{WithdrawalScenario: sc, PortfolioValue: portfolioValue}
	if !decimal.IsFinite(portfolioValue) || !decimal.IsFinite(sc.RatePercent) {
		w.AnnualAmount = portfolioValue * (sc.RatePercent / 100)
		w.MonthlyAmount = w.AnnualAmount / 12
		return w
	}
	annual := decimal.NewMoney(portfolioValue).Percent(shopspring.NewFromFloat(sc.RatePercent))
	w.AnnualAmount = annual.Float64()
	w.MonthlyAmount = annual.Monthly().Float64()
	return w
}
