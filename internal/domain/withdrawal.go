package domain

// WithdrawalScenario is one row of the safe withdrawal rate reference table.
type WithdrawalScenario struct {
	RatePercent float64 `json:"rate_percent"`
	Description string  `json:"description"`
	Risk        string  `json:"risk"`
}

// WithdrawalAmount is a withdrawal scenario priced against a portfolio.
type WithdrawalAmount struct {
	WithdrawalScenario
	PortfolioValue float64 `json:"portfolio_value"`
	AnnualAmount   float64 `json:"annual_amount"`
	MonthlyAmount  float64 `json:"monthly_amount"`
}

var withdrawalScenarios = [...]WithdrawalScenario{
	{RatePercent: 3.0, Description: "Very Conservative", Risk: "Low"},
	{RatePercent: 3.5, Description: "Conservative", Risk: "Low-Medium"},
	{RatePercent: 4.0, Description: "Standard (Trinity Study)", Risk: "Medium"},
	{RatePercent: 4.5, Description: "Moderate", Risk: "Medium-High"},
	{RatePercent: 5.0, Description: "Aggressive", Risk: "High"},
}

// WithdrawalScenarios returns a copy of the fixed withdrawal rate table,
// lowest rate first.
func WithdrawalScenarios() []WithdrawalScenario {
	out := make([]WithdrawalScenario, len(withdrawalScenarios))
	copy(out, withdrawalScenarios[:])
	return out
}
