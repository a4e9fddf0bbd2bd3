package domain

// Configuration is the top-level plan file: a named set of scenarios that
// are each run through every calculator.
type Configuration struct {
	Name      string     `yaml:"name" json:"name"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario holds the raw numeric inputs shared by the calculators.
type Scenario struct {
	Name     string   `yaml:"name" json:"name"`
	FireType FireType `yaml:"fire_type,omitempty" json:"fire_type,omitempty"`

	// Multiplier overrides the FIRE type multiplier when positive.
	Multiplier     Amount `yaml:"multiplier,omitempty" json:"multiplier,omitempty"`
	AnnualExpenses Amount `yaml:"annual_expenses" json:"annual_expenses"`

	CurrentAge          Amount `yaml:"current_age" json:"current_age"`
	RetirementAge       Amount `yaml:"retirement_age" json:"retirement_age"`
	CurrentSavings      Amount `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution Amount `yaml:"monthly_contribution" json:"monthly_contribution"`
	ReturnRatePercent   Amount `yaml:"return_rate_percent" json:"return_rate_percent"`

	// TargetFireNumber defaults to the computed FIRE number when zero.
	TargetFireNumber Amount `yaml:"target_fire_number,omitempty" json:"target_fire_number,omitempty"`

	// WithdrawalRatePercent defaults to the multiplier's implied rate when zero.
	WithdrawalRatePercent Amount `yaml:"withdrawal_rate_percent,omitempty" json:"withdrawal_rate_percent,omitempty"`

	// PortfolioValue defaults to the target FIRE number when zero.
	PortfolioValue Amount `yaml:"portfolio_value,omitempty" json:"portfolio_value,omitempty"`

	LimitsYear int `yaml:"limits_year,omitempty" json:"limits_year,omitempty"`
	// LimitsAge selects catch-up eligibility in the limits table; 0 uses CurrentAge.
	LimitsAge int `yaml:"limits_age,omitempty" json:"limits_age,omitempty"`
}
