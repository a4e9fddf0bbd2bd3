package domain

import "time"

// ScenarioReport collects every calculator result for one scenario.
type ScenarioReport struct {
	Name     string   `json:"name"`
	Inputs   Scenario `json:"inputs"`
	FireType FireType `json:"fire_type"`

	FireNumber      FireNumberResult `json:"fire_number"`
	ProgressPercent float64          `json:"progress_percent"`
	Target          float64          `json:"target_fire_number"`

	Coast      CoastFireResult   `json:"coast"`
	TimeToFire TimeToFireResult  `json:"-"`
	Projection *ProjectionSeries `json:"projection"`

	PortfolioValue   float64                  `json:"portfolio_value"`
	Withdrawal       WithdrawalAmount         `json:"withdrawal"`
	WithdrawalTable  []WithdrawalAmount       `json:"withdrawal_scenarios"`
	LimitsYear       int                      `json:"limits_year"`
	LimitsAge        int                      `json:"limits_age"`
	ContributionCaps []ContributionLimitEntry `json:"contribution_limits"`
}

// PlanReport is the result of running a whole plan file.
type PlanReport struct {
	Name        string           `json:"name"`
	GeneratedAt time.Time        `json:"generated_at"`
	Scenarios   []ScenarioReport `json:"scenarios"`
	Assumptions []string         `json:"assumptions"`
}
