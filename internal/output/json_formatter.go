package output

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/decimal"
)

// JSONFormatter serializes the plan report as pretty-printed JSON. Values
// that cannot be computed (NaN, ±Inf) are written as null.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	return json.MarshalIndent(buildJSONReport(report), "", "  ")
}

type jsonReport struct {
	Name           string         `json:"name,omitempty"`
	GeneratedAt    time.Time      `json:"generated_at"`
	Currency       string         `json:"currency"`
	Assumptions    []string       `json:"assumptions"`
	Recommendation *jsonRecommend `json:"recommendation,omitempty"`
	Scenarios      []jsonScenario `json:"scenarios"`
}

type jsonRecommend struct {
	Scenario    string  `json:"scenario"`
	YearsToFire float64 `json:"years_to_fire"`
}

type jsonScenario struct {
	Name               string                          `json:"name"`
	Inputs             domain.Scenario                 `json:"inputs"`
	FireNumber         jsonFireNumber                  `json:"fire_number"`
	ProgressPercent    *float64                        `json:"progress_percent"`
	TargetFireNumber   *float64                        `json:"target_fire_number"`
	Coast              jsonCoast                       `json:"coast"`
	TimeToFire         jsonTimeToFire                  `json:"time_to_fire"`
	Projection         []jsonPoint                     `json:"projection"`
	Withdrawal         jsonWithdrawal                  `json:"withdrawal"`
	WithdrawalTable    []jsonWithdrawal                `json:"withdrawal_scenarios"`
	LimitsYear         int                             `json:"limits_year"`
	LimitsAge          int                             `json:"limits_age"`
	ContributionLimits []domain.ContributionLimitEntry `json:"contribution_limits"`
}

type jsonFireNumber struct {
	FireType              domain.FireType `json:"fire_type"`
	AnnualExpenses        *float64        `json:"annual_expenses"`
	Multiplier            *float64        `json:"multiplier"`
	FireNumber            *float64        `json:"fire_number"`
	AnnualWithdrawal      *float64        `json:"annual_withdrawal"`
	MonthlyWithdrawal     *float64        `json:"monthly_withdrawal"`
	WithdrawalRatePercent *float64        `json:"withdrawal_rate_percent"`
}

type jsonWithdrawal struct {
	RatePercent    float64  `json:"rate_percent"`
	Description    string   `json:"description"`
	Risk           string   `json:"risk"`
	PortfolioValue *float64 `json:"portfolio_value"`
	AnnualAmount   *float64 `json:"annual_amount"`
	MonthlyAmount  *float64 `json:"monthly_amount"`
}

type jsonPoint struct {
	Year       int      `json:"year"`
	Portfolio  *float64 `json:"portfolio"`
	FireTarget *float64 `json:"fire_target"`
}

type jsonCoast struct {
	YearsRemaining  *float64 `json:"years_remaining"`
	CurrentSavings  *float64 `json:"current_savings"`
	FutureValue     *float64 `json:"future_value"`
	CoastFireNumber *float64 `json:"coast_fire_number"`
	HasReached      bool     `json:"has_reached"`
	Remaining       *float64 `json:"remaining"`
	ProgressPercent *float64 `json:"progress_percent"`
}

type jsonTimeToFire struct {
	YearsToFire        *float64 `json:"years_to_fire"`
	Months             int      `json:"months"`
	Reachable          bool     `json:"reachable"`
	AnnualContribution *float64 `json:"annual_contribution"`
	TotalContributed   *float64 `json:"total_contributed"`
}

// finite returns nil for values that JSON cannot represent.
func finite(v float64) *float64 {
	if !decimal.IsFinite(v) {
		return nil
	}
	return &v
}

func buildJSONReport(report *domain.PlanReport) jsonReport {
	out := jsonReport{
		Name:        report.Name,
		GeneratedAt: report.GeneratedAt,
		Currency:    CurrencyCode(),
		Assumptions: assumptionsFor(report),
		Scenarios:   make([]jsonScenario, 0, len(report.Scenarios)),
	}
	if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
		out.Recommendation = &jsonRecommend{Scenario: rec.ScenarioName, YearsToFire: rec.YearsToFire}
	}
	for _, sc := range report.Scenarios {
		js := jsonScenario{
			Name:   sc.Name,
			Inputs: sc.Inputs,
			FireNumber: jsonFireNumber{
				FireType:              sc.FireNumber.FireType,
				AnnualExpenses:        finite(sc.FireNumber.AnnualExpenses),
				Multiplier:            finite(sc.FireNumber.Multiplier),
				FireNumber:            finite(sc.FireNumber.FireNumber),
				AnnualWithdrawal:      finite(sc.FireNumber.AnnualWithdrawal),
				MonthlyWithdrawal:     finite(sc.FireNumber.MonthlyWithdrawal),
				WithdrawalRatePercent: finite(sc.FireNumber.WithdrawalRatePercent),
			},
			ProgressPercent:  finite(sc.ProgressPercent),
			TargetFireNumber: finite(sc.Target),
			Coast: jsonCoast{
				YearsRemaining:  finite(sc.Coast.YearsRemaining),
				CurrentSavings:  finite(sc.Coast.CurrentSavings),
				FutureValue:     finite(sc.Coast.FutureValue),
				CoastFireNumber: finite(sc.Coast.Threshold),
				HasReached:      sc.Coast.HasReached,
				Remaining:       finite(sc.Coast.Remaining),
				ProgressPercent: finite(sc.Coast.ProgressPercent),
			},
			TimeToFire: jsonTimeToFire{
				YearsToFire:        finite(sc.TimeToFire.YearsToFire),
				Months:             sc.TimeToFire.Months(),
				Reachable:          sc.TimeToFire.Reachable(),
				AnnualContribution: finite(sc.TimeToFire.AnnualContribution),
				TotalContributed:   finite(sc.TimeToFire.TotalContributed),
			},
			Projection:         []jsonPoint{},
			Withdrawal:         toJSONWithdrawal(sc.Withdrawal),
			WithdrawalTable:    make([]jsonWithdrawal, 0, len(sc.WithdrawalTable)),
			LimitsYear:         sc.LimitsYear,
			LimitsAge:          sc.LimitsAge,
			ContributionLimits: sc.ContributionCaps,
		}
		for _, w := range sc.WithdrawalTable {
			js.WithdrawalTable = append(js.WithdrawalTable, toJSONWithdrawal(w))
		}
		if sc.Projection != nil {
			for _, p := range sc.Projection.Points {
				js.Projection = append(js.Projection, jsonPoint{Year: p.Year, Portfolio: finite(p.Portfolio), FireTarget: finite(p.FireTarget)})
			}
		}
		out.Scenarios = append(out.Scenarios, js)
	}
	return out
}

func toJSONWithdrawal(w domain.WithdrawalAmount) jsonWithdrawal {
	return jsonWithdrawal{
		RatePercent:    w.RatePercent,
		Description:    w.Description,
		Risk:           w.Risk,
		PortfolioValue: finite(w.PortfolioValue),
		AnnualAmount:   finite(w.AnnualAmount),
		MonthlyAmount:  finite(w.MonthlyAmount),
	}
}
