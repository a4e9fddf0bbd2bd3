package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// CalculationEngine runs every calculator over the scenarios of a plan.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario computes the FIRE number, Coast FIRE, time-to-FIRE,
// projection, withdrawal and contribution limit views for one scenario.
func (ce *CalculationEngine) RunScenario(ctx context.Context, sc *domain.Scenario) (*domain.ScenarioReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fireType, err := domain.ParseFireType(string(sc.FireType))
	if err != nil {
		return nil, err
	}

	fire := FireNumberWithMultiplier(sc.AnnualExpenses.Float64(), fireType, sc.Multiplier.Float64())
	ce.Logger.Debugf("%s: fire number %.2f (%.0fx of %.2f)", sc.Name, fire.FireNumber, fire.Multiplier, fire.AnnualExpenses)

	target := sc.TargetFireNumber.Float64()
	if target <= 0 {
		target = fire.FireNumber
	}
	savings := sc.CurrentSavings.Float64()
	monthly := sc.MonthlyContribution.Float64()
	rate := sc.ReturnRatePercent.Float64()

	coast, err := CoastFire(domain.CoastFireInput{
		CurrentAge:        sc.CurrentAge.Float64(),
		RetirementAge:     sc.RetirementAge.Float64(),
		CurrentSavings:    savings,
		TargetFireNumber:  target,
		ReturnRatePercent: rate,
	})
	if err != nil {
		return nil, fmt.Errorf("coast FIRE: %w", err)
	}
	ce.Logger.Debugf("%s: coast threshold %.2f reached=%t", sc.Name, coast.Threshold, coast.HasReached)

	ttf, err := TimeToFire(domain.TimeToFireInput{
		CurrentSavings:      savings,
		MonthlyContribution: monthly,
		TargetFireNumber:    target,
		ReturnRatePercent:   rate,
	})
	if err != nil {
		return nil, fmt.Errorf("time to FIRE: %w", err)
	}
	if !ttf.Reachable() {
		ce.Logger.Warnf("%s: time to FIRE not applicable (%v years)", sc.Name, ttf.YearsToFire)
	}

	series, err := GenerateProjection(domain.ProjectionInput{
		CurrentSavings:      savings,
		MonthlyContribution: monthly,
		FireTarget:          target,
		ReturnRatePercent:   rate,
	})
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	ce.Logger.Debugf("%s: projection has %d points, reached=%t", sc.Name, len(series.Points), series.ReachedTarget())

	portfolio := sc.PortfolioValue.Float64()
	if portfolio <= 0 {
		portfolio = target
	}
	withdrawalRate := sc.WithdrawalRatePercent.Float64()
	if withdrawalRate <= 0 {
		withdrawalRate = fire.WithdrawalRatePercent
	}

	limitsAge := sc.LimitsAge
	if limitsAge == 0 {
		limitsAge = int(sc.CurrentAge.Float64())
	}
	limitsYear, limits, err := ContributionLimitsFor(sc.LimitsYear)
	if err != nil {
		return nil, fmt.Errorf("contribution limits: %w", err)
	}

	return &domain.ScenarioReport{
		Name:             sc.Name,
		Inputs:           *sc,
		FireType:         fireType,
		FireNumber:       fire,
		ProgressPercent:  fire.ProgressPercent(savings),
		Target:           target,
		Coast:            coast,
		TimeToFire:       ttf,
		Projection:       series,
		PortfolioValue:   portfolio,
		Withdrawal:       CustomWithdrawal(portfolio, withdrawalRate),
		WithdrawalTable:  WithdrawalScenarios(portfolio),
		LimitsYear:       limitsYear,
		LimitsAge:        limitsAge,
		ContributionCaps: limits,
	}, nil
}

// RunPlan runs all scenarios of a plan in order.
func (ce *CalculationEngine) RunPlan(ctx context.Context, cfg *domain.Configuration) (*domain.PlanReport, error) {
	reports := make([]domain.ScenarioReport, 0, len(cfg.Scenarios))
	for i := range cfg.Scenarios {
		sc := &cfg.Scenarios[i]
		r, err := ce.RunScenario(ctx, sc)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		reports = append(reports, *r)
	}
	ce.Logger.Infof("ran %d scenarios for plan %q", len(reports), cfg.Name)

	return &domain.PlanReport{
		Name:        cfg.Name,
		GeneratedAt: nowFunc(),
		Scenarios:   reports,
		Assumptions: GenerateAssumptions(reports),
	}, nil
}

// GenerateAssumptions lists the modelling assumptions behind a report.
func GenerateAssumptions(reports []domain.ScenarioReport) []string {
	out := []string{
		"Returns compound monthly at the nominal annual rate divided by 12",
		"Contributions are made at the end of each month",
		"Coast FIRE and time-to-FIRE without contributions compound annually",
		fmt.Sprintf("Projections stop at the FIRE target or after %d years", domain.MaxProjectionYears),
		"Amounts are nominal; inflation and taxes are not modelled",
	}
	for _, r := range reports {
		out = append(out, fmt.Sprintf("%s: %.2f%% expected return, %.0fx multiplier (%.2f%% withdrawal)",
			r.Name, r.Inputs.ReturnRatePercent.Float64(), r.FireNumber.Multiplier, r.FireNumber.WithdrawalRatePercent))
	}
	return out
}
