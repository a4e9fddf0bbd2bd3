package config

import (
	"fmt"
	"os"

	"github.com/rpgo/fire-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan from YAML bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded plan. Numeric fields are
// already sanitized by domain.Amount, so only values the calculators
// cannot work with are rejected.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if _, err := domain.ParseFireType(string(scenario.FireType)); err != nil {
		return err
	}
	if scenario.Multiplier < 0 {
		return fmt.Errorf("multiplier cannot be negative")
	}
	if scenario.ReturnRatePercent <= -100 {
		return fmt.Errorf("return rate must be greater than -100%%")
	}
	if scenario.WithdrawalRatePercent < 0 || scenario.WithdrawalRatePercent > 100 {
		return fmt.Errorf("withdrawal rate must be between 0 and 100%%")
	}
	if scenario.CurrentAge < 0 || scenario.RetirementAge < 0 {
		return fmt.Errorf("ages cannot be negative")
	}
	if scenario.LimitsYear != 0 {
		if _, err := domain.ContributionLimits(scenario.LimitsYear); err != nil {
			return err
		}
	}
	if scenario.LimitsAge < 0 {
		return fmt.Errorf("limits age cannot be negative")
	}
	return nil
}

// CreateExampleConfiguration creates an example plan with one scenario per
// calculator default.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Name: "Example FIRE plan",
		Scenarios: []domain.Scenario{
			{
				Name:                "Traditional FIRE",
				FireType:            domain.FireTraditional,
				AnnualExpenses:      40000,
				CurrentAge:          30,
				RetirementAge:       65,
				CurrentSavings:      100000,
				MonthlyContribution: 3000,
				ReturnRatePercent:   7,
			},
			{
				Name:                  "Lean FIRE",
				FireType:              domain.FireLean,
				AnnualExpenses:        30000,
				CurrentAge:            30,
				RetirementAge:         55,
				CurrentSavings:        50000,
				MonthlyContribution:   2000,
				ReturnRatePercent:     7,
				WithdrawalRatePercent: 5,
			},
			{
				Name:                  "Fat FIRE",
				FireType:              domain.FireFat,
				AnnualExpenses:        100000,
				CurrentAge:            35,
				RetirementAge:         60,
				CurrentSavings:        400000,
				MonthlyContribution:   6000,
				ReturnRatePercent:     6,
				WithdrawalRatePercent: 3.5,
			},
		},
	}
}
