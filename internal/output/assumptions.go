package output

import (
	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions rendered when a report
// carries none of its own.
var DefaultAssumptions = calculation.GenerateAssumptions(nil)

func assumptionsFor(report *domain.PlanReport) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
