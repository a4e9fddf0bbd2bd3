package output

import (
	"math"
	"sort"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// Recommendation names the scenario that reaches its FIRE target soonest.
type Recommendation struct {
	ScenarioName string
	YearsToFire  float64
	FireNumber   float64
}

// AnalyzeScenarios picks the scenario with the shortest time to FIRE.
// Scenarios already past their target count as zero years; scenarios that
// never reach it are skipped. Ties go to the first name alphabetically.
func AnalyzeScenarios(report *domain.PlanReport) Recommendation {
	type ranked struct {
		name   string
		years  float64
		target float64
	}
	var ranks []ranked
	for _, sc := range report.Scenarios {
		y := sc.TimeToFire.YearsToFire
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, math.Max(0, y), sc.Target})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].years != ranks[j].years {
			return ranks[i].years < ranks[j].years
		}
		return ranks[i].name < ranks[j].name
	})
	best := ranks[0]
	return Recommendation{ScenarioName: best.name, YearsToFire: best.years, FireNumber: best.target}
}
