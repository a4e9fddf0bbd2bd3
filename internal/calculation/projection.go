package calculation

import (
	"iter"
	"math"
	"slices"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// GenerateProjection simulates monthly compounding with contributions and
// returns one point per year, starting at year 0, until the portfolio first
// meets the FIRE target or MaxProjectionYears have elapsed. A portfolio that
// already meets the target yields only the year 0 point.
func GenerateProjection(in domain.ProjectionInput) (*domain.ProjectionSeries, error) {
	if err := validateReturnRate(in.ReturnRatePercent); err != nil {
		return nil, err
	}
	return &domain.ProjectionSeries{
		FireTarget: in.FireTarget,
		Points:     slices.Collect(ProjectionPoints(in)),
	}, nil
}

// ProjectionPoints lazily yields the projection. Each iteration restarts the
// simulation from the inputs. Portfolio values are rounded to whole currency
// units only when emitted, and the target test uses the rounded value;
// compounding keeps full precision.
func ProjectionPoints(in domain.ProjectionInput) iter.Seq[domain.ProjectionPoint] {
	r := monthlyRate(in.ReturnRatePercent)
	return func(yield func(domain.ProjectionPoint) bool) {
		value := in.CurrentSavings
		pt := domain.ProjectionPoint{Year: 0, Portfolio: math.Round(value), FireTarget: in.FireTarget}
		if !yield(pt) || pt.Portfolio >= in.FireTarget {
			return
		}
		for year := 1; year <= domain.MaxProjectionYears; year++ {
			for month := 0; month < 12; month++ {
				value = value*(1+r) + in.MonthlyContribution
			}
			pt = domain.ProjectionPoint{Year: year, Portfolio: math.Round(value), FireTarget: in.FireTarget}
			if !yield(pt) || pt.Portfolio >= in.FireTarget {
				return
			}
		}
	}
}
