package calculation

import (
	"slices"

	"github.com/rpgo/fire-calculator/internal/domain"
)

// DefaultLimitsYear is the current calendar year when a limits table exists
// for it, otherwise the most recent table.
func DefaultLimitsYear() int {
	years := domain.LimitYears()
	current := nowFunc().Year()
	if slices.Contains(years, current) {
		return current
	}
	return years[len(years)-1]
}

// ContributionLimitsFor returns the resolved year and its limits table.
// A zero year selects DefaultLimitsYear.
func ContributionLimitsFor(year int) (int, []domain.ContributionLimitEntry, error) {
	if year == 0 {
		year = DefaultLimitsYear()
	}
	entries, err := domain.ContributionLimits(year)
	if err != nil {
		return year, nil, err
	}
	return year, entries, nil
}
