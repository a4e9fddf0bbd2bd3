package domain

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrUnknownLimitsYear is returned for a year without a limits table.
var ErrUnknownLimitsYear = errors.New("no contribution limits for year")

// ContributionLimitEntry is the annual contribution limit for one account type.
type ContributionLimitEntry struct {
	Account       string          `json:"account"`
	StandardLimit decimal.Decimal `json:"standard_limit"`
	CatchUpLimit  decimal.Decimal `json:"catch_up_limit"`
	CatchUpAge    int             `json:"catch_up_age"`
}

// Total is the limit including the catch-up contribution.
func (e ContributionLimitEntry) Total() decimal.Decimal {
	return e.StandardLimit.Add(e.CatchUpLimit)
}

// LimitForAge returns the limit that applies at the given age.
func (e ContributionLimitEntry) LimitForAge(age int) decimal.Decimal {
	if age >= e.CatchUpAge {
		return e.Total()
	}
	return e.StandardLimit
}

// Account names used in the limits tables.
const (
	Account401k           = "401k"
	Account403b           = "403b"
	AccountTraditionalIRA = "Traditional IRA"
	AccountRothIRA        = "Roth IRA"
	AccountHSAIndividual  = "HSA (Individual)"
	AccountHSAFamily      = "HSA (Family)"
)

func limit(account string, standard, catchUp int64, age int) ContributionLimitEntry {
	return ContributionLimitEntry{
		Account:       account,
		StandardLimit: decimal.NewFromInt(standard),
		CatchUpLimit:  decimal.NewFromInt(catchUp),
		CatchUpAge:    age,
	}
}

var contributionLimits = map[int][]ContributionLimitEntry{
	2025: {
		limit(Account401k, 23000, 7500, 50),
		limit(Account403b, 23000, 7500, 50),
		limit(AccountTraditionalIRA, 7000, 1000, 50),
		limit(AccountRothIRA, 7000, 1000, 50),
		limit(AccountHSAIndividual, 4150, 1000, 55),
		limit(AccountHSAFamily, 8300, 1000, 55),
	},
	2026: {
		limit(Account401k, 23500, 7500, 50),
		limit(Account403b, 23500, 7500, 50),
		limit(AccountTraditionalIRA, 7000, 1000, 50),
		limit(AccountRothIRA, 7000, 1000, 50),
		limit(AccountHSAIndividual, 4300, 1000, 55),
		limit(AccountHSAFamily, 8550, 1000, 55),
	},
}

// LimitYears lists the years with a limits table, oldest first.
func LimitYears() []int {
	years := make([]int, 0, len(contributionLimits))
	for y := range contributionLimits {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// ContributionLimits returns a copy of the limits table for a year.
func ContributionLimits(year int) ([]ContributionLimitEntry, error) {
	entries, ok := contributionLimits[year]
	if !ok {
		return nil, fmt.Errorf("%w %d (available: %v)", ErrUnknownLimitsYear, year, LimitYears())
	}
	out := make([]ContributionLimitEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// MaxContributionStrategy returns the accounts in the "max everything"
// strategy for a year and their summed limit.
func MaxContributionStrategy(year int) ([]ContributionLimitEntry, decimal.Decimal, error) {
	entries, err := ContributionLimits(year)
	if err != nil {
		return nil, decimal.Zero, err
	}
	picked, total := SelectMaxStrategy(entries)
	return picked, total, nil
}

// SelectMaxStrategy picks 401k, Roth IRA and family HSA out of a limits
// table and sums their totals including catch-up.
func SelectMaxStrategy(entries []ContributionLimitEntry) ([]ContributionLimitEntry, decimal.Decimal) {
	wanted := map[string]bool{Account401k: true, AccountRothIRA: true, AccountHSAFamily: true}
	var picked []ContributionLimitEntry
	total := decimal.Zero
	for _, e := range entries {
		if wanted[e.Account] {
			picked = append(picked, e)
			total = total.Add(e.Total())
		}
	}
	return picked, total
}
