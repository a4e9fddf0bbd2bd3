package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

var (
	maxWhole = decimal.NewFromInt(math.MaxInt64)
	minWhole = decimal.NewFromInt(-math.MaxInt64)
)

// NewMoney creates a new Money instance from a float64. NaN and ±Inf have
// no decimal form and become zero; check IsFinite first when that matters.
func NewMoney(value float64) Money {
	if !IsFinite(value) {
		return Zero()
	}
	return Money{decimal.NewFromFloat(value)}
}

// IsFinite reports whether value can be represented as Money.
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// RoundWhole rounds the money amount to whole currency units
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// Whole returns the amount rounded to whole currency units. ok is false
// when the rounded amount is outside ±math.MaxInt64.
func (m Money) Whole() (whole int64, ok bool) {
	r := m.Decimal.Round(0)
	if r.GreaterThan(maxWhole) || r.LessThan(minWhole) {
		return 0, false
	}
	return r.IntPart(), true
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Percent returns ratePercent percent of the amount
func (m Money) Percent(ratePercent decimal.Decimal) Money {
	return Money{m.Decimal.Mul(ratePercent).Div(decimal.NewFromInt(100))}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Float64 returns the nearest float64 to the amount.
func (m Money) Float64() float64 {
	return m.Decimal.InexactFloat64()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
