package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	shopspring "github.com/shopspring/decimal"

	"github.com/rpgo/fire-calculator/pkg/decimal"
)

// NotApplicable is shown for values that cannot be computed.
const NotApplicable = "N/A"

var currencyCode = money.USD

// SetCurrency selects the ISO 4217 currency used by the currency helpers.
func SetCurrency(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	currencyCode = code
	return nil
}

// CurrencyCode returns the active currency code.
func CurrencyCode() string { return currencyCode }

// FormatCurrency formats an amount rounded to whole currency units, e.g.
// "$1,000,000". NaN and ±Inf render as N/A.
func FormatCurrency(amount float64) string {
	if !decimal.IsFinite(amount) {
		return NotApplicable
	}
	return formatWhole(decimal.NewMoney(amount))
}

// FormatDecimalCurrency formats a table amount in whole currency units.
func FormatDecimalCurrency(amount shopspring.Decimal) string {
	return formatWhole(decimal.NewMoneyFromDecimal(amount))
}

func formatWhole(m decimal.Money) string {
	cur := money.GetCurrency(currencyCode)
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	if n, ok := m.Whole(); ok {
		return f.Format(n)
	}
	return formatWholeDigits(f, m.RoundWhole())
}

// formatWholeDigits lays out an amount too large for money.Formatter, using
// the same grouping and template.
func formatWholeDigits(f *money.Formatter, m decimal.Money) string {
	sa := m.Abs().String()
	if f.Thousand != "" {
		for i := len(sa) - 3; i > 0; i -= 3 {
			sa = sa[:i] + f.Thousand + sa[i:]
		}
	}
	sa = strings.Replace(f.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", f.Grapheme, 1)
	if m.IsNegative() {
		sa = "-" + sa
	}
	return sa
}

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string { return formatPercent(pct, 2) }

// FormatPercentageShort formats a percentage with 1 decimal.
func FormatPercentageShort(pct float64) string { return formatPercent(pct, 1) }

func formatPercent(pct float64, places int) string {
	if !decimal.IsFinite(pct) {
		return NotApplicable
	}
	return strconv.FormatFloat(pct, 'f', places, 64) + "%"
}

// FormatYears renders a time-to-FIRE duration. Durations that are not a
// positive finite number of years render as N/A.
func FormatYears(years float64) string {
	if !(years > 0) || math.IsInf(years, 0) {
		return NotApplicable
	}
	return fmt.Sprintf("%.1f years", years)
}

// FormatMultiplier renders a FIRE multiplier, e.g. "25x".
func FormatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64) + "x"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// floatToString renders a float for machine-readable output; non-finite
// values become an empty field.
func floatToString(f float64, places int) string {
	if !decimal.IsFinite(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', places, 64)
}
