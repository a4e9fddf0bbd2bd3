package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidReturnRate is returned for an annual return of -100% or lower,
// where compounding is undefined.
var ErrInvalidReturnRate = errors.New("return rate must be greater than -100%")

func validateReturnRate(ratePercent float64) error {
	if ratePercent <= -100 {
		return fmt.Errorf("%w, got %.2f%%", ErrInvalidReturnRate, ratePercent)
	}
	return nil
}

// annualRate converts a percentage into a fraction.
func annualRate(ratePercent float64) float64 { return ratePercent / 100 }

// monthlyRate is the nominal annual rate spread evenly over 12 months.
func monthlyRate(ratePercent float64) float64 { return annualRate(ratePercent) / 12 }
