package kernel

import (
	"fmt"
	"math"

	"foodexpress/internal/pkg/errs"
)

// RoundToCents rounds a monetary amount to two decimal places using
// round-half-up at the cent boundary (4.9995 settles as 5.00).
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ValidateAmount checks that a monetary amount is a finite, non-negative number.
func ValidateAmount(paramName string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%v is not a valid amount", amount))
	}
	return nil
}
