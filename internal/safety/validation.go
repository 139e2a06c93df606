package safety

import (
	"fmt"
	"math"
)

// ValidationResult represents the result of a validation check
type ValidationResult struct {
	Valid   bool
	Message string
	Code    string
}

// Validator provides defensive validation for numeric trade inputs.
// Inputs arrive from upstream feeds and user forms, so every check
// guards against NaN/Inf and wildly implausible magnitudes, not just
// sign errors.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePrice validates a price value (entry, stop, target)
func (v *Validator) ValidatePrice(price float64, field string) ValidationResult {
	if math.IsNaN(price) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid %s: price is NaN", field),
			Code:    "INVALID_PRICE_NAN",
		}
	}

	if math.IsInf(price, 0) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid %s: price is infinite", field),
			Code:    "INVALID_PRICE_INF",
		}
	}

	if price <= 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid %s %.8f: price must be positive", field, price),
			Code:    "INVALID_PRICE_NEGATIVE",
		}
	}

	// Reject obvious data errors
	if price > 1e10 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("suspicious %s %.8f: exceeds reasonable bounds", field, price),
			Code:    "PRICE_OUT_OF_BOUNDS",
		}
	}

	if price < 1e-8 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("suspicious %s %.8f: below reasonable bounds", field, price),
			Code:    "PRICE_TOO_SMALL",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateLeverage validates a leverage multiplier
func (v *Validator) ValidateLeverage(leverage float64) ValidationResult {
	if math.IsNaN(leverage) || math.IsInf(leverage, 0) {
		return ValidationResult{
			Valid:   false,
			Message: "invalid leverage: value is not finite",
			Code:    "INVALID_LEVERAGE_NOT_FINITE",
		}
	}

	if leverage <= 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid leverage %.2f: leverage must be positive", leverage),
			Code:    "INVALID_LEVERAGE_NEGATIVE",
		}
	}

	if leverage > 125 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid leverage %.2f: exceeds exchange maximum 125x", leverage),
			Code:    "LEVERAGE_OUT_OF_BOUNDS",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateBalance validates an account balance (zero is allowed)
func (v *Validator) ValidateBalance(balance float64) ValidationResult {
	if math.IsNaN(balance) || math.IsInf(balance, 0) {
		return ValidationResult{
			Valid:   false,
			Message: "invalid balance: value is not finite",
			Code:    "INVALID_BALANCE_NOT_FINITE",
		}
	}

	if balance < 0 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid balance %.2f: balance cannot be negative", balance),
			Code:    "INVALID_BALANCE_NEGATIVE",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidateMarginRate validates a maintenance margin rate, which must sit
// strictly between 0 and 1
func (v *Validator) ValidateMarginRate(rate float64) ValidationResult {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ValidationResult{
			Valid:   false,
			Message: "invalid maintenance margin rate: value is not finite",
			Code:    "INVALID_MMR_NOT_FINITE",
		}
	}

	if rate <= 0 || rate >= 1 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid maintenance margin rate %.4f: must be in (0, 1)", rate),
			Code:    "INVALID_MMR_RANGE",
		}
	}

	return ValidationResult{Valid: true}
}

// ValidatePercent validates a percentage parameter such as risk percent
func (v *Validator) ValidatePercent(percent float64, field string) ValidationResult {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid %s: value is not finite", field),
			Code:    "INVALID_PERCENT_NOT_FINITE",
		}
	}

	if percent <= 0 || percent > 100 {
		return ValidationResult{
			Valid:   false,
			Message: fmt.Sprintf("invalid %s %.2f: must be in (0, 100]", field, percent),
			Code:    "INVALID_PERCENT_RANGE",
		}
	}

	return ValidationResult{Valid: true}
}
