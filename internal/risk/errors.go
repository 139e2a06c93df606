package risk

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the class of engine failure
type ErrorCategory string

const (
	// ErrorCategoryValidation covers non-positive or non-finite inputs and unknown enumerators
	ErrorCategoryValidation ErrorCategory = "VALIDATION"

	// ErrorCategoryGeometry covers degenerate trade geometry (zero stop distance)
	ErrorCategoryGeometry ErrorCategory = "GEOMETRY"

	// ErrorCategoryRange covers computed results outside their valid range
	ErrorCategoryRange ErrorCategory = "RANGE"
)

// EngineError is a categorized error with calculator context.
// All engine failures are deterministic given the same inputs; nothing
// is transient and nothing is retryable.
type EngineError struct {
	Category   ErrorCategory
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Category, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

func newValidationError(operation, format string, args ...interface{}) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryValidation,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

func newGeometryError(operation, format string, args ...interface{}) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryGeometry,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

func newRangeError(operation, format string, args ...interface{}) *EngineError {
	return &EngineError{
		Category:  ErrorCategoryRange,
		Operation: operation,
		Message:   fmt.Sprintf(format, args...),
	}
}

func isCategory(err error, category ErrorCategory) bool {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Category == category
	}
	return false
}

// IsValidationError reports whether err is an invalid-input failure
func IsValidationError(err error) bool {
	return isCategory(err, ErrorCategoryValidation)
}

// IsGeometryError reports whether err is a degenerate-geometry failure
func IsGeometryError(err error) bool {
	return isCategory(err, ErrorCategoryGeometry)
}

// IsRangeError reports whether err is an out-of-range result failure
func IsRangeError(err error) bool {
	return isCategory(err, ErrorCategoryRange)
}
