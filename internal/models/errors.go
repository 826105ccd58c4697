package models

import "errors"

// ErrInvalidInput is the root of the validation error family. Every
// ValidationError unwraps to it so callers can test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError describes structurally malformed input. "No viable bet"
// conditions are deliberately not errors; they surface as zero-value results.
type ValidationError struct {
	Code    string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes every validation error match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Custom errors
var (
	ErrNoRecentResults  = NewValidationError("no_recent_results", "horse has no recent results")
	ErrNoHorses         = NewValidationError("no_horses", "at least one horse is required")
	ErrNoPredictions    = NewValidationError("no_predictions", "at least one prediction is required")
	ErrInvalidUnitPrice = NewValidationError("invalid_unit_price", "unit price must be positive")
)
