package common

import (
	"errors"
	"fmt"
)

// Common error types used across the engine
var (
	// ErrStorageUnavailable indicates the persistence medium cannot be read or written
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrCorruptHistory indicates a history file exists but could not be parsed
	ErrCorruptHistory = errors.New("corrupt history")
	// ErrNoDocument indicates an operation that requires a current document was called without one
	ErrNoDocument = errors.New("no current document")
	// ErrNoPriorVersion indicates no successful snapshot exists to compare against
	ErrNoPriorVersion = errors.New("no prior successful version")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
