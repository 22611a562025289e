package models

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a referenced budget, goal, or contribution does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidState indicates an operation against a record whose lifecycle
// forbids it, such as contributing to an inactive goal.
var ErrInvalidState = errors.New("invalid state")

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
