package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks operations that referenced a campaign id no longer in
// the store. Callers recover locally (no-op or empty state); it never
// escalates to a crash.
var ErrNotFound = errors.New("campaign not found")

// ErrNotConfirmed is returned when a destructive operation is attempted
// without explicit user confirmation.
var ErrNotConfirmed = errors.New("confirmation required")

// ValidationError reports a missing or invalid creation field. The
// operation aborts with no partial record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func requiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
