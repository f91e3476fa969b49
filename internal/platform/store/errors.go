package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup target id has no matching row.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint is the sentinel all constraint violations unwrap to,
	// whether raised by caller-side validation or by the database itself.
	ErrConstraint = errors.New("constraint violation")

	// ErrUnavailable is returned when the database file cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// ConstraintError reports which field violated which rule. It unwraps to
// ErrConstraint so handlers can classify it without string matching.
type ConstraintError struct {
	Field  string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConstraintError) Unwrap() error { return ErrConstraint }

// Violation is a convenience constructor used by the entity services.
func Violation(field, reason string) error {
	return &ConstraintError{Field: field, Reason: reason}
}
