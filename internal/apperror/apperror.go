// Package apperror defines the error taxonomy shared by use cases,
// repositories and the presentation layer. Each category carries enough
// structure for the transport boundary to map it onto a status code
// without inspecting error strings.
package apperror

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or inconsistent input. It names the
// offending field so callers receive field-level detail. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validation creates a ValidationError for the given field.
func Validation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound creates a NotFoundError for the given resource and identifier.
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports a uniqueness or business-state conflict, e.g.
// deleting a completed payment or recalculating over a paid bonus.
// Conflicts are reported, never silently ignored.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Conflict creates a ConflictError.
func Conflict(format string, args ...any) *ConflictError {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// IntegrityError reports that a compensating rollback itself failed,
// leaving persisted state inconsistent. It must surface distinctly from
// ordinary internal errors because it requires manual reconciliation.
type IntegrityError struct {
	Operation     string
	Cause         error
	RollbackCause error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf(
		"integrity failure during %s: rollback failed (%v) after original error (%v); manual reconciliation required",
		e.Operation, e.RollbackCause, e.Cause,
	)
}

func (e *IntegrityError) Unwrap() error { return e.Cause }

// Integrity creates an IntegrityError for a failed compensation.
func Integrity(operation string, cause, rollbackCause error) *IntegrityError {
	return &IntegrityError{Operation: operation, Cause: cause, RollbackCause: rollbackCause}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var v *ConflictError
	return errors.As(err, &v)
}

// IsIntegrity reports whether err is an IntegrityError.
func IsIntegrity(err error) bool {
	var v *IntegrityError
	return errors.As(err, &v)
}
