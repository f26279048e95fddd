// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// ErrValidation is the base error for rejected input: a required field
	// is missing or empty, or a precondition such as the Pass Plus
	// acknowledgement was not met. No store access happens after it.
	ErrValidation = errors.New("validation error")

	// ErrEmptyField indicates a required field was missing or empty.
	ErrEmptyField = errors.New("required field is empty")

	// ErrNotFound indicates the target record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidFormat indicates a stored label did not match the pattern
	// an operation needed to parse (e.g. a "Level N" progress label).
	ErrInvalidFormat = errors.New("invalid format")

	// ErrImmutableField indicates an attempt to change a field that is
	// fixed once the record is created.
	ErrImmutableField = errors.New("field is immutable")

	// ErrStore indicates the underlying storage operation failed. The
	// cause is always attached; it is never swallowed.
	ErrStore = errors.New("store error")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g. "student", "lesson", "report"
	Op      string // operation that failed, e.g. "Create", "Search"
	Kind    error  // base error for errors.Is() checking
	Message string // human-readable message
	Err     error  // underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching against both kind and cause.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrImmutableField)
}

// IsInvalidFormat checks if the error is a label-format error.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsStore checks if the error came from the underlying store.
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}
