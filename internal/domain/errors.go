package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrStorage       = errors.New("storage error")
)

// Validation kinds. A *ValidationError carries exactly one of these and
// matches both it and ErrValidation under errors.Is.
var (
	ErrEmptyField        = errors.New("empty field")
	ErrUnknownSection    = errors.New("unknown section")
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrInvalidFilter     = errors.New("invalid filter")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Kind   error
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() []error {
	if e.Kind == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Kind}
}

// Field returns the first offending field name, or "" if there is none.
func (e *ValidationError) Field() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Field
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewInvalidFilterError reports a malformed query filter value.
func NewInvalidFilterError(field, message string) *ValidationError {
	return &ValidationError{
		Kind:   ErrInvalidFilter,
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// FieldErrors collects field errors while validating an input. The kind of
// the first error added becomes the kind of the resulting ValidationError.
type FieldErrors struct {
	kind error
	errs []FieldError
}

// Add records one offending field.
func (f *FieldErrors) Add(kind error, field, message string) {
	if f.kind == nil {
		f.kind = kind
	}
	f.errs = append(f.errs, FieldError{Field: field, Message: message})
}

// Err returns the collected errors, or nil if none were added.
func (f *FieldErrors) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return &ValidationError{Kind: f.kind, Errors: f.errs}
}

// StorageError wraps a failure of the durable store. The wrapped error is
// kept for logging; it must not be shown to API clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports ErrStorage as a match so callers can classify with errors.Is.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }
