package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvariantViolation indicates a write that would break a ledger invariant,
// e.g. editing a posted event or skipping a status.
var ErrInvariantViolation = errors.New("invariant violation")

// ErrConflict indicates that a conditional write lost against a concurrent writer.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrForbidden indicates that the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrStorageUnavailable is returned when the backing datastore fails. Every mutating
// operation is idempotent by id, so callers may retry.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError attaches an HTTP-ish status code and message to an underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// ValidationError lists the mandatory fields that were missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field names.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Storage wraps a datastore failure so it matches ErrStorageUnavailable.
func Storage(message string, err error) error {
	return NewAppError(503, message, errors.Join(ErrStorageUnavailable, err))
}
