package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReferentialIntegrity indicates that an operation was blocked because other
// records still reference the target (e.g. deleting a department that owns employees).
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ErrTransactionFailure indicates a failure inside a multi-statement transaction
// scope. The transaction is guaranteed to have been rolled back by the time the
// caller sees this error.
var ErrTransactionFailure = errors.New("transaction failure")

// AppError carries an HTTP-ish status code alongside a message and the
// underlying cause so callers can match with errors.Is/As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError creates an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewReferentialIntegrityError creates an AppError that matches ErrReferentialIntegrity.
func NewReferentialIntegrityError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrReferentialIntegrity}
}
