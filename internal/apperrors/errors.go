package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
// It also covers budgets that exist but are archived or belong to a
// different workspace, so existence is never leaked across tenants.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidAmount indicates a monetary amount that is zero, negative where
// a positive value is required, or otherwise unusable.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidTransfer indicates a transfer with identical source and
// destination budgets.
var ErrInvalidTransfer = errors.New("invalid transfer")

// ErrInvalidRange indicates summary date bounds that do not parse or that
// describe an empty window.
var ErrInvalidRange = errors.New("invalid date range")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the user lacks the required role for the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that rejects the action.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps lower-level failures (usually storage) with an HTTP-ish
// code and a message safe to log.
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

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
