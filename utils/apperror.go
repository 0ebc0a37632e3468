package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries the HTTP status a failure maps to, plus the message safe
// to return to the client. Wrapped internal detail stays server-side.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// NewInternalError hides the underlying cause from the client; callers log it.
func NewInternalError(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}

// AsAppError unwraps err into an AppError, or wraps it as an internal one.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}
