// Package errors defines the service error taxonomy and its mapping to
// HTTP status codes.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeUnavailable     Code = "UNAVAILABLE"
	CodeInternal        Code = "INTERNAL"
)

// ServiceError carries an error code, a caller-safe message and the
// HTTP status it maps to. The wrapped cause is never serialized.
type ServiceError struct {
	Code       Code
	Message    string
	HTTPStatus int
	cause      error
}

func (e *ServiceError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func Validation(message string) *ServiceError {
	return &ServiceError{Code: CodeValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

func Unauthenticated(message string) *ServiceError {
	return &ServiceError{Code: CodeUnauthenticated, Message: message, HTTPStatus: http.StatusUnauthorized}
}

func Forbidden(message string) *ServiceError {
	return &ServiceError{Code: CodeForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Code: CodeNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}

func Conflict(message string) *ServiceError {
	return &ServiceError{Code: CodeConflict, Message: message, HTTPStatus: http.StatusConflict}
}

// Unavailable reports a book that cannot be borrowed right now. It
// surfaces as a 400, not a 409.
func Unavailable(message string) *ServiceError {
	return &ServiceError{Code: CodeUnavailable, Message: message, HTTPStatus: http.StatusBadRequest}
}

func Internal(message string, cause error) *ServiceError {
	return &ServiceError{Code: CodeInternal, Message: message, HTTPStatus: http.StatusInternalServerError, cause: cause}
}

// WithCause attaches an underlying error for logs without changing the
// caller-visible message.
func (e *ServiceError) WithCause(cause error) *ServiceError {
	e.cause = cause
	return e
}

// AsServiceError extracts a *ServiceError from err's chain, or nil.
func AsServiceError(err error) *ServiceError {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}
	return nil
}

// IsCode reports whether err is a ServiceError with the given code.
func IsCode(err error, code Code) bool {
	serviceErr := AsServiceError(err)
	return serviceErr != nil && serviceErr.Code == code
}
