package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code, so clones with custom
// messages still match the predefined values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for the booking API.
var (
	ErrInvalidIdentifier = New("INVALID_IDENTIFIER", http.StatusBadRequest, "invalid identifier")
	ErrMissingFields     = New("MISSING_FIELDS", http.StatusBadRequest, "Missing required fields")
	ErrInvalidBirthdate  = New("INVALID_BIRTHDATE", http.StatusBadRequest, "Invalid birthdate")
	ErrUnderage          = New("UNDERAGE", http.StatusBadRequest, "User must be at least 18 years old")
	ErrInvalidEmail      = New("INVALID_EMAIL", http.StatusBadRequest, "Invalid email format")
	ErrInvalidFieldType  = New("INVALID_FIELD_TYPE", http.StatusBadRequest, "Invalid field type")
	ErrNotFound          = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrRouteNotFound     = New("ROUTE_NOT_FOUND", http.StatusNotFound, "Route not found")
	ErrMethodNotAllowed  = New("METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed, "Method not allowed")
	ErrInternal          = New("INTERNAL_ERROR", http.StatusInternalServerError, "Internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Internal wraps a store or runtime failure behind a generic message.
func Internal(err error, message string) *Error {
	if message == "" {
		message = ErrInternal.Message
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, message)
}
