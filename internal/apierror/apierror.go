// Package apierror defines the error type rendered by the HTTP error responder.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultStatus is used for any error that carries no status of its own
const DefaultStatus = http.StatusBadRequest

// Error is an error with an optional HTTP status. A zero Status means DefaultStatus.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an Error with no attached status
func New(message string) *Error {
	return &Error{Message: message}
}

// Newf formats according to a format specifier and returns an Error with no attached status
func Newf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// WithStatus returns an Error carrying the given status
func WithStatus(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// Wrap attaches a status to err while keeping its message
func Wrap(status int, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Status: status, Message: err.Error(), Err: err}
}

// StatusCode returns the status attached to err, or DefaultStatus if none is
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	return DefaultStatus
}
