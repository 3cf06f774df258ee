// Package apierr defines the wire-level error surface of the contact API:
// every failure response carries one of a small set of stable codes plus an
// HTTP status, with the underlying cause retained for logs.
package apierr

import (
	"fmt"
	"net/http"
)

// Stable codes for the "error" field of failure responses. Clients branch on
// these, never on the detail text.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeInvalidArgument    = "invalid_argument"
	CodeDuplicateID        = "duplicate_id"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInternal           = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// InvalidArgument marks a failure caused by the caller's input: a field that
// failed domain validation.
func InvalidArgument(err error) *Error {
	return New(http.StatusBadRequest, CodeInvalidArgument, err)
}

// Internal marks a failure that is not the caller's fault.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}
