package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to clients. The gating engine's policy violations
// (Forbidden, Conflict) are always returned to the caller so the UI can react
// (locked screen, "already pending" banner); they are never swallowed.
const (
	CodeNotFound   = "not_found"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeValidation = "validation_error"
	CodeUpstream   = "upstream_unavailable"
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

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

func Forbidden(format string, args ...interface{}) *Error {
	return New(http.StatusForbidden, CodeForbidden, fmt.Errorf(format, args...))
}

func Conflict(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeConflict, fmt.Errorf(format, args...))
}

func Validation(format string, args ...interface{}) *Error {
	return New(http.StatusUnprocessableEntity, CodeValidation, fmt.Errorf(format, args...))
}

func Upstream(format string, args ...interface{}) *Error {
	return New(http.StatusBadGateway, CodeUpstream, fmt.Errorf(format, args...))
}

// Status maps any error to an HTTP status, defaulting to 500 for errors that
// carry no API classification.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// Code returns the API error code, or "" for unclassified errors.
func Code(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

func Is(err error, code string) bool {
	return Code(err) == code
}
