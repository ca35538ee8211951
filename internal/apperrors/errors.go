// Package apperrors defines the closed set of error kinds the API can
// surface. Errors are constructed where a condition is detected and mapped
// to an HTTP status exactly once, at the controller boundary.
package apperrors

import "errors"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
	KindConfiguration
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "Unauthorized"}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict() *Error {
	return &Error{Kind: KindConflict, Message: "Conflict"}
}

// Configuration signals a server misconfiguration (e.g. missing JWT secret).
// It maps to 500 but is distinct from transient storage failures.
func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf extracts the kind from err, unwrapping as needed. Unknown errors
// are treated as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the user-safe message for err. Internal detail is never
// exposed: anything that is not an *Error reads as a generic server error.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "Internal server error"
}
