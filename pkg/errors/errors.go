// Package errors carries machine-readable error codes through the crayon
// library and CLI.
//
// Every failure that crosses a package boundary is an *Error holding a Code,
// a human-readable message, and optionally the error that caused it. Callers
// branch on codes rather than on message text:
//
//	if errors.Is(err, errors.ErrCodeInvalidSpec) {
//	    // reject the spec file
//	}
//
// Wrapping keeps the chain intact for the standard library's errors.As:
//
//	return errors.Wrap(errors.ErrCodeRender, err, "rendering %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure class. Codes are stable strings so they can
// appear in JSON API responses and in scripts that parse CLI output.
type Code string

// Validation failures carry INVALID_* codes so the CLI can print a short
// usage-style message instead of a chain of wrapped causes.
const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidSamples    Code = "INVALID_SAMPLE_COUNT"
	ErrCodeInvalidJitter     Code = "INVALID_JITTER"
	ErrCodeInvalidDensity    Code = "INVALID_DENSITY"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidColor      Code = "INVALID_COLOR"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidFill       Code = "INVALID_FILL"
	ErrCodeInvalidChartType  Code = "INVALID_CHART_TYPE"
	ErrCodeInvalidSpec       Code = "INVALID_SPEC"
	ErrCodeInvalidPath       Code = "INVALID_PATH"
)

// Codes for missing resources, rendering failures, and faults that are
// crayon's own rather than the caller's.
const (
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeRender Code = "RENDER_ERROR"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error pairs a stable Code with a formatted message. Cause, when set, is
// reachable through Unwrap.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error from a code and a Sprintf-style message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is New with an underlying cause attached.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or "" when
// the chain holds none.
func GetCode(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// UserMessage strips the code prefix: the bare message for an *Error,
// err.Error() for anything else.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return e.Message
}
