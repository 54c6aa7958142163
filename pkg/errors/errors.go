// Package errors provides structured error types for citypaths.
//
// Every failure that reaches the command line carries a machine-readable
// [Code] so the CLI can print one diagnostic and pick an exit status, and so
// tests can assert on the failure category instead of on message text.
//
// # Error Codes
//
//   - UNKNOWN_CITY: a query names a city that was never declared
//   - INVALID_INDEX: an edge target or query index falls outside [1, nodeCount]
//   - MALFORMED_INPUT: the input stream does not follow the protocol
//   - INVALID_INPUT: a graph was assembled inconsistently (duplicates, counts, costs)
//   - INVALID_FORMAT: an unknown output format was requested
//
// An unreachable destination is not an error; see the shortest package.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownCity, "unknown city %q", name)
//	if errors.Is(err, errors.ErrCodeUnknownCity) {
//	    // report and stop
//	}
//
//	// Attach the offending input line
//	err = errors.AtLine(err, 7)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph and query errors
	ErrCodeUnknownCity  Code = "UNKNOWN_CITY"
	ErrCodeInvalidIndex Code = "INVALID_INDEX"

	// Input errors
	ErrCodeMalformedInput Code = "MALFORMED_INPUT"
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Line    int    // 1-based input line, 0 when not tied to input
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// AtLine records the input line an error belongs to.
// If err is an *Error without a line, the line is set in place on a copy;
// any other error is wrapped as MALFORMED_INPUT. A nil err stays nil.
func AtLine(err error, line int) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if e.Line > 0 {
			return err
		}
		cp := *e
		cp.Line = line
		return &cp
	}
	return &Error{Code: ErrCodeMalformedInput, Message: "read input", Line: line, Cause: err}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetLine extracts the input line from an error, or 0.
func GetLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
