// Package errors provides coded errors for the masonry layout.
//
// Every failure the layout can report carries a machine-readable Code so
// callers can branch on the kind of failure without string matching:
//
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // the item is not part of the layout
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes used by the layout packages.
const (
	// An item referenced by an operation is not a member of the collection
	ErrCodeNotFound Code = "NOT_FOUND"
	// A relative-move anchor or drop source does not belong to the layout
	ErrCodeInvalidTarget Code = "INVALID_TARGET"
	// Rendered state and the model disagree in a way that must not happen
	ErrCodeInvariantViolation Code = "INVARIANT_VIOLATION"
	// Positional access outside 0..Len()-1
	ErrCodeOutOfRange Code = "OUT_OF_RANGE"
	// Operation not allowed in the current lifecycle state
	ErrCodeInvalidState Code = "INVALID_STATE"
	// Malformed input files
	ErrCodeInvalidInput Code = "INVALID_INPUT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
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

// Is reports whether err has the given error code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
