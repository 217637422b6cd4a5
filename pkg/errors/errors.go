// Package errors provides structured error types for slicetree.
//
// Every failure the floorplan core can report is a programming-invariant
// violation rather than a transient condition: a split whose children do not
// share the orthogonal dimension, a node of unknown kind reached during a
// walk, or a centroid merge whose inputs make the interpolation undefined.
// These carry a machine-readable [Code] so callers can tell them apart from
// input errors raised by the plan loader or the CLI.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (plan files, flags, paths)
//   - NOT_FOUND_*: Resource not found
//   - Everything else in the first block: floorplan invariant violations,
//     grouped by [IsInvariant]
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDimensionMismatch, "widths differ: %g != %g", a, b)
//	if errors.IsInvariant(err) {
//	    // a bug in the caller, not a bad input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPlan, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Invariant violations raised by the floorplan core.
const (
	ErrCodeInvariant          Code = "INVARIANT_VIOLATION"
	ErrCodeDimensionMismatch  Code = "DIMENSION_MISMATCH"
	ErrCodeUnknownNodeKind    Code = "UNKNOWN_NODE_KIND"
	ErrCodeDegenerateCentroid Code = "DEGENERATE_CENTROID"
	ErrCodeZeroWeight         Code = "ZERO_WEIGHT"
	ErrCodeInvalidWeight      Code = "INVALID_WEIGHT"
	ErrCodeCentroidPending    Code = "CENTROID_PENDING"
	ErrCodeSharedNode         Code = "SHARED_NODE"
	ErrCodeInvalidNode        Code = "INVALID_NODE"
)

// Input and environment errors.
const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPlan   Code = "INVALID_PLAN"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

var invariantCodes = map[Code]bool{
	ErrCodeInvariant:          true,
	ErrCodeDimensionMismatch:  true,
	ErrCodeUnknownNodeKind:    true,
	ErrCodeDegenerateCentroid: true,
	ErrCodeZeroWeight:         true,
	ErrCodeInvalidWeight:      true,
	ErrCodeCentroidPending:    true,
	ErrCodeSharedNode:         true,
	ErrCodeInvalidNode:        true,
}

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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsInvariant reports whether err is a floorplan invariant violation.
func IsInvariant(err error) bool {
	return invariantCodes[GetCode(err)]
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
