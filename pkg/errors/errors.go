// Package errors provides structured error types for brickstack.
//
// Every failure a caller can act on carries a machine-readable [Code]:
//   - INVALID_*: input, configuration and submission validation failures
//   - placement codes (LAYER_COLLISION, OUT_OF_BOUNDS, NOT_PLACED, ALREADY_PLACED)
//   - generation codes (GENERATION_INCOMPLETE, NOT_GENERATED)
//   - INTERNAL_ERROR / UNSUPPORTED for everything else
//
// Types outside this package take part in [Is] and [GetCode] by implementing
// the [Coder] interface.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "piece count %d exceeds palette", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidSubmission Code = "INVALID_SUBMISSION"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Placement errors
	ErrCodeLayerCollision Code = "LAYER_COLLISION"
	ErrCodeOutOfBounds    Code = "OUT_OF_BOUNDS"
	ErrCodeNotPlaced      Code = "NOT_PLACED"
	ErrCodeAlreadyPlaced  Code = "ALREADY_PLACED"

	// Generation errors
	ErrCodeGenerationIncomplete Code = "GENERATION_INCOMPLETE"
	ErrCodeNotGenerated         Code = "NOT_GENERATED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Coder is implemented by error types that expose their own code.
type Coder interface {
	error
	Code() Code
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
// The outermost coded error in the chain decides.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case Coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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
