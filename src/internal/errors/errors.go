// Package errors provides the domain error taxonomy of the storefront admin backend.
//
// Every failure that crosses a package boundary is an *Error carrying a Code, so the
// HTTP layer can map it to a status without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeBadRequest indicates missing or invalid required input.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	// ErrCodeNotFound indicates the requested key is absent from a collection.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeConflict indicates a key already exists on create.
	ErrCodeConflict ErrorCode = "CONFLICT"

	// ErrCodeForbidden indicates the admin gate rejected the caller.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"

	// ErrCodeIO indicates the backing store could not be read or written.
	ErrCodeIO ErrorCode = "IO_FAILURE"

	// ErrCodeParse indicates the backing store holds corrupt data.
	ErrCodeParse ErrorCode = "PARSE_FAILURE"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// MessageOf returns the message of the first *Error in err's chain.
// It never includes the cause, so it is safe to show to API callers.
func MessageOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return ""
}

// NewBadRequest creates a new input validation error.
func NewBadRequest(message string) *Error {
	return New(ErrCodeBadRequest, message)
}

// NewNotFound creates an error for an absent key.
func NewNotFound(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// NewConflict creates an error for a duplicate key.
func NewConflict(message string) *Error {
	return New(ErrCodeConflict, message)
}

// NewForbidden creates an admin gate rejection.
func NewForbidden(message string) *Error {
	return New(ErrCodeForbidden, message)
}

// NewIOError creates a new storage read/write error.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewParseError creates a new storage decode error.
func NewParseError(message string, cause error) *Error {
	return Wrap(ErrCodeParse, message, cause)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
