// Package errors provides the unified error type and factory functions for
// the ByeStunting platform. Every layer (assessment core, stores, HTTP
// interface) uses AppError as the single carrier for structured error
// information, enabling consistent HTTP responses, logging, and metrics.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// AppError is the single structured error type used throughout ByeStunting.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping so that errors.Is / errors.As / errors.Unwrap work transparently
// across all layers.
//
// Usage:
//
//	return errors.New(errors.CodeModelLoad, "weight blob truncated")
//	return errors.Wrap(err, errors.CodeInference, "forward pass failed")
//	return errors.Validation("usia harus antara 0-60 bulan")
type AppError struct {
	// Code is the typed error code that identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description of the error,
	// suitable for inclusion in API responses.
	Message string

	// Detail carries supplementary context (field values, artifact paths)
	// that aids debugging without leaking internals to end users.
	Detail string

	// Details carries an accumulated list of messages; validation errors use
	// it to report every violated constraint at once.
	Details []string

	// Cause is the underlying error, enabling errors.Is / errors.As
	// traversal of the full chain.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>", detail segment omitted when empty.
func (e *AppError) Error() string {
	switch {
	case len(e.Details) > 0:
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, strings.Join(e.Details, "; "))
	case e.Detail != "":
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	default:
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
}

// Unwrap returns the underlying cause error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithDetails returns a shallow copy of the receiver with the accumulated
// detail list set.
func (e *AppError) WithDetails(details []string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Details = details
	return &clone
}

// WithCause returns a shallow copy of the receiver with Cause set to err.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// New constructs a fresh AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap constructs an AppError that wraps an existing error. If err is nil,
// Wrap returns nil so it can be used inline. When err is already an *AppError
// and code is CodeUnknown the original code is preserved.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// IsCode reports whether any error in err's chain is an *AppError with the
// given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode extracts the ErrorCode from the first *AppError in err's chain,
// or CodeUnknown when none is present.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// IsValidation reports whether err represents a user-input fault.
func IsValidation(err error) bool { return IsCode(err, CodeValidation) || IsCode(err, CodeInvalidParam) }

// IsNotFound reports whether err represents a missing resource.
func IsNotFound(err error) bool { return IsCode(err, CodeNotFound) }

// IsTimeout reports whether err represents a deadline overrun, either our own
// codes or a wrapped context error.
func IsTimeout(err error) bool {
	return IsCode(err, CodeTimeout) || IsCode(err, CodeModelTimeout) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Validation constructs a CodeValidation AppError carrying the accumulated
// list of violated constraints.
func Validation(details ...string) *AppError {
	return &AppError{Code: CodeValidation, Message: "input tidak valid", Details: details}
}

// InvalidParam constructs a CodeInvalidParam AppError.
func InvalidParam(message string) *AppError {
	return &AppError{Code: CodeInvalidParam, Message: message}
}

// NotFound constructs a CodeNotFound AppError.
func NotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// Internal constructs a CodeInternal AppError. Use for unexpected server-side
// failures where no more specific code applies.
func Internal(message string) *AppError {
	return &AppError{Code: CodeInternal, Message: message}
}

// ModelLoad constructs a CodeModelLoad AppError for missing, truncated, or
// shape-mismatched weight artifacts.
func ModelLoad(message string) *AppError {
	return &AppError{Code: CodeModelLoad, Message: message}
}

// Inference constructs a CodeInference AppError for forward-pass failures.
func Inference(message string) *AppError {
	return &AppError{Code: CodeInference, Message: message}
}

// ModelTimeout constructs a CodeModelTimeout AppError for load+predict
// deadline overruns.
func ModelTimeout(message string) *AppError {
	return &AppError{Code: CodeModelTimeout, Message: message}
}

// Is delegates to the standard library so callers can use this package as a
// drop-in replacement for "errors".
func Is(err, target error) bool { return errors.Is(err, target) }

// As delegates to the standard library.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Unwrap delegates to the standard library.
func Unwrap(err error) error { return errors.Unwrap(err) }
