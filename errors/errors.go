// Package errors provides error handling for fuzzmatch.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.IsValidationError(err) {
//	    // reject the call, nothing transient here
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapOnce    = crdb.UnwrapOnce
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across fuzzmatch.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrValidation indicates per-call input was rejected (e.g., an empty
	// query string). Fatal to that call, never transient.
	ErrValidation = New("validation failed")

	// ErrConfiguration indicates construction-time or config-file values
	// were rejected (e.g., a cutoff outside [0,1]).
	ErrConfiguration = New("invalid configuration")

	// ErrNotFound indicates a requested resource does not exist
	ErrNotFound = New("not found")
)

// IsValidationError checks if an error is or wraps ErrValidation
func IsValidationError(err error) bool {
	return err != nil && Is(err, ErrValidation)
}

// IsConfigurationError checks if an error is or wraps ErrConfiguration
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// WrapConfiguration wraps an error as a configuration error with context
func WrapConfiguration(err error, context string) error {
	return Wrap(Wrap(ErrConfiguration, err.Error()), context)
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...interface{}) error {
	return Wrap(ErrValidation, Newf(format, args...).Error())
}

// NewConfigurationError creates a configuration error with a formatted message
func NewConfigurationError(format string, args ...interface{}) error {
	return Wrap(ErrConfiguration, Newf(format, args...).Error())
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
