// Package errors provides error handling for cxxbind.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for generator diagnostics
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
//	if errors.Is(err, errors.ErrSymbolConflict) {
//	    // handle collision
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the binding pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrDuplicateDeclaration indicates the same qualified name + kind was
	// registered twice in a declaration model. This reflects a true C++
	// redefinition in the input, not a binding artifact. Fatal: model
	// construction stops before any generation.
	ErrDuplicateDeclaration = New("duplicate declaration")

	// ErrNotFound indicates a lookup of an unregistered qualified name
	ErrNotFound = New("declaration not found")

	// ErrUnsupportedType indicates a type that cannot be mapped to the
	// target language (e.g. an unresolvable nested template)
	ErrUnsupportedType = New("unsupported type")

	// ErrSymbolConflict indicates two live declarations mapped to the same
	// target-language name
	ErrSymbolConflict = New("symbol conflict")

	// ErrCyclicType indicates a type reference cycle that would recurse
	// unboundedly during mapping
	ErrCyclicType = New("cyclic type reference")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsDuplicateDeclarationError checks if an error is or wraps ErrDuplicateDeclaration.
func IsDuplicateDeclarationError(err error) bool {
	return err != nil && Is(err, ErrDuplicateDeclaration)
}

// IsSymbolConflictError checks if an error is or wraps ErrSymbolConflict.
func IsSymbolConflictError(err error) bool {
	return err != nil && Is(err, ErrSymbolConflict)
}

// IsUnsupportedTypeError checks if an error is or wraps ErrUnsupportedType.
func IsUnsupportedTypeError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedType)
}

// IsCyclicTypeError checks if an error is or wraps ErrCyclicType.
func IsCyclicTypeError(err error) bool {
	return err != nil && Is(err, ErrCyclicType)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewDuplicateDeclarationError creates a duplicate-declaration error with a formatted message
func NewDuplicateDeclarationError(format string, args ...interface{}) error {
	return Wrap(ErrDuplicateDeclaration, Newf(format, args...).Error())
}
