package coreparse

import (
	"fmt"

	"github.com/coregx/coreparse/span"
)

// ErrorKind classifies matcher failures. The set is closed.
type ErrorKind uint8

const (
	// Expected means the input at Pos did not have the wanted shape.
	Expected ErrorKind = iota

	// NotEnoughRemainingInput means a character was required at Pos but the
	// input was exhausted.
	NotEnoughRemainingInput
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case Expected:
		return "Expected"
	case NotEnoughRemainingInput:
		return "NotEnoughRemainingInput"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is the failure every matcher in this package reports.
//
// Errors are values: combinators build new errors from sub-failures and never
// modify one in place.
type Error struct {
	Kind ErrorKind
	Pos  span.Position
	// Description says what was wanted. Empty for NotEnoughRemainingInput.
	Description string
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrExpected                = &Error{Kind: Expected}
	ErrNotEnoughRemainingInput = &Error{Kind: NotEnoughRemainingInput}
)

// ExpectedAt returns an Expected error at pos.
func ExpectedAt(pos span.Position, format string, args ...any) *Error {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: Expected, Pos: pos, Description: format}
}

// NotEnoughInputAt returns a NotEnoughRemainingInput error at pos.
func NotEnoughInputAt(pos span.Position) *Error {
	return &Error{Kind: NotEnoughRemainingInput, Pos: pos}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Kind == NotEnoughRemainingInput {
		return e.Pos.String() + ": not enough remaining input"
	}
	return e.Pos.String() + ": expected " + e.Description
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Message returns the error text without the position prefix.
func (e *Error) Message() string {
	if e.Kind == NotEnoughRemainingInput {
		return "not enough remaining input"
	}
	return "expected " + e.Description
}

// MapError is a failure reported by a Map transform.
type MapError struct {
	Message string
}

// Error implements the error interface
func (e *MapError) Error() string {
	return e.Message
}

// MapErrorf formats a MapError.
func MapErrorf(format string, args ...any) error {
	return &MapError{Message: fmt.Sprintf(format, args...)}
}
