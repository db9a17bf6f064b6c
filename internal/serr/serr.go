// Package serr implements the closed error taxonomy shared by every layer
// of the scan pipeline: read primitives, the format-string parser, and the
// scan driver all fail through the same Kind set, never through panics or
// sentinel strings.
package serr

import (
	"errors"
	"fmt"
)

// Kind is the closed taxonomy of ways a scan can fail.
type Kind int

const (
	// Good is the zero value and is never attached to a returned error;
	// it exists so a Kind can be compared against "no failure" explicitly.
	Good Kind = iota
	// EndOfRange means input was exhausted before a required read completed.
	EndOfRange
	// InvalidFormatString means a grammar error, argument-index misuse, an
	// unsupported spec for the requested type, or an out-of-range argument id.
	InvalidFormatString
	// InvalidScannedValue means the input didn't match the reader's required
	// shape, or a width/precision constraint was violated.
	InvalidScannedValue
	// ValuePositiveOverflow means a numeric value overflowed the target type
	// on the positive side.
	ValuePositiveOverflow
	// ValueNegativeOverflow means a numeric value overflowed the target type
	// on the negative side.
	ValueNegativeOverflow
	// InvalidSourceState means the source iterator reported a hard I/O failure.
	InvalidSourceState
)

func (k Kind) String() string {
	switch k {
	case Good:
		return "good"
	case EndOfRange:
		return "end_of_range"
	case InvalidFormatString:
		return "invalid_format_string"
	case InvalidScannedValue:
		return "invalid_scanned_value"
	case ValuePositiveOverflow:
		return "value_positive_overflow"
	case ValueNegativeOverflow:
		return "value_negative_overflow"
	case InvalidSourceState:
		return "invalid_source_state"
	default:
		return "unknown_error"
	}
}

// Error makes a bare Kind usable as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is the concrete error type every fallible scan operation returns.
// It carries a Kind plus a human-readable message, and supports errors.Is
// against a bare Kind value so callers can write errors.Is(err, serr.EndOfRange).
type Error struct {
	Kind Kind
	Msg  string
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Msg)
}

// Is lets errors.Is(err, serr.EndOfRange) work by comparing against a bare
// Kind, in addition to the usual *Error-to-*Error comparison.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	if other, ok := target.(*Error); ok {
		return e.Kind == other.Kind
	}
	return false
}

// KindOf extracts the Kind from err if it is (or wraps) a *Error, and
// reports ok=false otherwise.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return Good, false
}
