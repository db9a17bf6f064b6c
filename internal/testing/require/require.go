// Package require is a thin wrapper over testify's require package,
// narrowed to the handful of assertions this module's tests actually use.
package require

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Equal fails t if expected and actual are not deeply equal.
func Equal(t testing.TB, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, expected, actual, msgAndArgs...)
}

// EqualValues fails t if expected and actual are not equal after being
// converted to the same type.
func EqualValues(t testing.TB, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.EqualValues(t, expected, actual, msgAndArgs...)
}

// NoError fails t if err is non-nil.
func NoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// Error fails t if err is nil.
func Error(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
}

// ErrorIs fails t unless errors.Is(err, target) holds.
func ErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	require.ErrorIs(t, err, target, msgAndArgs...)
}

// True fails t if value is false.
func True(t testing.TB, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, value, msgAndArgs...)
}

// False fails t if value is true.
func False(t testing.TB, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	require.False(t, value, msgAndArgs...)
}

// InDelta fails t unless actual is within delta of expected.
func InDelta(t testing.TB, expected, actual interface{}, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, expected, actual, delta, msgAndArgs...)
}

// Len fails t unless object has the given length.
func Len(t testing.TB, object interface{}, length int, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, object, length, msgAndArgs...)
}
