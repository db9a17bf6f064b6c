package driver

import (
	"errors"
	"testing"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/testing/require"
)

func TestRunLiteralsAndPlaceholders(t *testing.T) {
	var a int
	var b string
	res := Run("42, hello", "{}, {}", args.NewTable(&a, &b), args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, 42, a)
	require.Equal(t, "hello", b)
	require.Equal(t, "", res.Remaining)
}

func TestRunWhitespaceLiteralMatchesAnyRun(t *testing.T) {
	var a, b int
	res := Run("1    2", "{}  {}", args.NewTable(&a, &b), args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, 1, a)
	require.Equal(t, 2, b)
}

func TestRunLeavesRemainingUnconsumed(t *testing.T) {
	var a int
	res := Run("7 tail", "{}", args.NewTable(&a), args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, 7, a)
	require.Equal(t, " tail", res.Remaining)
}

func TestRunMismatchedLiteralErrors(t *testing.T) {
	var a int
	res := Run("xyz", "abc{}", args.NewTable(&a), args.DefaultLocale, nil)
	require.Error(t, res.Err)
}

func TestRunArgIndexOutOfRangeErrors(t *testing.T) {
	var a int
	res := Run("1", "{} {}", args.NewTable(&a), args.DefaultLocale, nil)
	require.Error(t, res.Err)
	require.True(t, errors.Is(res.Err, serr.InvalidFormatString))
}

func TestRunPrecisionBoundsTheValue(t *testing.T) {
	var a, b int
	res := Run("1234", "{:.2}{:.2}", args.NewTable(&a, &b), args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, 12, a)
	require.Equal(t, 34, b)
}

func TestRunWidthIsASoftMinimumNotACap(t *testing.T) {
	var a int
	res := Run("12345", "{:2}", args.NewTable(&a), args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, 12345, a)
	require.Equal(t, "", res.Remaining)
}

func TestRunWidthTooNarrowErrors(t *testing.T) {
	var s string
	res := Run("ab", "{:6}", args.NewTable(&s), args.DefaultLocale, nil)
	require.Error(t, res.Err)
	require.True(t, errors.Is(res.Err, serr.InvalidScannedValue))
}

func TestRunPrecisionTooWideNeverOccurs(t *testing.T) {
	var a int
	res := Run("12345", "{:.3}", args.NewTable(&a), args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, 123, a)
	require.Equal(t, "45", res.Remaining)
}

type fixedScanner struct{ got string }

func (f *fixedScanner) ScanFrom(r source.Range, specs *format.Specs) (source.Range, error) {
	it, text := readWord(r)
	f.got = text
	return it, nil
}

func readWord(r source.Range) (source.Range, string) {
	c := r.(source.Contiguous)
	s := c.String()
	i := 0
	for i < len(s) && s[i] != ' ' {
		i++
	}
	return source.NewContiguous(s[i:]), s[:i]
}

func TestRunDispatchesScannable(t *testing.T) {
	fs := &fixedScanner{}
	res := Run("widget rest", "{}", args.Table{{Kind: args.KindCustom, Dest: fs}}, args.DefaultLocale, nil)
	require.NoError(t, res.Err)
	require.Equal(t, "widget", fs.got)
	require.Equal(t, " rest", res.Remaining)
}
