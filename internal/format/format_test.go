package format

import (
	"errors"
	"testing"

	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/testing/require"
)

func TestNextLiteralEscapes(t *testing.T) {
	ctx := NewContext("{{x}}")
	e, err := Next(ctx)
	require.NoError(t, err)
	require.Equal(t, ElemLiteralMatch, e.Kind)
	require.Equal(t, '{', e.Literal)

	e, err = Next(ctx)
	require.NoError(t, err)
	require.Equal(t, ElemLiteralMatch, e.Kind)
	require.Equal(t, 'x', e.Literal)

	e, err = Next(ctx)
	require.NoError(t, err)
	require.Equal(t, ElemLiteralMatch, e.Kind)
	require.Equal(t, '}', e.Literal)

	require.True(t, ctx.Done())
}

func TestNextWhitespaceLiteral(t *testing.T) {
	ctx := NewContext(" {}")
	e, err := Next(ctx)
	require.NoError(t, err)
	require.Equal(t, ElemLiteralWhitespace, e.Kind)

	e, err = Next(ctx)
	require.NoError(t, err)
	require.Equal(t, ElemPlaceholder, e.Kind)
	require.Equal(t, 0, e.ArgID)
}

func TestAutomaticIndexing(t *testing.T) {
	ctx := NewContext("{} {}")
	e, _ := Next(ctx)
	require.Equal(t, 0, e.ArgID)
	Next(ctx) // whitespace
	e, _ = Next(ctx)
	require.Equal(t, 1, e.ArgID)
}

func TestMixedIndexingIsError(t *testing.T) {
	ctx := NewContext("{0}{}")
	_, err := Next(ctx)
	require.NoError(t, err)
	_, err = Next(ctx)
	require.True(t, errors.Is(err, serr.InvalidFormatString))
}

func TestMixedIndexingOtherDirection(t *testing.T) {
	ctx := NewContext("{}{0}")
	_, err := Next(ctx)
	require.NoError(t, err)
	_, err = Next(ctx)
	require.True(t, errors.Is(err, serr.InvalidFormatString))
}

func TestReuseOfExplicitIDIsLegal(t *testing.T) {
	// O-1: reusing the same explicit id twice is legal; it's switching
	// between manual and automatic that's rejected, not repetition.
	ctx := NewContext("{0}{0}")
	e1, err := Next(ctx)
	require.NoError(t, err)
	e2, err := Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, e1.ArgID)
	require.Equal(t, 0, e2.ArgID)
}

func TestUnterminatedPlaceholder(t *testing.T) {
	ctx := NewContext("{:>4")
	_, err := Next(ctx)
	require.True(t, errors.Is(err, serr.InvalidFormatString))
}

func TestUnmatchedCloseBrace(t *testing.T) {
	ctx := NewContext("}")
	_, err := Next(ctx)
	require.True(t, errors.Is(err, serr.InvalidFormatString))
}

func TestParseSpecsFillAlignWidthPrecisionType(t *testing.T) {
	s, err := ParseSpecs("*>10.4Lf")
	require.NoError(t, err)
	require.Equal(t, '*', s.Fill)
	require.Equal(t, AlignRight, s.Align)
	require.Equal(t, 10, s.Width)
	require.Equal(t, 4, s.Precision)
	require.True(t, s.Localized)
	require.Equal(t, byte('f'), s.Type)
}

func TestParseSpecsDefaults(t *testing.T) {
	s, err := ParseSpecs("")
	require.NoError(t, err)
	require.Equal(t, ' ', s.Fill)
	require.Equal(t, AlignNone, s.Align)
	require.Equal(t, 0, s.Width)
	require.Equal(t, -1, s.Precision)
}

func TestStaticContextRejectsOutOfRange(t *testing.T) {
	ctx := NewStaticContext("{} {} {}", []ArgKind{1, 1})
	_, err := Next(ctx) // {} -> id 0, ok
	require.NoError(t, err)
	_, err = Next(ctx) // whitespace literal
	require.NoError(t, err)
	_, err = Next(ctx) // {} -> id 1, ok
	require.NoError(t, err)
	_, err = Next(ctx) // whitespace literal
	require.NoError(t, err)
	_, err = Next(ctx) // {} -> id 2, out of range
	require.True(t, errors.Is(err, serr.InvalidFormatString))
}
