package source

import (
	"strings"
	"testing"

	"github.com/scngo/scn/internal/testing/require"
)

func TestContiguousBasics(t *testing.T) {
	c := NewContiguous("hello")
	require.False(t, c.Empty())
	require.True(t, c.IsContiguous())

	b, ok := c.PeekByte()
	require.True(t, ok)
	require.Equal(t, byte('h'), b)

	rest := c.Advance(1).(Contiguous)
	require.Equal(t, "ello", rest.String())
	require.Equal(t, 1, Distance(c, rest))

	empty := NewContiguous("")
	require.True(t, empty.Empty())
	_, ok = empty.PeekByte()
	require.False(t, ok)
}

func TestContiguousBeginningIsWholeRange(t *testing.T) {
	c := NewContiguous("abc")
	prefix, whole := c.ContiguousBeginning()
	require.Equal(t, "abc", prefix)
	require.True(t, whole)
}

func TestForwardAdvanceAndPeek(t *testing.T) {
	f := NewForward(strings.NewReader("xyz"))
	require.False(t, f.IsContiguous())
	require.False(t, f.Empty())

	b, ok := f.PeekByte()
	require.True(t, ok)
	require.Equal(t, byte('x'), b)

	f.Advance(1)
	b, ok = f.PeekByte()
	require.True(t, ok)
	require.Equal(t, byte('y'), b)

	f.Advance(2)
	require.True(t, f.Empty())
	require.NoError(t, f.Err())
}

func TestForwardContiguousBeginningIsPartial(t *testing.T) {
	f := NewForward(strings.NewReader("abcdef"))
	prefix, whole := f.ContiguousBeginning()
	require.False(t, whole)
	require.True(t, strings.HasPrefix("abcdef", prefix) || prefix == "")
}
