package readers

import (
	"testing"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/testing/require"
)

func TestStringReaderStopsAtWhitespace(t *testing.T) {
	var v string
	rd := stringReader{}
	rest, err := rd.ReadDefault(source.NewContiguous("hello world"), &v, args.DefaultLocale)
	require.NoError(t, err)
	require.Equal(t, "hello", v)
	require.Equal(t, " world", rest.(source.Contiguous).String())
}

func TestStringReaderEmptyIsError(t *testing.T) {
	var v string
	rd := stringReader{}
	_, err := rd.ReadDefault(source.NewContiguous(" x"), &v, args.DefaultLocale)
	require.Error(t, err)
}

func TestStringReaderPrecisionCaps(t *testing.T) {
	var v string
	rd := stringReader{}
	specs := format.DefaultSpecs()
	specs.Precision = 3
	rest, err := rd.ReadSpecs(source.NewContiguous("hello"), &specs, &v, args.DefaultLocale)
	require.NoError(t, err)
	require.Equal(t, "hel", v)
	require.Equal(t, "lo", rest.(source.Contiguous).String())
}
