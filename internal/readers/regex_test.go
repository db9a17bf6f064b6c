package readers

import (
	"testing"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/testing/require"
)

func TestRegexReaderMatchesWithSubmatches(t *testing.T) {
	var v args.Matches
	rd := regexReader{}
	specs := format.Specs{Type: 'r', TypeOptions: `/([a-z]+)-(\d+)/`}
	rest, err := rd.ReadSpecs(source.NewContiguous("ab-12 tail"), &specs, &v, args.DefaultLocale)
	require.NoError(t, err)
	require.Equal(t, args.Matches{"ab-12", "ab", "12"}, v)
	require.Equal(t, " tail", rest.(source.Contiguous).String())
}

func TestRegexReaderNoMatchIsError(t *testing.T) {
	var v args.Matches
	rd := regexReader{}
	specs := format.Specs{Type: 'r', TypeOptions: `/\d+/`}
	_, err := rd.ReadSpecs(source.NewContiguous("abc"), &specs, &v, args.DefaultLocale)
	require.Error(t, err)
}

func TestRegexReaderCheckSpecsValidatesPattern(t *testing.T) {
	rd := regexReader{}
	specs := format.Specs{Type: 'r', TypeOptions: `/[/`}
	require.Error(t, rd.CheckSpecs(&specs))
}
