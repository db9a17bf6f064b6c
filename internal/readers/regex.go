package readers

import (
	"regexp"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

// regexReader scans a match of a regular expression given in the
// placeholder's type-options (e.g. "{:r/[a-z]+/}") that starts at the
// current position, using regexp's leftmost-first (not longest) semantics,
// filling out with the whole match and its submatches.
type regexReader struct{}

func (regexReader) SkipWSBeforeRead() bool { return false }

func (regexReader) CheckSpecs(specs *format.Specs) error {
	if specs.Type != 'r' && specs.Type != 0 {
		return serr.Newf(serr.InvalidFormatString, "unsupported regex type %q", specs.Type)
	}
	if _, err := compilePattern(specs.TypeOptions); err != nil {
		return serr.Newf(serr.InvalidFormatString, "invalid regex options %q: %v", specs.TypeOptions, err)
	}
	return nil
}

func (regexReader) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return r, serr.New(serr.InvalidFormatString, "regex scanning requires a {:r/pattern/} spec")
}

func (regexReader) ReadSpecs(r source.Range, specs *format.Specs, out any, _ args.Locale) (source.Range, error) {
	re, err := compilePattern(specs.TypeOptions)
	if err != nil {
		return r, serr.Newf(serr.InvalidFormatString, "invalid regex options %q: %v", specs.TypeOptions, err)
	}

	prefix, _ := r.ContiguousBeginning()
	loc := re.FindStringSubmatchIndex(prefix)
	if loc == nil || loc[0] != 0 {
		return r, serr.New(serr.InvalidScannedValue, "read_regex: no match at current position")
	}

	matches := make(args.Matches, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			matches = append(matches, "")
			continue
		}
		matches = append(matches, prefix[loc[i]:loc[i+1]])
	}
	*out.(*args.Matches) = matches
	return r.Advance(loc[1]), nil
}

// compilePattern strips one pair of "/" delimiters around the pattern body
// if present, so "{:r/[a-z]+/}" and "{:r[a-z]+}" both work.
func compilePattern(options string) (*regexp.Regexp, error) {
	pattern := options
	if len(pattern) >= 2 && pattern[0] == '/' && pattern[len(pattern)-1] == '/' {
		pattern = pattern[1 : len(pattern)-1]
	}
	return regexp.Compile(pattern)
}
