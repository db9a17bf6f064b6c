package readers

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/read"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

// stringReader implements the unformatted string stopping rule: consume
// code points up to (but not including) the first classic-whitespace code
// point, or up to a precision-bounded display width if one was given.
type stringReader struct{}

func (stringReader) SkipWSBeforeRead() bool { return true }

func (stringReader) CheckSpecs(specs *format.Specs) error {
	switch specs.Type {
	case 0, 's':
		return nil
	default:
		return serr.Newf(serr.InvalidFormatString, "unsupported string type %q", specs.Type)
	}
}

func (stringReader) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return readString(r, -1, out)
}

func (stringReader) ReadSpecs(r source.Range, specs *format.Specs, out any, _ args.Locale) (source.Range, error) {
	return readString(r, specs.Precision, out)
}

func readString(r source.Range, precision int, out any) (source.Range, error) {
	if precision < 0 {
		stop, text := read.UntilClassicSpace(r)
		if text == "" {
			return r, serr.New(serr.InvalidScannedValue, "read_string: no characters scanned")
		}
		*out.(*string) = text
		return stop, nil
	}

	// Precision caps the scan at a display-width-bounded sub-range; the
	// matched length within it is then replayed against the original range
	// so the right range representation (contiguous or forward) advances.
	scope := read.TakeWidth(r, precision)
	_, text := read.UntilClassicSpace(scope)
	if text == "" {
		return r, serr.New(serr.InvalidScannedValue, "read_string: no characters scanned")
	}
	*out.(*string) = text
	return r.Advance(len(text)), nil
}
