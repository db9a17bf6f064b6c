package readers

import (
	"strconv"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/read"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

// pointerReader scans a base-16 address literal, with or without a leading
// "0x"/"0X" marker, into an args.Addr.
type pointerReader struct{}

func (pointerReader) SkipWSBeforeRead() bool { return true }

func (pointerReader) CheckSpecs(specs *format.Specs) error {
	switch specs.Type {
	case 0, 'p':
		return nil
	default:
		return serr.Newf(serr.InvalidFormatString, "unsupported pointer type %q", specs.Type)
	}
}

func (pointerReader) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return readPointer(r, out)
}

func (pointerReader) ReadSpecs(r source.Range, _ *format.Specs, out any, _ args.Locale) (source.Range, error) {
	return readPointer(r, out)
}

func readPointer(r source.Range, out any) (source.Range, error) {
	it := r
	if m, err := read.MatchingStringClassicNocase(it, "0x"); err == nil {
		it = m
	}

	next, digits := read.WhileCodeUnit(it, isHexDigit)
	if digits == "" {
		return r, serr.New(serr.InvalidScannedValue, "read_pointer: no hex digits found")
	}

	v, perr := strconv.ParseUint(digits, 16, 64)
	if perr != nil {
		return r, serr.Newf(serr.InvalidScannedValue, "pointer literal %q could not be parsed: %v", digits, perr)
	}
	*out.(*args.Addr) = args.Addr(v)
	return next, nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
