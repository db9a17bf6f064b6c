package readers

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/read"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

// boolReader implements args.Reader's stopping rule for bool: one of
// {"true","false","0","1"}.
type boolReader struct{}

func (boolReader) SkipWSBeforeRead() bool { return true }

func (boolReader) CheckSpecs(specs *format.Specs) error {
	switch specs.Type {
	case 0, 's', 'b':
		return nil
	default:
		return serr.Newf(serr.InvalidFormatString, "unsupported bool type %q", specs.Type)
	}
}

func (boolReader) ReadDefault(r source.Range, out any, loc args.Locale) (source.Range, error) {
	return readBool(r, out)
}

func (boolReader) ReadSpecs(r source.Range, specs *format.Specs, out any, loc args.Locale) (source.Range, error) {
	return readBool(r, out)
}

func readBool(r source.Range, out any) (source.Range, error) {
	if it, err := read.MatchingStringClassicNocase(r, "true"); err == nil {
		*out.(*bool) = true
		return it, nil
	}
	if it, err := read.MatchingStringClassicNocase(r, "false"); err == nil {
		*out.(*bool) = false
		return it, nil
	}
	if b, ok := r.PeekByte(); ok && (b == '0' || b == '1') {
		*out.(*bool) = b == '1'
		return r.Advance(1), nil
	}
	return r, serr.New(serr.InvalidScannedValue, `expected one of "true", "false", "0", "1"`)
}
