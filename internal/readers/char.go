package readers

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/read"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/uniprim"
)

// byteReader reads a single code unit ("char" in the original's narrow
// sense): no whitespace skipping, no width/precision semantics.
type byteReader struct{}

func (byteReader) SkipWSBeforeRead() bool { return false }

func (byteReader) CheckSpecs(specs *format.Specs) error {
	switch specs.Type {
	case 0, 'c':
		return nil
	default:
		return serr.Newf(serr.InvalidFormatString, "unsupported char type %q", specs.Type)
	}
}

func (byteReader) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return byteRead(r, out)
}

func (byteReader) ReadSpecs(r source.Range, _ *format.Specs, out any, _ args.Locale) (source.Range, error) {
	return byteRead(r, out)
}

func byteRead(r source.Range, out any) (source.Range, error) {
	it, err := read.CodeUnit(r)
	if err != nil {
		return r, err
	}
	b, _ := r.PeekByte()
	*out.(*byte) = b
	return it, nil
}

// runeReader reads a single code point ("char32_t" in the original's wide
// sense): also no whitespace skipping.
type runeReader struct{}

func (runeReader) SkipWSBeforeRead() bool { return false }

func (runeReader) CheckSpecs(specs *format.Specs) error {
	switch specs.Type {
	case 0, 'c':
		return nil
	default:
		return serr.Newf(serr.InvalidFormatString, "unsupported char type %q", specs.Type)
	}
}

func (runeReader) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return runeRead(r, out)
}

func (runeReader) ReadSpecs(r source.Range, _ *format.Specs, out any, _ args.Locale) (source.Range, error) {
	return runeRead(r, out)
}

func runeRead(r source.Range, out any) (source.Range, error) {
	it, view, err := read.CodePointInto(r)
	if err != nil {
		return r, err
	}
	*out.(*rune) = uniprim.DecodeExhaustive(view)
	return it, nil
}
