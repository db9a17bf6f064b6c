package readers

import (
	"strconv"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/read"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

type floatKind interface{ ~float32 | ~float64 }

// scanFloatLiteralLocale consumes the longest valid floating-point prefix: an
// optional sign, an integer part, an optional fractional part, and an
// optional exponent — the shape strconv.ParseFloat accepts — generalized over
// decimal point and digit grouping runes: decimalPoint marks the
// integer/fraction boundary (mapped to '.' in the returned text so
// strconv.ParseFloat can consume it directly) and, when nonzero, grouping is
// skipped wherever it appears inside the integer or fractional digit runs.
func scanFloatLiteralLocale(r source.Range, decimalPoint, grouping byte) (rest source.Range, text string, err error) {
	it := r
	var buf []byte

	if b, ok := it.PeekByte(); ok && (b == '+' || b == '-') {
		buf = append(buf, b)
		it = it.Advance(1)
	}

	digitRun := func() {
		for {
			b, ok := it.PeekByte()
			if !ok {
				return
			}
			if b >= '0' && b <= '9' {
				buf = append(buf, b)
				it = it.Advance(1)
				continue
			}
			if grouping != 0 && b == grouping {
				it = it.Advance(1)
				continue
			}
			return
		}
	}

	sawDigits := len(buf)
	digitRun()
	sawDigits = len(buf) - sawDigits

	if b, ok := it.PeekByte(); ok && b == decimalPoint {
		buf = append(buf, '.')
		it = it.Advance(1)
		before := len(buf)
		digitRun()
		sawDigits += len(buf) - before
	}

	if sawDigits == 0 {
		return r, "", serr.New(serr.InvalidScannedValue, "no digits found for float")
	}

	if b, ok := it.PeekByte(); ok && (b == 'e' || b == 'E') {
		save := it
		expBuf := []byte{b}
		next := it.Advance(1)
		if sb, ok := next.PeekByte(); ok && (sb == '+' || sb == '-') {
			expBuf = append(expBuf, sb)
			next = next.Advance(1)
		}
		digitsIt, digits := read.WhileCodeUnit(next, func(b byte) bool { return b >= '0' && b <= '9' })
		if digits != "" {
			buf = append(buf, expBuf...)
			buf = append(buf, digits...)
			it = digitsIt
		} else {
			it = save
		}
	}

	return it, string(buf), nil
}

type floatReader[T floatKind] struct{ bits int }

func (floatReader[T]) SkipWSBeforeRead() bool { return true }

func (floatReader[T]) CheckSpecs(specs *format.Specs) error {
	switch specs.Type {
	case 0, 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		return nil
	default:
		return serr.Newf(serr.InvalidFormatString, "unsupported float type %q", specs.Type)
	}
}

func (rd floatReader[T]) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return rd.read(r, out, '.', 0)
}

func (rd floatReader[T]) ReadSpecs(r source.Range, specs *format.Specs, out any, loc args.Locale) (source.Range, error) {
	if err := rd.CheckSpecs(specs); err != nil {
		return r, err
	}
	decimalPoint := byte('.')
	var grouping byte
	if specs.Localized {
		decimalPoint = byte(loc.DecimalPoint)
		if loc.Grouping != 0 {
			grouping = byte(loc.Grouping)
		}
	}
	return rd.read(r, out, decimalPoint, grouping)
}

func (rd floatReader[T]) read(r source.Range, out any, decimalPoint, grouping byte) (source.Range, error) {
	it, text, err := scanFloatLiteralLocale(r, decimalPoint, grouping)
	if err != nil {
		return r, err
	}
	v, perr := strconv.ParseFloat(text, rd.bits)
	if perr != nil {
		return r, serr.Newf(serr.InvalidScannedValue, "float %q could not be parsed: %v", text, perr)
	}
	*out.(*T) = T(v)
	return it, nil
}
