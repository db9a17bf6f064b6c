package readers

import (
	"errors"
	"strconv"

	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

// signedInt and unsignedInt are the Go realization of "is_integral_v<T>"
// from the original reader dispatch (reader.h's make_reader), split by
// signedness so overflow direction can be reported precisely.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func baseForType(t byte) (int, error) {
	switch t {
	case 0, 'd':
		return 10, nil
	case 'x', 'X':
		return 16, nil
	case 'o':
		return 8, nil
	case 'b', 'B':
		return 2, nil
	default:
		return 0, serr.Newf(serr.InvalidFormatString, "unsupported integer type %q", t)
	}
}

func isDigitForBase(b byte, base int) bool {
	switch base {
	case 2:
		return b == '0' || b == '1'
	case 8:
		return b >= '0' && b <= '7'
	case 10:
		return b >= '0' && b <= '9'
	case 16:
		return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	default:
		return false
	}
}

// scanIntegerLiteral consumes the longest valid numeric prefix for base,
// including an optional leading sign and an optional "0x"/"0o"/"0b" marker
// matching the requested base.
func scanIntegerLiteral(r source.Range, base int) (rest source.Range, text string, err error) {
	return scanIntegerLiteralLocale(r, base, 0)
}

// scanIntegerLiteralLocale is scanIntegerLiteral generalized with a digit
// grouping separator: when grouping is nonzero, occurrences of it inside the
// digit run are skipped rather than ending the run, the same way "1,234"
// reads as a plain 1234 under a comma-grouped locale.
func scanIntegerLiteralLocale(r source.Range, base int, grouping byte) (rest source.Range, text string, err error) {
	it := r
	var sign string
	if b, ok := it.PeekByte(); ok && (b == '+' || b == '-') {
		sign = string(b)
		it = it.Advance(1)
	}

	if base == 16 {
		if s, ok := it.(source.Contiguous); ok {
			str := s.String()
			if len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X') {
				it = it.Advance(2)
			}
		}
	} else if base == 8 {
		if s, ok := it.(source.Contiguous); ok {
			str := s.String()
			if len(str) >= 2 && str[0] == '0' && (str[1] == 'o' || str[1] == 'O') {
				it = it.Advance(2)
			}
		}
	} else if base == 2 {
		if s, ok := it.(source.Contiguous); ok {
			str := s.String()
			if len(str) >= 2 && str[0] == '0' && (str[1] == 'b' || str[1] == 'B') {
				it = it.Advance(2)
			}
		}
	}

	var buf []byte
	for {
		b, ok := it.PeekByte()
		if !ok {
			break
		}
		if isDigitForBase(b, base) {
			buf = append(buf, b)
			it = it.Advance(1)
			continue
		}
		if grouping != 0 && b == grouping {
			it = it.Advance(1)
			continue
		}
		break
	}
	if len(buf) == 0 {
		return r, "", serr.New(serr.InvalidScannedValue, "no digits found for integer")
	}
	return it, sign + string(buf), nil
}

func overflowKind(err error, negative bool) serr.Kind {
	if errors.Is(err, strconv.ErrRange) {
		if negative {
			return serr.ValueNegativeOverflow
		}
		return serr.ValuePositiveOverflow
	}
	return serr.InvalidScannedValue
}

// intReader implements args.Reader for any signed integer type T.
type intReader[T signedInt] struct{ bits int }

func (intReader[T]) SkipWSBeforeRead() bool { return true }

func (intReader[T]) CheckSpecs(specs *format.Specs) error {
	_, err := baseForType(specs.Type)
	return err
}

func (rd intReader[T]) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return rd.read(r, 10, 0, out)
}

func (rd intReader[T]) ReadSpecs(r source.Range, specs *format.Specs, out any, loc args.Locale) (source.Range, error) {
	base, err := baseForType(specs.Type)
	if err != nil {
		return r, err
	}
	var grouping byte
	if specs.Localized && loc.Grouping != 0 {
		grouping = byte(loc.Grouping)
	}
	return rd.read(r, base, grouping, out)
}

func (rd intReader[T]) read(r source.Range, base int, grouping byte, out any) (source.Range, error) {
	it, text, err := scanIntegerLiteralLocale(r, base, grouping)
	if err != nil {
		return r, err
	}
	v, perr := strconv.ParseInt(text, base, rd.bits)
	if perr != nil {
		return r, serr.Newf(overflowKind(perr, len(text) > 0 && text[0] == '-'), "integer %q out of range", text)
	}
	*out.(*T) = T(v)
	return it, nil
}

// uintReader implements args.Reader for any unsigned integer type T.
type uintReader[T unsignedInt] struct{ bits int }

func (uintReader[T]) SkipWSBeforeRead() bool { return true }

func (uintReader[T]) CheckSpecs(specs *format.Specs) error {
	_, err := baseForType(specs.Type)
	return err
}

func (rd uintReader[T]) ReadDefault(r source.Range, out any, _ args.Locale) (source.Range, error) {
	return rd.read(r, 10, 0, out)
}

func (rd uintReader[T]) ReadSpecs(r source.Range, specs *format.Specs, out any, loc args.Locale) (source.Range, error) {
	base, err := baseForType(specs.Type)
	if err != nil {
		return r, err
	}
	var grouping byte
	if specs.Localized && loc.Grouping != 0 {
		grouping = byte(loc.Grouping)
	}
	return rd.read(r, base, grouping, out)
}

func (rd uintReader[T]) read(r source.Range, base int, grouping byte, out any) (source.Range, error) {
	it, text, err := scanIntegerLiteralLocale(r, base, grouping)
	if err != nil {
		return r, err
	}
	if len(text) > 0 && text[0] == '-' {
		return r, serr.New(serr.ValueNegativeOverflow, "unsigned integer cannot be negative")
	}
	v, perr := strconv.ParseUint(text, base, rd.bits)
	if perr != nil {
		return r, serr.Newf(overflowKind(perr, false), "integer %q out of range", text)
	}
	*out.(*T) = T(v)
	return it, nil
}
