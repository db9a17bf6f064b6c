package format

import (
	"strconv"
	"unicode/utf8"

	"github.com/scngo/scn/internal/serr"
)

// Alignment is the parsed fill-and-align portion of a placeholder's spec.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Specs is the parsed body of one placeholder: fill, alignment, width,
// precision, the type letter, and any trailing type-specific options.
type Specs struct {
	Fill        rune
	Align       Alignment
	Width       int
	Precision   int
	Type        byte
	Localized   bool
	TypeOptions string
}

// DefaultSpecs returns the zero-value spec set: no alignment, unbounded
// width/precision, default type, space fill. Precision is -1 when absent,
// distinguishing it from an explicit ".0".
func DefaultSpecs() Specs {
	return Specs{Fill: ' ', Align: AlignNone, Precision: -1}
}

// ParseSpecs parses the text between a placeholder's ':' and its closing
// '}' (body must not include either delimiter) into a Specs value.
//
// Grammar: [fill-and-align] [width] ['.' precision] [L] [type] [type-options]
// fill-and-align is any single code point followed by one of '<', '>', '^'.
func ParseSpecs(body string) (Specs, error) {
	s := DefaultSpecs()
	rest := body

	if r, align, n, ok := parseFillAlign(rest); ok {
		s.Fill = r
		s.Align = align
		rest = rest[n:]
	}

	if n, width, ok := parseDecimal(rest); ok {
		s.Width = width
		rest = rest[n:]
	}

	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		n, prec, ok := parseDecimal(rest)
		if !ok {
			return s, serr.New(serr.InvalidFormatString, "expected precision after '.'")
		}
		s.Precision = prec
		rest = rest[n:]
	}

	if len(rest) > 0 && rest[0] == 'L' {
		s.Localized = true
		rest = rest[1:]
	}

	if len(rest) > 0 {
		s.Type = rest[0]
		rest = rest[1:]
	}

	s.TypeOptions = rest
	return s, nil
}

// parseFillAlign recognizes "<fill><align>" at the start of s, where fill
// is exactly one code point and align is one of '<', '>', '^'. It reports
// ok=false if s doesn't start with that shape (e.g. "5" or "}").
func parseFillAlign(s string) (fill rune, align Alignment, n int, ok bool) {
	if s == "" {
		return 0, AlignNone, 0, false
	}

	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 0, AlignNone, 0, false
	}
	if len(s) <= size {
		return 0, AlignNone, 0, false
	}

	switch s[size] {
	case '<':
		return r, AlignLeft, size + 1, true
	case '>':
		return r, AlignRight, size + 1, true
	case '^':
		return r, AlignCenter, size + 1, true
	default:
		return 0, AlignNone, 0, false
	}
}

// parseDecimal parses the longest leading run of ASCII digits in s as a
// nonnegative integer.
func parseDecimal(s string) (n int, value int, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, 0, false
	}
	v, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, false
	}
	return i, v, true
}
