// Package args implements the Argument Table: a type-erased, ordered view
// over the caller's output destinations, tagged by a closed Kind variant
// and dispatched to a typed Reader, rather than a type switch repeated at
// every call site.
package args

import (
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/source"
)

// Kind is the closed set of destination types the argument table can hold.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindByte   // a single code unit ("char")
	KindRune   // a single code point ("char32_t")
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindPointer
	KindRegex
	KindCustom
)

var kindNames = [...]string{
	"none", "bool", "byte", "rune", "int", "int8", "int16", "int32", "int64",
	"uint", "uint8", "uint16", "uint32", "uint64", "float32", "float64",
	"string", "pointer", "regex", "custom",
}

// String names k for diagnostics and log output.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Arg is one entry in the argument table: a destination pointer tagged by
// Kind. Custom entries store their destination as the user's own value,
// which the driver recognizes via the Scannable interface.
type Arg struct {
	Kind Kind
	Dest any
}

// Table is the ordered sequence of destinations passed to a scan call.
type Table []Arg

// KindOf returns the Kind for a destination pointer (or KindCustom if T
// doesn't match one of the built-in leaf types), the Go analogue of the
// template dispatch in make_reader<T, CharT>(). Because byte and rune are
// aliases of uint8 and int32, *uint8 maps to KindByte and *int32 to
// KindRune; KindUint8 and KindInt32 are never returned here.
func KindOf(dest any) Kind {
	switch dest.(type) {
	case *bool:
		return KindBool
	case *byte:
		return KindByte
	case *rune:
		return KindRune
	case *int:
		return KindInt
	case *int8:
		return KindInt8
	case *int16:
		return KindInt16
	case *int64:
		return KindInt64
	case *uint:
		return KindUint
	case *uint16:
		return KindUint16
	case *uint32:
		return KindUint32
	case *uint64:
		return KindUint64
	case *float32:
		return KindFloat32
	case *float64:
		return KindFloat64
	case *string:
		return KindString
	case *Addr:
		return KindPointer
	case *Matches:
		return KindRegex
	default:
		return KindCustom
	}
}

// NewTable builds a Table from the caller's destination pointers, tagging
// each with its Kind.
func NewTable(dests ...any) Table {
	t := make(Table, len(dests))
	for i, d := range dests {
		t[i] = Arg{Kind: KindOf(d), Dest: d}
	}
	return t
}

// Locale carries the narrow slice of locale information the reader
// contract needs when a placeholder's spec requests localized parsing:
// the decimal separator and digit grouping rune. It is not a full locale
// facet bridge; that remains an external collaborator.
type Locale struct {
	DecimalPoint rune
	Grouping     rune
}

// DefaultLocale is the "C"/"POSIX"-equivalent locale: '.' decimal point,
// no grouping.
var DefaultLocale = Locale{DecimalPoint: '.', Grouping: 0}

// Addr is a scannable pointer value: a base-16 address literal (with or
// without a "0x" marker) parsed into an opaque uintptr-sized value. It lives
// here, rather than in the root package, so the pointer reader can stay in
// internal/readers without importing back up through the driver.
type Addr uintptr

// Matches holds the capture groups produced by scanning against a regular
// expression placeholder: Matches[0] is the whole match, Matches[1:] are the
// submatches, following regexp.Regexp.FindStringSubmatch's convention.
type Matches []string

// Reader is the contract every typed reader implements: these four
// operations, selected purely by the Kind tag recorded on an Arg.
type Reader interface {
	// SkipWSBeforeRead reports whether, absent an explicit alignment spec,
	// classic whitespace should be skipped before this type reads.
	SkipWSBeforeRead() bool

	// CheckSpecs validates the subset of format specs this reader
	// supports, returning an InvalidFormatString error for anything else.
	CheckSpecs(specs *format.Specs) error

	// ReadDefault reads a value with no non-default specs applied.
	ReadDefault(r source.Range, out any, loc Locale) (source.Range, error)

	// ReadSpecs reads a value honouring specs (type, base, locale flag,
	// etc).
	ReadSpecs(r source.Range, specs *format.Specs, out any, loc Locale) (source.Range, error)
}
