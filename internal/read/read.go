// Package read implements the primitive input operations the scan driver
// composes: single code-unit and code-point reads, predicate-driven
// while/until scans, literal matching, and classic-whitespace skipping.
// Every primitive takes a source.Range and returns the Range for whatever
// remains — callers adopt the returned Range rather than mutating the one
// they passed in.
package read

import (
	"strings"

	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/uniprim"
)

// CodeUnit reads and returns a single byte, requiring the range to be
// non-empty.
func CodeUnit(r source.Range) (source.Range, error) {
	if r.Empty() {
		return r, serr.New(serr.EndOfRange, "read_code_unit: empty range")
	}
	return r.Advance(1), nil
}

// CodePointInto reads exactly one code point: if the lead byte cannot start
// a code point, it consumes the whole run of such bytes as one opaque
// malformed cluster; otherwise it consumes the code point's full byte
// length, bounded by the end of the range. On a non-empty range it never
// fails — a truncated sequence at end-of-input is consumed to the end — and
// returns the matched view alongside the new range; an empty range fails
// with EndOfRange.
func CodePointInto(r source.Range) (source.Range, string, error) {
	if r.Empty() {
		return r, "", serr.New(serr.EndOfRange, "read_code_point: empty range")
	}

	lead, _ := r.PeekByte()
	n := uniprim.CodePointLength(lead)

	if n == 0 {
		matched := []byte{lead}
		it := r.Advance(1)
		for {
			b, ok := it.PeekByte()
			if !ok || uniprim.CodePointLength(b) != 0 {
				break
			}
			matched = append(matched, b)
			it = it.Advance(1)
		}
		return it, string(matched), nil
	}

	if n == 1 {
		return r.Advance(1), string([]byte{lead}), nil
	}

	matched := make([]byte, 0, n)
	it := r
	for i := 0; i < n; i++ {
		b, ok := it.PeekByte()
		if !ok {
			break
		}
		matched = append(matched, b)
		it = it.Advance(1)
	}
	return it, string(matched), nil
}

// CodePoint is CodePointInto without the matched view.
func CodePoint(r source.Range) (source.Range, error) {
	it, _, err := CodePointInto(r)
	return it, err
}

// ExactlyNCodePoints consumes exactly n code points, failing with
// EndOfRange if the range runs out first.
func ExactlyNCodePoints(r source.Range, n int) (source.Range, error) {
	it := r
	for i := 0; i < n; i++ {
		if it.Empty() {
			return it, serr.New(serr.EndOfRange, "read_exactly_n_code_points: ran out of input")
		}
		next, err := CodePoint(it)
		if err != nil {
			return it, err
		}
		it = next
	}
	return it, nil
}

// ExactlyNWidthUnits consumes code points while their accumulated display
// width stays at or below w, stopping before the code point that would
// exceed it. It never fails: running out of input simply stops the scan.
func ExactlyNWidthUnits(r source.Range, w int) source.Range {
	it := r
	acc := 0
	for !it.Empty() {
		next, view, err := CodePointInto(it)
		if err != nil {
			break
		}
		acc += uniprim.TextWidth(view)
		if acc > w {
			break
		}
		it = next
	}
	return it
}

// TakeWidth returns a sub-range bounded by display width w: the caller-
// facing name for the §3 "take_width" operation, built directly on
// ExactlyNWidthUnits. A Contiguous range is sliced eagerly so downstream
// matching/measuring can treat it as an ordinary string.
func TakeWidth(r source.Range, w int) source.Range {
	if c, ok := r.(source.Contiguous); ok {
		end := ExactlyNWidthUnits(c, w).(source.Contiguous)
		return source.NewContiguous(c.String()[:source.Distance(c, end)])
	}
	// Forward ranges can't be bounded without consuming; bound by
	// re-reading through ExactlyNWidthUnits' stopping point using a
	// buffered prefix snapshot.
	prefix, _ := r.ContiguousBeginning()
	bounded := source.NewContiguous(prefix)
	end := ExactlyNWidthUnits(bounded, w).(source.Contiguous)
	return source.NewContiguous(prefix[:source.Distance(bounded, end)])
}

// WhileCodeUnit consumes bytes while pred holds, stopping at the first
// mismatch (or end of range). It never fails.
func WhileCodeUnit(r source.Range, pred func(byte) bool) (source.Range, string) {
	return UntilCodeUnit(r, func(b byte) bool { return !pred(b) })
}

// UntilCodeUnit consumes bytes until pred holds, stopping at the first
// match (or end of range). It never fails.
func UntilCodeUnit(r source.Range, pred func(byte) bool) (source.Range, string) {
	it := r
	var matched []byte
	for {
		b, ok := it.PeekByte()
		if !ok || pred(b) {
			return it, string(matched)
		}
		matched = append(matched, b)
		it = it.Advance(1)
	}
}

// While1CodeUnit is WhileCodeUnit but requires at least one matching byte.
func While1CodeUnit(r source.Range, pred func(byte) bool) (source.Range, string, error) {
	it, matched := WhileCodeUnit(r, pred)
	if matched == "" {
		return r, "", serr.New(serr.InvalidScannedValue, "read_while1_code_unit: no matching code units")
	}
	return it, matched, nil
}

// Until1CodeUnit is UntilCodeUnit but requires at least one consumed byte.
func Until1CodeUnit(r source.Range, pred func(byte) bool) (source.Range, string, error) {
	it, matched := UntilCodeUnit(r, pred)
	if matched == "" {
		return r, "", serr.New(serr.InvalidScannedValue, "read_until1_code_unit: no matching code units")
	}
	return it, matched, nil
}

// UntilCodeUnits searches for the first occurrence of needle, returning a
// range positioned at its start. On a Contiguous range a missing needle
// yields an empty range (end of input). On a Forward range only the
// already-buffered prefix is searched, and a needle not found there leaves
// the range unadvanced.
func UntilCodeUnits(r source.Range, needle string) source.Range {
	if c, ok := r.(source.Contiguous); ok {
		s := c.String()
		idx := strings.Index(s, needle)
		if idx < 0 {
			return source.NewContiguous("")
		}
		return source.NewContiguous(s[idx:])
	}

	// Forward fallback: buffer what's already available and search it;
	// good enough since needles in format literals are short and readers
	// only ever call this against an already-buffered prefix.
	prefix, _ := r.ContiguousBeginning()
	idx := strings.Index(prefix, needle)
	if idx < 0 {
		return r
	}
	return r.Advance(idx)
}

// WhileCodePoint consumes code points while pred holds on the decoded rune.
func WhileCodePoint(r source.Range, pred func(rune) bool) (source.Range, string) {
	return UntilCodePoint(r, func(cp rune) bool { return !pred(cp) })
}

// UntilCodePoint consumes code points until pred holds on the decoded rune,
// using the eager batched strategy on contiguous sized ranges and a
// code-point-at-a-time scan otherwise.
func UntilCodePoint(r source.Range, pred func(rune) bool) (source.Range, string) {
	if c, ok := r.(source.Contiguous); ok {
		end := eagerUntilCodePoint(c, pred)
		return end, c.String()[:source.Distance(c, end)]
	}

	it := r
	var matched []byte
	for !it.Empty() {
		next, view, err := CodePointInto(it)
		if err != nil {
			break
		}
		if pred(uniprim.DecodeExhaustive(view)) {
			break
		}
		matched = append(matched, view...)
		it = next
	}
	return it, string(matched)
}

// UntilClassicSpace consumes code points until a classic-whitespace code
// point is found, using a table-driven byte fast path while the remainder
// stays pure ASCII.
func UntilClassicSpace(r source.Range) (source.Range, string) {
	if c, ok := r.(source.Contiguous); ok {
		s := c.String()
		i := 0
		for ; i < len(s); i++ {
			if !uniprim.IsASCII(s[i]) {
				break
			}
			if uniprim.IsASCIISpace(s[i]) {
				return source.NewContiguous(s[i:]), s[:i]
			}
		}
		if i == len(s) {
			return source.NewContiguous(""), s
		}
		// Fell back to the generic path from byte i onward.
		rest, tail := UntilCodePoint(source.NewContiguous(s[i:]), uniprim.IsClassicSpace)
		return rest, s[:i] + tail
	}
	return UntilCodePoint(r, uniprim.IsClassicSpace)
}

// WhileClassicSpace consumes code points while they are classic whitespace,
// with the same narrow ASCII fast path as UntilClassicSpace.
func WhileClassicSpace(r source.Range) (source.Range, string) {
	if c, ok := r.(source.Contiguous); ok {
		s := c.String()
		i := 0
		for ; i < len(s); i++ {
			if !uniprim.IsASCII(s[i]) {
				break
			}
			if !uniprim.IsASCIISpace(s[i]) {
				return source.NewContiguous(s[i:]), s[:i]
			}
		}
		if i == len(s) {
			return source.NewContiguous(""), s
		}
		rest, tail := WhileCodePoint(source.NewContiguous(s[i:]), uniprim.IsClassicSpace)
		return rest, s[:i] + tail
	}
	return WhileCodePoint(r, uniprim.IsClassicSpace)
}

// MatchingCodeUnit consumes one byte, failing with InvalidScannedValue if
// it doesn't equal ch.
func MatchingCodeUnit(r source.Range, ch byte) (source.Range, error) {
	b, ok := r.PeekByte()
	if !ok {
		return r, serr.New(serr.EndOfRange, "read_matching_code_unit: empty range")
	}
	if b != ch {
		return r, serr.Newf(serr.InvalidScannedValue, "read_matching_code_unit: expected %q, got %q", ch, b)
	}
	return r.Advance(1), nil
}

// MatchingCodePoint consumes one code point, failing with
// InvalidScannedValue if the decoded rune doesn't equal cp.
func MatchingCodePoint(r source.Range, cp rune) (source.Range, error) {
	it, view, err := CodePointInto(r)
	if err != nil {
		return r, err
	}
	if uniprim.DecodeExhaustive(view) != cp {
		return r, serr.Newf(serr.InvalidScannedValue, "read_matching_code_point: expected %q, got %q", cp, view)
	}
	return it, nil
}

// MatchingString consumes len(s) bytes and requires them to equal s
// exactly.
func MatchingString(r source.Range, s string) (source.Range, error) {
	it, matched, err := exactlyNCodeUnits(r, len(s))
	if err != nil {
		return r, err
	}
	if matched != s {
		return r, serr.Newf(serr.InvalidScannedValue, "read_matching_string: expected %q, got %q", s, matched)
	}
	return it, nil
}

// MatchingStringClassic is MatchingString restricted to the narrow/classic
// comparison scnlib distinguishes for wide ranges; in this narrow-only
// implementation it behaves identically to MatchingString.
func MatchingStringClassic(r source.Range, s string) (source.Range, error) {
	return MatchingString(r, s)
}

// MatchingStringClassicNocase is MatchingStringClassic, but lowers ASCII
// A..Z on both sides before comparing; non-ASCII bytes compare verbatim.
func MatchingStringClassicNocase(r source.Range, s string) (source.Range, error) {
	it, matched, err := exactlyNCodeUnits(r, len(s))
	if err != nil {
		return r, err
	}
	if !asciiFoldEqual(matched, s) {
		return r, serr.Newf(serr.InvalidScannedValue, "read_matching_string_nocase: expected %q, got %q", s, matched)
	}
	return it, nil
}

func asciiFoldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if uniprim.ASCIIToLower(a[i]) != uniprim.ASCIIToLower(b[i]) {
			return false
		}
	}
	return true
}

// OneOfCodeUnit consumes one byte and requires it to be one of charset's
// bytes.
func OneOfCodeUnit(r source.Range, charset string) (source.Range, error) {
	b, ok := r.PeekByte()
	if !ok {
		return r, serr.New(serr.EndOfRange, "read_one_of_code_unit: empty range")
	}
	for i := 0; i < len(charset); i++ {
		if charset[i] == b {
			return r.Advance(1), nil
		}
	}
	return r, serr.Newf(serr.InvalidScannedValue, "read_one_of_code_unit: %q not in %q", b, charset)
}

// exactlyNCodeUnits consumes exactly n bytes (or fails with EndOfRange),
// returning the matched bytes as a string.
func exactlyNCodeUnits(r source.Range, n int) (source.Range, string, error) {
	if c, ok := r.(source.Contiguous); ok {
		s := c.String()
		if len(s) < n {
			return r, "", serr.New(serr.EndOfRange, "read_exactly_n_code_units: ran out of input")
		}
		return source.NewContiguous(s[n:]), s[:n], nil
	}

	it := r
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, ok := it.PeekByte()
		if !ok {
			return r, "", serr.New(serr.EndOfRange, "read_exactly_n_code_units: ran out of input")
		}
		buf = append(buf, b)
		it = it.Advance(1)
	}
	return it, string(buf), nil
}
