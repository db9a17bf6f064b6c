// Package driver implements the Scan Driver (§4.3): the loop that walks a
// parsed format string element by element, matching literals against the
// input and dispatching placeholders to the reader selected by each
// argument's Kind.
package driver

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/read"
	"github.com/scngo/scn/internal/readers"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/uniprim"
	"github.com/scngo/scn/internal/xlog"
)

// Scannable is implemented by a caller's own type to take over scanning
// itself, the escape hatch for KindCustom entries in an args.Table — the Go
// analogue of a user-provided scn::scanner<T> specialization.
type Scannable interface {
	ScanFrom(r source.Range, specs *format.Specs) (source.Range, error)
}

// Result is what a completed scan produces: the unconsumed suffix of the
// input, positioned after the last format element (literal or placeholder)
// that matched.
type Result struct {
	Remaining string
	// Filled is how many table entries were successfully scanned before Err
	// (or before the whole format string was consumed, if Err is nil).
	Filled int
	Err    error
}

// Run scans input against formatStr, filling in the destinations in table in
// order, using loc for any locale-sensitive reads. It stops at the first
// error, leaving Result.Remaining positioned just before the element that
// failed. log may be nil.
func Run(input, formatStr string, table args.Table, loc args.Locale, log *xlog.Logger) Result {
	ctx := format.NewContext(formatStr)
	cur := source.Range(source.NewContiguous(input))
	full := source.NewContiguous(input)
	filled := 0

	for !ctx.Done() {
		el, err := format.Next(ctx)
		if err != nil {
			log.Failure(err)
			return finish(full, cur, filled, err)
		}

		switch el.Kind {
		case format.ElemLiteralWhitespace:
			cur, _ = read.WhileClassicSpace(cur)
			log.Literal(0, true)

		case format.ElemLiteralMatch:
			next, err := source.Try(read.MatchingCodePoint(cur, el.Literal))
			if err != nil {
				log.Failure(err)
				return finish(full, cur, filled, err)
			}
			cur = next
			log.Literal(el.Literal, false)

		case format.ElemPlaceholder:
			if el.ArgID < 0 || el.ArgID >= len(table) {
				err := serr.Newf(serr.InvalidFormatString, "argument index %d out of range", el.ArgID)
				log.Failure(err)
				return finish(full, cur, filled, err)
			}
			before := cur
			next, err := scanOne(cur, table[el.ArgID], &el.Specs, loc)
			if err != nil {
				log.Failure(err)
				return finish(full, cur, filled, err)
			}
			log.Placeholder(el.ArgID, table[el.ArgID].Kind.String(), consumedLen(before, next))
			cur = next
			filled++
		}
	}

	return finish(full, cur, filled, nil)
}

func finish(full source.Contiguous, cur source.Range, filled int, err error) Result {
	c, ok := cur.(source.Contiguous)
	if !ok {
		return Result{Filled: filled, Err: err}
	}
	return Result{Remaining: full.String()[source.Distance(full, c):], Filled: filled, Err: err}
}

// scanOne dispatches a single placeholder: custom Scannable types take over
// entirely, everything else goes through the Kind-selected reader with the
// (a)-(e) steps of the reader contract — optional leading whitespace skip,
// fill/align handling around the value, a precision-bounded read scope, fill
// handling on the trailing side, and a width/precision total check. Width is
// a soft minimum on the whole matched field (fill included); precision is a
// hard cap on the value's read scope, never the other way around.
func scanOne(cur source.Range, arg args.Arg, specs *format.Specs, loc args.Locale) (source.Range, error) {
	if arg.Kind == args.KindCustom {
		scannable, ok := arg.Dest.(Scannable)
		if !ok {
			return cur, serr.New(serr.InvalidFormatString, "argument has no built-in reader and does not implement Scannable")
		}
		return scannable.ScanFrom(cur, specs)
	}

	rd := readers.MakeReader(arg.Kind)
	if rd == nil {
		return cur, serr.New(serr.InvalidFormatString, "no reader available for this argument kind")
	}
	if err := rd.CheckSpecs(specs); err != nil {
		return cur, err
	}

	fieldStart := cur
	it := cur
	if rd.SkipWSBeforeRead() {
		it, _ = read.WhileClassicSpace(it)
	}

	// (b) leading fill: right/center alignment means padding precedes the
	// value, so any run of the fill rune is consumed before reading it.
	if specs.Align == format.AlignRight || specs.Align == format.AlignCenter {
		it, _ = read.WhileCodePoint(it, func(r rune) bool { return r == specs.Fill })
	}

	// (c) bound the read scope by precision when one was given: precision is
	// a hard cap on the value, never width, which is only a minimum enforced
	// after the fact in (e).
	scope := it
	if specs.Precision >= 0 {
		scope = read.TakeWidth(it, specs.Precision)
	}

	var next source.Range
	var err error
	if isDefaultSpecs(specs) {
		next, err = rd.ReadDefault(scope, arg.Dest, loc)
	} else {
		next, err = rd.ReadSpecs(scope, specs, arg.Dest, loc)
	}
	if err != nil {
		return cur, err
	}

	// Replay the read against the unbounded range so a precision-bounded
	// scope doesn't strand the real range behind the truncated copy.
	if specs.Precision >= 0 {
		consumed := consumedLen(scope, next)
		next = it.Advance(consumed)
	}

	// (d) trailing fill: left/center alignment means padding follows the
	// value. Absent an explicit alignment, a reader that does not skip
	// leading whitespace has trailing classic whitespace consumed as fill,
	// but only while the field is still narrower than a declared width.
	switch specs.Align {
	case format.AlignLeft, format.AlignCenter:
		next, _ = read.WhileCodePoint(next, func(r rune) bool { return r == specs.Fill })
	case format.AlignNone:
		if !rd.SkipWSBeforeRead() && specs.Width > 0 {
			if text, ok := consumedText(fieldStart, next); ok {
				if need := specs.Width - uniprim.TextWidth(text); need > 0 {
					pad := read.TakeWidth(next, need)
					padEnd, _ := read.WhileClassicSpace(pad)
					next = next.Advance(consumedLen(pad, padEnd))
				}
			}
		}
	}

	// (e) enforce the width/precision totals over the whole matched field.
	if text, ok := consumedText(fieldStart, next); ok {
		total := uniprim.TextWidth(text)
		if specs.Width > 0 && total < specs.Width {
			return cur, serr.Newf(serr.InvalidScannedValue, "matched field width %d is narrower than the required width %d", total, specs.Width)
		}
		if specs.Precision >= 0 && total > specs.Precision {
			return cur, serr.Newf(serr.InvalidScannedValue, "matched field width %d exceeds precision %d", total, specs.Precision)
		}
	}

	return next, nil
}

func isDefaultSpecs(s *format.Specs) bool {
	d := format.DefaultSpecs()
	return s.Align == d.Align && s.Fill == d.Fill && s.Width == 0 && s.Precision == d.Precision &&
		s.Type == 0 && !s.Localized && s.TypeOptions == ""
}

func consumedLen(before, after source.Range) int {
	bc, ok1 := before.(source.Contiguous)
	ac, ok2 := after.(source.Contiguous)
	if ok1 && ok2 {
		return source.Distance(bc, ac)
	}
	return 0
}

// consumedText returns the bytes consumed moving from before to after, and
// whether that span could be measured at all — only possible when both ends
// are Contiguous. A Forward range can't be measured without consuming it
// twice, so (e)'s width/precision enforcement is skipped for those.
func consumedText(before, after source.Range) (string, bool) {
	bc, ok1 := before.(source.Contiguous)
	ac, ok2 := after.(source.Contiguous)
	if !ok1 || !ok2 {
		return "", false
	}
	return bc.String()[:source.Distance(bc, ac)], true
}
