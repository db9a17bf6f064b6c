package driver

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/readers"
	"github.com/scngo/scn/internal/serr"
)

// CheckStatic walks formatLiteral the same way Run does, but without any
// input: it only validates argument-index bounds/indexing-mode consistency
// and, for every non-custom placeholder, that its parsed specs are
// acceptable to the reader kind selects. Go has no constexpr, so this is a
// runtime stand-in for a compile-time format check, intended for tests and
// go-vet-style tooling rather than the hot path.
func CheckStatic(formatLiteral string, kinds []args.Kind) error {
	argKinds := make([]format.ArgKind, len(kinds))
	for i, k := range kinds {
		argKinds[i] = format.ArgKind(k)
	}
	ctx := format.NewStaticContext(formatLiteral, argKinds)

	for !ctx.Done() {
		el, err := format.Next(ctx)
		if err != nil {
			return err
		}
		if el.Kind != format.ElemPlaceholder {
			continue
		}
		if el.ArgID < 0 || el.ArgID >= len(kinds) {
			return serr.Newf(serr.InvalidFormatString, "argument index %d out of range", el.ArgID)
		}
		kind := kinds[el.ArgID]
		if kind == args.KindCustom {
			continue
		}
		rd := readers.MakeReader(kind)
		if rd == nil {
			return serr.Newf(serr.InvalidFormatString, "no reader available for argument kind %s", kind)
		}
		if err := rd.CheckSpecs(&el.Specs); err != nil {
			return err
		}
	}
	return nil
}
