package scn

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/driver"
)

// CheckFormat statically validates format against the Kinds of outs,
// without scanning any input: argument-index bounds, manual/automatic
// indexing consistency, and per-placeholder spec compatibility are all
// checked up front. It is the runtime substitute for a compile-time check —
// Go has no constexpr — meant for tests and linter-style tooling to catch a
// malformed format string before it ever sees real input.
func CheckFormat(format string, outs ...any) error {
	kinds := make([]args.Kind, len(outs))
	for i, o := range outs {
		kinds[i] = args.KindOf(o)
	}
	return driver.CheckStatic(format, kinds)
}
