package format

import "github.com/scngo/scn/internal/serr"

// ArgKind is a minimal, format-package-local stand-in for the argument
// table's type tag, used only by StaticContext so this package never has
// to import the argument table (which itself depends on format.Specs).
// Callers translate their real tag enum into ArgKind when building a
// StaticContext; see internal/driver's CheckStatic wiring.
type ArgKind int

// StaticContext is a Context that additionally knows the argument count and
// each argument's kind, so out-of-range ids and unsupported specs can be
// rejected before a single byte of input is read. Go has no constexpr, so
// this is exposed as an opt-in static check (CheckStatic) rather than a
// property the compiler enforces.
type StaticContext struct {
	Context
	kinds []ArgKind
}

// NewStaticContext starts a StaticContext over format, with the given
// argument kinds available for bounds/type checking.
func NewStaticContext(format string, kinds []ArgKind) *StaticContext {
	return &StaticContext{Context: Context{remaining: format, nextArgID: 0}, kinds: kinds}
}

func (c *StaticContext) NumArgs() int {
	return len(c.kinds)
}

func (c *StaticContext) ArgKind(id int) (ArgKind, bool) {
	if id < 0 || id >= len(c.kinds) {
		return 0, false
	}
	return c.kinds[id], true
}

// NextArgID is Context.NextArgID plus a bounds check against NumArgs.
func (c *StaticContext) NextArgID() (int, error) {
	id, err := c.Context.NextArgID()
	if err != nil {
		return 0, err
	}
	if id >= c.NumArgs() {
		return id, serr.New(serr.InvalidFormatString, "argument not found")
	}
	return id, nil
}

// CheckArgID is Context.CheckArgID plus a bounds check against NumArgs.
func (c *StaticContext) CheckArgID(id int) error {
	if err := c.Context.CheckArgID(id); err != nil {
		return err
	}
	if id >= c.NumArgs() {
		return serr.New(serr.InvalidFormatString, "argument not found")
	}
	return nil
}
