package scn

import (
	"github.com/scngo/scn/internal/format"
	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/source"
)

// ScanContext is the narrow view of the input a Scannable gets: the
// remaining input starting at the placeholder's position, plus that
// placeholder's parsed format spec.
type ScanContext struct {
	r     source.Range
	specs *format.Specs
}

// Specs returns the format spec parsed for this placeholder (fill, align,
// width, precision, type, type-options).
func (c *ScanContext) Specs() format.Specs {
	return *c.specs
}

// Remaining returns the unconsumed input as a string. It panics if the
// underlying range isn't contiguous — true for every Scan call in this
// package, which always operates over an in-memory string.
func (c *ScanContext) Remaining() string {
	return source.Text(c.r)
}

// Advance consumes n bytes from the front of the remaining input.
func (c *ScanContext) Advance(n int) {
	c.r = c.r.Advance(n)
}

// Fail is a convenience for returning a scan failure from ScanFrom with the
// InvalidScannedValue kind, the common case for a custom parser rejecting
// malformed input.
func Fail(msg string) error {
	return serr.New(serr.InvalidScannedValue, msg)
}

// Scannable is implemented by a caller's own type to take over scanning
// itself for a placeholder, instead of using one of the built-in readers.
// ScanFrom must advance ctx past whatever it consumed and return an error on
// malformed input; it must not retain ctx after returning.
type Scannable interface {
	ScanFrom(ctx *ScanContext) error
}

// scannableAdapter bridges the public Scannable contract to the internal
// driver's lower-level Scannable contract (which operates directly on
// source.Range so internal/driver never needs to import this package).
type scannableAdapter struct {
	s Scannable
}

func (a scannableAdapter) ScanFrom(r source.Range, specs *format.Specs) (source.Range, error) {
	ctx := &ScanContext{r: r, specs: specs}
	err := a.s.ScanFrom(ctx)
	return ctx.r, err
}
