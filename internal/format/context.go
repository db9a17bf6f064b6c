// Package format implements the format-string parser: the parse context
// that tracks argument indexing, and the placeholder spec grammar
// ("{id:fill-align-width.precision-L-type-options}").
package format

import "github.com/scngo/scn/internal/serr"

// manualIndexing is the sentinel Context.nextArgID takes on once any
// explicit "{id}" has been seen, locking the context out of automatic
// indexing for the rest of the format string.
const manualIndexing = -1

// Context holds the unparsed remainder of a format string and the state
// needed to assign sequential or explicit argument ids, enforcing the
// manual-vs-automatic indexing rule of §4.2.
type Context struct {
	remaining string
	nextArgID int
}

// NewContext starts a parse context over the given format string, with
// automatic indexing beginning at argument 0.
func NewContext(format string) *Context {
	return &Context{remaining: format, nextArgID: 0}
}

// Remaining returns the unparsed suffix of the format string.
func (c *Context) Remaining() string {
	return c.remaining
}

// Advance drops n bytes from the front of the remaining format string.
func (c *Context) Advance(n int) {
	c.remaining = c.remaining[n:]
}

// Done reports whether the entire format string has been consumed.
func (c *Context) Done() bool {
	return c.remaining == ""
}

// NextArgID returns the next automatically assigned argument id, locking
// the context to automatic indexing. It errors if the context has already
// seen an explicit id (manual indexing).
func (c *Context) NextArgID() (int, error) {
	if c.nextArgID < 0 {
		return 0, serr.New(serr.InvalidFormatString, "cannot switch from manual to automatic argument indexing")
	}
	id := c.nextArgID
	c.nextArgID++
	return id, nil
}

// CheckArgID locks the context to manual indexing for an explicit id. It
// errors if the context had already assigned an automatic id (automatic
// indexing already in progress). It does not check id against an argument
// count; StaticContext and the driver do that.
func (c *Context) CheckArgID(id int) error {
	if c.nextArgID > 0 {
		return serr.New(serr.InvalidFormatString, "cannot switch from automatic to manual argument indexing")
	}
	c.nextArgID = manualIndexing
	return nil
}

// IsManual reports whether the context has locked into manual indexing.
func (c *Context) IsManual() bool {
	return c.nextArgID == manualIndexing
}
