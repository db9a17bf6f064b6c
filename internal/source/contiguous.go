package source

// Contiguous is a Range backed by a string, with full random access. This
// is the common case: scanning an in-memory string or byte slice.
type Contiguous struct {
	s string
}

// NewContiguous wraps s as a Contiguous Range.
func NewContiguous(s string) Contiguous {
	return Contiguous{s: s}
}

func (c Contiguous) Empty() bool        { return len(c.s) == 0 }
func (c Contiguous) IsContiguous() bool { return true }
func (c Contiguous) Len() int           { return len(c.s) }

func (c Contiguous) PeekByte() (byte, bool) {
	if len(c.s) == 0 {
		return 0, false
	}
	return c.s[0], true
}

func (c Contiguous) Advance(n int) Range {
	return Contiguous{s: c.s[n:]}
}

func (c Contiguous) ContiguousBeginning() (string, bool) {
	return c.s, true
}

// String returns everything remaining in the range.
func (c Contiguous) String() string {
	return c.s
}

// Distance returns the number of code units consumed moving from full (the
// original range) to c (some remainder of it obtained via Advance calls).
// Both must share the same underlying string; this is how the driver
// projects its final iterator back into a byte offset for §4.5 result
// construction.
func Distance(full, c Contiguous) int {
	return len(full.s) - len(c.s)
}
