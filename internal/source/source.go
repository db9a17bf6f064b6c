// Package source implements the uniform Input Range abstraction the scan
// driver and read primitives are built on: a borrowed view over either
// contiguous (random-access) or forward (single-pass) byte input.
//
// A Range always represents "everything not yet consumed". Every read
// primitive takes a Range and returns a new Range for the unconsumed
// remainder; callers never mutate a Range directly, they adopt the one a
// primitive hands back.
package source

// Range is a borrowed view over an input stream of bytes (UTF-8 code
// units). Implementations are Contiguous (random-access, backed by a
// string) or Forward (single-pass, backed by a buffered reader).
type Range interface {
	// Empty reports whether there are no more code units to read.
	Empty() bool

	// IsContiguous reports whether the entire remaining range is backed by
	// contiguous, randomly addressable storage.
	IsContiguous() bool

	// PeekByte returns the next code unit without consuming it. ok is false
	// iff the range is Empty.
	PeekByte() (b byte, ok bool)

	// Advance returns a Range for the remainder after dropping the first n
	// code units. n must not exceed the number of code units known to be
	// available (callers establish this via ContiguousBeginning or by
	// reading one code unit at a time).
	Advance(n int) Range

	// ContiguousBeginning returns the longest prefix of the range that is
	// contiguously addressable right now, and whether that prefix is the
	// entire remaining range (i.e. the range is itself Contiguous).
	ContiguousBeginning() (prefix string, isWholeRange bool)
}

// Sized is implemented by ranges that know their remaining length without
// additional I/O (Contiguous ranges always do; Forward ranges never do).
type Sized interface {
	Len() int
}

// Text returns the entirety of a Contiguous range's remaining content. It
// panics if r is not contiguous; callers must check IsContiguous first, or
// use ContiguousBeginning for a partial, always-safe read.
func Text(r Range) string {
	s, whole := r.ContiguousBeginning()
	if !whole {
		panic("source: Text called on a non-contiguous range")
	}
	return s
}

// Try returns v, nil unchanged when err is nil, and the zero value of T
// alongside err otherwise. It exists purely to keep chained read-primitive
// call sites terse — the Go shape of scnlib's SCN_TRY early-return macro —
// and is most useful written as `v, err := source.Try(read.Foo(r))`.
func Try[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
