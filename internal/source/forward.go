package source

import (
	"bufio"
	"io"
)

// Forward is a single-pass Range backed by a buffered io.Reader. Bytes once
// consumed cannot be revisited, matching the forward-range / "iterator +
// sentinel" model of the C++ original this package adapts: advancing a
// Forward value discards bytes from the shared underlying reader, so every
// Range returned by Advance observes the same, further-along cursor.
type Forward struct {
	br *bufio.Reader
}

// NewForward adapts r into a Forward Range, buffering reads the way a
// file-backed source would. This is the "buffering layer" external
// collaborator named by the scanning spec for forward sources.
func NewForward(r io.Reader) *Forward {
	return &Forward{br: bufio.NewReader(r)}
}

func (f *Forward) IsContiguous() bool { return false }

func (f *Forward) Empty() bool {
	_, err := f.br.Peek(1)
	return err != nil
}

func (f *Forward) PeekByte() (byte, bool) {
	b, err := f.br.Peek(1)
	if err != nil {
		return 0, false
	}
	return b[0], true
}

func (f *Forward) Advance(n int) Range {
	if n > 0 {
		if _, err := f.br.Discard(n); err != nil && err != io.EOF {
			// A hard read failure surfaces on the next Peek/Discard call;
			// we don't have an error return here, so let it manifest as
			// Empty() becoming true early. Callers that need to detect a
			// real I/O failure use Err.
		}
	}
	return f
}

// ContiguousBeginning returns whatever the underlying reader already has
// buffered — the forward-range analogue of a probe for an
// already-contiguous-in-memory prefix. Only when nothing is buffered does it
// read from the underlying reader, once, to fill the buffer.
func (f *Forward) ContiguousBeginning() (string, bool) {
	n := f.br.Buffered()
	if n == 0 {
		// Force at least a one-byte fill so callers see something when
		// more input is available but nothing has been buffered yet.
		if b, err := f.br.Peek(1); err == nil {
			return string(b), false
		}
		return "", false
	}
	b, _ := f.br.Peek(n)
	return string(b), false
}

// Err reports a hard read failure observed while filling the buffer, if
// any occurred and was not io.EOF.
func (f *Forward) Err() error {
	_, err := f.br.Peek(1)
	if err == io.EOF {
		return nil
	}
	return err
}
