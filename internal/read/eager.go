package read

import (
	"unicode/utf8"

	"github.com/scngo/scn/internal/source"
	"github.com/scngo/scn/internal/uniprim"
)

// batchSize is how many code points eagerUntilCodePoint decodes per chunk
// before re-checking the predicate against all of them at once.
const batchSize = 16

// eagerUntilCodePoint implements §4.1's "eager/segmented strategy": decode
// up to batchSize code points at a time into a fixed buffer, run pred over
// the whole batch, and stop as soon as one of them matches. Malformed UTF-8
// inside a batch falls back to decoding that batch one code point at a
// time, never trusting a corrupt transcode for the whole chunk.
func eagerUntilCodePoint(c source.Contiguous, pred func(rune) bool) source.Contiguous {
	s := c.String()
	pos := 0

	for pos < len(s) {
		var cps [batchSize]rune
		var offsets [batchSize]int
		count := 0
		i := pos
		malformed := false

		for count < batchSize && i < len(s) {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size <= 1 {
				malformed = true
				break
			}
			cps[count] = r
			offsets[count] = i
			count++
			i += size
		}

		for k := 0; k < count; k++ {
			if pred(cps[k]) {
				return source.NewContiguous(s[offsets[k]:])
			}
		}

		if !malformed {
			pos = i
			continue
		}

		// Fall back to one code point at a time from the position the
		// batch decode gave up on (the malformed byte itself), for the
		// rest of this batch only.
		it := source.Range(source.NewContiguous(s[i:]))
		for k := count; k < batchSize && !it.Empty(); k++ {
			next, view, err := CodePointInto(it)
			if err != nil {
				break
			}
			if pred(uniprim.DecodeExhaustive(view)) {
				return it.(source.Contiguous)
			}
			it = next
		}
		pos = len(s) - it.(source.Contiguous).Len()
	}

	return source.NewContiguous("")
}
