package uniprim

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// zeroWidthMarks is the merged range table of nonspacing marks, enclosing
// marks, and format controls — every code point that combines with its
// neighbor rather than occupying its own display cell.
var zeroWidthMarks = rangetable.Merge(unicode.Mn, unicode.Me, unicode.Cf)

// isZeroWidth reports whether r belongs to zeroWidthMarks.
func isZeroWidth(r rune) bool {
	return unicode.Is(zeroWidthMarks, r)
}
