package scn

import "github.com/scngo/scn/internal/args"

// Locale carries the narrow slice of locale information a localized (`L`
// spec flag) read needs: the decimal separator and digit grouping rune. It
// is not a full locale facet bridge — matching a named external locale
// database remains an external collaborator's responsibility.
type Locale struct {
	DecimalPoint rune
	Grouping     rune
}

// DefaultLocale is the "C"/"POSIX"-equivalent locale: '.' decimal point, no
// grouping.
var DefaultLocale = Locale{DecimalPoint: '.', Grouping: 0}

func (l Locale) toArgsLocale() args.Locale {
	return args.Locale{DecimalPoint: l.DecimalPoint, Grouping: l.Grouping}
}
