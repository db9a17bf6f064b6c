// Package scn implements type-safe, format-string-driven textual scanning:
// the inverse of fmt.Sprintf, reading values out of a string according to a
// "{} {}"-shaped format literal instead of formatting them into one.
package scn

import (
	"github.com/scngo/scn/internal/args"
	"github.com/scngo/scn/internal/driver"
)

// Scan reads outs out of src according to format, in a brace placeholder
// grammar ("{}" automatic, "{0}" explicit, with an optional ":spec" body),
// and returns whatever of src was not consumed.
func Scan(src, format string, outs ...any) (string, error) {
	return defaultScanner.Scan(src, format, outs...)
}

// ScanAll reads outs out of src as if format were "{} {} …" repeated once
// per argument: whitespace-separated default reads with no spec options. It
// additionally reports how many arguments were successfully filled before
// any error, matching scnlib's empty-format vscan overload.
func ScanAll(src string, outs ...any) (string, int, error) {
	return defaultScanner.ScanAll(src, outs...)
}

// defaultScanner is what the package-level Scan/ScanAll delegate to.
var defaultScanner = New()

func buildTable(outs []any) args.Table {
	table := make(args.Table, len(outs))
	for i, o := range outs {
		kind := args.KindOf(o)
		dest := o
		if kind == args.KindCustom {
			if s, ok := o.(Scannable); ok {
				dest = scannableAdapter{s: s}
			}
		}
		table[i] = args.Arg{Kind: kind, Dest: dest}
	}
	return table
}

func emptyFormat(n int) string {
	if n == 0 {
		return ""
	}
	b := make([]byte, 0, n*3-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, '{', '}')
	}
	return string(b)
}

func runResult(src string, format string, table args.Table, s *Scanner) driver.Result {
	return driver.Run(src, format, table, s.locale.toArgsLocale(), s.log)
}
