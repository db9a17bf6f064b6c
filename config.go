package scn

import (
	"log/slog"

	"github.com/scngo/scn/internal/xlog"
)

// Scanner holds the configuration a scan runs under: locale and an optional
// structured logger. The zero value is not meaningful on its own — use New.
type Scanner struct {
	locale   Locale
	logger   *slog.Logger
	log      *xlog.Logger
	maxWidth int
}

// baseScanner is the shared default every New() call clones from: options
// never mutate it directly, so a previously constructed Scanner can't
// change out from under a caller still holding it.
var baseScanner = &Scanner{locale: DefaultLocale}

// clone returns a shallow copy of s, so a With* option never mutates a
// Scanner another caller might still be holding.
func (s *Scanner) clone() *Scanner {
	cp := *s
	return &cp
}

// Option configures a Scanner, returning the (possibly new) Scanner it
// should continue to use. Options compose left to right in New.
type Option func(*Scanner) *Scanner

// New builds a Scanner from the given options, starting from the package
// default (DefaultLocale, no logger).
func New(opts ...Option) *Scanner {
	s := baseScanner.clone()
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

// WithLocale sets the decimal/grouping locale used by localized (`L` spec)
// numeric reads.
func WithLocale(loc Locale) Option {
	return func(s *Scanner) *Scanner {
		ret := s.clone()
		ret.locale = loc
		return ret
	}
}

// WithLogger attaches a structured logger that receives one Debug event per
// matched literal and per scanned placeholder. A nil logger (the default)
// disables this entirely at no cost.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) *Scanner {
		ret := s.clone()
		ret.logger = l
		ret.log = xlog.New(l)
		return ret
	}
}

// WithMaxWidth rejects any src longer than n bytes before scanning begins,
// the guard a caller reaches for when src comes from an untrusted or
// unbounded source instead of an in-memory literal.
func WithMaxWidth(n int) Option {
	return func(s *Scanner) *Scanner {
		ret := s.clone()
		ret.maxWidth = n
		return ret
	}
}

// Scan is the Scanner-bound form of the package-level Scan, using s's
// locale and logger.
func (s *Scanner) Scan(src, format string, outs ...any) (string, error) {
	if err := s.checkWidth(src); err != nil {
		return src, err
	}
	table := buildTable(outs)
	res := runResult(src, format, table, s)
	return res.Remaining, res.Err
}

// ScanAll is the Scanner-bound form of the package-level ScanAll.
func (s *Scanner) ScanAll(src string, outs ...any) (string, int, error) {
	if err := s.checkWidth(src); err != nil {
		return src, 0, err
	}
	table := buildTable(outs)
	format := emptyFormat(len(outs))
	res := runResult(src, format, table, s)
	return res.Remaining, res.Filled, res.Err
}

func (s *Scanner) checkWidth(src string) error {
	if s.maxWidth > 0 && len(src) > s.maxWidth {
		return Fail("input exceeds configured maximum width")
	}
	return nil
}
