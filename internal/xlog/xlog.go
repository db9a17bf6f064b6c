// Package xlog wraps log/slog for the driver's placeholder-level tracing, in
// its own package so internal/driver doesn't need to carry a dependency on
// whichever package owns the public Scanner type.
package xlog

import "log/slog"

// Logger is the narrow structured-logging surface the driver calls into. A
// nil *Logger is valid and every method on it is a no-op, so scanning has no
// logging cost unless a caller opts in via scn.WithLogger.
type Logger struct {
	l *slog.Logger
}

// New wraps an *slog.Logger. Passing nil yields a Logger whose methods are
// no-ops.
func New(l *slog.Logger) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{l: l}
}

// Placeholder logs one placeholder's dispatch: which argument index, which
// kind, and how many bytes it consumed.
func (lg *Logger) Placeholder(argID int, kind string, consumedBytes int) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Debug("scan placeholder",
		slog.Int("arg", argID),
		slog.String("kind", kind),
		slog.Int("consumed_bytes", consumedBytes),
	)
}

// Literal logs one literal element's match against the input.
func (lg *Logger) Literal(r rune, whitespace bool) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Debug("scan literal", slog.String("rune", string(r)), slog.Bool("whitespace", whitespace))
}

// Failure logs a scan that stopped early.
func (lg *Logger) Failure(err error) {
	if lg == nil || lg.l == nil {
		return
	}
	lg.l.Debug("scan failed", slog.String("error", err.Error()))
}
