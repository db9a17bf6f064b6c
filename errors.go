package scn

import "github.com/scngo/scn/internal/serr"

// Kind is the closed taxonomy of ways a scan can fail, re-exported from the
// internal error package so callers can inspect a returned error's Kind
// without importing internal/serr themselves.
type Kind = serr.Kind

// Error is the concrete error type every scan failure returns. It supports
// errors.Is against the Err* sentinels below, and against another *Error
// sharing the same Kind.
type Error = serr.Error

// Sentinel errors, one per Kind, for use with errors.Is(err, scn.ErrEndOfRange).
var (
	ErrEndOfRange            = serr.New(serr.EndOfRange, "")
	ErrInvalidFormatString   = serr.New(serr.InvalidFormatString, "")
	ErrInvalidScannedValue   = serr.New(serr.InvalidScannedValue, "")
	ErrValuePositiveOverflow = serr.New(serr.ValuePositiveOverflow, "")
	ErrValueNegativeOverflow = serr.New(serr.ValueNegativeOverflow, "")
	ErrInvalidSourceState    = serr.New(serr.InvalidSourceState, "")
)

// KindOf extracts the Kind from err if it is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	return serr.KindOf(err)
}
