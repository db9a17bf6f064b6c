package scn_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/scngo/scn"
)

func TestScanBasic(t *testing.T) {
	var a, b int
	rest, err := scn.Scan("12, 34", "{}, {}", &a, &b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != 12 || b != 34 {
		t.Fatalf("got a=%d b=%d, want a=12 b=34", a, b)
	}
	if rest != "" {
		t.Fatalf("got remaining %q, want empty", rest)
	}
}

func TestScanLeavesRemainder(t *testing.T) {
	var name string
	rest, err := scn.Scan("alice rest-of-string", "{}", &name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "alice" {
		t.Fatalf("got name %q, want alice", name)
	}
	if rest != " rest-of-string" {
		t.Fatalf("got remaining %q, want %q", rest, " rest-of-string")
	}
}

func TestScanMismatchedLiteralErrors(t *testing.T) {
	var a int
	_, err := scn.Scan("xyz", "abc{}", &a)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestScanAllFillsEveryArgument(t *testing.T) {
	var a, b, c int
	rest, filled, err := scn.ScanAll("1 2 3", &a, &b, &c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filled != 3 {
		t.Fatalf("got filled=%d, want 3", filled)
	}
	if a != 1 || b != 2 || c != 3 {
		t.Fatalf("got a=%d b=%d c=%d", a, b, c)
	}
	if rest != "" {
		t.Fatalf("got remaining %q, want empty", rest)
	}
}

func TestScanAllReportsPartialFillOnError(t *testing.T) {
	var a, b int
	_, filled, err := scn.ScanAll("1 notanumber", &a, &b)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if filled != 1 {
		t.Fatalf("got filled=%d, want 1", filled)
	}
	if a != 1 {
		t.Fatalf("got a=%d, want 1", a)
	}
}

func TestScanAllEmptyArgsIsNoOp(t *testing.T) {
	rest, filled, err := scn.ScanAll("leave me alone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filled != 0 {
		t.Fatalf("got filled=%d, want 0", filled)
	}
	if rest != "leave me alone" {
		t.Fatalf("got remaining %q, want unchanged input", rest)
	}
}

func TestScannerWithLocaleCommaDecimal(t *testing.T) {
	s := scn.New(scn.WithLocale(scn.Locale{DecimalPoint: ',', Grouping: 0}))
	var f float64
	_, err := s.Scan("3,5", "{:L}", &f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 3.5 {
		t.Fatalf("got f=%v, want 3.5", f)
	}
}

func TestScannerWithLoggerDoesNotPanic(t *testing.T) {
	s := scn.New(scn.WithLogger(slog.Default()))
	var a int
	_, err := s.Scan("7", "{}", &a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != 7 {
		t.Fatalf("got a=%d, want 7", a)
	}
}

func TestScannerWithMaxWidthRejectsLongInput(t *testing.T) {
	s := scn.New(scn.WithMaxWidth(4))
	var a string
	_, err := s.Scan("way too long", "{}", &a)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestScannerWithMaxWidthAllowsShortInput(t *testing.T) {
	s := scn.New(scn.WithMaxWidth(4))
	var a string
	_, err := s.Scan("ok", "{}", &a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestErrorsIsMatchesSentinel(t *testing.T) {
	var a int
	_, err := scn.Scan("notanumber", "{}", &a)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !errors.Is(err, scn.ErrInvalidScannedValue) {
		t.Fatalf("got err %v, want it to match ErrInvalidScannedValue", err)
	}
}

func TestKindOfExtractsKind(t *testing.T) {
	var a int
	_, err := scn.Scan("notanumber", "{}", &a)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	kind, ok := scn.KindOf(err)
	if !ok {
		t.Fatal("expected KindOf to recognize err")
	}
	if kind != scn.ErrInvalidScannedValue.Kind {
		t.Fatalf("got kind %v, want %v", kind, scn.ErrInvalidScannedValue.Kind)
	}
}

type point struct {
	x, y int
}

func (p *point) ScanFrom(ctx *scn.ScanContext) error {
	rest := ctx.Remaining()
	var x, y int
	n, err := scanSSV(rest, &x, &y)
	if err != nil {
		return scn.Fail("point: " + err.Error())
	}
	ctx.Advance(n)
	p.x, p.y = x, y
	return nil
}

// scanSSV parses a leading "x,y" pair out of s and returns how many bytes it
// consumed, used by point.ScanFrom to exercise the public Scannable path.
func scanSSV(s string, x, y *int) (int, error) {
	rest, err := scn.Scan(s, "{},{}", x, y)
	if err != nil {
		return 0, err
	}
	return len(s) - len(rest), nil
}

func TestScannableCustomType(t *testing.T) {
	var p point
	rest, err := scn.Scan("3,4 trailing", "{}", &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.x != 3 || p.y != 4 {
		t.Fatalf("got point %+v, want {3 4}", p)
	}
	if rest != " trailing" {
		t.Fatalf("got remaining %q, want %q", rest, " trailing")
	}
}

func TestCheckFormatAcceptsWellFormed(t *testing.T) {
	var a int
	var b string
	if err := scn.CheckFormat("{}, {}", &a, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckFormatCatchesOutOfRangeArgID(t *testing.T) {
	var a int
	if err := scn.CheckFormat("{} {}", &a); err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestScannableCustomTypeRejectsMalformed(t *testing.T) {
	var p point
	_, err := scn.Scan("nope", "{}", &p)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}
