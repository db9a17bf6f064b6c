package format

import (
	"strings"
	"unicode/utf8"

	"github.com/scngo/scn/internal/serr"
	"github.com/scngo/scn/internal/uniprim"
)

// ElementKind tags what Next returned: a literal code point to match
// exactly, a whitespace literal (matches zero or more input code points),
// or a placeholder.
type ElementKind int

const (
	ElemLiteralMatch ElementKind = iota
	ElemLiteralWhitespace
	ElemPlaceholder
)

// Element is one token of the format string: either a literal code point
// (§4.2's "{{"/"}}" escapes already resolved to a literal '{'/'}'), a
// whitespace literal, or a fully parsed placeholder.
type Element struct {
	Kind ElementKind

	// Valid when Kind is ElemLiteralMatch.
	Literal rune

	// Valid when Kind is ElemPlaceholder.
	ArgID         int
	HasExplicitID bool
	Specs         Specs
}

// Next consumes and returns the next element from ctx's remaining format
// string. Callers must not call Next once ctx.Done().
func Next(ctx argIDResolver) (Element, error) {
	rest := ctx.Remaining()

	switch {
	case strings.HasPrefix(rest, "{{"):
		ctx.Advance(2)
		return Element{Kind: ElemLiteralMatch, Literal: '{'}, nil
	case strings.HasPrefix(rest, "}}"):
		ctx.Advance(2)
		return Element{Kind: ElemLiteralMatch, Literal: '}'}, nil
	case strings.HasPrefix(rest, "{"):
		return parsePlaceholder(ctx)
	case strings.HasPrefix(rest, "}"):
		return Element{}, serr.New(serr.InvalidFormatString, "unmatched '}' in format string")
	default:
		r, size := utf8.DecodeRuneInString(rest)
		ctx.Advance(size)
		if uniprim.IsClassicSpace(r) {
			return Element{Kind: ElemLiteralWhitespace}, nil
		}
		return Element{Kind: ElemLiteralMatch, Literal: r}, nil
	}
}

// argIDResolver is the subset of *Context / *StaticContext that Next and
// parsePlaceholder need: advancing through the format string and
// resolving/validating an argument id under the manual/automatic rule.
type argIDResolver interface {
	Remaining() string
	Advance(n int)
	NextArgID() (int, error)
	CheckArgID(id int) error
}

func parsePlaceholder(ctx argIDResolver) (Element, error) {
	ctx.Advance(1) // consume '{'

	rest := ctx.Remaining()
	n, explicitID, hasExplicit := parseDecimal(rest)
	if hasExplicit {
		ctx.Advance(n)
		rest = ctx.Remaining()
	}

	var id int
	var err error
	if hasExplicit {
		err = ctx.CheckArgID(explicitID)
		id = explicitID
	} else {
		id, err = ctx.NextArgID()
	}
	if err != nil {
		return Element{}, err
	}

	specs := DefaultSpecs()
	if len(rest) > 0 && rest[0] == ':' {
		ctx.Advance(1)
		rest = ctx.Remaining()

		idx := strings.IndexByte(rest, '}')
		if idx < 0 {
			return Element{}, serr.New(serr.InvalidFormatString, "unterminated placeholder: missing '}'")
		}
		body := rest[:idx]
		parsed, err := ParseSpecs(body)
		if err != nil {
			return Element{}, err
		}
		specs = parsed
		ctx.Advance(idx + 1)
	} else {
		if len(rest) == 0 || rest[0] != '}' {
			return Element{}, serr.New(serr.InvalidFormatString, "expected '}' to close placeholder")
		}
		ctx.Advance(1)
	}

	return Element{
		Kind:          ElemPlaceholder,
		ArgID:         id,
		HasExplicitID: hasExplicit,
		Specs:         specs,
	}, nil
}
