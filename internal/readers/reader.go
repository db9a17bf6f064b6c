// Package readers supplies the concrete args.Reader implementations for
// every built-in args.Kind: the leaves the scan driver dispatches a
// placeholder's argument to, selected purely by its Kind tag (§4.4's
// "flatten CRTP into a tagged variant" redesign).
package readers

import (
	"strconv"

	"github.com/scngo/scn/internal/args"
)

// MakeReader returns the args.Reader for kind, or nil for KindNone/KindCustom
// — the driver handles those two cases itself (an InvalidFormatString error
// and Scannable dispatch, respectively).
func MakeReader(kind args.Kind) args.Reader {
	switch kind {
	case args.KindBool:
		return boolReader{}
	case args.KindByte:
		return byteReader{}
	case args.KindRune:
		return runeReader{}
	case args.KindInt:
		return intReader[int]{bits: strconv.IntSize}
	case args.KindInt8:
		return intReader[int8]{bits: 8}
	case args.KindInt16:
		return intReader[int16]{bits: 16}
	case args.KindInt32:
		return intReader[int32]{bits: 32}
	case args.KindInt64:
		return intReader[int64]{bits: 64}
	case args.KindUint:
		return uintReader[uint]{bits: strconv.IntSize}
	case args.KindUint8:
		return uintReader[uint8]{bits: 8}
	case args.KindUint16:
		return uintReader[uint16]{bits: 16}
	case args.KindUint32:
		return uintReader[uint32]{bits: 32}
	case args.KindUint64:
		return uintReader[uint64]{bits: 64}
	case args.KindFloat32:
		return floatReader[float32]{bits: 32}
	case args.KindFloat64:
		return floatReader[float64]{bits: 64}
	case args.KindString:
		return stringReader{}
	case args.KindPointer:
		return pointerReader{}
	case args.KindRegex:
		return regexReader{}
	default:
		return nil
	}
}
