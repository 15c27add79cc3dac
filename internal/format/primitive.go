package format

import (
	"math"

	"github.com/kesselring/dartbuf/internal/buf"
	"github.com/kesselring/dartbuf/types"
)

// Sizeof returns the number of payload bytes a scalar of the given raw type
// occupies, not including any alignment padding (§3, §4.3). Callers must
// handle string raw types separately via StringSizeof since their size is
// data-dependent.
func Sizeof(t types.RawType) int {
	switch t {
	case types.Null:
		return 0
	case types.ShortInteger:
		return 2
	case types.Integer, types.Decimal:
		return 4
	case types.LongInteger, types.LongDecimal:
		return 8
	case types.Boolean:
		return 1
	default:
		return 0
	}
}

// ReadInt decodes an integer payload of the given width, sign-extending to
// int64 regardless of stored width.
func ReadInt(t types.RawType, b []byte) int64 {
	switch t {
	case types.ShortInteger:
		return int64(buf.I16LE(b))
	case types.Integer:
		return int64(buf.I32LE(b))
	case types.LongInteger:
		return buf.I64LE(b)
	default:
		return 0
	}
}

// WriteInt writes v into b using the narrowest of the three integer raw
// types that can represent it, per the width-selection rule in §3: INT16
// range chooses short_integer, INT32 range chooses integer, otherwise
// long_integer. It returns the raw type actually used.
func WriteInt(b []byte, v int64) types.RawType {
	switch {
	case v >= -1<<15 && v <= 1<<15-1:
		buf.PutI16LE(b, int16(v))
		return types.ShortInteger
	case v >= -1<<31 && v <= 1<<31-1:
		buf.PutI32LE(b, int32(v))
		return types.Integer
	default:
		buf.PutI64LE(b, v)
		return types.LongInteger
	}
}

// ReadDecimal decodes a decimal payload of the given width as a float64.
func ReadDecimal(t types.RawType, b []byte) float64 {
	switch t {
	case types.Decimal:
		return float64(buf.F32LE(b))
	case types.LongDecimal:
		return buf.F64LE(b)
	default:
		return 0
	}
}

// WriteDecimal writes v into b, choosing decimal (float32) when v
// round-trips through float32 without loss, else long_decimal (float64)
// (§3 decimal width-selection rule). NaN fails the round-trip comparison
// and infinities are excluded explicitly, so both are stored as
// long_decimal. It returns the raw type actually used.
func WriteDecimal(b []byte, v float64) types.RawType {
	if !math.IsInf(v, 0) && float64(float32(v)) == v {
		buf.PutF32LE(b, float32(v))
		return types.Decimal
	}
	buf.PutF64LE(b, v)
	return types.LongDecimal
}

// ReadBool decodes a boolean payload byte.
func ReadBool(b []byte) bool {
	return b[0] != 0
}

// WriteBool writes a boolean payload byte.
func WriteBool(b []byte, v bool) {
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
}
