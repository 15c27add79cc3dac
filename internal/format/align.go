package format

import "github.com/kesselring/dartbuf/types"

// Alignment utilities for the finalized buffer format (§6). Every node and
// the top-level buffer itself must begin on an 8-byte boundary so that
// scalar fields can be read without unaligned-access penalties.

const alignMask = 7

// Align8 returns n rounded up to the next 8-byte boundary.
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + alignMask) & ^alignMask
}

// Align8U32 is the uint32 counterpart of Align8, for sizes tracked as
// uint32 to match the on-disk field width.
func Align8U32(n uint32) uint32 {
	return (n + alignMask) & ^uint32(alignMask)
}

// IsAligned8 reports whether n already sits on an 8-byte boundary.
func IsAligned8(n int) bool {
	return n&alignMask == 0
}

// AlignmentOf returns the byte alignment a persisted raw type requires, per
// §3's alignment table: object/array and the 8-byte scalars (long_integer,
// long_decimal) need 8; integer, decimal, and big_string's 4-byte length
// header need 4; short_integer and string/small_string's 2-byte length
// header need 2; boolean and null have no alignment requirement beyond 1.
// The validator (validate.Bytes) uses it to reject a child whose offset
// does not satisfy its own type's requirement; the layout writer
// (finalize/layout.go) places children with its own childAlignment.
func AlignmentOf(t types.RawType) int {
	switch t {
	case types.Object, types.Array, types.LongInteger, types.LongDecimal:
		return 8
	case types.Integer, types.Decimal, types.BigString:
		return 4
	case types.ShortInteger, types.String, types.SmallString:
		return 2
	default:
		return 1
	}
}

// IsAlignedTo reports whether n is a multiple of the given alignment.
func IsAlignedTo(n, alignment int) bool {
	return n%alignment == 0
}
