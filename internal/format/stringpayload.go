package format

import (
	"github.com/kesselring/dartbuf/internal/buf"
	"github.com/kesselring/dartbuf/types"
)

// StringSizeof returns the total payload size (length header + bytes + NUL
// terminator) for a string of n bytes encoded with the given raw type.
// small_string is accepted as an alias for string since they share a
// layout (§3); big_string is distinguished only by a wider length header.
func StringSizeof(t types.RawType, n int) int {
	return StringLenFieldSize(t) + n + 1
}

// StringLenFieldSize returns the width of a string node's length header:
// 2 bytes for small_string/string, 4 for big_string.
func StringLenFieldSize(t types.RawType) int {
	if t == types.BigString {
		return 4
	}
	return 2
}

// WriteString writes a string payload (length header, bytes, NUL
// terminator) to b and returns the raw type used, chosen by the
// width-selection rule in §3: length at or below the small-string
// threshold yields small_string, at or below UINT16_MAX yields string,
// otherwise big_string.
func WriteString(b []byte, s []byte) types.RawType {
	t := ClassifyString(len(s))
	if t == types.BigString {
		buf.PutU32LE(b, uint32(len(s)))
		copy(b[4:], s)
		b[4+len(s)] = 0
		return t
	}
	buf.PutU16LE(b, uint16(len(s)))
	copy(b[2:], s)
	b[2+len(s)] = 0
	return t
}

// ClassifyString returns the raw type a string of length n should be
// persisted as.
func ClassifyString(n int) types.RawType {
	switch {
	case n <= types.MaxShortStringLength:
		return types.SmallString
	case n <= types.MaxStdStringLength:
		return types.String
	default:
		return types.BigString
	}
}

// ReadStringLen decodes a string node's length field.
func ReadStringLen(t types.RawType, b []byte) int {
	if t == types.BigString {
		return int(buf.U32LE(b))
	}
	return int(buf.U16LE(b))
}

// ReadStringBytes returns the string payload bytes (excluding the length
// header and the trailing NUL) given the node's already-decoded length.
func ReadStringBytes(t types.RawType, b []byte, length int) []byte {
	off := StringLenFieldSize(t)
	return b[off : off+length]
}

// HasNULTerminator reports whether the byte immediately following a
// string's payload bytes is NUL, per §3 invariant 7. Validators call this;
// normal reads trust a previously validated buffer and skip the check.
func HasNULTerminator(t types.RawType, b []byte, length int) bool {
	off := StringLenFieldSize(t) + length
	return off < len(b) && b[off] == 0
}
