// Package buf contains endian-safe decoding and encoding routines for the
// fixed-width scalars that appear inline in a finalized buffer (§4.1 of the
// format). Every multi-byte field in the format is little-endian regardless
// of host byte order; routing all reads and writes through encoding/binary
// (rather than pointer casts) makes that transparent for free.
package buf

import (
	"encoding/binary"
	"math"
)

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// I16LE reads a little-endian int16 from b.
func I16LE(b []byte) int16 {
	return int16(U16LE(b))
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	return int32(U32LE(b))
}

// I64LE reads a little-endian int64 from b.
func I64LE(b []byte) int64 {
	return int64(U64LE(b))
}

// F32LE reads a little-endian IEEE-754 float32 from b.
func F32LE(b []byte) float32 {
	return math.Float32frombits(U32LE(b))
}

// F64LE reads a little-endian IEEE-754 float64 from b.
func F64LE(b []byte) float64 {
	return math.Float64frombits(U64LE(b))
}

// PutU16LE writes v into b as little-endian. Panics if b is too short, same
// as encoding/binary.
func PutU16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutU32LE writes v into b as little-endian.
func PutU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PutU64LE writes v into b as little-endian.
func PutU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// PutI16LE writes v into b as little-endian.
func PutI16LE(b []byte, v int16) { PutU16LE(b, uint16(v)) }

// PutI32LE writes v into b as little-endian.
func PutI32LE(b []byte, v int32) { PutU32LE(b, uint32(v)) }

// PutI64LE writes v into b as little-endian.
func PutI64LE(b []byte, v int64) { PutU64LE(b, uint64(v)) }

// PutF32LE writes v into b as little-endian IEEE-754.
func PutF32LE(b []byte, v float32) { PutU32LE(b, math.Float32bits(v)) }

// PutF64LE writes v into b as little-endian IEEE-754.
func PutF64LE(b []byte, v float64) { PutU64LE(b, math.Float64bits(v)) }
