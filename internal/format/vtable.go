package format

import (
	"github.com/kesselring/dartbuf/internal/buf"
	"github.com/kesselring/dartbuf/types"
)

// PackMeta packs a raw type tag and a 24-bit child offset into the u32 word
// stored in a vtable entry (§3 invariant 8, §6). Callers must pass the
// already-persisted type (types.RawType.PersistedType) so small_string
// collapses to String on the wire.
func PackMeta(rawType types.RawType, offset uint32) uint32 {
	return uint32(rawType)<<MetaTypeShift | (offset & MetaOffsetMask)
}

// UnpackMeta splits a vtable meta word back into its raw type tag and
// 24-bit offset.
func UnpackMeta(meta uint32) (rawType types.RawType, offset uint32) {
	return types.RawType(meta >> MetaTypeShift), meta & MetaOffsetMask
}

// ReadEntry reads a single array vtable entry (one meta word) at index i
// within an entries slice that starts at b.
func ReadEntry(b []byte, i int) uint32 {
	return buf.U32LE(b[i*EntrySize:])
}

// PutEntry writes a single array vtable entry.
func PutEntry(b []byte, i int, meta uint32) {
	buf.PutU32LE(b[i*EntrySize:], meta)
}

// PackPrefix packs up to PrefixCacheLen leading bytes of a key plus its
// saturating length into the second word of an object key-vtable entry
// (§3 invariants 9-10, §4.2). Keys longer than types.PrefixCacheLen bytes
// contribute only their first types.PrefixCacheLen bytes; keys longer than
// types.PrefixCacheSaturatedLen saturate the length byte at that value.
func PackPrefix(key []byte) uint32 {
	var p [types.PrefixCacheLen]byte
	n := len(key)
	if n > types.PrefixCacheLen {
		n = types.PrefixCacheLen
	}
	copy(p[:], key[:n])

	length := len(key)
	if length > types.PrefixCacheSaturatedLen {
		length = types.PrefixCacheSaturatedLen
	}

	return uint32(length)<<PrefixLenShift |
		uint32(p[0])<<PrefixByte0Shift |
		uint32(p[1])<<PrefixByte1Shift |
		uint32(p[2])<<PrefixByte2Shift
}

// UnpackPrefix splits a prefix_and_len word back into its cached prefix
// bytes and saturating length.
func UnpackPrefix(word uint32) (prefix [types.PrefixCacheLen]byte, length uint8) {
	prefix[0] = byte(word >> PrefixByte0Shift)
	prefix[1] = byte(word >> PrefixByte1Shift)
	prefix[2] = byte(word >> PrefixByte2Shift)
	length = byte(word >> PrefixLenShift)
	return prefix, length
}

// ComparePrefix compares a candidate key against a cached prefix word the
// same way CompareKeys would (§3 invariant 1: shorter keys sort first,
// equal-length keys compare bytewise), using only the cached length and
// leading bytes. A 0 result means the caller must fall through to a full
// key comparison: the cache only ever narrows candidates, it never by
// itself proves equality for keys longer than PrefixCacheLen, nor for
// keys at or beyond the saturating length PrefixCacheSaturatedLen.
func ComparePrefix(key []byte, word uint32) int {
	prefix, cachedLen := UnpackPrefix(word)
	keyLen := len(key)

	if cachedLen < types.PrefixCacheSaturatedLen {
		// The cached length is exact: resolve by length first, per
		// CompareKeys's ordering.
		if keyLen != int(cachedLen) {
			if keyLen < int(cachedLen) {
				return -1
			}
			return 1
		}
	} else if keyLen < types.PrefixCacheSaturatedLen {
		// cachedLen is the saturation sentinel: the stored key's actual
		// length is >= PrefixCacheSaturatedLen, so a shorter candidate
		// sorts first regardless of bytes.
		return -1
	}
	// Either lengths are known-equal, or both are at/beyond the
	// saturation threshold and length order is indeterminate from the
	// cache alone — fall through to a bytewise compare of the cached
	// prefix, which may still resolve the probe or leave it at 0.

	n := keyLen
	if n > types.PrefixCacheLen {
		n = types.PrefixCacheLen
	}
	for i := 0; i < types.PrefixCacheLen; i++ {
		var kb byte
		if i < n {
			kb = key[i]
		}
		if kb != prefix[i] {
			if kb < prefix[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CompareKeys implements the project's object-key comparator (§3
// invariant 1): shorter keys sort first; keys of equal length compare
// bytewise. Shared by every package that needs to walk or sort keys in
// the project's order (node.Object.find, finalize's layout writer,
// builder's merge/project).
func CompareKeys(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ReadKeyEntry reads the i-th key-vtable entry (two u32 words) from an
// entries slice that starts at b.
func ReadKeyEntry(b []byte, i int) (meta uint32, prefixWord uint32) {
	off := i * KeyEntrySize
	return buf.U32LE(b[off:]), buf.U32LE(b[off+4:])
}

// PutKeyEntry writes the i-th key-vtable entry.
func PutKeyEntry(b []byte, i int, meta, prefixWord uint32) {
	off := i * KeyEntrySize
	buf.PutU32LE(b[off:], meta)
	buf.PutU32LE(b[off+4:], prefixWord)
}
