// Package format encodes and decodes the byte-exact finalized buffer layout
// (§3, §6 of the spec): node headers, vtable entries, and primitive/string
// payloads. It has no knowledge of the tree form, reference counting, or
// merge/validate semantics — those live in higher packages. Everything here
// is pure, allocation-free decoding and encoding of fixed byte shapes.
package format

const (
	// NodeHeaderSize is the size in bytes of the header common to every
	// object and array node: a u32 total_bytes field followed by a u32
	// count field (§6).
	NodeHeaderSize = 8

	// EntrySize is the size in bytes of a single array vtable entry (one
	// packed u32 meta word).
	EntrySize = 4

	// KeyEntrySize is the size in bytes of a single object key-vtable
	// entry: a u32 meta word followed by a u32 prefix_and_len word (§6).
	KeyEntrySize = 8

	// MetaTypeShift is the bit position of the raw_type byte within a
	// packed meta word.
	MetaTypeShift = 24

	// MetaOffsetMask isolates the 24-bit offset field of a packed meta
	// word.
	MetaOffsetMask = 0x00FFFFFF

	// PrefixLenShift is the bit position of the saturating length byte
	// (the most significant byte) within a prefix_and_len word, and
	// PrefixByte0Shift, PrefixByte1Shift, PrefixByte2Shift are the bit
	// positions of the three cached prefix bytes (§3, §4.2).
	PrefixLenShift  = 24
	PrefixByte0Shift = 16
	PrefixByte1Shift = 8
	PrefixByte2Shift = 0
)
