package types

const (
	// MaxKeyLength is the largest permitted object key length (§3 invariant 3).
	MaxKeyLength = 0xFFFF

	// MaxShortStringLength is the inline small-string optimization threshold.
	// Strings at or below this length are classified SmallString at
	// construction time (§3); persisted layout is identical to String.
	MaxShortStringLength = 15

	// MaxStdStringLength is the largest string representable with a u16
	// length field.
	MaxStdStringLength = 0xFFFF

	// MaxOffset is the largest offset encodable in a vtable entry's 24-bit
	// offset field (§3 invariant 8).
	MaxOffset = 1<<24 - 1

	// MaxNodeSize is the largest total_bytes a single object or array plus
	// its inline children may occupy (~16 MiB).
	MaxNodeSize = MaxOffset

	// PrefixCacheLen is the number of leading key bytes cached in an object
	// vtable entry (§3, §4.2). The normative binary layout (§6) packs a key
	// entry as two u32 words: meta, then a single prefix_and_len word. That
	// word holds the saturating length byte plus the prefix, leaving room
	// for 3 prefix bytes rather than the 4 the prose mentions in passing;
	// this implementation follows the bit-exact §6 layout (see DESIGN.md).
	PrefixCacheLen = 3

	// PrefixCacheSaturatedLen is the saturating length value stored when the
	// true key length exceeds what a single byte can represent (§3
	// invariant 9).
	PrefixCacheSaturatedLen = 255

	// BufferAlignment is the alignment required of a finalized buffer's
	// backing address (§6).
	BufferAlignment = 8
)
