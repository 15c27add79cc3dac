package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a
	// structure to be decoded.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrBoundsCheck indicates a decoded offset or length would reach
	// outside the buffer.
	ErrBoundsCheck = errors.New("format: buffer bounds exceeded")

	// ErrSanityLimit indicates a decoded count or size exceeded a sanity
	// limit, guarding against integer overflow on malformed input.
	ErrSanityLimit = errors.New("format: value exceeds sanity limit")

	// ErrBadRawType indicates a vtable entry's type byte is not a
	// recognized types.RawType.
	ErrBadRawType = errors.New("format: unrecognized raw type")
)
