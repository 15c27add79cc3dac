// Package types holds the error taxonomy and small value types shared across
// every dartbuf package: the tree, the finalized buffer, the builder, and the
// validator all report failures through the same typed Error.
package types

import "fmt"

// ErrKind classifies an Error so callers can branch on intent rather than on
// message text.
type ErrKind int

const (
	ErrKindTypeMismatch ErrKind = iota
	ErrKindKeyMissing
	ErrKindIndexOutOfRange
	ErrKindDuplicateKey
	ErrKindKeyTooLong
	ErrKindBufferTooLarge
	ErrKindMisalignedBuffer
	ErrKindValidationFailed
	ErrKindStateError
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindTypeMismatch:
		return "TypeMismatch"
	case ErrKindKeyMissing:
		return "KeyMissing"
	case ErrKindIndexOutOfRange:
		return "IndexOutOfRange"
	case ErrKindDuplicateKey:
		return "DuplicateKey"
	case ErrKindKeyTooLong:
		return "KeyTooLong"
	case ErrKindBufferTooLarge:
		return "BufferTooLarge"
	case ErrKindMisalignedBuffer:
		return "MisalignedBuffer"
	case ErrKindValidationFailed:
		return "ValidationFailed"
	case ErrKindStateError:
		return "StateError"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is the typed error every dartbuf package returns. Err, when set,
// carries the lower-level cause (a bounds failure, an underlying I/O error).
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers can
// do errors.Is(err, &types.Error{Kind: types.ErrKindKeyMissing}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrap(kind ErrKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// TypeMismatch reports that a value was accessed as the wrong logical type.
func TypeMismatch(want, got string) *Error {
	return newf(ErrKindTypeMismatch, "expected %s, got %s", want, got)
}

// KeyMissing reports that At(key) found no matching key.
func KeyMissing(key string) *Error {
	return newf(ErrKindKeyMissing, "key %q not found", key)
}

// IndexOutOfRange reports that At(i) was called with i >= count.
func IndexOutOfRange(i, count int) *Error {
	return newf(ErrKindIndexOutOfRange, "index %d out of range [0,%d)", i, count)
}

// DuplicateKey reports that a build operation saw the same key twice.
func DuplicateKey(key string) *Error {
	return newf(ErrKindDuplicateKey, "duplicate key %q", key)
}

// KeyTooLong reports a key exceeding UINT16_MAX bytes.
func KeyTooLong(length int) *Error {
	return newf(ErrKindKeyTooLong, "key length %d exceeds maximum %d", length, MaxKeyLength)
}

// BufferTooLarge reports a node whose size would exceed the 24-bit offset
// budget.
func BufferTooLarge(size int) *Error {
	return newf(ErrKindBufferTooLarge, "node size %d exceeds maximum %d", size, MaxNodeSize)
}

// MisalignedBuffer reports a top-level buffer pointer that isn't 8-byte
// aligned.
func MisalignedBuffer(addr uintptr) *Error {
	return newf(ErrKindMisalignedBuffer, "buffer address 0x%x is not 8-byte aligned", addr)
}

// ValidationFailed wraps a validator failure with the underlying cause.
func ValidationFailed(cause error) *Error {
	return wrap(ErrKindValidationFailed, cause, "buffer failed validation")
}

// StateError reports an operation that isn't permitted in the value's
// current representation, e.g. mutating a finalized value.
func StateError(msg string) *Error {
	return newf(ErrKindStateError, "%s", msg)
}
