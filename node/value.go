package node

import (
	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/types"
)

// Value is a zero-copy view over one element of a finalized document: a
// raw type tag plus an offset into the shared Buffer. It does not own
// memory — constructing or copying a Value never allocates or touches
// the backing bytes until an accessor is called. This mirrors hivekit's
// NK/VK/LI views (buf + offset, no eager decode).
type Value struct {
	buf     *Buffer
	rawType types.RawType
	off     int
}

// Kind returns the value's logical type (§3's seven-member value domain).
func (v Value) Kind() types.Logical {
	return v.rawType.Logical()
}

// RawType returns the value's machine-level type tag.
func (v Value) RawType() types.RawType {
	return v.rawType
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.rawType == types.Null
}

func (v Value) bytes() []byte {
	return v.buf.bytes[v.off:]
}

// Int64 returns v's value as an int64. It panics with a *types.Error if v
// is not an integer; callers that prefer an error return should check
// Kind() first.
func (v Value) Int64() int64 {
	if v.Kind() != types.LogicalInteger {
		panic(types.TypeMismatch("integer", v.Kind().String()))
	}
	return format.ReadInt(v.rawType, v.bytes())
}

// Float64 returns v's value as a float64, widening a decimal payload if
// necessary. It panics with a *types.Error if v is not a decimal.
func (v Value) Float64() float64 {
	if v.Kind() != types.LogicalDecimal {
		panic(types.TypeMismatch("decimal", v.Kind().String()))
	}
	return format.ReadDecimal(v.rawType, v.bytes())
}

// Bool returns v's boolean value. It panics with a *types.Error if v is
// not a boolean.
func (v Value) Bool() bool {
	if v.Kind() != types.LogicalBoolean {
		panic(types.TypeMismatch("boolean", v.Kind().String()))
	}
	return format.ReadBool(v.bytes())
}

// String returns v's string value as a freshly-copied Go string. It
// panics with a *types.Error if v is not a string. The returned string
// does not alias the buffer; callers needing a zero-copy view should use
// StringBytes instead.
func (v Value) String() string {
	return string(v.StringBytes())
}

// StringBytes returns v's string payload bytes, a slice aliasing the
// backing buffer (valid only as long as the caller holds a Buffer
// reference). It panics with a *types.Error if v is not a string.
func (v Value) StringBytes() []byte {
	if v.Kind() != types.LogicalString {
		panic(types.TypeMismatch("string", v.Kind().String()))
	}
	b := v.bytes()
	length := format.ReadStringLen(v.rawType, b)
	return format.ReadStringBytes(v.rawType, b, length)
}

// Object returns v as an Object view. It panics with a *types.Error if v
// is not an object.
func (v Value) Object() Object {
	if v.rawType != types.Object {
		panic(types.TypeMismatch("object", v.Kind().String()))
	}
	return Object{Value: v, header: format.ReadHeader(v.bytes())}
}

// Array returns v as an Array view. It panics with a *types.Error if v is
// not an array.
func (v Value) Array() Array {
	if v.rawType != types.Array {
		panic(types.TypeMismatch("array", v.Kind().String()))
	}
	return Array{Value: v, header: format.ReadHeader(v.bytes())}
}

// child constructs the Value for a vtable entry's meta word, whose offset
// is relative to v's own node base.
func (v Value) child(meta uint32) Value {
	rt, off := format.UnpackMeta(meta)
	return Value{buf: v.buf, rawType: rt, off: v.off + int(off)}
}
