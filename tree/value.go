// Package tree is the mutable, heap-allocated JSON-shaped value used to
// build and edit a document before finalization (§4.12, C12). It has no
// alignment or offset concerns — those exist only in the finalized form
// built by the finalize package. Grounded on hivekit's internal/edit
// change-tracking structures (changeIndex's map+ordered-list pairing),
// generalized from registry-path edits to JSON value construction.
package tree

import "github.com/kesselring/dartbuf/types"

// Value is a mutable JSON-shaped value: an object, array, string, integer,
// decimal, boolean, or null. The zero Value is Null.
type Value struct {
	kind   types.Logical
	obj    *object
	arr    *[]Value
	str    string
	i64    int64
	f64    float64
	bool_  bool
}

// Null returns the null value.
func Null() Value { return Value{kind: types.LogicalNull} }

// NewString returns a string value.
func NewString(s string) Value { return Value{kind: types.LogicalString, str: s} }

// NewInt returns an integer value.
func NewInt(v int64) Value { return Value{kind: types.LogicalInteger, i64: v} }

// NewFloat returns a decimal value. Panics if v is NaN or infinite — those
// have no JSON representation to round-trip through (§3's decimal width
// selection only makes sense for finite values).
func NewFloat(v float64) Value {
	if v != v || v > maxFinite || v < -maxFinite {
		panic(types.TypeMismatch("finite decimal", "NaN/Inf"))
	}
	return Value{kind: types.LogicalDecimal, f64: v}
}

const maxFinite = 1.7976931348623157e+308

// NewBool returns a boolean value.
func NewBool(v bool) Value { return Value{kind: types.LogicalBoolean, bool_: v} }

// NewObject returns an empty, insertion-ordered object value.
func NewObject() Value {
	return Value{kind: types.LogicalObject, obj: newObject()}
}

// NewArray returns an empty array value, optionally seeded with elems.
func NewArray(elems ...Value) Value {
	s := append([]Value(nil), elems...)
	return Value{kind: types.LogicalArray, arr: &s}
}

// Kind returns v's logical type.
func (v Value) Kind() types.Logical { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == types.LogicalNull }

// String returns v's string payload. Panics if v is not a string.
func (v Value) String() string {
	v.mustBe(types.LogicalString)
	return v.str
}

// Int64 returns v's integer payload. Panics if v is not an integer.
func (v Value) Int64() int64 {
	v.mustBe(types.LogicalInteger)
	return v.i64
}

// Float64 returns v's decimal payload. Panics if v is not a decimal.
func (v Value) Float64() float64 {
	v.mustBe(types.LogicalDecimal)
	return v.f64
}

// Bool returns v's boolean payload. Panics if v is not a boolean.
func (v Value) Bool() bool {
	v.mustBe(types.LogicalBoolean)
	return v.bool_
}

func (v Value) mustBe(want types.Logical) {
	if v.kind != want {
		panic(types.TypeMismatch(want.String(), v.kind.String()))
	}
}
