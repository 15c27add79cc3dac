package tree

import "github.com/kesselring/dartbuf/types"

// AtIndex returns the element at i. Panics if v is not an array or i is
// out of range.
func (v Value) AtIndex(i int) Value {
	v.mustBe(types.LogicalArray)
	if i < 0 || i >= len(*v.arr) {
		panic(types.IndexOutOfRange(i, len(*v.arr)))
	}
	return (*v.arr)[i]
}

// Append adds val to the end of the array. Panics if v is not an array.
func (v Value) Append(val Value) {
	v.mustBe(types.LogicalArray)
	*v.arr = append(*v.arr, val)
}

// SetIndex overwrites the element at i. Panics if v is not an array or i
// is out of range.
func (v Value) SetIndex(i int, val Value) {
	v.mustBe(types.LogicalArray)
	if i < 0 || i >= len(*v.arr) {
		panic(types.IndexOutOfRange(i, len(*v.arr)))
	}
	(*v.arr)[i] = val
}

// Elements returns a copy of v's backing slice. Panics if v is not an
// array.
func (v Value) Elements() []Value {
	v.mustBe(types.LogicalArray)
	out := make([]Value, len(*v.arr))
	copy(out, *v.arr)
	return out
}
