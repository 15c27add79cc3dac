package node

import (
	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/types"
)

// Array is a zero-copy view over an array node (§4.4, C4): an ordered,
// unkeyed sequence of values addressed by index.
type Array struct {
	Value
	header format.Header
}

// Len returns the number of elements.
func (a Array) Len() int {
	return int(a.header.Count)
}

func (a Array) entry(i int) uint32 {
	base := a.off + format.NodeHeaderSize
	return format.ReadEntry(a.buf.bytes[base:], i)
}

// Get returns the element at i, or a null Value if i is out of range
// (absent-as-null policy, §4.4).
func (a Array) Get(i int) Value {
	if i < 0 || i >= a.Len() {
		return Value{rawType: types.Null}
	}
	return a.Value.child(a.entry(i))
}

// At returns the element at i, panicking with *types.Error(IndexOutOfRange)
// if i is out of bounds.
func (a Array) At(i int) Value {
	if i < 0 || i >= a.Len() {
		panic(types.IndexOutOfRange(i, a.Len()))
	}
	return a.Value.child(a.entry(i))
}

// Each calls fn for every element in index order. Each stops and returns
// immediately if fn returns false.
func (a Array) Each(fn func(i int, v Value) bool) {
	for i := 0; i < a.Len(); i++ {
		if !fn(i, a.Value.child(a.entry(i))) {
			return
		}
	}
}

// Cursor returns an explicit iterator over a's elements (§4.9, §9).
func (a Array) Cursor() *ArrayCursor {
	return &ArrayCursor{arr: a, i: -1}
}
