package tree

import "github.com/kesselring/dartbuf/types"

// object is an insertion-ordered map from key to Value. Order is preserved
// until finalization, at which point the writer sorts keys under the
// project's comparator (§3 invariant 1); the tree form itself carries no
// sorting concern, matching how hivekit's changeIndex keeps a path->node
// map alongside an ordered path list rather than sorting eagerly.
type object struct {
	order []string
	index map[string]int // key -> position in order
	vals  map[string]Value
}

func newObject() *object {
	return &object{index: make(map[string]int), vals: make(map[string]Value)}
}

// Len returns the number of keys of an object or elements of an array.
func (v Value) Len() int {
	switch v.kind {
	case types.LogicalObject:
		return len(v.obj.order)
	case types.LogicalArray:
		return len(*v.arr)
	default:
		panic(types.TypeMismatch("object or array", v.kind.String()))
	}
}

// Get returns the value at key and true, or the zero Value and false if
// absent. Panics if v is not an object.
func (v Value) Get(key string) (Value, bool) {
	v.mustBe(types.LogicalObject)
	val, ok := v.obj.vals[key]
	return val, ok
}

// At returns the value at key, panicking with *types.Error(KeyMissing) if
// absent.
func (v Value) At(key string) Value {
	val, ok := v.Get(key)
	if !ok {
		panic(types.KeyMissing(key))
	}
	return val
}

// HasKey reports whether key is present. Panics if v is not an object.
func (v Value) HasKey(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// SetKey inserts or overwrites key with val, preserving key's original
// insertion position on overwrite. Panics if v is not an object.
func (v Value) SetKey(key string, val Value) {
	v.mustBe(types.LogicalObject)
	if _, exists := v.obj.vals[key]; !exists {
		v.obj.index[key] = len(v.obj.order)
		v.obj.order = append(v.obj.order, key)
	}
	v.obj.vals[key] = val
}

// DeleteKey removes key if present. Panics if v is not an object.
func (v Value) DeleteKey(key string) {
	v.mustBe(types.LogicalObject)
	pos, ok := v.obj.index[key]
	if !ok {
		return
	}
	delete(v.obj.vals, key)
	delete(v.obj.index, key)
	v.obj.order = append(v.obj.order[:pos], v.obj.order[pos+1:]...)
	for i := pos; i < len(v.obj.order); i++ {
		v.obj.index[v.obj.order[i]] = i
	}
}

// Keys returns v's keys in insertion order. Panics if v is not an object.
func (v Value) Keys() []string {
	v.mustBe(types.LogicalObject)
	out := make([]string, len(v.obj.order))
	copy(out, v.obj.order)
	return out
}

// Each calls fn for every key/value pair in insertion order. Each stops
// and returns immediately if fn returns false. Panics if v is not an
// object.
func (v Value) Each(fn func(key string, val Value) bool) {
	v.mustBe(types.LogicalObject)
	for _, k := range v.obj.order {
		if !fn(k, v.obj.vals[k]) {
			return
		}
	}
}
