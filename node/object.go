package node

import (
	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/types"
)

// Object is a zero-copy view over an object node (§4.5, C5): an ordered
// set of key/value pairs, keys sorted by (length, then lexicographic
// bytes) — not standard lexicographic order.
type Object struct {
	Value
	header format.Header
}

// Len returns the number of key/value pairs.
func (o Object) Len() int {
	return int(o.header.Count)
}

// keyEntry returns the meta and prefix words of the i-th key-vtable entry.
func (o Object) keyEntry(i int) (meta, prefixWord uint32) {
	base := o.off + format.NodeHeaderSize
	return format.ReadKeyEntry(o.buf.bytes[base:], i)
}

// valueEntry returns the meta word of the i-th value-vtable entry, stored
// immediately after all n key-vtable entries (§3 object node layout).
func (o Object) valueEntry(i int) uint32 {
	base := o.off + format.NodeHeaderSize + o.Len()*format.KeyEntrySize
	return format.ReadEntry(o.buf.bytes[base:], i)
}

// keyBytes returns the i-th key's full bytes, loaded via its vtable
// offset (a zero-copy slice into the buffer).
func (o Object) keyBytes(i int) []byte {
	meta, _ := o.keyEntry(i)
	_, off := format.UnpackMeta(meta)
	base := o.off + int(off)
	b := o.buf.bytes[base:]
	length := format.ReadStringLen(types.String, b)
	return format.ReadStringBytes(types.String, b, length)
}

// KeyAt returns the i-th key as a string, in sorted order.
func (o Object) KeyAt(i int) string {
	return string(o.keyBytes(i))
}

// ValueAt returns the i-th value, in the same order as KeyAt.
func (o Object) ValueAt(i int) Value {
	return o.Value.child(o.valueEntry(i))
}

// Get returns the value for key and true, or the zero Value and false if
// key is absent. Lookup is a binary search over the key vtable
// accelerated by each entry's prefix cache (§4.5): a non-zero prefix
// comparison resolves the probe without loading the key; a zero result
// falls back to a full key compare.
func (o Object) Get(key string) (Value, bool) {
	i, ok := o.find([]byte(key))
	if !ok {
		return Value{}, false
	}
	return o.ValueAt(i), true
}

// At returns the value for key, panicking with *types.Error(KeyMissing)
// if absent.
func (o Object) At(key string) Value {
	v, ok := o.Get(key)
	if !ok {
		panic(types.KeyMissing(key))
	}
	return v
}

// HasKey reports whether key is present.
func (o Object) HasKey(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// find performs the bisection described in §4.5 and returns the matching
// index, or (0, false) on miss.
func (o Object) find(key []byte) (int, bool) {
	lo, hi := 0, o.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		_, prefixWord := o.keyEntry(mid)

		cmp := format.ComparePrefix(key, prefixWord)
		if cmp == 0 {
			// Prefix cache is indeterminate (equal prefix, or the true
			// key is longer than the cache can represent) — fall back
			// to a full compare against the actual key bytes.
			cmp = format.CompareKeys(key, o.keyBytes(mid))
		}

		switch {
		case cmp == 0:
			return mid, true
		case cmp < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return 0, false
}

// Keys returns all keys in sorted order, as a freshly-allocated slice.
func (o Object) Keys() []string {
	keys := make([]string, o.Len())
	for i := range keys {
		keys[i] = o.KeyAt(i)
	}
	return keys
}

// Each calls fn for every key/value pair in sorted order. Each stops and
// returns immediately if fn returns false.
func (o Object) Each(fn func(key string, v Value) bool) {
	for i := 0; i < o.Len(); i++ {
		if !fn(o.KeyAt(i), o.ValueAt(i)) {
			return
		}
	}
}

// Cursor returns an explicit iterator over o's pairs (§4.9, §9).
func (o Object) Cursor() *ObjectCursor {
	return &ObjectCursor{obj: o, i: -1}
}
