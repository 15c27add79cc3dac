// Package node is the read-only public API over a finalized buffer (§3,
// §4.4, §4.5): zero-copy Value/Object/Array views backed by a
// reference-counted, immutable byte slice. Nothing in this package mutates
// bytes; mutation happens only in the tree package, before finalization.
package node

import (
	"github.com/kesselring/dartbuf/refcount"
	"github.com/kesselring/dartbuf/types"
)

// Buffer is a finalized document's backing bytes plus its reference count
// (§3 "Ownership and lifecycle", §9 Open Questions on atomic vs. plain
// counters). All Values extracted from the same document share one Buffer.
//
// A node's own bytes carry no type tag — the tag lives in the parent
// vtable entry that points at it (§6). The root node has no parent entry,
// so its raw type travels alongside the bytes instead, fixed at the point
// the document was finalized (finalize.Finalize records it).
type Buffer struct {
	bytes    []byte
	rootType types.RawType
	counter  refcount.Counter
}

// NewBuffer wraps finalized bytes with a reference count starting at one.
// rootType is the root node's raw type (object or array — a finalized
// document's root is always a container, per §3/§4.8). atomic selects
// between the two counter policies (§5); pass true when the buffer will be
// read from more than one goroutine, false for single-goroutine use.
// release, if non-nil, runs once when the last reference is dropped (e.g.
// to munmap a memory-mapped source).
func NewBuffer(bytes []byte, rootType types.RawType, atomic bool, release func()) *Buffer {
	var c refcount.Counter
	if atomic {
		c = refcount.NewAtomicCounter(release)
	} else {
		c = refcount.NewPlainCounter(release)
	}
	return &Buffer{bytes: bytes, rootType: rootType, counter: c}
}

// Bytes returns the finalized document's raw bytes, valid as long as the
// caller holds a reference (has called Retain without a matching Release).
func (b *Buffer) Bytes() []byte { return b.bytes }

// Retain increments the reference count, returning b for chaining.
func (b *Buffer) Retain() *Buffer {
	b.counter.Retain()
	return b
}

// Release decrements the reference count, running the release callback
// when it reaches zero.
func (b *Buffer) Release() {
	b.counter.Release()
}

// Root returns the document's root Value, located at byte offset 0.
func (b *Buffer) Root() Value {
	return Value{buf: b, rawType: b.rootType, off: 0}
}
