// Package dart is the top-level facade (C11): it re-exports the
// tree<->buffer transition glue (finalize/lift) under one import so a
// caller assembling a document doesn't need to reach into the finalize
// package directly, and it is where cross-representation equality lives
// (§4.11) since comparing a tree.Value against a node.Value is a concern
// that belongs to neither side alone. Grounded on hivekit's own top-level
// hive package, which is the single entry point gluing hive.Open (on-disk
// form) to hive/edit (mutable planning form) the same way dart glues
// tree.Value to node.Buffer.
package dart

import (
	"github.com/kesselring/dartbuf/finalize"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/tree"
)

// Finalize builds a finalized node.Buffer from v using the plain
// (non-atomic) refcount policy.
func Finalize(v tree.Value) (*node.Buffer, error) {
	return finalize.Finalize(v)
}

// FinalizeAtomic builds a finalized node.Buffer from v using the atomic
// refcount policy, for buffers shared across goroutines.
func FinalizeAtomic(v tree.Value) (*node.Buffer, error) {
	return finalize.FinalizeAtomic(v)
}

// Lift reconstructs a mutable tree.Value from buf's root, deep-copying
// every string and scalar so the result is independent of buf.
func Lift(buf *node.Buffer) tree.Value {
	return finalize.Lift(buf)
}
