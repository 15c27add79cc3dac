// Package docbuilder is a high-level, path-based builder over the tree
// form (SPEC_FULL.md §0.2 supplement): a thin convenience layer so callers
// don't have to walk tree.Value objects by hand to assemble a document one
// field at a time. Grounded on hivekit's hive/builder/builder.go (path-based
// SetString/SetDWORD/EnsureKey/DeleteKey/DeleteValue/Commit/Rollback/Close
// API), adapted from hive's disk-backed, progressively-flushed registry
// builder to an in-memory tree builder: dartbuf has no on-disk
// incremental-write format to progressively flush into (§4.7's layout
// writer always writes a document in one pass), so Commit here finalizes
// the accumulated tree in one shot instead of flushing operation batches.
package docbuilder

import (
	"errors"

	"github.com/kesselring/dartbuf/finalize"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// ErrClosed is returned by any operation attempted after Commit or Close.
var ErrClosed = errors.New("docbuilder: builder is closed")

// ErrEmptyPath is returned when a path-based operation is given no segments.
var ErrEmptyPath = errors.New("docbuilder: path cannot be empty")

// Builder accumulates path-addressed mutations against an in-memory root
// object and finalizes them into a node.Buffer on Commit.
//
// Thread safety: Builder instances are NOT thread-safe, matching the
// teacher's own convention (hive/builder.Builder) — use one builder per
// goroutine.
type Builder struct {
	root   tree.Value
	closed bool
}

// New returns a Builder over a fresh, empty root object.
func New() *Builder {
	return &Builder{root: tree.NewObject()}
}

// ensurePath walks/creates nested objects along path[:len(path)-1] and
// returns the parent object value that the final path segment should be
// set on or deleted from.
func ensurePath(root tree.Value, path []string) tree.Value {
	cur := root
	for _, seg := range path[:len(path)-1] {
		child, ok := cur.Get(seg)
		if !ok || child.Kind() != types.LogicalObject {
			// A non-object value already occupying this segment is
			// silently replaced, matching hive/builder's EnsureKey
			// behavior of creating whatever key scaffolding a path needs.
			child = tree.NewObject()
			cur.SetKey(seg, child)
		}
		cur = child
	}
	return cur
}

// SetValue sets the value at path to v, creating any missing intermediate
// objects along the way (the generic setter every type-specific helper
// below delegates to, mirroring hive/builder.Builder.SetValue).
func (b *Builder) SetValue(path []string, v tree.Value) error {
	if b.closed {
		return ErrClosed
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	parent := ensurePath(b.root, path)
	parent.SetKey(path[len(path)-1], v)
	return nil
}

// SetString sets a string value at path.
func (b *Builder) SetString(path []string, s string) error {
	return b.SetValue(path, tree.NewString(s))
}

// SetInt sets an integer value at path.
func (b *Builder) SetInt(path []string, n int64) error {
	return b.SetValue(path, tree.NewInt(n))
}

// SetFloat sets a decimal value at path.
func (b *Builder) SetFloat(path []string, f float64) error {
	return b.SetValue(path, tree.NewFloat(f))
}

// SetBool sets a boolean value at path.
func (b *Builder) SetBool(path []string, v bool) error {
	return b.SetValue(path, tree.NewBool(v))
}

// SetNull sets an explicit null value at path.
func (b *Builder) SetNull(path []string) error {
	return b.SetValue(path, tree.Null())
}

// EnsureKey creates path as an empty object if it does not already exist,
// without disturbing an existing value there.
func (b *Builder) EnsureKey(path []string) error {
	if b.closed {
		return ErrClosed
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	parent := ensurePath(b.root, path)
	last := path[len(path)-1]
	if !parent.HasKey(last) {
		parent.SetKey(last, tree.NewObject())
	}
	return nil
}

// DeleteKey removes the value at path, if present. It is idempotent,
// matching hive/builder.Builder.DeleteValue's idempotent contract.
func (b *Builder) DeleteKey(path []string) error {
	if b.closed {
		return ErrClosed
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}
	parent := ensurePath(b.root, path)
	parent.DeleteKey(path[len(path)-1])
	return nil
}

// Commit finalizes the accumulated document into a node.Buffer using the
// atomic refcount policy. After Commit the builder is closed and cannot
// be reused, matching hive/builder.Builder.Commit's one-shot contract.
func (b *Builder) Commit() (*node.Buffer, error) {
	if b.closed {
		return nil, ErrClosed
	}
	buf, err := finalize.FinalizeAtomic(b.root)
	if err != nil {
		return nil, err
	}
	b.closed = true
	return buf, nil
}

// Close discards the builder without finalizing, matching
// hive/builder.Builder.Close's defer-safe discard-on-early-return idiom.
func (b *Builder) Close() {
	b.closed = true
}
