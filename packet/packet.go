// Package packet implements the tagged union over the two document
// representations (§4.13, C13): a tree.Value being edited, or a finalized
// node.Buffer ready for storage/transfer, never both at once. Grounded on
// hivekit's transition points between hive.Hive (on-disk form) and
// hive/edit (mutable planning form) — §4.11's glue generalized here into
// an explicit sum type rather than two separate top-level entry points,
// since dartbuf callers routinely hold "a document, I don't yet know
// which form" state (e.g. a docbuilder mid-edit that a caller wants to
// hand off for storage).
package packet

import (
	"github.com/kesselring/dartbuf/finalize"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// state identifies which of Packet's two forms, if either, is active.
type state int

const (
	stateEmpty state = iota
	stateTree
	stateBuffer
)

// Packet holds either a tree.Value or a *node.Buffer, tagged by which is
// active. The zero Packet is a valid empty state; FromTree and FromBuffer
// build packets holding one form.
type Packet struct {
	st  state
	t   tree.Value
	buf *node.Buffer
}

// FromTree wraps v as a tree-form packet.
func FromTree(v tree.Value) Packet {
	return Packet{st: stateTree, t: v}
}

// FromBuffer wraps buf as a buffer-form packet.
func FromBuffer(buf *node.Buffer) Packet {
	return Packet{st: stateBuffer, buf: buf}
}

// IsEmpty reports whether p holds neither form.
func (p Packet) IsEmpty() bool { return p.st == stateEmpty }

// AsTree returns p's tree value and true if p is in tree form, or the zero
// Value and false otherwise. It never panics.
func (p Packet) AsTree() (tree.Value, bool) {
	if p.st != stateTree {
		return tree.Value{}, false
	}
	return p.t, true
}

// AsBuffer returns p's buffer and true if p is in buffer form, or nil and
// false otherwise. It never panics.
func (p Packet) AsBuffer() (*node.Buffer, bool) {
	if p.st != stateBuffer {
		return nil, false
	}
	return p.buf, true
}

// Finalize returns a new buffer-form packet holding the finalized form of
// p's tree value (§4.11/§4.13); p itself is left unchanged. It returns p
// as is if p is already in buffer form. It errors if p is empty.
func (p Packet) Finalize() (Packet, error) {
	switch p.st {
	case stateBuffer:
		return p, nil
	case stateTree:
		buf, err := finalize.Finalize(p.t)
		if err != nil {
			return Packet{}, err
		}
		return FromBuffer(buf), nil
	default:
		return Packet{}, types.StateError("packet holds no value to finalize")
	}
}

// Lift returns a new tree-form packet holding a fresh tree reconstructed
// from p's buffer (§4.11/§4.13); p itself is left unchanged. It returns p
// as is if p is already in tree form. It errors if p is empty.
func (p Packet) Lift() (Packet, error) {
	switch p.st {
	case stateTree:
		return p, nil
	case stateBuffer:
		return FromTree(finalize.Lift(p.buf)), nil
	default:
		return Packet{}, types.StateError("packet holds no value to lift")
	}
}
