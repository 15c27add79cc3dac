// Package builder is the buffer builder (C8): building a finalized object
// from scratch, merging two finalized objects, and projecting a finalized
// object onto a requested key set, all producing a new finalized
// node.Buffer (§4.8 — merge and project operate directly on finalized
// buffers, not by round-tripping through the tree form, except where
// lifting a surviving child is unavoidable to re-lay it out in the new
// buffer). Grounded on hivekit's hive/merge/session.go (plan application
// entry point) and hive/merge/walk_apply.go (the dual-cursor walk this
// package's Merge follows exactly in structure); hive/builder/builder.go
// grounds the higher-level path-based docbuilder package instead.
package builder

import (
	"sort"

	"github.com/kesselring/dartbuf/finalize"
	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// Pair is one key/value pair supplied to BuildObject.
type Pair struct {
	Key   string
	Value tree.Value
}

// BuildObject validates pairs (unique, length-bounded keys) and finalizes
// a new object built from them (§4.8 build_object).
func BuildObject(pairs []Pair) (*node.Buffer, error) {
	obj := tree.NewObject()
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if len(p.Key) > types.MaxKeyLength {
			return nil, types.KeyTooLong(len(p.Key))
		}
		if _, dup := seen[p.Key]; dup {
			return nil, types.DuplicateKey(p.Key)
		}
		seen[p.Key] = struct{}{}
		obj.SetKey(p.Key, p.Value)
	}
	return finalize.Finalize(obj)
}

// Merge produces a new finalized object whose keys are the union of
// base's and incoming's; on duplicate keys, incoming wins (§4.8
// merge_buffers, precise dual-cursor walk below).
func Merge(base, incoming node.Object) (*node.Buffer, error) {
	out := tree.NewObject()

	i, j := 0, 0
	bn, in := base.Len(), incoming.Len()

	for j < in {
		for i < bn {
			bk, ik := []byte(base.KeyAt(i)), []byte(incoming.KeyAt(j))
			cmp := format.CompareKeys(bk, ik)
			switch {
			case cmp < 0:
				out.SetKey(base.KeyAt(i), finalize.LiftValue(base.ValueAt(i)))
				i++
			case cmp == 0:
				i++ // duplicate dropped; incoming wins below
			default:
			}
			if cmp >= 0 {
				break
			}
		}
		for j < in {
			atEnd := i >= bn
			if atEnd {
				out.SetKey(incoming.KeyAt(j), finalize.LiftValue(incoming.ValueAt(j)))
				j++
				continue
			}
			if format.CompareKeys([]byte(incoming.KeyAt(j)), []byte(base.KeyAt(i))) <= 0 {
				out.SetKey(incoming.KeyAt(j), finalize.LiftValue(incoming.ValueAt(j)))
				if format.CompareKeys([]byte(incoming.KeyAt(j)), []byte(base.KeyAt(i))) == 0 {
					i++
				}
				j++
				continue
			}
			break
		}
	}
	for ; i < bn; i++ {
		out.SetKey(base.KeyAt(i), finalize.LiftValue(base.ValueAt(i)))
	}

	return finalize.Finalize(out)
}

// Project produces a new finalized object containing only base's keys
// that also appear in requestedKeys (§4.8 project_keys).
func Project(base node.Object, requestedKeys []string) (*node.Buffer, error) {
	sorted := append([]string(nil), requestedKeys...)
	sort.Slice(sorted, func(a, b int) bool {
		return format.CompareKeys([]byte(sorted[a]), []byte(sorted[b])) < 0
	})

	out := tree.NewObject()
	bi, ri := 0, 0
	bn, rn := base.Len(), len(sorted)
	for bi < bn && ri < rn {
		cmp := format.CompareKeys([]byte(base.KeyAt(bi)), []byte(sorted[ri]))
		switch {
		case cmp == 0:
			out.SetKey(base.KeyAt(bi), finalize.LiftValue(base.ValueAt(bi)))
			bi++
			ri++
		case cmp < 0:
			bi++
		default:
			ri++
		}
	}

	return finalize.Finalize(out)
}
