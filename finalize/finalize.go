package finalize

import (
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// Finalize builds a finalized node.Buffer from v (§4.7, §4.11). v's root
// must be an object or array; a bare scalar has no vtable to describe it
// from outside and is not a valid document root (§3). The returned
// buffer's ownership uses the plain (non-atomic) refcount policy; callers
// that need a buffer shared across goroutines should use FinalizeAtomic.
func Finalize(v tree.Value) (*node.Buffer, error) {
	return finalize(v, false)
}

// FinalizeAtomic is Finalize but with the atomic refcount policy (§5, §9).
func FinalizeAtomic(v tree.Value) (*node.Buffer, error) {
	return finalize(v, true)
}

func finalize(v tree.Value, atomic bool) (*node.Buffer, error) {
	if v.Kind() != types.LogicalObject && v.Kind() != types.LogicalArray {
		return nil, types.TypeMismatch("object or array root", v.Kind().String())
	}

	size, err := estimateSize(v)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	rootType, total, err := writeValue(buf, 0, v)
	if err != nil {
		return nil, err
	}
	buf = buf[:total]

	return node.NewBuffer(buf, rootType, atomic, nil), nil
}

// Lift walks a finalized document and constructs an equivalent mutable
// tree.Value, copying string and scalar payloads (§4.11). The returned
// tree is independent of buf: mutating it has no effect on the finalized
// bytes, and buf may be released once Lift returns.
func Lift(buf *node.Buffer) tree.Value {
	return LiftValue(buf.Root())
}

// LiftValue lifts a single finalized node.Value (and, recursively, its
// children) into a mutable tree.Value.
func LiftValue(v node.Value) tree.Value {
	switch v.Kind() {
	case types.LogicalNull:
		return tree.Null()
	case types.LogicalBoolean:
		return tree.NewBool(v.Bool())
	case types.LogicalInteger:
		return tree.NewInt(v.Int64())
	case types.LogicalDecimal:
		return tree.NewFloat(v.Float64())
	case types.LogicalString:
		return tree.NewString(v.String())
	case types.LogicalArray:
		arr := v.Array()
		out := tree.NewArray()
		arr.Each(func(i int, elem node.Value) bool {
			out.Append(LiftValue(elem))
			return true
		})
		return out
	case types.LogicalObject:
		obj := v.Object()
		out := tree.NewObject()
		obj.Each(func(key string, val node.Value) bool {
			out.SetKey(key, LiftValue(val))
			return true
		})
		return out
	default:
		return tree.Null()
	}
}
