package dart

import (
	"github.com/kesselring/dartbuf/node"
	"github.com/kesselring/dartbuf/packet"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// Equal compares two packets for structural equality regardless of which
// representation each holds (§4.11): if their logical kinds differ it is
// false; aggregates recurse by key (objects) or index (arrays); scalars
// compare their logical value regardless of storage width (an int16 and
// an int64 holding 7 compare equal). A and b may independently be in
// tree or buffer form — all four combinations are supported directly,
// without first lifting or finalizing either side.
func Equal(a, b packet.Packet) bool {
	at, aIsTree := a.AsTree()
	ab, aIsBuf := a.AsBuffer()
	bt, bIsTree := b.AsTree()
	bb, bIsBuf := b.AsBuffer()

	switch {
	case aIsTree && bIsTree:
		return equalTreeTree(at, bt)
	case aIsBuf && bIsBuf:
		return equalBufBuf(ab.Root(), bb.Root())
	case aIsTree && bIsBuf:
		return equalTreeBuf(at, bb.Root())
	case aIsBuf && bIsTree:
		return equalTreeBuf(bt, ab.Root())
	default:
		return false // one or both packets are empty
	}
}

func equalTreeTree(a, b tree.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case types.LogicalObject:
		if a.Len() != b.Len() {
			return false
		}
		for _, k := range a.Keys() {
			bv, ok := b.Get(k)
			if !ok || !equalTreeTree(a.At(k), bv) {
				return false
			}
		}
		return true
	case types.LogicalArray:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalTreeTree(a.AtIndex(i), b.AtIndex(i)) {
				return false
			}
		}
		return true
	case types.LogicalString:
		return a.String() == b.String()
	case types.LogicalInteger:
		return a.Int64() == b.Int64()
	case types.LogicalDecimal:
		return a.Float64() == b.Float64()
	case types.LogicalBoolean:
		return a.Bool() == b.Bool()
	default: // LogicalNull
		return true
	}
}

func equalBufBuf(a, b node.Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case types.LogicalObject:
		ao, bo := a.Object(), b.Object()
		if ao.Len() != bo.Len() {
			return false
		}
		for i := 0; i < ao.Len(); i++ {
			bv, ok := bo.Get(ao.KeyAt(i))
			if !ok || !equalBufBuf(ao.ValueAt(i), bv) {
				return false
			}
		}
		return true
	case types.LogicalArray:
		aa, ba := a.Array(), b.Array()
		if aa.Len() != ba.Len() {
			return false
		}
		for i := 0; i < aa.Len(); i++ {
			if !equalBufBuf(aa.At(i), ba.At(i)) {
				return false
			}
		}
		return true
	case types.LogicalString:
		return a.String() == b.String()
	case types.LogicalInteger:
		return a.Int64() == b.Int64()
	case types.LogicalDecimal:
		return a.Float64() == b.Float64()
	case types.LogicalBoolean:
		return a.Bool() == b.Bool()
	default: // LogicalNull
		return true
	}
}

func equalTreeBuf(t tree.Value, n node.Value) bool {
	if t.Kind() != n.Kind() {
		return false
	}
	switch t.Kind() {
	case types.LogicalObject:
		no := n.Object()
		if t.Len() != no.Len() {
			return false
		}
		for _, k := range t.Keys() {
			nv, ok := no.Get(k)
			if !ok || !equalTreeBuf(t.At(k), nv) {
				return false
			}
		}
		return true
	case types.LogicalArray:
		na := n.Array()
		if t.Len() != na.Len() {
			return false
		}
		for i := 0; i < t.Len(); i++ {
			if !equalTreeBuf(t.AtIndex(i), na.At(i)) {
				return false
			}
		}
		return true
	case types.LogicalString:
		return t.String() == n.String()
	case types.LogicalInteger:
		return t.Int64() == n.Int64()
	case types.LogicalDecimal:
		return t.Float64() == n.Float64()
	case types.LogicalBoolean:
		return t.Bool() == n.Bool()
	default: // LogicalNull
		return true
	}
}
