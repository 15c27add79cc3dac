// Package finalize converts a mutable tree.Value into an immutable
// finalized node.Buffer (C6 size estimator, C7 layout writer, and the
// buffer->tree direction used by lift), and back. Grounded on hivekit's
// hive/builder/helpers.go (size accounting) and internal/edit/alloc.go
// (allocation-size bookkeeping), generalized from registry cell sizing to
// dartbuf's object/array/scalar sizing rules (§4.6, §4.7).
package finalize

import (
	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// estimateSize returns an upper bound on the bytes needed to finalize v,
// per §4.6. The estimate is deliberately loose (it pads every child by up
// to its alignment - 1) so the caller can allocate once and never need to
// grow mid-layout.
func estimateSize(v tree.Value) (int, error) {
	switch v.Kind() {
	case types.LogicalNull:
		return 0, nil
	case types.LogicalBoolean:
		return format.Sizeof(types.Boolean), nil
	case types.LogicalInteger:
		return format.Sizeof(types.LongInteger), nil
	case types.LogicalDecimal:
		return format.Sizeof(types.LongDecimal), nil
	case types.LogicalString:
		return format.StringSizeof(types.BigString, len(v.String())), nil
	case types.LogicalArray:
		return estimateArray(v)
	case types.LogicalObject:
		return estimateObject(v)
	default:
		return 0, types.StateError("unrecognized tree value kind")
	}
}

func estimateArray(v tree.Value) (int, error) {
	count := v.Len()
	total := format.NodeHeaderSize + (count+1)*format.EntrySize
	for i := 0; i < count; i++ {
		child := v.AtIndex(i)
		childSize, err := estimateSize(child)
		if err != nil {
			return 0, err
		}
		total += childSize + childAlignment(child) - 1
	}
	return checkBudget(total)
}

func estimateObject(v tree.Value) (int, error) {
	count := v.Len()
	total := format.NodeHeaderSize + (count+1)*format.KeyEntrySize + (count+1)*format.EntrySize
	var estErr error
	v.Each(func(key string, val tree.Value) bool {
		keySize := format.StringSizeof(types.BigString, len(key))
		valSize, err := estimateSize(val)
		if err != nil {
			estErr = err
			return false
		}
		total += keySize + types.BufferAlignment - 1
		total += valSize + childAlignment(val) - 1
		return true
	})
	if estErr != nil {
		return 0, estErr
	}
	return checkBudget(total)
}

func checkBudget(total int) (int, error) {
	total = format.Align8(total)
	if total > types.MaxNodeSize {
		return 0, types.BufferTooLarge(total)
	}
	return total, nil
}

// childAlignment returns the byte alignment v's persisted raw type
// requires (§3 "Alignment").
func childAlignment(v tree.Value) int {
	switch v.Kind() {
	case types.LogicalObject, types.LogicalArray:
		return 8
	case types.LogicalInteger:
		return 8 // conservative: widest possible width (long_integer) is 8-aligned
	case types.LogicalDecimal:
		return 8 // conservative: widest possible width (long_decimal) is 8-aligned
	case types.LogicalString:
		return 4 // conservative: big_string's length header is 4-byte aligned
	default:
		return 1
	}
}
