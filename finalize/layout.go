package finalize

import (
	"sort"

	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/tree"
	"github.com/kesselring/dartbuf/types"
)

// alignUp rounds off up to the next multiple of align (a power of two).
func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}

// writeValue writes v at buf[base:] and returns the raw type actually
// used and the number of bytes written (§4.7). buf must already be
// zero-filled for the region it writes into — padding is never written
// explicitly, it relies on the pre-zeroed buffer (load-bearing for
// byte-wise equality of finalized documents, §4.7).
func writeValue(buf []byte, base int, v tree.Value) (types.RawType, int, error) {
	switch v.Kind() {
	case types.LogicalNull:
		return types.Null, 0, nil
	case types.LogicalBoolean:
		format.WriteBool(buf[base:], v.Bool())
		return types.Boolean, format.Sizeof(types.Boolean), nil
	case types.LogicalInteger:
		rt := format.WriteInt(buf[base:], v.Int64())
		return rt, format.Sizeof(rt), nil
	case types.LogicalDecimal:
		rt := format.WriteDecimal(buf[base:], v.Float64())
		return rt, format.Sizeof(rt), nil
	case types.LogicalString:
		s := []byte(v.String())
		rt := format.WriteString(buf[base:], s)
		return rt, format.StringSizeof(rt, len(s)), nil
	case types.LogicalArray:
		return writeArray(buf, base, v)
	case types.LogicalObject:
		return writeObject(buf, base, v)
	default:
		return 0, 0, types.StateError("unrecognized tree value kind")
	}
}

func writeArray(buf []byte, base int, v tree.Value) (types.RawType, int, error) {
	count := v.Len()
	offset := format.ArrayPayloadOffset(count)

	for i := 0; i < count; i++ {
		child := v.AtIndex(i)
		offset = alignUp(offset, childAlignment(child))
		rt, size, err := writeValue(buf, base+offset, child)
		if err != nil {
			return 0, 0, err
		}
		format.PutEntry(buf[base+format.NodeHeaderSize:], i, format.PackMeta(rt.PersistedType(), uint32(offset)))
		offset += size
	}

	total := format.Align8(offset)
	format.PutHeader(buf[base:], format.Header{TotalBytes: uint32(total), Count: uint32(count)})
	return types.Array, total, nil
}

// sortedKeys returns v's keys ordered by the object comparator (§3
// invariant 1: length ascending, then lexicographic bytes).
func sortedKeys(v tree.Value) []string {
	keys := v.Keys()
	sort.Slice(keys, func(i, j int) bool {
		return format.CompareKeys([]byte(keys[i]), []byte(keys[j])) < 0
	})
	return keys
}

func writeObject(buf []byte, base int, v tree.Value) (types.RawType, int, error) {
	keys := sortedKeys(v)
	count := len(keys)

	keyVTableOff := format.NodeHeaderSize
	valueVTableOff := format.NodeHeaderSize + count*format.KeyEntrySize
	offset := format.NodeHeaderSize + count*format.KeyEntrySize + count*format.EntrySize

	// Keys first, contiguous, in sorted order (§3 object node layout).
	for i, key := range keys {
		offset = alignUp(offset, 2)
		kb := []byte(key)
		rt := format.WriteString(buf[base+offset:], kb)
		format.PutKeyEntry(buf[base+keyVTableOff:], i, format.PackMeta(rt.PersistedType(), uint32(offset)), format.PackPrefix(kb))
		offset += format.StringSizeof(rt, len(kb))
	}

	// Then values, same index order as their keys.
	for i, key := range keys {
		val, _ := v.Get(key)
		offset = alignUp(offset, childAlignment(val))
		rt, size, err := writeValue(buf, base+offset, val)
		if err != nil {
			return 0, 0, err
		}
		format.PutEntry(buf[base+valueVTableOff:], i, format.PackMeta(rt.PersistedType(), uint32(offset)))
		offset += size
	}

	total := format.Align8(offset)
	format.PutHeader(buf[base:], format.Header{TotalBytes: uint32(total), Count: uint32(count)})
	return types.Object, total, nil
}
