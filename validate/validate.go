// Package validate implements the finalized-buffer validator (C10, §4.10):
// verifying an untrusted byte slice is a safe, self-consistent document
// before any navigator (package node) touches it. Grounded on hivekit's
// hive/verify/verify.go (the ValidationError{Type, Message, Offset,
// Details} shape and its AllInvariants aggregator, carried forward per
// SPEC_FULL.md §0.2's diagnostics supplement) and pkg/types/api.go's
// stack-based, non-recursive NKRefIntegrity/VKRefIntegrity graph walk
// (generalized here from NK subkey-list traversal to vtable-child
// traversal).
package validate

import (
	"fmt"

	"github.com/kesselring/dartbuf/internal/format"
	"github.com/kesselring/dartbuf/types"
)

// ValidationError describes one failed invariant check, with enough
// structure for callers to build diagnostics tooling on top of (the
// dartctl validate subcommand formats these).
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func fail(typ, offset int, format_ string, args ...any) *ValidationError {
	return &ValidationError{Type: typeNames[typ], Message: fmt.Sprintf(format_, args...), Offset: offset}
}

const (
	checkLength = iota
	checkSelfConsistency
	checkVTableBounds
	checkTypeWellFormed
	checkChildOffsets
	checkAlignment
	checkStringNUL
)

var typeNames = [...]string{
	checkLength:          "Length",
	checkSelfConsistency: "SelfConsistency",
	checkVTableBounds:    "VTableBounds",
	checkTypeWellFormed:  "TypeWellFormed",
	checkChildOffsets:    "ChildOffsets",
	checkAlignment:       "Alignment",
	checkStringNUL:       "StringNUL",
}

// Bytes validates data as a finalized document whose root is rootType
// (object or array — the root's type is not wire-encoded per §6, it is
// the caller's out-of-band contract with the embedder, exactly as §6
// states for the external ABI). Bytes is the throw_on_error mode (§4.10):
// it returns the first ValidationError encountered, or nil.
func Bytes(data []byte, rootType types.RawType) error {
	if rootType != types.Object && rootType != types.Array {
		return types.TypeMismatch("object or array root", rootType.String())
	}
	return validateNode(data, 0, rootType)
}

// IsValid is the silent_bool mode (§4.10): it returns false on any
// failure without allocating a ValidationError.
func IsValid(data []byte, rootType types.RawType) bool {
	return Bytes(data, rootType) == nil
}

// workItem is one pending node to validate, used by the iterative
// (non-recursive) walk below so a maliciously deep document cannot blow
// the Go call stack — the same stack-based defense pkg/types/api.go's
// NKRefIntegrity uses against deep/cyclic subkey graphs.
type workItem struct {
	base     int
	rawType  types.RawType
	budget   int // bytes remaining in the enclosing buffer from base
}

func validateNode(data []byte, base int, rawType types.RawType) error {
	stack := []workItem{{base: base, rawType: rawType, budget: len(data) - base}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := validateOneNode(data, item.base, item.rawType, item.budget)
		if err != nil {
			return err
		}
		stack = append(stack, children...)
	}
	return nil
}

// validateOneNode validates a single node's header, vtable, and child
// offset invariants (checks 1-6 of §4.10) and returns the child work
// items to push onto the traversal stack (check 7, recursion).
func validateOneNode(data []byte, base int, rawType types.RawType, budget int) ([]workItem, error) {
	if rawType != types.Object && rawType != types.Array {
		// Scalars have no further structure to validate beyond what
		// their parent's offset/size bookkeeping already checked.
		return nil, nil
	}

	// Check 1: length.
	if budget < format.NodeHeaderSize {
		return nil, fail(checkLength, base, "remaining bytes %d < node header size %d", budget, format.NodeHeaderSize)
	}

	h := format.ReadHeader(data[base:])

	// Check 2: self-consistency.
	if int(h.TotalBytes) > budget {
		return nil, fail(checkSelfConsistency, base, "total_bytes %d exceeds remaining %d", h.TotalBytes, budget)
	}
	if !format.IsAligned8(int(h.TotalBytes)) {
		return nil, fail(checkSelfConsistency, base, "total_bytes %d is not 8-byte aligned", h.TotalBytes)
	}

	count := int(h.Count)
	entrySize := format.EntrySize
	if rawType == types.Object {
		entrySize = format.KeyEntrySize
	}
	vtableEnd := format.NodeHeaderSize + count*entrySize
	if rawType == types.Object {
		vtableEnd += count * format.EntrySize // value vtable follows the key vtable
	}

	// Check 3: vtable bounds.
	if vtableEnd > int(h.TotalBytes) {
		return nil, fail(checkVTableBounds, base, "vtable end %d exceeds total_bytes %d", vtableEnd, h.TotalBytes)
	}

	var children []workItem
	prevOffset := -1

	visitEntry := func(meta uint32, entryOffsetForErr int) error {
		rt, off := format.UnpackMeta(meta)

		// Check 4: type well-formedness.
		if !rt.Valid() {
			return fail(checkTypeWellFormed, base+entryOffsetForErr, "unrecognized raw type tag %d", rt)
		}

		// Null entries have no payload (their offset may equal the next
		// child's); they never participate in the monotonicity/bounds
		// checks below.
		if rt == types.Null {
			return nil
		}

		// Check 5: child offsets — strictly increasing (rules out
		// cycles/back-references) and within total_bytes.
		if int(off) <= prevOffset {
			return fail(checkChildOffsets, base+entryOffsetForErr, "offset %d is not strictly greater than previous offset %d", off, prevOffset)
		}
		prevOffset = int(off)

		// Check 5 (continued): alignment — every child offset must
		// satisfy its own type's alignment requirement (§3's alignment
		// table, §4.10 check 5's aligned_pointer clause).
		if align := format.AlignmentOf(rt); !format.IsAlignedTo(int(off), align) {
			return fail(checkAlignment, base+entryOffsetForErr, "offset %d is not %d-byte aligned for type %s", off, align, rt)
		}

		childSize, err := sizeofChild(data, base, rt, int(off), int(h.TotalBytes))
		if err != nil {
			return err
		}
		if int(off)+childSize > int(h.TotalBytes) {
			return fail(checkChildOffsets, base+entryOffsetForErr, "child at offset %d size %d exceeds total_bytes %d", off, childSize, h.TotalBytes)
		}

		if rt == types.Object || rt == types.Array {
			children = append(children, workItem{base: base + int(off), rawType: rt, budget: int(h.TotalBytes) - int(off)})
		} else if rt == types.String || rt == types.SmallString || rt == types.BigString {
			// Check 6: string NUL termination.
			length := format.ReadStringLen(rt, data[base+int(off):])
			if !format.HasNULTerminator(rt, data[base+int(off):], length) {
				return fail(checkStringNUL, base+int(off), "string missing NUL terminator")
			}
		}
		return nil
	}

	if rawType == types.Object {
		for i := 0; i < count; i++ {
			meta, _ := format.ReadKeyEntry(data[base+format.NodeHeaderSize:], i)
			if err := visitEntry(meta, format.NodeHeaderSize+i*format.KeyEntrySize); err != nil {
				return nil, err
			}
		}
		prevOffset = -1
		valueVTableBase := format.NodeHeaderSize + count*format.KeyEntrySize
		for i := 0; i < count; i++ {
			meta := format.ReadEntry(data[base+valueVTableBase:], i)
			if err := visitEntry(meta, valueVTableBase+i*format.EntrySize); err != nil {
				return nil, err
			}
		}
	} else {
		for i := 0; i < count; i++ {
			meta := format.ReadEntry(data[base+format.NodeHeaderSize:], i)
			if err := visitEntry(meta, format.NodeHeaderSize+i*format.EntrySize); err != nil {
				return nil, err
			}
		}
	}

	return children, nil
}

// sizeofChild returns the byte size a child at the given offset occupies,
// used to check it fits within the parent's total_bytes. Container sizes
// come from their own header (read here without full validation — the
// work item pushed for that child will validate it in full); scalar sizes
// are computed directly.
func sizeofChild(data []byte, parentBase int, rt types.RawType, off, totalBytes int) (int, error) {
	abs := parentBase + off
	switch rt {
	case types.Object, types.Array:
		if abs+format.NodeHeaderSize > len(data) {
			return 0, fail(checkChildOffsets, abs, "truncated child node header")
		}
		return int(format.ReadHeader(data[abs:]).TotalBytes), nil
	case types.String, types.SmallString, types.BigString:
		if abs+format.StringLenFieldSize(rt) > len(data) {
			return 0, fail(checkChildOffsets, abs, "truncated string length header")
		}
		length := format.ReadStringLen(rt, data[abs:])
		return format.StringSizeof(rt, length), nil
	case types.Null:
		return 0, nil
	default:
		return format.Sizeof(rt), nil
	}
}
