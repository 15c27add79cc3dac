package format

import (
	"testing"

	"github.com/kesselring/dartbuf/types"
)

func TestPackUnpackMeta(t *testing.T) {
	meta := PackMeta(types.Integer, 0x00ABCDEF)
	rt, off := UnpackMeta(meta)
	if rt != types.Integer {
		t.Fatalf("rawType = %v, want Integer", rt)
	}
	if off != 0x00ABCDEF {
		t.Fatalf("offset = 0x%x, want 0x00abcdef", off)
	}
}

func TestPackMetaMasksOffset(t *testing.T) {
	meta := PackMeta(types.Object, 0xFFFFFFFF)
	_, off := UnpackMeta(meta)
	if off != types.MaxOffset {
		t.Fatalf("offset = 0x%x, want masked to 0x%x", off, types.MaxOffset)
	}
}

func TestPackUnpackPrefixShortKey(t *testing.T) {
	word := PackPrefix([]byte("ab"))
	prefix, length := UnpackPrefix(word)
	if length != 2 {
		t.Fatalf("length = %d, want 2", length)
	}
	if prefix[0] != 'a' || prefix[1] != 'b' || prefix[2] != 0 {
		t.Fatalf("prefix = %v, want [a b 0]", prefix)
	}
}

func TestPackUnpackPrefixLongKey(t *testing.T) {
	key := []byte("abcdefgh")
	word := PackPrefix(key)
	prefix, length := UnpackPrefix(word)
	if length != 8 {
		t.Fatalf("length = %d, want 8", length)
	}
	if prefix[0] != 'a' || prefix[1] != 'b' || prefix[2] != 'c' {
		t.Fatalf("prefix = %v, want first 3 bytes of key", prefix)
	}
}

func TestPackPrefixSaturates(t *testing.T) {
	key := make([]byte, 300)
	for i := range key {
		key[i] = 'x'
	}
	word := PackPrefix(key)
	_, length := UnpackPrefix(word)
	if length != types.PrefixCacheSaturatedLen {
		t.Fatalf("length = %d, want saturated %d", length, types.PrefixCacheSaturatedLen)
	}
}

func TestComparePrefix(t *testing.T) {
	word := PackPrefix([]byte("bob"))
	if ComparePrefix([]byte("bob"), word) != 0 {
		t.Fatalf("expected equal prefixes to compare 0")
	}
	// "alice" (len 5) sorts after "bob" (len 3): length compares before
	// bytes, per CompareKeys's ordering (§3 invariant 1).
	if ComparePrefix([]byte("alice"), word) <= 0 {
		t.Fatalf("expected alice > bob (longer key sorts later)")
	}
	// "carl" (len 4) also sorts after "bob" (len 3) by length alone.
	if ComparePrefix([]byte("carl"), word) <= 0 {
		t.Fatalf("expected carl > bob")
	}
}

// TestComparePrefixLengthBeforeBytes exercises keys whose leading bytes
// disagree with their length order: "b" < "aa" because length is
// compared first, even though 'b' > 'a' bytewise.
func TestComparePrefixLengthBeforeBytes(t *testing.T) {
	wordAA := PackPrefix([]byte("aa"))
	if cmp := ComparePrefix([]byte("b"), wordAA); cmp >= 0 {
		t.Fatalf("ComparePrefix(\"b\", prefix(\"aa\")) = %d, want < 0", cmp)
	}

	wordB := PackPrefix([]byte("b"))
	if cmp := ComparePrefix([]byte("aa"), wordB); cmp <= 0 {
		t.Fatalf("ComparePrefix(\"aa\", prefix(\"b\")) = %d, want > 0", cmp)
	}
}

func TestKeyEntryRoundTrip(t *testing.T) {
	b := make([]byte, KeyEntrySize*2)
	PutKeyEntry(b, 0, PackMeta(types.String, 16), PackPrefix([]byte("id")))
	PutKeyEntry(b, 1, PackMeta(types.Integer, 32), PackPrefix([]byte("value")))

	meta0, word0 := ReadKeyEntry(b, 0)
	rt0, off0 := UnpackMeta(meta0)
	if rt0 != types.String || off0 != 16 {
		t.Fatalf("entry 0 decoded wrong: type=%v off=%d", rt0, off0)
	}
	if ComparePrefix([]byte("id"), word0) != 0 {
		t.Fatalf("entry 0 prefix mismatch")
	}

	meta1, _ := ReadKeyEntry(b, 1)
	rt1, off1 := UnpackMeta(meta1)
	if rt1 != types.Integer || off1 != 32 {
		t.Fatalf("entry 1 decoded wrong: type=%v off=%d", rt1, off1)
	}
}

func TestArrayEntryRoundTrip(t *testing.T) {
	b := make([]byte, EntrySize*3)
	PutEntry(b, 0, PackMeta(types.Boolean, 8))
	PutEntry(b, 1, PackMeta(types.Null, 0))
	PutEntry(b, 2, PackMeta(types.Decimal, 24))

	rt, off := UnpackMeta(ReadEntry(b, 2))
	if rt != types.Decimal || off != 24 {
		t.Fatalf("entry 2 decoded wrong: type=%v off=%d", rt, off)
	}
}
