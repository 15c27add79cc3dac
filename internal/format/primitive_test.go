package format

import (
	"testing"

	"github.com/kesselring/dartbuf/types"
)

func TestWriteIntChoosesNarrowestWidth(t *testing.T) {
	b := make([]byte, 8)

	if rt := WriteInt(b, 42); rt != types.ShortInteger {
		t.Fatalf("WriteInt(42) chose %v, want ShortInteger", rt)
	}
	if got := ReadInt(types.ShortInteger, b); got != 42 {
		t.Fatalf("ReadInt = %d, want 42", got)
	}

	if rt := WriteInt(b, 1<<20); rt != types.Integer {
		t.Fatalf("WriteInt(2^20) chose %v, want Integer", rt)
	}
	if got := ReadInt(types.Integer, b); got != 1<<20 {
		t.Fatalf("ReadInt = %d, want 2^20", got)
	}

	if rt := WriteInt(b, 1<<40); rt != types.LongInteger {
		t.Fatalf("WriteInt(2^40) chose %v, want LongInteger", rt)
	}
	if got := ReadInt(types.LongInteger, b); got != 1<<40 {
		t.Fatalf("ReadInt = %d, want 2^40", got)
	}
}

func TestWriteIntBoundary(t *testing.T) {
	b := make([]byte, 8)
	if rt := WriteInt(b, 1<<15-1); rt != types.ShortInteger {
		t.Fatalf("upper int16 bound chose %v", rt)
	}
	if rt := WriteInt(b, 1<<15); rt != types.Integer {
		t.Fatalf("int16+1 chose %v, want Integer", rt)
	}
}

func TestWriteDecimalChoosesFloat32WhenLossless(t *testing.T) {
	b := make([]byte, 8)
	if rt := WriteDecimal(b, 3.5); rt != types.Decimal {
		t.Fatalf("WriteDecimal(3.5) chose %v, want Decimal", rt)
	}
	if got := ReadDecimal(types.Decimal, b); got != 3.5 {
		t.Fatalf("ReadDecimal = %v, want 3.5", got)
	}
}

func TestWriteDecimalFallsBackToFloat64(t *testing.T) {
	b := make([]byte, 8)
	v := 0.1234567890123
	rt := WriteDecimal(b, v)
	if rt != types.LongDecimal {
		t.Fatalf("WriteDecimal(%v) chose %v, want LongDecimal", v, rt)
	}
	if got := ReadDecimal(types.LongDecimal, b); got != v {
		t.Fatalf("ReadDecimal = %v, want %v", got, v)
	}
}

func TestBoolRoundTrip(t *testing.T) {
	b := make([]byte, 1)
	WriteBool(b, true)
	if !ReadBool(b) {
		t.Fatalf("ReadBool = false, want true")
	}
	WriteBool(b, false)
	if ReadBool(b) {
		t.Fatalf("ReadBool = true, want false")
	}
}

func TestSizeof(t *testing.T) {
	cases := map[types.RawType]int{
		types.Null:         0,
		types.ShortInteger:  2,
		types.Integer:       4,
		types.Decimal:       4,
		types.LongInteger:   8,
		types.LongDecimal:   8,
		types.Boolean:       1,
	}
	for rt, want := range cases {
		if got := Sizeof(rt); got != want {
			t.Fatalf("Sizeof(%v) = %d, want %d", rt, got, want)
		}
	}
}
