package format

import (
	"testing"

	"github.com/kesselring/dartbuf/types"
)

func TestClassifyString(t *testing.T) {
	if got := ClassifyString(0); got != types.SmallString {
		t.Fatalf("ClassifyString(0) = %v", got)
	}
	if got := ClassifyString(types.MaxShortStringLength); got != types.SmallString {
		t.Fatalf("ClassifyString(max short) = %v", got)
	}
	if got := ClassifyString(types.MaxShortStringLength + 1); got != types.String {
		t.Fatalf("ClassifyString(max short + 1) = %v", got)
	}
	if got := ClassifyString(types.MaxStdStringLength + 1); got != types.BigString {
		t.Fatalf("ClassifyString(max std + 1) = %v", got)
	}
}

func TestWriteStringRoundTrip(t *testing.T) {
	s := []byte("hello")
	b := make([]byte, StringSizeof(types.SmallString, len(s)))

	rt := WriteString(b, s)
	if rt != types.SmallString {
		t.Fatalf("WriteString classified %v, want SmallString", rt)
	}

	length := ReadStringLen(rt, b)
	if length != len(s) {
		t.Fatalf("ReadStringLen = %d, want %d", length, len(s))
	}
	got := ReadStringBytes(rt, b, length)
	if string(got) != "hello" {
		t.Fatalf("ReadStringBytes = %q, want hello", got)
	}
	if !HasNULTerminator(rt, b, length) {
		t.Fatalf("expected NUL terminator")
	}
}

func TestWriteStringBigString(t *testing.T) {
	s := make([]byte, types.MaxStdStringLength+1)
	for i := range s {
		s[i] = 'a'
	}
	b := make([]byte, StringSizeof(types.BigString, len(s)))

	rt := WriteString(b, s)
	if rt != types.BigString {
		t.Fatalf("WriteString classified %v, want BigString", rt)
	}
	if ReadStringLen(rt, b) != len(s) {
		t.Fatalf("ReadStringLen mismatch for big string")
	}
	if !HasNULTerminator(rt, b, len(s)) {
		t.Fatalf("expected NUL terminator on big string")
	}
}
