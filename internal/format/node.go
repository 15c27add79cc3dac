package format

import "github.com/kesselring/dartbuf/internal/buf"

// Header is the 8-byte prefix common to every object and array node (§6):
// a total_bytes field covering the node and all of its inline children,
// followed by a count field (number of keys or elements).
type Header struct {
	TotalBytes uint32
	Count      uint32
}

// ReadHeader decodes the node header at the start of b.
func ReadHeader(b []byte) Header {
	return Header{
		TotalBytes: buf.U32LE(b),
		Count:      buf.U32LE(b[4:]),
	}
}

// PutHeader writes h at the start of b.
func PutHeader(b []byte, h Header) {
	buf.PutU32LE(b, h.TotalBytes)
	buf.PutU32LE(b[4:], h.Count)
}

// ObjectVTableOffset is the byte offset of the key-vtable relative to the
// start of an object node.
func ObjectVTableOffset() int { return NodeHeaderSize }

// ArrayVTableOffset is the byte offset of the element vtable relative to
// the start of an array node.
func ArrayVTableOffset() int { return NodeHeaderSize }

// ObjectPayloadOffset returns the byte offset, relative to the start of an
// object node, at which key bytes and inline child payloads begin: after
// the header, the key vtable, and the value vtable.
func ObjectPayloadOffset(count int) int {
	return NodeHeaderSize + count*KeyEntrySize + count*EntrySize
}

// ArrayPayloadOffset returns the byte offset, relative to the start of an
// array node, at which inline element payloads begin.
func ArrayPayloadOffset(count int) int {
	return NodeHeaderSize + count*EntrySize
}
