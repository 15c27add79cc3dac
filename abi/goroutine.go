package abi

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the calling goroutine's numeric ID by parsing the
// "goroutine N [running]:" line runtime.Stack always emits first. This is
// the standard stdlib-only trick Go programs reach for when they need a
// per-goroutine key and the runtime exposes no direct accessor; no third
// party in the example pack wraps goroutine-local storage, so this single
// helper is implemented directly on runtime.Stack rather than importing
// one (see DESIGN.md).
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if i := bytes.Index(b, []byte(prefix)); i >= 0 {
		b = b[i+len(prefix):]
	}
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}

	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
