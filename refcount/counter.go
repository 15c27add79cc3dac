// Package refcount implements the two buffer ownership policies a finalized
// document can use (§5, §9 Open Questions): an atomic counter safe to share
// across goroutines, and a plain counter for single-goroutine use that
// avoids atomic-instruction overhead. The policy is chosen once, at buffer
// construction, and never crossed — a Counter created by one constructor is
// never substituted for the other on the same buffer.
package refcount

// Counter tracks the number of live references to a finalized buffer's
// backing bytes. Release runs the owner's cleanup exactly once, on the
// transition from 1 reference to 0.
type Counter interface {
	// Retain increments the reference count and returns the new count.
	Retain() int64

	// Release decrements the reference count. When the count reaches
	// zero it invokes the release callback passed at construction
	// exactly once and returns true; further calls after the count has
	// reached zero return false without invoking the callback again.
	Release() bool

	// Count returns the current reference count. Intended for tests and
	// diagnostics, not for synchronization decisions.
	Count() int64
}
