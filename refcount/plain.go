package refcount

// PlainCounter is a Counter for buffers that never cross a goroutine
// boundary — building and consuming a document entirely within one
// goroutine's call stack avoids the overhead of atomic increments.
type PlainCounter struct {
	n       int64
	release func()
	done    bool
}

// NewPlainCounter returns a Counter starting at one live reference. release
// is invoked exactly once, when the count drops to zero.
func NewPlainCounter(release func()) *PlainCounter {
	return &PlainCounter{n: 1, release: release}
}

func (c *PlainCounter) Retain() int64 {
	c.n++
	return c.n
}

func (c *PlainCounter) Release() bool {
	c.n--
	if c.n > 0 || c.done {
		return false
	}
	c.done = true
	if c.release != nil {
		c.release()
	}
	return true
}

func (c *PlainCounter) Count() int64 {
	return c.n
}
