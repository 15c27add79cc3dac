package node

// ObjectCursor is an explicit iterator state machine over an Object's
// key/value pairs (§4.9, §9), for callers that want to pause and resume
// traversal rather than pass a callback to Each.
type ObjectCursor struct {
	obj Object
	i   int
}

// Next advances the cursor and reports whether a pair is available.
func (c *ObjectCursor) Next() bool {
	c.i++
	return c.i < c.obj.Len()
}

// Key returns the current pair's key. Valid only after Next returns true.
func (c *ObjectCursor) Key() string {
	return c.obj.KeyAt(c.i)
}

// Value returns the current pair's value. Valid only after Next returns
// true.
func (c *ObjectCursor) Value() Value {
	return c.obj.ValueAt(c.i)
}

// Reset rewinds the cursor to before the first pair.
func (c *ObjectCursor) Reset() {
	c.i = -1
}

// ArrayCursor is an explicit iterator state machine over an Array's
// elements.
type ArrayCursor struct {
	arr Array
	i   int
}

// Next advances the cursor and reports whether an element is available.
func (c *ArrayCursor) Next() bool {
	c.i++
	return c.i < c.arr.Len()
}

// Index returns the current element's position.
func (c *ArrayCursor) Index() int {
	return c.i
}

// Value returns the current element. Valid only after Next returns true.
func (c *ArrayCursor) Value() Value {
	return c.arr.Get(c.i)
}

// Reset rewinds the cursor to before the first element.
func (c *ArrayCursor) Reset() {
	c.i = -1
}
