package treap

// Cursor references one position of a Tree: a live entry or End. It keeps
// the chain of ancestors of its node so it can step in either direction
// without parent links in the nodes.
//
// Cursors are not goroutine-safe and do not own anything. Use Clone to get
// an independent copy; assigning a *Cursor shares it.
type Cursor[K, V any] struct {
	t        *Tree[K, V]
	node     int32
	gen      uint32
	instance uint64
	mods     uint64
	parents  []int32
}

func (t *Tree[K, V]) newCursor() *Cursor[K, V] {
	return &Cursor[K, V]{
		t:        t,
		node:     sentinelIndex,
		instance: t.instance,
		mods:     t.mods,
		parents:  make([]int32, 0, staticDepth),
	}
}

// check reports whether the cursor still refers to a position of its tree.
func (c *Cursor[K, V]) check() error {
	if c == nil || c.t == nil {
		return ErrInvalidCursor
	}
	if c.instance != c.t.instance {
		return ErrInvalidCursor
	}
	if c.node == sentinelIndex {
		return nil
	}
	if c.node < 0 || int(c.node) >= len(c.t.nodes) {
		return ErrInvalidCursor
	}
	if n := &c.t.nodes[c.node]; !n.live || n.gen != c.gen {
		return ErrInvalidCursor
	}
	return nil
}

// sync rebuilds the ancestor stack when the tree changed shape since it was
// recorded.
func (c *Cursor[K, V]) sync() {
	if c.mods == c.t.mods {
		return
	}
	c.mods = c.t.mods
	if c.node == sentinelIndex {
		c.parents = c.parents[:0]
		return
	}

	c.parents = c.t.pathTo(c.node, c.parents)
	c.t.metrics.resyncs++
	log.Tracef("cursor resynchronized at depth %d", len(c.parents))
	if resyncHook != nil {
		resyncHook(c.node)
	}
}

func (c *Cursor[K, V]) moveTo(idx int32) {
	c.node = idx
	c.gen = c.t.nodes[idx].gen
}

func (c *Cursor[K, V]) push(idx int32) {
	c.parents = append(c.parents, idx)
}

// first positions the cursor at the left-most node, or End.
func (c *Cursor[K, V]) first() {
	t := c.t
	c.parents = c.parents[:0]
	c.mods = t.mods
	if t.root == nilIndex {
		c.moveTo(sentinelIndex)
		return
	}
	n := t.root
	for l := t.nodes[n].left; l != nilIndex; l = t.nodes[n].left {
		c.push(n)
		n = l
	}
	c.moveTo(n)
}

// last positions the cursor at the right-most node, or End.
func (c *Cursor[K, V]) last() {
	t := c.t
	c.parents = c.parents[:0]
	c.mods = t.mods
	if t.root == nilIndex {
		c.moveTo(sentinelIndex)
		return
	}
	n := t.root
	for r := t.nodes[n].right; r != nilIndex; r = t.nodes[n].right {
		c.push(n)
		n = r
	}
	c.moveTo(n)
}

// Valid reports whether the cursor is positioned at a live entry.
func (c *Cursor[K, V]) Valid() bool {
	return c.check() == nil && c.node != sentinelIndex
}

// IsEnd reports whether the cursor is the End cursor of its tree.
func (c *Cursor[K, V]) IsEnd() bool {
	return c.check() == nil && c.node == sentinelIndex
}

// Key returns the key at the cursor's position.
// It should only be called when Valid reports true.
func (c *Cursor[K, V]) Key() K {
	if !c.Valid() {
		var zero K
		return zero
	}
	return c.t.nodes[c.node].key
}

// Value returns the value at the cursor's position.
// It should only be called when Valid reports true.
func (c *Cursor[K, V]) Value() V {
	if !c.Valid() {
		var zero V
		return zero
	}
	return c.t.nodes[c.node].value
}

// Entry returns a copy of the entry at the cursor's position.
func (c *Cursor[K, V]) Entry() (Entry[K, V], error) {
	if err := c.check(); err != nil {
		return Entry[K, V]{}, err
	}
	if c.node == sentinelIndex {
		return Entry[K, V]{}, ErrOutOfRange
	}
	n := &c.t.nodes[c.node]
	return Entry[K, V]{Key: n.key, Value: n.value}, nil
}

// SetValue overwrites the value stored at the cursor's position in place.
func (c *Cursor[K, V]) SetValue(value V) error {
	return c.Update(func(v *V) { *v = value })
}

// Update calls fn with a pointer to the value stored at the cursor's
// position. The pointer must not be retained after fn returns.
func (c *Cursor[K, V]) Update(fn func(*V)) error {
	if err := c.check(); err != nil {
		return err
	}
	if c.node == sentinelIndex {
		return ErrOutOfRange
	}
	fn(&c.t.nodes[c.node].value)
	return nil
}

// Next moves the cursor to the following entry, or to End after the last
// one. Calling Next on End returns ErrOutOfRange.
func (c *Cursor[K, V]) Next() error {
	if err := c.check(); err != nil {
		return err
	}
	if c.node == sentinelIndex {
		return ErrOutOfRange
	}
	c.sync()

	t := c.t
	n := c.node

	// With a right subtree the successor is its left-most node.
	if r := t.nodes[n].right; r != nilIndex {
		c.push(n)
		n = r
		for l := t.nodes[n].left; l != nilIndex; l = t.nodes[n].left {
			c.push(n)
			n = l
		}
		c.moveTo(n)
		return nil
	}

	// Otherwise climb until we arrive from a left child.
	for i := len(c.parents) - 1; i >= 0; i-- {
		p := c.parents[i]
		if t.nodes[p].left == n {
			c.parents = c.parents[:i]
			c.moveTo(p)
			return nil
		}
		n = p
	}

	c.parents = c.parents[:0]
	c.moveTo(sentinelIndex)
	return nil
}

// Prev moves the cursor to the preceding entry. From End it moves to the
// last entry. Calling Prev on the first entry, or on End of an empty tree,
// returns ErrOutOfRange and leaves the cursor unchanged.
func (c *Cursor[K, V]) Prev() error {
	if err := c.check(); err != nil {
		return err
	}
	t := c.t
	if c.node == sentinelIndex {
		if t.root == nilIndex {
			return ErrOutOfRange
		}
		c.last()
		return nil
	}
	c.sync()

	n := c.node

	// With a left subtree the predecessor is its right-most node.
	if l := t.nodes[n].left; l != nilIndex {
		c.push(n)
		n = l
		for r := t.nodes[n].right; r != nilIndex; r = t.nodes[n].right {
			c.push(n)
			n = r
		}
		c.moveTo(n)
		return nil
	}

	// Otherwise climb until we arrive from a right child.
	for i := len(c.parents) - 1; i >= 0; i-- {
		p := c.parents[i]
		if t.nodes[p].right == n {
			c.parents = c.parents[:i]
			c.moveTo(p)
			return nil
		}
		n = p
	}
	return ErrOutOfRange
}

// Equal reports whether both cursors reference the same position of the
// same tree. Invalid cursors are never equal to anything.
func (c *Cursor[K, V]) Equal(other *Cursor[K, V]) bool {
	if c.check() != nil || other.check() != nil {
		return false
	}
	return c.t == other.t && c.node == other.node && c.gen == other.gen
}

// Clone returns an independent copy of the cursor. Stepping one does not
// move the other.
func (c *Cursor[K, V]) Clone() *Cursor[K, V] {
	if c == nil {
		return nil
	}
	cp := *c
	cp.parents = make([]int32, len(c.parents), max(cap(c.parents), staticDepth))
	copy(cp.parents, c.parents)
	return &cp
}
