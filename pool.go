package treap

// newArena returns an arena holding only the sentinel slot.
func newArena[K, V any](capacity int) []node[K, V] {
	nodes := make([]node[K, V], 1, capacity+1)
	nodes[sentinelIndex] = newSentinel[K, V]()
	return nodes
}

// acquireNode places a detached data node into a free slot, growing the arena
// when no released slot is available. Indices stay stable across growth.
func (t *Tree[K, V]) acquireNode(key K, value V, priority uint64) int32 {
	var idx int32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.nodes = append(t.nodes, node[K, V]{})
		idx = int32(len(t.nodes) - 1)
	}

	n := &t.nodes[idx]
	n.key = key
	n.value = value
	n.priority = priority
	n.left = nilIndex
	n.right = nilIndex
	n.live = true
	return idx
}

// releaseNode returns a slot to the free list. The slot's generation moves
// forward so cursors still pointing at it report ErrInvalidCursor.
func (t *Tree[K, V]) releaseNode(idx int32) {
	if idx == nilIndex || idx == sentinelIndex {
		return
	}

	n := &t.nodes[idx]
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	n.priority = 0
	n.left = nilIndex
	n.right = nilIndex
	n.live = false
	n.gen++

	t.free = append(t.free, idx)
}
