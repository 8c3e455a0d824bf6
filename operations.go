package treap

import "fmt"

// split partitions the subtree rooted at v into the keys less than key and
// the keys greater than or equal to key. Only child links are rewritten; no
// node is allocated and no priority changes.
func (t *Tree[K, V]) split(v int32, key K) (less, geq int32) {
	if v == nilIndex {
		return nilIndex, nilIndex
	}

	n := &t.nodes[v]
	if t.compare(n.key, key) < 0 {
		l, r := t.split(n.right, key)
		n.right = l
		return v, r
	}

	l, r := t.split(n.left, key)
	n.left = r
	return l, v
}

// merge joins two subtrees where every key of l is less than every key of
// r. The root with the higher priority stays on top and the other tree is
// merged into its inner child slot, which keeps the heap ordered.
func (t *Tree[K, V]) merge(l, r int32) int32 {
	if l == nilIndex {
		return r
	}
	if r == nilIndex {
		return l
	}

	ln, rn := &t.nodes[l], &t.nodes[r]
	if ln.priority > rn.priority {
		ln.right = t.merge(ln.right, r)
		return l
	}
	rn.left = t.merge(l, rn.left)
	return r
}

// join is merge with the ordering precondition asserted when invariant
// checks are enabled.
func (t *Tree[K, V]) join(l, r int32) int32 {
	t.metrics.merges++
	if t.config.checkInvariants && l != nilIndex && r != nilIndex {
		maxL := t.nodes[t.rightmost(l)].key
		minR := t.nodes[t.leftmost(r)].key
		if t.compare(maxL, minR) >= 0 {
			err := fmt.Errorf("%w: merge of %v into %v breaks key order",
				ErrInvariantViolation, maxL, minR)
			log.Errorf("%v", err)
			panic(err)
		}
	}
	return t.merge(l, r)
}

// insert links a new node for key unless key is already present.
func (t *Tree[K, V]) insert(key K, value V) bool {
	if t.lookup(key) != nilIndex {
		return false
	}

	idx := t.acquireNode(key, value, t.rng.next())

	t.metrics.splits++
	less, geq := t.split(t.root, key)
	t.root = t.join(t.join(less, idx), geq)

	t.size++
	t.mods++
	t.metrics.inserts++
	return true
}

// erase unlinks the node holding key. The merge of its children is spliced
// into the slot the node occupied: its parent's child link or the root.
func (t *Tree[K, V]) erase(key K) bool {
	parent := nilIndex
	fromLeft := false
	cur := t.root
	for cur != nilIndex {
		c := t.compare(key, t.nodes[cur].key)
		if c == 0 {
			break
		}
		parent = cur
		if c < 0 {
			cur = t.nodes[cur].left
			fromLeft = true
		} else {
			cur = t.nodes[cur].right
			fromLeft = false
		}
	}
	if cur == nilIndex {
		return false
	}

	replacement := t.join(t.nodes[cur].left, t.nodes[cur].right)
	switch {
	case parent == nilIndex:
		t.root = replacement
	case fromLeft:
		t.nodes[parent].left = replacement
	default:
		t.nodes[parent].right = replacement
	}

	if eraseSpliceHook != nil {
		eraseSpliceHook(parent, replacement)
	}

	t.releaseNode(cur)
	t.size--
	t.mods++
	t.metrics.erases++
	return true
}
