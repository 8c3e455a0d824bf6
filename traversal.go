package treap

// lookup returns the slot holding key, or nilIndex.
func (t *Tree[K, V]) lookup(key K) int32 {
	n := t.root
	for n != nilIndex {
		c := t.compare(key, t.nodes[n].key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = t.nodes[n].left
		} else {
			n = t.nodes[n].right
		}
	}
	return nilIndex
}

// descend walks from the root towards key, appending every node passed on
// the way to parents. It returns the matching slot, or nilIndex, together
// with the (possibly grown) stack.
func (t *Tree[K, V]) descend(key K, parents []int32) (int32, []int32) {
	n := t.root
	for n != nilIndex {
		c := t.compare(key, t.nodes[n].key)
		if c == 0 {
			return n, parents
		}
		parents = append(parents, n)
		if c < 0 {
			n = t.nodes[n].left
		} else {
			n = t.nodes[n].right
		}
	}
	return nilIndex, parents
}

// seek positions a new cursor at the first key >= key when inclusive is set,
// or at the first key > key otherwise. Every visited node is recorded; once
// the walk ends the stack is cut back to the ancestors of the selected node.
func (t *Tree[K, V]) seek(key K, inclusive bool) *Cursor[K, V] {
	c := t.newCursor()
	selected := nilIndex
	selectedDepth := 0
	for n := t.root; n != nilIndex; {
		cmp := t.compare(key, t.nodes[n].key)
		if cmp < 0 || (cmp == 0 && inclusive) {
			selected = n
			selectedDepth = len(c.parents)
			if cmp == 0 {
				break
			}
			c.parents = append(c.parents, n)
			n = t.nodes[n].left
			continue
		}
		c.parents = append(c.parents, n)
		n = t.nodes[n].right
	}

	if selected == nilIndex {
		c.parents = c.parents[:0]
		return c
	}
	c.parents = c.parents[:selectedDepth]
	c.moveTo(selected)
	return c
}

// pathTo rebuilds the ancestor chain of a live node by descending on its key.
func (t *Tree[K, V]) pathTo(idx int32, parents []int32) []int32 {
	parents = parents[:0]
	found, parents := t.descend(t.nodes[idx].key, parents)
	if found != idx {
		return nil
	}
	return parents
}

func (t *Tree[K, V]) leftmost(n int32) int32 {
	for n != nilIndex && t.nodes[n].left != nilIndex {
		n = t.nodes[n].left
	}
	return n
}

func (t *Tree[K, V]) rightmost(n int32) int32 {
	for n != nilIndex && t.nodes[n].right != nilIndex {
		n = t.nodes[n].right
	}
	return n
}

// height counts the nodes on the longest path down from n.
func (t *Tree[K, V]) height(n int32) int {
	if n == nilIndex {
		return 0
	}

	type frame struct {
		node  int32
		depth int
	}
	best := 0
	stack := []frame{{node: n, depth: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		nd := &t.nodes[f.node]
		if nd.left != nilIndex {
			stack = append(stack, frame{node: nd.left, depth: f.depth + 1})
		}
		if nd.right != nilIndex {
			stack = append(stack, frame{node: nd.right, depth: f.depth + 1})
		}
	}
	return best
}
