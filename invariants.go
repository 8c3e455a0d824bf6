package treap

import "fmt"

// Validate walks the whole tree and reports the first broken invariant: key
// order, heap order, reachability of released slots or of the sentinel,
// shared subtrees, and the entry count. The returned error wraps
// ErrInvariantViolation.
func (t *Tree[K, V]) Validate() error {
	if t.nodes[sentinelIndex].live {
		return fmt.Errorf("%w: sentinel slot holds data", ErrInvariantViolation)
	}

	type frame struct {
		node     int32
		low      int32 // nearest ancestor whose key must be smaller
		high     int32 // nearest ancestor whose key must be larger
		priority uint64
		hasPrio  bool
	}

	visited := make([]bool, len(t.nodes))
	count := 0
	stack := []frame{{node: t.root, low: nilIndex, high: nilIndex}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == nilIndex {
			continue
		}

		switch {
		case f.node == sentinelIndex:
			return fmt.Errorf("%w: sentinel reachable from root", ErrInvariantViolation)
		case f.node < 0 || int(f.node) >= len(t.nodes):
			return fmt.Errorf("%w: child index %d outside arena", ErrInvariantViolation, f.node)
		case visited[f.node]:
			return fmt.Errorf("%w: slot %d reachable twice", ErrInvariantViolation, f.node)
		}
		visited[f.node] = true

		n := &t.nodes[f.node]
		if !n.live {
			return fmt.Errorf("%w: released slot %d reachable", ErrInvariantViolation, f.node)
		}
		if f.low != nilIndex && t.compare(t.nodes[f.low].key, n.key) >= 0 {
			return fmt.Errorf("%w: key %v not greater than ancestor %v",
				ErrInvariantViolation, n.key, t.nodes[f.low].key)
		}
		if f.high != nilIndex && t.compare(n.key, t.nodes[f.high].key) >= 0 {
			return fmt.Errorf("%w: key %v not less than ancestor %v",
				ErrInvariantViolation, n.key, t.nodes[f.high].key)
		}
		if f.hasPrio && n.priority > f.priority {
			return fmt.Errorf("%w: key %v outranks its parent", ErrInvariantViolation, n.key)
		}
		count++

		stack = append(stack,
			frame{node: n.left, low: f.low, high: f.node, priority: n.priority, hasPrio: true},
			frame{node: n.right, low: f.node, high: f.high, priority: n.priority, hasPrio: true},
		)
	}

	if count != t.size {
		return fmt.Errorf("%w: %d reachable nodes, size %d", ErrInvariantViolation, count, t.size)
	}
	if live := len(t.nodes) - 1 - len(t.free); live != t.size {
		return fmt.Errorf("%w: %d occupied slots, size %d", ErrInvariantViolation, live, t.size)
	}
	return nil
}
