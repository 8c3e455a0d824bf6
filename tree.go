// Package treap provides Tree, a generic ordered map backed by a treap: a
// binary search tree whose shape is kept balanced in expectation by a
// max-heap over random per-node priorities.
//
// Nodes live in a per-tree arena and refer to their children by index. Arena
// slot 0 is reserved as the end sentinel, so End cursors keep their identity
// for the lifetime of the tree no matter what is inserted or erased.
//
// A Tree is not safe for concurrent mutation. Serialize access externally;
// distinct trees, including clones, may be used from different goroutines.
package treap

import (
	"cmp"
	"iter"
	"slices"
)

// Entry is a key/value pair copied out of a tree.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Tree is an ordered map from K to V.
type Tree[K, V any] struct {
	compare func(a, b K) int
	nodes   []node[K, V]
	free    []int32
	root    int32
	size    int
	rng     *priorities
	config  Config

	// mods counts structural changes. Cursors compare it against the value
	// they recorded to decide whether their ancestor stack is still usable.
	mods uint64

	// instance changes whenever the whole arena is swapped out (Clear, Move,
	// CopyFrom). Cursors created before that are rejected.
	instance uint64

	metrics Metrics
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b and
// must describe a strict total order.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("treap: nil compare function")
	}
	cfg := NewConfig(opts...)
	return &Tree[K, V]{
		compare: compare,
		nodes:   newArena[K, V](cfg.capacity),
		root:    nilIndex,
		rng:     newPriorities(cfg),
		config:  cfg,
	}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path. An
// empty tree has height zero.
func (t *Tree[K, V]) Height() int {
	return t.height(t.root)
}

// Insert adds key with value when key is absent and reports whether it did.
// An existing entry is left untouched, value included.
func (t *Tree[K, V]) Insert(key K, value V) bool {
	if !t.insert(key, value) {
		return false
	}
	t.afterMutation("insert")
	return true
}

// Erase removes key and reports whether it was present.
func (t *Tree[K, V]) Erase(key K) bool {
	if !t.erase(key) {
		return false
	}
	t.afterMutation("erase")
	return true
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	idx := t.lookup(key)
	if idx == nilIndex {
		var zero V
		return zero, false
	}
	return t.nodes[idx].value, true
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.lookup(key) != nilIndex
}

// Find returns a cursor at key, or the End cursor when key is absent.
func (t *Tree[K, V]) Find(key K) *Cursor[K, V] {
	c := t.newCursor()
	idx, parents := t.descend(key, c.parents)
	if idx == nilIndex {
		c.parents = c.parents[:0]
		return c
	}
	c.parents = parents
	c.moveTo(idx)
	return c
}

// LowerBound returns a cursor at the first entry whose key is not less than
// key, or End.
func (t *Tree[K, V]) LowerBound(key K) *Cursor[K, V] {
	return t.seek(key, true)
}

// UpperBound returns a cursor at the first entry whose key is greater than
// key, or End.
func (t *Tree[K, V]) UpperBound(key K) *Cursor[K, V] {
	return t.seek(key, false)
}

// Begin returns a cursor at the smallest key, or End for an empty tree.
func (t *Tree[K, V]) Begin() *Cursor[K, V] {
	c := t.newCursor()
	c.first()
	return c
}

// Last returns a cursor at the largest key, or End for an empty tree.
func (t *Tree[K, V]) Last() *Cursor[K, V] {
	c := t.newCursor()
	c.last()
	return c
}

// End returns a cursor one past the last entry.
func (t *Tree[K, V]) End() *Cursor[K, V] {
	return t.newCursor()
}

// Range returns copies of the entries with low <= key < high in ascending
// order. The result does not observe later changes to the tree.
func (t *Tree[K, V]) Range(low, high K) []Entry[K, V] {
	if t.compare(low, high) >= 0 {
		return nil
	}

	var out []Entry[K, V]
	for c := t.LowerBound(low); c.Valid(); {
		key := c.Key()
		if t.compare(key, high) >= 0 {
			break
		}
		out = append(out, Entry[K, V]{Key: key, Value: c.Value()})
		if err := c.Next(); err != nil {
			break
		}
	}
	return out
}

// All yields every entry in ascending key order. The tree must not be
// mutated while the sequence is being consumed.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]int32, 0, staticDepth)
		for n := t.root; n != nilIndex || len(stack) > 0; {
			for ; n != nilIndex; n = t.nodes[n].left {
				stack = append(stack, n)
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[n].key, t.nodes[n].value) {
				return
			}
			n = t.nodes[n].right
		}
	}
}

// Backward yields every entry in descending key order. The tree must not be
// mutated while the sequence is being consumed.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]int32, 0, staticDepth)
		for n := t.root; n != nilIndex || len(stack) > 0; {
			for ; n != nilIndex; n = t.nodes[n].right {
				stack = append(stack, n)
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[n].key, t.nodes[n].value) {
				return
			}
			n = t.nodes[n].left
		}
	}
}

// Clone returns a deep copy of t. The copy has the same shape and the same
// node priorities but shares no nodes with t. It draws future priorities
// from a fresh source built from opts (WithSeed, WithRandSource); without
// them the source is seeded from the runtime's entropy. Values are copied
// with ordinary assignment.
func (t *Tree[K, V]) Clone(opts ...Option) *Tree[K, V] {
	cfg := t.config
	cfg.seed, cfg.seeded, cfg.source = 0, false, nil
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	c := &Tree[K, V]{
		compare: t.compare,
		nodes:   slices.Clone(t.nodes),
		free:    slices.Clone(t.free),
		root:    t.root,
		size:    t.size,
		rng:     newPriorities(cfg),
		config:  cfg,
	}
	log.Debugf("cloned tree with %d entries", t.size)
	return c
}

// CopyFrom replaces the contents of t with a deep copy of src. t keeps its
// own priority source. Cursors previously obtained from t become invalid.
func (t *Tree[K, V]) CopyFrom(src *Tree[K, V]) {
	if t == src {
		return
	}
	t.compare = src.compare
	t.nodes = slices.Clone(src.nodes)
	t.free = slices.Clone(src.free)
	t.root = src.root
	t.size = src.size
	t.config.checkInvariants = src.config.checkInvariants
	t.instance++
	t.mods++
	log.Debugf("copy-assigned tree with %d entries", t.size)
}

// Move transfers the contents of t, including its sentinel and priority
// source, to a new tree without copying nodes. t is left empty and usable
// with a freshly seeded source. Cursors obtained from t become invalid.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	dst := &Tree[K, V]{}
	dst.take(t)
	return dst
}

// MoveFrom transfers the contents of src into t, replacing what t held. src
// is left empty. Cursors obtained from either tree become invalid.
func (t *Tree[K, V]) MoveFrom(src *Tree[K, V]) {
	if t == src {
		return
	}
	t.take(src)
}

func (t *Tree[K, V]) take(src *Tree[K, V]) {
	t.compare = src.compare
	t.nodes = src.nodes
	t.free = src.free
	t.root = src.root
	t.size = src.size
	t.rng = src.rng
	t.config = src.config
	t.metrics = src.metrics
	t.instance++
	t.mods++

	log.Debugf("moved tree with %d entries", src.size)

	cfg := src.config
	cfg.seed, cfg.seeded, cfg.source = 0, false, nil
	src.nodes = newArena[K, V](0)
	src.free = nil
	src.root = nilIndex
	src.size = 0
	src.rng = newPriorities(cfg)
	src.metrics = Metrics{}
	src.instance++
	src.mods++
}

// Clear removes every entry. Cursors previously obtained from t become
// invalid.
func (t *Tree[K, V]) Clear() {
	log.Debugf("clearing tree with %d entries", t.size)
	t.nodes = newArena[K, V](t.config.capacity)
	t.free = nil
	t.root = nilIndex
	t.size = 0
	t.instance++
	t.mods++
}

// afterMutation runs the debug validation pass when it is enabled.
func (t *Tree[K, V]) afterMutation(op string) {
	if !t.config.checkInvariants {
		return
	}
	if err := t.Validate(); err != nil {
		log.Errorf("%s left the tree inconsistent: %v", op, err)
		panic(err)
	}
}
