package treap

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

type stubRandSource struct {
	values []uint64
	idx    int
}

func (s *stubRandSource) Uint64() uint64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.idx >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	value := s.values[s.idx]
	s.idx++
	return value
}

// countingSource returns 1, 2, 3, ... so every new node outranks all
// existing ones.
type countingSource struct {
	n uint64
}

func (s *countingSource) Uint64() uint64 {
	s.n++
	return s.n
}

func newIntTree(t *testing.T, opts ...Option) *Tree[int, int] {
	t.Helper()
	opts = append([]Option{WithSeed(0x5eed), WithInvariantChecks(true)}, opts...)
	return New[int, int](opts...)
}

func keysOf[K, V any](tr *Tree[K, V]) []K {
	var keys []K
	for k := range tr.All() {
		keys = append(keys, k)
	}
	return keys
}

// keysByCursor walks Begin..End with Next and collects the keys.
func keysByCursor[K, V any](t *testing.T, tr *Tree[K, V]) []K {
	t.Helper()
	var keys []K
	for c := tr.Begin(); !c.IsEnd(); {
		if !c.Valid() {
			t.Fatalf("cursor became invalid during traversal")
		}
		keys = append(keys, c.Key())
		if err := c.Next(); err != nil {
			t.Fatalf("unexpected Next error: %v", err)
		}
	}
	return keys
}

type dumpNode struct {
	Key      any
	Priority uint64
	Left     *dumpNode
	Right    *dumpNode
}

func shape[K, V any](tr *Tree[K, V], n int32) *dumpNode {
	if n == nilIndex {
		return nil
	}
	nd := &tr.nodes[n]
	return &dumpNode{
		Key:      nd.key,
		Priority: nd.priority,
		Left:     shape(tr, nd.left),
		Right:    shape(tr, nd.right),
	}
}

func assertValid[K, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()
	if err := tr.Validate(); err != nil {
		t.Fatalf("invalid tree: %v\n%s", err, spew.Sdump(shape(tr, tr.root)))
	}
}
