package treap

// node holds key/value, the heap priority and the child slots of one arena entry.
type node[K, V any] struct {
	key      K
	value    V
	priority uint64
	left     int32
	right    int32
	// gen is bumped every time the slot is released so cursors that still
	// reference an erased node can be told apart from the slot's next tenant.
	gen  uint32
	live bool
}

const (
	// nilIndex marks an empty subtree.
	nilIndex int32 = -1

	// sentinelIndex is the reserved slot that end cursors point at. It never
	// holds data and is never reachable from the root.
	sentinelIndex int32 = 0

	// staticDepth is the initial capacity of a cursor's ancestor stack. Treap
	// height is logarithmic with overwhelming probability, so the stack
	// rarely grows past it.
	staticDepth = 64
)

func newSentinel[K, V any]() node[K, V] {
	return node[K, V]{left: nilIndex, right: nilIndex}
}
