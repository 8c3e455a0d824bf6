package treap

// Metrics counts the work a tree has done since it was created.
type Metrics struct {
	inserts uint64
	erases  uint64
	splits  uint64
	merges  uint64
	resyncs uint64
}

// Stats is a snapshot of a tree's counters and shape.
type Stats struct {
	Len    int
	Height int
	// Slots is the arena size excluding the sentinel; FreeSlots of them are
	// waiting to be reused.
	Slots     int
	FreeSlots int

	Inserts uint64
	Erases  uint64
	Splits  uint64
	Merges  uint64
	// Resyncs counts cursors that rebuilt their ancestor stack after the tree
	// changed underneath them.
	Resyncs uint64
}

// Stats returns the current counters and shape of t. Computing the height
// visits every node.
func (t *Tree[K, V]) Stats() Stats {
	return Stats{
		Len:       t.size,
		Height:    t.Height(),
		Slots:     len(t.nodes) - 1,
		FreeSlots: len(t.free),
		Inserts:   t.metrics.inserts,
		Erases:    t.metrics.erases,
		Splits:    t.metrics.splits,
		Merges:    t.metrics.merges,
		Resyncs:   t.metrics.resyncs,
	}
}
