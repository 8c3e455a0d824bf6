package treap

// Test hooks.
var (
	// eraseSpliceHook observes the parent slot (nilIndex for the root) and
	// the subtree spliced into it by erase.
	eraseSpliceHook func(parent, replacement int32)

	// resyncHook is invoked after a cursor rebuilds its ancestor stack.
	resyncHook func(node int32)
)
