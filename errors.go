package treap

import "errors"

var (
	// ErrOutOfRange is returned when a cursor is stepped forward from End or
	// backward from the first element. The cursor is left where it was.
	ErrOutOfRange = errors.New("cursor out of range")

	// ErrInvalidCursor is returned when a cursor is nil, was never obtained
	// from a tree, references an erased node, or belongs to a tree whose
	// contents were cleared, moved or copy-assigned since it was created.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrInvariantViolation reports a broken BST, heap, size or sentinel
	// invariant. Validate returns it wrapped; with invariant checks enabled the
	// tree panics with it.
	ErrInvariantViolation = errors.New("treap invariant violation")
)
