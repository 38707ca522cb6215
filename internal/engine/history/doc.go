// Package history provides branching undo/redo for the text editor engine.
//
// History is a tree, not a stack. Every applied transaction becomes a new
// node under the current node, so undoing and then making a different edit
// starts a new branch instead of discarding the old redo path.
//
// # Nodes
//
// Nodes live in an arena and refer to each other by index. Index 0 is the
// root: the state before any edit. Each other node stores the transaction
// that produced it and the inverse that takes it back to its parent. The
// inverse is built from pre-images captured before the forward apply, so
// undo never depends on the current text.
//
// # Navigation
//
//	h := history.New()
//	h.Push(tx, inverse)
//
//	// Undo/redo
//	undo, ok := h.Undo() // inverse to apply; ok is false at the root
//	redo, ok := h.Redo() // follows the first child; false at a leaf
//
// Redo always follows the first child, so later sibling branches are only
// reachable with Jump, which walks up to the common ancestor and back down:
//
//	txs, err := h.Jump(node)
//
// History is not safe for concurrent use; its owner serializes access.
package history
