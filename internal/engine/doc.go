// Package engine provides the text buffer at the core of the forge editor.
//
// A Buffer combines a rope for text storage, a multi-range selection, a
// branching undo history, and an optional tree-sitter synchronizer behind
// one API. Every mutation goes through a Transaction:
//
//	b := engine.New(engine.WithContent("hello world"))
//
//	tx := edit.NewTransaction(edit.Replace(6, 11, "Forge"))
//	if err := b.Apply(tx); err != nil {
//		return err
//	}
//	b.Text()  // "hello Forge"
//	b.Undo()  // "hello world"
//	b.Redo()  // "hello Forge"
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - rope: B+ tree rope for efficient text storage (O(log n) operations)
//   - selection: positions, ranges, and multi-range selections
//   - edit: Change, ChangeSet, and Transaction, with pre-image capture
//   - history: branching undo tree stored in an arena
//   - syntax: incremental tree-sitter parsing kept in step with edits
//
// # Applying Transactions
//
// Apply validates the whole transaction against the current text before
// touching anything, so an invalid transaction leaves text, selection,
// history, and the dirty flag unchanged. A valid one is fed change by
// change to the syntax tree, applied to the rope, reparsed once, and
// pushed into history together with its inverse.
//
// # Files
//
// Open detects the encoding from a byte order mark (UTF-8, UTF-16 LE/BE)
// and the line ending style, and keeps the text exactly as read. Save
// writes through a temporary file and a rename, so readers never see a
// partial file.
//
// # Thread Safety
//
// A Buffer is not safe for concurrent use. It has a single owner; other
// goroutines talk to that owner rather than to the Buffer.
package engine
