// Package syntax keeps a tree-sitter parse tree in step with buffer edits.
//
// The protocol per transaction is:
//
//  1. For each change, before it is applied, call Edit with the current
//     text. The edit descriptor (byte offsets plus row/column points) is
//     computed from that pre-mutation text and fed to the old tree so its
//     node ranges shift to match.
//  2. Apply the change to the text.
//  3. After all changes, call Reparse once. The edited tree is the base
//     of an incremental parse.
//
// A failed parse never invalidates the previous tree; Reparse returns a
// *ParseError and the stale tree stays available.
//
// Languages are looked up through a Registry, keyed by name or file
// extension. A buffer whose language is unknown simply has no
// Synchronizer.
package syntax
