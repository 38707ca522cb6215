// Package selection provides positions, ranges, and multi-range selections.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the range started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head the range is a point (a cursor with no selected
// text). Nothing forces Anchor <= Head, so a range keeps the direction the
// user selected in.
//
// A Selection is a non-empty, ordered list of ranges with one primary
// range. Constructors panic on an empty list or a primary index out of
// range; both indicate a caller bug, not a recoverable condition.
//
// Basic usage:
//
//	sel := selection.At(10)                        // cursor at offset 10
//	sel = selection.Single(10, 20)                 // select 10..20
//	sel = sel.Push(selection.Point(50))            // add a cursor, make it primary
//	sel = sel.Map(func(p selection.Position) selection.Position { return p + 1 })
//
// Range and Selection are immutable value types and safe for concurrent
// reads.
package selection
