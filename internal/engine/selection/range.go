package selection

import (
	"fmt"

	"github.com/dshills/forge/internal/engine/rope"
)

// Position is a byte offset into the text, always on a UTF-8 boundary.
type Position = rope.ByteOffset

// Range is an anchor/head pair of positions.
type Range struct {
	Anchor Position // Where the range started
	Head   Position // Current cursor position
}

// NewRange creates a range from anchor to head.
func NewRange(anchor, head Position) Range {
	return Range{Anchor: anchor, Head: head}
}

// Point creates a point range (a cursor) at pos.
func Point(pos Position) Range {
	return Range{Anchor: pos, Head: pos}
}

// Start returns the lower bound of the range.
func (r Range) Start() Position {
	return min(r.Anchor, r.Head)
}

// End returns the upper bound of the range.
func (r Range) End() Position {
	return max(r.Anchor, r.Head)
}

// IsPoint returns true if the range has no extent.
func (r Range) IsPoint() bool {
	return r.Anchor == r.Head
}

// Len returns the length of the range in bytes.
func (r Range) Len() Position {
	return r.End() - r.Start()
}

// IsForward returns true if the head is at or after the anchor.
func (r Range) IsForward() bool {
	return r.Head >= r.Anchor
}

// Contains returns true if pos is within [Start, End).
// A point range contains nothing.
func (r Range) Contains(pos Position) bool {
	return pos >= r.Start() && pos < r.End()
}

// Overlaps returns true if the two ranges share a position or touch.
func (r Range) Overlaps(other Range) bool {
	return r.Start() <= other.End() && other.Start() <= r.End()
}

// Flip returns the range with anchor and head swapped.
func (r Range) Flip() Range {
	return Range{Anchor: r.Head, Head: r.Anchor}
}

// Collapse returns a point range at the head.
func (r Range) Collapse() Range {
	return Point(r.Head)
}

// Merge returns the smallest range covering both ranges.
// The direction of r is preserved.
func (r Range) Merge(other Range) Range {
	start := min(r.Start(), other.Start())
	end := max(r.End(), other.End())
	if r.IsForward() {
		return Range{Anchor: start, Head: end}
	}
	return Range{Anchor: end, Head: start}
}

// Map returns the range with both ends passed through f.
func (r Range) Map(f func(Position) Position) Range {
	return Range{Anchor: f(r.Anchor), Head: f(r.Head)}
}

// String returns a debug representation.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Anchor, r.Head)
}
