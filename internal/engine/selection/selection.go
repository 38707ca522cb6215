package selection

import (
	"fmt"
	"sort"
	"strings"
)

// Selection is a non-empty ordered list of ranges with one primary range.
// The zero value is not valid; use New, Single, or At.
type Selection struct {
	ranges  []Range
	primary int
}

// New creates a selection from ranges. It panics if ranges is empty or
// primary is out of range.
func New(ranges []Range, primary int) Selection {
	if len(ranges) == 0 {
		panic("selection: empty range list")
	}
	if primary < 0 || primary >= len(ranges) {
		panic(fmt.Sprintf("selection: primary index %d out of range [0, %d)", primary, len(ranges)))
	}
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	return Selection{ranges: rs, primary: primary}
}

// Single creates a selection holding one range from anchor to head.
func Single(anchor, head Position) Selection {
	return Selection{ranges: []Range{NewRange(anchor, head)}}
}

// At creates a selection holding one cursor at pos.
func At(pos Position) Selection {
	return Single(pos, pos)
}

// Ranges returns a copy of all ranges.
func (s Selection) Ranges() []Range {
	rs := make([]Range, len(s.ranges))
	copy(rs, s.ranges)
	return rs
}

// Len returns the number of ranges.
func (s Selection) Len() int {
	return len(s.ranges)
}

// Range returns the range at index i.
func (s Selection) Range(i int) Range {
	return s.ranges[i]
}

// Primary returns the primary range.
func (s Selection) Primary() Range {
	return s.ranges[s.primary]
}

// PrimaryIndex returns the index of the primary range.
func (s Selection) PrimaryIndex() int {
	return s.primary
}

// IsMulti returns true if the selection has more than one range.
func (s Selection) IsMulti() bool {
	return len(s.ranges) > 1
}

// WithPrimary returns the selection with the primary index changed.
// It panics if i is out of range.
func (s Selection) WithPrimary(i int) Selection {
	return New(s.ranges, i)
}

// Push returns the selection with r appended and made primary.
func (s Selection) Push(r Range) Selection {
	rs := make([]Range, len(s.ranges), len(s.ranges)+1)
	copy(rs, s.ranges)
	rs = append(rs, r)
	return Selection{ranges: rs, primary: len(rs) - 1}
}

// Map returns the selection with every position passed through f.
func (s Selection) Map(f func(Position) Position) Selection {
	rs := make([]Range, len(s.ranges))
	for i, r := range s.ranges {
		rs[i] = r.Map(f)
	}
	return Selection{ranges: rs, primary: s.primary}
}

// Transform returns the selection with every range passed through f.
func (s Selection) Transform(f func(Range) Range) Selection {
	rs := make([]Range, len(s.ranges))
	for i, r := range s.ranges {
		rs[i] = f(r)
	}
	return Selection{ranges: rs, primary: s.primary}
}

// Normalize returns the selection sorted by start position with
// overlapping or touching ranges merged. The primary index follows the
// range that held it.
func (s Selection) Normalize() Selection {
	if len(s.ranges) <= 1 {
		return s
	}

	idx := make([]int, len(s.ranges))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := s.ranges[idx[a]], s.ranges[idx[b]]
		if ra.Start() != rb.Start() {
			return ra.Start() < rb.Start()
		}
		return ra.End() > rb.End()
	})

	merged := []Range{s.ranges[idx[0]]}
	primary := 0
	for _, i := range idx[1:] {
		r := s.ranges[i]
		last := &merged[len(merged)-1]
		if r.Start() <= last.End() {
			*last = last.Merge(r)
		} else {
			merged = append(merged, r)
		}
		if i == s.primary {
			primary = len(merged) - 1
		}
	}
	if idx[0] == s.primary {
		primary = 0
	}
	return Selection{ranges: merged, primary: primary}
}

// Max returns the largest position in the selection.
func (s Selection) Max() Position {
	var m Position
	for _, r := range s.ranges {
		m = max(m, r.End())
	}
	return m
}

// Equal returns true if both selections hold the same ranges and primary.
func (s Selection) Equal(other Selection) bool {
	if s.primary != other.primary || len(s.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r != other.ranges[i] {
			return false
		}
	}
	return true
}

// String returns a debug representation; the primary range is starred.
func (s Selection) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
		if i == s.primary {
			parts[i] += "*"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
