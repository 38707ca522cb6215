package edit

import (
	"strings"

	"github.com/dshills/forge/internal/engine/rope"
)

// ChangeSet is an ordered list of changes. Each change's offsets refer to
// the text produced by the changes before it.
type ChangeSet []Change

// Capture validates every change against r, in order, and returns a copy
// of the set with all pre-images recorded. Nothing is mutated; r is left
// as is. On failure the returned error is a *ChangeError.
func (cs ChangeSet) Capture(r rope.Rope) (ChangeSet, error) {
	out := make(ChangeSet, len(cs))
	scratch := r
	for i, c := range cs {
		captured, err := c.capture(scratch)
		if err != nil {
			return nil, &ChangeError{Index: i, Change: c, Err: err}
		}
		out[i] = captured
		scratch = captured.Apply(scratch)
	}
	return out, nil
}

// Apply applies every change to r in order.
func (cs ChangeSet) Apply(r rope.Rope) rope.Rope {
	for _, c := range cs {
		r = c.Apply(r)
	}
	return r
}

// Invert returns the set that undoes cs. pre must be the text cs was
// applied to; it is only read for changes without a pre-image. The
// inverse lists changes in reverse order.
func (cs ChangeSet) Invert(pre rope.Rope) ChangeSet {
	inverted := make(ChangeSet, len(cs))
	scratch := pre
	for i, c := range cs {
		inverted[len(cs)-1-i] = c.Invert(scratch)
		if i < len(cs)-1 {
			scratch = c.Apply(scratch)
		}
	}
	return inverted
}

// MapPosition maps pos through every change in order.
func (cs ChangeSet) MapPosition(pos rope.ByteOffset) rope.ByteOffset {
	for _, c := range cs {
		pos = c.MapPosition(pos)
	}
	return pos
}

// LenDelta returns the total change in text length.
func (cs ChangeSet) LenDelta() int64 {
	var delta int64
	for _, c := range cs {
		delta += c.LenDelta()
	}
	return delta
}

// IsEmpty returns true if no change in the set modifies text.
func (cs ChangeSet) IsEmpty() bool {
	for _, c := range cs {
		if c.Kind() != KindNoop {
			return false
		}
	}
	return true
}

// String returns a human-readable summary of the set.
func (cs ChangeSet) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, "; ")
}
