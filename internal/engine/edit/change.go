package edit

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/forge/internal/engine/rope"
)

// Kind categorizes a change.
type Kind uint8

const (
	// KindNoop changes nothing: empty range, empty text.
	KindNoop Kind = iota

	// KindInsert inserts text at a point.
	KindInsert

	// KindDelete removes a range.
	KindDelete

	// KindReplace removes a range and inserts text in its place.
	KindReplace
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNoop:
		return "noop"
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change replaces the byte range [Start, End) with Text.
type Change struct {
	Start rope.ByteOffset
	End   rope.ByteOffset

	// Text is inserted at Start after the range is removed.
	// Empty means nothing is inserted.
	Text string

	// Deleted is the pre-image of [Start, End), valid when HasPreImage
	// reports true.
	Deleted string

	captured bool
}

// Insert creates a change inserting text at pos.
func Insert(pos rope.ByteOffset, text string) Change {
	return Change{Start: pos, End: pos, Text: text, captured: true}
}

// Delete creates a change removing [start, end).
// Its pre-image is recorded by ChangeSet.Capture.
func Delete(start, end rope.ByteOffset) Change {
	return Change{Start: start, End: end}
}

// Replace creates a change replacing [start, end) with text.
// Its pre-image is recorded by ChangeSet.Capture.
func Replace(start, end rope.ByteOffset, text string) Change {
	return Change{Start: start, End: end, Text: text}
}

// DeleteText creates a change removing deleted, which must be the text
// at start.
func DeleteText(start rope.ByteOffset, deleted string) Change {
	return ReplaceText(start, deleted, "")
}

// ReplaceText creates a change replacing deleted, which must be the text
// at start, with text.
func ReplaceText(start rope.ByteOffset, deleted, text string) Change {
	return Change{
		Start:    start,
		End:      start + rope.ByteOffset(len(deleted)),
		Text:     text,
		Deleted:  deleted,
		captured: true,
	}
}

// Kind returns the category of the change.
func (c Change) Kind() Kind {
	switch {
	case c.Start == c.End && c.Text == "":
		return KindNoop
	case c.Start == c.End:
		return KindInsert
	case c.Text == "":
		return KindDelete
	default:
		return KindReplace
	}
}

// HasPreImage reports whether Deleted holds the removed text.
// A change that removes nothing always has one.
func (c Change) HasPreImage() bool {
	return c.captured || c.Start == c.End
}

// LenDelta returns the change in text length.
// Positive means the text grew.
func (c Change) LenDelta() int64 {
	return int64(len(c.Text)) - int64(c.End-c.Start)
}

// NewEnd returns the end of the inserted text after the change.
func (c Change) NewEnd() rope.ByteOffset {
	return c.Start + rope.ByteOffset(len(c.Text))
}

// Apply returns r with the change applied: the range is removed first,
// then the text is inserted at Start. It panics on offsets that are
// invalid for r.
func (c Change) Apply(r rope.Rope) rope.Rope {
	if c.Start != c.End {
		r = r.Delete(c.Start, c.End)
	}
	if c.Text != "" {
		r = r.Insert(c.Start, c.Text)
	}
	return r
}

// Invert returns the change that undoes c. pre must be the text c was
// applied to; it is only read when c has no pre-image.
func (c Change) Invert(pre rope.Rope) Change {
	deleted := c.Deleted
	if !c.HasPreImage() {
		deleted = pre.Slice(c.Start, c.End)
	}
	return Change{
		Start:    c.Start,
		End:      c.NewEnd(),
		Text:     deleted,
		Deleted:  c.Text,
		captured: true,
	}
}

// MapPosition returns where pos ends up after the change. Positions
// before the change stay put, positions after it shift by LenDelta, and
// positions inside the removed range move to the end of the new text.
// An insertion at pos pushes pos past the inserted text.
func (c Change) MapPosition(pos rope.ByteOffset) rope.ByteOffset {
	switch {
	case c.End <= pos:
		return pos + rope.ByteOffset(c.LenDelta())
	case c.Start >= pos:
		return pos
	default:
		return c.NewEnd()
	}
}

// capture validates c against r and records its pre-image.
func (c Change) capture(r rope.Rope) (Change, error) {
	if c.Start < 0 || c.Start > c.End || c.End > r.Len() {
		return c, ErrChangeOutOfRange
	}
	if !r.IsCharBoundary(c.Start) || !r.IsCharBoundary(c.End) {
		return c, ErrNotCharBoundary
	}
	if !utf8.ValidString(c.Text) {
		return c, ErrInvalidUTF8
	}
	actual := r.Slice(c.Start, c.End)
	if c.HasPreImage() && c.Deleted != actual {
		return c, ErrPreImageMismatch
	}
	c.Deleted = actual
	c.captured = true
	return c, nil
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Kind() {
	case KindInsert:
		return fmt.Sprintf("insert %q at %d", truncate(c.Text, 20), c.Start)
	case KindDelete:
		return fmt.Sprintf("delete %d..%d", c.Start, c.End)
	case KindReplace:
		return fmt.Sprintf("replace %d..%d with %q", c.Start, c.End, truncate(c.Text, 10))
	default:
		return fmt.Sprintf("noop at %d", c.Start)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
