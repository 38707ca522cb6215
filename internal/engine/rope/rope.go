package rope

import (
	"fmt"
	"io"
	"strings"
)

// Rope is an immutable rope data structure for efficient text storage.
// Operations return new Rope values; the original is never modified,
// which makes holding on to an old version (a pre-edit snapshot) free.
// The zero value is an empty rope.
//
// All offsets are byte offsets. Mutating and slicing operations panic
// with an *OffsetError when given an offset outside the text or inside
// a UTF-8 sequence; such offsets are programmer errors.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	return Rope{root: buildFromChunks(splitIntoChunks(s))}
}

// Len returns the total byte length.
func (r Rope) Len() ByteOffset {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// LineCount returns the number of lines (newlines + 1).
// An empty rope has exactly one line.
func (r Rope) LineCount() uint32 {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Lines + 1
}

// IsEmpty returns true if the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// Summary returns the aggregated metrics for the entire rope.
func (r Rope) Summary() TextSummary {
	if r.root == nil {
		return TextSummary{Flags: FlagASCII}
	}
	return r.root.summary
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(r.Len()))
	r.root.appendTo(&sb)
	return sb.String()
}

// Bytes returns the full text as a byte slice.
func (r Rope) Bytes() []byte {
	buf := make([]byte, 0, r.Len())
	for it := r.Chunks(); it.Next(); {
		buf = append(buf, it.Chunk().data...)
	}
	return buf
}

// WriteTo writes the full text to w.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for it := r.Chunks(); it.Next(); {
		n, err := io.WriteString(w, it.Chunk().data)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Slice returns the text in the byte range [start, end).
func (r Rope) Slice(start, end ByteOffset) string {
	r.checkRange("slice", start, end)
	if start == end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(end - start))
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at the given offset.
// Returns 0 and false if offset is out of range.
func (r Rope) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= r.Len() {
		return 0, false
	}
	return r.root.byteAt(offset), true
}

// IsCharBoundary reports whether offset lies on a UTF-8 sequence
// boundary. Offsets 0 and Len() are boundaries; out-of-range offsets
// are not.
func (r Rope) IsCharBoundary(offset ByteOffset) bool {
	if offset == 0 || offset == r.Len() {
		return true
	}
	if offset < 0 || offset > r.Len() {
		return false
	}
	if r.root.summary.Flags&FlagASCII != 0 {
		return true
	}
	return isUTF8Start(r.root.byteAt(offset))
}

// Insert inserts text at the given byte offset.
func (r Rope) Insert(offset ByteOffset, text string) Rope {
	r.checkOffset("insert", offset)
	if len(text) == 0 {
		return r
	}
	left, right := r.split(offset)
	mid := buildFromChunks(splitIntoChunks(text))
	return Rope{root: rebalance(concat(concat(left, mid), right))}
}

// Delete removes text in the byte range [start, end).
func (r Rope) Delete(start, end ByteOffset) Rope {
	r.checkRange("delete", start, end)
	if start == end {
		return r
	}
	left, rest := r.split(start)
	_, right := collapse(rest).split(end - start)
	return Rope{root: rebalance(concat(left, right))}
}

// Replace replaces text in the byte range [start, end) with text.
// The range is removed before the text is inserted.
func (r Rope) Replace(start, end ByteOffset, text string) Rope {
	return r.Delete(start, end).Insert(start, text)
}

func (r Rope) split(offset ByteOffset) (*Node, *Node) {
	if r.root == nil {
		return nil, nil
	}
	return r.root.split(offset)
}

// OffsetToLine returns the 0-indexed line containing offset.
func (r Rope) OffsetToLine(offset ByteOffset) uint32 {
	r.checkBounds("offset to line", offset)
	if r.root == nil {
		return 0
	}
	return r.root.newlinesBefore(offset)
}

// LineStartOffset returns the byte offset of the start of the given line.
// Line == LineCount() is accepted and yields Len().
func (r Rope) LineStartOffset(line uint32) ByteOffset {
	count := r.LineCount()
	switch {
	case line == 0:
		return 0
	case line == count:
		return r.Len()
	case line > count:
		panic(&LineError{Line: line, LineCount: count})
	}
	return r.root.nthNewline(line) + 1
}

// LineEndOffset returns the byte offset of the end of the given line,
// excluding its newline.
func (r Rope) LineEndOffset(line uint32) ByteOffset {
	count := r.LineCount()
	if line >= count {
		if line > count {
			panic(&LineError{Line: line, LineCount: count})
		}
		return r.Len()
	}
	if line == count-1 {
		return r.Len()
	}
	return r.root.nthNewline(line + 1)
}

// LineText returns the text of the given line, excluding its newline.
func (r Rope) LineText(line uint32) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// OffsetToPoint converts a byte offset to a line/column position.
func (r Rope) OffsetToPoint(offset ByteOffset) Point {
	line := r.OffsetToLine(offset)
	return Point{
		Line:   line,
		Column: uint32(offset - r.LineStartOffset(line)),
	}
}

// PointToOffset converts a line/column position to a byte offset.
// Columns past the end of the line clamp to the line end.
func (r Rope) PointToOffset(point Point) ByteOffset {
	if point.Line >= r.LineCount() {
		return r.Len()
	}
	start := r.LineStartOffset(point.Line)
	end := r.LineEndOffset(point.Line)
	if ByteOffset(point.Column) >= end-start {
		return end
	}
	return start + ByteOffset(point.Column)
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// ChunkCount returns the total number of chunks in the rope.
func (r Rope) ChunkCount() int {
	count := 0
	for it := r.Chunks(); it.Next(); {
		count++
	}
	return count
}

// checkBounds panics unless 0 <= offset <= Len().
func (r Rope) checkBounds(op string, offset ByteOffset) {
	if offset < 0 || offset > r.Len() {
		panic(&OffsetError{Op: op, Offset: offset, Len: r.Len(), Err: ErrOffsetOutOfRange})
	}
}

// checkOffset panics unless offset is in bounds and on a char boundary.
func (r Rope) checkOffset(op string, offset ByteOffset) {
	r.checkBounds(op, offset)
	if !r.IsCharBoundary(offset) {
		panic(&OffsetError{Op: op, Offset: offset, Len: r.Len(), Err: ErrNotCharBoundary})
	}
}

// checkRange panics unless [start, end) is a valid boundary-aligned range.
func (r Rope) checkRange(op string, start, end ByteOffset) {
	if start > end {
		panic(&OffsetError{Op: op, Offset: start, Len: r.Len(), Err: fmt.Errorf("%w: start %d > end %d", ErrRangeInvalid, start, end)})
	}
	r.checkOffset(op, start)
	r.checkOffset(op, end)
}
