package engine

import (
	"github.com/rivo/uniseg"
)

// graphemeWindow is the initial number of bytes examined when looking
// for the next grapheme boundary.
const graphemeWindow = 64

// NextGraphemeBoundary returns the end of the grapheme cluster that
// starts at pos, so a cursor at pos can step over one user-perceived
// character. At the end of the text it returns Len().
func (b *Buffer) NextGraphemeBoundary(pos ByteOffset) ByteOffset {
	n := b.text.Len()
	if pos >= n {
		return n
	}
	for size := ByteOffset(graphemeWindow); ; size *= 2 {
		end := min(pos+size, n)
		for !b.text.IsCharBoundary(end) {
			end++
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(b.text.Slice(pos, end), -1)
		if rest != "" || end == n {
			return pos + ByteOffset(len(cluster))
		}
	}
}

// PrevGraphemeBoundary returns the start of the grapheme cluster that
// ends at or contains pos-1. At the start of the text it returns 0.
func (b *Buffer) PrevGraphemeBoundary(pos ByteOffset) ByteOffset {
	if pos <= 0 {
		return 0
	}
	pos = min(pos, b.text.Len())
	line := b.text.OffsetToLine(pos)
	start := b.text.LineStartOffset(line)
	if pos == start {
		// Step over the line break; "\r\n" is a single cluster.
		if pos >= 2 {
			if c, _ := b.text.ByteAt(pos - 2); c == '\r' {
				return pos - 2
			}
		}
		return pos - 1
	}

	s := b.text.Slice(start, b.text.LineEndOffset(line))
	boundary := start
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		next := boundary + ByteOffset(len(cluster))
		if next >= pos {
			break
		}
		boundary = next
	}
	return boundary
}

// DisplayColumn returns the screen column of pos within its line. Wide
// characters count two columns and tabs advance to the next multiple of
// the tab width.
func (b *Buffer) DisplayColumn(pos ByteOffset) int {
	line := b.text.OffsetToLine(pos)
	s := b.text.Slice(b.text.LineStartOffset(line), pos)
	col := 0
	state := -1
	for s != "" {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			col += b.tabWidth - col%b.tabWidth
			continue
		}
		col += width
	}
	return col
}
