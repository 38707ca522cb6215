package rope

import "strings"

// ByteOffset represents an absolute byte position in the rope.
type ByteOffset = int64

// Point represents a line/column position.
// Line and Column are both 0-indexed; Column counts bytes.
type Point struct {
	Line   uint32
	Column uint32
}

// TextSummary holds aggregated metrics for a text span.
// Summaries form a monoid under Add, which lets internal nodes
// answer offset and line queries without touching leaf text.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes ByteOffset

	// Lines is the number of newline characters.
	Lines uint32

	// Flags indicate text properties for fast paths.
	Flags TextFlags
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all bytes are ASCII (< 128), so every
	// offset is a character boundary.
	FlagASCII TextFlags = 1 << iota
)

// Add combines two summaries.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}
	return TextSummary{
		Bytes: s.Bytes + other.Bytes,
		Lines: s.Lines + other.Lines,
		Flags: s.Flags & other.Flags,
	}
}

// ComputeSummary calculates metrics for a string.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: ByteOffset(len(s)), Flags: FlagASCII}
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '\n':
			sum.Lines++
		case b >= 0x80:
			sum.Flags &^= FlagASCII
		}
	}
	return sum
}

// CountLines returns the number of newlines in a string.
func CountLines(s string) uint32 {
	return uint32(strings.Count(s, "\n"))
}

// FindNthNewline returns the byte index of the nth newline (1-indexed),
// or -1 if s has fewer than n newlines.
func FindNthNewline(s string, n uint32) int {
	if n == 0 {
		return -1
	}
	base := 0
	for {
		i := strings.IndexByte(s[base:], '\n')
		if i < 0 {
			return -1
		}
		n--
		if n == 0 {
			return base + i
		}
		base += i + 1
	}
}
