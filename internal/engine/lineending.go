package engine

import "strings"

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending bytes.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding reports the line ending style used by s. Any "\r\n"
// makes it CRLF; otherwise any bare "\r" makes it CR. Text without
// either, including empty text, is LF.
func DetectLineEnding(s string) LineEnding {
	switch {
	case strings.Contains(s, "\r\n"):
		return LineEndingCRLF
	case strings.Contains(s, "\r"):
		return LineEndingCR
	default:
		return LineEndingLF
	}
}
