package rope

import (
	"errors"
	"fmt"
)

// Errors carried by the panics of invalid rope operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrNotCharBoundary  = errors.New("offset is not on a UTF-8 boundary")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrLineOutOfRange   = errors.New("line out of range")
)

// OffsetError is the panic value for an operation given an invalid offset.
type OffsetError struct {
	Op     string
	Offset ByteOffset
	Len    ByteOffset
	Err    error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("rope: %s at offset %d (len %d): %v", e.Op, e.Offset, e.Len, e.Err)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}

// LineError is the panic value for a line index past the end of the rope.
type LineError struct {
	Line      uint32
	LineCount uint32
}

func (e *LineError) Error() string {
	return fmt.Sprintf("rope: line %d of %d: %v", e.Line, e.LineCount, ErrLineOutOfRange)
}

func (e *LineError) Unwrap() error {
	return ErrLineOutOfRange
}
