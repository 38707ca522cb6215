package engine

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrNoPath indicates a save on a buffer with no associated file.
	ErrNoPath = errors.New("buffer has no file path")

	// ErrInvalidEncoding indicates file content that is not valid text in its detected encoding.
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrPositionOutOfRange indicates a line/column outside the text.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrInvalidSelection is wrapped in the panic value for a selection
	// that is empty or lies outside the text.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrReadOnly indicates a mutation was attempted on a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")
)

// FileError records a failed file operation and the path involved.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
