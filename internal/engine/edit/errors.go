package edit

import (
	"errors"
	"fmt"
)

// Validation errors returned by ChangeSet.Capture.
var (
	// ErrChangeOutOfRange indicates a change range outside the text or with Start > End.
	ErrChangeOutOfRange = errors.New("change out of range")

	// ErrNotCharBoundary indicates a change offset inside a UTF-8 sequence.
	ErrNotCharBoundary = errors.New("change offset not on a character boundary")

	// ErrInvalidUTF8 indicates inserted text that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("inserted text is not valid UTF-8")

	// ErrPreImageMismatch indicates a supplied pre-image that differs from the text it replaces.
	ErrPreImageMismatch = errors.New("pre-image does not match text")
)

// ChangeError reports which change of a set failed validation.
type ChangeError struct {
	Index  int
	Change Change
	Err    error
}

func (e *ChangeError) Error() string {
	return fmt.Sprintf("change %d (%s): %v", e.Index, e.Change, e.Err)
}

func (e *ChangeError) Unwrap() error {
	return e.Err
}
