package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownLanguage indicates a language name or extension with no grammar.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrNoTree indicates an operation that needs a parse tree before one exists.
	ErrNoTree = errors.New("no syntax tree")
)

// ParseError wraps a parser failure. The previous tree is retained.
type ParseError struct {
	Language string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Language, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// QueryError wraps a query compilation failure.
type QueryError struct {
	Language string
	Query    string
	Err      error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Language, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
