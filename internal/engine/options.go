package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/dshills/forge/internal/engine/syntax"
)

// Default configuration values.
const (
	DefaultTabWidth = 4
)

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithContent sets the initial content of a buffer created by New.
func WithContent(content string) Option {
	return func(b *Buffer) {
		b.initContent = content
	}
}

// WithPath associates a file path with a buffer created by New or
// NewFromReader. Nothing is read from it.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithTabWidth sets the tab width used for display columns.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

// WithLineEnding sets the line ending style reported by the buffer.
// Without it the style is detected from the initial text.
func WithLineEnding(ending LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = ending
		b.lineEndingSet = true
	}
}

// WithEncoding sets the encoding used when saving a new buffer. Loaded
// files use the encoding detected from their content.
func WithEncoding(enc Encoding) Option {
	return func(b *Buffer) {
		b.encoding = enc
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(b *Buffer) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithSyntax enables or disables syntax tracking. It is enabled by default.
func WithSyntax(enabled bool) Option {
	return func(b *Buffer) {
		b.syntaxEnabled = enabled
	}
}

// WithLanguage forces the syntax language instead of detecting it from
// the file extension.
func WithLanguage(name string) Option {
	return func(b *Buffer) {
		b.language = name
	}
}

// WithRegistry sets the grammar registry. The default is
// syntax.DefaultRegistry.
func WithRegistry(r *syntax.Registry) Option {
	return func(b *Buffer) {
		b.registry = r
	}
}

// WithClock sets the time source used to stamp history nodes.
func WithClock(now func() time.Time) Option {
	return func(b *Buffer) {
		b.now = now
	}
}

// WithReadOnly creates a read-only buffer.
// Mutations return ErrReadOnly.
func WithReadOnly() Option {
	return func(b *Buffer) {
		b.readOnly = true
	}
}
