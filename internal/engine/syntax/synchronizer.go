package syntax

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/dshills/forge/internal/engine/edit"
	"github.com/dshills/forge/internal/engine/rope"
)

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = l
	}
}

// Synchronizer owns a parser and the latest parse tree for one buffer.
// It is not safe for concurrent use.
type Synchronizer struct {
	name    string
	lang    *sitter.Language
	parser  *sitter.Parser
	tree    *sitter.Tree
	queries map[string]*sitter.Query
	pending int
	logger  *zap.Logger
}

// New creates a synchronizer for the named grammar. No tree exists until
// the first Parse or Reparse.
func New(name string, lang *sitter.Language, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		name:    name,
		lang:    lang,
		parser:  sitter.NewParser(),
		queries: make(map[string]*sitter.Query),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser.SetLanguage(lang)
	return s
}

// Language returns the name of the grammar.
func (s *Synchronizer) Language() string {
	return s.name
}

// InputEdit computes the edit descriptor for applying c to r. r must be
// the text before c is applied.
func InputEdit(r rope.Rope, c edit.Change) sitter.EditInput {
	start := r.OffsetToPoint(c.Start)
	oldEnd := r.OffsetToPoint(c.End)
	return sitter.EditInput{
		StartIndex:  uint32(c.Start),
		OldEndIndex: uint32(c.End),
		NewEndIndex: uint32(c.NewEnd()),
		StartPoint:  toPoint(start),
		OldEndPoint: toPoint(oldEnd),
		NewEndPoint: toPoint(advance(start, c.Text)),
	}
}

// advance returns the point reached by writing text at p.
func advance(p rope.Point, text string) rope.Point {
	newlines := strings.Count(text, "\n")
	if newlines == 0 {
		return rope.Point{Line: p.Line, Column: p.Column + uint32(len(text))}
	}
	last := strings.LastIndexByte(text, '\n')
	return rope.Point{
		Line:   p.Line + uint32(newlines),
		Column: uint32(len(text) - last - 1),
	}
}

func toPoint(p rope.Point) sitter.Point {
	return sitter.Point{Row: p.Line, Column: p.Column}
}

// Edit feeds c to the current tree so its node ranges track the change.
// r must be the text before c is applied. Without a tree this does
// nothing.
func (s *Synchronizer) Edit(r rope.Rope, c edit.Change) {
	if s.tree == nil || c.Kind() == edit.KindNoop {
		return
	}
	s.tree.Edit(InputEdit(r, c))
	s.pending++
}

// Parse discards the current tree and parses r from scratch.
func (s *Synchronizer) Parse(ctx context.Context, r rope.Rope) error {
	return s.parse(ctx, nil, r)
}

// Reparse parses r incrementally, using the edited tree as the base.
// On failure the previous tree is kept and a *ParseError is returned.
func (s *Synchronizer) Reparse(ctx context.Context, r rope.Rope) error {
	return s.parse(ctx, s.tree, r)
}

func (s *Synchronizer) parse(ctx context.Context, old *sitter.Tree, r rope.Rope) error {
	tree, err := s.parser.ParseCtx(ctx, old, r.Bytes())
	if err == nil && tree == nil {
		err = ErrNoTree
	}
	if err != nil {
		s.logger.Warn("syntax parse failed",
			zap.String("language", s.name),
			zap.Bool("incremental", old != nil),
			zap.Error(err))
		return &ParseError{Language: s.name, Err: err}
	}

	s.logger.Debug("syntax parsed",
		zap.String("language", s.name),
		zap.Int("edits", s.pending),
		zap.Bool("incremental", old != nil),
		zap.Bool("has_error", tree.RootNode().HasError()))
	s.tree = tree
	s.pending = 0
	return nil
}

// Tree returns the latest parse tree, or nil.
func (s *Synchronizer) Tree() *sitter.Tree {
	return s.tree
}

// Root returns the root node of the latest tree, or nil.
func (s *Synchronizer) Root() *sitter.Node {
	if s.tree == nil {
		return nil
	}
	return s.tree.RootNode()
}

// HasError reports whether the latest tree contains syntax errors.
func (s *Synchronizer) HasError() bool {
	root := s.Root()
	return root != nil && root.HasError()
}

// Close releases the parser, the tree, and compiled queries.
func (s *Synchronizer) Close() {
	for _, q := range s.queries {
		q.Close()
	}
	s.queries = nil
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
	s.parser.Close()
}
