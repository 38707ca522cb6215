package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/forge/internal/engine/edit"
	"github.com/dshills/forge/internal/engine/history"
	"github.com/dshills/forge/internal/engine/rope"
	"github.com/dshills/forge/internal/engine/selection"
	"github.com/dshills/forge/internal/engine/syntax"
)

// ByteOffset is an absolute byte position in the text.
type ByteOffset = rope.ByteOffset

// Point is a 0-indexed line/column position. Columns count bytes.
type Point = rope.Point

// HistoryView is the read-only part of a buffer's history.
type HistoryView interface {
	Current() int
	Len() int
	Node(i int) (history.Node, error)
	Children(i int) []int
	CanUndo() bool
	CanRedo() bool
	PathTo(target int) ([]history.Step, error)
	Info(i int) (history.OperationInfo, error)
	UndoInfo() []history.OperationInfo
	RedoInfo() []history.OperationInfo
	PeekUndo() (history.OperationInfo, bool)
	PeekRedo() (history.OperationInfo, bool)
}

// Buffer is an editable text document: the text itself, a selection, a
// branching undo history, and an optional syntax tree kept in step with
// every edit.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	id   uuid.UUID
	text rope.Rope
	sel  selection.Selection

	history *history.History
	syntax  *syntax.Synchronizer

	path          string
	lineEnding    LineEnding
	encoding      Encoding
	tabWidth      int
	readOnly      bool
	revision      uint64
	savedNode     int
	lineEndingSet bool

	listeners []listener
	nextID    int

	// creation-time settings
	initContent   string
	syntaxEnabled bool
	language      string
	registry      *syntax.Registry
	now           func() time.Time

	logger *zap.Logger
}

// New creates a buffer. The content set by WithContent is the saved
// state: a new buffer is not dirty.
func New(opts ...Option) *Buffer {
	b := newBuffer(opts)
	b.init(b.initContent)
	return b
}

// Open loads the file at path. The encoding is detected from a byte
// order mark and the line ending style from the content; the text is
// kept exactly as read.
func Open(path string, opts ...Option) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	b := newBuffer(opts)
	b.path = path
	if err := b.load(data); err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	b.logger.Debug("buffer opened",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
		zap.Stringer("encoding", b.encoding),
		zap.Stringer("line_ending", b.lineEnding))
	return b, nil
}

// NewFromReader creates a buffer from everything readable from r, with
// the same detection as Open.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b := newBuffer(opts)
	if err := b.load(data); err != nil {
		return nil, err
	}
	return b, nil
}

func newBuffer(opts []Option) *Buffer {
	b := &Buffer{
		id:            uuid.New(),
		tabWidth:      DefaultTabWidth,
		syntaxEnabled: true,
		logger:        zap.NewNop(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Buffer) load(data []byte) error {
	text, enc, err := decode(data)
	if err != nil {
		return err
	}
	b.encoding = enc
	b.init(text)
	return nil
}

// init installs the initial text and sets up history and syntax.
func (b *Buffer) init(text string) {
	b.text = rope.FromString(text)
	b.sel = selection.At(0)
	b.history = history.New(history.WithClock(b.now))
	b.savedNode = b.history.Current()
	if !b.lineEndingSet {
		b.lineEnding = DetectLineEnding(text)
	}
	b.initContent = ""
	if b.syntaxEnabled {
		b.syntax = b.newSynchronizer()
	}
}

// newSynchronizer resolves the buffer's language and parses the initial
// text. It returns nil when no grammar applies.
func (b *Buffer) newSynchronizer() *syntax.Synchronizer {
	if b.registry == nil {
		b.registry = syntax.DefaultRegistry()
	}
	name := b.language
	if name == "" {
		if b.path == "" {
			return nil
		}
		detected, err := b.registry.Detect(b.path)
		if err != nil {
			b.logger.Debug("no grammar for file", zap.String("path", b.path))
			return nil
		}
		name = detected
	}
	lang, err := b.registry.Language(name)
	if err != nil {
		b.logger.Warn("syntax disabled", zap.String("language", name), zap.Error(err))
		return nil
	}

	s := syntax.New(name, lang, syntax.WithLogger(b.logger.Named("syntax")))
	// A failed first parse leaves no tree; the next reparse starts over.
	_ = s.Parse(context.Background(), b.text)
	return s
}

// Close releases the syntax tree and parser. The buffer must not be
// used afterwards.
func (b *Buffer) Close() {
	if b.syntax != nil {
		b.syntax.Close()
		b.syntax = nil
	}
	b.listeners = nil
}

// Apply applies tx as one undoable step.
//
// The changes are validated against the current text first; if any is
// out of range, off a character boundary, or carries a pre-image that
// does not match, an error wrapping *edit.ChangeError is returned and
// nothing changes. A transaction without changes only installs its
// selection, if it carries one.
//
// The returned error may also be a *syntax.ParseError, in which case the
// edit has been applied and only the syntax tree is stale.
func (b *Buffer) Apply(tx edit.Transaction) error {
	if b.readOnly {
		return ErrReadOnly
	}
	captured, err := tx.Capture(b.text)
	if err != nil {
		return err
	}
	if captured.IsEmpty() {
		if captured.Selection != nil {
			b.SetSelection(*captured.Selection)
		}
		return nil
	}

	before, selBefore := b.text, b.sel
	b.mutate(captured)
	b.history.Push(
		captured.WithSelection(b.sel),
		captured.Invert(before).WithSelection(selBefore),
	)
	err = b.reparse()
	b.notify(EventApply, captured.Changes)
	return err
}

// Undo reverts the current history node. It returns false when there is
// nothing to undo.
func (b *Buffer) Undo() (bool, error) {
	if b.readOnly {
		return false, ErrReadOnly
	}
	tx, ok := b.history.Undo()
	if !ok {
		return false, nil
	}
	b.mutate(tx)
	err := b.reparse()
	b.notify(EventUndo, tx.Changes)
	return true, err
}

// Redo reapplies the first child of the current history node. It
// returns false when there is nothing to redo.
func (b *Buffer) Redo() (bool, error) {
	if b.readOnly {
		return false, ErrReadOnly
	}
	tx, ok := b.history.Redo()
	if !ok {
		return false, nil
	}
	b.mutate(tx)
	err := b.reparse()
	b.notify(EventRedo, tx.Changes)
	return true, err
}

// Jump moves to any history node, undoing up to the common ancestor and
// redoing down to the target. It is the way to reach branches that Redo
// does not follow.
func (b *Buffer) Jump(node int) error {
	if b.readOnly {
		return ErrReadOnly
	}
	txs, err := b.history.Jump(node)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		return nil
	}

	var changes edit.ChangeSet
	for _, tx := range txs {
		b.mutate(tx)
		changes = append(changes, tx.Changes...)
	}
	b.logger.Debug("history jump",
		zap.Int("node", node),
		zap.Int("steps", len(txs)))
	err = b.reparse()
	b.notify(EventJump, changes)
	return err
}

// mutate applies a captured transaction. Every intermediate text is
// computed and the resulting selection validated before the syntax tree
// or the buffer is touched.
func (b *Buffer) mutate(tx edit.Transaction) {
	states := make([]rope.Rope, 1, len(tx.Changes)+1)
	states[0] = b.text
	for _, c := range tx.Changes {
		states = append(states, c.Apply(states[len(states)-1]))
	}
	text := states[len(states)-1]

	var sel selection.Selection
	if tx.Selection != nil {
		sel = tx.Selection.Normalize()
	} else {
		sel = tx.MapSelection(b.sel).Normalize()
	}
	checkSelection(sel, text)

	if b.syntax != nil {
		for i, c := range tx.Changes {
			b.syntax.Edit(states[i], c)
		}
	}
	b.text = text
	b.sel = sel
	b.revision++
}

func (b *Buffer) reparse() error {
	if b.syntax == nil {
		return nil
	}
	return b.syntax.Reparse(context.Background(), b.text)
}

// Insert inserts text at pos as one undoable step.
func (b *Buffer) Insert(pos ByteOffset, text string) error {
	return b.Apply(edit.NewTransaction(edit.Insert(pos, text)))
}

// Delete removes [start, end) as one undoable step.
func (b *Buffer) Delete(start, end ByteOffset) error {
	return b.Apply(edit.NewTransaction(edit.Delete(start, end)))
}

// Replace replaces [start, end) with text as one undoable step.
func (b *Buffer) Replace(start, end ByteOffset, text string) error {
	return b.Apply(edit.NewTransaction(edit.Replace(start, end, text)))
}

// ReplaceSelection replaces every selected range with text, leaving a
// cursor after each insertion. All ranges change in one undoable step.
func (b *Buffer) ReplaceSelection(text string) error {
	ranges := b.sel.Normalize().Ranges()
	changes := make([]edit.Change, 0, len(ranges))
	cursors := make([]selection.Range, 0, len(ranges))
	var delta ByteOffset
	for _, r := range ranges {
		start := r.Start() + delta
		changes = append(changes, edit.Replace(start, r.End()+delta, text))
		delta += ByteOffset(len(text)) - r.Len()
		cursors = append(cursors, selection.Point(start+ByteOffset(len(text))))
	}
	primary := b.sel.Normalize().PrimaryIndex()
	tx := edit.NewTransaction(changes...).WithSelection(selection.New(cursors, primary))
	return b.Apply(tx)
}

// Text returns the full text.
func (b *Buffer) Text() string {
	return b.text.String()
}

// Rope returns the current text. Ropes are immutable, so the value stays
// valid as a snapshot across later edits.
func (b *Buffer) Rope() rope.Rope {
	return b.text
}

// Len returns the text length in bytes.
func (b *Buffer) Len() ByteOffset {
	return b.text.Len()
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() uint32 {
	return b.text.LineCount()
}

// Slice returns the text in [start, end).
func (b *Buffer) Slice(start, end ByteOffset) string {
	return b.text.Slice(start, end)
}

// LineText returns the text of a line without its "\n".
func (b *Buffer) LineText(line uint32) string {
	return b.text.LineText(line)
}

// OffsetToLineCol converts an offset to a line and byte column. It
// panics if offset is outside the text.
func (b *Buffer) OffsetToLineCol(offset ByteOffset) Point {
	return b.text.OffsetToPoint(offset)
}

// LineColToOffset converts a line and byte column to an offset. The
// column may address any character boundary on the line, including its
// end; anything else is ErrPositionOutOfRange.
func (b *Buffer) LineColToOffset(line, col uint32) (ByteOffset, error) {
	if line >= b.text.LineCount() {
		return 0, fmt.Errorf("%w: line %d of %d", ErrPositionOutOfRange, line, b.text.LineCount())
	}
	// PointToOffset clamps to the line end, so a clamped result is out
	// of range.
	offset := b.text.PointToOffset(rope.Point{Line: line, Column: col})
	if offset-b.text.LineStartOffset(line) != ByteOffset(col) || !b.text.IsCharBoundary(offset) {
		return 0, fmt.Errorf("%w: line %d column %d", ErrPositionOutOfRange, line, col)
	}
	return offset, nil
}

// Selection returns the current selection.
func (b *Buffer) Selection() selection.Selection {
	return b.sel
}

// SetSelection replaces the selection. It panics if a range lies outside
// the text or off a character boundary.
func (b *Buffer) SetSelection(sel selection.Selection) {
	sel = sel.Normalize()
	checkSelection(sel, b.text)
	b.sel = sel
}

// checkSelection panics unless sel is non-empty and every range lies on
// character boundaries within r.
func checkSelection(sel selection.Selection, r rope.Rope) {
	if sel.Len() == 0 {
		panic(fmt.Errorf("%w: no ranges", ErrInvalidSelection))
	}
	for _, rg := range sel.Ranges() {
		if !r.IsCharBoundary(rg.Anchor) || !r.IsCharBoundary(rg.Head) {
			panic(fmt.Errorf("%w: %s in text of %d bytes", ErrInvalidSelection, rg, r.Len()))
		}
	}
}

// IsDirty reports whether the text differs from the last saved state,
// judged by history position: undoing back to the saved node makes the
// buffer clean again.
func (b *Buffer) IsDirty() bool {
	return b.history.Current() != b.savedNode
}

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Path returns the associated file path, or "" for an untitled buffer.
func (b *Buffer) Path() string {
	return b.path
}

// LineEnding returns the line ending style of the buffer.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Encoding returns the encoding used when saving.
func (b *Buffer) Encoding() Encoding {
	return b.encoding
}

// TabWidth returns the tab width used for display columns.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// IsReadOnly reports whether the buffer rejects edits.
func (b *Buffer) IsReadOnly() bool {
	return b.readOnly
}

// Revision returns a counter incremented by every text change, including
// undo and redo.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// History returns a read-only view of the undo tree.
func (b *Buffer) History() HistoryView {
	return b.history
}

// Syntax returns the syntax synchronizer, or nil when the buffer has no
// language.
func (b *Buffer) Syntax() *syntax.Synchronizer {
	return b.syntax
}
