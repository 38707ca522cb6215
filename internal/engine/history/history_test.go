package history

import (
	"errors"
	"testing"
	"time"

	"github.com/dshills/forge/internal/engine/edit"
)

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// insertTx builds a transaction and inverse for inserting text at pos.
func insertTx(pos int64, text string) (edit.Transaction, edit.Transaction) {
	tx := edit.NewTransaction(edit.Insert(pos, text))
	inv := edit.NewTransaction(edit.DeleteText(pos, text))
	return tx, inv
}

func TestEmptyHistory(t *testing.T) {
	h := New()

	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should not undo or redo")
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history should return false")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo on empty history should return false")
	}
	if h.Current() != Root || h.Len() != 1 {
		t.Errorf("Current() = %d, Len() = %d; want root only", h.Current(), h.Len())
	}
}

func TestPushUndoRedo(t *testing.T) {
	h := New()
	tx, inv := insertTx(0, "a")
	idx := h.Push(tx, inv)

	if idx != 1 || h.Current() != 1 {
		t.Fatalf("Push returned %d, current %d; want 1", idx, h.Current())
	}

	got, ok := h.Undo()
	if !ok {
		t.Fatal("Undo should succeed")
	}
	if got.Changes[0] != inv.Changes[0] {
		t.Errorf("Undo returned %v, want the inverse", got.Changes)
	}
	if h.Current() != Root {
		t.Errorf("Current() = %d after undo, want root", h.Current())
	}

	got, ok = h.Redo()
	if !ok {
		t.Fatal("Redo should succeed")
	}
	if got.Changes[0] != tx.Changes[0] {
		t.Errorf("Redo returned %v, want the forward transaction", got.Changes)
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo at a leaf should return false")
	}
}

func TestBranching(t *testing.T) {
	h := New()
	e1 := h.Push(insertTx(0, "1"))
	e2 := h.Push(insertTx(1, "2"))
	h.Undo()
	e3 := h.Push(insertTx(1, "3"))

	children := h.Children(e1)
	if len(children) != 2 || children[0] != e2 || children[1] != e3 {
		t.Fatalf("Children(e1) = %v, want [%d %d]", children, e2, e3)
	}

	h.Undo()
	tx, ok := h.Redo()
	if !ok {
		t.Fatal("Redo should succeed")
	}
	if h.Current() != e2 {
		t.Errorf("redo went to %d, want first child %d", h.Current(), e2)
	}
	if tx.Changes[0].Text != "2" {
		t.Errorf("redo applied %q, want %q", tx.Changes[0].Text, "2")
	}
}

func TestPathTo(t *testing.T) {
	h := New()
	e1 := h.Push(insertTx(0, "1"))
	e2 := h.Push(insertTx(1, "2"))
	h.Undo()
	e3 := h.Push(insertTx(1, "3"))
	e4 := h.Push(insertTx(2, "4"))

	tests := []struct {
		name   string
		from   int
		target int
		want   []Step
	}{
		{"self", e4, e4, nil},
		{"to root", e4, Root, []Step{{e4, Up}, {e3, Up}, {e1, Up}}},
		{"from root", Root, e2, []Step{{e1, Down}, {e2, Down}}},
		{"across branches", e4, e2, []Step{{e4, Up}, {e3, Up}, {e2, Down}}},
		{"sibling", e2, e3, []Step{{e2, Up}, {e3, Down}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.current = tt.from
			got, err := h.PathTo(tt.target)
			if err != nil {
				t.Fatalf("PathTo: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("PathTo = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("step %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPathToUnknownNode(t *testing.T) {
	h := New()
	if _, err := h.PathTo(5); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("PathTo(5) error = %v, want ErrNodeNotFound", err)
	}
	if _, err := h.Jump(-1); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Jump(-1) error = %v, want ErrNodeNotFound", err)
	}
	if _, err := h.Node(3); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Node(3) error = %v, want ErrNodeNotFound", err)
	}
}

func TestJump(t *testing.T) {
	h := New()
	e1 := h.Push(insertTx(0, "1"))
	e2 := h.Push(insertTx(1, "2"))
	h.Undo()
	e3 := h.Push(insertTx(1, "3"))

	txs, err := h.Jump(e2)
	if err != nil {
		t.Fatalf("Jump: %v", err)
	}
	if h.Current() != e2 {
		t.Errorf("Current() = %d, want %d", h.Current(), e2)
	}
	if len(txs) != 2 {
		t.Fatalf("Jump returned %d transactions, want 2", len(txs))
	}
	n3, _ := h.Node(e3)
	n2, _ := h.Node(e2)
	if txs[0].Changes[0] != n3.Inverse.Changes[0] {
		t.Error("first step should revert e3")
	}
	if txs[1].Changes[0] != n2.Transaction.Changes[0] {
		t.Error("second step should apply e2")
	}
	if n, _ := h.Node(e1); len(n.Children) != 2 {
		t.Error("Jump must not change the tree shape")
	}
}

func TestNodeReturnsCopy(t *testing.T) {
	h := New()
	tx, inv := insertTx(0, "x")
	child := h.Push(tx, inv)
	h.Undo()

	root, err := h.Node(Root)
	if err != nil {
		t.Fatalf("Node(Root): %v", err)
	}
	root.Children[0] = Root
	n, _ := h.Node(child)
	n.Transaction.Changes[0] = edit.Insert(0, "zzz")

	if got := h.Children(Root); len(got) != 1 || got[0] != child {
		t.Fatalf("Children(Root) = %v, want [%d]", got, child)
	}
	redo, ok := h.Redo()
	if !ok {
		t.Fatal("Redo should succeed")
	}
	if h.Current() != child {
		t.Errorf("Current() = %d, want %d", h.Current(), child)
	}
	if redo.Changes[0] != tx.Changes[0] {
		t.Errorf("Redo returned %v, want %v", redo.Changes, tx.Changes)
	}
}

func TestInfo(t *testing.T) {
	h := New(WithClock(fixedClock()))
	h.Push(insertTx(0, "hello"))
	h.Push(edit.NewTransaction(edit.DeleteText(0, "he")), edit.NewTransaction(edit.Insert(0, "he")))

	info, err := h.Info(2)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Description != "delete" || info.BytesDelta != -2 {
		t.Errorf("Info(2) = %+v", info)
	}
	if !info.Timestamp.Equal(time.Date(2024, 1, 1, 0, 0, 3, 0, time.UTC)) {
		t.Errorf("Timestamp = %v", info.Timestamp)
	}

	root, _ := h.Info(Root)
	if root.Description != "original" {
		t.Errorf("root description = %q", root.Description)
	}
}

func TestUndoRedoInfo(t *testing.T) {
	h := New()
	h.Push(insertTx(0, "a"))
	h.Push(insertTx(1, "b"))
	h.Push(insertTx(2, "c"))
	h.Undo()

	undo := h.UndoInfo()
	if len(undo) != 2 || undo[0].Node != 2 || undo[1].Node != 1 {
		t.Errorf("UndoInfo = %+v", undo)
	}
	redo := h.RedoInfo()
	if len(redo) != 1 || redo[0].Node != 3 {
		t.Errorf("RedoInfo = %+v", redo)
	}

	if info, ok := h.PeekUndo(); !ok || info.Node != 2 {
		t.Errorf("PeekUndo = %+v, %v", info, ok)
	}
	if info, ok := h.PeekRedo(); !ok || info.Node != 3 {
		t.Errorf("PeekRedo = %+v, %v", info, ok)
	}
}
