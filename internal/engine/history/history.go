package history

import (
	"fmt"
	"slices"
	"time"

	"github.com/dshills/forge/internal/engine/edit"
)

// Root is the index of the root node, the state before any edit.
const Root = 0

// Node is one applied transaction in the history tree.
type Node struct {
	// Transaction moves from the parent to this node.
	Transaction edit.Transaction

	// Inverse moves from this node back to the parent.
	Inverse edit.Transaction

	// Timestamp is when the node was pushed.
	Timestamp time.Time

	// Parent is the index of the parent node, -1 for the root.
	Parent int

	// Children are indices of child nodes, oldest first.
	Children []int
}

// Option configures a History.
type Option func(*History)

// WithClock sets the time source used to stamp new nodes.
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		h.now = now
	}
}

// History is a branching undo tree stored in an arena.
type History struct {
	nodes   []Node
	current int
	now     func() time.Time
}

// New creates a history holding only the root node.
func New(opts ...Option) *History {
	h := &History{now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	h.nodes = []Node{{Parent: -1, Timestamp: h.now()}}
	return h
}

// Push records tx, with its inverse, as a new child of the current node
// and makes it current. It returns the new node's index. A new child is
// added even when the current node already has children.
func (h *History) Push(tx, inverse edit.Transaction) int {
	idx := len(h.nodes)
	h.nodes = append(h.nodes, Node{
		Transaction: tx,
		Inverse:     inverse,
		Timestamp:   h.now(),
		Parent:      h.current,
	})
	parent := &h.nodes[h.current]
	parent.Children = append(parent.Children, idx)
	h.current = idx
	return idx
}

// Undo moves to the parent of the current node and returns the
// transaction that reverts the current node. It returns false at the
// root.
func (h *History) Undo() (edit.Transaction, bool) {
	if !h.CanUndo() {
		return edit.Transaction{}, false
	}
	n := h.nodes[h.current]
	h.current = n.Parent
	return n.Inverse, true
}

// Redo moves to the first child of the current node and returns its
// transaction. It returns false at a leaf.
func (h *History) Redo() (edit.Transaction, bool) {
	if !h.CanRedo() {
		return edit.Transaction{}, false
	}
	h.current = h.nodes[h.current].Children[0]
	return h.nodes[h.current].Transaction, true
}

// CanUndo returns true if the current node has a parent.
func (h *History) CanUndo() bool {
	return h.nodes[h.current].Parent >= 0
}

// CanRedo returns true if the current node has a child.
func (h *History) CanRedo() bool {
	return len(h.nodes[h.current].Children) > 0
}

// Current returns the index of the current node.
func (h *History) Current() int {
	return h.current
}

// Len returns the number of nodes, including the root.
func (h *History) Len() int {
	return len(h.nodes)
}

// Node returns a copy of the node at index i. Changing the copy does not
// affect the history.
func (h *History) Node(i int) (Node, error) {
	if i < 0 || i >= len(h.nodes) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	n := h.nodes[i]
	n.Children = slices.Clone(n.Children)
	n.Transaction = cloneTransaction(n.Transaction)
	n.Inverse = cloneTransaction(n.Inverse)
	return n, nil
}

func cloneTransaction(tx edit.Transaction) edit.Transaction {
	tx.Changes = slices.Clone(tx.Changes)
	if tx.Selection != nil {
		sel := *tx.Selection
		tx.Selection = &sel
	}
	return tx
}

// Children returns the child indices of node i, oldest first.
func (h *History) Children(i int) []int {
	if i < 0 || i >= len(h.nodes) {
		return nil
	}
	children := make([]int, len(h.nodes[i].Children))
	copy(children, h.nodes[i].Children)
	return children
}

// Direction is the way a Step moves through the tree.
type Direction uint8

const (
	// Up moves from a node to its parent.
	Up Direction = iota

	// Down moves from a node to one of its children.
	Down
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Step is one move along a path through the tree.
type Step struct {
	// Node is the node being left (Up) or entered (Down).
	Node      int
	Direction Direction
}

// PathTo returns the moves from the current node to target: up to the
// lowest common ancestor, then down to target.
func (h *History) PathTo(target int) ([]Step, error) {
	if target < 0 || target >= len(h.nodes) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, target)
	}

	depth := func(i int) int {
		d := 0
		for ; h.nodes[i].Parent >= 0; i = h.nodes[i].Parent {
			d++
		}
		return d
	}

	var up []Step
	var down []Step
	a, b := h.current, target
	da, db := depth(a), depth(b)
	for da > db {
		up = append(up, Step{Node: a, Direction: Up})
		a = h.nodes[a].Parent
		da--
	}
	for db > da {
		down = append(down, Step{Node: b, Direction: Down})
		b = h.nodes[b].Parent
		db--
	}
	for a != b {
		up = append(up, Step{Node: a, Direction: Up})
		down = append(down, Step{Node: b, Direction: Down})
		a = h.nodes[a].Parent
		b = h.nodes[b].Parent
	}

	steps := up
	for i := len(down) - 1; i >= 0; i-- {
		steps = append(steps, down[i])
	}
	return steps, nil
}

// Jump moves the current node to target and returns the transactions
// to apply, in order, to bring the text along.
func (h *History) Jump(target int) ([]edit.Transaction, error) {
	steps, err := h.PathTo(target)
	if err != nil {
		return nil, err
	}
	txs := make([]edit.Transaction, len(steps))
	for i, s := range steps {
		if s.Direction == Up {
			txs[i] = h.nodes[s.Node].Inverse
		} else {
			txs[i] = h.nodes[s.Node].Transaction
		}
	}
	h.current = target
	return txs, nil
}
