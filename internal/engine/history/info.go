package history

import "time"

// OperationInfo provides read-only info about a history node.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	Node        int       // Index of the node
	Description string    // Human-readable description
	Timestamp   time.Time // When the node was pushed
	BytesDelta  int64     // Positive for insertions, negative for deletions
}

// Info returns info about node i.
func (h *History) Info(i int) (OperationInfo, error) {
	n, err := h.Node(i)
	if err != nil {
		return OperationInfo{}, err
	}
	return h.info(i, n), nil
}

func (h *History) info(i int, n Node) OperationInfo {
	desc := "original"
	if i != Root {
		desc = n.Transaction.Description()
	}
	return OperationInfo{
		Node:        i,
		Description: desc,
		Timestamp:   n.Timestamp,
		BytesDelta:  n.Transaction.Changes.LenDelta(),
	}
}

// UndoInfo returns info about the nodes undo would pass through, from
// the current node up to (not including) the root.
func (h *History) UndoInfo() []OperationInfo {
	var result []OperationInfo
	for i := h.current; h.nodes[i].Parent >= 0; i = h.nodes[i].Parent {
		result = append(result, h.info(i, h.nodes[i]))
	}
	return result
}

// RedoInfo returns info about the nodes redo would follow from the
// current node.
func (h *History) RedoInfo() []OperationInfo {
	var result []OperationInfo
	for i := h.current; len(h.nodes[i].Children) > 0; {
		i = h.nodes[i].Children[0]
		result = append(result, h.info(i, h.nodes[i]))
	}
	return result
}

// PeekUndo returns info about the node the next undo reverts.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if !h.CanUndo() {
		return OperationInfo{}, false
	}
	return h.info(h.current, h.nodes[h.current]), true
}

// PeekRedo returns info about the node the next redo applies.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if !h.CanRedo() {
		return OperationInfo{}, false
	}
	next := h.nodes[h.current].Children[0]
	return h.info(next, h.nodes[next]), true
}
