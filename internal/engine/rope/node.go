package rope

import "strings"

// Tree structure constants
const (
	// MaxChildren is the maximum children per internal node.
	MaxChildren = 8

	// MaxChunksPerLeaf is the maximum chunks in a leaf node.
	MaxChunksPerLeaf = 4
)

// Node is a node in the rope B+ tree.
// Leaf nodes (height == 0) hold text chunks; internal nodes hold children.
// Every child of a node has height exactly one less than the node.
// Nodes are never mutated after construction, so subtrees are shared
// freely between rope versions.
type Node struct {
	height  uint8
	summary TextSummary

	children []*Node // internal nodes only
	chunks   []Chunk // leaf nodes only
}

// newLeafNode creates a leaf node holding the given chunks.
func newLeafNode(chunks []Chunk) *Node {
	n := &Node{chunks: chunks}
	for _, c := range chunks {
		n.summary = n.summary.Add(c.summary)
	}
	return n
}

// newInternalNode creates an internal node over same-height children.
func newInternalNode(children []*Node) *Node {
	n := &Node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, child := range children {
		n.summary = n.summary.Add(child.summary)
	}
	return n
}

// IsLeaf returns true if this is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.height == 0
}

// Len returns the byte length of text in this subtree.
func (n *Node) Len() ByteOffset {
	return n.summary.Bytes
}

// appendTo appends all text in this subtree to the builder.
func (n *Node) appendTo(sb *strings.Builder) {
	if n.IsLeaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange appends text in the byte range [start, end) to the builder.
func (n *Node) appendRange(sb *strings.Builder, start, end ByteOffset) {
	var pos ByteOffset
	if n.IsLeaf() {
		for _, c := range n.chunks {
			cEnd := pos + ByteOffset(c.Len())
			if cEnd > start && pos < end {
				lo := max(start-pos, 0)
				hi := min(end-pos, ByteOffset(c.Len()))
				sb.WriteString(c.data[lo:hi])
			}
			if cEnd >= end {
				return
			}
			pos = cEnd
		}
		return
	}

	for _, child := range n.children {
		cEnd := pos + child.Len()
		if cEnd > start && pos < end {
			child.appendRange(sb, max(start-pos, 0), min(end-pos, child.Len()))
		}
		if cEnd >= end {
			return
		}
		pos = cEnd
	}
}

// byteAt returns the byte at offset, which must be < n.Len().
func (n *Node) byteAt(offset ByteOffset) byte {
	for !n.IsLeaf() {
		for _, child := range n.children {
			if offset < child.Len() {
				n = child
				break
			}
			offset -= child.Len()
		}
	}
	for _, c := range n.chunks {
		if offset < ByteOffset(c.Len()) {
			return c.data[offset]
		}
		offset -= ByteOffset(c.Len())
	}
	return 0
}

// newlinesBefore counts the newlines in [0, offset).
func (n *Node) newlinesBefore(offset ByteOffset) uint32 {
	var lines uint32
	for {
		if offset >= n.Len() {
			return lines + n.summary.Lines
		}
		if n.IsLeaf() {
			for _, c := range n.chunks {
				if offset < ByteOffset(c.Len()) {
					return lines + CountLines(c.data[:offset])
				}
				offset -= ByteOffset(c.Len())
				lines += c.summary.Lines
			}
			return lines
		}
		for _, child := range n.children {
			if offset < child.Len() {
				n = child
				break
			}
			offset -= child.Len()
			lines += child.summary.Lines
		}
	}
}

// nthNewline returns the offset of the k-th newline (1-indexed).
// k must be in [1, n.summary.Lines].
func (n *Node) nthNewline(k uint32) ByteOffset {
	var base ByteOffset
	for !n.IsLeaf() {
		for _, child := range n.children {
			if k <= child.summary.Lines {
				n = child
				break
			}
			k -= child.summary.Lines
			base += child.Len()
		}
	}
	for _, c := range n.chunks {
		if k <= c.summary.Lines {
			return base + ByteOffset(FindNthNewline(c.data, k))
		}
		k -= c.summary.Lines
		base += ByteOffset(c.Len())
	}
	return base
}

// split splits the node at offset. Either side is nil when empty; a
// non-nil side has the same height as n.
func (n *Node) split(offset ByteOffset) (*Node, *Node) {
	if offset <= 0 {
		return nil, n
	}
	if offset >= n.Len() {
		return n, nil
	}

	var pos ByteOffset
	if n.IsLeaf() {
		var left, right []Chunk
		for _, c := range n.chunks {
			end := pos + ByteOffset(c.Len())
			switch {
			case end <= offset:
				left = append(left, c)
			case pos >= offset:
				right = append(right, c)
			default:
				l, r := c.Split(int(offset - pos))
				left = append(left, l)
				right = append(right, r)
			}
			pos = end
		}
		return newLeafNode(left), newLeafNode(right)
	}

	var left, right []*Node
	for _, child := range n.children {
		end := pos + child.Len()
		switch {
		case end <= offset:
			left = append(left, child)
		case pos >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - pos)
			left = append(left, l)
			right = append(right, r)
		}
		pos = end
	}
	return newInternalNode(left), newInternalNode(right)
}

// collapse strips single-child internal nodes off the top of a tree.
func collapse(n *Node) *Node {
	for n != nil && !n.IsLeaf() && len(n.children) == 1 {
		n = n.children[0]
	}
	return n
}

// rebalance collapses the root and rebuilds the tree when repeated
// splits have left it much taller than its size requires. A tree built
// by buildFromChunks never trips the threshold.
func rebalance(n *Node) *Node {
	n = collapse(n)
	if n == nil || n.height <= 2 {
		return n
	}
	shift := min(2*uint(n.height-2), 48)
	if n.Len() >= ByteOffset(MinChunkSize)<<shift {
		return n
	}
	var sb strings.Builder
	sb.Grow(int(n.Len()))
	n.appendTo(&sb)
	return buildFromChunks(splitIntoChunks(sb.String()))
}

// concat joins two trees, keeping all leaves at the same depth.
func concat(left, right *Node) *Node {
	if left == nil || left.Len() == 0 {
		return right
	}
	if right == nil || right.Len() == 0 {
		return left
	}
	nodes := join(left, right)
	if len(nodes) == 1 {
		return nodes[0]
	}
	return newInternalNode(nodes)
}

// join merges two non-empty trees and returns one or two nodes whose
// height is the larger of the two input heights.
func join(l, r *Node) []*Node {
	switch {
	case l.height == r.height:
		if l.IsLeaf() {
			return packLeaves(mergeSeam(l.chunks, r.chunks))
		}
		children := make([]*Node, 0, len(l.children)+len(r.children))
		children = append(children, l.children...)
		children = append(children, r.children...)
		return packInternal(children)

	case l.height > r.height:
		last := len(l.children) - 1
		sub := join(l.children[last], r)
		children := make([]*Node, 0, last+len(sub))
		children = append(children, l.children[:last]...)
		children = append(children, sub...)
		return packInternal(children)

	default:
		sub := join(l, r.children[0])
		children := make([]*Node, 0, len(sub)+len(r.children)-1)
		children = append(children, sub...)
		children = append(children, r.children[1:]...)
		return packInternal(children)
	}
}

// mergeSeam concatenates two chunk lists, fusing the chunks that meet at
// the seam when they fit in one chunk.
func mergeSeam(a, b []Chunk) []Chunk {
	out := make([]Chunk, 0, len(a)+len(b))
	out = append(out, a...)
	if len(a) > 0 && len(b) > 0 && a[len(a)-1].Len()+b[0].Len() <= MaxChunkSize {
		out[len(out)-1] = NewChunk(a[len(a)-1].data + b[0].data)
		b = b[1:]
	}
	return append(out, b...)
}

// packLeaves builds one leaf, or two when chunks exceed MaxChunksPerLeaf.
func packLeaves(chunks []Chunk) []*Node {
	if len(chunks) <= MaxChunksPerLeaf {
		return []*Node{newLeafNode(chunks)}
	}
	mid := len(chunks) / 2
	return []*Node{
		newLeafNode(chunks[:mid:mid]),
		newLeafNode(chunks[mid:]),
	}
}

// packInternal builds one internal node, or two when children exceed
// MaxChildren.
func packInternal(children []*Node) []*Node {
	if len(children) <= MaxChildren {
		return []*Node{newInternalNode(children)}
	}
	mid := len(children) / 2
	return []*Node{
		newInternalNode(children[:mid:mid]),
		newInternalNode(children[mid:]),
	}
}

// buildFromChunks builds a balanced tree bottom-up.
func buildFromChunks(chunks []Chunk) *Node {
	if len(chunks) == 0 {
		return nil
	}

	var nodes []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := min(i+MaxChunksPerLeaf, len(chunks))
		nodes = append(nodes, newLeafNode(chunks[i:end:end]))
	}
	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := min(i+MaxChildren, len(nodes))
			parents = append(parents, newInternalNode(nodes[i:end:end]))
		}
		nodes = parents
	}
	return nodes[0]
}
