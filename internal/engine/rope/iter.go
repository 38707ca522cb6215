package rope

// ChunkIterator iterates over the chunks of a rope in order.
type ChunkIterator struct {
	stack  []iterFrame
	chunk  Chunk
	offset ByteOffset
	next   ByteOffset
}

type iterFrame struct {
	node *Node
	idx  int
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{stack: make([]iterFrame, 0, 8)}
	if r.root != nil {
		it.stack = append(it.stack, iterFrame{node: r.root})
	}
	return it
}

// Next advances to the next chunk.
// Returns false when iteration is complete.
func (it *ChunkIterator) Next() bool {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := top.node

		if n.IsLeaf() {
			if top.idx < len(n.chunks) {
				it.chunk = n.chunks[top.idx]
				top.idx++
				it.offset = it.next
				it.next += ByteOffset(it.chunk.Len())
				return true
			}
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		if top.idx < len(n.children) {
			child := n.children[top.idx]
			top.idx++
			it.stack = append(it.stack, iterFrame{node: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	return false
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}

// Offset returns the byte offset of the start of the current chunk.
func (it *ChunkIterator) Offset() ByteOffset {
	return it.offset
}
