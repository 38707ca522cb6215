package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dshills/forge/internal/engine/rope"
)

// Capture is one named node matched by a query.
type Capture struct {
	Name  string
	Type  string
	Start rope.ByteOffset
	End   rope.ByteOffset
	Point rope.Point
}

// Captures runs a tree-sitter query over the latest tree and returns its
// captures in match order. Compiled queries are cached by source.
func (s *Synchronizer) Captures(query string) ([]Capture, error) {
	if s.tree == nil {
		return nil, ErrNoTree
	}
	q, err := s.query(query)
	if err != nil {
		return nil, err
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(q, s.tree.RootNode())

	var caps []Capture
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			sp := c.Node.StartPoint()
			caps = append(caps, Capture{
				Name:  q.CaptureNameForId(c.Index),
				Type:  c.Node.Type(),
				Start: rope.ByteOffset(c.Node.StartByte()),
				End:   rope.ByteOffset(c.Node.EndByte()),
				Point: rope.Point{Line: sp.Row, Column: sp.Column},
			})
		}
	}
	return caps, nil
}

func (s *Synchronizer) query(src string) (*sitter.Query, error) {
	if q, ok := s.queries[src]; ok {
		return q, nil
	}
	q, err := sitter.NewQuery([]byte(src), s.lang)
	if err != nil {
		return nil, &QueryError{Language: s.name, Query: src, Err: err}
	}
	s.queries[src] = q
	return q, nil
}
