package search

import (
	"github.com/katalvlaran/waterways/geometry"
	"github.com/katalvlaran/waterways/gridgraph"
)

// SameComponent reports whether a and b lie in the same 4-connected region
// of cells sharing their classification: the same island for land cells,
// the same body of water for water cells. Cells of different types are
// never in the same component.
//
// The walk is best-first toward b over 4-neighbors of a's type, with no
// path predicate. Ordering only speeds up the common case; the answer
// matches a plain flood fill.
func SameComponent(g *gridgraph.Grid, a, b gridgraph.Position, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if err := checkBounds(g, a, b); err != nil {
		return false, err
	}
	kind, _ := g.CellAt(a)
	if !g.Is(b, kind) {
		return false, nil
	}

	w := newWalker(g, walk{
		conn:       gridgraph.Conn4,
		discipline: Priority,
		heuristic:  func(p gridgraph.Position) int { return geometry.ManhattanDistance(p, b) },
		admit:      func(p gridgraph.Position) bool { return g.Is(p, kind) },
		done:       func(p gridgraph.Position) bool { return p == b },
	}, o)

	h, err := w.run(a)
	if err != nil {
		return false, err
	}

	return h >= 0, nil
}

// component collects every cell 4-connected to origin with origin's type.
func component(g *gridgraph.Grid, origin gridgraph.Position, o Options) ([]gridgraph.Position, error) {
	kind, err := g.CellAt(origin)
	if err != nil {
		return nil, err
	}
	w := newWalker(g, walk{
		conn:       gridgraph.Conn4,
		discipline: FIFO,
		admit:      func(p gridgraph.Position) bool { return g.Is(p, kind) },
	}, o)
	if _, err := w.run(origin); err != nil {
		return nil, err
	}

	return w.order, nil
}
