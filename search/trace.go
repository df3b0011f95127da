package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/waterways/geometry"
	"github.com/katalvlaran/waterways/gridgraph"
)

// NearestWater returns the first water cell popped by a best-first walk
// from origin over all 8-neighbors, ordered by Manhattan distance to origin.
// Cell types do not restrict the walk. An origin that is water is returned
// as is. Returns ErrNoWaterAdjacent when the grid holds no reachable water.
func NearestWater(g *gridgraph.Grid, origin gridgraph.Position, opts ...Option) (gridgraph.Position, error) {
	if g == nil {
		return gridgraph.Position{}, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return gridgraph.Position{}, err
	}

	return nearestWater(g, origin, o)
}

func nearestWater(g *gridgraph.Grid, origin gridgraph.Position, o Options) (gridgraph.Position, error) {
	if err := checkBounds(g, origin); err != nil {
		return gridgraph.Position{}, err
	}
	w := newWalker(g, walk{
		conn:       gridgraph.Conn8,
		discipline: Priority,
		heuristic:  func(p gridgraph.Position) int { return geometry.ManhattanDistance(p, origin) },
		done:       func(p gridgraph.Position) bool { return g.Is(p, gridgraph.Water) },
	}, o)

	h, err := w.run(origin)
	if err != nil {
		return gridgraph.Position{}, err
	}
	if h < 0 {
		return gridgraph.Position{}, fmt.Errorf("%w: from %s", ErrNoWaterAdjacent, origin)
	}

	return w.nodes[h].pos, nil
}

// TraceBoundary enumerates the water cells that hug the island containing land.
//
// Behavior:
//  1. land must be a land cell (ErrNotLand) inside g (gridgraph.ErrOutOfBounds).
//  2. NearestWater from land picks the starting water cell; if none exists
//     the query fails with ErrNoWaterAdjacent.
//  3. A breadth-first walk over 8-neighbors admits a water cell only if one
//     of its own 8-neighbors is land of the same island as land.
//  4. Each cell is admitted once; the walk ends when the frontier empties.
//
// The result lists the start cell first, then cells in discovery order.
func TraceBoundary(g *gridgraph.Grid, land gridgraph.Position, opts ...Option) ([]gridgraph.Position, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := checkBounds(g, land); err != nil {
		return nil, err
	}
	if !g.Is(land, gridgraph.Land) {
		return nil, fmt.Errorf("%w: %s", ErrNotLand, land)
	}

	start, err := nearestWater(g, land, o)
	if err != nil {
		return nil, err
	}

	cells, err := component(g, land, o)
	if err != nil {
		return nil, err
	}
	island := mapset.New[gridgraph.Position]()
	for _, p := range cells {
		island.Put(p)
	}
	hugs := func(p gridgraph.Position) bool {
		for _, q := range g.Neighbors8(p) {
			if island.Has(q) {
				return true
			}
		}
		return false
	}

	w := newWalker(g, walk{
		conn:       gridgraph.Conn8,
		discipline: FIFO,
		admit: func(p gridgraph.Position) bool {
			return g.Is(p, gridgraph.Water) && hugs(p)
		},
	}, o)
	if _, err := w.run(start); err != nil {
		return nil, err
	}

	return w.order, nil
}
