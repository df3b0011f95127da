package search

import (
	"github.com/katalvlaran/waterways/geometry"
	"github.com/katalvlaran/waterways/gridgraph"
)

// FindRoute searches for a water route from start to goal whose polyline
// never crosses itself.
//
// Behavior:
//  1. Both endpoints must lie inside g, else an error wrapping
//     gridgraph.ErrOutOfBounds is returned before any search.
//  2. A start that is not water yields an empty Path.
//  3. Greedy best-first over 8-neighbors: the frontier pops the node closest
//     to goal by Manhattan distance, ties in insertion order.
//  4. Water neighbors are sorted by distance to goal, then each unvisited one
//     is enqueued unless its segment from the current node would cross an
//     earlier segment of the current node's path.
//  5. An exhausted frontier yields an empty Path and a nil error.
//
// Every returned path is free of repeated positions and satisfies
// geometry.HasDiagonalIntersection(path) == false.
func FindRoute(g *gridgraph.Grid, start, goal gridgraph.Position, opts ...Option) (Path, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := checkBounds(g, start, goal); err != nil {
		return nil, err
	}
	if !g.Is(start, gridgraph.Water) {
		return Path{}, nil
	}

	w := newWalker(g, walk{
		conn:       gridgraph.Conn8,
		discipline: Priority,
		heuristic:  func(p gridgraph.Position) int { return geometry.ManhattanDistance(p, goal) },
		admit:      func(p gridgraph.Position) bool { return g.Is(p, gridgraph.Water) },
		accept: func(parentPath Path, c gridgraph.Position) bool {
			return !geometry.IntroducesIntersection(parentPath, c)
		},
		done: func(p gridgraph.Position) bool { return p == goal },
	}, o)

	h, err := w.run(start)
	if err != nil {
		return nil, err
	}
	if h < 0 {
		return Path{}, nil
	}

	return w.path(h), nil
}
