package search

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/waterways/gridgraph"
)

// walk describes one query flavor over the shared walker loop.
type walk struct {
	conn       gridgraph.Connectivity
	discipline Discipline

	// heuristic keys the Priority frontier and orders candidates
	// before enqueue. Nil means key 0 for every node.
	heuristic func(p gridgraph.Position) int

	// admit filters neighbors by position alone.
	admit func(p gridgraph.Position) bool

	// accept, when set, vets a candidate against the path of its parent.
	accept func(parentPath Path, candidate gridgraph.Position) bool

	// done, when set, ends the walk successfully on popping a matching node.
	done func(p gridgraph.Position) bool
}

// node is an arena entry; parent is the handle of the parent node, -1 for the root.
type node struct {
	pos    gridgraph.Position
	parent int
	depth  int
}

// walker encapsulates the mutable state of one query.
type walker struct {
	grid     *gridgraph.Grid
	walk     walk
	opts     Options
	nodes    []node
	frontier frontier
	visited  mapset.Set[gridgraph.Position]
	order    []gridgraph.Position
	steps    int
}

func newWalker(g *gridgraph.Grid, q walk, opts Options) *walker {
	return &walker{
		grid:     g,
		walk:     q,
		opts:     opts,
		frontier: newFrontier(q.discipline),
		visited:  mapset.New[gridgraph.Position](),
	}
}

// run walks from start until done matches, the frontier empties, the step
// budget runs out, or the context is cancelled. It returns the handle of
// the matching node, or -1 when the frontier was exhausted.
func (w *walker) run(start gridgraph.Position) (int, error) {
	w.enqueue(start, -1)
	for w.frontier.Len() > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return -1, w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
			return -1, ErrStepBudget
		}
		w.steps++

		h := w.frontier.pop()
		cur := w.nodes[h]
		w.opts.OnExpand(cur.pos, cur.depth)
		if w.walk.done != nil && w.walk.done(cur.pos) {
			return h, nil
		}
		w.expand(h)
	}

	return -1, nil
}

// expand enqueues every admissible, unvisited neighbor of node h.
func (w *walker) expand(h int) {
	cands := w.grid.Neighbors(w.nodes[h].pos, w.walk.conn)
	kept := cands[:0]
	for _, c := range cands {
		if w.walk.admit == nil || w.walk.admit(c) {
			kept = append(kept, c)
		}
	}
	if w.walk.heuristic != nil {
		sort.SliceStable(kept, func(i, j int) bool {
			return w.walk.heuristic(kept[i]) < w.walk.heuristic(kept[j])
		})
	}

	var parentPath Path
	if w.walk.accept != nil {
		parentPath = w.path(h)
	}
	for _, c := range kept {
		if w.visited.Has(c) {
			continue
		}
		if w.walk.accept != nil && !w.walk.accept(parentPath, c) {
			continue
		}
		w.enqueue(c, h)
	}
}

// enqueue appends a node to the arena, marks its position visited,
// and pushes it on the frontier.
func (w *walker) enqueue(p gridgraph.Position, parent int) {
	depth := 0
	if parent >= 0 {
		depth = w.nodes[parent].depth + 1
	}
	w.nodes = append(w.nodes, node{pos: p, parent: parent, depth: depth})
	w.visited.Put(p)
	w.order = append(w.order, p)
	key := 0
	if w.walk.heuristic != nil {
		key = w.walk.heuristic(p)
	}
	w.frontier.push(len(w.nodes)-1, key)
	w.opts.OnEnqueue(p, depth)
}

// path reconstructs the positions from the root to node h by walking parent handles.
func (w *walker) path(h int) Path {
	out := make(Path, w.nodes[h].depth+1)
	for i := len(out) - 1; h >= 0; i, h = i-1, w.nodes[h].parent {
		out[i] = w.nodes[h].pos
	}

	return out
}
