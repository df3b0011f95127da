// Package search implements constrained best-first and breadth-first walks
// over a gridgraph.Grid.
//
// One walker drives every query. A query differs only in:
//
//   - connectivity of the neighbor generator (Conn4 or Conn8),
//   - the admission filter applied to each neighbor (cell type, island hug),
//   - the acceptance predicate over the tentative path (no self-crossing),
//   - the frontier discipline: priority by Manhattan distance to a target,
//     ties broken by insertion order, or plain FIFO.
//
// Entry points:
//
//   - FindRoute:     water route from start to goal that never crosses itself.
//   - SameComponent: whether two cells lie in the same 4-connected region of one type.
//   - NearestWater:  first water cell reached from a position.
//   - TraceBoundary: water cells hugging an island, in discovery order.
//
// Ordering is greedy: the frontier is keyed on the heuristic alone with no
// accumulated path cost, so FindRoute is not shortest-path optimal. A
// position is admitted at most once per query (first enqueue wins) and is
// never retried from another parent, even when that parent would avoid a
// crossing.
//
// All search state is owned by a single query. Queries over the same Grid
// may run concurrently.
package search
