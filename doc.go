// Package waterways solves grid puzzles over maps of land and water:
// non-crossing ship routes, island membership, and the water ring that
// encircles an island.
//
// Packages:
//
//	gridgraph/      Grid, Position, 4/8-neighbors, island labeling
//	geometry/       Manhattan distance, exact segment intersection, path validity
//	search/         best-first and breadth-first walks: routes, connectivity, traces
//	puzzle/         level file parsing, query dispatch, output rendering
//	cmd/waterways/  level driver configured from the environment
//
// Quick ASCII example:
//
//	W W W W
//	W L L W      the trace around the island at (1,1) visits
//	W W W W      every W cell of this map
//
//	go run ./cmd/waterways
package waterways
