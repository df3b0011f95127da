// Package gridgraph treats a 2D character map of land and water cells as
// an implicit graph over integer coordinates.
//
// What:
//
//   - Grid wraps a rectangular map of CellType values ('L' land, 'W' water).
//   - Answers cell-type and in-bounds queries for a Position.
//   - Generates in-bounds neighbors under 4- or 8-connectivity.
//   - Labels islands: maximal 4-connected components of land cells.
//
// Why:
//
//   - Puzzle maps: route ships through water, test island membership,
//     trace the water ring around a landmass.
//   - The search package builds every traversal on top of these queries.
//
// Complexity:
//
//   - CellAt, InBounds:  O(1).
//   - Neighbors:         O(d), d = 4 or 8.
//   - Islands:           O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input map has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a Position lies outside the grid.
//   - ErrBadPosition: an "x,y" token could not be parsed.
//
// A Grid is immutable once built and safe to share across goroutines.
package gridgraph
