// Package gridgraph defines core types, connectivity modes, and sentinel errors
// for the gridgraph package of github.com/katalvlaran/waterways.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrBadPosition indicates a malformed "x,y" coordinate token.
	ErrBadPosition = errors.New("gridgraph: malformed position")
)

// CellType classifies a single grid cell.
type CellType byte

const (
	// Land marks a cell that belongs to an island.
	Land CellType = 'L'
	// Water marks a traversable cell.
	Water CellType = 'W'
)

// String renders the cell as its map character.
func (c CellType) String() string { return string(rune(c)) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: W, E, N, S.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: NW, NE, SW, SE.
	Conn8
)

// Position is an integer grid coordinate. X indexes columns, Y indexes rows.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// String renders p in the "x,y" token form used by puzzle files.
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Grid is an immutable rectangular map indexed as cells[y][x].
type Grid struct {
	Width, Height int
	cells         [][]CellType
}

// offsets lists neighbor deltas: the four orthogonal moves first, then the diagonals.
// Conn4 uses the first four entries, Conn8 all eight.
var offsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}
