package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]CellType) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	cells := make([][]CellType, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]CellType, w)
		copy(cells[y], rows[y])
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// FromStrings builds a Grid from map rows such as "WWLW".
// Every byte of a row becomes one cell.
func FromStrings(rows []string) (*Grid, error) {
	conv := make([][]CellType, len(rows))
	for y, row := range rows {
		conv[y] = []CellType(row)
	}

	return NewGrid(conv)
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellAt returns the classification of the cell at p,
// or an error wrapping ErrOutOfBounds.
func (g *Grid) CellAt(p Position) (CellType, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, p, g.Width, g.Height)
	}

	return g.cells[p.Y][p.X], nil
}

// Is reports whether p is in bounds and classified as c.
func (g *Grid) Is(p Position, c CellType) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X] == c
}

// Neighbors returns the in-bounds neighbors of p under conn.
// Order: W, E, N, S, then NW, NE, SW, SE for Conn8.
func (g *Grid) Neighbors(p Position, conn Connectivity) []Position {
	n := 4
	if conn == Conn8 {
		n = 8
	}
	out := make([]Position, 0, n)
	for _, d := range offsets[:n] {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(q) {
			out = append(out, q)
		}
	}

	return out
}

// Neighbors4 returns the orthogonal in-bounds neighbors of p.
func (g *Grid) Neighbors4(p Position) []Position { return g.Neighbors(p, Conn4) }

// Neighbors8 returns the king-move in-bounds neighbors of p.
func (g *Grid) Neighbors8(p Position) []Position { return g.Neighbors(p, Conn8) }

// Rows renders the grid back into map strings.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for y, row := range g.cells {
		out[y] = string(row)
	}

	return out
}

// ParsePosition parses an "x,y" token. Surrounding whitespace is ignored.
func ParsePosition(s string) (Position, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Position{}, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrBadPosition, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrBadPosition, s, err)
	}

	return Position{X: x, Y: y}, nil
}
