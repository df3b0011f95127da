package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waterways/gridgraph"
)

// Sentinel errors for puzzle parsing and dispatch.
var (
	// ErrMalformed indicates the input file does not follow the level layout.
	ErrMalformed = errors.New("puzzle: malformed input")
	// ErrBadQuery indicates a query line has the wrong number or form of tokens.
	ErrBadQuery = errors.New("puzzle: malformed query")
	// ErrUnknownMode indicates an unsupported Mode name.
	ErrUnknownMode = errors.New("puzzle: unknown mode")
)

// Connectivity answers.
const (
	Same      = "SAME"
	Different = "DIFFERENT"
)

// Mode selects how query lines are interpreted.
type Mode string

const (
	// ModeRoute finds a non-crossing water route between two positions.
	ModeRoute Mode = "route"
	// ModeSame tests whether two cells share an island.
	ModeSame Mode = "same"
	// ModeValidate checks an explicit path for self-intersection.
	ModeValidate Mode = "validate"
	// ModeTrace lists the water ring around the island at a position.
	ModeTrace Mode = "trace"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRoute, ModeSame, ModeValidate, ModeTrace:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Puzzle is one parsed level input.
type Puzzle struct {
	Grid    *gridgraph.Grid
	Queries []string
}

// Result is the outcome of one query line.
type Result struct {
	Index  int    // zero-based query index
	Query  string // raw query line
	Output string // rendered answer; empty on error or unreachable
	Err    error  // per-query failure, nil on success
}
