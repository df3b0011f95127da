// Package search defines options, hooks, and sentinel errors for grid walks.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/waterways/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrNoWaterAdjacent is returned when no water cell is reachable
	// from the origin of an island trace.
	ErrNoWaterAdjacent = errors.New("search: no water reachable from origin")

	// ErrNotLand is returned when an island trace starts on a non-land cell.
	ErrNotLand = errors.New("search: trace origin is not a land cell")

	// ErrStepBudget is returned when a walk expands more nodes than MaxSteps allows.
	ErrStepBudget = errors.New("search: step budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Path is an ordered sequence of positions from start to goal inclusive.
// An empty Path signals that the goal was unreachable.
type Path []gridgraph.Position

// String joins the "x,y" tokens of p with single spaces.
func (p Path) String() string {
	var sb strings.Builder
	for i, pos := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pos.String())
	}

	return sb.String()
}

// Option configures a walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// when the query is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by every query.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of node expansions per query.
	// A value of 0 disables the guard.
	MaxSteps int

	// OnEnqueue is called when a position is admitted to the frontier,
	// with its depth (edges from the origin).
	OnEnqueue func(p gridgraph.Position, depth int)

	// OnExpand is called when a position is popped from the frontier.
	OnExpand func(p gridgraph.Position, depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no step budget
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxSteps:  0,
		OnEnqueue: func(gridgraph.Position, int) {},
		OnExpand:  func(gridgraph.Position, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds node expansions.
//
//	n > 0: at most n expansions, then ErrStepBudget
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p gridgraph.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run when a node is expanded.
func WithOnExpand(fn func(p gridgraph.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// checkBounds returns an error wrapping gridgraph.ErrOutOfBounds
// for the first position outside g.
func checkBounds(g *gridgraph.Grid, ps ...gridgraph.Position) error {
	for _, p := range ps {
		if _, err := g.CellAt(p); err != nil {
			return err
		}
	}

	return nil
}
