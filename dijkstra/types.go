// Package dijkstra defines core types and configuration options
// for direction-aware shortest-path search on terrain grids.
//
// The search walks an implicit graph whose nodes are States, a (cell,
// heading) pair. Moving between states is priced by an injected cost.Model,
// so turning can cost more than moving straight ahead.
//
// Complexity:
//
//	– Time:  O(E log E)   where E = generated transitions ≤ 4·|States|
//	   • Each state is finalized at most once (fresh pop).
//	   • Each successful relaxation pushes one frontier entry.
//	   • Each heap operation (push/pop) costs O(log E).
//	– Space: O(S + E)
//	   • O(S) for the dominance table (and predecessors when tracked).
//	   • O(E) in the frontier in the worst case (lazy decrease-key).
//
// Options:
//
//	– StartHeading: initial heading used by SolveMaze (default East).
//	– ReturnPath:   track predecessors so Result.Path can rebuild a route.
//	– Exhaustive:   keep draining the frontier after the goal is reached.
//	– MaxCost:      stop exploring once the cheapest frontier entry exceeds it.
//	– Logger:       logr.Logger for per-search summaries (V(1)).
//	– OnPop/OnRelax: hooks observing the search.
//	– Context:      checked once per pop; cancellation aborts with ctx.Err().
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the grid pointer is nil.
//	– ErrNilModel         if the cost model is nil.
//	– ErrNilGoal          if the goal predicate is nil.
//	– ErrBadHeading       if the start heading is not a defined Heading.
//	– ErrStartOutOfBounds if the start cell lies outside the grid.
//	– ErrStartBlocked     if the start cell is a Wall.
//	– ErrNoStart          if SolveMaze finds no Start marker.
//	– ErrNoGoal           if SolveMaze finds no Goal marker.
//	– ErrBadMaxCost       if MaxCost < 0.
//	– cost.ErrNegativeCost if the model yields a negative step.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Unreachable is the Cost reported when no finite path exists.
// Callers must treat it as "no path", never as a real cost.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilModel indicates that a nil cost.Model was passed.
	ErrNilModel = errors.New("dijkstra: cost model is nil")

	// ErrNilGoal indicates that a nil GoalFunc was passed.
	ErrNilGoal = errors.New("dijkstra: goal predicate is nil")

	// ErrBadHeading indicates a start heading outside the Heading enumeration.
	ErrBadHeading = errors.New("dijkstra: invalid start heading")

	// ErrStartOutOfBounds indicates the start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start cell out of bounds")

	// ErrStartBlocked indicates the start cell is a wall.
	ErrStartBlocked = errors.New("dijkstra: start cell is a wall")

	// ErrNoStart indicates the grid carries no Start marker.
	ErrNoStart = errors.New("dijkstra: grid has no start marker")

	// ErrNoGoal indicates the grid carries no Goal marker.
	ErrNoGoal = errors.New("dijkstra: grid has no goal marker")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrNoPath indicates a path was requested for a search that never
	// reached the goal.
	ErrNoPath = errors.New("dijkstra: goal was not reached")

	// ErrPathNotTracked indicates a path was requested without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors not tracked; use WithReturnPath")
)

// State is the unit of search: a cell plus the heading held in it.
// Two States are equal iff both components match.
type State struct {
	Cell    gridgraph.Cell
	Heading gridgraph.Heading
}

// String formats s as "(row,col)/heading".
func (s State) String() string {
	return fmt.Sprintf("%v/%v", s.Cell, s.Heading)
}

// GoalFunc reports whether a cell terminates the search.
type GoalFunc func(gridgraph.Cell) bool

// AtCell returns a GoalFunc matching exactly c.
func AtCell(c gridgraph.Cell) GoalFunc {
	return func(x gridgraph.Cell) bool { return x == c }
}

// Options configures the behavior of the search.
type Options struct {
	Ctx          context.Context                  // Cancellation, checked once per pop
	StartHeading gridgraph.Heading                // Initial heading for SolveMaze
	ReturnPath   bool                             // Whether to track predecessors
	Exhaustive   bool                             // Drain the frontier after reaching the goal
	MaxCost      int64                            // Maximum cost to explore
	Log          logr.Logger                      // Search logger
	OnPop        func(s State, cost int64)        // Called on every fresh pop
	OnRelax      func(from, to State, cost int64) // Called on every successful relaxation

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:          context.Background().
//   - StartHeading: East.
//   - ReturnPath:   false (Result.Path returns ErrPathNotTracked).
//   - Exhaustive:   false (stop at the first goal pop).
//   - MaxCost:      math.MaxInt64 (no limit).
//   - Log:          logr.Discard().
//   - hooks:        no-ops.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		StartHeading: gridgraph.East,
		MaxCost:      math.MaxInt64,
		Log:          logr.Discard(),
		OnPop:        func(State, int64) {},
		OnRelax:      func(State, State, int64) {},
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

// WithStartHeading sets the heading SolveMaze starts with.
// Solve ignores it: its start State already carries a heading.
func WithStartHeading(h gridgraph.Heading) Option {
	return func(o *Options) {
		if !h.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrBadHeading, h)
			return
		}
		o.StartHeading = h
	}
}

// WithReturnPath enables predecessor tracking so Result.Path works.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithExhaustive keeps the search running after the first goal pop until
// the frontier is empty, so every reachable state ends up finalized in the
// Table. Result.Cost is still the first (optimal) goal cost.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithMaxCost stops exploring once the cheapest frontier entry costs more
// than max. A goal beyond the cap is reported as Unreachable.
// Negative values are recorded and surface as ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxCost, max)
			return
		}
		o.MaxCost = max
	}
}

// WithLogger sets the logger used for per-search summaries.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithOnPop registers a callback invoked for every fresh (non-stale) pop.
func WithOnPop(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithOnRelax registers a callback invoked whenever a state's best cost
// improves.
func WithOnRelax(fn func(from, to State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Pushes int // frontier pushes, including the start entry
	Pops   int // frontier pops, stale ones included
	Stale  int // pops discarded by dominance pruning
}

// Result is the outcome of one search.
type Result struct {
	// Cost is the minimal cost to a goal cell, or Unreachable.
	Cost int64
	// Reached is true iff Cost is finite.
	Reached bool
	// Goal is the state popped at the goal; zero when !Reached.
	Goal State
	// Stats describes the work done.
	Stats Stats

	table *Table
}

// Table exposes the dominance table after the search. Costs of popped
// states are final; in Exhaustive mode every reachable state is popped.
// A Result that never ran a search yields an empty table.
func (r *Result) Table() *Table {
	if r.table == nil {
		return newTable(r.Goal, false, 0)
	}

	return r.table
}

// Path rebuilds one optimal route from the start state to Goal.
// Returns ErrNoPath if the goal was not reached and ErrPathNotTracked if
// the search ran without WithReturnPath.
func (r *Result) Path() ([]State, error) {
	if !r.Reached {
		return nil, ErrNoPath
	}

	return r.table.PathTo(r.Goal)
}
