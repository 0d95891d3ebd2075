// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// (cell, heading) state space of a terrain grid.
//
// It processes states in order of increasing accumulated cost using a
// min-heap priority frontier, relaxing the four axis moves of every fresh
// pop through an injected cost model.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Each state is finalized at most once.
//   - Each successful relaxation pushes one entry: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log E).
//   - Space: O(S + E)
//   - O(S) for the dominance table (and predecessors when tracked).
//   - O(E) worst-case entries in the frontier under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We validate the cost model up front over its whole 4×4 domain and fail
//     fast on negative steps, since the first-goal-pop rule depends on them.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries whose cost exceeds the table value.
//   - We stop exploring once the minimum cost in the heap exceeds MaxCost.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/cost"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// Solve computes the minimal cost from start to any cell accepted by goal
// on grid g, pricing every move with model. It accepts functional options
// to customize behavior (ReturnPath, Exhaustive, MaxCost, hooks, logging).
//
// Returns:
//
//   - res: the Result. res.Cost is Unreachable (and res.Reached false) when
//     no finite path exists; that is a normal outcome, not an error.
//   - err: a precondition violation, detected before the search starts,
//     or ctx.Err() if the context was cancelled mid-search.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxCost, ErrBadHeading).
//  2. g must be non-nil (ErrNilGrid).
//  3. model must be non-nil, including a typed-nil cost.Func (ErrNilModel).
//  4. goal must be non-nil (ErrNilGoal).
//  5. start.Heading must be defined (ErrBadHeading).
//  6. start.Cell must be in bounds (ErrStartOutOfBounds) and walkable (ErrStartBlocked).
//  7. model must never yield a negative step (cost.ErrNegativeCost).
//
// If start.Cell is itself a goal cell, the first pop returns cost 0.
func Solve(g *gridgraph.Grid, start State, goal GoalFunc, model cost.Model, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate collaborators
	if g == nil {
		return nil, ErrNilGrid
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	// 3) Validate the start state
	if !start.Heading.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrBadHeading, start.Heading)
	}
	if !g.InBounds(start.Cell) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrStartOutOfBounds, start.Cell, g.Rows, g.Cols)
	}
	if !g.Walkable(start.Cell) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start.Cell)
	}

	// 4) Pre-scan the model for negative steps. Fail fast.
	if err := cost.Validate(model); err != nil {
		if errors.Is(err, cost.ErrNilModel) {
			return nil, ErrNilModel
		}
		return nil, err
	}

	// 5) Run the search on fresh per-call state.
	r := newRunner(g, model, goal, cfg, start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// SolveMaze runs Solve from the grid's Start marker, facing
// Options.StartHeading (East unless WithStartHeading is given), to its
// Goal marker. Returns ErrNoStart or ErrNoGoal when a marker is missing.
func SolveMaze(g *gridgraph.Grid, model cost.Model, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	s, ok := g.Start()
	if !ok {
		return nil, ErrNoStart
	}
	e, ok := g.Goal()
	if !ok {
		return nil, ErrNoGoal
	}

	return Solve(g, State{Cell: s, Heading: cfg.StartHeading}, AtCell(e), model, opts...)
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.Grid // The input grid; read-only.
	model   cost.Model      // Transition pricing; read-only.
	goal    GoalFunc        // Goal predicate.
	options Options         // Configuration options.
	start   State           // Initial state.

	table *Table    // Dominance table: State → best cost (+ predecessors).
	pq    *frontier // Min-heap of entries for lazy priority queue.

	cost    int64 // Cost of the first goal pop, or Unreachable.
	reached State // State of the first goal pop.
	found   bool
	stats   Stats
}

func newRunner(g *gridgraph.Grid, model cost.Model, goal GoalFunc, cfg Options, start State) *runner {
	// Size the table for one heading per cell.
	hint := g.Rows * g.Cols
	r := &runner{
		g:       g,
		model:   model,
		goal:    goal,
		options: cfg,
		start:   start,
		table:   newTable(start, cfg.ReturnPath, hint),
		pq:      newFrontier(hint / 4),
		cost:    Unreachable,
	}

	// Distance to the start is zero.
	r.table.record(start, 0, start)
	r.pq.push(0, start)
	r.stats.Pushes++

	return r
}

// process is the core loop. It repeatedly extracts the cheapest entry and
// relaxes its four moves.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (goal unreachable, or Exhaustive drained it).
//   - A fresh pop lands on a goal cell (unless Exhaustive).
//   - The minimum cost in the frontier exceeds MaxCost.
//   - The context is cancelled (returns ctx.Err()).
func (r *runner) process() error {
	log := r.options.Log.WithName("dijkstra")
	log.V(2).Info("search started", "start", r.start.String(), "rows", r.g.Rows, "cols", r.g.Cols)

	for {
		if err := r.options.Ctx.Err(); err != nil {
			log.V(1).Info("search cancelled", "pops", r.stats.Pops, "err", err.Error())
			return err
		}

		// 1) Pop the cheapest entry. Empty frontier ends the search.
		e, ok := r.pq.popMin()
		if !ok {
			break
		}
		r.stats.Pops++

		// 2) Staleness: a cheaper entry for this state was already recorded.
		if best, _ := r.table.Best(e.state); e.cost > best {
			r.stats.Stale++
			continue
		}

		// 3) Everything left costs at least e.cost; stop past the cap.
		if e.cost > r.options.MaxCost {
			break
		}
		r.options.OnPop(e.state, e.cost)

		// 4) Goal check, valid only on a fresh pop.
		if !r.found && r.goal(e.state.Cell) {
			r.found = true
			r.cost = e.cost
			r.reached = e.state
			if !r.options.Exhaustive {
				break
			}
		}

		// 5) Expansion.
		r.relax(e)
	}

	log.V(1).Info("search finished",
		"reached", r.found,
		"cost", r.cost,
		"pops", r.stats.Pops,
		"stale", r.stats.Stale,
		"pushes", r.stats.Pushes,
		"states", r.table.Len(),
	)

	return nil
}

// relax examines the four axis moves out of e.state and applies the
// standard relaxation: a candidate is recorded and pushed only if it is
// strictly cheaper than the best known cost of its state.
//
// Assumes e is a fresh pop, so e.cost is final.
func (r *runner) relax(e entry) {
	for _, h := range gridgraph.Headings {
		d := h.Delta()

		// Skip out-of-bounds and wall neighbors.
		next, ok := r.g.Neighbor(e.state.Cell, d)
		if !ok || !r.g.Walkable(next) {
			continue
		}

		step, heading := r.model.Transition(e.state.Heading, d)
		// Saturate instead of overflowing into a negative cost.
		if step > Unreachable-1-e.cost {
			continue
		}
		cand := State{Cell: next, Heading: heading}
		candCost := e.cost + step

		if !r.table.record(cand, candCost, e.state) {
			continue
		}
		r.options.OnRelax(e.state, cand, candCost)
		r.pq.push(candCost, cand)
		r.stats.Pushes++
	}
}

func (r *runner) result() *Result {
	res := &Result{
		Cost:    r.cost,
		Reached: r.found,
		Stats:   r.stats,
		table:   r.table,
	}
	if r.found {
		res.Goal = r.reached
	}

	return res
}
