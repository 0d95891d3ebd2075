package obstacles

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/cost"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
)

// Scanner replays an ordered list of drops over a base grid and answers
// route questions about the grid after any prefix of that list.
// The base grid and the drop list are never modified; every query works on
// its own copy, so one Scanner may serve concurrent callers.
type Scanner struct {
	base  *gridgraph.Grid
	start gridgraph.Cell
	goal  gridgraph.Cell
	drops []gridgraph.Cell
	opts  Options

	direct int64 // Manhattan distance start → goal, the open-grid step count
}

// NewScanner validates its inputs and returns a Scanner routing from start
// to goal on base as drops land in order.
//
// Errors:
//   - ErrBadWorkers, cost.ErrNilModel from options.
//   - ErrNilGrid if base is nil.
//   - ErrEndpoint if start or goal is out of bounds or a wall on base.
//   - ErrDropOutOfBounds (aggregated) for every drop outside base.
//   - cost.ErrNegativeCost if the model can yield a negative step.
func NewScanner(base *gridgraph.Grid, start, goal gridgraph.Cell, drops []gridgraph.Cell, opts ...Option) (*Scanner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if base == nil {
		return nil, ErrNilGrid
	}
	if !base.Walkable(start) || !base.Walkable(goal) {
		return nil, fmt.Errorf("%w: start %v goal %v", ErrEndpoint, start, goal)
	}
	if err := CheckDrops(base, drops); err != nil {
		return nil, err
	}
	if err := cost.Validate(cfg.Model); err != nil {
		return nil, err
	}

	own := make([]gridgraph.Cell, len(drops))
	copy(own, drops)

	s := &Scanner{
		base:   base,
		start:  start,
		goal:   goal,
		drops:  own,
		opts:   cfg,
		direct: int64(start.Manhattan(goal)),
	}
	cfg.Log.WithName("obstacles").V(1).Info("scanner ready",
		"start", start.String(), "goal", goal.String(), "drops", len(own), "direct", s.direct, "workers", cfg.Workers)

	return s, nil
}

// Len returns the number of drops.
func (s *Scanner) Len() int { return len(s.drops) }

// Drop returns the i-th drop.
func (s *Scanner) Drop(i int) gridgraph.Cell { return s.drops[i] }

// Grid returns a copy of the base grid with the first n drops turned into
// walls. n must lie in [0, Len()].
func (s *Scanner) Grid(n int) (*gridgraph.Grid, error) {
	if n < 0 || n > len(s.drops) {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrBadPrefix, n, len(s.drops))
	}

	return s.base.WithWalls(s.drops[:n]...)
}

// CostAfter solves start → goal after the first n drops have landed.
// An unreachable goal, including a drop on start itself, is reported
// through the Result (Cost == dijkstra.Unreachable), not as an error.
func (s *Scanner) CostAfter(ctx context.Context, n int) (*dijkstra.Result, error) {
	g, err := s.Grid(n)
	if err != nil {
		return nil, err
	}

	return s.solve(ctx, g, false)
}

// FirstBlocking finds the first drop after which goal can no longer be
// reached from start. ok is false when the goal stays reachable after
// every drop. ErrUnreachable is returned if the goal is cut off on the
// base grid already.
//
// With one worker the drops are applied one at a time and the route is
// re-solved only when a drop lands on the current best path. With more
// workers, prefix lengths are bisected with up to Workers concurrent
// reachability probes per round; reachability only ever shrinks as drops
// accumulate, so both modes agree.
func (s *Scanner) FirstBlocking(ctx context.Context) (b Blocking, ok bool, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.opts.Workers > 1 {
		return s.bisect(ctx)
	}

	return s.sweep(ctx)
}

// solve runs one search on g. A walled start counts as unreachable.
func (s *Scanner) solve(ctx context.Context, g *gridgraph.Grid, path bool) (*dijkstra.Result, error) {
	if !g.Walkable(s.start) {
		return &dijkstra.Result{Cost: dijkstra.Unreachable}, nil
	}
	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithLogger(s.opts.Log),
	}
	if path {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	start := dijkstra.State{Cell: s.start, Heading: gridgraph.East}

	return dijkstra.Solve(g, start, dijkstra.AtCell(s.goal), s.opts.Model, opts...)
}

// route collects the cells of the best path found by res.
func route(res *dijkstra.Result) (map[gridgraph.Cell]struct{}, error) {
	path, err := res.Path()
	if err != nil {
		return nil, err
	}
	cells := make(map[gridgraph.Cell]struct{}, len(path))
	for _, st := range path {
		cells[st.Cell] = struct{}{}
	}

	return cells, nil
}

func (s *Scanner) sweep(ctx context.Context) (Blocking, bool, error) {
	log := s.opts.Log.WithName("obstacles")

	g := s.base
	res, err := s.solve(ctx, g, true)
	if err != nil {
		return Blocking{}, false, err
	}
	if !res.Reached {
		return Blocking{}, false, ErrUnreachable
	}
	onPath, err := route(res)
	if err != nil {
		return Blocking{}, false, err
	}

	solves := 1
	for i, c := range s.drops {
		if err := ctx.Err(); err != nil {
			return Blocking{}, false, err
		}
		if g, err = g.WithWalls(c); err != nil {
			return Blocking{}, false, err
		}
		// A drop off the current path leaves that path intact.
		if _, hit := onPath[c]; !hit {
			continue
		}

		res, err = s.solve(ctx, g, true)
		if err != nil {
			return Blocking{}, false, err
		}
		solves++
		if !res.Reached {
			log.V(1).Info("goal cut off", "index", i, "drop", Format(c), "solves", solves)
			return Blocking{Index: i, Drop: c}, true, nil
		}
		log.V(2).Info("rerouted", "index", i, "drop", Format(c), "cost", res.Cost, "detour", res.Cost-s.direct)
		if onPath, err = route(res); err != nil {
			return Blocking{}, false, err
		}
	}
	log.V(1).Info("goal never cut off", "drops", len(s.drops), "solves", solves, "detour", res.Cost-s.direct)

	return Blocking{}, false, nil
}

// blocked reports whether the goal is cut off after the first n drops.
func (s *Scanner) blocked(n int) (bool, error) {
	g, err := s.Grid(n)
	if err != nil {
		return false, err
	}

	return !g.Connected(s.start, s.goal), nil
}

// bisect narrows (lo, hi] where lo is a prefix length known to leave the
// goal reachable and hi one known to cut it off.
func (s *Scanner) bisect(ctx context.Context) (Blocking, bool, error) {
	log := s.opts.Log.WithName("obstacles")

	if cut, err := s.blocked(0); err != nil {
		return Blocking{}, false, err
	} else if cut {
		return Blocking{}, false, ErrUnreachable
	}
	lo, hi := 0, len(s.drops)
	if cut, err := s.blocked(hi); err != nil || !cut {
		return Blocking{}, false, err
	}

	for round := 1; hi-lo > 1; round++ {
		points := probePoints(lo, hi, s.opts.Workers)
		results := make([]bool, len(points))

		eg, ectx := errgroup.WithContext(ctx)
		eg.SetLimit(s.opts.Workers)
		for i, n := range points {
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				cut, err := s.blocked(n)
				results[i] = cut

				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return Blocking{}, false, err
		}

		for i, n := range points {
			if results[i] {
				hi = n
				break
			}
			lo = n
		}
		log.V(2).Info("bisect round", "round", round, "probes", len(points), "lo", lo, "hi", hi)
	}

	b := Blocking{Index: hi - 1, Drop: s.drops[hi-1]}
	log.V(1).Info("goal cut off", "index", b.Index, "drop", Format(b.Drop))

	return b, true, nil
}

// probePoints spreads up to k distinct prefix lengths strictly inside (lo, hi).
func probePoints(lo, hi, k int) []int {
	span := hi - lo
	m := min(k, span-1)
	points := make([]int, 0, m)
	for j := 1; j <= m; j++ {
		points = append(points, lo+j*span/(m+1))
	}

	return points
}
