// Package dijkstra provides a precise implementation of Dijkstra's
// shortest-path algorithm over the implicit (cell, heading) state graph of a
// terrain grid, with non-negative, direction-dependent transition costs.
//
// Overview:
//
//   - Solve computes the minimum cost from a start State to the first cell
//     accepted by a goal predicate, in O(E log E) time, where E is the number
//     of generated transitions.
//   - It relies on a min-heap frontier to always expand the next-cheapest state
//     and on a dominance table to discard stale frontier entries.
//   - Costs come from an injected cost.Model, so turn penalties, plain step
//     counting and custom policies all run through the same engine.
//
// When to use:
//
//   - Mazes where facing matters: turning costs more than moving straight.
//   - Plain unweighted grid traversal (cost.Uniform or cost.Steps).
//   - Repeated re-solves on grids that gain obstacles between runs; every
//     call owns its frontier and table, so searches never share state.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: track predecessors so Result.Path rebuilds one optimal route.
//   - Exhaustive: finalize every reachable state, e.g. to read the cost of every
//     heading at the goal via Result.Table().CostsAt.
//   - MaxCost: abandon exploration beyond a cost budget.
//   - OnPop / OnRelax hooks and a logr.Logger for observation.
//
// Error handling:
//
//   - Precondition violations (nil grid/model/goal, bad start, missing maze
//     markers, negative model costs, bad options) are returned before the
//     search begins.
//   - An unreachable goal is not an error: Result.Cost == Unreachable and
//     Result.Reached == false.
//   - The only error raised mid-search is ctx.Err() when WithContext is used.
//
// API reference:
//
//	func Solve(
//	    g *gridgraph.Grid,
//	    start State,
//	    goal GoalFunc,
//	    model cost.Model,
//	    opts ...Option,
//	) (*Result, error)
//
//	func SolveMaze(g *gridgraph.Grid, model cost.Model, opts ...Option) (*Result, error)
//
// Thread safety:
//
//   - A single search is synchronous and single-threaded.
//   - Grid and Model are only read, so any number of searches may share them
//     concurrently. Mutating a grid while it is being searched is the caller's
//     problem; use gridgraph.Grid.WithWalls to derive a modified copy instead.
//
// See also:
//
//   - gridgraph.Grid: terrain model, parsing and neighbor queries.
//   - cost.TurnPenalty: the move + rotation penalty policy.
//   - obstacles.Scanner: repeated re-solves as walls are added.
package dijkstra
