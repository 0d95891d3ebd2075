// Package cost provides injectable transition policies for direction-aware
// grid search.
//
// Overview:
//
//   - A Model maps (current heading, move delta) to (step cost, new heading).
//   - Relative classifies a move as Straight, Right, Back or Left with a single
//     modulo-4 lookup, so policies never branch per heading.
//   - TurnPenalty covers the common "move cost + rotation penalty" family;
//     Reindeer, Steps and Uniform are ready-made instances.
//   - Func lets callers plug in any pure function.
//
// Contract:
//
//   - Models are pure and total over the four headings and four axis deltas.
//   - Step costs are non-negative. Validate checks this for the whole 4×4
//     domain; the dijkstra package calls it before every search.
//
// Example:
//
//	m := cost.TurnPenalty{Move: 1, Quarter: 1000, Reverse: 2000}
//	step, next := m.Transition(gridgraph.East, gridgraph.North.Delta())
//	// step == 1001, next == gridgraph.North
package cost
