package cost

import "github.com/katalvlaran/gridroute/gridgraph"

// TurnPenalty charges Move for every step plus a flat rotation penalty:
// nothing when continuing straight, Quarter for a 90° turn either way, and
// Reverse for a 180° reversal. The heading after a move is always the
// direction of that move.
type TurnPenalty struct {
	Move    int64 // cost of one step
	Quarter int64 // extra cost of a left or right turn
	Reverse int64 // extra cost of turning around
}

// Transition implements Model.
// Non-axis deltas are charged Move and leave the heading unchanged; the
// engine never produces them.
func (p TurnPenalty) Transition(h gridgraph.Heading, d gridgraph.Delta) (int64, gridgraph.Heading) {
	turn, to, ok := Relative(h, d)
	if !ok {
		return p.Move, h
	}

	return p.Move + p.penalty(turn), to
}

func (p TurnPenalty) penalty(t Turn) int64 {
	switch t {
	case Right, Left:
		return p.Quarter
	case Back:
		return p.Reverse
	default:
		return 0
	}
}

// Reindeer is the maze-race policy: 1 per step, 1000 per quarter turn and
// 2000 for a reversal.
func Reindeer() TurnPenalty {
	return TurnPenalty{Move: 1, Quarter: 1000, Reverse: 2000}
}

// Steps charges 1 per step and nothing for turning. The heading follows the
// move, so minimal cost equals the number of steps.
func Steps() TurnPenalty {
	return TurnPenalty{Move: 1}
}

// Uniform charges 1 per step and never changes the heading. Searches that
// use it collapse to plain unweighted grid traversal.
func Uniform() Model {
	return Func(func(h gridgraph.Heading, _ gridgraph.Delta) (int64, gridgraph.Heading) {
		return 1, h
	})
}
