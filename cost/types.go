// Package cost defines the transition cost policies consumed by the
// directional shortest-path engine.
package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors for cost model validation.
var (
	// ErrNilModel indicates that a nil Model was supplied.
	ErrNilModel = errors.New("cost: model is nil")

	// ErrNegativeCost indicates a transition with a negative step cost.
	// Dijkstra's optimality argument requires every step to be ≥ 0.
	ErrNegativeCost = errors.New("cost: negative transition cost")
)

// Model maps a transition, made while facing h and moving by d, to the
// step cost and the heading held after the move.
//
// Implementations must be pure: same inputs, same outputs, no side effects.
// They must be total over the four headings and the four axis deltas, and
// never return a negative cost.
type Model interface {
	Transition(h gridgraph.Heading, d gridgraph.Delta) (step int64, next gridgraph.Heading)
}

// Func adapts an ordinary function to the Model interface.
type Func func(h gridgraph.Heading, d gridgraph.Delta) (int64, gridgraph.Heading)

// Transition calls f(h, d).
func (f Func) Transition(h gridgraph.Heading, d gridgraph.Delta) (int64, gridgraph.Heading) {
	return f(h, d)
}

// Turn is the rotation a move requires relative to the current heading,
// counted in clockwise quarter turns.
type Turn uint8

const (
	// Straight keeps the current heading.
	Straight Turn = iota
	// Right is a 90° clockwise turn.
	Right
	// Back is a 180° reversal.
	Back
	// Left is a 90° counter-clockwise turn.
	Left
)

var turnNames = [...]string{"straight", "right", "back", "left"}

// String returns the lower-case name of t.
func (t Turn) String() string {
	if int(t) < len(turnNames) {
		return turnNames[t]
	}

	return fmt.Sprintf("Turn(%d)", uint8(t))
}

// Relative returns the Turn needed to move by d while facing h, and the
// heading after the move. ok is false when d is not one of the four axis
// deltas.
func Relative(h gridgraph.Heading, d gridgraph.Delta) (t Turn, to gridgraph.Heading, ok bool) {
	to, ok = gridgraph.HeadingOf(d)
	if !ok {
		return Straight, h, false
	}
	q := (int(to) - int(h) + gridgraph.NumHeadings) % gridgraph.NumHeadings

	return Turn(q), to, true
}
