package cost

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Validate evaluates m on every (heading, axis delta) pair and reports each
// transition with a negative step cost or an invalid resulting heading.
// All offending transitions are combined into one error (see multierr.Errors).
//
// A Model is a pure function over a 4×4 domain, so this scan proves the
// non-negativity precondition for every search that uses m.
// Complexity: O(16).
func Validate(m Model) error {
	if m == nil {
		return ErrNilModel
	}
	if f, ok := m.(Func); ok && f == nil {
		return ErrNilModel
	}
	var err error
	for _, h := range gridgraph.Headings {
		for _, move := range gridgraph.Headings {
			step, next := m.Transition(h, move.Delta())
			if step < 0 {
				err = multierr.Append(err, fmt.Errorf("%w: facing %v moving %v step=%d", ErrNegativeCost, h, move, step))
			}
			if !next.Valid() {
				err = multierr.Append(err, fmt.Errorf("cost: facing %v moving %v yields invalid heading %v", h, move, next))
			}
		}
	}

	return err
}
