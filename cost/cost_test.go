package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/gridroute/cost"
	"github.com/katalvlaran/gridroute/gridgraph"
)

func TestRelative(t *testing.T) {
	cases := []struct {
		facing, move gridgraph.Heading
		want         cost.Turn
	}{
		{gridgraph.North, gridgraph.North, cost.Straight},
		{gridgraph.North, gridgraph.East, cost.Right},
		{gridgraph.North, gridgraph.South, cost.Back},
		{gridgraph.North, gridgraph.West, cost.Left},
		{gridgraph.East, gridgraph.North, cost.Left},
		{gridgraph.South, gridgraph.East, cost.Left},
		{gridgraph.West, gridgraph.North, cost.Right},
		{gridgraph.West, gridgraph.East, cost.Back},
	}
	for _, tc := range cases {
		got, to, ok := cost.Relative(tc.facing, tc.move.Delta())
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "facing %v moving %v", tc.facing, tc.move)
		assert.Equal(t, tc.move, to)
	}

	_, to, ok := cost.Relative(gridgraph.South, gridgraph.Delta{DRow: 2})
	assert.False(t, ok)
	assert.Equal(t, gridgraph.South, to)
}

// TestReindeer_Table checks every (heading, move) pair of the maze-race
// policy against the straight / quarter / reversal rule.
func TestReindeer_Table(t *testing.T) {
	m := cost.Reindeer()
	for _, h := range gridgraph.Headings {
		for _, move := range gridgraph.Headings {
			step, next := m.Transition(h, move.Delta())
			assert.Equal(t, move, next, "facing %v moving %v", h, move)

			var want int64
			switch move {
			case h:
				want = 1
			case h.Rotate(2):
				want = 2001
			default:
				want = 1001
			}
			assert.Equal(t, want, step, "facing %v moving %v", h, move)
		}
	}
}

func TestSteps_AndUniform(t *testing.T) {
	for _, h := range gridgraph.Headings {
		for _, move := range gridgraph.Headings {
			step, next := cost.Steps().Transition(h, move.Delta())
			assert.Equal(t, int64(1), step)
			assert.Equal(t, move, next)

			step, next = cost.Uniform().Transition(h, move.Delta())
			assert.Equal(t, int64(1), step)
			assert.Equal(t, h, next)
		}
	}
}

func TestTurnPenalty_NonAxisDelta(t *testing.T) {
	step, next := cost.Reindeer().Transition(gridgraph.West, gridgraph.Delta{DRow: 1, DCol: 1})
	assert.Equal(t, int64(1), step)
	assert.Equal(t, gridgraph.West, next)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, cost.Validate(cost.Reindeer()))
	assert.NoError(t, cost.Validate(cost.Uniform()))
	assert.ErrorIs(t, cost.Validate(nil), cost.ErrNilModel)
	var typedNil cost.Func
	assert.ErrorIs(t, cost.Validate(typedNil), cost.ErrNilModel)

	// Negative reversal penalty drives the four reversals below zero.
	bad := cost.TurnPenalty{Move: 1, Quarter: 0, Reverse: -5}
	err := cost.Validate(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, cost.ErrNegativeCost)
	assert.Len(t, multierr.Errors(err), 4)

	badHeading := cost.Func(func(gridgraph.Heading, gridgraph.Delta) (int64, gridgraph.Heading) {
		return 0, gridgraph.Heading(7)
	})
	err = cost.Validate(badHeading)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 16)
}

func TestTurn_String(t *testing.T) {
	assert.Equal(t, "left", cost.Left.String())
	assert.Equal(t, "Turn(9)", cost.Turn(9).String())
}
