package obstacles_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/gridroute/cost"
	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/obstacles"
)

// smallDrops is the 7×7 falling-bytes sample: x is the column, y the row.
const smallDrops = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
`

func newSmall(t *testing.T, opts ...obstacles.Option) *obstacles.Scanner {
	t.Helper()
	g, err := gridgraph.NewOpen(7, 7)
	require.NoError(t, err)
	drops, err := obstacles.ParseDropsString(smallDrops)
	require.NoError(t, err)
	require.Len(t, drops, 25)

	s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 6, Col: 6}, drops, opts...)
	require.NoError(t, err)

	return s
}

// ------------------------------------------------------------------------
// 1. Drop parsing and validation.
// ------------------------------------------------------------------------

func TestParseDrops(t *testing.T) {
	drops, err := obstacles.ParseDropsString("3,4\n\n  0, 12 \r\n7,0")
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{
		{Row: 4, Col: 3},
		{Row: 12, Col: 0},
		{Row: 0, Col: 7},
	}, drops)
}

func TestParseDrops_AggregatesErrors(t *testing.T) {
	_, err := obstacles.ParseDropsString("1,2\nfoo\n3;4\n5,x\n6,7\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, obstacles.ErrBadDrop)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "line 2")
	assert.Contains(t, errs[1].Error(), "line 3")
	assert.Contains(t, errs[2].Error(), "line 4")
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "6,1", obstacles.Format(gridgraph.Cell{Row: 1, Col: 6}))
	b := obstacles.Blocking{Index: 20, Drop: gridgraph.Cell{Row: 1, Col: 6}}
	assert.Equal(t, "#20 6,1", b.String())
}

func TestCheckDrops(t *testing.T) {
	g, _ := gridgraph.NewOpen(3, 3)
	assert.NoError(t, obstacles.CheckDrops(g, []gridgraph.Cell{{Row: 2, Col: 2}}))

	err := obstacles.CheckDrops(g, []gridgraph.Cell{{Row: 3, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: -1}})
	assert.ErrorIs(t, err, obstacles.ErrDropOutOfBounds)
	assert.Len(t, multierr.Errors(err), 2)

	assert.ErrorIs(t, obstacles.CheckDrops(nil, nil), obstacles.ErrNilGrid)
}

// ------------------------------------------------------------------------
// 2. Scanner construction.
// ------------------------------------------------------------------------

func TestNewScanner_Errors(t *testing.T) {
	g := gridgraph.MustParse("..#\n...\n")
	origin, corner := gridgraph.Cell{}, gridgraph.Cell{Row: 1, Col: 2}

	cases := []struct {
		name  string
		g     *gridgraph.Grid
		goal  gridgraph.Cell
		drops []gridgraph.Cell
		opts  []obstacles.Option
		want  error
	}{
		{"NilGrid", nil, corner, nil, nil, obstacles.ErrNilGrid},
		{"GoalOnWall", g, gridgraph.Cell{Row: 0, Col: 2}, nil, nil, obstacles.ErrEndpoint},
		{"GoalOutside", g, gridgraph.Cell{Row: 5, Col: 5}, nil, nil, obstacles.ErrEndpoint},
		{"DropOutside", g, corner, []gridgraph.Cell{{Row: 2, Col: 0}}, nil, obstacles.ErrDropOutOfBounds},
		{"BadWorkers", g, corner, nil, []obstacles.Option{obstacles.WithWorkers(0)}, obstacles.ErrBadWorkers},
		{"NilModel", g, corner, nil, []obstacles.Option{obstacles.WithModel(nil)}, cost.ErrNilModel},
		{"NegativeModel", g, corner, nil, []obstacles.Option{obstacles.WithModel(cost.TurnPenalty{Move: -1})}, cost.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := obstacles.NewScanner(tc.g, origin, tc.goal, tc.drops, tc.opts...)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestScanner_GridLeavesBaseUntouched(t *testing.T) {
	base, _ := gridgraph.NewOpen(7, 7)
	drops, _ := obstacles.ParseDropsString(smallDrops)
	s, err := obstacles.NewScanner(base, gridgraph.Cell{}, gridgraph.Cell{Row: 6, Col: 6}, drops)
	require.NoError(t, err)

	g, err := s.Grid(12)
	require.NoError(t, err)
	assert.False(t, g.Walkable(gridgraph.Cell{Row: 4, Col: 5}))
	assert.True(t, base.Walkable(gridgraph.Cell{Row: 4, Col: 5}))

	_, err = s.Grid(26)
	assert.ErrorIs(t, err, obstacles.ErrBadPrefix)
	_, err = s.Grid(-1)
	assert.ErrorIs(t, err, obstacles.ErrBadPrefix)
}

// ------------------------------------------------------------------------
// 3. Costs and the first blocking drop.
// ------------------------------------------------------------------------

func TestScanner_CostAfter(t *testing.T) {
	s := newSmall(t)
	ctx := context.Background()

	res, err := s.CostAfter(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Cost)

	res, err = s.CostAfter(ctx, 12)
	require.NoError(t, err)
	assert.True(t, res.Reached)
	assert.Equal(t, int64(22), res.Cost)

	res, err = s.CostAfter(ctx, 20)
	require.NoError(t, err)
	assert.True(t, res.Reached)

	res, err = s.CostAfter(ctx, 21)
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, dijkstra.Unreachable, res.Cost)

	_, err = s.CostAfter(ctx, 99)
	assert.ErrorIs(t, err, obstacles.ErrBadPrefix)
}

func TestScanner_FirstBlocking(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8, 64} {
		s := newSmall(t, obstacles.WithWorkers(workers))
		b, ok, err := s.FirstBlocking(context.Background())
		require.NoError(t, err, "workers=%d", workers)
		require.True(t, ok, "workers=%d", workers)
		assert.Equal(t, 20, b.Index, "workers=%d", workers)
		assert.Equal(t, gridgraph.Cell{Row: 1, Col: 6}, b.Drop, "workers=%d", workers)
		assert.Equal(t, "6,1", obstacles.Format(b.Drop))
	}
}

func TestScanner_TurnPenaltyModel(t *testing.T) {
	s := newSmall(t, obstacles.WithModel(cost.Reindeer()))
	b, ok, err := s.FirstBlocking(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, b.Index)
}

func TestScanner_NeverBlocked(t *testing.T) {
	g, _ := gridgraph.NewOpen(7, 7)
	all, _ := obstacles.ParseDropsString(smallDrops)
	for _, workers := range []int{1, 4} {
		s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 6, Col: 6}, all[:12], obstacles.WithWorkers(workers))
		require.NoError(t, err)
		_, ok, err := s.FirstBlocking(context.Background())
		require.NoError(t, err)
		assert.False(t, ok, "workers=%d", workers)
	}
}

func TestScanner_AlreadyBlocked(t *testing.T) {
	g := gridgraph.MustParse("..#\n.#.\n#..\n")
	for _, workers := range []int{1, 4} {
		s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2},
			[]gridgraph.Cell{{Row: 1, Col: 0}}, obstacles.WithWorkers(workers))
		require.NoError(t, err)
		_, _, err = s.FirstBlocking(context.Background())
		assert.ErrorIs(t, err, obstacles.ErrUnreachable, "workers=%d", workers)
	}
}

func TestScanner_DropOnStart(t *testing.T) {
	g, _ := gridgraph.NewOpen(3, 3)
	drops := []gridgraph.Cell{{Row: 2, Col: 0}, {Row: 0, Col: 0}}
	for _, workers := range []int{1, 4} {
		s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}, drops, obstacles.WithWorkers(workers))
		require.NoError(t, err)
		b, ok, err := s.FirstBlocking(context.Background())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 1, b.Index, "workers=%d", workers)
	}
}

// TestScanner_CostAfterDropOnStart reads the table of a result whose start
// cell was walled before any search ran.
func TestScanner_CostAfterDropOnStart(t *testing.T) {
	g, _ := gridgraph.NewOpen(3, 3)
	s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 2, Col: 2}, []gridgraph.Cell{{Row: 0, Col: 0}})
	require.NoError(t, err)

	res, err := s.CostAfter(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, dijkstra.Unreachable, res.Cost)

	require.NotNil(t, res.Table())
	assert.Zero(t, res.Table().Len())
	assert.Empty(t, res.Table().States())
	_, ok := res.Table().MinAt(gridgraph.Cell{})
	assert.False(t, ok)
	_, err = res.Path()
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// TestScanner_LogsDetour checks that the scanner reports the open-grid
// distance and how far the final route strays from it.
func TestScanner_LogsDetour(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{Verbosity: 2})

	g, _ := gridgraph.NewOpen(7, 7)
	all, _ := obstacles.ParseDropsString(smallDrops)
	s, err := obstacles.NewScanner(g, gridgraph.Cell{}, gridgraph.Cell{Row: 6, Col: 6}, all[:12], obstacles.WithLogger(log))
	require.NoError(t, err)
	_, ok, err := s.FirstBlocking(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, `"msg"="scanner ready"`)
	assert.Contains(t, joined, `"direct"=12`)
	assert.Contains(t, joined, `"msg"="goal never cut off"`)
	assert.Contains(t, joined, `"detour"=10`)
}

func TestScanner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		s := newSmall(t, obstacles.WithWorkers(workers))
		_, _, err := s.FirstBlocking(ctx)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

// TestScanner_ModesAgree compares the sequential sweep with the parallel
// bisection on random drop orders.
func TestScanner_ModesAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	const n = 10
	g, _ := gridgraph.NewOpen(n, n)
	start, goal := gridgraph.Cell{}, gridgraph.Cell{Row: n - 1, Col: n - 1}

	for trial := 0; trial < 25; trial++ {
		drops := make([]gridgraph.Cell, 0, n*n)
		for _, i := range rnd.Perm(n * n) {
			c := g.Coordinate(i)
			if c != start && c != goal {
				drops = append(drops, c)
			}
		}

		seq, err := obstacles.NewScanner(g, start, goal, drops)
		require.NoError(t, err)
		par, err := obstacles.NewScanner(g, start, goal, drops, obstacles.WithWorkers(3))
		require.NoError(t, err)

		b1, ok1, err := seq.FirstBlocking(context.Background())
		require.NoError(t, err)
		b2, ok2, err := par.FirstBlocking(context.Background())
		require.NoError(t, err)

		require.True(t, ok1, "trial %d", trial)
		assert.Equal(t, ok1, ok2, "trial %d", trial)
		assert.Equal(t, b1, b2, "trial %d", trial)

		before, err := seq.CostAfter(context.Background(), b1.Index)
		require.NoError(t, err)
		assert.True(t, before.Reached, "trial %d", trial)
	}
}
