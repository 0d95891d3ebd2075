package dijkstra

import (
	"sort"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Table is the dominance table of one search: the best accumulated cost
// seen so far for every discovered State. Values only ever decrease, and a
// state's value is final once it has been popped fresh from the frontier.
//
// When predecessors are tracked, Table also remembers which state each
// recorded cost was reached from.
type Table struct {
	best  map[State]int64
	prev  map[State]State // nil unless tracking predecessors
	start State
}

func newTable(start State, trackPath bool, sizeHint int) *Table {
	t := &Table{
		best:  make(map[State]int64, sizeHint),
		start: start,
	}
	if trackPath {
		t.prev = make(map[State]State, sizeHint)
	}

	return t
}

// Best returns the best known cost of s; ok is false if s was never reached.
func (t *Table) Best(s State) (cost int64, ok bool) {
	cost, ok = t.best[s]
	return cost, ok
}

// record stores cost for s if it is strictly better than the current value
// (or s is unknown) and reports whether it did. from is the predecessor.
func (t *Table) record(s State, cost int64, from State) bool {
	if old, ok := t.best[s]; ok && cost >= old {
		return false
	}
	t.best[s] = cost
	if t.prev != nil && s != t.start {
		t.prev[s] = from
	}

	return true
}

// Len returns the number of discovered states.
func (t *Table) Len() int { return len(t.best) }

// States returns every discovered state sorted by row, column, heading.
func (t *Table) States() []State {
	out := make([]State, 0, len(t.best))
	for s := range t.best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Cell.Row != b.Cell.Row {
			return a.Cell.Row < b.Cell.Row
		}
		if a.Cell.Col != b.Cell.Col {
			return a.Cell.Col < b.Cell.Col
		}

		return a.Heading < b.Heading
	})

	return out
}

// CostsAt returns the best known cost for every heading reached at c.
// Headings never reached are absent from the map.
func (t *Table) CostsAt(c gridgraph.Cell) map[gridgraph.Heading]int64 {
	out := make(map[gridgraph.Heading]int64, gridgraph.NumHeadings)
	for _, h := range gridgraph.Headings {
		if v, ok := t.best[State{Cell: c, Heading: h}]; ok {
			out[h] = v
		}
	}

	return out
}

// MinAt returns the cheapest cost over all headings at c.
func (t *Table) MinAt(c gridgraph.Cell) (int64, bool) {
	lowest, found := Unreachable, false
	for _, v := range t.CostsAt(c) {
		if v < lowest {
			lowest, found = v, true
		}
	}

	return lowest, found
}

// PathTo rebuilds the recorded route from the start state to s.
// Returns ErrPathNotTracked without predecessor tracking and ErrNoPath if
// s was never reached.
func (t *Table) PathTo(s State) ([]State, error) {
	if t.prev == nil {
		return nil, ErrPathNotTracked
	}
	if _, ok := t.best[s]; !ok {
		return nil, ErrNoPath
	}
	// build reversed path
	path := []State{s}
	for cur := s; cur != t.start; {
		cur = t.prev[cur]
		path = append(path, cur)
	}
	// reverse to get start → s
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
