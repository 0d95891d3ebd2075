// Package gridgraph provides the terrain grid consumed by the directional
// shortest-path engine. It supports:
//
//   - Bounds-checked neighbor queries along the four axis directions
//   - One-time scans for the Start and Goal markers
//   - Copy-before-mutate wall insertion for incremental-obstacle callers
//   - Identification of connected walkable regions
//
// Cells with Terrain Wall are blocked; every other Terrain is walkable.
package gridgraph

import (
	"fmt"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(rows [][]Terrain) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}
	cells := make([]Terrain, 0, h*w)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{Rows: h, Cols: w, cells: cells}, nil
}

// NewOpen returns a rows×cols grid in which every cell is Open.
func NewOpen(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{Rows: rows, Cols: cols, cells: make([]Terrain, rows*cols)}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns the terrain of c. Out-of-bounds cells read as Wall.
func (g *Grid) At(c Cell) Terrain {
	if !g.InBounds(c) {
		return Wall
	}

	return g.cells[g.index(c)]
}

// Walkable reports whether c is in bounds and not a Wall.
func (g *Grid) Walkable(c Cell) bool {
	return g.At(c).Walkable()
}

// Neighbor returns the cell one step from c along d, or false when that
// step leaves the grid. It does not look at terrain.
// Complexity: O(1).
func (g *Grid) Neighbor(c Cell, d Delta) (Cell, bool) {
	n := c.Add(d)
	if !g.InBounds(n) {
		return Cell{}, false
	}

	return n, true
}

// Find returns the first cell, in row-major order, holding terrain t.
func (g *Grid) Find(t Terrain) (Cell, bool) {
	for i, v := range g.cells {
		if v == t {
			return g.Coordinate(i), true
		}
	}

	return Cell{}, false
}

// Start returns the cell marked Start.
func (g *Grid) Start() (Cell, bool) { return g.Find(Start) }

// Goal returns the cell marked Goal.
func (g *Grid) Goal() (Cell, bool) { return g.Find(Goal) }

// WithWalls returns a copy of g in which every listed cell is a Wall.
// The receiver is never modified, so searches running on g are unaffected.
// Returns ErrOutOfBounds (wrapped with the offending cell) if any cell lies
// outside the grid.
// Complexity: O(R×C + len(walls)).
func (g *Grid) WithWalls(walls ...Cell) (*Grid, error) {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, cells: make([]Terrain, len(g.cells))}
	copy(out.cells, g.cells)
	for _, c := range walls {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
		}
		out.cells[out.index(c)] = Wall
	}

	return out, nil
}

// String renders g in the maze text format, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			sb.WriteRune(g.cells[r*g.Cols+c].Symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}
