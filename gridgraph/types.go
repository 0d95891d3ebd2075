// Package gridgraph defines core types for the grid model:
// Terrain, Cell, Delta, Heading and the immutable Grid.
package gridgraph

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Terrain classifies a single grid cell.
type Terrain uint8

const (
	// Open is a walkable, unmarked cell.
	Open Terrain = iota
	// Wall is the only non-walkable terrain.
	Wall
	// Start marks the starting cell; it is walkable.
	Start
	// Goal marks the goal cell; it is walkable.
	Goal
)

// Walkable reports whether the terrain can be entered.
func (t Terrain) Walkable() bool { return t != Wall }

// Symbol returns the rune used for t in the maze text format.
func (t Terrain) Symbol() rune {
	switch t {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case Goal:
		return 'E'
	default:
		return '.'
	}
}

// TerrainOf maps a maze text rune to its Terrain.
func TerrainOf(r rune) (Terrain, bool) {
	switch r {
	case '.':
		return Open, true
	case '#':
		return Wall, true
	case 'S':
		return Start, true
	case 'E':
		return Goal, true
	}

	return Open, false
}

// Cell is a (row, column) position. It is valid only inside the bounds
// of the Grid it is used with.
type Cell struct {
	Row, Col int
}

// Add returns c moved by d.
func (c Cell) Add(d Delta) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Manhattan returns the L1 distance between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Delta is an axis-aligned unit move. Only the four values returned by
// Heading.Delta are meaningful to the search.
type Delta struct {
	DRow, DCol int
}

// Grid is an immutable, rectangular terrain map. Rows and Cols define its
// dimensions; cells are stored row-major.
type Grid struct {
	Rows, Cols int
	cells      []Terrain
}
