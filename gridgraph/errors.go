package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadTerrain indicates a rune in a maze text that maps to no Terrain.
	ErrBadTerrain = errors.New("gridgraph: unknown terrain symbol")
	// ErrOutOfBounds indicates a cell outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)
