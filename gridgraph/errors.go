package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrGridTooLarge indicates the cell count does not fit the index type.
	ErrGridTooLarge = errors.New("gridgraph: cell count overflows index type")
	// ErrSelfLink indicates an attempt to link a cell to itself.
	ErrSelfLink = errors.New("gridgraph: cannot link a cell to itself")
	// ErrInvalidCoordinate indicates a coordinate outside the grid.
	ErrInvalidCoordinate = errors.New("gridgraph: coordinate outside grid")
)
