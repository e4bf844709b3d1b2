package gridgraph

import "fmt"

// Coordinate addresses a cell: X is the column, Y is the row, (0,0) is the
// top-left cell. Coordinates are plain comparable values.
type Coordinate struct {
	X, Y uint32
}

// FromRowMajorIndex converts a flat row-major index back to a Coordinate
// for rows of the given length.
func FromRowMajorIndex(index int, rowLength uint32) Coordinate {
	rl := int(rowLength)
	return Coordinate{X: uint32(index % rl), Y: uint32(index / rl)}
}

// FromRowColumnIndices builds a Coordinate from explicit column and row indices.
func FromRowColumnIndices(column, row uint32) Coordinate {
	return Coordinate{X: column, Y: row}
}

// RowMajorIndex is the inverse of FromRowMajorIndex. It performs no bounds check.
func (c Coordinate) RowMajorIndex(rowLength uint32) int {
	return int(c.Y)*int(rowLength) + int(c.X)
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Dimensions is the fixed size of a grid.
type Dimensions struct {
	Rows, Columns uint32
}

// Size returns the number of cells.
func (d Dimensions) Size() int {
	return int(d.Rows) * int(d.Columns)
}

// EdgeCapacityHint is an upper bound on the passages a fully open grid may
// need to record: 4·cells − 4·max(rows, columns), never negative.
func (d Dimensions) EdgeCapacityHint() int {
	longest := max(d.Rows, d.Columns)
	hint := 4*d.Size() - 4*int(longest)
	if hint < 0 {
		return 0
	}

	return hint
}

// Contains reports whether c lies inside the dimensions.
func (d Dimensions) Contains(c Coordinate) bool {
	return c.X < d.Columns && c.Y < d.Rows
}
