package gridgraph

import "fmt"

// New allocates a rows×columns grid with no passages, addressed by T.
// Returns ErrEmptyGrid if either dimension is zero and ErrGridTooLarge if
// the cell count exceeds the largest value T can hold.
// Complexity: O(W×H) time and memory.
func New[T Index](rows, columns uint32) (*Grid[T], error) {
	if rows == 0 || columns == 0 {
		return nil, ErrEmptyGrid
	}
	cells := uint64(rows) * uint64(columns)
	if limit := uint64(^T(0)); cells > limit {
		return nil, fmt.Errorf("%w: %d×%d needs %d cells, limit %d", ErrGridTooLarge, rows, columns, cells, limit)
	}
	dims := Dimensions{Rows: rows, Columns: columns}

	return &Grid[T]{
		dims:     dims,
		nodes:    make([]node[T], dims.Size()),
		edgeHint: dims.EdgeCapacityHint(),
	}, nil
}

// NewSmall builds a grid of at most 255 cells with 8-bit indices.
func NewSmall(rows, columns uint32) (*Grid[uint8], error) {
	return New[uint8](rows, columns)
}

// NewMedium builds a grid of at most 65535 cells with 16-bit indices.
func NewMedium(rows, columns uint32) (*Grid[uint16], error) {
	return New[uint16](rows, columns)
}

// NewLarge builds a grid of at most 4294967295 cells with 32-bit indices.
func NewLarge(rows, columns uint32) (*Grid[uint32], error) {
	return New[uint32](rows, columns)
}

// NewFitted builds a grid using the narrowest index width able to address
// rows×columns cells.
func NewFitted(rows, columns uint32) (Graph, error) {
	cells := uint64(rows) * uint64(columns)
	switch {
	case cells <= uint64(^uint8(0)):
		g, err := NewSmall(rows, columns)
		if err != nil {
			return nil, err
		}
		return g, nil
	case cells <= uint64(^uint16(0)):
		g, err := NewMedium(rows, columns)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		g, err := NewLarge(rows, columns)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
