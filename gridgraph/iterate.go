package gridgraph

import (
	"iter"
	"slices"
)

// Cells yields every coordinate in row-major order. The sequence is
// restartable and always yields exactly Size() values.
func (g *Grid[T]) Cells() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for y := uint32(0); y < g.dims.Rows; y++ {
			for x := uint32(0); x < g.dims.Columns; x++ {
				if !yield(Coordinate{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Rows yields one freshly allocated batch per row, each ordered left to right.
func (g *Grid[T]) Rows() iter.Seq[[]Coordinate] {
	return func(yield func([]Coordinate) bool) {
		for y := uint32(0); y < g.dims.Rows; y++ {
			row := make([]Coordinate, g.dims.Columns)
			for x := range row {
				row[x] = Coordinate{X: uint32(x), Y: y}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Columns yields one freshly allocated batch per column, each ordered top to bottom.
func (g *Grid[T]) Columns() iter.Seq[[]Coordinate] {
	return func(yield func([]Coordinate) bool) {
		for x := uint32(0); x < g.dims.Columns; x++ {
			col := make([]Coordinate, g.dims.Rows)
			for y := range col {
				col[y] = Coordinate{X: x, Y: uint32(y)}
			}
			if !yield(col) {
				return
			}
		}
	}
}

// Edges yields every passage once, as (lower index, higher index), sorted
// by lower index then higher index.
// Complexity: O(W×H + E).
func (g *Grid[T]) Edges() iter.Seq2[Coordinate, Coordinate] {
	return func(yield func(Coordinate, Coordinate) bool) {
		buf := make([]T, 0, inlineLinks)
		for i := range g.nodes {
			u := T(i)
			buf = buf[:0]
			nd := &g.nodes[i]
			for _, v := range nd.links[:nd.n] {
				if v > u {
					buf = append(buf, v)
				}
			}
			for _, v := range g.overflow[u] {
				if v > u {
					buf = append(buf, v)
				}
			}
			slices.Sort(buf)
			for _, v := range buf {
				if !yield(g.at(u), g.at(v)) {
					return
				}
			}
		}
	}
}
