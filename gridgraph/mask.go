package gridgraph

// Mask excludes cells from generation and traversal. A masked cell is
// treated as absent from the graph: it is never chosen, walked into or linked.
// A nil Mask masks nothing.
type Mask interface {
	// IsMasked reports whether c is excluded.
	IsMasked(c Coordinate) bool
	// FirstUnmasked returns the first non-excluded cell in row-major order.
	FirstUnmasked() (Coordinate, bool)
	// CountUnmaskedWithin counts non-excluded cells in the width×height
	// rectangle anchored at (0,0).
	CountUnmaskedWithin(width, height uint32) int
}

// IsMasked is the nil-safe form of m.IsMasked(c).
func IsMasked(m Mask, c Coordinate) bool {
	return m != nil && m.IsMasked(c)
}

// Unmasked returns every cell of g not excluded by m, in row-major order.
func Unmasked(g Graph, m Mask) []Coordinate {
	out := make([]Coordinate, 0, unmaskedCount(g, m))
	for c := range g.Cells() {
		if !IsMasked(m, c) {
			out = append(out, c)
		}
	}

	return out
}

// UnmaskedCount returns how many cells of g take part in the maze under m.
func UnmaskedCount(g Graph, m Mask) int {
	return unmaskedCount(g, m)
}

func unmaskedCount(g Graph, m Mask) int {
	if m == nil {
		return g.Size()
	}
	d := g.Dimensions()

	return m.CountUnmaskedWithin(d.Columns, d.Rows)
}

// AppendUnmaskedNeighbours appends the in-bounds, non-excluded neighbours of c
// onto dst in N, S, E, W order.
func AppendUnmaskedNeighbours(dst []Coordinate, g Graph, m Mask, c Coordinate) []Coordinate {
	for _, d := range Directions {
		n, ok := g.NeighbourAt(c, d)
		if ok && !IsMasked(m, n) {
			dst = append(dst, n)
		}
	}

	return dst
}

// FirstUnmasked returns a cell of g not excluded by m: the mask's own first
// unmasked cell when it lies inside g, otherwise the first row-major cell of
// g that m leaves open. Without a mask it is (0,0).
func FirstUnmasked(g Graph, m Mask) (Coordinate, bool) {
	if m == nil {
		return Coordinate{}, g.Size() > 0
	}
	c, ok := m.FirstUnmasked()
	if !ok || !g.IsValid(c) {
		// The mask may extend past the grid; scan the grid itself.
		for c := range g.Cells() {
			if !m.IsMasked(c) {
				return c, true
			}
		}
		return Coordinate{}, false
	}

	return c, true
}
