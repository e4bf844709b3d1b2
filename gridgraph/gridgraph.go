package gridgraph

import (
	"fmt"
	"math/rand"
)

// Dimensions returns the fixed grid size.
func (g *Grid[T]) Dimensions() Dimensions { return g.dims }

// Size returns the number of cells.
func (g *Grid[T]) Size() int { return len(g.nodes) }

// LinkCount returns the number of undirected passages.
func (g *Grid[T]) LinkCount() int { return g.links }

// EdgeCapacityHint returns the passage bound computed at construction.
func (g *Grid[T]) EdgeCapacityHint() int { return g.edgeHint }

// IsValid reports whether c lies inside the grid.
// Complexity: O(1).
func (g *Grid[T]) IsValid(c Coordinate) bool {
	return g.dims.Contains(c)
}

// Index maps c to its row-major node index.
// Complexity: O(1).
func (g *Grid[T]) Index(c Coordinate) (int, bool) {
	if !g.dims.Contains(c) {
		return 0, false
	}

	return c.RowMajorIndex(g.dims.Columns), true
}

// Coordinate maps a row-major node index back to a Coordinate.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(index int) (Coordinate, bool) {
	if index < 0 || index >= len(g.nodes) {
		return Coordinate{}, false
	}

	return FromRowMajorIndex(index, g.dims.Columns), true
}

// at converts a node index of type T to a Coordinate. Indices stored in the
// grid are valid by construction.
func (g *Grid[T]) at(i T) Coordinate {
	return FromRowMajorIndex(int(i), g.dims.Columns)
}

// Link opens a passage between a and b.
// Returns ErrSelfLink if a == b, ErrInvalidCoordinate if either lies outside
// the grid. Linking an already linked pair changes nothing.
// Adjacency of a and b is the caller's responsibility.
// Complexity: O(1) amortised.
func (g *Grid[T]) Link(a, b Coordinate) error {
	if a == b {
		return fmt.Errorf("%w: %v", ErrSelfLink, a)
	}
	ia, ok := g.Index(a)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, a)
	}
	ib, ok := g.Index(b)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, b)
	}
	u, v := T(ia), T(ib)
	if g.has(u, v) {
		return nil
	}
	g.add(u, v)
	g.add(v, u)
	g.links++

	return nil
}

// Unlink closes the passage between a and b and reports whether it existed.
// Invalid or identical coordinates return false.
// Complexity: O(1) amortised.
func (g *Grid[T]) Unlink(a, b Coordinate) bool {
	if a == b {
		return false
	}
	ia, okA := g.Index(a)
	ib, okB := g.Index(b)
	if !okA || !okB {
		return false
	}
	u, v := T(ia), T(ib)
	if !g.remove(u, v) {
		return false
	}
	if !g.remove(v, u) {
		panic(fmt.Sprintf("gridgraph: asymmetric passage %v-%v", a, b))
	}
	g.links--

	return true
}

// IsLinked reports whether a passage joins a and b.
func (g *Grid[T]) IsLinked(a, b Coordinate) bool {
	ia, okA := g.Index(a)
	ib, okB := g.Index(b)
	if !okA || !okB {
		return false
	}

	return g.has(T(ia), T(ib))
}

// Links returns the cells joined to c by a passage, or false if c is invalid.
func (g *Grid[T]) Links(c Coordinate) ([]Coordinate, bool) {
	return g.AppendLinks(nil, c)
}

// AppendLinks appends the cells joined to c onto dst.
func (g *Grid[T]) AppendLinks(dst []Coordinate, c Coordinate) ([]Coordinate, bool) {
	i, ok := g.Index(c)
	if !ok {
		return dst, false
	}
	nd := &g.nodes[i]
	for _, v := range nd.links[:nd.n] {
		dst = append(dst, g.at(v))
	}
	for _, v := range g.overflow[T(i)] {
		dst = append(dst, g.at(v))
	}
	if dst == nil {
		dst = []Coordinate{}
	}

	return dst, true
}

// Neighbours returns the in-bounds grid-adjacent cells of c regardless of
// passages, in N, S, E, W order. Invalid c yields an empty slice.
func (g *Grid[T]) Neighbours(c Coordinate) []Coordinate {
	return g.AppendNeighbours(make([]Coordinate, 0, len(Directions)), c)
}

// AppendNeighbours appends the in-bounds neighbours of c onto dst.
func (g *Grid[T]) AppendNeighbours(dst []Coordinate, c Coordinate) []Coordinate {
	if !g.dims.Contains(c) {
		return dst
	}
	for _, d := range Directions {
		if n, ok := g.NeighbourAt(c, d); ok {
			dst = append(dst, n)
		}
	}

	return dst
}

// NeighbourAt returns the neighbour of c in direction d if both lie inside the grid.
func (g *Grid[T]) NeighbourAt(c Coordinate, d Direction) (Coordinate, bool) {
	if !g.dims.Contains(c) {
		return Coordinate{}, false
	}
	n, ok := Offset(c, d)
	if !ok || !g.dims.Contains(n) {
		return Coordinate{}, false
	}

	return n, true
}

// IsNeighbourLinked reports whether c has an open passage towards d.
func (g *Grid[T]) IsNeighbourLinked(c Coordinate, d Direction) bool {
	n, ok := g.NeighbourAt(c, d)
	if !ok {
		return false
	}

	return g.IsLinked(c, n)
}

// RandomCell returns a uniformly chosen cell.
func (g *Grid[T]) RandomCell(rng *rand.Rand) Coordinate {
	return g.at(T(rng.Intn(len(g.nodes))))
}

// Clear removes every passage, keeping the node storage.
func (g *Grid[T]) Clear() {
	clear(g.nodes)
	g.overflow = nil
	g.links = 0
}

// has reports whether v is recorded among u's passages.
func (g *Grid[T]) has(u, v T) bool {
	nd := &g.nodes[u]
	for _, w := range nd.links[:nd.n] {
		if w == v {
			return true
		}
	}
	for _, w := range g.overflow[u] {
		if w == v {
			return true
		}
	}

	return false
}

// add records v among u's passages, spilling to overflow past four.
func (g *Grid[T]) add(u, v T) {
	nd := &g.nodes[u]
	if nd.n < inlineLinks {
		nd.links[nd.n] = v
		nd.n++
		return
	}
	if g.overflow == nil {
		g.overflow = make(map[T][]T)
	}
	g.overflow[u] = append(g.overflow[u], v)
}

// remove deletes v from u's passages, refilling the inline slots from
// overflow so inline storage is always used first.
func (g *Grid[T]) remove(u, v T) bool {
	nd := &g.nodes[u]
	spill := g.overflow[u]
	for i, w := range nd.links[:nd.n] {
		if w != v {
			continue
		}
		last := nd.n - 1
		nd.links[i] = nd.links[last]
		if len(spill) > 0 {
			nd.links[last] = spill[len(spill)-1]
			g.trimOverflow(u, spill[:len(spill)-1])
		} else {
			nd.n = last
		}
		return true
	}
	for i, w := range spill {
		if w == v {
			spill[i] = spill[len(spill)-1]
			g.trimOverflow(u, spill[:len(spill)-1])
			return true
		}
	}

	return false
}

func (g *Grid[T]) trimOverflow(u T, rest []T) {
	if len(rest) == 0 {
		delete(g.overflow, u)
		return
	}
	g.overflow[u] = rest
}
