package gridgraph

// Regions finds the contiguous areas of unmasked cells, joined by grid
// adjacency and ignoring passages. A mask can split a grid into several
// regions; a perfect maze over a masked grid is one spanning tree per region.
// Each region lists its cells in BFS order; regions are ordered by their
// first row-major cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Regions(g Graph, m Mask) [][]Coordinate {
	seen := make([]bool, g.Size())
	var regions [][]Coordinate
	var nbuf [4]Coordinate

	for c := range g.Cells() {
		i0, _ := g.Index(c)
		if seen[i0] || IsMasked(m, c) {
			continue
		}
		// BFS to collect the region
		queue := []Coordinate{c}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range AppendUnmaskedNeighbours(nbuf[:0], g, m, queue[qi]) {
				ni, _ := g.Index(n)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// ComponentCount counts the connected components formed by passages over
// the unmasked cells of g. An isolated unmasked cell is its own component;
// masked cells are not counted. For a forest,
// LinkCount() == UnmaskedCount(g, m) - ComponentCount(g, m).
//
// Time: O((W·H + E)·α(W·H)).
func ComponentCount(g Graph, m Mask) int {
	ds := newDisjointSet(g.Size())
	components := 0
	for c := range g.Cells() {
		if !IsMasked(m, c) {
			components++
		}
	}
	for a, b := range g.Edges() {
		if IsMasked(m, a) || IsMasked(m, b) {
			continue
		}
		ia, _ := g.Index(a)
		ib, _ := g.Index(b)
		if ds.union(ia, ib) {
			components--
		}
	}

	return components
}

// IsPerfect reports whether the passages of g form exactly one spanning tree
// per region of unmasked cells.
func IsPerfect(g Graph, m Mask) bool {
	components := ComponentCount(g, m)
	return components == len(Regions(g, m)) && g.LinkCount() == UnmaskedCount(g, m)-components
}
