package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mazes/gridgraph"
)

// ShortestPath walks back from end to the start of d, always stepping to a
// linked neighbour with a strictly smaller distance, and returns the cells
// in start-to-end order.
// Returns ErrUnreachable if end was not reached, ErrBrokenPath if the walk
// gets stuck (g was mutated after d was computed), ErrDimensionMismatch if d
// belongs to a grid of another size.
// Complexity: O(path length).
func ShortestPath(g gridgraph.Graph, d *Distances, end gridgraph.Coordinate) ([]gridgraph.Coordinate, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Dimensions() != d.dims {
		return nil, ErrDimensionMismatch
	}
	remaining, ok := d.DistanceTo(end)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, end)
	}

	path := make([]gridgraph.Coordinate, 0, remaining+1)
	links := make([]gridgraph.Coordinate, 0, 4)
	cur := end
	path = append(path, cur)
	for cur != d.start {
		links, _ = g.AppendLinks(links[:0], cur)
		best, bestDist, found := cur, remaining, false
		for _, n := range links {
			if nd, ok := d.DistanceTo(n); ok && nd < bestDist {
				best, bestDist, found = n, nd, true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: stuck at %v", ErrBrokenPath, cur)
		}
		cur, remaining = best, bestDist
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// LongestPath estimates the longest path of g by double flood fill: fill
// from an unmasked start, fill again from the furthest cell found, and
// return the path to the furthest cell of the second fill.
// Exact on a perfect maze; only an estimate when the passages form several
// components (e.g. a mask splits the grid).
// The start is the mask's first unmasked cell, or (0,0) without a mask.
func LongestPath(g gridgraph.Graph, m gridgraph.Mask) ([]gridgraph.Coordinate, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	start, ok := gridgraph.FirstUnmasked(g, m)
	if !ok {
		return nil, ErrNoUnmaskedCell
	}
	first, err := Compute(g, start, WithMask(m))
	if err != nil {
		return nil, err
	}
	second, err := Compute(g, first.FurthestPoints()[0], WithMask(m))
	if err != nil {
		return nil, err
	}

	return ShortestPath(g, second, second.FurthestPoints()[0])
}
