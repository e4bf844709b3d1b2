// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_rebuild_walls.go: post-processing that blocks random passages.
//
// Canonical model:
//   • Pick n distinct random passages and close them.
//   • For each cell a closed passage touched, open a passage to a random
//     other unmasked neighbour it is not already linked to (never the
//     partner it just lost), when such a neighbour exists.
//
// This loosens the strict tree for visual variety. It does NOT preserve
// perfectness: the re-routed passages may form cycles and may leave parts
// of the maze disconnected. Callers needing a perfect maze must not use it.
//
// Contract:
//   • g non-nil; rng non-nil; n ≥ 0 (else ErrBadSize); m may be nil.
//   • n larger than the passage count closes every passage.
//
// Complexity:
//   • Time: O(W·H + E). Space: O(E) for the passage list.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// RebuildRandomWalls closes n random passages of g and re-routes the cells
// they joined.
func RebuildRandomWalls(g gridgraph.Graph, rng *rand.Rand, m gridgraph.Mask, n int) error {
	if g == nil {
		return wrapf(methodRebuildRandomWalls, ErrGraphNil)
	}
	if rng == nil {
		return wrapf(methodRebuildRandomWalls, ErrNeedRandSource)
	}
	if n < 0 {
		return wrapf(methodRebuildRandomWalls, ErrBadSize)
	}

	edges := gridgraph.EdgeList(g)
	n = min(n, len(edges))
	// partial Fisher-Yates: the first n entries become the chosen passages
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(edges)-i)
		edges[i], edges[j] = edges[j], edges[i]
	}

	var nbrs []gridgraph.Coordinate
	for _, e := range edges[:n] {
		a, _ := g.Coordinate(e.From)
		b, _ := g.Coordinate(e.To)
		g.Unlink(a, b)
		for _, pair := range [2][2]gridgraph.Coordinate{{a, b}, {b, a}} {
			cell, lost := pair[0], pair[1]
			nbrs = nbrs[:0]
			for _, nb := range gridgraph.AppendUnmaskedNeighbours(nil, g, m, cell) {
				if nb != lost && !g.IsLinked(cell, nb) {
					nbrs = append(nbrs, nb)
				}
			}
			if len(nbrs) > 0 {
				mustLink(g, cell, pick(rng, nbrs))
			}
		}
	}

	return nil
}
