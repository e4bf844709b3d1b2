// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_binary_tree.go: binary tree generator.
//
// Canonical model:
//   • Choose one vertical (North|South) and one horizontal (East|West)
//     direction ONCE for the whole run.
//   • Visit cells in row-major order; link each cell to the neighbour in one
//     of the two directions, chosen at random among those inside the grid.
//   • Every link points towards the corner the two directions meet in, so
//     the passages form a tree rooted there. Re-rolling the pair per cell
//     would let two cells point at each other and break perfectness.
//
// Contract:
//   • g non-nil and without passages; rng non-nil.
//   • Masks are not supported.
//
// Complexity:
//   • Time: O(W·H). Space: O(1) extra.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// BinaryTree carves a perfect maze into g with the binary tree algorithm.
func BinaryTree(g gridgraph.Graph, rng *rand.Rand) error {
	if err := prepare(methodBinaryTree, g, rng); err != nil {
		return err
	}

	vertical := gridgraph.North
	if rng.Intn(2) == 1 {
		vertical = gridgraph.South
	}
	horizontal := gridgraph.East
	if rng.Intn(2) == 1 {
		horizontal = gridgraph.West
	}
	pair := [2]gridgraph.Direction{vertical, horizontal}

	var candidates [2]gridgraph.Coordinate
	for c := range g.Cells() {
		n := 0
		for _, d := range pair {
			if nb, ok := g.NeighbourAt(c, d); ok {
				candidates[n] = nb
				n++
			}
		}
		if n == 0 {
			continue // the root corner
		}
		mustLink(g, c, candidates[rng.Intn(n)])
	}

	return nil
}
