// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_aldous_broder.go: Aldous-Broder generator.
//
// Canonical model:
//   • Start at a random unmasked cell and walk to uniformly random unmasked
//     neighbours. Whenever the walk enters a cell for the first time, link it
//     to the cell it came from.
//   • Stop when every cell has been entered. The result is a uniform spanning
//     tree; the price is the random walk's cover time.
//   • A mask may split the grid into regions no walk can cross; each region
//     gets its own walk so the generator always terminates.
//
// Contract:
//   • g non-nil and without passages; rng non-nil; m may be nil.
//
// Complexity:
//   • Expected time: super-linear (cover time of the grid graph).
//   • Space: O(W·H) visited flags.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// AldousBroder carves a perfect maze into the unmasked cells of g.
func AldousBroder(g gridgraph.Graph, rng *rand.Rand, m gridgraph.Mask) error {
	if err := prepare(methodAldousBroder, g, rng); err != nil {
		return err
	}

	visited := newVisitSet(g)
	var buf [4]gridgraph.Coordinate
	for _, region := range gridgraph.Regions(g, m) {
		cur := pick(rng, region)
		visited.add(cur)
		for remaining := len(region) - 1; remaining > 0; {
			next := pick(rng, gridgraph.AppendUnmaskedNeighbours(buf[:0], g, m, cur))
			if !visited.has(next) {
				mustLink(g, cur, next)
				visited.add(next)
				remaining--
			}
			cur = next
		}
	}

	return nil
}
