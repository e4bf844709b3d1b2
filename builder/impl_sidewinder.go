// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_sidewinder.go: sidewinder generator.
//
// Canonical model:
//   • Choose the run direction (East|West) and the close-out direction
//     (North|South) ONCE for the whole run.
//   • Walk each row in the sense of the run direction (West runs walk the
//     row right to left), accumulating a run of cells.
//   • At each cell flip a coin: extend the run (link towards the run
//     direction) or close it out (link a random run member towards the
//     close-out direction, then start a new run).
//   • At the end of a row closing out is forced; in the row on the close-out
//     border it is never chosen, so that row becomes one long corridor.
//
// Contract:
//   • g non-nil and without passages; rng non-nil.
//   • Masks are not supported.
//
// Complexity:
//   • Time: O(W·H). Space: O(W) for the current run.

package builder

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/mazes/gridgraph"
)

// Sidewinder carves a perfect maze into g with the sidewinder algorithm.
func Sidewinder(g gridgraph.Graph, rng *rand.Rand) error {
	if err := prepare(methodSidewinder, g, rng); err != nil {
		return err
	}

	runDir := gridgraph.East
	if rng.Intn(2) == 1 {
		runDir = gridgraph.West
	}
	closeDir := gridgraph.North
	if rng.Intn(2) == 1 {
		closeDir = gridgraph.South
	}

	run := make([]gridgraph.Coordinate, 0, g.Dimensions().Columns)
	for row := range g.Rows() {
		if runDir == gridgraph.West {
			slices.Reverse(row)
		}
		run = run[:0]
		for _, c := range row {
			run = append(run, c)
			next, hasNext := g.NeighbourAt(c, runDir)
			_, canClose := g.NeighbourAt(c, closeDir)

			if hasNext && (!canClose || rng.Intn(2) == 0) {
				mustLink(g, c, next)
				continue
			}
			member := pick(rng, run)
			if out, ok := g.NeighbourAt(member, closeDir); ok {
				mustLink(g, member, out)
			}
			run = run[:0]
		}
	}

	return nil
}
