// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_recursive_backtracker.go: depth-first (recursive backtracker) generator.
//
// Canonical model:
//   • Push a random start cell. While the stack is not empty, look at its
//     top: if it has unvisited unmasked neighbours, link one at random and
//     push it; otherwise pop.
//   • The stack is an explicit slice, never the call stack, so a 500×500
//     corridor cannot overflow goroutine stack limits.
//   • Each mask region is carved from its own random start.
//
// Contract:
//   • g non-nil and without passages; rng non-nil; m may be nil.
//
// Complexity:
//   • Time: O(W·H). Space: O(W·H) for the stack and visited flags.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// RecursiveBacktracker carves a perfect maze into the unmasked cells of g.
func RecursiveBacktracker(g gridgraph.Graph, rng *rand.Rand, m gridgraph.Mask) error {
	if err := prepare(methodRecursiveBacktracker, g, rng); err != nil {
		return err
	}

	visited := newVisitSet(g)
	var (
		stack []gridgraph.Coordinate
		nbrs  []gridgraph.Coordinate
	)
	for _, region := range gridgraph.Regions(g, m) {
		start := pick(rng, region)
		visited.add(start)
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			nbrs = visited.appendUnmaskedWhere(nbrs[:0], m, top, false)
			if len(nbrs) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			next := pick(rng, nbrs)
			mustLink(g, top, next)
			visited.add(next)
			stack = append(stack, next)
		}
	}

	return nil
}
