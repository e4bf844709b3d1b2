// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_hunt_and_kill.go: hunt-and-kill generator.
//
// Canonical model:
//   1) Kill: from the current cell, step to a random unvisited unmasked
//      neighbour, linking as you go, until no unvisited neighbour is left.
//   2) Hunt: scan row-major for the first unvisited cell with at least one
//      visited neighbour, link it to one of them and resume the walk there.
//   3) If the scan finds unvisited cells but none touching the visited area,
//      they belong to a region a mask cut off: start a fresh walk in the
//      first of them. Stop when the scan finds no unvisited cell at all.
//
// The scan keeps a cursor: every cell before it is visited or masked, so
// each hunt resumes where the previous one stopped being able to skip.
//
// Contract:
//   • g non-nil and without passages; rng non-nil; m may be nil.
//
// Complexity:
//   • Time: O(W·H) for the walks plus the hunts; O((W·H)²) worst case for
//     hunts that rescan cells stuck between the cursor and the visited area.
//   • Space: O(W·H) visited flags.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// HuntAndKill carves a perfect maze into the unmasked cells of g.
func HuntAndKill(g gridgraph.Graph, rng *rand.Rand, m gridgraph.Mask) error {
	if err := prepare(methodHuntAndKill, g, rng); err != nil {
		return err
	}
	open := gridgraph.Unmasked(g, m)
	if len(open) == 0 {
		return nil
	}

	h := &hunter{g: g, rng: rng, mask: m, visited: newVisitSet(g)}
	cur := pick(rng, open)
	h.visited.add(cur)
	for ok := true; ok; cur, ok = h.hunt() {
		h.kill(cur)
	}

	return nil
}

// hunter holds the mutable state of one hunt-and-kill run.
type hunter struct {
	g       gridgraph.Graph
	rng     *rand.Rand
	mask    gridgraph.Mask
	visited *visitSet
	cursor  int
	nbrs    []gridgraph.Coordinate
}

// kill performs the self-avoiding random walk from cur until stuck.
func (h *hunter) kill(cur gridgraph.Coordinate) {
	for {
		h.nbrs = h.visited.appendUnmaskedWhere(h.nbrs[:0], h.mask, cur, false)
		if len(h.nbrs) == 0 {
			return
		}
		next := pick(h.rng, h.nbrs)
		mustLink(h.g, cur, next)
		h.visited.add(next)
		cur = next
	}
}

// hunt finds the next cell to walk from, or reports false when every
// unmasked cell has been visited.
func (h *hunter) hunt() (gridgraph.Coordinate, bool) {
	firstUnvisited := -1
	for i := h.cursor; i < h.g.Size(); i++ {
		c, _ := h.g.Coordinate(i)
		if gridgraph.IsMasked(h.mask, c) || h.visited.has(c) {
			continue
		}
		if firstUnvisited < 0 {
			firstUnvisited = i
		}
		h.nbrs = h.visited.appendUnmaskedWhere(h.nbrs[:0], h.mask, c, true)
		if len(h.nbrs) > 0 {
			mustLink(h.g, c, pick(h.rng, h.nbrs))
			h.visited.add(c)
			h.cursor = firstUnvisited
			return c, true
		}
	}
	if firstUnvisited < 0 {
		h.cursor = h.g.Size()
		return gridgraph.Coordinate{}, false
	}

	// a region no visited cell touches
	h.cursor = firstUnvisited
	c, _ := h.g.Coordinate(firstUnvisited)
	h.visited.add(c)

	return c, true
}
