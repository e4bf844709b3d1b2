// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// impl_wilson.go: Wilson's loop-erased random walk generator.
//
// Canonical model:
//   • Seed the maze with one random cell (one per mask region).
//   • Pick a random cell not yet in the maze and random-walk from it,
//     recording the path. When the walk steps onto a cell already on the
//     path, erase the loop by cutting the path back to that cell.
//   • When the walk reaches the maze, link consecutive path cells and add
//     them to the maze. Repeat until no cell is left outside.
//   • Produces a uniform spanning tree, like Aldous-Broder, but the first
//     walks are slow and the last ones fast.
//
// Contract:
//   • g non-nil and without passages; rng non-nil; m may be nil.
//
// Complexity:
//   • Expected time: proportional to the mean hitting time of the grid.
//   • Space: O(W·H) for membership, the unvisited list and path positions.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// notOnPath marks a cell absent from the current walk.
const notOnPath = -1

// Wilson carves a perfect maze into the unmasked cells of g.
func Wilson(g gridgraph.Graph, rng *rand.Rand, m gridgraph.Mask) error {
	if err := prepare(methodWilson, g, rng); err != nil {
		return err
	}

	w := &wilsonWalk{
		g:       g,
		rng:     rng,
		mask:    m,
		inMaze:  newVisitSet(g),
		pos:     make([]int, g.Size()),
		pathPos: make([]int, g.Size()),
	}
	for i := range w.pos {
		w.pos[i] = notOnPath
		w.pathPos[i] = notOnPath
	}
	for _, region := range gridgraph.Regions(g, m) {
		w.carve(region)
	}

	return nil
}

// wilsonWalk holds the mutable state of one Wilson run.
type wilsonWalk struct {
	g      gridgraph.Graph
	rng    *rand.Rand
	mask   gridgraph.Mask
	inMaze *visitSet

	// unvisited lists the cells outside the maze; pos[i] is the slot of
	// cell i in unvisited so removal is an O(1) swap.
	unvisited []gridgraph.Coordinate
	pos       []int

	// path is the current loop-erased walk; pathPos[i] is the position of
	// cell i on it.
	path    []gridgraph.Coordinate
	pathPos []int
}

// carve builds a spanning tree over one region.
func (w *wilsonWalk) carve(region []gridgraph.Coordinate) {
	seed := pick(w.rng, region)
	w.inMaze.add(seed)
	w.unvisited = w.unvisited[:0]
	for _, c := range region {
		if c != seed {
			w.pos[w.index(c)] = len(w.unvisited)
			w.unvisited = append(w.unvisited, c)
		}
	}

	var buf [4]gridgraph.Coordinate
	for len(w.unvisited) > 0 {
		start := pick(w.rng, w.unvisited)
		w.path = append(w.path[:0], start)
		w.pathPos[w.index(start)] = 0

		for cur := start; !w.inMaze.has(cur); {
			next := pick(w.rng, gridgraph.AppendUnmaskedNeighbours(buf[:0], w.g, w.mask, cur))
			if p := w.pathPos[w.index(next)]; p != notOnPath {
				// loop: cut the walk back to where it first touched next
				for _, c := range w.path[p+1:] {
					w.pathPos[w.index(c)] = notOnPath
				}
				w.path = w.path[:p+1]
			} else {
				w.pathPos[w.index(next)] = len(w.path)
				w.path = append(w.path, next)
			}
			cur = next
		}

		// the last path cell is in the maze already
		for i := 0; i+1 < len(w.path); i++ {
			mustLink(w.g, w.path[i], w.path[i+1])
			w.inMaze.add(w.path[i])
			w.remove(w.path[i])
		}
		for _, c := range w.path {
			w.pathPos[w.index(c)] = notOnPath
		}
	}
}

func (w *wilsonWalk) index(c gridgraph.Coordinate) int {
	return w.inMaze.index(c)
}

// remove swap-deletes c from the unvisited list.
func (w *wilsonWalk) remove(c gridgraph.Coordinate) {
	i := w.index(c)
	slot := w.pos[i]
	last := w.unvisited[len(w.unvisited)-1]
	w.unvisited[slot] = last
	w.pos[w.index(last)] = slot
	w.unvisited = w.unvisited[:len(w.unvisited)-1]
	w.pos[i] = notOnPath
}
