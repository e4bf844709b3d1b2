// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// helpers.go: argument checks, random picks and visited-cell tracking
// shared by the generators.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

// Generator names used as error context.
const (
	methodBuildMaze            = "BuildMaze"
	methodBinaryTree           = "BinaryTree"
	methodSidewinder           = "Sidewinder"
	methodAldousBroder         = "AldousBroder"
	methodWilson               = "Wilson"
	methodHuntAndKill          = "HuntAndKill"
	methodRecursiveBacktracker = "RecursiveBacktracker"
	methodRebuildRandomWalls   = "RebuildRandomWalls"
)

// prepare validates the arguments every generator shares.
// Priority: nil graph, then nil rng, then a grid that already has passages.
func prepare(method string, g gridgraph.Graph, rng *rand.Rand) error {
	if g == nil {
		return wrapf(method, ErrGraphNil)
	}
	if rng == nil {
		return wrapf(method, ErrNeedRandSource)
	}
	if g.LinkCount() != 0 {
		return wrapf(method, ErrNotEmpty)
	}

	return nil
}

// mustLink opens a passage between two cells the generator already knows to
// be valid and distinct; failure means the grid broke its contract.
func mustLink(g gridgraph.Graph, a, b gridgraph.Coordinate) {
	if err := g.Link(a, b); err != nil {
		panic(fmt.Sprintf("builder: link %v-%v: %v", a, b, err))
	}
}

// pick returns a uniformly chosen element of a non-empty slice.
func pick(rng *rand.Rand, cells []gridgraph.Coordinate) gridgraph.Coordinate {
	return cells[rng.Intn(len(cells))]
}

// visitSet tracks visited cells by row-major index.
type visitSet struct {
	g    gridgraph.Graph
	seen []bool
}

func newVisitSet(g gridgraph.Graph) *visitSet {
	return &visitSet{g: g, seen: make([]bool, g.Size())}
}

func (v *visitSet) index(c gridgraph.Coordinate) int {
	i, ok := v.g.Index(c)
	if !ok {
		panic(fmt.Sprintf("builder: cell %v outside grid", c))
	}
	return i
}

func (v *visitSet) has(c gridgraph.Coordinate) bool { return v.seen[v.index(c)] }
func (v *visitSet) add(c gridgraph.Coordinate)      { v.seen[v.index(c)] = true }

// appendUnmaskedWhere appends the unmasked neighbours of c whose visited
// state equals visited.
func (v *visitSet) appendUnmaskedWhere(dst []gridgraph.Coordinate, m gridgraph.Mask, c gridgraph.Coordinate, visited bool) []gridgraph.Coordinate {
	var buf [4]gridgraph.Coordinate
	for _, n := range gridgraph.AppendUnmaskedNeighbours(buf[:0], v.g, m, c) {
		if v.has(n) == visited {
			dst = append(dst, n)
		}
	}

	return dst
}
