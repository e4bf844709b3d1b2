package gridgraph_test

import (
	"math/rand"

	"github.com/katalvlaran/mazes/gridgraph"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

// rowsMask masks every 'X' in a slice of equal-length rows.
type rowsMask []string

func (m rowsMask) IsMasked(c gridgraph.Coordinate) bool {
	if int(c.Y) >= len(m) || int(c.X) >= len(m[c.Y]) {
		return false
	}
	return m[c.Y][c.X] == 'X'
}

func (m rowsMask) FirstUnmasked() (gridgraph.Coordinate, bool) {
	for y, row := range m {
		for x := range row {
			c := gridgraph.Coordinate{X: uint32(x), Y: uint32(y)}
			if !m.IsMasked(c) {
				return c, true
			}
		}
	}
	return gridgraph.Coordinate{}, false
}

func (m rowsMask) CountUnmaskedWithin(width, height uint32) int {
	n := 0
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			if !m.IsMasked(gridgraph.Coordinate{X: x, Y: y}) {
				n++
			}
		}
	}
	return n
}
