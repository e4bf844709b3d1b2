// File: builder_test.go
// Package builder_test verifies every generator carves a perfect maze,
// honours masks, validates its arguments and is deterministic per seed.
package builder_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazes/builder"
	"github.com/katalvlaran/mazes/gridgraph"
)

// rowsMask masks every 'X' in a slice of equal-length rows.
type rowsMask []string

func (m rowsMask) IsMasked(c gridgraph.Coordinate) bool {
	return int(c.Y) < len(m) && int(c.X) < len(m[c.Y]) && m[c.Y][c.X] == 'X'
}

func (m rowsMask) FirstUnmasked() (gridgraph.Coordinate, bool) {
	for y, row := range m {
		for x := range row {
			if row[x] != 'X' {
				return gridgraph.Coordinate{X: uint32(x), Y: uint32(y)}, true
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

// splitMask cuts a 6×7 grid into five regions: two blocks above the
// masked row, a bottom-left block, an L-shaped run on the bottom right
// and the isolated cell (4,3).
var splitMask = rowsMask{
	"..X....",
	"..X....",
	"XXXXXXX",
	"...X.X.",
	"...XXX.",
	"...X...",
}

type GeneratorSuite struct {
	suite.Suite
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

// TestPerfect checks the spanning-tree postcondition for every generator
// over a range of shapes, including 1-wide corridors and a single cell.
func (s *GeneratorSuite) TestPerfect() {
	sizes := [][2]uint32{{1, 1}, {1, 9}, {9, 1}, {2, 2}, {5, 8}, {16, 15}, {40, 25}}
	for _, alg := range builder.Algorithms() {
		for _, size := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				name := fmt.Sprintf("%s/%dx%d/seed%d", alg, size[0], size[1], seed)
				s.Run(name, func() {
					r := s.Require()
					g, err := gridgraph.NewFitted(size[0], size[1])
					r.NoError(err)
					r.NoError(builder.Generate(alg, g, rand.New(rand.NewSource(seed)), nil))
					r.Equal(g.Size()-1, g.LinkCount())
					r.Equal(1, gridgraph.ComponentCount(g, nil))
					r.True(gridgraph.IsPerfect(g, nil))
					for a, b := range g.Edges() {
						r.Contains(g.Neighbours(a), b, "passage %v-%v joins non-adjacent cells", a, b)
					}
				})
			}
		}
	}
}

// TestMasked checks the mask-aware generators carve one tree per region
// and never touch a masked cell.
func (s *GeneratorSuite) TestMasked() {
	for _, alg := range builder.Algorithms() {
		if !alg.SupportsMask() {
			continue
		}
		for seed := int64(1); seed <= 5; seed++ {
			s.Run(fmt.Sprintf("%s/seed%d", alg, seed), func() {
				r := s.Require()
				g, err := gridgraph.NewSmall(6, 7)
				r.NoError(err)
				r.NoError(builder.Generate(alg, g, rand.New(rand.NewSource(seed)), splitMask))

				regions := gridgraph.Regions(g, splitMask)
				r.Len(regions, 5)
				r.Equal(gridgraph.UnmaskedCount(g, splitMask)-len(regions), g.LinkCount())
				r.Equal(len(regions), gridgraph.ComponentCount(g, splitMask))
				r.True(gridgraph.IsPerfect(g, splitMask))
				for c := range g.Cells() {
					if splitMask.IsMasked(c) {
						links, _ := g.Links(c)
						r.Empty(links, "masked cell %v has passages", c)
					}
				}
			})
		}
	}
}

// TestFullyMasked checks generators cope with a mask hiding every cell.
func (s *GeneratorSuite) TestFullyMasked() {
	m := rowsMask{"XXX", "XXX"}
	for _, alg := range builder.Algorithms() {
		if !alg.SupportsMask() {
			continue
		}
		g, err := gridgraph.NewSmall(2, 3)
		s.Require().NoError(err)
		s.Require().NoError(builder.Generate(alg, g, rand.New(rand.NewSource(7)), m))
		s.Zero(g.LinkCount(), alg.String())
	}
}

// TestDeterministic checks the same seed yields the same passages.
func (s *GeneratorSuite) TestDeterministic() {
	for _, alg := range builder.Algorithms() {
		a, err := builder.BuildMaze(12, 9, alg, builder.WithSeed(99))
		s.Require().NoError(err)
		b, err := builder.BuildMaze(12, 9, alg, builder.WithSeed(99))
		s.Require().NoError(err)
		s.Equal(gridgraph.EdgeList(a), gridgraph.EdgeList(b), alg.String())
	}
}

func TestGenerators_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, alg := range builder.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			assert.ErrorIs(t, builder.Generate(alg, nil, rng, nil), builder.ErrGraphNil)

			g, err := gridgraph.NewSmall(3, 3)
			require.NoError(t, err)
			assert.ErrorIs(t, builder.Generate(alg, g, nil, nil), builder.ErrNeedRandSource)

			require.NoError(t, g.Link(gridgraph.Coordinate{X: 0, Y: 0}, gridgraph.Coordinate{X: 1, Y: 0}))
			assert.ErrorIs(t, builder.Generate(alg, g, rng, nil), builder.ErrNotEmpty)
		})
	}
	g, err := gridgraph.NewSmall(3, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, builder.Generate(builder.Algorithm(42), g, rng, nil), builder.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want builder.Algorithm
	}{
		{"binary-tree", builder.BinaryTreeAlgorithm},
		{"binary", builder.BinaryTreeAlgorithm},
		{"Sidewinder", builder.SidewinderAlgorithm},
		{"aldous_broder", builder.AldousBroderAlgorithm},
		{"wilson", builder.WilsonAlgorithm},
		{"hunt-kill", builder.HuntAndKillAlgorithm},
		{"hunt-and-kill", builder.HuntAndKillAlgorithm},
		{" recursive-backtracker ", builder.RecursiveBacktrackerAlgorithm},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := builder.ParseAlgorithm(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := builder.ParseAlgorithm("prim")
	assert.ErrorIs(t, err, builder.ErrUnknownAlgorithm)

	for _, alg := range builder.Algorithms() {
		back, err := builder.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, back)
	}
	assert.Len(t, builder.Algorithms(), 6)
}

func TestBuildMaze(t *testing.T) {
	_, err := builder.BuildMaze(0, 4, builder.WilsonAlgorithm, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildMaze(4, 4, builder.WilsonAlgorithm)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err := builder.BuildMaze(10, 10, builder.HuntAndKillAlgorithm,
		builder.WithRand(rand.New(rand.NewSource(3))),
		builder.WithMask(splitMask))
	require.NoError(t, err)
	assert.True(t, gridgraph.IsPerfect(g, splitMask))

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithRebuildWalls(-1) })
}

// TestRebuildRandomWalls checks passages are closed and re-routed without
// ever touching masked cells; perfectness is deliberately not asserted.
func TestRebuildRandomWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	g, err := gridgraph.NewSmall(6, 7)
	require.NoError(t, err)
	require.NoError(t, builder.RecursiveBacktracker(g, rng, splitMask))
	before := gridgraph.EdgeList(g)

	require.NoError(t, builder.RebuildRandomWalls(g, rng, splitMask, 5))
	assert.NotEqual(t, before, gridgraph.EdgeList(g))
	for a, b := range g.Edges() {
		assert.False(t, splitMask.IsMasked(a))
		assert.False(t, splitMask.IsMasked(b))
		assert.Contains(t, g.Neighbours(a), b)
	}

	assert.ErrorIs(t, builder.RebuildRandomWalls(g, rng, nil, -1), builder.ErrBadSize)
	assert.ErrorIs(t, builder.RebuildRandomWalls(g, nil, nil, 1), builder.ErrNeedRandSource)
	assert.ErrorIs(t, builder.RebuildRandomWalls(nil, rng, nil, 1), builder.ErrGraphNil)

	// n beyond the passage count is clamped
	empty, err := gridgraph.NewSmall(2, 2)
	require.NoError(t, err)
	require.NoError(t, builder.RebuildRandomWalls(empty, rng, nil, 10))
	assert.Zero(t, empty.LinkCount())
}

// TestStress500 carves a 500×500 maze with every generator.
func TestStress500(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 500×500 stress run in short mode")
	}
	for _, alg := range builder.Algorithms() {
		t.Run(alg.String(), func(t *testing.T) {
			g, err := builder.BuildMaze(500, 500, alg, builder.WithSeed(42))
			require.NoError(t, err)
			assert.Equal(t, 500*500-1, g.LinkCount())
			assert.Equal(t, 1, gridgraph.ComponentCount(g, nil))
		})
	}
}
