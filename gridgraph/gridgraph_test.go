package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazes/gridgraph"
)

func pt(x, y uint32) gridgraph.Coordinate { return gridgraph.Coordinate{X: x, Y: y} }

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that factories refuse empty grids and grids whose
// cell count overflows the index width.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		err   error
	}{
		{"EmptyRows", func() error { _, err := gridgraph.NewSmall(0, 3); return err }, gridgraph.ErrEmptyGrid},
		{"EmptyColumns", func() error { _, err := gridgraph.NewLarge(3, 0); return err }, gridgraph.ErrEmptyGrid},
		{"SmallOverflow", func() error { _, err := gridgraph.NewSmall(16, 16); return err }, gridgraph.ErrGridTooLarge},
		{"MediumOverflow", func() error { _, err := gridgraph.NewMedium(256, 256); return err }, gridgraph.ErrGridTooLarge},
		{"FittedEmpty", func() error { _, err := gridgraph.NewFitted(0, 0); return err }, gridgraph.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.build(), tc.err)
		})
	}
}

// TestNew_Limits checks the boundary cell counts are accepted.
func TestNew_Limits(t *testing.T) {
	small, err := gridgraph.NewSmall(15, 17) // 255 cells
	require.NoError(t, err)
	assert.Equal(t, 255, small.Size())

	medium, err := gridgraph.NewMedium(255, 257) // 65535 cells
	require.NoError(t, err)
	assert.Equal(t, 65535, medium.Size())

	g, err := gridgraph.NewSmall(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.LinkCount())
	assert.Equal(t, 0, g.EdgeCapacityHint())
}

// TestNewFitted verifies the narrowest index width is selected.
func TestNewFitted(t *testing.T) {
	g, err := gridgraph.NewFitted(10, 10)
	require.NoError(t, err)
	assert.IsType(t, &gridgraph.Grid[uint8]{}, g)

	g, err = gridgraph.NewFitted(100, 100)
	require.NoError(t, err)
	assert.IsType(t, &gridgraph.Grid[uint16]{}, g)

	g, err = gridgraph.NewFitted(300, 300)
	require.NoError(t, err)
	assert.IsType(t, &gridgraph.Grid[uint32]{}, g)
}

func TestDimensions_EdgeCapacityHint(t *testing.T) {
	assert.Equal(t, 4*20-4*5, gridgraph.Dimensions{Rows: 4, Columns: 5}.EdgeCapacityHint())
	assert.Equal(t, 0, gridgraph.Dimensions{Rows: 1, Columns: 7}.EdgeCapacityHint())
	assert.Equal(t, 20, gridgraph.Dimensions{Rows: 4, Columns: 5}.Size())
}

//----------------------------------------------------------------------------//
// Linking
//----------------------------------------------------------------------------//

// TestLink_SymmetricIdempotent checks a passage is visible from both ends,
// is recorded once however often it is linked, and disappears on Unlink.
func TestLink_SymmetricIdempotent(t *testing.T) {
	g, err := gridgraph.NewSmall(3, 3)
	require.NoError(t, err)
	a, b := pt(1, 1), pt(2, 1)

	require.NoError(t, g.Link(a, b))
	require.NoError(t, g.Link(a, b))
	require.NoError(t, g.Link(b, a))
	assert.True(t, g.IsLinked(a, b))
	assert.True(t, g.IsLinked(b, a))
	assert.Equal(t, 1, g.LinkCount())

	links, ok := g.Links(a)
	require.True(t, ok)
	assert.Equal(t, []gridgraph.Coordinate{b}, links)

	assert.True(t, g.Unlink(b, a))
	assert.False(t, g.IsLinked(a, b))
	assert.False(t, g.Unlink(a, b))
	assert.Equal(t, 0, g.LinkCount())

	links, ok = g.Links(a)
	require.True(t, ok)
	assert.Empty(t, links)
}

// TestLink_SelfLink verifies every cell refuses to link to itself.
func TestLink_SelfLink(t *testing.T) {
	g, err := gridgraph.NewMedium(4, 6)
	require.NoError(t, err)
	for c := range g.Cells() {
		assert.ErrorIs(t, g.Link(c, c), gridgraph.ErrSelfLink, "cell %v", c)
		assert.False(t, g.Unlink(c, c))
	}
	assert.Zero(t, g.LinkCount())
}

// TestLink_InvalidCoordinate checks both endpoints are bounds-checked.
func TestLink_InvalidCoordinate(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Link(pt(3, 0), pt(2, 0)), gridgraph.ErrInvalidCoordinate)
	assert.ErrorIs(t, g.Link(pt(0, 1), pt(0, 2)), gridgraph.ErrInvalidCoordinate)
	assert.False(t, g.Unlink(pt(0, 1), pt(0, 2)))
	assert.Zero(t, g.LinkCount())
}

// TestLink_Overflow links a cell to more than four others, which only
// happens for callers that ignore adjacency, and unwinds it again.
func TestLink_Overflow(t *testing.T) {
	g, err := gridgraph.NewSmall(3, 3)
	require.NoError(t, err)
	centre := pt(1, 1)
	for c := range g.Cells() {
		if c != centre {
			require.NoError(t, g.Link(centre, c))
		}
	}
	assert.Equal(t, 8, g.LinkCount())
	links, ok := g.Links(centre)
	require.True(t, ok)
	assert.Len(t, links, 8)

	assert.True(t, g.Unlink(centre, pt(0, 0)))
	assert.True(t, g.Unlink(centre, pt(2, 2)))
	assert.False(t, g.IsLinked(centre, pt(0, 0)))
	assert.True(t, g.IsLinked(centre, pt(1, 2)))
	links, _ = g.Links(centre)
	assert.Len(t, links, 6)
	assert.Equal(t, 6, g.LinkCount())

	g.Clear()
	assert.Zero(t, g.LinkCount())
	assert.False(t, g.IsLinked(centre, pt(1, 2)))
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestQueries_OutOfBounds verifies queries on invalid coordinates return the
// absent result instead of panicking.
func TestQueries_OutOfBounds(t *testing.T) {
	g, err := gridgraph.NewSmall(3, 4)
	require.NoError(t, err)
	require.NoError(t, g.Link(pt(0, 0), pt(1, 0)))

	for _, c := range []gridgraph.Coordinate{pt(4, 0), pt(0, 3), pt(4, 3), pt(1<<31, 1<<31)} {
		assert.False(t, g.IsValid(c))
		_, ok := g.Links(c)
		assert.False(t, ok)
		assert.Empty(t, g.Neighbours(c))
		_, ok = g.Index(c)
		assert.False(t, ok)
		assert.False(t, g.IsLinked(c, pt(0, 0)))
		for _, d := range gridgraph.Directions {
			_, ok = g.NeighbourAt(c, d)
			assert.False(t, ok)
			assert.False(t, g.IsNeighbourLinked(c, d))
		}
	}
	_, ok := g.Coordinate(-1)
	assert.False(t, ok)
	_, ok = g.Coordinate(12)
	assert.False(t, ok)
}

// TestIndex_RoundTrip checks Index(Coordinate(i)) == i for every node.
func TestIndex_RoundTrip(t *testing.T) {
	g, err := gridgraph.NewMedium(7, 13)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		c, ok := g.Coordinate(i)
		require.True(t, ok)
		j, ok := g.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, j)
		assert.Equal(t, c, gridgraph.FromRowMajorIndex(i, 13))
	}
	assert.Equal(t, pt(3, 2), gridgraph.FromRowColumnIndices(3, 2))
}

// TestNeighbours covers corners, edges and the interior.
func TestNeighbours(t *testing.T) {
	g, err := gridgraph.NewSmall(3, 3)
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Coordinate{pt(0, 1), pt(1, 0)}, g.Neighbours(pt(0, 0)))
	assert.Equal(t, []gridgraph.Coordinate{pt(2, 1), pt(1, 2)}, g.Neighbours(pt(2, 2)))
	assert.Equal(t, []gridgraph.Coordinate{pt(1, 0), pt(1, 2), pt(2, 1), pt(0, 1)}, g.Neighbours(pt(1, 1)))

	n, ok := g.NeighbourAt(pt(2, 0), gridgraph.East)
	assert.False(t, ok)
	n, ok = g.NeighbourAt(pt(2, 0), gridgraph.South)
	assert.True(t, ok)
	assert.Equal(t, pt(2, 1), n)

	require.NoError(t, g.Link(pt(2, 0), pt(2, 1)))
	assert.True(t, g.IsNeighbourLinked(pt(2, 0), gridgraph.South))
	assert.True(t, g.IsNeighbourLinked(pt(2, 1), gridgraph.North))
	assert.False(t, g.IsNeighbourLinked(pt(2, 0), gridgraph.West))
}

// TestOffset checks the pure arithmetic of Direction offsets.
func TestOffset(t *testing.T) {
	_, ok := gridgraph.Offset(pt(0, 0), gridgraph.North)
	assert.False(t, ok)
	_, ok = gridgraph.Offset(pt(0, 0), gridgraph.West)
	assert.False(t, ok)

	c, ok := gridgraph.Offset(pt(0, 0), gridgraph.South)
	assert.True(t, ok)
	assert.Equal(t, pt(0, 1), c)
	c, ok = gridgraph.Offset(pt(0, 0), gridgraph.East)
	assert.True(t, ok)
	assert.Equal(t, pt(1, 0), c)

	for _, d := range gridgraph.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.NotEqual(t, d, d.Opposite())
	}
	assert.Equal(t, "north", gridgraph.North.String())
	assert.Equal(t, "west", gridgraph.West.String())
}

// TestRandomCell verifies random picks stay in bounds and cover the grid.
func TestRandomCell(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 3)
	require.NoError(t, err)
	rng := newRand()
	seen := map[gridgraph.Coordinate]bool{}
	for i := 0; i < 500; i++ {
		c := g.RandomCell(rng)
		require.True(t, g.IsValid(c))
		seen[c] = true
	}
	assert.Len(t, seen, 6)
}
