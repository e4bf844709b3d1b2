package gridgraph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazes/gridgraph"
)

// TestCells_RowMajorRestartable checks order, size and that the sequence
// can be ranged over more than once.
func TestCells_RowMajorRestartable(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 3)
	require.NoError(t, err)

	want := []gridgraph.Coordinate{pt(0, 0), pt(1, 0), pt(2, 0), pt(0, 1), pt(1, 1), pt(2, 1)}
	for pass := 0; pass < 2; pass++ {
		var got []gridgraph.Coordinate
		for c := range g.Cells() {
			got = append(got, c)
		}
		assert.Equal(t, want, got, "pass %d", pass)
	}

	// early break must be honoured
	n := 0
	for range g.Cells() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestRowsColumns(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 3)
	require.NoError(t, err)

	var rows [][]gridgraph.Coordinate
	for r := range g.Rows() {
		rows = append(rows, r)
	}
	assert.Equal(t, [][]gridgraph.Coordinate{
		{pt(0, 0), pt(1, 0), pt(2, 0)},
		{pt(0, 1), pt(1, 1), pt(2, 1)},
	}, rows)

	var cols [][]gridgraph.Coordinate
	for c := range g.Columns() {
		cols = append(cols, c)
	}
	assert.Equal(t, [][]gridgraph.Coordinate{
		{pt(0, 0), pt(0, 1)},
		{pt(1, 0), pt(1, 1)},
		{pt(2, 0), pt(2, 1)},
	}, cols)
}

// TestEdges_Ordered verifies each passage appears once, lower index first,
// in ascending order regardless of link order.
func TestEdges_Ordered(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Link(pt(1, 1), pt(1, 0)))
	require.NoError(t, g.Link(pt(0, 1), pt(0, 0)))
	require.NoError(t, g.Link(pt(0, 0), pt(1, 0)))

	type pair struct{ a, b gridgraph.Coordinate }
	var got []pair
	for a, b := range g.Edges() {
		got = append(got, pair{a, b})
	}
	assert.Equal(t, []pair{
		{pt(0, 0), pt(1, 0)},
		{pt(0, 0), pt(0, 1)},
		{pt(1, 0), pt(1, 1)},
	}, got)

	assert.Equal(t, []gridgraph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}}, gridgraph.EdgeList(g))
}

// TestWriteEdgeList checks the header line and 1-based pairs.
func TestWriteEdgeList(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 2)
	require.NoError(t, err)
	for _, e := range [][2]gridgraph.Coordinate{
		{pt(0, 0), pt(1, 0)},
		{pt(0, 0), pt(0, 1)},
		{pt(1, 0), pt(1, 1)},
	} {
		require.NoError(t, g.Link(e[0], e[1]))
	}

	var buf bytes.Buffer
	require.NoError(t, gridgraph.WriteEdgeList(&buf, g))
	assert.Equal(t, "4 3\n1 2\n1 3\n2 4\n", buf.String())
}

//----------------------------------------------------------------------------//
// Regions, components and masks
//----------------------------------------------------------------------------//

// TestRegions_Masked splits a 3×4 grid into two regions with a masked column.
//
//	. X . .
//	. X . .
//	. X X .
func TestRegions_Masked(t *testing.T) {
	m := rowsMask{".X..", ".X..", ".XX."}
	g, err := gridgraph.NewSmall(3, 4)
	require.NoError(t, err)

	regions := gridgraph.Regions(g, m)
	require.Len(t, regions, 2)
	assert.Len(t, regions[0], 3)
	assert.Len(t, regions[1], 5)
	assert.Equal(t, pt(0, 0), regions[0][0])
	assert.Equal(t, pt(2, 0), regions[1][0])
	for _, r := range regions {
		for _, c := range r {
			assert.False(t, m.IsMasked(c))
		}
	}
	assert.Equal(t, 8, gridgraph.UnmaskedCount(g, m))
	assert.Len(t, gridgraph.Unmasked(g, m), 8)

	// no mask: one region covering everything
	all := gridgraph.Regions(g, nil)
	require.Len(t, all, 1)
	assert.Len(t, all[0], 12)
}

// TestComponentCount covers isolated cells, masked cells and a linked chain.
func TestComponentCount(t *testing.T) {
	g, err := gridgraph.NewSmall(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, gridgraph.ComponentCount(g, nil))

	require.NoError(t, g.Link(pt(0, 0), pt(1, 0)))
	require.NoError(t, g.Link(pt(1, 0), pt(2, 0)))
	assert.Equal(t, 2, gridgraph.ComponentCount(g, nil))
	assert.False(t, gridgraph.IsPerfect(g, nil))

	require.NoError(t, g.Link(pt(2, 0), pt(3, 0)))
	assert.Equal(t, 1, gridgraph.ComponentCount(g, nil))
	assert.True(t, gridgraph.IsPerfect(g, nil))

	m := rowsMask{"...X"}
	g.Unlink(pt(2, 0), pt(3, 0))
	assert.Equal(t, 1, gridgraph.ComponentCount(g, m))
	assert.True(t, gridgraph.IsPerfect(g, m))
}

func TestAppendUnmaskedNeighbours(t *testing.T) {
	m := rowsMask{".X.", "...", ".X."}
	g, err := gridgraph.NewSmall(3, 3)
	require.NoError(t, err)
	got := gridgraph.AppendUnmaskedNeighbours(nil, g, m, pt(1, 1))
	assert.Equal(t, []gridgraph.Coordinate{pt(2, 1), pt(0, 1)}, got)
	assert.False(t, gridgraph.IsMasked(nil, pt(1, 0)))
	assert.True(t, gridgraph.IsMasked(m, pt(1, 0)))
}

func TestFirstUnmasked(t *testing.T) {
	g, err := gridgraph.NewSmall(2, 3)
	require.NoError(t, err)

	c, ok := gridgraph.FirstUnmasked(g, nil)
	assert.True(t, ok)
	assert.Equal(t, pt(0, 0), c)

	c, ok = gridgraph.FirstUnmasked(g, rowsMask{"XXX", "XX."})
	assert.True(t, ok)
	assert.Equal(t, pt(2, 1), c)

	_, ok = gridgraph.FirstUnmasked(g, rowsMask{"XXX", "XXX"})
	assert.False(t, ok)

	// the mask's first open cell lies outside this grid
	c, ok = gridgraph.FirstUnmasked(g, rowsMask{"XXXX.", "X.XXX"})
	assert.True(t, ok)
	assert.Equal(t, pt(1, 1), c)
}
