// Package display supplies the cell bodies the text renderer draws inside
// each maze cell. Every body is exactly three glyphs wide.
package display

import (
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazes/bfs"
	"github.com/katalvlaran/mazes/gridgraph"
)

// BodyWidth is the glyph width of every cell body.
const BodyWidth = 3

// empty is the body of a cell with nothing to show.
const empty = "   "

// CellDisplay decides what is drawn inside a cell.
type CellDisplay interface {
	RenderCellBody(c gridgraph.Coordinate) string
}

// Blank draws every cell empty.
type Blank struct{}

// RenderCellBody implements CellDisplay.
func (Blank) RenderCellBody(gridgraph.Coordinate) string { return empty }

// Distances shows each cell's distance from the fill's start in lowercase
// hexadecimal, centred. Unreached cells stay empty.
type Distances struct {
	d *bfs.Distances
}

// NewDistances wraps a distance snapshot for display.
func NewDistances(d *bfs.Distances) *Distances { return &Distances{d: d} }

// RenderCellBody implements CellDisplay.
func (v *Distances) RenderCellBody(c gridgraph.Coordinate) string {
	dist, ok := v.d.DistanceTo(c)
	if !ok {
		return empty
	}

	return centre(strconv.FormatUint(uint64(dist), 16))
}

// centre pads s to BodyWidth, putting the odd space on the right.
// Longer strings are returned unchanged.
func centre(s string) string {
	pad := BodyWidth - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Path marks the cells of a path with a dot.
type Path struct {
	cells mapset.Set[gridgraph.Coordinate]
}

// NewPath collects the cells of path.
func NewPath(path []gridgraph.Coordinate) *Path {
	return &Path{cells: setOf(path)}
}

// Len returns the number of distinct cells on the path.
func (p *Path) Len() int { return p.cells.Size() }

// Contains reports whether c lies on the path.
func (p *Path) Contains(c gridgraph.Coordinate) bool { return p.cells.Has(c) }

// RenderCellBody implements CellDisplay.
func (p *Path) RenderCellBody(c gridgraph.Coordinate) string {
	if p.cells.Has(c) {
		return " . "
	}

	return empty
}

// StartEnd labels start cells S and end cells E. A cell in both sets is
// drawn as a start.
type StartEnd struct {
	starts, ends mapset.Set[gridgraph.Coordinate]
}

// NewStartEnd collects the start and end cells.
func NewStartEnd(starts, ends []gridgraph.Coordinate) *StartEnd {
	return &StartEnd{starts: setOf(starts), ends: setOf(ends)}
}

// RenderCellBody implements CellDisplay.
func (s *StartEnd) RenderCellBody(c gridgraph.Coordinate) string {
	switch {
	case s.starts.Has(c):
		return " S "
	case s.ends.Has(c):
		return " E "
	default:
		return empty
	}
}

// Layers stacks displays: each cell shows the first non-empty body, so
// start and end labels can sit on top of a path.
type Layers []CellDisplay

// RenderCellBody implements CellDisplay.
func (l Layers) RenderCellBody(c gridgraph.Coordinate) string {
	for _, d := range l {
		if body := d.RenderCellBody(c); body != empty {
			return body
		}
	}

	return empty
}

func setOf(cells []gridgraph.Coordinate) mapset.Set[gridgraph.Coordinate] {
	s := mapset.New[gridgraph.Coordinate]()
	for _, c := range cells {
		s.Put(c)
	}

	return s
}
