package render

import (
	"strings"

	"github.com/katalvlaran/mazes/display"
	"github.com/katalvlaran/mazes/gridgraph"
)

// Wall arms a corner glyph may have.
const (
	armLeft = 1 << iota
	armRight
	armUp
	armDown
)

// corners maps a set of arms to its light box-drawing glyph.
var corners = [16]string{
	0:                                    " ",
	armLeft:                              "╴",
	armRight:                             "╶",
	armUp:                                "╵",
	armDown:                              "╷",
	armLeft | armRight:                   "─",
	armUp | armDown:                      "│",
	armLeft | armDown:                    "┐",
	armRight | armUp:                     "└",
	armLeft | armUp:                      "┘",
	armRight | armDown:                   "┌",
	armLeft | armRight | armUp:           "┴",
	armLeft | armRight | armDown:         "┬",
	armRight | armUp | armDown:           "├",
	armLeft | armUp | armDown:            "┤",
	armLeft | armRight | armUp | armDown: "┼",
}

const (
	wallHorizontal = "───"
	passageBody    = "   "
)

// Text draws g with box-drawing walls, filling each cell body from d.
// A nil d draws blank cells. A nil g draws nothing.
//
// Each grid row becomes two text lines: the cell bodies with their east
// walls, then the south walls with the corners below-right of each cell.
// The line above the first row is the north border.
func Text(g gridgraph.Graph, d display.CellDisplay) string {
	if g == nil {
		return ""
	}
	if d == nil {
		d = display.Blank{}
	}
	dims := g.Dimensions()
	lastColumn, lastRow := dims.Columns-1, dims.Rows-1

	var sb strings.Builder
	// each cell is 4 glyphs wide, box glyphs are 3 bytes
	sb.Grow(int(dims.Rows*2+1) * (int(dims.Columns)*4 + 2) * 3)

	sb.WriteString(corners[armRight|armDown])
	for x := uint32(0); x <= lastColumn; x++ {
		c := gridgraph.Coordinate{X: x}
		sb.WriteString(wallHorizontal)
		switch {
		case g.IsNeighbourLinked(c, gridgraph.East):
			sb.WriteString(corners[armLeft|armRight])
		case x == lastColumn:
			sb.WriteString(corners[armLeft|armDown])
		default:
			sb.WriteString(corners[armLeft|armRight|armDown])
		}
	}
	sb.WriteByte('\n')

	var bottom strings.Builder
	for row := range g.Rows() {
		bottom.Reset()
		sb.WriteString(corners[armUp|armDown])
		for _, c := range row {
			eastOpen := g.IsNeighbourLinked(c, gridgraph.East)
			southOpen := g.IsNeighbourLinked(c, gridgraph.South)
			isLastRow := c.Y == lastRow

			sb.WriteString(d.RenderCellBody(c))
			if eastOpen {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(corners[armUp|armDown])
			}

			if c.X == 0 {
				switch {
				case isLastRow:
					bottom.WriteString(corners[armRight|armUp])
				case southOpen:
					bottom.WriteString(corners[armUp|armDown])
				default:
					bottom.WriteString(corners[armRight|armUp|armDown])
				}
			}
			if southOpen {
				bottom.WriteString(passageBody)
			} else {
				bottom.WriteString(wallHorizontal)
			}
			bottom.WriteString(corner(g, c, eastOpen, southOpen, c.X == lastColumn, isLastRow))
		}
		sb.WriteByte('\n')
		sb.WriteString(bottom.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// corner picks the glyph at the south-east corner of c.
func corner(g gridgraph.Graph, c gridgraph.Coordinate, eastOpen, southOpen, isLastColumn, isLastRow bool) string {
	switch {
	case isLastRow && isLastColumn:
		return corners[armLeft|armUp]
	case isLastRow:
		if eastOpen {
			return corners[armLeft|armRight]
		}
		return corners[armLeft|armRight|armUp]
	case isLastColumn:
		if southOpen {
			return corners[armUp|armDown]
		}
		return corners[armLeft|armUp|armDown]
	}

	arms := 0
	if !southOpen {
		arms |= armLeft
	}
	if !eastOpen {
		arms |= armUp
	}
	if east, ok := g.NeighbourAt(c, gridgraph.East); !ok || !g.IsNeighbourLinked(east, gridgraph.South) {
		arms |= armRight
	}
	if south, ok := g.NeighbourAt(c, gridgraph.South); !ok || !g.IsNeighbourLinked(south, gridgraph.East) {
		arms |= armDown
	}

	return corners[arms]
}
