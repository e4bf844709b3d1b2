package gridgraph

import "math"

// Direction is one of the four compass directions of a rectangular grid.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the canonical N, S, E, W order.
var Directions = [4]Direction{North, South, East, West}

var directionNames = [4]string{"north", "south", "east", "west"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}

	return "unknown"
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Offset moves c one step in direction d. It reports false only when the
// step would leave the uint32 range (North of row 0, West of column 0);
// whether the result lies inside a particular grid is the grid's concern.
func Offset(c Coordinate, d Direction) (Coordinate, bool) {
	switch d {
	case North:
		if c.Y == 0 {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X, Y: c.Y - 1}, true
	case South:
		if c.Y == math.MaxUint32 {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X, Y: c.Y + 1}, true
	case East:
		if c.X == math.MaxUint32 {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X + 1, Y: c.Y}, true
	case West:
		if c.X == 0 {
			return Coordinate{}, false
		}
		return Coordinate{X: c.X - 1, Y: c.Y}, true
	}

	return Coordinate{}, false
}
