// Package gridgraph defines the index constraint, the Graph contract and the
// generic Grid storage.
package gridgraph

import (
	"iter"
	"math/rand"
)

// Index is the node index width of a Grid. Narrower types halve memory per
// step at the cost of addressable cells (255, 65535, 4294967295).
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// Graph is the index-agnostic view of a maze grid. Generators mutate it;
// the distance engine, displays and renderers only read it.
//
// A Graph is not safe for concurrent mutation. Once generation is done it
// may be read by many goroutines as long as nobody links or unlinks.
type Graph interface {
	// Dimensions returns the fixed grid size.
	Dimensions() Dimensions
	// Size returns Rows×Columns.
	Size() int
	// LinkCount returns the number of passages.
	LinkCount() int

	// IsValid reports whether c lies inside the grid.
	IsValid(c Coordinate) bool
	// Index maps c to its row-major node index.
	Index(c Coordinate) (int, bool)
	// Coordinate maps a row-major node index back to a Coordinate.
	Coordinate(index int) (Coordinate, bool)

	// Link opens a passage between a and b. Linking twice is a no-op.
	Link(a, b Coordinate) error
	// Unlink closes the passage between a and b, reporting whether one existed.
	Unlink(a, b Coordinate) bool
	// IsLinked reports whether a passage joins a and b.
	IsLinked(a, b Coordinate) bool
	// Links returns the cells joined to c by a passage; false if c is invalid.
	Links(c Coordinate) ([]Coordinate, bool)
	// AppendLinks is the allocation-free form of Links.
	AppendLinks(dst []Coordinate, c Coordinate) ([]Coordinate, bool)

	// Neighbours returns the in-bounds grid-adjacent cells of c in N, S, E, W order.
	Neighbours(c Coordinate) []Coordinate
	// AppendNeighbours is the allocation-free form of Neighbours.
	AppendNeighbours(dst []Coordinate, c Coordinate) []Coordinate
	// NeighbourAt returns the in-bounds neighbour of c in direction d.
	NeighbourAt(c Coordinate, d Direction) (Coordinate, bool)
	// IsNeighbourLinked reports whether c has a passage towards d.
	IsNeighbourLinked(c Coordinate, d Direction) bool

	// Cells yields every coordinate in row-major order.
	Cells() iter.Seq[Coordinate]
	// Rows yields one left-to-right batch per row, top to bottom.
	Rows() iter.Seq[[]Coordinate]
	// Columns yields one top-to-bottom batch per column, left to right.
	Columns() iter.Seq[[]Coordinate]
	// Edges yields each passage once as (lower index, higher index), ascending.
	Edges() iter.Seq2[Coordinate, Coordinate]

	// RandomCell returns a uniformly chosen cell.
	RandomCell(rng *rand.Rand) Coordinate
	// Clear removes every passage.
	Clear()
}

// inlineLinks is the number of passages a node stores without allocating;
// a rectangular cell has at most four grid neighbours.
const inlineLinks = 4

// node holds the passages of a single cell.
type node[T Index] struct {
	links [inlineLinks]T
	n     uint8
}

// Grid is the Graph implementation parameterised over its index width.
// Use New, NewSmall, NewMedium, NewLarge or NewFitted to build one.
type Grid[T Index] struct {
	dims  Dimensions
	nodes []node[T]
	// overflow holds passages beyond the inline four; only callers linking
	// non-adjacent cells ever populate it.
	overflow map[T][]T
	links    int
	edgeHint int
}

var (
	_ Graph = (*Grid[uint8])(nil)
	_ Graph = (*Grid[uint16])(nil)
	_ Graph = (*Grid[uint32])(nil)
)
