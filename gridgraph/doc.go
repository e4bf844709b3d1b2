// Package gridgraph models a rectangular maze as an undirected, unweighted
// graph whose nodes are the grid cells and whose edges are open passages.
//
// What:
//
//   - Coordinate and Direction give boundary-aware addressing of cells.
//   - Grid[T] stores passages with a fixed 4-slot inline neighbour list per
//     cell, addressed by an 8, 16 or 32-bit index type T.
//   - Graph is the index-agnostic view every other package consumes.
//   - Cells, Rows, Columns and Edges are restartable iter.Seq sequences.
//   - Mask lets callers exclude cells from generation and traversal.
//   - Regions and ComponentCount analyse the grid and its passages.
//   - WriteEdgeList dumps the passages as a 1-based edge list.
//
// Node identity is the row-major index: index = y*Columns + x.
//
// Complexity:
//
//   - Link, Unlink, IsLinked: O(1) for the usual degree ≤ 4.
//   - Regions, ComponentCount: O(W×H).
//   - Edges, WriteEdgeList: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is zero.
//   - ErrGridTooLarge: the cell count overflows the chosen index width.
//   - ErrSelfLink: Link(a, a).
//   - ErrInvalidCoordinate: Link with an out-of-bounds endpoint.
//
// Query operations never fail: an out-of-bounds coordinate yields false,
// an empty slice or a (zero, false) pair.
package gridgraph
