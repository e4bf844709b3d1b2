// Package bfs is the distance engine of the maze module: a breadth-first
// flood fill over a gridgraph.Graph returning hop distances from one start
// cell, plus the shortest and longest paths derived from them.
//
// What
//
//   - Compute floods the grid level by level through open passages and
//     returns a Distances snapshot:
//   - DistanceTo: hops from the start, or false if unreached
//   - Max: the largest hop count
//   - FurthestPoints: every cell at Max, in row-major order
//   - ShortestPath walks back from an end cell along strictly decreasing
//     distances and returns the path start to end.
//   - LongestPath runs the double flood fill (fill, take the furthest cell,
//     fill again) which yields the diameter of a tree.
//
// Why
//
//   - Maze edges are unweighted, so the first time a cell is reached is its
//     shortest distance; a plain frontier replaces Dijkstra's heap.
//   - Distances copy what they need from the graph and hold no reference back
//     to it. They are safe to share between goroutines.
//
// Determinism
//
//	Passages are expanded in the order Links reports them, and FurthestPoints
//	scans in row-major order, so repeated runs on an unchanged graph agree.
//
// Complexity (N = cells, E = passages)
//
//   - Compute: O(N + E) time, O(N) memory
//   - ShortestPath: O(path length)
//   - LongestPath: two Compute calls plus one ShortestPath
//
// Options
//
//   - WithMask(m):         never enter cells excluded by m.
//   - WithOnVisit(fn):     hook per reached cell; returning error aborts.
//   - WithMaxDistance(d):  stop expanding after distance d (>0).
//
// Errors
//
//   - ErrGraphNil           if the graph is nil.
//   - ErrInvalidStart       if the start lies outside the grid or is masked.
//   - ErrOptionViolation    if an Option is invalid (e.g. negative MaxDistance).
//   - ErrUnreachable        if a path end was never reached.
//   - ErrBrokenPath         if the graph changed after the fill.
//   - ErrDimensionMismatch  if Distances come from another grid.
//   - ErrNoUnmaskedCell     if the mask excludes every cell.
package bfs
