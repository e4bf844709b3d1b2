// Package builder carves perfect mazes into a gridgraph.Graph.
//
// A perfect maze is a spanning tree over the grid: every cell is reachable
// from every other by exactly one simple path. All six generators establish
// that postcondition over the unmasked cells, one tree per region a mask
// leaves connected, so after generation
//
//	g.LinkCount() == gridgraph.UnmaskedCount(g, m) - len(gridgraph.Regions(g, m))
//
// The package offers:
//
//   - Generators (mutate g in place, take an explicit *rand.Rand):
//     – BinaryTree:           O(N), biased towards one corner, no mask.
//     – Sidewinder:           O(N), one open border corridor, no mask.
//     – AldousBroder:         uniform spanning tree via random walk.
//     – Wilson:               uniform spanning tree via loop-erased walks.
//     – HuntAndKill:          long winding corridors, row-major hunts.
//     – RecursiveBacktracker: depth-first with an explicit stack.
//   - Post-processing:
//     – RebuildRandomWalls:   closes and re-routes random passages; the
//     result is no longer guaranteed to be perfect.
//   - Selection and orchestration:
//     – Algorithm, ParseAlgorithm, Algorithms, Generate.
//     – BuildMaze with BuilderOption (WithSeed, WithRand, WithMask,
//     WithRebuildWalls).
//
// Guarantees:
//
//   - Determinism: the same grid size, mask and seed produce the same maze.
//   - Explicit randomness: no generator touches the global math/rand source.
//   - Sentinel errors (ErrGraphNil, ErrNeedRandSource, ErrNotEmpty,
//     ErrUnknownAlgorithm, ErrBadSize) wrapped with the generator name.
//   - Option constructors panic on meaningless input (WithRand(nil),
//     WithRebuildWalls(-1)); generators never panic on caller input.
//
// A grid must not be read or written by other goroutines while a generator
// runs. Once BuildMaze returns, the grid may be read concurrently.
package builder
