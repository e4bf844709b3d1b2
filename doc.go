// Package mazes generates perfect mazes on rectangular grids and answers
// distance and path questions about them.
//
// 🚀 What is mazes?
//
//	A small, deterministic library plus two binaries that bring together:
//		• Grid graphs: compact per-cell passage storage, generic over the index width
//		• Generators: binary tree, sidewinder, Aldous-Broder, Wilson,
//		  hunt-and-kill, recursive backtracker
//		• Masks: switch cells off from an image, text rows or a coordinate set
//		• Distances: breadth-first flood fill, shortest and longest paths
//		• Output: box-drawing text, PNG images, edge lists, an HTTP API
//
// ✨ Why choose mazes?
//
//   - Reproducible – every generator takes an explicit *rand.Rand
//   - Perfect by construction – one spanning tree per unmasked region
//   - Pure Go generators – generators and graph import only the standard library
//   - Testable contracts – sentinel errors, (value, ok) queries, no hidden state
//
// Packages:
//
//	gridgraph/  Coordinate, Direction, Graph, Grid[T]; masks, regions, edge lists
//	builder/    the six generators, RebuildRandomWalls, BuildMaze
//	bfs/        Distances, Compute, ShortestPath, LongestPath
//	mask/       BinaryMask from images, rows or coordinate sets
//	display/    cell bodies for text output (distances, path, start/end)
//	render/     Text and Image renderers
//	config/     MAZES_* environment settings
//	server/     chi-based HTTP service
//	cmd/mazes   command-line generator
//	cmd/mazed   HTTP daemon
//
// Quick ASCII example (2×2, Wilson, longest path):
//
//	┌───────┐
//	│ .   . │
//	│   ╷   │
//	│ S │ E │
//	└───┴───┘
//
//	go get github.com/katalvlaran/mazes
package mazes
