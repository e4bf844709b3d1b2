// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildMaze(rows, cols, alg, opts...). Allocates the
//     grid, resolves the config, runs the generator, optionally rebuilds walls.
//   • Generators are declared as plain functions in impl_*.go; Generate
//     dispatches by Algorithm so callers can pick one by name.
//   • Determinism: same dimensions, algorithm, mask and seed ⇒ identical maze.

package builder

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/mazes/gridgraph"
)

// Algorithm selects one of the six perfect-maze generators.
type Algorithm uint8

const (
	BinaryTreeAlgorithm Algorithm = iota
	SidewinderAlgorithm
	AldousBroderAlgorithm
	WilsonAlgorithm
	HuntAndKillAlgorithm
	RecursiveBacktrackerAlgorithm
)

// algorithmNames holds the canonical name of each Algorithm, index-aligned.
var algorithmNames = [...]string{
	BinaryTreeAlgorithm:           "binary-tree",
	SidewinderAlgorithm:           "sidewinder",
	AldousBroderAlgorithm:         "aldous-broder",
	WilsonAlgorithm:               "wilson",
	HuntAndKillAlgorithm:          "hunt-and-kill",
	RecursiveBacktrackerAlgorithm: "recursive-backtracker",
}

// algorithmAliases maps accepted short names to their Algorithm.
var algorithmAliases = map[string]Algorithm{
	"binary":    BinaryTreeAlgorithm,
	"hunt-kill": HuntAndKillAlgorithm,
	"backtrack": RecursiveBacktrackerAlgorithm,
}

// String returns the canonical, dash-separated algorithm name.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return "unknown"
}

// SupportsMask reports whether the algorithm honours a Mask.
func (a Algorithm) SupportsMask() bool {
	return a != BinaryTreeAlgorithm && a != SidewinderAlgorithm
}

// Algorithms lists every generator in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// ParseAlgorithm resolves a case-insensitive canonical name or alias.
// Underscores are accepted in place of dashes.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}

	return 0, wrapf("ParseAlgorithm", ErrUnknownAlgorithm)
}

// Generate runs alg over g. The mask is passed to generators that support
// one and ignored by binary tree and sidewinder.
func Generate(alg Algorithm, g gridgraph.Graph, rng *rand.Rand, m gridgraph.Mask) error {
	switch alg {
	case BinaryTreeAlgorithm:
		return BinaryTree(g, rng)
	case SidewinderAlgorithm:
		return Sidewinder(g, rng)
	case AldousBroderAlgorithm:
		return AldousBroder(g, rng, m)
	case WilsonAlgorithm:
		return Wilson(g, rng, m)
	case HuntAndKillAlgorithm:
		return HuntAndKill(g, rng, m)
	case RecursiveBacktrackerAlgorithm:
		return RecursiveBacktracker(g, rng, m)
	}

	return wrapf("Generate", ErrUnknownAlgorithm)
}

// BuildMaze allocates a rows×columns grid with the narrowest index width
// that fits, carves it with alg and applies WithRebuildWalls if requested.
// Any error is wrapped with the "BuildMaze" context.
//
// Errors:
//   - ErrBadSize if a dimension is zero.
//   - ErrNeedRandSource if neither WithSeed nor WithRand was given.
//   - gridgraph.ErrGridTooLarge if the cell count overflows uint32.
//   - ErrUnknownAlgorithm for an out-of-range alg.
func BuildMaze(rows, columns uint32, alg Algorithm, opts ...BuilderOption) (gridgraph.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if rows == 0 || columns == 0 {
		return nil, wrapf(methodBuildMaze, ErrBadSize)
	}
	if cfg.rng == nil {
		return nil, wrapf(methodBuildMaze, ErrNeedRandSource)
	}
	g, err := gridgraph.NewFitted(rows, columns)
	if err != nil {
		return nil, wrapf(methodBuildMaze, err)
	}
	if err = Generate(alg, g, cfg.rng, cfg.mask); err != nil {
		return nil, wrapf(methodBuildMaze, err)
	}
	if cfg.rebuildWalls > 0 {
		if err = RebuildRandomWalls(g, cfg.rng, cfg.mask, cfg.rebuildWalls); err != nil {
			return nil, wrapf(methodBuildMaze, err)
		}
	}

	return g, nil
}
