// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// options.go: functional options for BuildMaze.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic on caller input.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand" // RNG source for stochastic generators

	"github.com/katalvlaran/mazes/gridgraph"
)

// BuilderOption customizes BuildMaze by mutating a builderConfig instance
// before the grid is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMask excludes the cells m reports as masked. Binary tree and
// sidewinder do not support masks and ignore it.
func WithMask(m gridgraph.Mask) BuilderOption {
	return func(c *builderConfig) {
		c.mask = m
	}
}

// WithRebuildWalls knocks down n random passages after generation and
// re-routes the cells they joined (see RebuildRandomWalls). Panics on n < 0.
func WithRebuildWalls(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithRebuildWalls(n < 0)")
	}
	return func(c *builderConfig) {
		c.rebuildWalls = n
	}
}
