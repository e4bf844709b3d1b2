// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// config.go: internal configuration and deterministic defaults for BuildMaze.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng          = nil   (BuildMaze fails with ErrNeedRandSource unless set)
//   • mask         = nil   (every cell takes part)
//   • rebuildWalls = 0     (the result is a perfect maze)

package builder

import (
	"math/rand" // RNG for stochastic generators

	"github.com/katalvlaran/mazes/gridgraph"
)

// builderConfig aggregates all knobs used by BuildMaze.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for every random choice; nil means "not configured".
	rng *rand.Rand
	// Cells excluded from the maze; nil masks nothing.
	mask gridgraph.Mask
	// Passages to knock down and re-route after generation.
	rebuildWalls int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
