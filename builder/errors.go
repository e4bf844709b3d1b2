// SPDX-License-Identifier: MIT
// Package: mazes/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach the generator name with wrapf (%w preserved).
//   • Generators never panic on caller input; a panic means the grid broke
//     its own contract (e.g. a valid neighbour refused a link).

package builder

import (
	"errors"
	"fmt"
)

// ErrGraphNil indicates a nil gridgraph.Graph was passed to a generator.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrNeedRandSource indicates a generator was called without a *rand.Rand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNotEmpty indicates the grid already has passages. Generators carve a
// spanning tree from a wall-only grid; call Clear first to regenerate.
var ErrNotEmpty = errors.New("builder: grid already has passages")

// ErrUnknownAlgorithm indicates a name ParseAlgorithm does not recognise,
// or an Algorithm value outside the enum.
var ErrUnknownAlgorithm = errors.New("builder: unknown algorithm")

// ErrBadSize indicates a negative wall count or a zero grid dimension.
var ErrBadSize = errors.New("builder: invalid size")

// wrapf prefixes err with the generator name, keeping the sentinel for errors.Is.
// Example: wrapf(methodWilson, ErrNeedRandSource) → "Wilson: builder: rng is required".
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
