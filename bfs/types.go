// Package bfs provides tunable options, sentinel errors and the Distances
// snapshot for breadth-first flood fills over a gridgraph.Graph.
package bfs

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazes/gridgraph"
)

// Sentinel errors for distance computation and path derivation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrInvalidStart is returned when the start coordinate lies outside the
	// grid or is excluded by the mask.
	ErrInvalidStart = errors.New("bfs: invalid start coordinate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when a path end was never reached.
	ErrUnreachable = errors.New("bfs: end coordinate not reached")

	// ErrBrokenPath is returned when a reached cell has no strictly closer
	// linked neighbour, meaning the graph changed after the flood fill.
	ErrBrokenPath = errors.New("bfs: no closer linked neighbour")

	// ErrDimensionMismatch is returned when Distances come from a grid of
	// another size.
	ErrDimensionMismatch = errors.New("bfs: distances computed on a different grid")

	// ErrNoUnmaskedCell is returned when the mask excludes every cell.
	ErrNoUnmaskedCell = errors.New("bfs: no unmasked cell")
)

// Option configures a flood fill via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Compute.
type Option func(*Options)

// Options holds parameters and callbacks for Compute.
type Options struct {
	// Mask excludes cells; the fill never enters a masked cell.
	Mask gridgraph.Mask

	// OnVisit is called once per reached cell, in level order. Returning an
	// error aborts the fill and propagates that error.
	OnVisit func(c gridgraph.Coordinate, distance uint32) error

	// MaxDistance, if > 0, stops the fill at that distance (inclusive).
	MaxDistance int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no mask, no distance limit and a
// no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(gridgraph.Coordinate, uint32) error { return nil },
	}
}

// WithMask restricts the fill to cells m leaves open. A nil mask is ignored.
func WithMask(m gridgraph.Mask) Option {
	return func(o *Options) {
		if m != nil {
			o.Mask = m
		}
	}
}

// WithOnVisit registers a callback run for each reached cell.
func WithOnVisit(fn func(c gridgraph.Coordinate, distance uint32) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDistance stops the fill once cells at distance d are reached.
//
//	d > 0: limit to distance d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// unreached marks cells the fill never got to.
const unreached = math.MaxUint32

// Distances is an owned snapshot of hop counts from a single start cell.
// It keeps no reference to the graph it was computed from; after mutating
// that graph, compute a fresh one.
type Distances struct {
	dims    gridgraph.Dimensions
	start   gridgraph.Coordinate
	dist    []uint32
	max     uint32
	reached int
}

// Start returns the source cell.
func (d *Distances) Start() gridgraph.Coordinate { return d.start }

// Max returns the largest distance reached.
func (d *Distances) Max() uint32 { return d.max }

// Reached returns how many cells received a distance, the start included.
func (d *Distances) Reached() int { return d.reached }

// Dimensions returns the size of the grid the snapshot was taken from.
func (d *Distances) Dimensions() gridgraph.Dimensions { return d.dims }

// DistanceTo returns the hop count to c, or false if c is outside the grid
// or was never reached.
func (d *Distances) DistanceTo(c gridgraph.Coordinate) (uint32, bool) {
	if !d.dims.Contains(c) {
		return 0, false
	}
	v := d.dist[c.RowMajorIndex(d.dims.Columns)]
	if v == unreached {
		return 0, false
	}

	return v, true
}

// FurthestPoints returns every cell at distance Max(), in row-major order.
func (d *Distances) FurthestPoints() []gridgraph.Coordinate {
	var out []gridgraph.Coordinate
	for i, v := range d.dist {
		if v == d.max {
			out = append(out, gridgraph.FromRowMajorIndex(i, d.dims.Columns))
		}
	}

	return out
}
