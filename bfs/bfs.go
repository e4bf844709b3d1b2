// Package bfs computes unweighted hop distances over a maze grid by
// level-order flood fill and derives shortest and longest paths from them.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazes/gridgraph"
)

// walker encapsulates mutable flood-fill state.
type walker struct {
	graph    gridgraph.Graph
	opts     Options
	frontier []gridgraph.Coordinate
	next     []gridgraph.Coordinate
	links    []gridgraph.Coordinate
	res      *Distances
}

// Compute floods g from start through open passages.
// Every graph edge weighs 1, so first arrival is the shortest hop count and
// no priority queue is needed.
// Returns ErrGraphNil, ErrInvalidStart (outside g or masked),
// ErrOptionViolation, or any error returned by OnVisit.
// Complexity: O(W·H + E) time, O(W·H) memory.
func Compute(g gridgraph.Graph, start gridgraph.Coordinate, opts ...Option) (*Distances, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsValid(start) {
		return nil, fmt.Errorf("%w: %v outside grid", ErrInvalidStart, start)
	}
	if gridgraph.IsMasked(o.Mask, start) {
		return nil, fmt.Errorf("%w: %v is masked", ErrInvalidStart, start)
	}

	dist := make([]uint32, g.Size())
	for i := range dist {
		dist[i] = unreached
	}
	w := &walker{
		graph: g,
		opts:  o,
		links: make([]gridgraph.Coordinate, 0, 4),
		res: &Distances{
			dims:  g.Dimensions(),
			start: start,
			dist:  dist,
		},
	}
	w.mark(start, 0)
	w.frontier = append(w.frontier, start)

	return w.res, w.loop()
}

// mark records distance d for c.
func (w *walker) mark(c gridgraph.Coordinate, d uint32) {
	i, _ := w.graph.Index(c)
	w.res.dist[i] = d
	w.res.reached++
	if d > w.res.max {
		w.res.max = d
	}
}

// loop expands one frontier per level until no new cell is reached.
func (w *walker) loop() error {
	for level := uint32(0); len(w.frontier) > 0; level++ {
		for _, c := range w.frontier {
			if err := w.opts.OnVisit(c, level); err != nil {
				return err
			}
		}
		if w.opts.MaxDistance > 0 && int(level) >= w.opts.MaxDistance {
			return nil
		}
		w.next = w.next[:0]
		for _, c := range w.frontier {
			w.expand(c, level+1)
		}
		w.frontier, w.next = w.next, w.frontier
	}

	return nil
}

// expand assigns d to every unreached, unmasked cell linked to c.
func (w *walker) expand(c gridgraph.Coordinate, d uint32) {
	links, ok := w.graph.AppendLinks(w.links[:0], c)
	if !ok {
		panic(fmt.Sprintf("bfs: frontier cell %v not in graph", c))
	}
	for _, n := range links {
		if gridgraph.IsMasked(w.opts.Mask, n) {
			continue
		}
		i, ok := w.graph.Index(n)
		if !ok {
			panic(fmt.Sprintf("bfs: linked cell %v not in graph", n))
		}
		if w.res.dist[i] != unreached {
			continue
		}
		w.mark(n, d)
		w.next = append(w.next, n)
	}
	w.links = links
}
