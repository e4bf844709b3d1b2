package gridgraph

import (
	"bufio"
	"fmt"
	"io"
)

// Edge is a passage between two row-major node indices, From < To.
type Edge struct {
	From, To int
}

// EdgeList collects the passages of g in Edges order.
func EdgeList(g Graph) []Edge {
	out := make([]Edge, 0, g.LinkCount())
	for a, b := range g.Edges() {
		ia, _ := g.Index(a)
		ib, _ := g.Index(b)
		out = append(out, Edge{From: ia, To: ib})
	}

	return out
}

// WriteEdgeList writes g as a plain edge list: a "<vertices> <edges>" header
// line followed by one "<src> <dst>" line per passage, using 1-based
// row-major indices.
func WriteEdgeList(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Size(), g.LinkCount()); err != nil {
		return err
	}
	for a, b := range g.Edges() {
		ia, _ := g.Index(a)
		ib, _ := g.Index(b)
		if _, err := fmt.Fprintf(bw, "%d %d\n", ia+1, ib+1); err != nil {
			return err
		}
	}

	return bw.Flush()
}
