package server

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/mazes/bfs"
	"github.com/katalvlaran/mazes/builder"
	"github.com/katalvlaran/mazes/display"
	"github.com/katalvlaran/mazes/gridgraph"
	"github.com/katalvlaran/mazes/render"
)

// Output formats of /api/mazes/{algorithm}.
const (
	formatText  = "text"
	formatPNG   = "png"
	formatEdges = "edges"
	formatJSON  = "json"
)

// errTooLarge marks a request above the configured cell limit.
var errTooLarge = errors.New("maze too large")

// mazeRequest is the parsed query of a maze request.
type mazeRequest struct {
	algorithm     builder.Algorithm
	rows, columns uint32
	seed          int64
	format        string
	longestPath   bool
	distances     bool
}

// mazeResponse is the JSON body of format=json.
type mazeResponse struct {
	Rows        uint32      `json:"rows"`
	Columns     uint32      `json:"columns"`
	Algorithm   string      `json:"algorithm"`
	Seed        int64       `json:"seed"`
	Links       [][2]int    `json:"links"`
	LongestPath [][2]uint32 `json:"longest_path,omitempty"`
}

// listAlgorithms handles GET /api/algorithms.
func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	algs := builder.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.String()
	}
	s.respondJSON(w, http.StatusOK, map[string][]string{"algorithms": names})
}

// getMaze handles GET /api/mazes/{algorithm}.
func (s *Server) getMaze(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseMazeRequest(r)
	if errors.Is(err, errTooLarge) {
		s.respondError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := builder.BuildMaze(req.rows, req.columns, req.algorithm,
		builder.WithRand(rand.New(rand.NewSource(req.seed))))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var path []gridgraph.Coordinate
	if req.longestPath {
		if path, err = bfs.LongestPath(g, nil); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	switch req.format {
	case formatJSON:
		s.respondJSON(w, http.StatusOK, newMazeResponse(req, g, path))
	case formatEdges:
		var buf bytes.Buffer
		if err := gridgraph.WriteEdgeList(&buf, g); err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.write(w, "text/plain; charset=utf-8", buf.Bytes())
	case formatPNG:
		s.writePNG(w, req, g, path)
	default:
		s.write(w, "text/plain; charset=utf-8", []byte(render.Text(g, s.textDisplay(req, g, path))))
	}
}

// textDisplay picks the cell bodies for text output.
func (s *Server) textDisplay(req mazeRequest, g gridgraph.Graph, path []gridgraph.Coordinate) display.CellDisplay {
	var layers display.Layers
	if len(path) > 0 {
		layers = append(layers,
			display.NewStartEnd(path[:1], path[len(path)-1:]),
			display.NewPath(path))
	}
	if req.distances {
		if d, err := bfs.Compute(g, gridgraph.Coordinate{}); err == nil {
			layers = append(layers, display.NewDistances(d))
		}
	}

	return layers
}

func (s *Server) writePNG(w http.ResponseWriter, req mazeRequest, g gridgraph.Graph, path []gridgraph.Coordinate) {
	opts := []render.ImageOption{render.WithCellPixels(s.cfg.CellPixels)}
	if len(path) > 0 {
		opts = append(opts, render.WithPath(path), render.WithStartEnd(path[0], path[len(path)-1]))
	}
	if req.distances {
		start := gridgraph.Coordinate{}
		if len(path) > 0 {
			start = path[0]
		}
		d, err := bfs.Compute(g, start)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		opts = append(opts, render.WithDistances(d))
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, g, opts...); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.write(w, "image/png", buf.Bytes())
}

func (s *Server) write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Printf("[APP] [ERROR] writing response: %v", err)
	}
}

// parseMazeRequest validates the path parameter and query string.
func (s *Server) parseMazeRequest(r *http.Request) (mazeRequest, error) {
	q := r.URL.Query()
	req := mazeRequest{
		format:      q.Get("format"),
		longestPath: q.Get("path") == "longest",
	}

	alg, err := builder.ParseAlgorithm(chi.URLParam(r, "algorithm"))
	if err != nil {
		return req, err
	}
	req.algorithm = alg

	size := uint32(s.cfg.DefaultSize)
	if req.rows, err = uintParam(q.Get("rows"), size); err != nil {
		return req, fmt.Errorf("rows: %w", err)
	}
	if req.columns, err = uintParam(q.Get("columns"), size); err != nil {
		return req, fmt.Errorf("columns: %w", err)
	}
	if cells := int64(req.rows) * int64(req.columns); cells > int64(s.cfg.MaxCells) {
		return req, fmt.Errorf("%w: %d cells, limit %d", errTooLarge, cells, s.cfg.MaxCells)
	}

	req.seed = time.Now().UnixNano()
	if v := q.Get("seed"); v != "" {
		if req.seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, fmt.Errorf("seed: %w", err)
		}
	}

	switch req.format {
	case "":
		req.format = formatText
	case formatText, formatPNG, formatEdges, formatJSON:
	default:
		return req, fmt.Errorf("unknown format %q", req.format)
	}
	switch p := q.Get("path"); p {
	case "", "none", "longest":
	default:
		return req, fmt.Errorf("unknown path %q", p)
	}
	if v := q.Get("distances"); v != "" {
		if req.distances, err = strconv.ParseBool(v); err != nil {
			return req, fmt.Errorf("distances: %w", err)
		}
	}

	return req, nil
}

// uintParam parses a positive grid side, returning def for an empty value.
func uintParam(v string, def uint32) (uint32, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("must be positive")
	}

	return uint32(n), nil
}

func newMazeResponse(req mazeRequest, g gridgraph.Graph, path []gridgraph.Coordinate) mazeResponse {
	edges := gridgraph.EdgeList(g)
	resp := mazeResponse{
		Rows:      req.rows,
		Columns:   req.columns,
		Algorithm: req.algorithm.String(),
		Seed:      req.seed,
		Links:     make([][2]int, len(edges)),
	}
	for i, e := range edges {
		resp.Links[i] = [2]int{e.From, e.To}
	}
	for _, c := range path {
		resp.LongestPath = append(resp.LongestPath, [2]uint32{c.X, c.Y})
	}

	return resp
}
