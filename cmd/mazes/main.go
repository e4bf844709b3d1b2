// Command mazes generates a maze and prints it as text, writes it as a PNG
// image, or dumps its passages as an edge list.
//
//	mazes -algorithm wilson -size 15 -path
//	mazes -algorithm hunt-and-kill -size 60 -image maze.png -colour-distances -mark-start-end
//	mazes -mask heart.png -size 40 -image heart.png -path
//
// Defaults come from the MAZES_* environment (see package config); flags
// override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/katalvlaran/mazes/bfs"
	"github.com/katalvlaran/mazes/builder"
	"github.com/katalvlaran/mazes/config"
	"github.com/katalvlaran/mazes/display"
	"github.com/katalvlaran/mazes/gridgraph"
	"github.com/katalvlaran/mazes/mask"
	"github.com/katalvlaran/mazes/render"
)

// unset marks an absent coordinate flag.
const unset = -1

type options struct {
	algorithm       builder.Algorithm
	size            int
	seed            int64
	text            bool
	distances       bool
	path            bool
	furthest        bool
	startX, startY  int
	endX, endY      int
	imageOut        string
	cellPixels      int
	colourDistances bool
	markStartEnd    bool
	maskFile        string
	edgesOut        string
	rebuildWalls    int
	textLimit       int
}

// parseArgs reads the command line over cfg's defaults.
func parseArgs(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	o := options{textLimit: cfg.TextLimit}
	var algorithm string

	fs := flag.NewFlagSet("mazes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&algorithm, "algorithm", cfg.Algorithm.String(),
		"Maze generator: binary-tree, sidewinder, aldous-broder, wilson, hunt-and-kill or recursive-backtracker.")
	fs.IntVar(&o.size, "size", 0,
		"The grid is size × size cells. 0 uses MAZES_DEFAULT_SIZE, shrunk to fit the terminal for text output.")
	fs.Int64Var(&o.seed, "seed", unset,
		"If not negative, the random seed to use.")
	fs.BoolVar(&o.text, "text", false,
		"Print the maze as text even when it is large or an image is written.")
	fs.BoolVar(&o.distances, "distances", false,
		"Show the distance from the start point to every cell.")
	fs.BoolVar(&o.path, "path", false,
		"Show the path from the start to the end point, the longest path unless points are given.")
	fs.BoolVar(&o.furthest, "furthest", false,
		"End at the cell furthest from the start point.")
	fs.IntVar(&o.startX, "start-x", unset, "x coordinate of the path start.")
	fs.IntVar(&o.startY, "start-y", unset, "y coordinate of the path start.")
	fs.IntVar(&o.endX, "end-x", unset, "x coordinate of the path end.")
	fs.IntVar(&o.endY, "end-y", unset, "y coordinate of the path end.")
	fs.StringVar(&o.imageOut, "image", "",
		"Write a PNG rendering of the maze to this file.")
	fs.IntVar(&o.cellPixels, "cell-pixels", cfg.CellPixels,
		"Side of one cell in the image, in pixels.")
	fs.BoolVar(&o.colourDistances, "colour-distances", false,
		"Shade image cells by their distance from the start point.")
	fs.BoolVar(&o.markStartEnd, "mark-start-end", false,
		"Mark the start and end points in the image.")
	fs.StringVar(&o.maskFile, "mask", "",
		"Image whose dark pixels switch grid cells off; scaled to the grid.")
	fs.StringVar(&o.edgesOut, "edges", "",
		"Write the passages as an edge list to this file.")
	fs.IntVar(&o.rebuildWalls, "rebuild-walls", 0,
		"Close and re-route this many random passages after generation. The maze stops being perfect.")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	alg, err := builder.ParseAlgorithm(algorithm)
	if err != nil {
		return o, err
	}
	o.algorithm = alg

	switch {
	case o.size < 0:
		return o, fmt.Errorf("-size must not be negative, got %d", o.size)
	case o.rebuildWalls < 0:
		return o, fmt.Errorf("-rebuild-walls must not be negative, got %d", o.rebuildWalls)
	case (o.startX == unset) != (o.startY == unset):
		return o, errors.New("-start-x and -start-y must be given together")
	case (o.endX == unset) != (o.endY == unset):
		return o, errors.New("-end-x and -end-y must be given together")
	}
	if o.size == 0 {
		o.size = defaultSize(cfg.DefaultSize, o.imageOut == "" || o.text)
	}
	if o.seed < 0 {
		o.seed = time.Now().UnixNano()
	}

	return o, nil
}

// defaultSize shrinks the configured size so a text maze fits the terminal
// attached to stdout.
func defaultSize(configured int, forText bool) int {
	fd := int(os.Stdout.Fd())
	if !forText || !terminal.IsTerminal(fd) {
		return configured
	}
	cols, rows, err := terminal.GetSize(fd)
	if err != nil {
		return configured
	}
	// each cell is 4 glyphs wide and 2 lines high, plus one border
	fit := min((cols-1)/4, (rows-2)/2)

	return max(1, min(configured, fit))
}

func (o options) hasStart() bool { return o.startX != unset }
func (o options) hasEnd() bool   { return o.endX != unset }
func (o options) start() gridgraph.Coordinate {
	return gridgraph.Coordinate{X: uint32(o.startX), Y: uint32(o.startY)}
}
func (o options) end() gridgraph.Coordinate {
	return gridgraph.Coordinate{X: uint32(o.endX), Y: uint32(o.endY)}
}

// needsEndpoints reports whether the output refers to a start and an end.
func (o options) needsEndpoints() bool {
	return o.furthest || o.distances || o.path || o.colourDistances || o.markStartEnd
}

// execute builds the maze described by o and writes the requested outputs.
func execute(o options, stdout io.Writer, logger *log.Logger) error {
	if o.startX >= o.size || o.startY >= o.size || o.endX >= o.size || o.endY >= o.size {
		return fmt.Errorf("%w: start or end outside the %d×%d grid", bfs.ErrInvalidStart, o.size, o.size)
	}
	side := uint32(o.size)

	var m gridgraph.Mask
	if o.maskFile != "" {
		bm, err := mask.Load(o.maskFile, side, side)
		if err != nil {
			return err
		}
		m = bm
	}

	g, err := builder.BuildMaze(side, side, o.algorithm,
		builder.WithSeed(o.seed),
		builder.WithMask(m),
		builder.WithRebuildWalls(o.rebuildWalls))
	if err != nil {
		return err
	}
	logger.Printf("[APP] [INFO] %s maze %dx%d, seed %d, %d passages", o.algorithm, side, side, o.seed, g.LinkCount())

	var route []gridgraph.Coordinate
	if o.needsEndpoints() {
		if route, err = routeFor(o, g, m); err != nil {
			return err
		}
	}

	if o.edgesOut != "" {
		if err := writeFile(o.edgesOut, func(w io.Writer) error { return gridgraph.WriteEdgeList(w, g) }); err != nil {
			return err
		}
		logger.Printf("[APP] [INFO] edge list written to %s", o.edgesOut)
	}

	if o.imageOut != "" {
		opts, err := imageOptions(o, g, m, route)
		if err != nil {
			return err
		}
		if err := writeFile(o.imageOut, func(w io.Writer) error { return render.WritePNG(w, g, opts...) }); err != nil {
			return err
		}
		logger.Printf("[APP] [INFO] image written to %s", o.imageOut)
	}

	switch {
	case o.text || (o.imageOut == "" && o.size < o.textLimit):
		cells, err := textDisplay(o, g, m, route)
		if err != nil {
			return err
		}
		_, err = io.WriteString(stdout, render.Text(g, cells))
		return err
	case o.imageOut == "" && o.edgesOut == "":
		logger.Printf("[APP] [INFO] %d×%d is too large to print; use -text, -image or -edges", side, side)
	}

	return nil
}

// routeFor resolves the start and end points: both given, one given and
// the furthest cell from it, or the longest path of the maze.
func routeFor(o options, g gridgraph.Graph, m gridgraph.Mask) ([]gridgraph.Coordinate, error) {
	switch {
	case o.hasStart() && o.hasEnd() && !o.furthest:
		d, err := bfs.Compute(g, o.start(), bfs.WithMask(m))
		if err != nil {
			return nil, err
		}
		return bfs.ShortestPath(g, d, o.end())
	case o.hasStart() || o.hasEnd():
		from := o.start()
		if !o.hasStart() {
			from = o.end()
		}
		d, err := bfs.Compute(g, from, bfs.WithMask(m))
		if err != nil {
			return nil, err
		}
		return bfs.ShortestPath(g, d, d.FurthestPoints()[0])
	default:
		return bfs.LongestPath(g, m)
	}
}

// textDisplay chooses the cell bodies: distances, or the path under its
// end labels, or just the end labels.
func textDisplay(o options, g gridgraph.Graph, m gridgraph.Mask, route []gridgraph.Coordinate) (display.CellDisplay, error) {
	if len(route) == 0 {
		return display.Blank{}, nil
	}
	ends := display.NewStartEnd(route[:1], route[len(route)-1:])
	switch {
	case o.distances:
		d, err := bfs.Compute(g, route[0], bfs.WithMask(m))
		if err != nil {
			return nil, err
		}
		return display.NewDistances(d), nil
	case o.path:
		return display.Layers{ends, display.NewPath(route)}, nil
	default:
		return ends, nil
	}
}

func imageOptions(o options, g gridgraph.Graph, m gridgraph.Mask, route []gridgraph.Coordinate) ([]render.ImageOption, error) {
	opts := []render.ImageOption{render.WithCellPixels(o.cellPixels), render.WithMask(m)}
	if len(route) == 0 {
		return opts, nil
	}
	if o.colourDistances {
		d, err := bfs.Compute(g, route[0], bfs.WithMask(m))
		if err != nil {
			return nil, err
		}
		opts = append(opts, render.WithDistances(d))
	}
	if o.path {
		opts = append(opts, render.WithPath(route))
	}
	if o.markStartEnd {
		opts = append(opts, render.WithStartEnd(route[0], route[len(route)-1]))
	}

	return opts, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return f.Close()
}

func run() int {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	cfg, err := config.Load()
	if err != nil {
		logger.Printf("[APP] [ERROR] %v", err)
		return 1
	}
	o, err := parseArgs(os.Args[1:], cfg, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Printf("[APP] [ERROR] %v", err)
		logger.Printf("[APP] [INFO] Run with -help for more information.")
		return 2
	}
	if err := execute(o, os.Stdout, logger); err != nil {
		logger.Printf("[APP] [ERROR] %v", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
