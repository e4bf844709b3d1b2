package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazes/bfs"
	"github.com/katalvlaran/mazes/gridgraph"
)

// Sentinel errors for the image renderer.
var (
	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("render: graph is nil")
	// ErrCellPixels indicates a cell size too small to hold a floor.
	ErrCellPixels = errors.New("render: cell size must be at least 3 pixels")
	// ErrOptionViolation indicates an invalid ImageOption.
	ErrOptionViolation = errors.New("render: invalid option")
	// ErrDimensionMismatch indicates distances taken from a grid of another size.
	ErrDimensionMismatch = errors.New("render: distances belong to a grid of another size")
)

// DefaultCellPixels is the side of a cell, walls included, in pixels.
const DefaultCellPixels = 10

// MinCellPixels is the smallest cell that still leaves a one-pixel floor
// between two one-pixel walls.
const MinCellPixels = 3

var (
	wallColour   = color.RGBA{A: 0xff}
	floorColour  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	pathColour   = color.RGBA{R: 0xff, A: 0xff}
	maskedColour = color.RGBA{A: 0xff}
	arrowColour  = color.RGBA{B: 0xff, A: 0xff}
)

// ImageOption configures Image.
type ImageOption func(*imageOptions)

type imageOptions struct {
	cellPixels int
	distances  *bfs.Distances
	path       []gridgraph.Coordinate
	start, end *gridgraph.Coordinate
	mask       gridgraph.Mask
	err        error
}

// WithCellPixels sets the side of each cell in pixels (minimum 3).
func WithCellPixels(n int) ImageOption {
	return func(o *imageOptions) {
		if n < MinCellPixels {
			o.err = fmt.Errorf("%w: %d", ErrCellPixels, n)
			return
		}
		o.cellPixels = n
	}
}

// WithDistances shades each floor by its distance: the start is darkest
// green, the furthest cell near white. Unreached cells stay white.
func WithDistances(d *bfs.Distances) ImageOption {
	return func(o *imageOptions) {
		if d == nil {
			o.err = fmt.Errorf("%w: nil distances", ErrOptionViolation)
			return
		}
		o.distances = d
	}
}

// WithPath paints the floors of path red.
func WithPath(path []gridgraph.Coordinate) ImageOption {
	return func(o *imageOptions) { o.path = path }
}

// WithStartEnd marks start and end with arrows when the image is
// rasterised by Maze.RGBA.
func WithStartEnd(start, end gridgraph.Coordinate) ImageOption {
	return func(o *imageOptions) { o.start, o.end = &start, &end }
}

// WithMask paints masked cells solid black.
func WithMask(m gridgraph.Mask) ImageOption {
	return func(o *imageOptions) { o.mask = m }
}

// Maze is a lazily drawn image of a maze. It reads the graph on every At
// call, so the graph must not change while the image is in use.
type Maze struct {
	g      gridgraph.Graph
	dims   gridgraph.Dimensions
	opts   imageOptions
	onPath []bool
	bounds image.Rectangle
}

var _ image.Image = (*Maze)(nil)

// Image prepares a drawing of g. The image is Columns·n+1 pixels wide and
// Rows·n+1 high for a cell size of n: each cell owns its north and west
// wall, and the last pixel column and row close the east and south border.
func Image(g gridgraph.Graph, opts ...ImageOption) (*Maze, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := imageOptions{cellPixels: DefaultCellPixels}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	dims := g.Dimensions()
	if o.distances != nil && o.distances.Dimensions() != dims {
		return nil, ErrDimensionMismatch
	}

	m := &Maze{
		g:    g,
		dims: dims,
		opts: o,
		bounds: image.Rect(0, 0,
			int(dims.Columns)*o.cellPixels+1,
			int(dims.Rows)*o.cellPixels+1),
	}
	if len(o.path) > 0 {
		m.onPath = make([]bool, dims.Size())
		for _, c := range o.path {
			if i, ok := g.Index(c); ok {
				m.onPath[i] = true
			}
		}
	}

	return m, nil
}

// ColorModel implements image.Image.
func (m *Maze) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Maze) Bounds() image.Rectangle { return m.bounds }

// At implements image.Image.
func (m *Maze) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.bounds) {
		return color.RGBA{}
	}
	if x == m.bounds.Max.X-1 || y == m.bounds.Max.Y-1 {
		return wallColour
	}

	n := m.opts.cellPixels
	c := gridgraph.Coordinate{X: uint32(x / n), Y: uint32(y / n)}
	if gridgraph.IsMasked(m.opts.mask, c) {
		return maskedColour
	}
	lx, ly := x%n, y%n
	switch {
	case lx == 0 && ly == 0:
		return wallColour
	case ly == 0 && !m.g.IsNeighbourLinked(c, gridgraph.North):
		return wallColour
	case lx == 0 && !m.g.IsNeighbourLinked(c, gridgraph.West):
		return wallColour
	}

	return m.floor(c)
}

// floor returns the colour of the inside of cell c.
func (m *Maze) floor(c gridgraph.Coordinate) color.Color {
	if m.onPath != nil {
		if i, _ := m.g.Index(c); m.onPath[i] {
			return pathColour
		}
	}
	if m.opts.distances != nil {
		return m.shade(c)
	}

	return floorColour
}

// shade maps the distance of c onto a dark-to-light green ramp.
func (m *Maze) shade(c gridgraph.Coordinate) color.Color {
	d := m.opts.distances
	dist, ok := d.DistanceTo(c)
	if !ok {
		return floorColour
	}
	intensity := 1.0
	if d.Max() > 0 {
		intensity = float64(d.Max()-dist) / float64(d.Max())
	}
	dark := uint8(255 * (1 - intensity))
	bright := uint8(128 + 127*(1-intensity))

	return color.RGBA{R: dark, G: bright, B: dark, A: 0xff}
}

// RGBA rasterises the maze and, when WithStartEnd was given, overlays an
// arrow into each marked cell: pointing down into the start and down out
// of the end.
func (m *Maze) RGBA() (*image.RGBA, error) {
	base := image_utils.ToRGBA(m)
	if m.opts.start == nil {
		return base, nil
	}

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base image: %w", err)
	}
	side := m.opts.cellPixels - 1
	for _, c := range [2]gridgraph.Coordinate{*m.opts.start, *m.opts.end} {
		if !m.dims.Contains(c) {
			return nil, fmt.Errorf("%w: marker %v outside the grid", ErrOptionViolation, c)
		}
		arrow := image_utils.ResizeImage(image_utils.DownArrow(arrowColour), side, side)
		at := image.Pt(int(c.X)*m.opts.cellPixels+1, int(c.Y)*m.opts.cellPixels+1)
		if err := composite.AddImage(arrow, at); err != nil {
			return nil, fmt.Errorf("render: marker at %v: %w", c, err)
		}
	}

	return image_utils.ToRGBA(composite), nil
}

// WritePNG draws g and encodes the image as PNG to w.
func WritePNG(w io.Writer, g gridgraph.Graph, opts ...ImageOption) error {
	m, err := Image(g, opts...)
	if err != nil {
		return err
	}
	img, err := m.RGBA()
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}
