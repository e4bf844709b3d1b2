// Package render draws mazes as box-drawing text or as raster images.
//
// Text renders a gridgraph.Graph with Unicode light box-drawing glyphs; a
// display.CellDisplay fills each 3-glyph cell body (distances, a path,
// start and end labels).
//
// Image builds a *Maze, an image.Image whose pixels are computed on demand
// from the graph: one-pixel walls, white floors, optional distance shading,
// a red path and black masked cells. Maze.RGBA rasterises it and overlays
// start/end arrows with image_utils; WritePNG encodes the result.
//
// Errors: ErrGraphNil, ErrCellPixels, ErrOptionViolation, ErrDimensionMismatch.
package render
