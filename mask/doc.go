// Package mask builds gridgraph.Mask values that switch grid cells off.
//
// A BinaryMask is a width×height bitmap. Masked cells take no part in maze
// generation or distance fills; coordinates outside the bitmap count as
// unmasked, so one mask can be laid over a larger grid.
//
// Constructors:
//
//   - FromImage / Load: pixels whose gray level is below 128 are masked.
//     The image is first resized to the requested size with image_utils.
//   - FromRows: text rows, where 'X' or '#' marks a masked cell.
//   - FromCoordinates: an explicit set of masked cells.
//
// Errors: ErrEmptyMask, ErrRaggedRows, ErrNilImage.
package mask
