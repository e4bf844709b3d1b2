package mask

import (
	"errors"
	"strings"

	"github.com/katalvlaran/mazes/gridgraph"
)

var (
	// ErrEmptyMask indicates a mask with zero width or height.
	ErrEmptyMask = errors.New("mask: width and height must be positive")
	// ErrRaggedRows indicates text rows of differing lengths.
	ErrRaggedRows = errors.New("mask: rows differ in length")
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("mask: image is nil")
)

// BinaryMask is a fixed-size bitmap of masked cells.
type BinaryMask struct {
	width, height uint32
	masked        []bool
}

var _ gridgraph.Mask = (*BinaryMask)(nil)

// New returns a width×height mask with every cell unmasked.
func New(width, height uint32) (*BinaryMask, error) {
	if width == 0 || height == 0 {
		return nil, ErrEmptyMask
	}

	return &BinaryMask{
		width:  width,
		height: height,
		masked: make([]bool, int(width)*int(height)),
	}, nil
}

// Width returns the number of columns the bitmap covers.
func (b *BinaryMask) Width() uint32 { return b.width }

// Height returns the number of rows the bitmap covers.
func (b *BinaryMask) Height() uint32 { return b.height }

func (b *BinaryMask) index(c gridgraph.Coordinate) (int, bool) {
	if c.X >= b.width || c.Y >= b.height {
		return 0, false
	}

	return c.RowMajorIndex(b.width), true
}

// IsMasked reports whether c is switched off. Coordinates outside the
// bitmap are unmasked.
func (b *BinaryMask) IsMasked(c gridgraph.Coordinate) bool {
	i, ok := b.index(c)
	return ok && b.masked[i]
}

// SetMasked switches c off (masked=true) or back on. It returns false when
// c lies outside the bitmap.
func (b *BinaryMask) SetMasked(c gridgraph.Coordinate, masked bool) bool {
	i, ok := b.index(c)
	if ok {
		b.masked[i] = masked
	}

	return ok
}

// FirstUnmasked returns the first unmasked cell of the bitmap in row-major
// order, or false if every cell is masked.
func (b *BinaryMask) FirstUnmasked() (gridgraph.Coordinate, bool) {
	for i, m := range b.masked {
		if !m {
			return gridgraph.FromRowMajorIndex(i, b.width), true
		}
	}

	return gridgraph.Coordinate{}, false
}

// CountUnmaskedWithin counts the unmasked cells of a width×height area
// anchored at (0,0). Cells beyond the bitmap count as unmasked.
func (b *BinaryMask) CountUnmaskedWithin(width, height uint32) int {
	total := int(width) * int(height)
	w, h := min(width, b.width), min(height, b.height)
	for y := uint32(0); y < h; y++ {
		row := b.masked[int(y)*int(b.width):]
		for x := uint32(0); x < w; x++ {
			if row[x] {
				total--
			}
		}
	}

	return total
}

// MaskedCount returns how many cells of the bitmap are masked.
func (b *BinaryMask) MaskedCount() int {
	n := 0
	for _, m := range b.masked {
		if m {
			n++
		}
	}

	return n
}

// String draws the bitmap one row per line, '#' for masked and '.' for
// open cells. FromRows accepts the result.
func (b *BinaryMask) String() string {
	var sb strings.Builder
	sb.Grow(len(b.masked) + int(b.height))
	for i, m := range b.masked {
		if i > 0 && i%int(b.width) == 0 {
			sb.WriteByte('\n')
		}
		if m {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}
