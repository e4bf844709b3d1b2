package mask

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoding for Load
	_ "image/jpeg" // register JPEG decoding for Load
	_ "image/png"  // register PNG decoding for Load
	"os"

	"github.com/yalue/image_utils"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazes/gridgraph"
)

// grayThreshold is the gray level below which a pixel masks its cell.
const grayThreshold = 128

// FromImage builds a width×height mask from img. The image is scaled to
// exactly width×height pixels first, so each pixel maps to one cell; pixels
// darker than mid-gray are masked.
func FromImage(img image.Image, width, height uint32) (*BinaryMask, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() != int(width) || bounds.Dy() != int(height) {
		img = image_utils.ResizeImage(img, int(width), int(height))
		bounds = img.Bounds()
	}
	for y := 0; y < int(height); y++ {
		for x := 0; x < int(width); x++ {
			gray := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if gray.Y < grayThreshold {
				b.masked[y*int(width)+x] = true
			}
		}
	}

	return b, nil
}

// Load decodes the PNG, JPEG or GIF image at path and builds a
// width×height mask from it.
func Load(path string, width, height uint32) (*BinaryMask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mask: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mask: decode %s: %w", path, err)
	}

	return FromImage(img, width, height)
}

// FromRows builds a mask from text rows; 'X' and '#' are masked, any other
// byte is open. All rows must have the same length.
func FromRows(rows []string) (*BinaryMask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMask
	}
	width := len(rows[0])
	b, err := New(uint32(width), uint32(len(rows)))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			if row[x] == 'X' || row[x] == '#' {
				b.masked[y*width+x] = true
			}
		}
	}

	return b, nil
}

// FromCoordinates builds a width×height mask with exactly the cells in
// masked switched off. Members outside the bitmap are ignored.
func FromCoordinates(width, height uint32, masked mapset.Set[gridgraph.Coordinate]) (*BinaryMask, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	masked.Each(func(c gridgraph.Coordinate) {
		b.SetMasked(c, true)
	})

	return b, nil
}
