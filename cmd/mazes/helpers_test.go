package main

import (
	"image"
	"image/color"
)

// blackCentre returns an n×n white image with a black 2×2 block in the
// middle.
func blackCentre(n int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for y := n/2 - 1; y <= n/2; y++ {
		for x := n/2 - 1; x <= n/2; x++ {
			img.SetGray(x, y, color.Gray{})
		}
	}
	return img
}
