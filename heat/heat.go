// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package heat implements a heat map image
// for a pairwise distance matrix.
package heat

import (
	"image"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/unifrac/unifrac"
)

type Image struct {
	// Distance matrix
	M *unifrac.Matrix

	// Size of a matrix cell in pixels
	Cell int

	// If gray is true,
	// it will use a gray scale.
	Gray bool

	max float64
}

// Format prepares the image for rendering.
// It must be called after any change
// to the image fields.
func (i *Image) Format() {
	if i.Cell <= 0 {
		i.Cell = 10
	}

	i.max = 0
	for r := 0; r < i.M.Len(); r++ {
		for c := r + 1; c < i.M.Len(); c++ {
			if d := i.M.Dist(r, c); d > i.max {
				i.max = d
			}
		}
	}
	if i.max == 0 {
		i.max = 1
	}
}

func (i *Image) ColorModel() color.Model { return color.RGBAModel }
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.M.Len()*i.Cell, i.M.Len()*i.Cell)
}
func (i *Image) At(x, y int) color.Color {
	c := x / i.Cell
	r := y / i.Cell
	if c >= i.M.Len() || r >= i.M.Len() {
		return color.RGBA{A: 255}
	}

	v := i.M.Dist(r, c) / i.max
	if i.Gray {
		g := uint8(255 * (1 - v))
		return color.RGBA{R: g, G: g, B: g, A: 255}
	}
	return blind.Gradient(v)
}
