// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot assembles charts from scales: axes, grids, lines,
// scatter markers, histograms, and heatmaps, drawn onto an svg.Canvas
// within a rectangular plot area.
package plot

import "github.com/aclements/go-plot/scale"

// A Box is a rectangular plot area in pixel coordinates. It maps the
// [0, 1] positions produced by scales onto pixels, with the vertical
// axis flipped so position 0 is the bottom edge.
type Box struct {
	Left, Top, Width, Height float64
}

// X returns the pixel x coordinate of horizontal position u.
func (b Box) X(u float64) float64 {
	x, _ := scale.NewOutput(b.Left, b.Left+b.Width).Unclamp().Map(u)
	return x
}

// Y returns the pixel y coordinate of vertical position u. u = 0 is
// the bottom of the box.
func (b Box) Y(u float64) float64 {
	y, _ := scale.NewOutput(b.Top+b.Height, b.Top).Unclamp().Map(u)
	return y
}

// Right returns the pixel x coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the pixel y coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

// Inset returns a copy of b shrunk by the given margins.
func (b Box) Inset(left, top, right, bottom float64) Box {
	return Box{
		Left:   b.Left + left,
		Top:    b.Top + top,
		Width:  b.Width - left - right,
		Height: b.Height - top - bottom,
	}
}
