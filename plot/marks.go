// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plot/scale"
	"github.com/aclements/go-plot/svg"
)

// Line draws a polyline through (xs[i], ys[i]) mapped through the two
// scales into b. xs and ys must have the same length.
func Line(c *svg.Canvas, xscale, yscale scale.Quantitative, xs, ys []float64, b Box, stroke color.Color) {
	if len(xs) != len(ys) {
		panic("plot: mismatched series lengths")
	}
	if stroke == nil {
		stroke = color.Black
	}
	c.NewPath()
	for i := range xs {
		x, y := b.X(xscale.Map(xs[i])), b.Y(yscale.Map(ys[i]))
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.SetStroke(stroke)
	c.Stroke()
	c.SetStroke(nil)
}

// ScatterOpts adjusts Scatter rendering.
type ScatterOpts struct {
	// Marker is a named glyph from Markers. Empty means "o".
	Marker string

	// Size scales the glyph. 0 means 1.
	Size float64

	// Stroke is the glyph outline color. Nil means black.
	Stroke color.Color

	// Fill is the glyph fill color. Nil leaves glyphs hollow.
	Fill color.Color
}

// Scatter draws one marker glyph per (xs[i], ys[i]) point. It returns
// an error if the marker name is unknown.
func Scatter(c *svg.Canvas, xscale, yscale scale.Quantitative, xs, ys []float64, b Box, opts ScatterOpts) error {
	if len(xs) != len(ys) {
		panic("plot: mismatched series lengths")
	}
	if opts.Marker == "" {
		opts.Marker = "o"
	}
	if opts.Size == 0 {
		opts.Size = 1
	}
	if opts.Stroke == nil {
		opts.Stroke = color.Black
	}

	ref, err := defMarker(c, opts.Marker)
	if err != nil {
		return err
	}

	c.SetStroke(opts.Stroke)
	c.SetFill(opts.Fill)
	// Glyph geometry is defined at size 1; scaling the glyph must
	// not thicken its outline.
	c.SetLineWidth(1 / opts.Size)
	for i := range xs {
		c.Use(ref, b.X(xscale.Map(xs[i])), b.Y(yscale.Map(ys[i])), opts.Size)
	}
	c.SetLineWidth(1)
	c.SetFill(nil)
	c.SetStroke(nil)
	return nil
}

// HLine draws a horizontal reference line across b at data value y.
func HLine(c *svg.Canvas, yscale scale.Quantitative, y float64, b Box, stroke color.Color) {
	if stroke == nil {
		stroke = color.Black
	}
	py := b.Y(yscale.Map(y))
	c.NewPath().MoveTo(b.Left, py).LineTo(b.Right(), py)
	c.SetStroke(stroke)
	c.Stroke()
	c.SetStroke(nil)
}

// VLine draws a vertical reference line across b at data value x.
func VLine(c *svg.Canvas, xscale scale.Quantitative, x float64, b Box, stroke color.Color) {
	if stroke == nil {
		stroke = color.Black
	}
	px := b.X(xscale.Map(x))
	c.NewPath().MoveTo(px, b.Bottom()).LineTo(px, b.Top)
	c.SetStroke(stroke)
	c.Stroke()
	c.SetStroke(nil)
}

// Histogram draws counts as a filled step outline. edges must hold
// one more element than counts: counts[i] spans [edges[i],
// edges[i+1]].
func Histogram(c *svg.Canvas, xscale, yscale scale.Quantitative, counts, edges []float64, b Box, fill color.Color) {
	if len(edges) != len(counts)+1 {
		panic("plot: need len(counts)+1 bin edges")
	}
	if fill == nil {
		fill = color.Gray{0xcc}
	}
	base := b.Y(yscale.Map(0))
	c.NewPath().MoveTo(b.X(xscale.Map(edges[0])), base)
	for i, n := range counts {
		y := b.Y(yscale.Map(n))
		c.LineTo(b.X(xscale.Map(edges[i])), y)
		c.LineTo(b.X(xscale.Map(edges[i+1])), y)
	}
	c.LineTo(b.X(xscale.Map(edges[len(edges)-1])), base).ClosePath()
	c.SetFill(fill)
	c.Fill()
	c.SetFill(nil)
}

// BinEdges returns n+1 evenly spaced bin edges covering [lo, hi].
func BinEdges(lo, hi float64, n int) []float64 {
	return vec.Linspace(lo, hi, n+1)
}

// Bin counts data into the bins described by edges, which must be
// ascending. Values outside the edges are dropped.
func Bin(data, edges []float64) []float64 {
	counts := make([]float64, len(edges)-1)
	for _, x := range data {
		if x < edges[0] || x > edges[len(edges)-1] {
			continue
		}
		i := 0
		for i < len(counts)-1 && x >= edges[i+1] {
			i++
		}
		counts[i]++
	}
	return counts
}

// defMarker registers the named marker glyph path with c and returns
// its reference for Use.
func defMarker(c *svg.Canvas, name string) (string, error) {
	d, ok := markers[name]
	if !ok {
		return "", fmt.Errorf("plot: unknown marker %q (available: %v)", name, MarkerNames())
	}
	return c.DefRaw(d), nil
}
