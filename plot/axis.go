// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-plot/scale"
	"github.com/aclements/go-plot/svg"
)

// AxisOpts adjusts axis rendering. The zero value draws black ticks
// of the default geometry with %g labels at major ticks.
type AxisOpts struct {
	// Color is the tick and label color. Nil means black.
	Color color.Color

	// Ticks overrides the tick positions. If nil, the scale's own
	// Ticks(Count) are used, with labels at major ticks only.
	Ticks []float64

	// Count is the target tick count when Ticks is nil. 0 means 10.
	Count int

	// TickLen, TextSep, and FontSize are in pixels. Zero means the
	// defaults 7, 4, and 10.
	TickLen  float64
	TextSep  float64
	FontSize float64
}

func (o *AxisOpts) fill() {
	if o.Color == nil {
		o.Color = color.Black
	}
	if o.Count == 0 {
		o.Count = 10
	}
	if o.TickLen == 0 {
		o.TickLen = 7
	}
	if o.TextSep == 0 {
		o.TextSep = 4
	}
	if o.FontSize == 0 {
		o.FontSize = 10
	}
}

func (o *AxisOpts) ticks(s scale.Quantitative) (marks, labels []float64) {
	if o.Ticks != nil {
		return o.Ticks, o.Ticks
	}
	return s.Ticks(o.Count, scale.TickAll), s.Ticks(o.Count, scale.TickMajor)
}

// XAxis draws a horizontal axis along the bottom edge of b, with tick
// marks below the edge and labels below the ticks.
func XAxis(c *svg.Canvas, s scale.Quantitative, b Box, opts AxisOpts) {
	opts.fill()
	marks, labels := opts.ticks(s)

	c.NewPath()
	c.VSegments(pixelsX(s, b, marks), b.Bottom()+opts.TickLen, b.Bottom())
	c.SetStroke(opts.Color)
	c.Stroke()
	c.SetStroke(nil)

	c.SetFill(opts.Color)
	lOpts := svg.TextOpts{Anchor: svg.AnchorMiddle, FontSize: opts.FontSize}
	for _, t := range labels {
		c.Text(b.X(s.Map(t)), b.Bottom()+opts.TickLen+opts.TextSep+opts.FontSize, lOpts,
			fmt.Sprintf("%g", t))
	}
	c.SetFill(nil)
}

// YAxis draws a vertical axis along the left edge of b, with tick
// marks left of the edge and right-aligned labels left of the ticks.
func YAxis(c *svg.Canvas, s scale.Quantitative, b Box, opts AxisOpts) {
	opts.fill()
	marks, labels := opts.ticks(s)

	c.NewPath()
	c.HSegments(pixelsY(s, b, marks), b.Left-opts.TickLen, b.Left)
	c.SetStroke(opts.Color)
	c.Stroke()
	c.SetStroke(nil)

	c.SetFill(opts.Color)
	lOpts := svg.TextOpts{Anchor: svg.AnchorEnd, Baseline: svg.BaselineMiddle, FontSize: opts.FontSize}
	for _, t := range labels {
		c.Text(b.Left-opts.TickLen-opts.TextSep, b.Y(s.Map(t)), lOpts,
			fmt.Sprintf("%g", t))
	}
	c.SetFill(nil)
}

// Grid draws light grid lines across b at the tick positions of both
// scales. A nil gridColor means a light gray.
func Grid(c *svg.Canvas, xs, ys scale.Quantitative, b Box, gridColor color.Color) {
	if gridColor == nil {
		gridColor = color.Gray{0xf0}
	}
	c.NewPath()
	c.VSegments(pixelsX(xs, b, xs.Ticks(10, scale.TickAll)), b.Bottom(), b.Top)
	c.HSegments(pixelsY(ys, b, ys.Ticks(10, scale.TickAll)), b.Left, b.Right())
	c.SetStroke(gridColor)
	c.Stroke()
	c.SetStroke(nil)
}

func pixelsX(s scale.Quantitative, b Box, ticks []float64) []float64 {
	return scale.MapAll(func(t float64) float64 { return b.X(s.Map(t)) }, ticks)
}

func pixelsY(s scale.Quantitative, b Box, ticks []float64) []float64 {
	return scale.MapAll(func(t float64) float64 { return b.Y(s.Map(t)) }, ticks)
}
