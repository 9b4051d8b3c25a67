// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg is a minimal streaming SVG writer for chart output. It
// writes elements as they are emitted, holding only the current path
// and style state. Errors are latched: after the first write error
// every call is a no-op and Done returns the error.
package svg

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// A Canvas emits SVG to an underlying writer. The zero value is not
// usable; use New.
type Canvas struct {
	w   io.Writer
	err error

	fill, stroke string
	lineWidth    string
	clipPath     string

	id int

	path []string
}

// New starts an SVG document of the given pixel size on w. Call Done
// to close the document and collect any write error.
func New(w io.Writer, width, height float64) *Canvas {
	c := &Canvas{w: w}
	c.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%v\" height=\"%v\" font-family=\"sans-serif\" stroke-linecap=\"round\">\n",
		length(width), length(height))
	c.NewPath()
	return c
}

// length formats a coordinate compactly, with float32 precision.
// Chart geometry does not need more and it keeps documents small.
type length float64

func (v length) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (c *Canvas) fprintf(format string, a ...interface{}) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, a...)
}

// SetFill sets the fill color for subsequent Fill and Text calls. A
// nil color resets to the SVG default.
func (c *Canvas) SetFill(col color.Color) {
	if col == nil {
		c.fill = ""
	} else {
		c.fill = "fill:" + colorToCSS(col)
	}
}

// SetStroke sets the stroke color for subsequent Stroke calls. A nil
// color resets to the SVG default.
func (c *Canvas) SetStroke(col color.Color) {
	if col == nil {
		c.stroke = ""
	} else {
		c.stroke = "stroke:" + colorToCSS(col)
	}
}

// SetLineWidth sets the stroke width in pixels.
func (c *Canvas) SetLineWidth(lw float64) {
	c.lineWidth = fmt.Sprintf("stroke-width:%v", length(lw))
}

func (c *Canvas) style(parts ...string) string {
	val, sep := "", ""
	for _, part := range parts {
		if part != "" {
			val += sep + part
			sep = ";"
		}
	}
	if val != "" {
		return " style=\"" + val + "\""
	}
	return ""
}

// NewPath discards the current path.
func (c *Canvas) NewPath() *Canvas {
	c.path = c.path[:0]
	return c
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) *Canvas {
	c.path = append(c.path, fmt.Sprintf("M%v %v", length(x), length(y)))
	return c
}

// LineTo extends the current subpath to the absolute point (x, y).
func (c *Canvas) LineTo(x, y float64) *Canvas {
	c.path = append(c.path, fmt.Sprintf("L%v %v", length(x), length(y)))
	return c
}

// LineToRel extends the current subpath by the relative offset
// (xd, yd), using the short horizontal and vertical forms when it
// can.
func (c *Canvas) LineToRel(xd, yd float64) *Canvas {
	var op string
	if xd == 0 {
		op = fmt.Sprintf("v%v", length(yd))
	} else if yd == 0 {
		op = fmt.Sprintf("h%v", length(xd))
	} else {
		op = fmt.Sprintf("l%v %v", length(xd), length(yd))
	}
	c.path = append(c.path, op)
	return c
}

// Rect adds a closed rectangular subpath.
func (c *Canvas) Rect(x, y, w, h float64) *Canvas {
	return c.MoveTo(x, y).LineToRel(w, 0).LineToRel(0, h).LineToRel(-w, 0).ClosePath()
}

// HSegments adds one horizontal segment from x0 to x1 at each y.
func (c *Canvas) HSegments(ys []float64, x0, x1 float64) *Canvas {
	for _, y := range ys {
		c.MoveTo(x0, y).LineToRel(x1-x0, 0)
	}
	return c
}

// VSegments adds one vertical segment from y0 to y1 at each x.
func (c *Canvas) VSegments(xs []float64, y0, y1 float64) *Canvas {
	for _, x := range xs {
		c.MoveTo(x, y0).LineToRel(0, y1-y0)
	}
	return c
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() *Canvas {
	c.path = append(c.path, "z")
	return c
}

func (c *Canvas) pathData() string {
	return strings.Join(c.path, "")
}

// Stroke emits the current path with the stroke style and starts a
// new path.
func (c *Canvas) Stroke() *Canvas {
	c.fprintf("<path d=\"%s\" fill=\"none\"%s/>\n", c.pathData(), c.style(c.stroke, c.lineWidth, c.clipPath))
	return c.NewPath()
}

// FillPreserve emits the current path with the fill style, keeping
// the path for further use.
func (c *Canvas) FillPreserve() *Canvas {
	c.fprintf("<path d=\"%s\"%s/>\n", c.pathData(), c.style(c.fill, c.clipPath))
	return c
}

// Fill emits the current path with the fill style and starts a new
// path.
func (c *Canvas) Fill() *Canvas {
	return c.FillPreserve().NewPath()
}

// FillStroke emits the current path with both fill and stroke styles
// and starts a new path.
func (c *Canvas) FillStroke() *Canvas {
	c.fprintf("<path d=\"%s\"%s/>\n", c.pathData(), c.style(c.fill, c.stroke, c.lineWidth, c.clipPath))
	return c.NewPath()
}

// Clip uses the current path as the clip region for subsequent
// elements, until ResetClip.
func (c *Canvas) Clip() *Canvas {
	c.fprintf("<clipPath id=\"i%d\"><path d=\"%s\"/></clipPath>", c.id, c.pathData())
	c.clipPath = fmt.Sprintf("clip-path:url(#i%d)", c.id)
	c.id++
	return c.NewPath()
}

// ResetClip removes the clip region.
func (c *Canvas) ResetClip() *Canvas {
	c.clipPath = ""
	return c
}

// Tooltip emits the current path as an invisible hover target showing
// text, and starts a new path.
func (c *Canvas) Tooltip(text string) *Canvas {
	c.fprintf("<path d=\"%s\" fill=\"rgba(0,0,0,0)\"><title>", c.pathData())
	c.escape(text)
	c.fprintf("</title></path>\n")
	return c.NewPath()
}

// DefPath registers the current path under a fresh id for reuse with
// Use, and starts a new path.
func (c *Canvas) DefPath() (ref string) {
	ref = c.DefRaw(c.pathData())
	c.NewPath()
	return ref
}

// DefRaw registers raw path data under a fresh id for reuse with Use.
func (c *Canvas) DefRaw(d string) (ref string) {
	ref = fmt.Sprintf("i%d", c.id)
	c.id++
	c.fprintf("<defs><path d=\"%s\" id=\"%s\"/></defs>\n", d, ref)
	return ref
}

// Use stamps a previously defined path at (x, y), scaled by scale,
// with the current fill, stroke, and line width.
func (c *Canvas) Use(ref string, x, y, scale float64) *Canvas {
	c.fprintf("<use href=\"#%s\" transform=\"translate(%v %v) scale(%v)\"%s/>\n",
		ref, length(x), length(y), length(scale), c.style(c.fill, c.stroke, c.lineWidth, c.clipPath))
	return c
}

// Image embeds a raster image of the given pixel size at (x, y). href
// is typically a data URL.
func (c *Canvas) Image(href string, x, y, w, h float64) *Canvas {
	// Scale rasters as blocks of color, not smoothly. A heatmap
	// cell must stay a crisp rectangle.
	c.fprintf("<image x=\"%v\" y=\"%v\" width=\"%v\" height=\"%v\" preserveAspectRatio=\"none\" style=\"image-rendering:pixelated\" href=\"%s\"/>\n",
		length(x), length(y), length(w), length(h), href)
	return c
}

// Anchor selects horizontal text alignment relative to the text
// position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline selects vertical text alignment relative to the text
// position.
type Baseline int

const (
	BaselineAuto Baseline = iota
	BaselineBaseline
	BaselineMiddle
)

// TextOpts adjusts Text alignment and appearance.
type TextOpts struct {
	Anchor   Anchor
	Baseline Baseline
	Rotate   float64 // degrees, about the text position
	FontSize float64 // pixels; 0 means inherited
}

// Text draws text at (x, y) with the current fill color.
func (c *Canvas) Text(x, y float64, opts TextOpts, text string) {
	astr := map[Anchor]string{
		AnchorStart:  "",
		AnchorMiddle: " text-anchor=\"middle\"",
		AnchorEnd:    " text-anchor=\"end\"",
	}[opts.Anchor]
	bstr := map[Baseline]string{
		BaselineAuto:     "",
		BaselineBaseline: " dominant-baseline=\"baseline\"",
		BaselineMiddle:   " dominant-baseline=\"middle\"",
	}[opts.Baseline]
	rstr := ""
	if opts.Rotate != 0 {
		rstr = fmt.Sprintf(" transform=\"rotate(%v,%v,%v)\"", length(opts.Rotate), length(x), length(y))
	}
	fstr := ""
	if opts.FontSize != 0 {
		fstr = fmt.Sprintf(" font-size=\"%v\"", length(opts.FontSize))
	}
	close := ""
	if c.clipPath != "" {
		// Don't apply rotation to the clip path.
		c.fprintf("<g%s>", c.style(c.clipPath))
		close = "</g>"
	}
	c.fprintf("<text x=\"%v\" y=\"%v\"%s%s%s%s%s>", length(x), length(y), astr, bstr, rstr, fstr, c.style(c.fill))
	c.escape(text)
	c.fprintf("</text>%s\n", close)
}

func (c *Canvas) escape(text string) {
	if c.err == nil {
		c.err = xml.EscapeText(c.w, []byte(text))
	}
}

// Done closes the document and returns the first error encountered
// while writing, if any.
func (c *Canvas) Done() error {
	c.fprintf("</svg>\n")
	return c.err
}
