// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/aclements/go-plot/scale"
	"github.com/aclements/go-plot/svg"
)

// HeatmapOpts adjusts Heatmap rendering.
type HeatmapOpts struct {
	// Autoscale rescales the matrix to span the color scale's
	// domain before lookup.
	Autoscale bool
}

// Heatmap renders matrix m as a color raster filling b, one pixel per
// cell, using cs for the color lookup. Row 0 is drawn at the top.
// The raster is embedded in the document as a PNG data URL.
func Heatmap(c *svg.Canvas, m [][]float64, cs scale.Color, b Box, opts HeatmapOpts) error {
	if opts.Autoscale {
		lo, hi := matrixSpan(m)
		dlo, dhi := cs.Domain()
		rescale := scale.NewLinear(lo, hi).WithRange(dlo, dhi)
		m2 := make([][]float64, len(m))
		for i, row := range m {
			m2[i] = scale.MapAll(rescale.Map, row)
		}
		m = m2
	}

	img := image.NewNRGBA(image.Rect(0, 0, len(m[0]), len(m)))
	for y, row := range m {
		if len(row) != len(m[0]) {
			panic("plot: ragged matrix")
		}
		for x, v := range row {
			img.Set(x, y, cs.At(v))
		}
	}

	url, err := pngDataURL(img)
	if err != nil {
		return err
	}
	c.Image(url, b.Left, b.Top, b.Width, b.Height)
	return nil
}

// ColorKey draws a vertical color bar for cs along the right side of
// b, with an axis of the scale's ticks.
func ColorKey(c *svg.Canvas, cs scale.Color, b Box, width float64) error {
	const steps = 128
	m := make([][]float64, steps)
	lo, hi := cs.Domain()
	bar := scale.NewLinear(0, steps-1).WithRange(hi, lo)
	for i := range m {
		m[i] = []float64{bar.Map(float64(i))}
	}
	key := Box{Left: b.Right() - width, Top: b.Top, Width: width, Height: b.Height}
	if err := Heatmap(c, m, cs, key, HeatmapOpts{}); err != nil {
		return err
	}
	YAxis(c, scale.NewLinear(lo, hi), key, AxisOpts{TickLen: 3, TextSep: 3})
	return nil
}

func pngDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func matrixSpan(m [][]float64) (lo, hi float64) {
	lo, hi = m[0][0], m[0][0]
	for _, row := range m {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return
}
