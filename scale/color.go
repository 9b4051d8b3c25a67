// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"github.com/aclements/go-plot/palette"
)

// Color maps a numeric domain onto a continuous palette. It wraps a
// Linear scale for the position computation; At performs the palette
// lookup on the clamped unit position.
type Color struct {
	lin Linear
	pal palette.Continuous
}

// NewColor returns a color scale over the domain [lo, hi] using pal.
func NewColor(lo, hi float64, pal palette.Continuous) Color {
	return Color{NewLinear(lo, hi), pal}
}

// NewColorName is NewColor with a named built-in palette. It returns
// an error for an unknown palette name.
func NewColorName(lo, hi float64, name string) (Color, error) {
	pal, err := palette.Lookup(name)
	if err != nil {
		return Color{}, err
	}
	return NewColor(lo, hi, pal), nil
}

// Domain returns the scale's input interval.
func (s Color) Domain() (lo, hi float64) {
	return s.lin.Domain()
}

func (s Color) Map(x float64) float64 {
	return s.lin.Map(x)
}

// At returns the palette color for x. The position is clamped to
// [0, 1] before lookup, so out-of-domain values take the end colors.
func (s Color) At(x float64) color.Color {
	return s.pal.Map(clamp01(s.lin.pos(x)))
}

func (s Color) Ticks(count int, typ TickType) []float64 {
	return s.lin.Ticks(count, typ)
}

// Nice returns a copy of s whose domain starts and ends at round
// values, keeping the palette.
func (s Color) Nice() Quantitative {
	s.lin = s.lin.nicer()
	return s
}

func (s Color) IsMajor(tick float64) bool {
	return true
}
