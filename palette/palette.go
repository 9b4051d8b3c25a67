// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides continuous color palettes for data
// visualization. The built-in tables are perceptually uniform
// sequential and diverging palettes, addressed by name.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// A Continuous palette is a function from [0, 1] to colors. It may be
// sequential or diverging.
type Continuous interface {
	Map(x float64) color.Color
}

// Gradient is a Continuous palette that interpolates between a
// sequence of colors.
type Gradient struct {
	// Colors is the sequence of colors to interpolate between.
	// Interpolation treats them as sRGB values.
	Colors []color.RGBA

	// Stops is an optional sequence of stop positions. It may be
	// nil, in which case Colors are evenly spaced on [0, 1].
	// Otherwise it must have the same length as Colors and be in
	// ascending order.
	Stops []float64
}

// Map returns the gradient color at x. Positions outside [0, 1] take
// the nearest end color.
func (g Gradient) Map(x float64) color.Color {
	if g.Stops == nil {
		n := x * float64(len(g.Colors)-1)
		ip, fr := math.Modf(n)
		i := int(ip)
		if i < 0 || n <= 0 {
			return g.Colors[0]
		} else if i >= len(g.Colors)-1 {
			return g.Colors[len(g.Colors)-1]
		}
		return blendRGBA(g.Colors[i], g.Colors[i+1], fr)
	}

	i := sort.SearchFloat64s(g.Stops, x)
	if i == 0 {
		return g.Colors[0]
	} else if i == len(g.Stops) {
		return g.Colors[len(g.Colors)-1]
	}
	fr := (x - g.Stops[i-1]) / (g.Stops[i] - g.Stops[i-1])
	return blendRGBA(g.Colors[i-1], g.Colors[i], fr)
}

func blendRGBA(a, b color.RGBA, fr float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + fr*(float64(y)-float64(x))))
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// Lookup returns the named built-in palette. It fails with a
// descriptive error, rather than substituting a default, if name is
// unknown.
func Lookup(name string) (Continuous, error) {
	if p, ok := builtin[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("palette: unknown palette %q (available: %v)", name, Names())
}

// Names returns the sorted names of the built-in palettes.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
