// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"
	"testing"

	"github.com/aclements/go-plot/palette"
)

func TestColorScale(t *testing.T) {
	pal := palette.Gradient{Colors: []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}}
	s := NewColor(0, 10, pal)

	// The numeric side behaves exactly like a linear scale.
	if got := s.Map(5); got != 0.5 {
		t.Errorf("Map(5) = %v; want 0.5", got)
	}
	if got := s.Ticks(10, TickAll); !eqSlice(got, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}) {
		t.Errorf("Ticks = %v", got)
	}

	check := func(x float64, want color.RGBA) {
		got := s.At(x)
		r, g, b, _ := got.RGBA()
		wr, wg, wb, _ := want.RGBA()
		if r != wr || g != wg || b != wb {
			t.Errorf("At(%v) = %v; want %v", x, got, want)
		}
	}
	check(0, color.RGBA{0, 0, 0, 255})
	check(10, color.RGBA{255, 255, 255, 255})

	// Out-of-domain values clamp to the end colors.
	check(-5, color.RGBA{0, 0, 0, 255})
	check(100, color.RGBA{255, 255, 255, 255})
}

func TestColorScaleName(t *testing.T) {
	s, err := NewColorName(0, 1, "viridis")
	if err != nil {
		t.Fatalf("NewColorName: %v", err)
	}
	if got := s.Map(0.5); got != 0.5 {
		t.Errorf("Map(0.5) = %v; want 0.5", got)
	}

	if _, err := NewColorName(0, 1, "no-such-palette"); err == nil {
		t.Errorf("NewColorName accepted an unknown palette")
	}
}

func TestColorScaleNice(t *testing.T) {
	pal := palette.Gradient{Colors: []color.RGBA{{0, 0, 0, 255}, {255, 0, 0, 255}}}
	n := NewColor(0.3, 9.7, pal).Nice().(Color)
	if lo, hi := n.Domain(); lo != 0 || hi != 10 {
		t.Errorf("Nice domain = [%v, %v]; want [0, 10]", lo, hi)
	}
	// The palette survives the new scale.
	if _, _, _, a := n.At(10).RGBA(); a == 0 {
		t.Errorf("palette lost after Nice")
	}
}
