// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientEven(t *testing.T) {
	g := Gradient{Colors: []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	}}

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, g.Map(0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, g.Map(1))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, g.Map(0.5))

	// Positions outside [0, 1] take the end colors.
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, g.Map(-0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, g.Map(1.5))
}

func TestGradientStops(t *testing.T) {
	g := Gradient{
		Colors: []color.RGBA{
			{0, 0, 0, 255},
			{100, 0, 0, 255},
			{200, 0, 0, 255},
		},
		Stops: []float64{0, 0.5, 1},
	}

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, g.Map(0))
	assert.Equal(t, color.RGBA{50, 0, 0, 255}, g.Map(0.25))
	assert.Equal(t, color.RGBA{100, 0, 0, 255}, g.Map(0.5))
	assert.Equal(t, color.RGBA{200, 0, 0, 255}, g.Map(1))
	assert.Equal(t, color.RGBA{200, 0, 0, 255}, g.Map(2))
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err)
		// Every built-in palette must be opaque across its span.
		for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
			_, _, _, a := p.Map(x).RGBA()
			assert.Equal(t, uint32(0xffff), a, "palette %s at %v", name, x)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("plasma-deluxe")
	require.Error(t, err)
	// The error names the alternatives so a typo is easy to fix.
	assert.Contains(t, err.Error(), "plasma-deluxe")
	assert.Contains(t, err.Error(), "viridis")
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 8)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "mako")
	assert.Contains(t, names, "icefire")
}
