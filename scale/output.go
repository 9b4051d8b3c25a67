// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Output maps the [0, 1] position produced by a Quantitative scale
// onto a pixel interval. It decides what happens to positions outside
// [0, 1]: cropped (dropped), clamped to the edge, or passed through.
type Output struct {
	min, max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewOutput returns an output scale onto [min, max] that crops
// out-of-interval positions.
func NewOutput(min, max float64) Output {
	return Output{min, max, clampCrop}
}

// Crop returns a copy of s that drops positions outside [0, 1].
func (s Output) Crop() Output {
	s.clamp = clampCrop
	return s
}

// Unclamp returns a copy of s that extrapolates positions outside
// [0, 1].
func (s Output) Unclamp() Output {
	s.clamp = clampNone
	return s
}

// Clamp returns a copy of s that pins positions outside [0, 1] to the
// nearer edge.
func (s Output) Clamp() Output {
	s.clamp = clampClamp
	return s
}

// Map transforms position x into the output interval. The boolean is
// false if x was cropped.
func (s Output) Map(x float64) (float64, bool) {
	switch s.clamp {
	case clampCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case clampClamp:
		x = clamp01(x)
	}
	return x*(s.max-s.min) + s.min, true
}
