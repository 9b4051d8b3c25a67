// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

// MapAll applies a scale's Map to every element of xs, preserving
// order. It is the sequence form of Quantitative.Map.
func MapAll(f func(float64) float64, xs []float64) []float64 {
	return vec.Map(f, xs)
}

// Span returns the smallest domain covering data. If fromZero is set,
// the lower bound is pinned at zero.
func Span(data []float64, fromZero bool) (lo, hi float64) {
	lo, hi = minmax(data)
	if fromZero {
		lo = 0
	}
	return
}

func minmax(xs []float64) (min float64, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// snapToInt rounds x to the nearest integer if it is within eps of
// one. It cleans up log/exp round-trip noise in exponent
// computations.
func snapToInt(x float64) float64 {
	const eps = 1e-12
	rounded := math.Round(x)
	if math.Abs(x-rounded) < eps {
		return rounded
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
