// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Power is a linear scale with the output position raised to a fixed
// exponent. An exponent of 1/2 is useful for intensity shading, where
// perception is closer to square-root than linear.
type Power struct {
	lin Linear
	exp float64
}

// NewPower returns a power scale over the domain [lo, hi].
func NewPower(lo, hi, exp float64) Power {
	return Power{NewLinear(lo, hi), exp}
}

// WithRange returns a copy of s that maps onto [a, b] instead of
// [0, 1]. The exponent applies before the range transform.
func (s Power) WithRange(a, b float64) Power {
	s.lin = s.lin.WithRange(a, b)
	return s
}

func (s Power) Map(x float64) float64 {
	pos := math.Pow(s.lin.pos(x), s.exp)
	if s.lin.hasRange {
		return pos*s.lin.r1 + (1-pos)*s.lin.r0
	}
	return pos
}

func (s Power) Ticks(count int, typ TickType) []float64 {
	return s.lin.Ticks(count, typ)
}

func (s Power) Nice() Quantitative {
	s.lin = s.lin.nicer()
	return s
}

func (s Power) IsMajor(tick float64) bool {
	return true
}
