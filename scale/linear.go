// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Linear is an affine scale from a numeric domain to an output range.
type Linear struct {
	lo, hi   float64
	r0, r1   float64
	hasRange bool
}

// NewLinear returns a linear scale over the domain [lo, hi] mapping
// onto [0, 1]. The domain may be reversed (hi < lo) to flip the
// output orientation.
func NewLinear(lo, hi float64) Linear {
	return Linear{lo: lo, hi: hi}
}

// WithRange returns a copy of s that maps onto [a, b] instead of
// [0, 1].
func (s Linear) WithRange(a, b float64) Linear {
	s.r0, s.r1, s.hasRange = a, b, true
	return s
}

// Domain returns the scale's input interval.
func (s Linear) Domain() (lo, hi float64) {
	return s.lo, s.hi
}

// pos returns the unit-interval position of x, ignoring any range.
func (s Linear) pos(x float64) float64 {
	return (x - s.lo) / (s.hi - s.lo)
}

func (s Linear) Map(x float64) float64 {
	pos := s.pos(x)
	if s.hasRange {
		return pos*s.r1 + (1-pos)*s.r0
	}
	return pos
}

// Ticks returns approximately count round values covering the domain.
// Linear ticks have no major/minor distinction, so typ is ignored and
// every tick is treated as major.
func (s Linear) Ticks(count int, typ TickType) []float64 {
	return Ticks(s.lo, s.hi, count)
}

// Nice returns a copy of s whose domain starts and ends at round
// values.
func (s Linear) Nice() Quantitative {
	return s.nicer()
}

func (s Linear) nicer() Linear {
	s.lo, s.hi = NiceDomain(s.lo, s.hi, 10)
	return s
}

func (s Linear) IsMajor(tick float64) bool {
	return true
}
