// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"
)

// ErrLogDomain is returned by NewLog for a domain that touches or
// crosses zero. Logarithmic position is undefined there.
var ErrLogDomain = errors.New("scale: log domain must be strictly positive")

// Log is a logarithmic scale. Tick values fall on multiples of powers
// of the base, with ticks at exact powers classified as major.
type Log struct {
	lo, hi     float64
	r0, r1     float64
	hasRange   bool
	base       float64
	lmin, lmax float64
}

// NewLog returns a logarithmic scale over the domain [lo, hi] mapping
// onto [0, 1]. The base affects tick placement and Nice, not the
// mapping itself. Both domain bounds must be strictly positive.
func NewLog(lo, hi, base float64) (*Log, error) {
	if !(lo > 0 && hi > 0) {
		return nil, ErrLogDomain
	}
	s := &Log{lo: lo, hi: hi, base: base}
	lbase := math.Log(base)
	s.lmin = snapToInt(math.Log(lo) / lbase)
	s.lmax = snapToInt(math.Log(hi) / lbase)
	return s, nil
}

// WithRange returns a copy of s that maps onto [a, b] instead of
// [0, 1].
func (s *Log) WithRange(a, b float64) *Log {
	s2 := *s
	s2.r0, s2.r1, s2.hasRange = a, b, true
	return &s2
}

// Domain returns the scale's input interval.
func (s *Log) Domain() (lo, hi float64) {
	return s.lo, s.hi
}

// Base returns the scale's logarithm base.
func (s *Log) Base() float64 {
	return s.base
}

// Map transforms x into the output range. Mapping a value <= 0
// returns NaN.
func (s *Log) Map(x float64) float64 {
	pos := 1 - (math.Log(x)/math.Log(s.base)-s.lmax)/(s.lmin-s.lmax)
	if s.hasRange {
		return pos*s.r1 + (1-pos)*s.r0
	}
	return pos
}

// Ticks returns approximately count round values covering the domain.
// When the domain spans only a few powers of the base, ticks fall on
// every integer multiple of each power (1, 2, ..., base-1 per
// decade); over many powers they fall on round exponents instead.
func (s *Log) Ticks(count int, typ TickType) []float64 {
	u, v := s.lo, s.hi
	i, j := s.lmin, s.lmax

	reverse := v < u
	if reverse {
		u, v = v, u
		i, j = j, i
	}

	base := s.base
	pows := func(x float64) float64 { return math.Pow(base, x) }

	var z []float64
	if base == math.Trunc(base) && j-i < float64(count) {
		// Few decades. Enumerate every candidate mantissa in
		// every decade.
		lo, hi := int(math.Floor(i)), int(math.Ceil(j))
		if u > 0 {
			for e := lo; e <= hi; e++ {
				for k := 1; k < int(math.Ceil(base)); k++ {
					var t float64
					if e < 0 {
						// Divide by the positive power so
						// sub-unit ticks stay exact.
						t = float64(k) / pows(float64(-e))
					} else {
						t = float64(k) * pows(float64(e))
					}
					if t < u {
						continue
					}
					if t > v {
						break
					}
					z = append(z, t)
				}
			}
		} else {
			for e := lo; e <= hi; e++ {
				for k := int(math.Ceil(base - 1)); k >= 2; k-- {
					var t float64
					if e > 0 {
						t = float64(k) / pows(float64(-e))
					} else {
						t = float64(k) * pows(float64(e))
					}
					if t < u {
						continue
					}
					if t > v {
						break
					}
					z = append(z, t)
				}
			}
		}
		if len(z)*2 < count {
			// Too sparse to be useful. Fall back to plain
			// linear ticks over the domain.
			z = Ticks(u, v, count)
		}
	} else {
		// Many decades. Tick the exponents and map back.
		n := count
		if span := int(j - i); span < n {
			n = span
		}
		z = MapAll(pows, Ticks(i, j, n))
	}

	if typ == TickMajor || typ == TickMinor {
		keep := z[:0]
		for _, t := range z {
			if s.IsMajor(t) == (typ == TickMajor) {
				keep = append(keep, t)
			}
		}
		z = keep
	}

	if reverse {
		for a, b := 0, len(z)-1; a < b; a, b = a+1, b-1 {
			z[a], z[b] = z[b], z[a]
		}
	}
	return z
}

// IsMajor reports whether tick sits on an exact power of the base,
// within a small relative tolerance.
func (s *Log) IsMajor(tick float64) bool {
	m := tick / math.Pow(s.base, math.Round(math.Log(tick)/math.Log(s.base)))
	if m*s.base < s.base-0.5 {
		// The mantissa rounded up to the next power; shift it
		// back into [1, base).
		m *= s.base
	}
	return math.Abs(m-1) < 1e-3
}

// Nice returns a copy of s whose domain is expanded to the enclosing
// integer powers of the base.
func (s *Log) Nice() Quantitative {
	lbase := math.Log(s.base)
	logs := func(x float64) float64 { return math.Log(x) / lbase }

	x0, x1 := s.lo, s.hi
	reverse := x1 < x0
	if reverse {
		x0, x1 = x1, x0
	}

	lo := math.Pow(s.base, math.Floor(logs(x0)))
	hi := math.Pow(s.base, math.Ceil(logs(x1)))
	if reverse {
		lo, hi = hi, lo
	}

	s2, _ := NewLog(lo, hi, s.base)
	s2.r0, s2.r1, s2.hasRange = s.r0, s.r1, s.hasRange
	return s2
}
