// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

const (
	e10 = 7.0710678118654755 // sqrt(50)
	e5  = 3.1622776601683795 // sqrt(10)
	e2  = 1.4142135623730951 // sqrt(2)
)

// TickIncrement returns the step between adjacent tick values for the
// interval [start, stop] divided into approximately count intervals.
// The step is one of 1, 2, 5, or 10 times a power of ten.
//
// For steps below one, the returned value is the negated reciprocal of
// the step: the caller must divide by -step rather than multiply by
// step. Working with the (exactly representable) reciprocal avoids
// accumulating round-off in sub-unit steps.
//
// If count <= 0 or start == stop, the result is zero or non-finite and
// the caller should produce no ticks.
func TickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	if power >= 0 {
		switch {
		case err >= e10:
			return 10 * math.Pow(10, power)
		case err >= e5:
			return 5 * math.Pow(10, power)
		case err >= e2:
			return 2 * math.Pow(10, power)
		}
		return math.Pow(10, power)
	}
	switch {
	case err >= e10:
		return -math.Pow(10, -power) / 10
	case err >= e5:
		return -math.Pow(10, -power) / 5
	case err >= e2:
		return -math.Pow(10, -power) / 2
	}
	return -math.Pow(10, -power)
}

// TickStep is like TickIncrement but always returns the step directly,
// negated if stop < start. It trades the reciprocal trick for a value
// that is safe to add repeatedly, which is what histogram binning
// wants.
func TickStep(start, stop float64, count int) float64 {
	step0 := math.Abs(stop-start) / math.Max(0, float64(count))
	step1 := math.Pow(10, math.Floor(math.Log10(step0)))
	err := step0 / step1
	switch {
	case err >= e10:
		step1 *= 10
	case err >= e5:
		step1 *= 5
	case err >= e2:
		step1 *= 2
	}
	if stop < start {
		return -step1
	}
	return step1
}

// Ticks returns approximately count nicely rounded values covering the
// interval [start, stop]. Every returned value lies within the
// interval, and consecutive values differ by exactly
// TickIncrement(start, stop, count). If stop < start the values are
// returned in descending order. A degenerate interval yields the
// single value start; an unusable step yields no values.
func Ticks(start, stop float64, count int) []float64 {
	if start == stop && count > 0 {
		return []float64{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := TickIncrement(start, stop, count)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []float64{}
	}

	var ticks []float64
	if step > 0 {
		r0 := math.Round(start / step)
		r1 := math.Round(stop / step)
		if r0*step < start {
			r0++
		}
		if r1*step > stop {
			r1--
		}
		ticks = make([]float64, 0, int(r1-r0)+1)
		for i := 0.0; i <= r1-r0; i++ {
			ticks = append(ticks, (r0+i)*step)
		}
	} else {
		step = -step
		r0 := math.Round(start * step)
		r1 := math.Round(stop * step)
		if r0/step < start {
			r0++
		}
		if r1/step > stop {
			r1--
		}
		ticks = make([]float64, 0, int(r1-r0)+1)
		for i := 0.0; i <= r1-r0; i++ {
			ticks = append(ticks, (r0+i)/step)
		}
	}

	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// niceIters bounds the NiceDomain convergence loop. In practice the
// step stabilizes after one or two rounds.
const niceIters = 10

// NiceDomain expands [start, stop] outward to the nearest bounds that
// fall on tick positions for the given count, so axis labels at the
// extremes come out round. The returned interval always contains the
// input and preserves its orientation. If the expansion does not
// converge within a fixed number of rounds, the input is returned
// unchanged.
func NiceDomain(start, stop float64, count int) (float64, float64) {
	start0, stop0 := start, stop

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	prev := math.NaN()
	for iter := 0; iter < niceIters; iter++ {
		step := TickIncrement(start, stop, count)
		if math.IsInf(step, 0) || math.IsNaN(step) {
			// Degenerate domain. There is nothing to expand to.
			return start0, stop0
		}
		switch {
		case step == prev:
			if reverse {
				return stop, start
			}
			return start, stop
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return start0, stop0
		}
		prev = step
	}
	return start0, stop0
}
