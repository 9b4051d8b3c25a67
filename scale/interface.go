// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps numeric data domains onto visual coordinate
// ranges and chooses round axis tick values for those domains.
//
// A scale is an immutable value constructed from a domain and an
// optional output range. Mapping and tick enumeration are pure
// functions, so a scale may be shared freely between goroutines.
package scale

// TickType selects which class of ticks Ticks returns.
type TickType int

const (
	// TickAll returns every tick.
	TickAll TickType = iota
	// TickMajor returns only ticks whose mantissa is 1 in the
	// scale's base. On linear scales every tick is major.
	TickMajor
	// TickMinor returns the complement of TickMajor.
	TickMinor
)

// A Quantitative scale maps from a numeric input domain to an output
// interval, [0, 1] unless an explicit range is set.
type Quantitative interface {
	// Map transforms a domain value into the output range.
	Map(x float64) float64

	// Ticks returns approximately count round values covering the
	// domain, ordered consistently with the domain's orientation.
	Ticks(count int, typ TickType) []float64

	// Nice returns a copy of the scale whose domain is expanded
	// outward to round bounds. The receiver is unchanged.
	Nice() Quantitative

	// IsMajor reports whether tick deserves a label.
	IsMajor(tick float64) bool
}
