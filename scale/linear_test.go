// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
)

func TestLinearMap(t *testing.T) {
	s := NewLinear(0, 10)
	check := func(x, want float64) {
		if got := s.Map(x); got != want {
			t.Errorf("Map(%v) = %v; want %v", x, got, want)
		}
	}
	check(0, 0)
	check(5, 0.5)
	check(10, 1)
	check(-10, -1)
	check(20, 2)
}

func TestLinearMapRange(t *testing.T) {
	s := NewLinear(0, 10).WithRange(0, 100)
	if got := s.Map(5); got != 50 {
		t.Errorf("Map(5) = %v; want 50", got)
	}

	// An inverted range flips the output.
	s = NewLinear(0, 10).WithRange(100, 0)
	if got := s.Map(2.5); got != 75 {
		t.Errorf("Map(2.5) = %v; want 75", got)
	}
}

func TestLinearMapReversed(t *testing.T) {
	s := NewLinear(10, 0)
	if got := s.Map(10); got != 0 {
		t.Errorf("Map(10) = %v; want 0", got)
	}
	if got := s.Map(0); got != 1 {
		t.Errorf("Map(0) = %v; want 1", got)
	}
}

func TestLinearMapAll(t *testing.T) {
	s := NewLinear(0, 4).WithRange(0, 8)
	got := MapAll(s.Map, []float64{0, 1, 2, 3, 4})
	want := []float64{0, 2, 4, 6, 8}
	if !eqSlice(got, want) {
		t.Errorf("MapAll = %v; want %v", got, want)
	}
}

func TestLinearTicks(t *testing.T) {
	s := NewLinear(0.3, 9.7)
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for _, typ := range []TickType{TickAll, TickMajor, TickMinor} {
		if got := s.Ticks(10, typ); !eqSlice(got, want) {
			t.Errorf("Ticks(10, %v) = %v; want %v", typ, got, want)
		}
	}
	if !s.IsMajor(3) {
		t.Errorf("IsMajor(3) = false; want true on a linear scale")
	}
}

func TestLinearNice(t *testing.T) {
	s := NewLinear(0.3, 9.7).WithRange(0, 640)
	n := s.Nice().(Linear)
	if lo, hi := n.Domain(); lo != 0 || hi != 10 {
		t.Errorf("Nice domain = [%v, %v]; want [0, 10]", lo, hi)
	}
	// The receiver is unchanged and the range is preserved.
	if lo, hi := s.Domain(); lo != 0.3 || hi != 9.7 {
		t.Errorf("Nice mutated the receiver: [%v, %v]", lo, hi)
	}
	if got := n.Map(5); got != 320 {
		t.Errorf("nice Map(5) = %v; want 320", got)
	}

	// Nice is idempotent.
	n2 := n.Nice().(Linear)
	if n2 != n {
		t.Errorf("second Nice changed the scale: %v vs %v", n2, n)
	}
}

func TestPower(t *testing.T) {
	s := NewPower(0, 100, 0.5)
	if got := s.Map(25); got != 0.5 {
		t.Errorf("Map(25) = %v; want 0.5", got)
	}
	sr := s.WithRange(0, 10)
	if got := sr.Map(25); got != 5 {
		t.Errorf("Map(25) with range = %v; want 5", got)
	}
	if got := NewPower(0.3, 9.7, 0.5).Nice().(Power).Map(100); math.Abs(got-math.Sqrt(10)) > 1e-12 {
		t.Errorf("nice power Map(100) = %v; want sqrt(10)", got)
	}
}
