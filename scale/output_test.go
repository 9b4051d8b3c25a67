// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "testing"

func TestOutput(t *testing.T) {
	s := NewOutput(100, 200)

	if got, ok := s.Map(0.5); !ok || got != 150 {
		t.Errorf("Map(0.5) = %v, %v; want 150, true", got, ok)
	}
	// The default mode crops out-of-interval positions.
	if _, ok := s.Map(1.5); ok {
		t.Errorf("Map(1.5) = ok; want cropped")
	}

	if got, ok := s.Clamp().Map(1.5); !ok || got != 200 {
		t.Errorf("clamped Map(1.5) = %v, %v; want 200, true", got, ok)
	}
	if got, ok := s.Unclamp().Map(-0.5); !ok || got != 50 {
		t.Errorf("unclamped Map(-0.5) = %v, %v; want 50, true", got, ok)
	}

	// An inverted interval flips the output.
	inv := NewOutput(200, 100)
	if got, ok := inv.Map(0.25); !ok || got != 175 {
		t.Errorf("inverted Map(0.25) = %v, %v; want 175, true", got, ok)
	}
}

func TestSpan(t *testing.T) {
	lo, hi := Span([]float64{3, -1, 7, 2}, false)
	if lo != -1 || hi != 7 {
		t.Errorf("Span = %v, %v; want -1, 7", lo, hi)
	}
	lo, hi = Span([]float64{3, 5, 7}, true)
	if lo != 0 || hi != 7 {
		t.Errorf("Span from zero = %v, %v; want 0, 7", lo, hi)
	}
}
