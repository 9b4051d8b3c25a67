// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"io/ioutil"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// A Labeler measures label text so layout can reserve margins for
// axis labels. The zero value estimates from the font size alone;
// LoadFont gives exact metrics from a TTF file.
type Labeler struct {
	face font.Face
	size float64
}

// NewLabeler returns a metrics-free Labeler for the given font size
// in pixels.
func NewLabeler(size float64) *Labeler {
	return &Labeler{size: size}
}

// LoadFont returns a Labeler with exact metrics from the TTF file at
// path, at the given size in pixels.
//
// There is no fontconfig equivalent for Go, so the caller has to know
// where a usable TTF lives.
func LoadFont(path string, size float64) (*Labeler, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: size})
	return &Labeler{face: face, size: size}, nil
}

// Width returns the rendered width of s in pixels.
func (l *Labeler) Width(s string) float64 {
	if l.face == nil {
		// Roughly right for digit-heavy axis labels in common
		// sans fonts.
		return 0.6 * l.size * float64(len(s))
	}
	return float64(font.MeasureString(l.face, s)) / 64
}

// Height returns the line height in pixels.
func (l *Labeler) Height() float64 {
	if l.face == nil {
		return 1.2 * l.size
	}
	return float64(l.face.Metrics().Height) / 64
}

// MaxWidth returns the widest of the given labels.
func (l *Labeler) MaxWidth(labels []string) float64 {
	w := 0.0
	for _, s := range labels {
		if lw := l.Width(s); lw > w {
			w = lw
		}
	}
	return w
}
