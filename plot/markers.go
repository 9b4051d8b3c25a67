// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "sort"

// markers holds marker glyph outlines as SVG path data, centered on
// the origin at unit size. The names and shapes follow the matplotlib
// marker conventions.
var markers = map[string]string{
	".": "M1.1 0A1.1 1.1 0 1 0 -1.1 0A1.1 1.1 0 1 0 1.1 0z",
	"o": "M3 0A3 3 0 1 0 -3 0A3 3 0 1 0 3 0z",
	"s": "M-2.5 -2.5h5v5h-5z",
	"D": "M0 -3.2L3.2 0L0 3.2L-3.2 0z",
	"^": "M0 -3.2L2.8 2.2L-2.8 2.2z",
	"v": "M0 3.2L2.8 -2.2L-2.8 -2.2z",
	"+": "M0 -3.2v6.4M-3.2 0h6.4",
	"x": "M-2.3 -2.3L2.3 2.3M-2.3 2.3L2.3 -2.3",
}

// MarkerNames returns the sorted names of the available scatter
// markers.
func MarkerNames() []string {
	names := make([]string, 0, len(markers))
	for name := range markers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
