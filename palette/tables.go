// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "image/color"

// The built-in tables are control-point approximations of the
// matplotlib and seaborn perceptually uniform colormaps of the same
// names. Uniform sequential: rocket, mako, flare, crest, magma,
// viridis. Diverging: vlag, icefire.
var builtin = map[string]Continuous{
	"viridis": hexGradient(
		0x440154, 0x482878, 0x3e4989, 0x31688e, 0x26828e,
		0x1f9e89, 0x35b779, 0x6ece58, 0xb5de2b, 0xfde725,
	),
	"magma": hexGradient(
		0x000004, 0x180f3e, 0x451077, 0x721f81, 0x9f2f7f,
		0xcd4071, 0xf1605d, 0xfd9567, 0xfebb81, 0xfcfdbf,
	),
	"rocket": hexGradient(
		0x03051a, 0x2e1e3b, 0x611f53, 0x93235f, 0xc42c59,
		0xe8514c, 0xf47e5a, 0xf8a37c, 0xf5c9a9, 0xfaebdd,
	),
	"mako": hexGradient(
		0x0b0405, 0x2a1e3c, 0x403a75, 0x3f5e8d, 0x3d7d9e,
		0x3c9cad, 0x52bcab, 0x8bd9b8, 0xc8ecd0, 0xdef5e5,
	),
	"flare": hexGradient(
		0xeb9172, 0xe8855e, 0xe37651, 0xd9614c, 0xca4e52,
		0xb43f5c, 0x9c3563, 0x7f2e66, 0x632963, 0x48245a,
	),
	"crest": hexGradient(
		0xa5cd90, 0x82c093, 0x62b294, 0x4aa294, 0x3b9292,
		0x31818e, 0x2d6f8a, 0x2b5d85, 0x2a4a7e, 0x273a73,
	),
	"vlag": hexGradient(
		0x2369bd, 0x5b8bc8, 0x8eadd4, 0xc0d0e2, 0xf3f3f3,
		0xe3c0bb, 0xd18d86, 0xbd6156, 0xa9373b,
	),
	"icefire": hexGradient(
		0xbde7db, 0x77c6e0, 0x55a1da, 0x4967bd, 0x383472,
		0x1e1e30, 0x47241f, 0x8b2e23, 0xca5125, 0xf29162,
		0xf9dcb9,
	),
}

func hexGradient(rgbs ...uint32) Gradient {
	colors := make([]color.RGBA, len(rgbs))
	for i, rgb := range rgbs {
		colors[i] = color.RGBA{
			R: uint8(rgb >> 16),
			G: uint8(rgb >> 8),
			B: uint8(rgb),
			A: 0xff,
		}
	}
	return Gradient{Colors: colors}
}
