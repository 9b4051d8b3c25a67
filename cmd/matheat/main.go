// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command matheat renders a CSV matrix of numbers as a PNG heat map.
//
// Each input row becomes one row of cells, colored through a
// perceptually uniform palette. A color key with tick labels is drawn
// on the right when a TTF font is supplied:
//
//	matheat -i matrix.csv -p mako -font /usr/share/fonts/truetype/dejavu/DejaVuSans.ttf -o out.png
package main

import (
	"encoding/csv"
	"flag"
	"image"
	"image/draw"
	"image/png"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strconv"

	"github.com/golang/freetype"

	"github.com/aclements/go-plot/scale"
)

const (
	keyWidth = 16
	keyGap   = 8
	fontSize = 12
)

func main() {
	var (
		flagInput   = flag.String("i", "-", "read CSV matrix from `file`, or - for stdin")
		flagOutput  = flag.String("o", "heat.png", "write PNG to `file`")
		flagPalette = flag.String("p", "viridis", "color `palette`")
		flagCell    = flag.Int("cell", 8, "cell size in pixels")
		flagMin     = flag.Float64("min", 0, "domain lower bound (ignored with -autoscale)")
		flagMax     = flag.Float64("max", 1, "domain upper bound (ignored with -autoscale)")
		flagAuto    = flag.Bool("autoscale", false, "span the palette over the observed values")
		flagFont    = flag.String("font", "", "draw key labels with the TTF font at `path`")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	m, err := readMatrix(*flagInput)
	if err != nil {
		log.Fatal(err)
	}

	lo, hi := *flagMin, *flagMax
	if *flagAuto {
		lo, hi = matrixSpan(m)
	}
	cs, err := scale.NewColorName(lo, hi, *flagPalette)
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := len(m), len(m[0])
	cell := *flagCell
	labelSpace := 0
	if *flagFont != "" {
		labelSpace = 40
	}
	img := image.NewNRGBA(image.Rect(0, 0, cols*cell+keyGap+keyWidth+labelSpace, rows*cell))
	draw.Draw(img, img.Bounds(), image.White, image.ZP, draw.Over)

	// Cells.
	for y, row := range m {
		if len(row) != cols {
			log.Fatalf("row %d has %d columns; want %d", y+1, len(row), cols)
		}
		for x, v := range row {
			r := image.Rect(x*cell, y*cell, (x+1)*cell, (y+1)*cell)
			draw.Draw(img, r, image.NewUniform(cs.At(v)), image.ZP, draw.Src)
		}
	}

	// Color key.
	keyLeft := cols*cell + keyGap
	keyScale := scale.NewLinear(0, float64(rows*cell-1)).WithRange(hi, lo)
	for y := 0; y < rows*cell; y++ {
		r := image.Rect(keyLeft, y, keyLeft+keyWidth, y+1)
		draw.Draw(img, r, image.NewUniform(cs.At(keyScale.Map(float64(y)))), image.ZP, draw.Src)
	}

	if *flagFont != "" {
		if err := drawKeyLabels(img, cs, keyLeft+keyWidth+4, rows*cell, *flagFont); err != nil {
			log.Fatal(err)
		}
	}

	f, err := os.Create(*flagOutput)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

// drawKeyLabels writes a label beside the key for each major tick of
// the color scale.
func drawKeyLabels(img *image.NRGBA, cs scale.Color, left, height int, fontPath string) error {
	fontData, err := ioutil.ReadFile(fontPath)
	if err != nil {
		return err
	}
	font, err := freetype.ParseFont(fontData)
	if err != nil {
		return err
	}
	ctx := freetype.NewContext()
	ctx.SetFontSize(fontSize)
	ctx.SetSrc(image.Black)
	ctx.SetFont(font)
	ctx.SetDst(img)
	ctx.SetClip(img.Bounds())

	for _, t := range cs.Ticks(5, scale.TickAll) {
		u := cs.Map(t)
		if u < 0 || u > 1 {
			continue
		}
		y := int((1 - u) * float64(height-1))
		if y < fontSize {
			y = fontSize
		}
		_, err := ctx.DrawString(strconv.FormatFloat(t, 'g', -1, 64), freetype.Pt(left, y))
		if err != nil {
			return err
		}
	}
	return nil
}

func readMatrix(path string) ([][]float64, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	var m [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(rec))
		for i, field := range rec {
			row[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, err
			}
		}
		m = append(m, row)
	}
	if len(m) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	return m, nil
}

func matrixSpan(m [][]float64) (lo, hi float64) {
	lo, hi = m[0][0], m[0][0]
	for _, row := range m {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return
}
