// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lineplot renders a line chart from a CSV file of x,y pairs
// as SVG.
//
// The input must have two numeric columns. A header row is skipped if
// its first field does not parse as a number. For example:
//
//	lineplot -i samples.csv -logy > samples.svg
//
// renders samples.csv with a logarithmic y axis.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/aclements/go-plot/plot"
	"github.com/aclements/go-plot/scale"
	"github.com/aclements/go-plot/svg"
)

func main() {
	var (
		flagInput  = flag.String("i", "-", "read CSV from `file`, or - for stdin")
		flagWidth  = flag.Float64("w", 640, "output width in pixels")
		flagHeight = flag.Float64("h", 480, "output height in pixels")
		flagLogY   = flag.Bool("logy", false, "logarithmic y axis")
		flagMarker = flag.String("marker", "", "overlay data points with this `marker` glyph")
		flagZero   = flag.Bool("zero", false, "start the y axis at zero")
		flagFont   = flag.String("font", "", "measure labels with the TTF font at `path`")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	xs, ys, err := readSeries(*flagInput)
	if err != nil {
		log.Fatal(err)
	}
	if len(xs) == 0 {
		log.Fatal("no data points")
	}

	xscale := scale.NewLinear(scale.Span(xs, false)).Nice()

	var yscale scale.Quantitative
	if *flagLogY {
		lo, hi := scale.Span(ys, false)
		ls, err := scale.NewLog(lo, hi, 10)
		if err != nil {
			log.Fatal(err)
		}
		yscale = ls.Nice()
	} else {
		yscale = scale.NewLinear(scale.Span(ys, *flagZero)).Nice()
	}

	labeler := plot.NewLabeler(10)
	if *flagFont != "" {
		labeler, err = plot.LoadFont(*flagFont, 10)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Reserve margins for the axis labels.
	yLabels := []string{}
	for _, t := range yscale.Ticks(10, scale.TickMajor) {
		yLabels = append(yLabels, fmt.Sprintf("%g", t))
	}
	marginLeft := labeler.MaxWidth(yLabels) + 15
	marginBottom := labeler.Height() + 15

	box := plot.Box{Left: 0, Top: 0, Width: *flagWidth, Height: *flagHeight}.
		Inset(marginLeft, 10, 10, marginBottom)

	c := svg.New(os.Stdout, *flagWidth, *flagHeight)
	plot.Grid(c, xscale, yscale, box, nil)
	plot.XAxis(c, xscale, box, plot.AxisOpts{})
	plot.YAxis(c, yscale, box, plot.AxisOpts{})
	plot.Line(c, xscale, yscale, xs, ys, box, nil)
	if *flagMarker != "" {
		err := plot.Scatter(c, xscale, yscale, xs, ys, box,
			plot.ScatterOpts{Marker: *flagMarker})
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := c.Done(); err != nil {
		log.Fatal(err)
	}
}

func readSeries(path string) (xs, ys []float64, err error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if row == 0 {
				// Header row.
				continue
			}
			return nil, nil, fmt.Errorf("row %d: bad number %q,%q", row+1, rec[0], rec[1])
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}
