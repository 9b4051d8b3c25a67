// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"
)

func render(f func(c *Canvas)) string {
	var buf bytes.Buffer
	c := New(&buf, 100, 50)
	f(c)
	if err := c.Done(); err != nil {
		panic(err)
	}
	return buf.String()
}

func TestDocument(t *testing.T) {
	got := render(func(c *Canvas) {})
	if !strings.HasPrefix(got, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"100\" height=\"50\"") {
		t.Errorf("bad document start: %q", got)
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Errorf("bad document end: %q", got)
	}
}

func TestPath(t *testing.T) {
	got := render(func(c *Canvas) {
		c.SetStroke(color.Black)
		c.MoveTo(1, 2).LineToRel(3, 0).LineToRel(0, 4).LineTo(0, 0).Stroke()
	})
	if !strings.Contains(got, "<path d=\"M1 2h3v4L0 0\" fill=\"none\" style=\"stroke:rgb(0,0,0)\"/>") {
		t.Errorf("bad path: %q", got)
	}
}

func TestRect(t *testing.T) {
	got := render(func(c *Canvas) {
		c.SetFill(color.NRGBA{255, 0, 0, 255})
		c.Rect(1, 1, 2, 3).Fill()
	})
	if !strings.Contains(got, "<path d=\"M1 1h2v3h-2z\" style=\"fill:rgb(255,0,0)\"/>") {
		t.Errorf("bad rect: %q", got)
	}
}

func TestSegments(t *testing.T) {
	got := render(func(c *Canvas) {
		c.VSegments([]float64{1, 2}, 10, 0).Stroke()
	})
	if !strings.Contains(got, "d=\"M1 10v-10M2 10v-10\"") {
		t.Errorf("bad segments: %q", got)
	}
}

func TestTextEscaping(t *testing.T) {
	got := render(func(c *Canvas) {
		c.Text(5, 5, TextOpts{Anchor: AnchorMiddle}, "a<b&c")
	})
	if !strings.Contains(got, ">a&lt;b&amp;c</text>") {
		t.Errorf("text not escaped: %q", got)
	}
	if !strings.Contains(got, "text-anchor=\"middle\"") {
		t.Errorf("anchor missing: %q", got)
	}
}

func TestDefUse(t *testing.T) {
	got := render(func(c *Canvas) {
		ref := c.DefRaw("M-1 0h2")
		c.Use(ref, 10, 20, 2)
	})
	if !strings.Contains(got, "<defs><path d=\"M-1 0h2\" id=\"i0\"/></defs>") {
		t.Errorf("bad defs: %q", got)
	}
	if !strings.Contains(got, "<use href=\"#i0\" transform=\"translate(10 20) scale(2)\"") {
		t.Errorf("bad use: %q", got)
	}
}

func TestTranslucentColor(t *testing.T) {
	got := render(func(c *Canvas) {
		c.SetFill(color.NRGBA{0, 0, 255, 128})
		c.Rect(0, 0, 1, 1).Fill()
	})
	if !strings.Contains(got, "rgba(0,0,255,0.50") {
		t.Errorf("bad translucent fill: %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteError(t *testing.T) {
	c := New(failWriter{}, 10, 10)
	c.MoveTo(0, 0).LineToRel(1, 1).Stroke()
	if err := c.Done(); err == nil {
		t.Errorf("Done did not report the write error")
	}
}
