// seehuhn.de/go/docrender - convert documents to PDF and page images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"

	"seehuhn.de/go/docrender/ir"
)

// Alpha thresholds for image compositing.
const (
	opaqueAlpha      = 0.99
	transparentAlpha = 0.01
)

// minCoverage is the smallest glyph or stroke coverage which changes a
// pixel.
const minCoverage = 0.01

// canvas is the RGBA8 pixel buffer of one page.
type canvas struct {
	img  *image.NRGBA
	w, h int
}

func newCanvas(w, h int, bg ir.Color) *canvas {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
	return &canvas{img: img, w: w, h: h}
}

func (c *canvas) offset(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, false
	}
	return y*c.img.Stride + 4*x, true
}

// set overwrites a pixel.  Coordinates outside the canvas are ignored.
func (c *canvas) set(x, y int, col ir.Color) {
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	p := c.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = col.R, col.G, col.B, col.A
}

// fillRect overwrites the pixels in [x0, x1) × [y0, y1).
func (c *canvas) fillRect(x0, y0, x1, y1 int, col ir.Color) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.w), min(y1, c.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, col)
		}
	}
}

// blend mixes col into a pixel with weight a in [0, 1] and makes the
// pixel opaque.
func (c *canvas) blend(x, y int, col ir.Color, a float64) {
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = mix(p[0], col.R, a)
	p[1] = mix(p[1], col.G, a)
	p[2] = mix(p[2], col.B, a)
	p[3] = 255
}

// composite draws a source pixel with its own alpha: nearly opaque
// pixels are copied, nearly transparent pixels are skipped and the rest
// is blended.
func (c *canvas) composite(x, y int, r, g, b, a uint8) {
	alpha := float64(a) / 255
	switch {
	case alpha > opaqueAlpha:
		c.set(x, y, ir.Color{R: r, G: g, B: b, A: 255})
	case alpha > transparentAlpha:
		c.blend(x, y, ir.Color{R: r, G: g, B: b}, alpha)
	}
}

// cover draws col with the given coverage in [0, 1].  The alpha channel
// of col scales the coverage.
func (c *canvas) cover(x, y int, col ir.Color, coverage float64) {
	a := coverage * float64(col.A) / 255
	if a < minCoverage {
		return
	}
	i, ok := c.offset(x, y)
	if !ok {
		return
	}
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = mix(p[0], col.R, a)
	p[1] = mix(p[1], col.G, a)
	p[2] = mix(p[2], col.B, a)
	p[3] = mix(p[3], 255, a)
}

// coverRow returns an emit function for the coverage rasterizer which
// paints col onto the canvas.
func (c *canvas) coverRow(col ir.Color) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		for i, v := range coverage {
			c.cover(xMin+i, y, col, float64(v))
		}
	}
}

// mix returns dst*(1-a) + src*a, truncated like a float to integer
// conversion.
func mix(dst, src uint8, a float64) uint8 {
	v := float64(dst)*(1-a) + float64(src)*a
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
