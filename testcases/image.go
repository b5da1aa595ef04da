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

package testcases

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"seehuhn.de/go/docrender/ir"
)

// checkerboard returns a PNG image with n×n squares of four colors.  The
// bottom-right square is transparent.
func checkerboard(n int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, 2*n, 2*n))
	colors := [2][2]color.NRGBA{
		{{R: 220, G: 30, B: 30, A: 255}, {R: 30, G: 160, B: 60, A: 255}},
		{{R: 30, G: 60, B: 200, A: 128}, {}},
	}
	for y := range 2 * n {
		for x := range 2 * n {
			img.SetNRGBA(x, y, colors[y/n][x/n])
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// grayRamp returns a JPEG image with a horizontal gray ramp.
func grayRamp(w, h int) []byte {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 255 / max(w-1, 1))})
		}
	}
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

var (
	checkerPNG = checkerboard(4)
	rampJPEG   = grayRamp(32, 8)
	garbage    = []byte("this is not an image")
)

var imageCases = []TestCase{
	{
		Name: "png_scaled",
		Page: square(ir.Image{X: 8, Y: 8, Width: 48, Height: 48, Data: checkerPNG, MimeType: "image/png"}),
	},
	{
		Name: "png_over_background",
		Page: square(
			ir.Rect{X: 0, Y: 32, Width: 64, Height: 32, Fill: &yellow},
			ir.Image{X: 8, Y: 8, Width: 48, Height: 48, Data: checkerPNG, MimeType: "image/png"},
		),
	},
	{
		Name: "jpeg_gray",
		Page: square(ir.Image{X: 4, Y: 24, Width: 56, Height: 16, Data: rampJPEG, MimeType: "image/jpeg"}),
	},
	{
		Name: "placeholder",
		Page: page(128, 64, ir.Image{X: 8, Y: 8, Width: 112, Height: 48, Data: garbage}),
	},
	{
		Name: "ellipse_image",
		Page: square(ir.EllipseImage{CX: 32, CY: 32, RX: 28, RY: 20, Data: checkerPNG, Stroke: &black, StrokeWidth: 2}),
	},
	{
		Name: "path_image",
		Page: square(ir.PathImage{Commands: fivePointStar(32, 34, 28), Data: checkerPNG, Stroke: &black, StrokeWidth: 1}),
	},
	{
		Name: "path_image_placeholder",
		Page: square(ir.PathImage{Commands: circle(32, 32, 24, false), Data: garbage}),
	},
}
