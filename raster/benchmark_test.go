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
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/ir"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// addCircle appends a circle made of four cubic Bézier curves.
func addCircle(d *pathData, cx, cy, r float64, clockwise bool) {
	k := kappa * r
	s := 1.0
	if clockwise {
		s = -1
	}
	p := func(x, y float64) vec.Vec2 { return vec.Vec2{X: cx + x, Y: cy + s*y} }
	d.MoveTo(p(0, -r))
	d.CubeTo(p(k, -r), p(r, -k), p(r, 0))
	d.CubeTo(p(r, k), p(k, r), p(0, r))
	d.CubeTo(p(-k, r), p(-r, k), p(-r, 0))
	d.CubeTo(p(-r, -k), p(-k, -r), p(0, -r))
	d.Close()
}

func addCircleToVector(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	k := float32(kappa) * r
	s := float32(1)
	if clockwise {
		s = -1
	}
	z.MoveTo(cx, cy-s*r)
	z.CubeTo(cx+k, cy-s*r, cx+r, cy-s*k, cx+r, cy)
	z.CubeTo(cx+r, cy+s*k, cx+k, cy+s*r, cx, cy+s*r)
	z.CubeTo(cx-k, cy+s*r, cx-r, cy+s*k, cx-r, cy)
	z.CubeTo(cx-r, cy-s*k, cx-k, cy-s*r, cx, cy-s*r)
	z.ClosePath()
}

// BenchmarkCoverageO fills an "O" shape with the coverage rasterizer.
func BenchmarkCoverageO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := newCoverageRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := float64(size) / 2
			o := &pathData{}
			addCircle(o, c, c, float64(size)*0.45, false)
			addCircle(o, c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				r.reset(clip)
				r.fill(o.Iter(), evenOdd, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, v := range coverage {
						row[i] = uint8(v * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with x/image/vector, for
// comparison.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			c := float32(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				addCircleToVector(z, c, c, float32(size)*0.45, false)
				addCircleToVector(z, c, c, float32(size)*0.30, true)
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkRenderPage(b *testing.B) {
	fm := fonts.NewManager("Go", goregular.TTF)
	doc := ir.FromTextLines([]string{
		"The quick brown fox jumps over the lazy dog.",
		"Pack my box with five dozen liquor jugs.",
	}, ir.DefaultFontStyle())
	page := &doc.Pages[0]
	page.Add(
		ir.Ellipse{CX: 300, CY: 400, RX: 100, RY: 60, Fill: &blue, Stroke: &ir.Black, StrokeWidth: 3},
		ir.Path{Commands: ir.RectPath(100, 500, 200, 100), Fill: &red},
	)
	cfg := DefaultConfig()

	b.ReportAllocs()
	for b.Loop() {
		RenderPageImage(page, cfg, fm)
	}
}
