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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/ir"
)

// maxLineSteps bounds the number of pixels visited when drawing a thin
// line, so that extreme coordinates cannot stall rendering.
const maxLineSteps = 100000

// pixelSpan converts the device interval [lo, hi) into a range of pixel
// indices within [0, limit).  Pixels are addressed by their top-left
// corner.
func pixelSpan(lo, hi float64, limit int) (int, int) {
	a := floorInt(max(lo, 0))
	b := min(floorInt(hi), limit)
	return a, b
}

// truncInt converts x to an integer, rounding towards zero.  The result
// is clamped like for floorInt.
func truncInt(x float64) int {
	return floorInt(math.Trunc(x))
}

// wide reports whether a stroke of width w points is drawn as an outline
// instead of a single pixel line.
func (pr *pageRenderer) wide(w float64) bool {
	return w*pr.scale > 1
}

// strokeOutline draws the stroke of p, given in points, using the
// coverage rasterizer.
func (pr *pageRenderer) strokeOutline(p path.Path, width float64, col ir.Color) {
	r := pr.coverage
	r.reset(pr.clip)
	r.ctm = matrix.Scale(pr.scale, pr.scale)
	r.width = width
	r.cap = pr.cfg.LineCap
	r.join = pr.cfg.LineJoin
	r.stroke(p, pr.canvas.coverRow(col))
}

func (pr *pageRenderer) drawRect(e ir.Rect) {
	s := pr.scale
	x, y, w, h := e.X*s, e.Y*s, e.Width*s, e.Height*s

	if e.Fill != nil {
		x0, x1 := pixelSpan(x, x+w, pr.canvas.w)
		y0, y1 := pixelSpan(y, y+h, pr.canvas.h)
		pr.canvas.fillRect(x0, y0, x1, y1, *e.Fill)
	}
	if e.Stroke == nil {
		return
	}

	if pr.wide(e.StrokeWidth) {
		p := (&pathData{}).
			MoveTo(vec.Vec2{X: e.X, Y: e.Y}).
			LineTo(vec.Vec2{X: e.X + e.Width, Y: e.Y}).
			LineTo(vec.Vec2{X: e.X + e.Width, Y: e.Y + e.Height}).
			LineTo(vec.Vec2{X: e.X, Y: e.Y + e.Height}).
			Close()
		pr.strokeOutline(p.Iter(), e.StrokeWidth, *e.Stroke)
		return
	}
	pr.strokeRectThin(x, y, w, h, *e.Stroke)
}

// strokeRectThin draws the one pixel wide border of a device rectangle.
func (pr *pageRenderer) strokeRectThin(x, y, w, h float64, col ir.Color) {
	c := pr.canvas
	x0, x1 := pixelSpan(x, x+w, c.w-1)
	y0, y1 := pixelSpan(y, y+h, c.h-1)
	for px := x0; px <= x1; px++ {
		c.set(px, y0, col)
		c.set(px, y1, col)
	}
	for py := y0; py <= y1; py++ {
		c.set(x0, py, col)
		c.set(x1, py, col)
	}
}

func (pr *pageRenderer) drawLine(e ir.Line) {
	if pr.wide(e.Width) {
		p := (&pathData{}).
			MoveTo(vec.Vec2{X: e.X1, Y: e.Y1}).
			LineTo(vec.Vec2{X: e.X2, Y: e.Y2})
		pr.strokeOutline(p.Iter(), e.Width, e.Color)
		return
	}
	s := pr.scale
	pr.lineThin(e.X1*s, e.Y1*s, e.X2*s, e.Y2*s, e.Color)
}

// lineThin draws a single pixel line using Bresenham's algorithm.
func (pr *pageRenderer) lineThin(x1, y1, x2, y2 float64, col ir.Color) {
	x, y := truncInt(x1), truncInt(y1)
	endX, endY := truncInt(x2), truncInt(y2)
	dx := truncInt(math.Abs(x2 - x1))
	dy := -truncInt(math.Abs(y2 - y1))
	sx, sy := 1, 1
	if !(x1 < x2) {
		sx = -1
	}
	if !(y1 < y2) {
		sy = -1
	}

	steps := min(dx-dy+2, maxLineSteps)
	err := dx + dy
	for range steps {
		pr.canvas.set(x, y, col)
		if x == endX && y == endY {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (pr *pageRenderer) drawEllipse(e ir.Ellipse) {
	s := pr.scale
	cx, cy, rx, ry := e.CX*s, e.CY*s, e.RX*s, e.RY*s
	if e.Fill != nil {
		pr.forEllipse(cx, cy, rx, ry, func(x, y int) {
			pr.canvas.set(x, y, *e.Fill)
		})
	}
	if e.Stroke != nil {
		pr.ellipseRing(cx, cy, rx, ry, e.StrokeWidth*s, *e.Stroke)
	}
}

// insideEllipse reports whether (px, py) lies in the ellipse.
func insideEllipse(px, py, cx, cy, rx, ry float64) bool {
	dx := (px - cx) / rx
	dy := (py - cy) / ry
	return dx*dx+dy*dy <= 1
}

// forEllipse calls fn for every pixel inside the device space ellipse.
func (pr *pageRenderer) forEllipse(cx, cy, rx, ry float64, fn func(x, y int)) {
	x0, x1 := pixelSpan(cx-rx, cx+rx, pr.canvas.w)
	y0, y1 := pixelSpan(cy-ry, cy+ry, pr.canvas.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			if insideEllipse(float64(px), float64(py), cx, cy, rx, ry) {
				fn(px, py)
			}
		}
	}
}

// ellipseRing draws the pixels between the ellipse grown and shrunk by
// half the stroke width.
func (pr *pageRenderer) ellipseRing(cx, cy, rx, ry, sw float64, col ir.Color) {
	d := sw / 2
	orx, ory := rx+d, ry+d
	irx, iry := max(rx-d, 0), max(ry-d, 0)
	pr.forEllipse(cx, cy, orx, ory, func(x, y int) {
		if !insideEllipse(float64(x), float64(y), cx, cy, irx, iry) {
			pr.canvas.set(x, y, col)
		}
	})
}

func (pr *pageRenderer) drawGradientRect(e ir.GradientRect) {
	s := pr.scale
	x, y, w, h := e.X*s, e.Y*s, e.Width*s, e.Height*s
	if len(e.Stops) == 0 || !(w > 0) || !(h > 0) {
		return
	}

	var param func(px, py float64) float64
	switch g := e.Type.(type) {
	case ir.LinearGradient:
		sin, cos := math.Sincos(g.Angle)
		param = func(px, py float64) float64 {
			t := (px-x)/w*sin + (py-y)/h*cos
			return min(max(t, 0), 1)
		}
	default:
		cx, cy := x+w/2, y+h/2
		param = func(px, py float64) float64 {
			dx := (px - cx) / (w / 2)
			dy := (py - cy) / (h / 2)
			return min(math.Sqrt(dx*dx+dy*dy), 1)
		}
	}

	x0, x1 := pixelSpan(x, x+w, pr.canvas.w)
	y0, y1 := pixelSpan(y, y+h, pr.canvas.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			col := ir.StopColor(e.Stops, param(float64(px), float64(py)))
			pr.canvas.blend(px, py, col, float64(col.A)/255)
		}
	}
}
