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

// Package testcases holds example pages for checking the renderers.
//
// Every case is a single page with a few elements that exercise one
// aspect of rendering.  Cases are grouped into categories, and names
// are unique within a category.
package testcases

import (
	"math"

	"seehuhn.de/go/docrender/ir"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name string  // lowercase a-z, 0-9 and _ only
	Page ir.Page // the page to render
}

// Colors used by the test cases.
var (
	black  = ir.Black
	red    = ir.Color{R: 220, G: 30, B: 30, A: 255}
	green  = ir.Color{R: 30, G: 160, B: 60, A: 255}
	blue   = ir.Color{R: 30, G: 60, B: 200, A: 255}
	yellow = ir.Color{R: 240, G: 200, B: 20, A: 255}
	gray   = ir.Color{R: 128, G: 128, B: 128, A: 255}
)

// page builds a w×h point page with the given elements.
func page(w, h float64, elems ...ir.Element) ir.Page {
	return ir.Page{Width: w, Height: h, Elements: elems}
}

// square returns a 64×64 point page, the size used by most cases.
func square(elems ...ir.Element) ir.Page {
	return page(64, 64, elems...)
}

// polygon builds a closed path through the given points.
func polygon(xy ...float64) []ir.PathCommand {
	cmds := []ir.PathCommand{ir.MoveTo{X: xy[0], Y: xy[1]}}
	for i := 2; i+1 < len(xy); i += 2 {
		cmds = append(cmds, ir.LineTo{X: xy[i], Y: xy[i+1]})
	}
	return append(cmds, ir.Close{})
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) []ir.PathCommand {
	return polygon(x1, y1, x2, y2, x3, y3)
}

// fivePointStar builds a five-pointed, self-intersecting star.
func fivePointStar(cx, cy, r float64) []ir.PathCommand {
	var pts [5][2]float64
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	// 0 -> 2 -> 4 -> 1 -> 3 -> 0
	var xy []float64
	for _, i := range []int{0, 2, 4, 1, 3} {
		xy = append(xy, pts[i][0], pts[i][1])
	}
	return polygon(xy...)
}

// circle builds a circle from four cubic Bézier curves.  The direction
// does not matter for the even-odd rule, but is kept for stroke joins.
func circle(cx, cy, r float64, clockwise bool) []ir.PathCommand {
	const kappa = 0.5522847498
	k := kappa * r
	s := 1.0
	if clockwise {
		s = -1
	}
	return []ir.PathCommand{
		ir.MoveTo{X: cx, Y: cy - s*r},
		ir.CubicTo{C1X: cx + k, C1Y: cy - s*r, C2X: cx + r, C2Y: cy - s*k, X: cx + r, Y: cy},
		ir.CubicTo{C1X: cx + r, C1Y: cy + s*k, C2X: cx + k, C2Y: cy + s*r, X: cx, Y: cy + s*r},
		ir.CubicTo{C1X: cx - k, C1Y: cy + s*r, C2X: cx - r, C2Y: cy + s*k, X: cx - r, Y: cy},
		ir.CubicTo{C1X: cx - r, C1Y: cy - s*k, C2X: cx - k, C2Y: cy - s*r, X: cx, Y: cy - s*r},
		ir.Close{},
	}
}

func ptr(c ir.Color) *ir.Color {
	return &c
}
