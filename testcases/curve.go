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

import "seehuhn.de/go/docrender/ir"

var curveCases = []TestCase{
	{
		Name: "quadratic",
		Page: square(ir.Path{Commands: quadraticCurve(10, 50, 32, 10, 54, 50), Fill: &black}),
	},
	{
		Name: "quadratic_deep",
		Page: square(ir.Path{Commands: quadraticCurve(10, 50, 32, 5, 54, 50), Fill: &black}),
	},
	{
		Name: "quadratic_below",
		Page: square(ir.Path{Commands: quadraticCurve(10, 20, 32, 55, 54, 20), Fill: &black}),
	},
	{
		Name: "cubic",
		Page: square(ir.Path{Commands: cubicCurve(10, 50, 20, 10, 44, 10, 54, 50), Fill: &black}),
	},
	{
		Name: "cubic_s_shape",
		Page: square(ir.Path{Commands: cubicCurve(10, 32, 25, 0, 39, 64, 54, 32), Stroke: &black, StrokeWidth: 3}),
	},
	{
		Name: "circle",
		Page: square(ir.Path{Commands: circle(32, 32, 25, false), Fill: &blue}),
	},
	{
		Name: "circle_outline",
		Page: square(ir.Path{Commands: circle(32, 32, 25, true), Stroke: &red, StrokeWidth: 2}),
	},
	{
		// arcs are drawn along their chord
		Name: "arc",
		Page: square(ir.Path{
			Commands: []ir.PathCommand{
				ir.MoveTo{X: 10, Y: 50},
				ir.ArcTo{RX: 22, RY: 22, Sweep: true, X: 54, Y: 50},
				ir.LineTo{X: 32, Y: 10},
				ir.Close{},
			},
			Fill: &green,
		}),
	},
}

// quadraticCurve builds a closed shape bounded by a quadratic Bézier
// curve and its chord.
func quadraticCurve(x0, y0, cx, cy, x1, y1 float64) []ir.PathCommand {
	return []ir.PathCommand{
		ir.MoveTo{X: x0, Y: y0},
		ir.QuadTo{CX: cx, CY: cy, X: x1, Y: y1},
		ir.Close{},
	}
}

// cubicCurve builds a closed shape bounded by a cubic Bézier curve and
// its chord.
func cubicCurve(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64) []ir.PathCommand {
	return []ir.PathCommand{
		ir.MoveTo{X: x0, Y: y0},
		ir.CubicTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x1, Y: y1},
		ir.Close{},
	}
}
