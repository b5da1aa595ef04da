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

var complexCases = []TestCase{
	{
		Name: "mixed_lines_curves",
		Page: square(ir.Path{Commands: mixedLinesCurves(), Fill: &black}),
	},
	{
		Name: "stroked_mixed",
		Page: square(ir.Path{Commands: mixedLinesCurves(), Stroke: &black, StrokeWidth: 3}),
	},
	{
		Name: "glyph_like",
		Page: square(ir.Path{Commands: glyphLikeShape(), Fill: &black}),
	},
	{
		Name: "translucent",
		Page: square(
			ir.Rect{X: 4, Y: 4, Width: 40, Height: 40, Fill: &red},
			ir.GradientRect{
				X: 20, Y: 20, Width: 40, Height: 40,
				Stops: []ir.GradientStop{
					{Position: 0, Color: ir.Color{B: 255, A: 128}},
					{Position: 1, Color: ir.Color{B: 255, A: 128}},
				},
				Type: ir.LinearGradient{},
			},
		),
	},
	{
		Name: "slide",
		Page: page(320, 180,
			ir.GradientRect{
				Width: 320, Height: 180,
				Stops: []ir.GradientStop{
					{Position: 0, Color: ir.Color{R: 20, G: 40, B: 90, A: 255}},
					{Position: 1, Color: ir.Color{R: 90, G: 140, B: 220, A: 255}},
				},
				Type: ir.LinearGradient{Angle: 0.3},
			},
			ir.Rect{X: 20, Y: 20, Width: 280, Height: 40, Fill: ptr(ir.White)},
			ir.Text{X: 30, Y: 30, Width: 260, Text: "Quarterly Report", Style: ir.FontStyle{
				FontName: ir.DefaultFontName, Size: 20, Bold: true, Color: black,
			}},
			ir.Ellipse{CX: 260, CY: 120, RX: 40, RY: 30, Fill: &yellow, Stroke: ptr(ir.White), StrokeWidth: 3},
			ir.Path{Commands: fivePointStar(80, 120, 35), Fill: &red, Stroke: &black, StrokeWidth: 1},
			ir.Line{X1: 20, Y1: 170, X2: 300, Y2: 170, Width: 2, Color: ir.White},
		),
	},
}

// mixedLinesCurves builds a path combining line segments and Bézier
// curves.
func mixedLinesCurves() []ir.PathCommand {
	return []ir.PathCommand{
		ir.MoveTo{X: 10, Y: 50},
		ir.LineTo{X: 20, Y: 30},
		ir.QuadTo{CX: 32, CY: 10, X: 44, Y: 30},
		ir.LineTo{X: 54, Y: 50},
		ir.CubicTo{C1X: 48, C1Y: 60, C2X: 16, C2Y: 60, X: 10, Y: 50},
		ir.Close{},
	}
}

// glyphLikeShape builds a shape similar to a lowercase 'a': a bowl with
// a counter and a stem.
func glyphLikeShape() []ir.PathCommand {
	const cx, cy = 32.0, 38.0
	return join(
		circle(cx, cy, 18, false),
		circle(cx, cy, 8, true),
		ir.RectPath(cx+12, 10, 6, 46),
	)
}
