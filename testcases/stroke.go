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

var strokeCases = []TestCase{
	{
		Name: "line_thin",
		Page: square(ir.Line{X1: 10, Y1: 32, X2: 54, Y2: 32, Width: 0.5, Color: black}),
	},
	{
		Name: "line_wide",
		Page: square(ir.Line{X1: 10, Y1: 32, X2: 54, Y2: 32, Width: 8, Color: black}),
	},
	{
		Name: "line_diagonal",
		Page: square(
			ir.Line{X1: 5, Y1: 5, X2: 59, Y2: 40, Width: 1, Color: red},
			ir.Line{X1: 5, Y1: 59, X2: 40, Y2: 5, Width: 4, Color: blue},
		),
	},
	{
		Name: "corner",
		Page: square(ir.Path{
			Commands: []ir.PathCommand{
				ir.MoveTo{X: 10, Y: 50},
				ir.LineTo{X: 32, Y: 14},
				ir.LineTo{X: 54, Y: 50},
			},
			Stroke:      &black,
			StrokeWidth: 6,
		}),
	},
	{
		Name: "rect_thin",
		Page: square(ir.Rect{X: 10, Y: 10, Width: 44, Height: 44, Stroke: &black, StrokeWidth: 1}),
	},
	{
		Name: "rect_wide",
		Page: square(ir.Rect{X: 10, Y: 10, Width: 44, Height: 44, Fill: &yellow, Stroke: &black, StrokeWidth: 5}),
	},
	{
		Name: "ellipse_ring",
		Page: square(ir.Ellipse{CX: 32, CY: 32, RX: 22, RY: 16, Stroke: &red, StrokeWidth: 4}),
	},
	{
		Name: "triangle_outline",
		Page: square(ir.Path{Commands: triangle(10, 50, 32, 10, 54, 50), Stroke: &blue, StrokeWidth: 1}),
	},
}
