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

var precisionCases = []TestCase{
	{
		Name: "subpixel_offset_00",
		Page: square(ir.Path{Commands: ir.RectPath(20, 20, 24, 24), Fill: &black}),
	},
	{
		Name: "subpixel_offset_25",
		Page: square(ir.Path{Commands: ir.RectPath(20.25, 20.25, 24, 24), Fill: &black}),
	},
	{
		Name: "subpixel_offset_50",
		Page: square(ir.Path{Commands: ir.RectPath(20.5, 20.5, 24, 24), Fill: &black}),
	},
	{
		Name: "subpixel_offset_75",
		Page: square(ir.Path{Commands: ir.RectPath(20.75, 20.75, 24, 24), Fill: &black}),
	},
	{
		Name: "rect_fractional",
		Page: square(ir.Rect{X: 10.6, Y: 10.4, Width: 20.7, Height: 20.2, Fill: &blue, Stroke: &black, StrokeWidth: 1}),
	},
	{
		Name: "thin_line_y_integer",
		Page: square(ir.Line{X1: 5, Y1: 10, X2: 59, Y2: 10, Width: 1, Color: black}),
	},
	{
		Name: "thin_line_y_half",
		Page: square(ir.Line{X1: 5, Y1: 10.5, X2: 59, Y2: 10.5, Width: 1, Color: black}),
	},
	{
		Name: "hairline",
		Page: square(ir.Line{X1: 5, Y1: 32, X2: 59, Y2: 33, Width: 0, Color: black}),
	},
	{
		Name: "tiny_shapes",
		Page: square(
			ir.Rect{X: 10, Y: 10, Width: 0.4, Height: 0.4, Fill: &black},
			ir.Ellipse{CX: 30, CY: 30, RX: 0.5, RY: 0.5, Fill: &black},
			ir.Path{Commands: triangle(40, 40, 40.3, 40, 40, 40.3), Fill: &black},
		),
	},
	{
		Name: "zero_size",
		Page: square(
			ir.Rect{X: 10, Y: 10, Fill: &black},
			ir.Ellipse{CX: 30, CY: 30, Fill: &black, Stroke: &black, StrokeWidth: 1},
			ir.GradientRect{X: 40, Y: 40, Stops: []ir.GradientStop{{Color: black}}},
		),
	},
}
