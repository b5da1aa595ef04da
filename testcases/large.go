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

// largeCases contains pages which are large or have coordinates far
// outside the page.
var largeCases = []TestCase{
	{
		Name: "large_rectangle",
		Page: page(512, 512, ir.Path{Commands: ir.RectPath(50, 50, 412, 412), Fill: &black}),
	},
	{
		Name: "large_concentric",
		Page: page(512, 512, ir.Path{
			Commands: join(ir.RectPath(56, 56, 400, 400), ir.RectPath(156, 156, 200, 200)),
			Fill:     &blue,
		}),
	},
	{
		Name: "large_diamond",
		Page: page(512, 512, ir.Path{Commands: polygon(256, 76, 436, 256, 256, 436, 76, 256), Fill: &green}),
	},
	{
		Name: "large_grid",
		Page: page(512, 512, ir.Path{Commands: rectangleGrid(8, 8, 512, 512, 4), Fill: &black}),
	},
	{
		Name: "large_clipped",
		Page: page(512, 512,
			ir.Rect{X: -100, Y: 100, Width: 712, Height: 300, Fill: &red},
			ir.Ellipse{CX: 256, CY: 256, RX: 400, RY: 100, Stroke: &black, StrokeWidth: 3},
		),
	},
	{
		Name: "far_line",
		Page: page(512, 512,
			ir.Line{X1: 0, Y1: 0, X2: 1e7, Y2: 1e7, Width: 1, Color: black},
			ir.Line{X1: 512, Y1: 0, X2: -1e7, Y2: 1e7, Width: 4, Color: blue},
		),
	},
	{
		Name: "far_path",
		Page: page(512, 512, ir.Path{
			Commands: triangle(-1e9, 500, 256, -1e9, 1e9, 500),
			Fill:     &gray,
		}),
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols int, width, height, gap float64) []ir.PathCommand {
	cellW := width / float64(cols)
	cellH := height / float64(rows)

	var res []ir.PathCommand
	for row := range rows {
		for col := range cols {
			x := float64(col)*cellW + gap
			y := float64(row)*cellH + gap
			res = append(res, ir.RectPath(x, y, cellW-2*gap, cellH-2*gap)...)
		}
	}
	return res
}
