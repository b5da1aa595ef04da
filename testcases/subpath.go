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

var subpathCases = []TestCase{
	{
		Name: "two_triangles",
		Page: square(ir.Path{Commands: twoTriangles(16, 48, 32, 12), Fill: &black}),
	},
	{
		Name: "overlapping_rects",
		Page: square(ir.Path{
			Commands: join(ir.RectPath(10, 10, 30, 30), ir.RectPath(24, 24, 30, 30)),
			Fill:     &black,
		}),
	},
	{
		Name: "ring",
		Page: square(ir.Path{
			Commands: join(circle(32, 32, 25, false), circle(32, 32, 12, true)),
			Fill:     &blue,
		}),
	},
	{
		Name: "square_hole",
		Page: square(ir.Path{
			Commands: join(ir.RectPath(8, 8, 48, 48), ir.RectPath(24, 24, 16, 16)),
			Fill:     &red,
			Stroke:   &black,
		}),
	},
	{
		Name: "multiple_rings",
		Page: page(128, 128, ir.Path{Commands: multipleRings(64, 64), Fill: &black}),
	},
	{
		// open subpaths are closed for filling
		Name: "implicit_close",
		Page: square(ir.Path{
			Commands: []ir.PathCommand{
				ir.MoveTo{X: 10, Y: 10},
				ir.LineTo{X: 54, Y: 10},
				ir.LineTo{X: 32, Y: 54},
				ir.MoveTo{X: 5, Y: 40},
				ir.LineTo{X: 20, Y: 60},
				ir.LineTo{X: 5, Y: 60},
			},
			Fill: &green,
		}),
	},
	{
		// a path without MoveTo starts at the origin
		Name: "no_move_to",
		Page: square(ir.Path{
			Commands: []ir.PathCommand{
				ir.LineTo{X: 60, Y: 20},
				ir.LineTo{X: 20, Y: 60},
				ir.Close{},
			},
			Fill: &black,
		}),
	},
}

func join(paths ...[]ir.PathCommand) []ir.PathCommand {
	var res []ir.PathCommand
	for _, p := range paths {
		res = append(res, p...)
	}
	return res
}

// twoTriangles builds two separate triangles centered at (x1, y) and
// (x2, y).
func twoTriangles(x1, x2, y, size float64) []ir.PathCommand {
	return join(
		triangle(x1-size, y+size, x1, y-size, x1+size, y+size),
		triangle(x2-size, y+size, x2, y-size, x2+size, y+size),
	)
}

// multipleRings builds concentric circles with radii 10, 20, ..., 60.
// Filled with the even-odd rule, every second gap is painted.
func multipleRings(cx, cy float64) []ir.PathCommand {
	var res []ir.PathCommand
	for i := 1; i <= 6; i++ {
		res = append(res, circle(cx, cy, float64(10*i), i%2 == 0)...)
	}
	return res
}
