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

var fillCases = []TestCase{
	{
		Name: "triangle",
		Page: square(ir.Path{Commands: triangle(10, 50, 32, 10, 54, 50), Fill: &black}),
	},
	{
		Name: "star",
		Page: square(ir.Path{Commands: fivePointStar(32, 32, 25), Fill: &black}),
	},
	{
		Name: "rectangle",
		Page: square(ir.Rect{X: 10, Y: 10, Width: 44, Height: 44, Fill: &blue}),
	},
	{
		Name: "rectangle_path",
		Page: square(ir.Path{Commands: ir.RectPath(10, 10, 44, 44), Fill: &blue}),
	},
	{
		Name: "ellipse",
		Page: square(ir.Ellipse{CX: 32, CY: 32, RX: 24, RY: 14, Fill: &green}),
	},
	{
		Name: "overlap",
		Page: square(
			ir.Rect{X: 8, Y: 8, Width: 32, Height: 32, Fill: &red},
			ir.Ellipse{CX: 40, CY: 40, RX: 16, RY: 16, Fill: &blue},
		),
	},
}
