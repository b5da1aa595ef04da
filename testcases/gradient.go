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

import (
	"math"

	"seehuhn.de/go/docrender/ir"
)

var blackToWhite = []ir.GradientStop{
	{Position: 0, Color: black},
	{Position: 1, Color: ir.White},
}

var rainbow = []ir.GradientStop{
	{Position: 0, Color: red},
	{Position: 0.3, Color: yellow},
	{Position: 0.6, Color: green},
	{Position: 1, Color: blue},
}

var gradientCases = []TestCase{
	{
		Name: "linear_vertical",
		Page: square(ir.GradientRect{X: 4, Y: 4, Width: 56, Height: 56, Stops: blackToWhite, Type: ir.LinearGradient{}}),
	},
	{
		Name: "linear_horizontal",
		Page: square(ir.GradientRect{X: 4, Y: 4, Width: 56, Height: 56, Stops: blackToWhite, Type: ir.LinearGradient{Angle: math.Pi / 2}}),
	},
	{
		Name: "linear_diagonal",
		Page: square(ir.GradientRect{X: 4, Y: 4, Width: 56, Height: 56, Stops: rainbow, Type: ir.LinearGradient{Angle: math.Pi / 4}}),
	},
	{
		Name: "radial",
		Page: square(ir.GradientRect{X: 4, Y: 4, Width: 56, Height: 56, Stops: rainbow, Type: ir.RadialGradient{}}),
	},
	{
		Name: "radial_wide",
		Page: page(128, 64, ir.GradientRect{X: 4, Y: 4, Width: 120, Height: 56, Stops: blackToWhite, Type: ir.RadialGradient{}}),
	},
	{
		// stops which do not cover [0, 1] are extended
		Name: "partial_stops",
		Page: square(ir.GradientRect{
			X: 4, Y: 4, Width: 56, Height: 56,
			Stops: []ir.GradientStop{
				{Position: 0.4, Color: blue},
				{Position: 0.6, Color: yellow},
			},
			Type: ir.LinearGradient{},
		}),
	},
}
