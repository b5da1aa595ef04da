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

func style(size float64, c ir.Color) ir.FontStyle {
	return ir.FontStyle{FontName: ir.DefaultFontName, Size: size, Color: c}
}

var textCases = []TestCase{
	{
		Name: "latin",
		Page: page(200, 40, ir.Text{X: 4, Y: 4, Width: 192, Text: "Sphinx of black quartz", Style: style(16, black)}),
	},
	{
		Name: "sizes",
		Page: page(200, 80,
			ir.Text{X: 4, Y: 4, Text: "small", Style: style(6, black)},
			ir.Text{X: 4, Y: 14, Text: "medium", Style: style(12, blue)},
			ir.Text{X: 4, Y: 32, Text: "large", Style: style(32, red)},
		),
	},
	{
		Name: "multi_line",
		Page: page(120, 80, ir.Text{X: 4, Y: 4, Text: "one\ntwo\r\nthree\rfour", Style: style(12, black)}),
	},
	{
		Name: "japanese",
		Page: page(200, 40, ir.Text{X: 4, Y: 4, Text: "日本語のテキスト", Style: style(16, black)}),
	},
	{
		Name: "unknown_font",
		Page: page(200, 40, ir.Text{X: 4, Y: 4, Text: "fallback\tfont", Style: ir.FontStyle{
			FontName: "No Such Font", Size: 14, Color: green,
		}}),
	},
}
