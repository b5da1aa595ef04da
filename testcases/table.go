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

func cells(texts ...string) []ir.TableCell {
	res := make([]ir.TableCell, len(texts))
	for i, t := range texts {
		res[i] = ir.NewTableCell(t)
	}
	return res
}

var tableCases = []TestCase{
	{
		Name: "even_columns",
		Page: page(240, 100, ir.TableBlock{X: 10, Y: 10, Width: 220, Table: ir.Table{
			Rows: [][]ir.TableCell{
				cells("Name", "Qty", "Price"),
				cells("Apples", "3", "1.20"),
				cells("Pears", "12", "0.80"),
			},
		}}),
	},
	{
		Name: "column_widths",
		Page: page(240, 80, ir.TableBlock{X: 10, Y: 10, Width: 220, Table: ir.Table{
			Rows: [][]ir.TableCell{
				cells("Item", "Note"),
				cells("A", "first"),
			},
			ColumnWidths: []float64{50, 170},
		}}),
	},
	{
		Name: "ragged_rows",
		Page: page(240, 100, ir.TableBlock{X: 10, Y: 10, Width: 220, Table: ir.Table{
			Rows: [][]ir.TableCell{
				cells("a", "b", "c", "d"),
				cells("e"),
				cells("f", "g"),
			},
		}}),
	},
	{
		Name: "multi_line_cell",
		Page: page(240, 100, ir.TableBlock{X: 10, Y: 10, Width: 220, Table: ir.Table{
			Rows: [][]ir.TableCell{
				cells("Line1\nLine2\nLine3", "x"),
			},
		}}),
	},
}
