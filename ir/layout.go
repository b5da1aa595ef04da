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

package ir

import "strings"

// Fixed table geometry used by both backends, in points.
const (
	TableRowHeight   = 20.0
	TableCellPadding = 4.0
)

// LineSpacing is the distance between the baselines of consecutive lines
// of a multi-line text, as a multiple of the font size.
const LineSpacing = 1.2

// CellBox is the position of a table cell on the page.
type CellBox struct {
	Cell                *TableCell
	X, Y, Width, Height float64
}

// Layout places the cells of t in a grid with its top-left corner at
// (x, y).  Every row is TableRowHeight points high.
func (t *Table) Layout(x, y, width float64) []CellBox {
	widths := t.Columns(t.NumColumns(), width)
	var res []CellBox
	for i := range t.Rows {
		row := t.Rows[i]
		cx := x
		cy := y + float64(i)*TableRowHeight
		for j := range row {
			res = append(res, CellBox{
				Cell:   &row[j],
				X:      cx,
				Y:      cy,
				Width:  widths[j],
				Height: TableRowHeight,
			})
			cx += widths[j]
		}
	}
	return res
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\t", " ")

// SplitLines splits text at CR LF, CR and LF.  Tabs are replaced by
// spaces.  The result has at least one element.
func SplitLines(text string) []string {
	return strings.Split(lineBreaks.Replace(text), "\n")
}
