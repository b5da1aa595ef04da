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

import "math"

// Table is a grid of cells.  If ColumnWidths does not provide a width for
// every column, the backends divide the available width evenly.
type Table struct {
	Rows         [][]TableCell `json:"rows"`
	ColumnWidths []float64     `json:"column_widths,omitempty"`
}

// TableCell is one cell of a table.  The span counts are used by the
// converters for layout; the backends draw every cell at its own grid
// position.
type TableCell struct {
	Text    string    `json:"text"`
	Style   FontStyle `json:"style"`
	ColSpan int       `json:"col_span"`
	RowSpan int       `json:"row_span"`
}

// NewTableCell returns a cell with default style and unit spans.
func NewTableCell(text string) TableCell {
	return TableCell{
		Text:    text,
		Style:   DefaultFontStyle(),
		ColSpan: 1,
		RowSpan: 1,
	}
}

// NumColumns returns the length of the longest row.
func (t *Table) NumColumns() int {
	n := 0
	for _, row := range t.Rows {
		n = max(n, len(row))
	}
	return n
}

// Columns returns the widths of the first n columns of a table which is
// total points wide.  Declared widths are used only if there is one for
// every column; otherwise the width is split evenly.
func (t *Table) Columns(n int, total float64) []float64 {
	if n <= 0 {
		return nil
	}
	widths := make([]float64, n)
	if len(t.ColumnWidths) >= n {
		ok := true
		for _, w := range t.ColumnWidths[:n] {
			if !(w > 0) || math.IsInf(w, 0) {
				ok = false
				break
			}
		}
		if ok {
			copy(widths, t.ColumnWidths)
			return widths
		}
	}
	for i := range widths {
		widths[i] = total / float64(n)
	}
	return widths
}
