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


package convert

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strings"

	"seehuhn.de/go/docrender/ir"
)

// Layout of CSV tables.
const (
	csvMargin       = 40.0
	csvRowHeight    = 22.0
	csvHeaderHeight = 26.0
	csvHeaderSize   = 11.0
)

// CSVTitle is the document title of converted CSV files.
const CSVTitle = "CSV Document"

// CSV converts comma separated values into tables.  Records may have
// different numbers of fields.  The first record is shown as a header
// on the first page.
type CSV struct{}

// Convert implements [ir.Converter].
func (CSV) Convert(data []byte) (*ir.Document, error) {
	text, err := decodeText(data, "CSV")
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	var rows [][]string
	numCols := 0
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, &ir.ConvertError{Format: "CSV", Message: "parse error", Err: err}
		}
		rows = append(rows, rec)
		numCols = max(numCols, len(rec))
	}

	if len(rows) == 0 {
		return &ir.Document{Pages: []ir.Page{ir.A4()}}, nil
	}

	width := ir.A4Width - 2*csvMargin
	widths := make([]float64, numCols)
	for i := range widths {
		widths[i] = width / float64(numCols)
	}
	perPage := CSVRowsPerPage()

	doc := &ir.Document{Metadata: ir.Metadata{Title: CSVTitle}}
	for start := 0; start < len(rows); start += perPage {
		end := min(start+perPage, len(rows))
		table := ir.Table{ColumnWidths: widths}
		for i, rec := range rows[start:end] {
			cells := make([]ir.TableCell, numCols)
			for j := range cells {
				var s string
				if j < len(rec) {
					s = rec[j]
				}
				cells[j] = ir.NewTableCell(s)
				if start == 0 && i == 0 {
					cells[j].Style.Bold = true
					cells[j].Style.Size = csvHeaderSize
				}
			}
			table.Rows = append(table.Rows, cells)
		}

		page := ir.A4()
		page.Add(ir.TableBlock{X: csvMargin, Y: csvMargin, Width: width, Table: table})
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// CSVRowsPerPage is the number of table rows placed on each page.
func CSVRowsPerPage() int {
	usable := ir.A4Height - 2*csvMargin - csvHeaderHeight
	return max(int(math.Floor(usable/csvRowHeight)), 1)
}

// SupportedExtensions implements [ir.Converter].
func (CSV) SupportedExtensions() []string { return []string{"csv"} }

// FormatName implements [ir.Converter].
func (CSV) FormatName() string { return "CSV" }
