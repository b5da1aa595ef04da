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
	"fmt"

	"seehuhn.de/go/docrender/ir"
)

// Stub stands in for formats whose parser is not part of this module.
// It produces a single page which names the format and lists the fully
// supported formats.
type Stub struct {
	Name       string
	Extensions []string
}

// Convert implements [ir.Converter].  It never fails.
func (s *Stub) Convert(data []byte) (*ir.Document, error) {
	const margin = 50.0
	width := ir.A4Width - 2*margin

	page := ir.A4()
	text := func(y, size float64, s string) ir.Text {
		style := ir.DefaultFontStyle()
		if size > 0 {
			style.Size = size
		}
		return ir.Text{X: margin, Y: y, Width: width, Text: s, Style: style}
	}

	title := text(margin, 18, s.Name+" document")
	title.Style.Bold = true
	page.Add(
		title,
		ir.Line{
			X1: margin, Y1: margin + 30,
			X2: ir.A4Width - margin, Y2: margin + 30,
			Width: 1, Color: ir.RGB(100, 100, 100),
		},
		text(margin+50, 0, fmt.Sprintf("This file is in %s format.", s.Name)),
		text(margin+70, 0, fmt.Sprintf("File size: %d bytes", len(data))),
	)

	warning := text(margin+110, 0, "Conversion of this format is not yet available.")
	warning.Style.Color = ir.RGB(200, 100, 0)
	heading := text(margin+140, 0, "Currently supported formats:")
	heading.Style.Bold = true
	page.Add(warning, heading)

	supported := []string{
		"TXT (plain text) - full support",
		"CSV (comma separated values) - full support",
		s.Name + " - in development",
	}
	for i, line := range supported {
		item := text(margin+165+float64(i)*20, 9, line)
		item.X += 20
		item.Width -= 20
		page.Add(item)
	}

	return &ir.Document{Pages: []ir.Page{page}}, nil
}

// SupportedExtensions implements [ir.Converter].
func (s *Stub) SupportedExtensions() []string { return s.Extensions }

// FormatName implements [ir.Converter].
func (s *Stub) FormatName() string { return s.Name }
