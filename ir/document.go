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

// Standard page sizes in points.
const (
	A4Width      = 595.28
	A4Height     = 841.89
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// Page is a single page.  Elements are painted in order, so that later
// elements cover earlier ones.
type Page struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Elements []Element `json:"elements"`
}

// A4 returns an empty A4 page.
func A4() Page {
	return Page{Width: A4Width, Height: A4Height}
}

// Letter returns an empty US Letter page.
func Letter() Page {
	return Page{Width: LetterWidth, Height: LetterHeight}
}

// Add appends elements to the page.
func (p *Page) Add(elems ...Element) {
	p.Elements = append(p.Elements, elems...)
}

// Metadata holds the optional document information.
// Empty strings mean "not set".
type Metadata struct {
	Title   string `json:"title,omitempty"`
	Author  string `json:"author,omitempty"`
	Subject string `json:"subject,omitempty"`
	Creator string `json:"creator,omitempty"`
}

// IsEmpty reports whether no metadata field is set.
func (m Metadata) IsEmpty() bool {
	return m == Metadata{}
}

// Document is an ordered list of pages.
type Document struct {
	Pages    []Page   `json:"pages"`
	Metadata Metadata `json:"metadata"`
}

// Layout of FromTextLines.
const (
	TextMargin     = 50.0
	textLineFactor = 1.5
)

// FromTextLines lays out plain text lines on A4 pages, one Text element
// per line.  The result always has at least one page.
func FromTextLines(lines []string, style FontStyle) *Document {
	lineHeight := style.Size * textLineFactor
	usable := A4Height - 2*TextMargin
	perPage := 1
	if lineHeight > 0 {
		perPage = max(int(math.Floor(usable/lineHeight)), 1)
	}

	doc := &Document{}
	for start := 0; start < len(lines); start += perPage {
		end := min(start+perPage, len(lines))
		page := A4()
		y := TextMargin
		for _, line := range lines[start:end] {
			page.Add(Text{
				X:     TextMargin,
				Y:     y,
				Width: A4Width - 2*TextMargin,
				Text:  line,
				Style: style,
			})
			y += lineHeight
		}
		doc.Pages = append(doc.Pages, page)
	}
	if len(doc.Pages) == 0 {
		doc.Pages = append(doc.Pages, A4())
	}
	return doc
}
