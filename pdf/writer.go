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


// Package pdf writes documents as PDF 1.4 files.
//
// All text is set in a single composite font using the Identity-H
// encoding.  The font file is embedded when the font manager supplies
// usable font data.  Image elements are represented by placeholders.
package pdf

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

// Producer is the value of the /Producer entry in the document
// information dictionary.
const Producer = "seehuhn.de/go/docrender"

// Render converts doc into a PDF file.  Fonts are taken from fm, which
// may be nil.
func Render(doc *ir.Document, fm *fonts.Manager) []byte {
	w := &writer{offsets: []int{0}}
	w.buf.WriteString("%PDF-1.4\n%\xE2\xE3\xCF\xD3\n")

	catalog := w.alloc()
	pages := w.alloc()
	ft := loadFont(fm)
	fontObjs := ft.alloc(w)

	type pageRefs struct{ page, contents int }
	refs := make([]pageRefs, len(doc.Pages))
	for i := range refs {
		refs[i].page = w.alloc()
		refs[i].contents = w.alloc()
	}
	info := 0
	if !doc.Metadata.IsEmpty() {
		info = w.alloc()
	}

	w.object(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pages))

	var kids bytes.Buffer
	for i, r := range refs {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(&kids, "%d 0 R", r.page)
	}
	w.object(pages, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		kids.String(), len(refs)))

	ft.write(w, fontObjs)

	for i := range doc.Pages {
		page := &doc.Pages[i]
		content := pageContent(page)
		w.object(refs[i].page, fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Contents %d 0 R"+
				" /Resources << /Font << /F1 %d 0 R >> >> >>",
			pages, formatNumber(page.Width), formatNumber(page.Height),
			refs[i].contents, fontObjs.type0))
		w.stream(refs[i].contents, "", content)
	}

	if info != 0 {
		w.object(info, infoDict(doc.Metadata))
	}

	w.finish(catalog, info)

	logging.Logger().Debug("pdf written",
		"pages", len(doc.Pages), "bytes", w.buf.Len(), "embedded", ft.data != nil)
	return w.buf.Bytes()
}

// writer serializes indirect objects and records their byte offsets for
// the cross-reference table.
type writer struct {
	buf     bytes.Buffer
	offsets []int // indexed by object number
}

func (w *writer) alloc() int {
	w.offsets = append(w.offsets, 0)
	return len(w.offsets) - 1
}

func (w *writer) object(id int, body string) {
	w.offsets[id] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", id, body)
}

// stream writes a stream object.  The /Length entry is added to the
// dictionary entries in extra.
func (w *writer) stream(id int, extra string, data []byte) {
	w.offsets[id] = w.buf.Len()
	fmt.Fprintf(&w.buf, "%d 0 obj\n<< /Length %d%s >>\nstream\n", id, len(data), extra)
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
}

// finish writes the cross-reference table and the trailer.
func (w *writer) finish(root, info int) {
	start := w.buf.Len()
	n := len(w.offsets)
	fmt.Fprintf(&w.buf, "xref\n0 %d\n0000000000 65535 f \n", n)
	for _, off := range w.offsets[1:] {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&w.buf, "trailer\n<< /Size %d /Root %d 0 R", n, root)
	if info != 0 {
		fmt.Fprintf(&w.buf, " /Info %d 0 R", info)
	}
	fmt.Fprintf(&w.buf, " >>\nstartxref\n%d\n%%%%EOF\n", start)
}

func infoDict(m ir.Metadata) string {
	var b bytes.Buffer
	b.WriteString("<<")
	add := func(key, val string) {
		if val != "" {
			fmt.Fprintf(&b, " /%s %s", key, textString(val))
		}
	}
	add("Title", m.Title)
	add("Author", m.Author)
	add("Subject", m.Subject)
	add("Creator", m.Creator)
	add("Producer", Producer)
	b.WriteString(" >>")
	return b.String()
}
