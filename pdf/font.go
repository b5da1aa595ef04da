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


package pdf

import (
	"fmt"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

const toUnicodeCMap = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo
<< /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
1 beginbfrange
<0000> <FFFF> <0000>
endbfrange
endcmap
CMapName currentdict /CMap defineresource pop
end
end`

// pageFont is the composite font shared by all pages.
type pageFont struct {
	name string
	info fonts.Info
	data []byte // nil if no font file is embedded
}

type fontRefs struct {
	type0, cidFont, descriptor, toUnicode, file int
}

// loadFont selects the font to embed.  Font data which does not parse
// is not embedded, and default metrics are used instead.
func loadFont(fm *fonts.Manager) *pageFont {
	ft := &pageFont{
		name: ir.DefaultFontName,
		info: fonts.DefaultInfo,
	}
	if fm == nil {
		return ft
	}
	data := fm.BestAvailable()
	if len(data) == 0 {
		return ft
	}
	f, err := fonts.Parse(data)
	if err != nil {
		logging.Logger().Debug("font not embedded", "err", err)
		return ft
	}
	ft.data = data
	if info, err := fonts.GetInfo(f); err == nil {
		ft.info = info
		if info.PostScriptName != "" {
			ft.name = info.PostScriptName
		}
	}
	return ft
}

func (ft *pageFont) alloc(w *writer) fontRefs {
	refs := fontRefs{
		type0:      w.alloc(),
		cidFont:    w.alloc(),
		descriptor: w.alloc(),
		toUnicode:  w.alloc(),
	}
	if ft.data != nil {
		refs.file = w.alloc()
	}
	return refs
}

func (ft *pageFont) write(w *writer, refs fontRefs) {
	name := pdfName(ft.name)

	w.object(refs.type0, fmt.Sprintf(
		"<< /Type /Font /Subtype /Type0 /BaseFont %s /Encoding /Identity-H"+
			" /DescendantFonts [%d 0 R] /ToUnicode %d 0 R >>",
		name, refs.cidFont, refs.toUnicode))

	w.object(refs.cidFont, fmt.Sprintf(
		"<< /Type /Font /Subtype /CIDFontType2 /BaseFont %s"+
			" /CIDSystemInfo << /Registry (Adobe) /Ordering (Identity) /Supplement 0 >>"+
			" /DW 1000 /CIDToGIDMap /Identity /FontDescriptor %d 0 R >>",
		name, refs.descriptor))

	info := ft.info
	desc := fmt.Sprintf(
		"<< /Type /FontDescriptor /FontName %s /Flags 4 /ItalicAngle 0"+
			" /Ascent %s /Descent %s /CapHeight %s /StemV 80 /FontBBox [%s %s %s %s]",
		name, formatNumber(info.Ascent), formatNumber(info.Descent),
		formatNumber(info.CapHeight),
		formatNumber(info.BBox[0]), formatNumber(info.BBox[1]),
		formatNumber(info.BBox[2]), formatNumber(info.BBox[3]))
	if refs.file != 0 {
		desc += fmt.Sprintf(" /FontFile2 %d 0 R", refs.file)
	}
	w.object(refs.descriptor, desc+" >>")

	w.stream(refs.toUnicode, "", []byte(toUnicodeCMap))

	if refs.file != 0 {
		w.stream(refs.file, fmt.Sprintf(" /Length1 %d", len(ft.data)), ft.data)
	}
}
