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

package raster

import (
	"math"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

// glyphFace is a parsed font together with the scratch space needed to
// draw its glyphs.
type glyphFace struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// face returns the font used for the given font name, or nil if no
// available font can be parsed.  The font registered for the name is
// tried first, then the best available font and the builtin font.
// Results are cached for the lifetime of the page renderer.
func (pr *pageRenderer) face(name string) *glyphFace {
	if gf, seen := pr.faces[name]; seen {
		return gf
	}
	var gf *glyphFace
	if pr.fm != nil {
		candidates := [][]byte{pr.fm.Resolve(name), pr.fm.BestAvailable(), pr.fm.Builtin()}
		var err error
		for i, data := range candidates {
			if len(data) == 0 || (i > 0 && sameData(data, candidates[i-1])) {
				continue
			}
			var f *sfnt.Font
			f, err = fonts.Parse(data)
			if err == nil {
				gf = &glyphFace{font: f}
				break
			}
		}
		if gf == nil {
			logging.Logger().Debug("text drawn without font", "font", name, "err", err)
		}
	}
	pr.faces[name] = gf
	return gf
}

// sameData reports whether a and b share their backing storage.
func sameData(a, b []byte) bool {
	return len(a) == len(b) && len(a) > 0 && &a[0] == &b[0]
}

func (pr *pageRenderer) drawText(e ir.Text) {
	size := e.Style.Size * pr.scale
	if !(size > 0) || e.Text == "" {
		return
	}
	gf := pr.face(e.Style.FontName)
	x := e.X * pr.scale
	y := e.Y * pr.scale
	for _, line := range ir.SplitLines(e.Text) {
		if gf != nil {
			pr.drawGlyphs(gf, line, x, y, size, e.Style.Color)
		} else {
			pr.drawBoxes(line, x, y, size, e.Style.Color)
		}
		y += size * ir.LineSpacing
	}
}

// drawGlyphs draws one line of text, with the top of the line at device
// y coordinate top.
func (pr *pageRenderer) drawGlyphs(gf *glyphFace, text string, x, top, size float64, col ir.Color) {
	ppem := fixed.Int26_6(math.Round(size * 64))
	baseline := top + size
	if m, err := gf.font.Metrics(&gf.buf, ppem, font.HintingNone); err == nil {
		baseline = top + float64(m.Ascent)/64
	}

	cursor := x
	for _, r := range text {
		if cursor >= float64(pr.canvas.w) {
			break
		}
		gid, err := gf.font.GlyphIndex(&gf.buf, r)
		if err != nil {
			cursor += fonts.FallbackAdvance(r, size)
			continue
		}
		adv := fonts.FallbackAdvance(r, size)
		if a, err := gf.font.GlyphAdvance(&gf.buf, gid, ppem, font.HintingNone); err == nil {
			adv = float64(a) / 64
		}
		if !unicode.IsSpace(r) {
			segs, err := gf.font.LoadGlyph(&gf.buf, gid, ppem, nil)
			if err == nil {
				pr.drawOutline(segs, cursor, baseline, col)
			}
		}
		cursor += adv
	}
}

// drawOutline fills a glyph outline whose origin is at device position
// (ox, oy), using the nonzero winding rule.
func (pr *pageRenderer) drawOutline(segs sfnt.Segments, ox, oy float64, col ir.Color) {
	if len(segs) == 0 {
		return
	}
	pt := func(p fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: ox + float64(p.X)/64, Y: oy + float64(p.Y)/64}
	}

	d := &pr.outline
	d.Reset()
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			d.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			d.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			d.QuadTo(pt(s.Args[0]), pt(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			d.CubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}

	r := pr.coverage
	r.reset(pr.clip)
	r.fillNonZero(d.Iter(), pr.canvas.coverRow(col))
}

// drawBoxes approximates a line of text by one filled box per visible
// character.  Only the part of each box inside the canvas is visited.
func (pr *pageRenderer) drawBoxes(text string, x, top, size float64, col ir.Color) {
	c := pr.canvas
	px := truncInt(x)
	py := truncInt(top)
	sizePx := truncInt(size)
	y0 := max(py+2, 0)
	y1 := min(py+sizePx-2, c.h)

	cursor := px
	for _, r := range text {
		if cursor >= c.w {
			break
		}
		cw := truncInt(fonts.FallbackAdvance(r, size))
		if !unicode.IsSpace(r) {
			x0 := max(cursor+1, 0)
			x1 := min(cursor+cw-1, c.w)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					c.cover(x, y, col, 1)
				}
			}
		}
		cursor += max(cw, 1)
	}
}

func (pr *pageRenderer) drawTable(e ir.TableBlock) {
	border := ir.Color{R: 204, G: 204, B: 204, A: 255}
	s := pr.scale
	for _, box := range e.Table.Layout(e.X, e.Y, e.Width) {
		pr.strokeRectThin(box.X*s, box.Y*s, box.Width*s, box.Height*s, border)
		if box.Cell.Text == "" {
			continue
		}
		pr.drawText(ir.Text{
			X:     box.X + ir.TableCellPadding,
			Y:     box.Y + ir.TableCellPadding,
			Width: box.Width - 2*ir.TableCellPadding,
			Text:  box.Cell.Text,
			Style: box.Cell.Style,
		})
	}
}
