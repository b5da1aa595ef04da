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

package fonts

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNoFont is returned by Parse for empty font data.
var ErrNoFont = errors.New("no font data")

// Parse decodes TrueType or OpenType font data.
func Parse(data []byte) (*sfnt.Font, error) {
	if len(data) == 0 {
		return nil, ErrNoFont
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}
	return f, nil
}

// Info summarizes the global metrics of a font, in units of 1/1000 em
// with y pointing up, as used in PDF font descriptors.
type Info struct {
	PostScriptName string
	Ascent         float64
	Descent        float64 // negative for fonts extending below the baseline
	CapHeight      float64
	BBox           [4]float64 // llx lly urx ury
}

// DefaultInfo holds the metrics assumed for a font which cannot be
// inspected.  The values fit typical Japanese sans serif fonts.
var DefaultInfo = Info{
	Ascent:    880,
	Descent:   -120,
	CapHeight: 733,
	BBox:      [4]float64{-200, -200, 1200, 1000},
}

// GetInfo reads the global metrics of a font.
func GetInfo(f *sfnt.Font) (Info, error) {
	var buf sfnt.Buffer

	upem := f.UnitsPerEm()
	if upem == 0 {
		return Info{}, errors.New("fonts: invalid units per em")
	}
	ppem := fixed.I(int(upem))
	toPDF := func(x fixed.Int26_6) float64 {
		return math.Round(float64(x) / 64 * 1000 / float64(upem))
	}

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return Info{}, fmt.Errorf("fonts: %w", err)
	}
	bounds, err := f.Bounds(&buf, ppem, font.HintingNone)
	if err != nil {
		return Info{}, fmt.Errorf("fonts: %w", err)
	}

	info := Info{
		Ascent:    toPDF(m.Ascent),
		Descent:   -toPDF(m.Descent),
		CapHeight: toPDF(m.CapHeight),
		BBox: [4]float64{
			toPDF(bounds.Min.X), -toPDF(bounds.Max.Y),
			toPDF(bounds.Max.X), -toPDF(bounds.Min.Y),
		},
	}
	if info.CapHeight <= 0 {
		info.CapHeight = info.Ascent
	}
	if name, err := f.Name(&buf, sfnt.NameIDPostScript); err == nil {
		info.PostScriptName = name
	}
	return info, nil
}

// Widths of the approximate character boxes, relative to the font size.
const (
	NarrowWidth = 0.6
	WideWidth   = 1.0
)

// FallbackAdvance returns the approximate advance width of r for text
// which is drawn without a usable font.  ASCII characters are half width,
// everything else is full width.
func FallbackAdvance(r rune, size float64) float64 {
	if r < 0x80 {
		return size * NarrowWidth
	}
	return size * WideWidth
}

// EstimateTextWidth returns the advance width of text at the given size.
// The glyph advances of the font are used if fontData can be parsed,
// otherwise the width is estimated with FallbackAdvance.
func EstimateTextWidth(text string, size float64, fontData []byte) float64 {
	f, err := Parse(fontData)
	if err != nil {
		w := 0.0
		for _, r := range text {
			w += FallbackAdvance(r, size)
		}
		return w
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(math.Round(size * 64))
	var total fixed.Int26_6
	for _, r := range text {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			continue
		}
		total += adv
	}
	return float64(total) / 64
}
