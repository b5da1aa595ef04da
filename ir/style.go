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

// Package ir defines the intermediate page description shared by the
// document converters and the two output backends.
//
// All coordinates are in PDF points (1/72 inch), measured from the
// top-left corner of the page with y increasing downwards.
// Values of these types are read-only once a converter has produced them.
package ir

import "fmt"

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Frequently used colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// String returns the color in #rrggbbaa notation.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses a color given as "rrggbb" or "rrggbbaa",
// optionally preceded by '#'.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	var v [4]uint8
	v[3] = 255
	for i := 0; i < len(s); i += 2 {
		hi, ok1 := hexDigit(s[i])
		lo, ok2 := hexDigit(s[i+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("invalid color %q", s)
		}
		v[i/2] = hi<<4 | lo
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DefaultFontName is the font name used when a converter has no better
// information.
const DefaultFontName = "NotoSansJP"

// FontStyle describes how a piece of text is drawn.
// The font is referenced by name only and resolved at render time.
type FontStyle struct {
	FontName string  `json:"font_name"`
	Size     float64 `json:"font_size"`
	Bold     bool    `json:"bold,omitempty"`
	Italic   bool    `json:"italic,omitempty"`
	Color    Color   `json:"color"`
}

// DefaultFontStyle returns 10pt black text in the default font.
func DefaultFontStyle() FontStyle {
	return FontStyle{
		FontName: DefaultFontName,
		Size:     10,
		Color:    Black,
	}
}

// TextAlign records the horizontal alignment a converter used when it
// positioned a text box.  The backends always draw from the anchor.
type TextAlign int

// These are the supported text alignments.
const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}
