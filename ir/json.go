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

import (
	"bytes"
	"encoding/json"
)

// tagged marshals v as a JSON object and inserts a "type" member in front.
func tagged(kind string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	buf.WriteString(`{"type":`)
	name, _ := json.Marshal(kind)
	buf.Write(name)
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// The local types in the methods below drop the MarshalJSON method,
// so that json.Marshal does not recurse.

func (e Text) MarshalJSON() ([]byte, error) {
	type plain Text
	return tagged("text", plain(e))
}

func (e Image) MarshalJSON() ([]byte, error) {
	type plain Image
	return tagged("image", plain(e))
}

func (e Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return tagged("line", plain(e))
}

func (e Rect) MarshalJSON() ([]byte, error) {
	type plain Rect
	return tagged("rect", plain(e))
}

func (e GradientRect) MarshalJSON() ([]byte, error) {
	type plain GradientRect
	return tagged("gradient_rect", plain(e))
}

func (e Ellipse) MarshalJSON() ([]byte, error) {
	type plain Ellipse
	return tagged("ellipse", plain(e))
}

func (e EllipseImage) MarshalJSON() ([]byte, error) {
	type plain EllipseImage
	return tagged("ellipse_image", plain(e))
}

func (e Path) MarshalJSON() ([]byte, error) {
	type plain Path
	return tagged("path", plain(e))
}

func (e PathImage) MarshalJSON() ([]byte, error) {
	type plain PathImage
	return tagged("path_image", plain(e))
}

func (e TableBlock) MarshalJSON() ([]byte, error) {
	type plain TableBlock
	return tagged("table", plain(e))
}

func (c MoveTo) MarshalJSON() ([]byte, error) {
	type plain MoveTo
	return tagged("move_to", plain(c))
}

func (c LineTo) MarshalJSON() ([]byte, error) {
	type plain LineTo
	return tagged("line_to", plain(c))
}

func (c QuadTo) MarshalJSON() ([]byte, error) {
	type plain QuadTo
	return tagged("quad_to", plain(c))
}

func (c CubicTo) MarshalJSON() ([]byte, error) {
	type plain CubicTo
	return tagged("cubic_to", plain(c))
}

func (c ArcTo) MarshalJSON() ([]byte, error) {
	type plain ArcTo
	return tagged("arc_to", plain(c))
}

func (c Close) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"close"}`), nil
}

func (g LinearGradient) MarshalJSON() ([]byte, error) {
	type plain LinearGradient
	return tagged("linear", plain(g))
}

func (g RadialGradient) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"radial"}`), nil
}

func (a TextAlign) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
