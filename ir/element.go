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

// Element is a drawable primitive on a page.
//
// The set of elements is closed.  Both backends handle every
// implementation: Text, Image, Line, Rect, GradientRect, Ellipse,
// EllipseImage, Path, PathImage and TableBlock.
type Element interface {
	isElement()
}

// Text is a single run of text.  (X, Y) is the top-left corner of the
// text box.  Line breaks inside Text start a new line.
type Text struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Width float64   `json:"width"`
	Text  string    `json:"text"`
	Style FontStyle `json:"style"`
	Align TextAlign `json:"align"`
}

// Image is an encoded raster image scaled into a rectangle.
type Image struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Data     []byte  `json:"data"`
	MimeType string  `json:"mime_type"`
}

// Line is a straight line segment.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
	Color Color   `json:"color"`
}

// Rect is an axis-aligned rectangle.  A nil Fill or Stroke disables the
// corresponding operation.
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Fill        *Color  `json:"fill,omitempty"`
	Stroke      *Color  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width"`

	// Rotation is carried for completeness.  Neither backend applies it.
	Rotation float64 `json:"rotation"`
}

// GradientRect is a rectangle filled with a color gradient.
type GradientRect struct {
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Stops  []GradientStop `json:"stops"`
	Type   GradientType   `json:"gradient_type"`
}

// Ellipse is an axis-aligned ellipse with center (CX, CY).
type Ellipse struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	RX          float64 `json:"rx"`
	RY          float64 `json:"ry"`
	Fill        *Color  `json:"fill,omitempty"`
	Stroke      *Color  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width"`
}

// EllipseImage is an image clipped to an ellipse.
type EllipseImage struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	RX          float64 `json:"rx"`
	RY          float64 `json:"ry"`
	Data        []byte  `json:"data"`
	MimeType    string  `json:"mime_type"`
	Stroke      *Color  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Path is an arbitrary vector path.  Fills use the even-odd rule.
type Path struct {
	Commands    []PathCommand `json:"commands"`
	Fill        *Color        `json:"fill,omitempty"`
	Stroke      *Color        `json:"stroke,omitempty"`
	StrokeWidth float64       `json:"stroke_width"`
}

// PathImage is an image clipped to an arbitrary path.  The image is
// stretched over the bounding box of the path.
type PathImage struct {
	Commands    []PathCommand `json:"commands"`
	Data        []byte        `json:"data"`
	MimeType    string        `json:"mime_type"`
	Stroke      *Color        `json:"stroke,omitempty"`
	StrokeWidth float64       `json:"stroke_width"`
}

// TableBlock places a table with its top-left corner at (X, Y).
type TableBlock struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Table Table   `json:"table"`
}

func (Text) isElement()         {}
func (Image) isElement()        {}
func (Line) isElement()         {}
func (Rect) isElement()         {}
func (GradientRect) isElement() {}
func (Ellipse) isElement()      {}
func (EllipseImage) isElement() {}
func (Path) isElement()         {}
func (PathImage) isElement()    {}
func (TableBlock) isElement()   {}

// Kind returns a short lower-case name for the element type,
// for use in log messages.
func Kind(e Element) string {
	switch e.(type) {
	case Text:
		return "text"
	case Image:
		return "image"
	case Line:
		return "line"
	case Rect:
		return "rect"
	case GradientRect:
		return "gradient_rect"
	case Ellipse:
		return "ellipse"
	case EllipseImage:
		return "ellipse_image"
	case Path:
		return "path"
	case PathImage:
		return "path_image"
	case TableBlock:
		return "table"
	default:
		return "unknown"
	}
}
