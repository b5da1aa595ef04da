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

// PathCommand is one step of a vector path.
//
// The set of commands is closed: MoveTo, LineTo, QuadTo, CubicTo, ArcTo
// and Close are the only implementations.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LineTo appends a straight segment to (X, Y).
type LineTo struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// QuadTo appends a quadratic Bézier segment with control point (CX, CY).
type QuadTo struct {
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// CubicTo appends a cubic Bézier segment with control points
// (C1X, C1Y) and (C2X, C2Y).
type CubicTo struct {
	C1X float64 `json:"c1x"`
	C1Y float64 `json:"c1y"`
	C2X float64 `json:"c2x"`
	C2Y float64 `json:"c2y"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

// ArcTo appends an elliptical arc in SVG notation.
// Both backends approximate the arc by a straight chord to (X, Y).
type ArcTo struct {
	RX       float64 `json:"rx"`
	RY       float64 `json:"ry"`
	Rotation float64 `json:"rotation"`
	LargeArc bool    `json:"large_arc"`
	Sweep    bool    `json:"sweep"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isPathCommand()  {}
func (LineTo) isPathCommand()  {}
func (QuadTo) isPathCommand()  {}
func (CubicTo) isPathCommand() {}
func (ArcTo) isPathCommand()   {}
func (Close) isPathCommand()   {}

// RectPath returns the commands for a closed axis-aligned rectangle.
func RectPath(x, y, w, h float64) []PathCommand {
	return []PathCommand{
		MoveTo{X: x, Y: y},
		LineTo{X: x + w, Y: y},
		LineTo{X: x + w, Y: y + h},
		LineTo{X: x, Y: y + h},
		Close{},
	}
}

// GradientStop is a color at a position in [0, 1] along a gradient.
// Stops in a list are ordered by non-decreasing position.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// GradientType selects how the gradient parameter is computed for a point.
// The implementations are LinearGradient and RadialGradient.
type GradientType interface {
	isGradientType()
}

// LinearGradient varies the color along the direction
// (sin(Angle), cos(Angle)) in the unit square of the shape.
type LinearGradient struct {
	Angle float64 `json:"angle"` // radians
}

// RadialGradient varies the color with the normalized elliptical distance
// from the center of the shape's bounding box.
type RadialGradient struct{}

func (LinearGradient) isGradientType() {}
func (RadialGradient) isGradientType() {}

// StopColor interpolates between the two stops around t.  Outside
// the range of the stops, the color of the nearest end stop is used.
// Interpolated colors are opaque.
func StopColor(stops []GradientStop, t float64) Color {
	if len(stops) == 0 {
		return White
	}
	first, last := stops[0], stops[len(stops)-1]
	if len(stops) == 1 || t <= first.Position {
		return first.Color
	}
	if t >= last.Position {
		return last.Color
	}
	for i := range len(stops) - 1 {
		a, b := stops[i], stops[i+1]
		if t < a.Position || t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return a.Color
		}
		u := (t - a.Position) / span
		lerp := func(p, q uint8) uint8 {
			return uint8(float64(p) + (float64(q)-float64(p))*u)
		}
		return Color{
			R: lerp(a.Color.R, b.Color.R),
			G: lerp(a.Color.G, b.Color.G),
			B: lerp(a.Color.B, b.Color.B),
			A: 255,
		}
	}
	return first.Color
}
