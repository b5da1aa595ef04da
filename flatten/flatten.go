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

// Package flatten converts vector paths into polylines.
//
// Curves are approximated with a fixed number of straight segments, which
// keeps the output independent of the output resolution apart from the
// final scaling.  Both the fill and the clipped-image code of the raster
// backend use this package.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/ir"
)

// Number of straight segments used for each curve type.
const (
	QuadSteps  = 8
	CubicSteps = 12

	// ArcSteps is the number of segments of an elliptical arc.  Arcs are
	// approximated by the straight chord between their end points, so all
	// generated points lie on that chord.
	ArcSteps = 12
)

// Flatten converts the path commands into a list of subpaths.
// Every coordinate is multiplied by scale.
//
// A MoveTo ends the current subpath and starts a new one.  Close appends
// the start point of the subpath, unless the current point already
// coincides with it, and makes the start point the current point.
// Drawing commands before the first MoveTo start a subpath at the origin.
func Flatten(cmds []ir.PathCommand, scale float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	var cur []vec.Vec2
	var current, start vec.Vec2

	begin := func() {
		if len(cur) == 0 {
			cur = append(cur, start.Mul(scale))
		}
	}

	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case ir.MoveTo:
			if len(cur) > 0 {
				res = append(res, cur)
			}
			current = vec.Vec2{X: c.X, Y: c.Y}
			start = current
			cur = []vec.Vec2{current.Mul(scale)}

		case ir.LineTo:
			begin()
			current = vec.Vec2{X: c.X, Y: c.Y}
			cur = append(cur, current.Mul(scale))

		case ir.QuadTo:
			begin()
			p0 := current
			p1 := vec.Vec2{X: c.CX, Y: c.CY}
			p2 := vec.Vec2{X: c.X, Y: c.Y}
			for i := 1; i <= QuadSteps; i++ {
				t := float64(i) / QuadSteps
				s := 1 - t
				pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
				cur = append(cur, pt.Mul(scale))
			}
			current = p2

		case ir.CubicTo:
			begin()
			p0 := current
			p1 := vec.Vec2{X: c.C1X, Y: c.C1Y}
			p2 := vec.Vec2{X: c.C2X, Y: c.C2Y}
			p3 := vec.Vec2{X: c.X, Y: c.Y}
			for i := 1; i <= CubicSteps; i++ {
				t := float64(i) / CubicSteps
				s := 1 - t
				pt := p0.Mul(s * s * s).
					Add(p1.Mul(3 * s * s * t)).
					Add(p2.Mul(3 * s * t * t)).
					Add(p3.Mul(t * t * t))
				cur = append(cur, pt.Mul(scale))
			}
			current = p3

		case ir.ArcTo:
			begin()
			p0 := current
			p1 := vec.Vec2{X: c.X, Y: c.Y}
			d := p1.Sub(p0)
			for i := 1; i <= ArcSteps; i++ {
				t := float64(i) / ArcSteps
				cur = append(cur, p0.Add(d.Mul(t)).Mul(scale))
			}
			current = p1

		case ir.Close:
			if len(cur) > 0 && current != start {
				cur = append(cur, start.Mul(scale))
			}
			current = start
		}
	}
	if len(cur) > 0 {
		res = append(res, cur)
	}
	return res
}

// Bounds returns the smallest rectangle containing all points.
// The second return value is false if there are no points.
func Bounds(subpaths [][]vec.Vec2) (rect.Rect, bool) {
	bbox := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	found := false
	for _, sp := range subpaths {
		for _, p := range sp {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				continue
			}
			bbox.LLx = min(bbox.LLx, p.X)
			bbox.LLy = min(bbox.LLy, p.Y)
			bbox.URx = max(bbox.URx, p.X)
			bbox.URy = max(bbox.URy, p.Y)
			found = true
		}
	}
	if !found {
		return rect.Rect{}, false
	}
	return bbox, true
}

// ToPath converts flattened subpaths into a path.  Subpaths whose last
// point equals their first point are closed.
func ToPath(subpaths [][]vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, sp := range subpaths {
			if len(sp) == 0 {
				continue
			}
			buf[0] = sp[0]
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			n := len(sp)
			closed := n > 2 && sp[n-1] == sp[0]
			if closed {
				n--
			}
			for _, p := range sp[1:n] {
				buf[0] = p
				if !yield(path.CmdLineTo, buf[:]) {
					return
				}
			}
			if closed {
				if !yield(path.CmdClose, nil) {
					return
				}
			}
		}
	}
}
