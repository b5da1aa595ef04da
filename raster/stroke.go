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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a straight piece of a stroked path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T rotated by 90° counter-clockwise
}

// stroke computes the coverage of the outline of p, using the width,
// cap, join and miter limit of r.  The path must consist of straight
// segments, as produced by flatten.ToPath.  Coverage rows are passed to emit as
// for fillNonZero.
func (r *coverageRasterizer) stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.splitSegments(p)
	if len(r.segsStart) == 0 && len(r.singlePoint) == 0 {
		return
	}

	r.outline = r.outline[:0]
	r.outlineStart = r.outlineStart[:0]

	// Subpaths without a direction are only visible with round caps.
	if r.cap == graphics.LineCapRound {
		for _, pt := range r.singlePoint {
			start := len(r.outline)
			r.addArc(pt, r.width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.outlineStart = append(r.outlineStart, start)
		}
	}

	for i := range r.segsStart {
		start := len(r.outline)
		r.outlineSubpath(r.subpathSegments(i), r.segsClosed[i])
		if len(r.outline)-start >= 3 {
			r.outlineStart = append(r.outlineStart, start)
		} else {
			r.outline = r.outline[:start]
		}
	}

	// All outline polygons are filled together, so that overlapping
	// parts are painted only once.
	r.beginEdges()
	for i, start := range r.outlineStart {
		end := len(r.outline)
		if i+1 < len(r.outlineStart) {
			end = r.outlineStart[i+1]
		}
		poly := r.outline[start:end]
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterize(nonZero, emit)
}

func (r *coverageRasterizer) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsStart) {
		end = r.segsStart[i+1]
	}
	return r.segs[r.segsStart[i]:end]
}

// splitSegments collects the straight segments of p, grouped by subpath.
// Subpaths which consist of a single point are collected separately.
// Curves must be flattened by the caller; they are ignored here.
func (r *coverageRasterizer) splitSegments(p path.Path) {
	r.segs = r.segs[:0]
	r.segsStart = r.segsStart[:0]
	r.segsClosed = r.segsClosed[:0]
	r.singlePoint = r.singlePoint[:0]

	var current, start vec.Vec2
	first := 0
	open := false
	drawn := false

	finish := func(closed bool) {
		if len(r.segs) == first {
			r.singlePoint = append(r.singlePoint, start)
		} else {
			r.segsStart = append(r.segsStart, first)
			r.segsClosed = append(r.segsClosed, closed)
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && (len(r.segs) > first || drawn) {
				finish(false)
			}
			current = pts[0]
			start = current
			first = len(r.segs)
			open = true
			drawn = false

		case path.CmdLineTo:
			if !open {
				continue
			}
			drawn = true
			r.addSegment(current, pts[0])
			current = pts[0]

		case path.CmdClose:
			if !open {
				continue
			}
			if current != start {
				r.addSegment(current, start)
			}
			finish(true)
			current = start
			first = len(r.segs)
			open = false
			drawn = false
		}
	}
	if open && (len(r.segs) > first || drawn) {
		finish(false)
	}
}

func (r *coverageRasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if !(l >= zeroLengthThreshold) || math.IsInf(l, 0) {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// cross returns the z component of the cross product of two tangents.
func cross(t1, t2 vec.Vec2) float64 {
	return t1.X*t2.Y - t1.Y*t2.X
}

// outlineSubpath appends the outline polygon of one subpath to r.outline.
// The polygon runs forward along the +N side and back along the -N side.
// Join geometry is added on the outer side of each corner.
func (r *coverageRasterizer) outlineSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		turnClose := cross(last.T, first.T)

		// forward along +N, including the corner back to the start
		r.outline = append(r.outline, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			seg := &segs[i]
			next := first
			turn := turnClose
			if i < len(segs)-1 {
				next = &segs[i+1]
				turn = cross(seg.T, next.T)
			}
			switch {
			case math.Abs(turn) < collinearityThreshold:
				r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)), next.A.Add(next.N.Mul(d)))
			case turn > 0:
				r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
			default:
				r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
				r.addJoin(seg.B, seg.T, next.T, d, true)
				r.outline = append(r.outline, next.A.Add(next.N.Mul(d)))
			}
		}

		// backward along -N, starting with the closing corner
		switch {
		case math.Abs(turnClose) < collinearityThreshold:
			r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)), last.B.Sub(last.N.Mul(d)))
		case turnClose > 0:
			r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)))
			r.addJoin(first.A, last.T, first.T, d, false)
			r.outline = append(r.outline, last.B.Sub(last.N.Mul(d)))
		default:
			r.innerCorner(first.A, last.T, first.T, last.N, first.N, d, false)
		}
		for i := len(segs) - 1; i > 0; i-- {
			seg := &segs[i]
			prev := &segs[i-1]
			turn := cross(prev.T, seg.T)
			switch {
			case math.Abs(turn) < collinearityThreshold:
				r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)), prev.B.Sub(prev.N.Mul(d)))
			case turn > 0:
				r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
				r.addJoin(seg.A, prev.T, seg.T, d, false)
				r.outline = append(r.outline, prev.B.Sub(prev.N.Mul(d)))
			default:
				r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
			}
		}
		r.outline = append(r.outline, first.A.Sub(first.N.Mul(d)))
		return
	}

	// open subpath: caps at both ends
	r.addCap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		turn := cross(seg.T, next.T)
		switch {
		case math.Abs(turn) < collinearityThreshold:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
		case turn > 0:
			skip = r.innerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.outline = append(r.outline, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.outline = append(r.outline, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		turn := cross(prev.T, seg.T)
		switch {
		case math.Abs(turn) < collinearityThreshold:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
		case turn > 0:
			r.outline = append(r.outline, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.innerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// addCap appends the cap at P.  T points away from the stroke.
func (r *coverageRasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra points
}

// innerPoint returns the intersection of the two offset lines on the
// inner side of a corner at P.
func innerPoint(P, T1, T2 vec.Vec2, d float64, plusSide bool) (vec.Vec2, bool) {
	c := T1.Dot(T2)
	if c > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + c) / 2)
	if half < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
	if !plusSide {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * half))), true
}

// innerCorner appends the inner side of a corner.  It returns true if a
// single intersection point was used, in which case the caller must not
// add the offset start point of the next segment.
func (r *coverageRasterizer) innerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, plusSide bool) bool {
	if pt, ok := innerPoint(P, T1, T2, d, plusSide); ok {
		r.outline = append(r.outline, pt)
		return true
	}
	if plusSide {
		r.outline = append(r.outline, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.outline = append(r.outline, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin appends the outer side of the join at P, where the tangent
// turns from T1 to T2.
func (r *coverageRasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, plusSide bool) {
	c := T1.Dot(T2)
	s := cross(T1, T2)
	if math.Abs(s) < collinearityThreshold {
		return
	}
	if c < cuspCosineThreshold {
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	switch r.join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2)
		// for the angle θ between the tangents.
		half := math.Sqrt((1 + c) / 2)
		if half > 0 && 1/half <= r.miterLimit+1e-10 {
			dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
			if !plusSide {
				dir = dir.Mul(-1)
			}
			if l := dir.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, P.Add(dir.Mul(d/(l*half))))
			}
		}
		// beyond the miter limit this is a bevel

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, c)))
		if plusSide {
			N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
			if s > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			negN2 := vec.Vec2{X: T2.Y, Y: -T2.X}
			if s > 0 {
				r.addArc(P, d, negN2, -angle, false)
			} else {
				r.addArc(P, d, negN2, angle, false)
			}
		}
	}
	// bevel joins need no extra points
}

// addArc appends points on a circular arc around center, starting in
// direction dir and turning by sweep radians (positive is
// counter-clockwise).  The start point is only added if withStart is set.
func (r *coverageRasterizer) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, withStart bool) {
	rotate := func(a float64) vec.Vec2 {
		cos, sin := math.Cos(a), math.Sin(a)
		return vec.Vec2{X: dir.X*cos - dir.Y*sin, Y: dir.X*sin + dir.Y*cos}
	}

	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= r.flatness {
		// A chord with angle θ deviates from the circle by r(1-cos(θ/2)).
		step := 2 * math.Acos(1-r.flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if withStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		a := sweep * float64(i) / float64(n)
		r.outline = append(r.outline, center.Add(rotate(a).Mul(radius)))
	}
}
