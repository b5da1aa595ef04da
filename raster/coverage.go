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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// coverageRasterizer computes anti-aliased pixel coverage for filled and
// stroked paths.  It is used for wide strokes and for glyph outlines.
//
// One instance is used for all elements of a page.  The internal buffers
// grow as needed and are reused between calls.
// A coverageRasterizer is not safe for concurrent use.
type coverageRasterizer struct {
	// ctm maps user space to device space.  Must be non-singular.
	ctm matrix.Matrix

	// clip bounds the output, in device coordinates.
	// The coordinates must be integers.
	clip rect.Rect

	// flatness is the curve approximation tolerance in device pixels.
	flatness float64

	// width is the stroke width in user space.
	width float64

	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64

	// bufferLimit is the largest bounding box area, in pixels, for which
	// the whole path is accumulated in 2D buffers.  Larger paths are
	// processed one scanline at a time using an active edge list.
	bufferLimit int

	cover     []float32 // signed vertical extent per pixel, overwritten by the result
	area      []float32 // area to the right of the edge within each pixel
	edges     []edge
	active    []int
	rowFirst  []int
	rowLast   []int
	crossings []float64

	// stroke outlines, all polygons stored contiguously
	outline      []vec.Vec2
	outlineStart []int

	// flattened stroke input
	segs        []strokeSegment
	segsStart   []int
	segsClosed  []bool
	singlePoint []vec.Vec2

	// device space bounding box of edges
	haveEdges        bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

func newCoverageRasterizer(clip rect.Rect) *coverageRasterizer {
	r := &coverageRasterizer{}
	r.reset(clip)
	return r
}

// reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *coverageRasterizer) reset(clip rect.Rect) {
	r.ctm = matrix.Identity
	r.clip = clip
	r.flatness = defaultFlatness
	r.width = 1
	r.cap = graphics.LineCapButt
	r.join = graphics.LineJoinMiter
	r.miterLimit = defaultMiterLimit
	r.bufferLimit = defaultBufferLimit
}

// linear applies the linear part of the CTM to v.
func (r *coverageRasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.ctm[0]*v.X + r.ctm[2]*v.Y,
		Y: r.ctm[1]*v.X + r.ctm[3]*v.Y,
	}
}

// flattenQuad splits a quadratic Bézier curve into line segments.
// The number of segments depends on the curve size in device space.
func (r *coverageRasterizer) flattenQuad(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.flatness {
		n = curveSegments(math.Sqrt(dev / r.flatness))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits a cubic Bézier curve into line segments,
// using Wang's formula for the segment count.
func (r *coverageRasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.flatness)); nf > 1 {
			n = curveSegments(nf)
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// curveSegments rounds up a segment count, limited to maxCurveSegments.
func curveSegments(nf float64) int {
	if !(nf < maxCurveSegments) {
		return maxCurveSegments
	}
	return int(math.Ceil(nf))
}

// fillNonZero computes the coverage of p under the nonzero winding rule.
// Rows of coverage values are passed to emit; the slice is only valid
// during the call.
func (r *coverageRasterizer) fillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZero, emit)
}

type windingRule int

const (
	nonZero windingRule = iota
	evenOdd
)

// fill computes the coverage of p under the given winding rule.
func (r *coverageRasterizer) fill(p path.Path, rule windingRule, emit func(y, xMin int, coverage []float32)) {
	r.beginEdges()

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.addEdge(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(current, pts[0], pts[1], r.addEdge)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.addEdge)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if current != start {
		r.addEdge(current, start)
	}

	r.rasterize(rule, emit)
}

// rasterize turns the collected edges into coverage rows.
func (r *coverageRasterizer) rasterize(rule windingRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.bufferLimit {
		r.fillBuffered(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, rule, emit)
	}
}

func (r *coverageRasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.haveEdges = false
}

// edgeBounds returns the integer bounding box of the collected edges,
// clipped to the clip rectangle.
func (r *coverageRasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if !r.haveEdges {
		return 0, 0, 0, 0, false
	}

	xMin = max(floorInt(r.devXMin), int(r.clip.LLx))
	xMax = min(floorInt(r.devXMax)+1, int(r.clip.URx))
	yMin = max(floorInt(r.devYMin), int(r.clip.LLy))
	yMax = min(floorInt(r.devYMax)+1, int(r.clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a segment to device space and records it.
// Horizontal and non-finite segments are dropped.
func (r *coverageRasterizer) addEdge(p0, p1 vec.Vec2) {
	x0 := r.ctm[0]*p0.X + r.ctm[2]*p0.Y + r.ctm[4]
	y0 := r.ctm[1]*p0.X + r.ctm[3]*p0.Y + r.ctm[5]
	x1 := r.ctm[0]*p1.X + r.ctm[2]*p1.Y + r.ctm[4]
	y1 := r.ctm[1]*p1.X + r.ctm[3]*p1.Y + r.ctm[5]

	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if !r.haveEdges {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.haveEdges = true
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// For every pixel two values are accumulated:
//
//	cover: the signed vertical extent of edge pieces inside the pixel
//	area:  cover weighted by the fraction of the pixel right of the edge
//
// Summing cover from the left and adding the area of the current pixel
// gives the signed area of the path inside each pixel.  The magnitude,
// clamped to 1 (nonzero) or folded (even-odd), is the pixel coverage.

// accumulate adds the part of e inside scanline y to the buffers.
// The buffers cover the pixel columns [bxMin, bxMax).  Edge pieces to
// the left of the buffer contribute to the first column, pieces to the
// right are ignored.
func (r *coverageRasterizer) accumulate(e *edge, y int, cover, area []float32, bxMin, bxMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	xLeft, xRight := min(xTop, xBot), max(xTop, xBot)
	pixLeft := floorInt(xLeft)
	pixRight := floorInt(xRight)

	if pixRight < bxMin {
		v := sign * float32(yBot-yTop)
		cover[0] += v
		area[0] += v
		return
	}
	if pixLeft >= bxMax {
		return
	}
	if pixLeft == pixRight {
		r.accumulateColumn(e, yTop, yBot, sign, pixLeft, cover, area, bxMin, bxMax)
		return
	}

	// Split the piece where it crosses pixel boundaries.  Boundaries
	// outside the buffer are not needed, since everything left of the
	// buffer lands in the first column and everything right of it is
	// dropped.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := max(pixLeft+1, bxMin); x <= min(pixRight, bxMax); x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		v := sign * float32(y1-y0)

		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := floorInt(xMid)
		switch {
		case pix < bxMin:
			cover[0] += v
			area[0] += v
		case pix < bxMax:
			k := pix - bxMin
			cover[k] += v
			area[k] += v * float32(1-(xMid-float64(pix)))
		}
	}
}

// accumulateColumn handles an edge piece inside a single pixel column.
func (r *coverageRasterizer) accumulateColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bxMin, bxMax int) {
	v := sign * float32(yBot-yTop)
	if pix < bxMin {
		cover[0] += v
		area[0] += v
		return
	}
	if pix >= bxMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	k := pix - bxMin
	cover[k] += v
	area[k] += v * float32(1-(xMid-float64(pix)))
}

// integrate converts the accumulated values of one row into coverage,
// in place.
func integrate(cover, area []float32, rule windingRule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == nonZero {
			cover[i] = min(raw, 1)
		} else {
			m := raw - 2*float32(int(raw/2))
			d := 1 - m
			if d < 0 {
				d = -d
			}
			cover[i] = 1 - d
		}
	}
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// midColumn returns the x coordinate at the vertical middle of the part
// of e inside scanline y.  The second return value is false if e does not
// intersect the scanline.
func (e *edge) midColumn(y int) (float64, bool) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return 0, false
	}
	return e.x0 + e.dxdy*((yTop+yBot)/2-e.y0), true
}

// fillBuffered accumulates all edges into one 2D buffer covering the
// bounding box, then integrates the rows.
func (r *coverageRasterizer) fillBuffered(xMin, xMax, yMin, yMax int, rule windingRule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	h := yMax - yMin

	size := w * h
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	r.rowFirst = slices.Grow(r.rowFirst[:0], h)[:h]
	r.rowLast = slices.Grow(r.rowLast[:0], h)[:h]
	for i := range h {
		r.rowFirst[i] = w
		r.rowLast[i] = -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		top := max(floorInt(min(e.y0, e.y1)), yMin)
		bot := min(floorInt(max(e.y0, e.y1))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * w
			r.accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)

			if xm, ok := e.midColumn(y); ok {
				k := min(max(floorInt(xm), xMin), xMax-1) - xMin
				r.rowFirst[row] = min(r.rowFirst[row], k)
				r.rowLast[row] = max(r.rowLast[row], k)
			}
		}
	}

	for row := range h {
		if r.rowLast[row] < 0 {
			continue
		}
		off := row * w
		coverage := r.cover[off : off+w]
		integrate(coverage, r.area[off:off+w], rule)
		if trimmed, k := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// fillScanlines processes one scanline at a time, keeping a list of the
// edges which intersect the current scanline.
func (r *coverageRasterizer) fillScanlines(xMin, xMax, yMin, yMax int, rule windingRule, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			if _, ok := e.midColumn(y); ok {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

// floorInt returns floor(x) as an int.  Values outside of a safe range,
// including infinities, are clamped and NaN maps to zero.
func floorInt(x float64) int {
	const limit = 1 << 30
	switch {
	case x != x:
		return 0
	case x < -limit:
		return -limit
	case x > limit:
		return limit
	}
	return int(math.Floor(x))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Default parameters of the coverage rasterizer.
const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit converts joins with an angle below about 11.5
	// degrees into bevels.
	defaultMiterLimit = 10.0

	// defaultBufferLimit selects between the two fill strategies.
	defaultBufferLimit = 65536
)

// Numerical tolerances.
// maxCurveSegments bounds the work for curves with extreme coordinates.
const maxCurveSegments = 1000

const (
	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6

	// cuspCosineThreshold detects segments which double back,
	// cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
