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
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/flatten"
)

// compareNaNLast orders floats ascending, with NaN values after all
// other values.  This gives a total order, so sorting always terminates
// with a well-defined result.
func compareNaNLast(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// evenOddSpans calls fn for every horizontal run of pixels inside the
// given device space polygons, using the even-odd rule.  Each subpath is
// closed implicitly.  Pixels are tested at their vertical center y+0.5;
// a pixel belongs to a span if its horizontal center lies in it.
// The spans are clipped to [0, w) × [0, h).
func evenOddSpans(subpaths [][]vec.Vec2, w, h int, fn func(y, x0, x1 int)) {
	bbox, ok := flatten.Bounds(subpaths)
	if !ok {
		return
	}
	y0 := max(floorInt(bbox.LLy), 0)
	y1 := min(floorInt(bbox.URy)+1, h)

	var xs []float64
	for y := y0; y < y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, sp := range subpaths {
			n := len(sp)
			if n < 2 {
				continue
			}
			for i := range n {
				a, b := sp[i], sp[(i+1)%n]
				if (a.Y <= sy && sy < b.Y) || (b.Y <= sy && sy < a.Y) {
					xs = append(xs, a.X+(sy-a.Y)/(b.Y-a.Y)*(b.X-a.X))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		slices.SortFunc(xs, compareNaNLast)

		for i := 0; i+1 < len(xs); i += 2 {
			xa, xb := xs[i], xs[i+1]
			if math.IsNaN(xa) || math.IsNaN(xb) {
				break
			}
			x0 := max(ceilInt(xa-0.5), 0)
			x1 := min(ceilInt(xb-0.5), w)
			if x0 < x1 {
				fn(y, x0, x1)
			}
		}
	}
}

// ceilInt is the counterpart of floorInt.
func ceilInt(x float64) int {
	return -floorInt(-x)
}
