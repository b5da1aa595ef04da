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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// pathData stores a path as a list of commands and their points.
// The zero value is an empty path.
type pathData struct {
	cmds []path.Command
	pts  []vec.Vec2
}

func (d *pathData) MoveTo(p vec.Vec2) *pathData {
	d.cmds = append(d.cmds, path.CmdMoveTo)
	d.pts = append(d.pts, p)
	return d
}

func (d *pathData) LineTo(p vec.Vec2) *pathData {
	d.cmds = append(d.cmds, path.CmdLineTo)
	d.pts = append(d.pts, p)
	return d
}

func (d *pathData) QuadTo(c, p vec.Vec2) *pathData {
	d.cmds = append(d.cmds, path.CmdQuadTo)
	d.pts = append(d.pts, c, p)
	return d
}

func (d *pathData) CubeTo(c1, c2, p vec.Vec2) *pathData {
	d.cmds = append(d.cmds, path.CmdCubeTo)
	d.pts = append(d.pts, c1, c2, p)
	return d
}

func (d *pathData) Close() *pathData {
	d.cmds = append(d.cmds, path.CmdClose)
	return d
}

// Reset empties the path, keeping the allocated storage.
func (d *pathData) Reset() {
	d.cmds = d.cmds[:0]
	d.pts = d.pts[:0]
}

// Iter returns the path as an iterator.  The point slices passed to
// the loop body alias the stored points.
func (d *pathData) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		k := 0
		for _, cmd := range d.cmds {
			n := 0
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			if !yield(cmd, d.pts[k:k+n:k+n]) {
				return
			}
			k += n
		}
	}
}
