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

package flatten

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/ir"
)

func TestStepCounts(t *testing.T) {
	cases := []struct {
		name string
		cmd  ir.PathCommand
		want int
	}{
		{"line", ir.LineTo{X: 10, Y: 0}, 1},
		{"quad", ir.QuadTo{CX: 5, CY: 10, X: 10, Y: 0}, QuadSteps},
		{"cubic", ir.CubicTo{C1X: 0, C1Y: 10, C2X: 10, C2Y: 10, X: 10, Y: 0}, CubicSteps},
		{"arc", ir.ArcTo{RX: 5, RY: 5, X: 10, Y: 0}, ArcSteps},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Flatten([]ir.PathCommand{ir.MoveTo{}, c.cmd}, 1)
			if len(res) != 1 {
				t.Fatalf("got %d subpaths", len(res))
			}
			if got := len(res[0]) - 1; got != c.want {
				t.Errorf("got %d segments, want %d", got, c.want)
			}
			last := res[0][len(res[0])-1]
			if math.Abs(last.X-10) > 1e-9 || math.Abs(last.Y) > 1e-9 {
				t.Errorf("curve ends at %v", last)
			}
		})
	}
}

func TestArcIsChord(t *testing.T) {
	res := Flatten([]ir.PathCommand{
		ir.MoveTo{X: 0, Y: 0},
		ir.ArcTo{RX: 50, RY: 50, LargeArc: true, Sweep: true, X: 12, Y: 24},
	}, 1)
	for _, p := range res[0] {
		// all points lie on the line y = 2x
		if math.Abs(p.Y-2*p.X) > 1e-9 {
			t.Errorf("point %v is off the chord", p)
		}
	}
}

func TestScale(t *testing.T) {
	res := Flatten([]ir.PathCommand{
		ir.MoveTo{X: 1, Y: 2},
		ir.LineTo{X: 3, Y: 4},
	}, 2.5)
	want := []vec.Vec2{{X: 2.5, Y: 5}, {X: 7.5, Y: 10}}
	if len(res) != 1 || len(res[0]) != 2 || res[0][0] != want[0] || res[0][1] != want[1] {
		t.Errorf("got %v, want [%v]", res, want)
	}
}

func TestClose(t *testing.T) {
	// Close adds the start point
	res := Flatten(ir.RectPath(0, 0, 10, 10), 1)
	if len(res) != 1 {
		t.Fatalf("got %d subpaths", len(res))
	}
	sp := res[0]
	if len(sp) != 5 || sp[4] != sp[0] {
		t.Errorf("rectangle not closed: %v", sp)
	}

	// no duplicate point if the path already returned to the start
	res = Flatten([]ir.PathCommand{
		ir.MoveTo{X: 0, Y: 0},
		ir.LineTo{X: 10, Y: 0},
		ir.LineTo{X: 0, Y: 0},
		ir.Close{},
	}, 1)
	if len(res[0]) != 3 {
		t.Errorf("got %d points, want 3", len(res[0]))
	}

	// after Close, drawing continues from the start point
	res = Flatten([]ir.PathCommand{
		ir.MoveTo{X: 1, Y: 1},
		ir.LineTo{X: 5, Y: 1},
		ir.Close{},
		ir.QuadTo{CX: 1, CY: 1, X: 1, Y: 1},
	}, 1)
	for _, p := range res[0][3:] {
		if p != (vec.Vec2{X: 1, Y: 1}) {
			t.Errorf("curve after Close does not start at subpath start: %v", p)
		}
	}
}

func TestMoveToSplits(t *testing.T) {
	cmds := append(ir.RectPath(0, 0, 100, 100), ir.RectPath(25, 25, 50, 50)...)
	res := Flatten(cmds, 1)
	if len(res) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(res))
	}
	if res[1][0] != (vec.Vec2{X: 25, Y: 25}) {
		t.Errorf("second subpath starts at %v", res[1][0])
	}

	// a lone MoveTo still yields a subpath
	res = Flatten([]ir.PathCommand{ir.MoveTo{X: 3, Y: 4}}, 1)
	if len(res) != 1 || len(res[0]) != 1 {
		t.Errorf("got %v", res)
	}

	// drawing before any MoveTo starts at the origin
	res = Flatten([]ir.PathCommand{ir.LineTo{X: 3, Y: 4}}, 1)
	if len(res) != 1 || res[0][0] != (vec.Vec2{}) {
		t.Errorf("got %v", res)
	}
}

func TestBounds(t *testing.T) {
	res := Flatten([]ir.PathCommand{
		ir.MoveTo{X: 10, Y: 20},
		ir.LineTo{X: -5, Y: 40},
		ir.LineTo{X: 30, Y: math.NaN()},
	}, 1)
	bbox, ok := Bounds(res)
	if !ok {
		t.Fatal("no bounds")
	}
	if bbox.LLx != -5 || bbox.LLy != 20 || bbox.URx != 10 || bbox.URy != 40 {
		t.Errorf("got %v", bbox)
	}

	if _, ok := Bounds(nil); ok {
		t.Error("empty input has bounds")
	}
}

func TestToPath(t *testing.T) {
	res := Flatten(ir.RectPath(0, 0, 10, 10), 1)
	var cmds []path.Command
	for cmd := range ToPath(res) {
		cmds = append(cmds, cmd)
	}
	want := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %v, want %v", cmds, want)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], want[i])
		}
	}
}
