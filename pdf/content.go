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


package pdf

import (
	"bytes"
	"math"

	"seehuhn.de/go/docrender/flatten"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

const (
	// kappa is the control point distance for a quarter circle of
	// radius 1 approximated by a cubic Bézier curve.
	kappa = 0.5522847498

	gradientStrips = 50
)

var (
	placeholderFill   = ir.RGB(224, 224, 224)
	placeholderBorder = ir.RGB(179, 179, 179)
	tableBorder       = ir.RGB(204, 204, 204)
)

// content builds the content stream of one page.  Page coordinates have
// the origin in the top-left corner, PDF coordinates in the bottom-left.
type content struct {
	bytes.Buffer
	h float64
}

func pageContent(page *ir.Page) []byte {
	c := &content{h: page.Height}
	for _, e := range page.Elements {
		c.element(e)
	}
	return c.Bytes()
}

func (c *content) element(e ir.Element) {
	switch e := e.(type) {
	case ir.Text:
		c.text(e.X, e.Y, e.Text, e.Style)
	case ir.Line:
		c.strokeColor(e.Color, e.Width)
		c.nums(e.X1, c.h-e.Y1)
		c.WriteString(" m\n")
		c.nums(e.X2, c.h-e.Y2)
		c.WriteString(" l\nS\n")
	case ir.Rect:
		if e.Fill != nil {
			c.fillColor(*e.Fill)
			c.rect(e.X, e.Y, e.Width, e.Height)
			c.WriteString("f\n")
		}
		if e.Stroke != nil {
			c.strokeColor(*e.Stroke, e.StrokeWidth)
			c.rect(e.X, e.Y, e.Width, e.Height)
			c.WriteString("S\n")
		}
	case ir.GradientRect:
		c.gradient(e)
	case ir.Ellipse:
		if e.Fill != nil {
			c.fillColor(*e.Fill)
			c.ellipse(e.CX, e.CY, e.RX, e.RY)
			c.WriteString("f\n")
		}
		if e.Stroke != nil {
			c.strokeColor(*e.Stroke, e.StrokeWidth)
			c.ellipse(e.CX, e.CY, e.RX, e.RY)
			c.WriteString("S\n")
		}
	case ir.Path:
		if e.Fill != nil {
			c.fillColor(*e.Fill)
			c.path(e.Commands)
			c.WriteString("f*\n")
		}
		if e.Stroke != nil {
			c.strokeColor(*e.Stroke, e.StrokeWidth)
			c.path(e.Commands)
			c.WriteString("S\n")
		}
	case ir.Image:
		c.placeholder(e.X, e.Y, e.Width, e.Height)
	case ir.EllipseImage:
		c.placeholder(e.CX-e.RX, e.CY-e.RY, 2*e.RX, 2*e.RY)
		if e.Stroke != nil {
			c.strokeColor(*e.Stroke, e.StrokeWidth)
			c.ellipse(e.CX, e.CY, e.RX, e.RY)
			c.WriteString("S\n")
		}
	case ir.PathImage:
		bbox, ok := flatten.Bounds(flatten.Flatten(e.Commands, 1))
		if ok {
			c.placeholder(bbox.LLx, bbox.LLy, bbox.URx-bbox.LLx, bbox.URy-bbox.LLy)
		}
		if e.Stroke != nil {
			c.strokeColor(*e.Stroke, e.StrokeWidth)
			c.path(e.Commands)
			c.WriteString("S\n")
		}
	case ir.TableBlock:
		for _, box := range e.Table.Layout(e.X, e.Y, e.Width) {
			c.strokeColor(tableBorder, 0.5)
			c.rect(box.X, box.Y, box.Width, box.Height)
			c.WriteString("S\n")
			c.text(box.X+ir.TableCellPadding, box.Y+ir.TableCellPadding,
				box.Cell.Text, box.Cell.Style)
		}
	default:
		logging.Logger().Warn("element not written", "kind", ir.Kind(e))
	}
}

// nums writes the numbers separated by spaces.
func (c *content) nums(xs ...float64) {
	for i, x := range xs {
		if i > 0 {
			c.WriteByte(' ')
		}
		c.WriteString(formatNumber(x))
	}
}

func (c *content) rgb(col ir.Color) {
	c.nums(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255)
}

func (c *content) fillColor(col ir.Color) {
	c.rgb(col)
	c.WriteString(" rg\n")
}

func (c *content) strokeColor(col ir.Color, width float64) {
	c.rgb(col)
	c.WriteString(" RG\n")
	c.nums(width)
	c.WriteString(" w\n")
}

// rect appends a rectangle given by its top-left corner.
func (c *content) rect(x, y, w, h float64) {
	c.nums(x, c.h-y-h, w, h)
	c.WriteString(" re\n")
}

// text writes one text object per line.  The top of the first line is
// at y.
func (c *content) text(x, y float64, text string, style ir.FontStyle) {
	if text == "" {
		return
	}
	size := style.Size
	for i, line := range ir.SplitLines(text) {
		if line == "" {
			continue
		}
		ty := c.h - y - size - float64(i)*size*ir.LineSpacing
		c.WriteString("BT\n/F1 ")
		c.nums(size)
		c.WriteString(" Tf\n")
		c.fillColor(style.Color)
		c.nums(x, ty)
		c.WriteString(" Td\n")
		c.WriteString(hexText(line))
		c.WriteString(" Tj\nET\n")
	}
}

func (c *content) ellipse(cx, cy, rx, ry float64) {
	y := c.h - cy
	kx, ky := rx*kappa, ry*kappa
	c.nums(cx+rx, y)
	c.WriteString(" m\n")
	c.curve(cx+rx, y+ky, cx+kx, y+ry, cx, y+ry)
	c.curve(cx-kx, y+ry, cx-rx, y+ky, cx-rx, y)
	c.curve(cx-rx, y-ky, cx-kx, y-ry, cx, y-ry)
	c.curve(cx+kx, y-ry, cx+rx, y-ky, cx+rx, y)
}

// curve appends a cubic Bézier segment given in PDF coordinates.
func (c *content) curve(x1, y1, x2, y2, x3, y3 float64) {
	c.nums(x1, y1, x2, y2, x3, y3)
	c.WriteString(" c\n")
}

// path appends the path commands.  Quadratic segments are converted to
// cubic ones, arcs are replaced by straight lines to their end point.
func (c *content) path(cmds []ir.PathCommand) {
	var cur, start [2]float64
	started := false
	moveTo := func(x, y float64) {
		c.nums(x, c.h-y)
		c.WriteString(" m\n")
		cur = [2]float64{x, y}
		start = cur
		started = true
	}
	lineTo := func(x, y float64) {
		if !started {
			moveTo(0, 0)
		}
		c.nums(x, c.h-y)
		c.WriteString(" l\n")
		cur = [2]float64{x, y}
	}
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case ir.MoveTo:
			moveTo(cmd.X, cmd.Y)
		case ir.LineTo:
			lineTo(cmd.X, cmd.Y)
		case ir.ArcTo:
			lineTo(cmd.X, cmd.Y)
		case ir.QuadTo:
			if !started {
				moveTo(0, 0)
			}
			c1x := cur[0] + 2.0/3.0*(cmd.CX-cur[0])
			c1y := cur[1] + 2.0/3.0*(cmd.CY-cur[1])
			c2x := cmd.X + 2.0/3.0*(cmd.CX-cmd.X)
			c2y := cmd.Y + 2.0/3.0*(cmd.CY-cmd.Y)
			c.curve(c1x, c.h-c1y, c2x, c.h-c2y, cmd.X, c.h-cmd.Y)
			cur = [2]float64{cmd.X, cmd.Y}
		case ir.CubicTo:
			if !started {
				moveTo(0, 0)
			}
			c.curve(cmd.C1X, c.h-cmd.C1Y, cmd.C2X, c.h-cmd.C2Y, cmd.X, c.h-cmd.Y)
			cur = [2]float64{cmd.X, cmd.Y}
		case ir.Close:
			if started {
				c.WriteString("h\n")
				cur = start
			}
		}
	}
}

// gradient approximates a gradient by horizontal strips of constant
// color.
func (c *content) gradient(e ir.GradientRect) {
	if len(e.Stops) == 0 || !(e.Width > 0) || !(e.Height > 0) {
		return
	}
	sh := e.Height / gradientStrips
	for i := range gradientStrips {
		pos := float64(i) / gradientStrips
		var t float64
		switch g := e.Type.(type) {
		case ir.LinearGradient:
			t = 0.5*math.Sin(g.Angle) + pos*math.Cos(g.Angle)
		default:
			t = math.Abs(pos-0.5) * 2
		}
		t = min(max(t, 0), 1)

		c.fillColor(ir.StopColor(e.Stops, t))
		c.nums(e.X, c.h-e.Y-float64(i+1)*sh, e.Width, sh+0.5)
		c.WriteString(" re\nf\n")
	}
}

// placeholder draws a gray box with a border in place of an image.
func (c *content) placeholder(x, y, w, h float64) {
	c.fillColor(placeholderFill)
	c.rect(x, y, w, h)
	c.WriteString("f\n")
	c.strokeColor(placeholderBorder, 0.5)
	c.rect(x, y, w, h)
	c.WriteString("S\n")
}
