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
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/docrender/flatten"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

// Colors of the box drawn in place of an image which cannot be decoded.
var (
	placeholderFill   = ir.Color{R: 220, G: 220, B: 220, A: 255}
	placeholderBorder = ir.Color{R: 180, G: 180, B: 180, A: 255}
	placeholderText   = ir.Color{R: 100, G: 100, B: 100, A: 255}
)

const placeholderLabel = "[Image]"

// maxImagePixels limits the size of images which are decoded.  Larger
// images are drawn as placeholders.
const maxImagePixels = maxCanvasSize * maxCanvasSize / 4

// decodeImage decodes PNG, JPEG, GIF, BMP, TIFF and WebP data into an
// 8-bit RGBA image.  The second return value is false if the data cannot
// be decoded.
func decodeImage(data []byte) (*image.NRGBA, bool) {
	if len(data) == 0 {
		return nil, false
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		logging.Logger().Debug("image decode failed", "bytes", len(data), "err", err)
		return nil, false
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxImagePixels/cfg.Height {
		logging.Logger().Debug("image too large", "width", cfg.Width, "height", cfg.Height)
		return nil, false
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logging.Logger().Debug("image decode failed", "bytes", len(data), "err", err)
		return nil, false
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, false
	}
	logging.Logger().Debug("image decoded", "format", format, "width", b.Dx(), "height", b.Dy())
	return toNRGBA(img), true
}

// toNRGBA converts img into a non-premultiplied RGBA image with origin
// (0, 0).  CMYK data is converted with R = 255·(1-C)·(1-K), and the same
// for G and B with M and Y.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if m, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return m
	}
	res := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := range b.Dy() {
		for x := range b.Dx() {
			var c color.NRGBA
			switch m := img.(type) {
			case *image.CMYK:
				k := m.CMYKAt(b.Min.X+x, b.Min.Y+y)
				c = cmykToNRGBA(k)
			default:
				c = color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			}
			res.SetNRGBA(x, y, c)
		}
	}
	return res
}

func cmykToNRGBA(k color.CMYK) color.NRGBA {
	kk := 1 - float64(k.K)/255
	ch := func(v uint8) uint8 {
		return uint8(255 * (1 - float64(v)/255) * kk)
	}
	return color.NRGBA{R: ch(k.C), G: ch(k.M), B: ch(k.Y), A: 255}
}

// sample returns the source pixel at the fractional position (fx, fy),
// with both coordinates in [0, 1].
func sample(src *image.NRGBA, fx, fy float64) (r, g, b, a uint8) {
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	sx := min(max(truncInt(fx*float64(sw)), 0), sw-1)
	sy := min(max(truncInt(fy*float64(sh)), 0), sh-1)
	i := src.PixOffset(sx, sy)
	p := src.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

func (pr *pageRenderer) drawImage(e ir.Image) {
	s := pr.scale
	x, y, w, h := e.X*s, e.Y*s, e.Width*s, e.Height*s
	if !(w > 0) || !(h > 0) {
		return
	}
	src, ok := decodeImage(e.Data)
	if !ok {
		pr.drawPlaceholder(x, y, w, h)
		return
	}

	x0, x1 := pixelSpan(x, x+w, pr.canvas.w)
	y0, y1 := pixelSpan(y, y+h, pr.canvas.h)
	for py := y0; py < y1; py++ {
		fy := (float64(py) - y) / h
		for px := x0; px < x1; px++ {
			r, g, b, a := sample(src, (float64(px)-x)/w, fy)
			pr.canvas.composite(px, py, r, g, b, a)
		}
	}
}

// drawPlaceholder marks the device space rectangle of an image which
// could not be decoded.
func (pr *pageRenderer) drawPlaceholder(x, y, w, h float64) {
	c := pr.canvas
	x0, x1 := pixelSpan(x, x+w, c.w)
	y0, y1 := pixelSpan(y, y+h, c.h)
	c.fillRect(x0, y0, x1, y1, placeholderFill)
	pr.strokeRectThin(x, y, w, h, placeholderBorder)

	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.NRGBA(placeholderText)),
		Face: face,
	}
	tw := d.MeasureString(placeholderLabel).Ceil()
	m := face.Metrics()
	th := (m.Ascent + m.Descent).Ceil()
	if float64(tw) > w || float64(th) > h {
		return
	}
	lx := truncInt(x + (w-float64(tw))/2)
	ly := truncInt(y+(h-float64(th))/2) + m.Ascent.Ceil()
	d.Dot = fixed.P(lx, ly)
	d.DrawString(placeholderLabel)
}

func (pr *pageRenderer) drawEllipseImage(e ir.EllipseImage) {
	s := pr.scale
	cx, cy, rx, ry := e.CX*s, e.CY*s, e.RX*s, e.RY*s
	if !(rx > 0) || !(ry > 0) {
		return
	}
	src, ok := decodeImage(e.Data)
	left, top := cx-rx, cy-ry
	pr.forEllipse(cx, cy, rx, ry, func(px, py int) {
		if !ok {
			pr.canvas.set(px, py, placeholderFill)
			return
		}
		r, g, b, a := sample(src, (float64(px)-left)/(2*rx), (float64(py)-top)/(2*ry))
		pr.canvas.composite(px, py, r, g, b, a)
	})
	if e.Stroke != nil {
		pr.ellipseRing(cx, cy, rx, ry, e.StrokeWidth*s, *e.Stroke)
	}
}

func (pr *pageRenderer) drawPath(e ir.Path) {
	subpaths := flatten.Flatten(e.Commands, pr.scale)
	if e.Fill != nil {
		col := *e.Fill
		evenOddSpans(subpaths, pr.canvas.w, pr.canvas.h, func(y, x0, x1 int) {
			pr.canvas.fillRect(x0, y, x1, y+1, col)
		})
	}
	if e.Stroke != nil {
		pr.strokePath(e.Commands, subpaths, e.StrokeWidth, *e.Stroke)
	}
}

func (pr *pageRenderer) drawPathImage(e ir.PathImage) {
	subpaths := flatten.Flatten(e.Commands, pr.scale)
	bbox, found := flatten.Bounds(subpaths)
	if found {
		src, ok := decodeImage(e.Data)
		bw, bh := bbox.URx-bbox.LLx, bbox.URy-bbox.LLy
		evenOddSpans(subpaths, pr.canvas.w, pr.canvas.h, func(y, x0, x1 int) {
			if !ok || !(bw > 0) || !(bh > 0) {
				pr.canvas.fillRect(x0, y, x1, y+1, placeholderFill)
				return
			}
			fy := (float64(y) - bbox.LLy) / bh
			for px := x0; px < x1; px++ {
				r, g, b, a := sample(src, (float64(px)-bbox.LLx)/bw, fy)
				pr.canvas.composite(px, y, r, g, b, a)
			}
		})
	}
	if e.Stroke != nil {
		pr.strokePath(e.Commands, subpaths, e.StrokeWidth, *e.Stroke)
	}
}

// strokePath draws the outline of a path.  Thin strokes connect the
// flattened device space points with single pixel lines.
func (pr *pageRenderer) strokePath(cmds []ir.PathCommand, subpaths [][]vec.Vec2, width float64, col ir.Color) {
	if pr.wide(width) {
		pr.strokeOutline(flatten.ToPath(flatten.Flatten(cmds, 1)), width, col)
		return
	}
	for _, sp := range subpaths {
		for i := 1; i < len(sp); i++ {
			a, b := sp[i-1], sp[i]
			pr.lineThin(a.X, a.Y, b.X, b.Y, col)
		}
	}
}
