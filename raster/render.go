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

// Package raster draws pages of a document into RGBA pixel buffers and
// encodes them as PNG images.
//
// Page coordinates are given in points with the origin in the top-left
// corner.  One point corresponds to DPI/72 pixels.  Rendering never
// fails: elements which cannot be drawn are replaced by a placeholder or
// skipped.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"sync"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

// Limits for the output resolution, in dots per inch.
const (
	MinDPI     = 72
	MaxDPI     = 600
	DefaultDPI = 150
)

// maxCanvasSize limits the width and height of a page image in pixels.
const maxCanvasSize = 20000

// Config controls how pages are rendered.
type Config struct {
	// DPI is the output resolution.  Values which are not positive select
	// DefaultDPI.
	DPI float64

	// Background is the initial color of every pixel.
	Background ir.Color

	// LineCap and LineJoin are used for strokes wider than one pixel.
	LineCap  graphics.LineCapStyle
	LineJoin graphics.LineJoinStyle

	// Workers is the number of pages rendered concurrently by
	// RenderPages and RenderDocumentToArchive.  Values below 2 render
	// the pages one after another.
	Workers int
}

// DefaultConfig returns the default settings: 150 DPI on an opaque white
// background.
func DefaultConfig() Config {
	return Config{
		DPI:        DefaultDPI,
		Background: ir.White,
		LineCap:    graphics.LineCapButt,
		LineJoin:   graphics.LineJoinMiter,
		Workers:    1,
	}
}

// ClampDPI restricts dpi to the range [MinDPI, MaxDPI].
func ClampDPI(dpi float64) float64 {
	if math.IsNaN(dpi) {
		return DefaultDPI
	}
	return min(max(dpi, MinDPI), MaxDPI)
}

func (cfg Config) dpi() float64 {
	if !(cfg.DPI > 0) || math.IsInf(cfg.DPI, 0) {
		return DefaultDPI
	}
	return cfg.DPI
}

// pixelSize converts a length in points to a canvas dimension.
func pixelSize(points, scale float64) int {
	v := math.Ceil(points * scale)
	if !(v >= 1) {
		return 1
	}
	return int(min(v, maxCanvasSize))
}

// pageRenderer holds the state used while drawing a single page.
type pageRenderer struct {
	cfg    Config
	fm     *fonts.Manager
	scale  float64
	canvas *canvas
	clip   rect.Rect

	coverage *coverageRasterizer
	outline  pathData
	faces    map[string]*glyphFace
}

func newPageRenderer(page *ir.Page, cfg Config, fm *fonts.Manager) *pageRenderer {
	scale := cfg.dpi() / 72
	w := pixelSize(page.Width, scale)
	h := pixelSize(page.Height, scale)
	clip := rect.Rect{URx: float64(w), URy: float64(h)}
	return &pageRenderer{
		cfg:      cfg,
		fm:       fm,
		scale:    scale,
		canvas:   newCanvas(w, h, cfg.Background),
		clip:     clip,
		coverage: newCoverageRasterizer(clip),
		faces:    make(map[string]*glyphFace),
	}
}

func (pr *pageRenderer) draw(e ir.Element) {
	switch e := e.(type) {
	case ir.Text:
		pr.drawText(e)
	case ir.Image:
		pr.drawImage(e)
	case ir.Line:
		pr.drawLine(e)
	case ir.Rect:
		pr.drawRect(e)
	case ir.GradientRect:
		pr.drawGradientRect(e)
	case ir.Ellipse:
		pr.drawEllipse(e)
	case ir.EllipseImage:
		pr.drawEllipseImage(e)
	case ir.Path:
		pr.drawPath(e)
	case ir.PathImage:
		pr.drawPathImage(e)
	case ir.TableBlock:
		pr.drawTable(e)
	default:
		logging.Logger().Warn("element not rendered", "kind", ir.Kind(e))
	}
}

// RenderPageImage draws a page and returns the pixel buffer.  The image
// is ceil(width·DPI/72) by ceil(height·DPI/72) pixels.
func RenderPageImage(page *ir.Page, cfg Config, fm *fonts.Manager) *image.NRGBA {
	pr := newPageRenderer(page, cfg, fm)
	for _, e := range page.Elements {
		pr.draw(e)
	}
	return pr.canvas.img
}

// RenderPage draws a page and encodes the result as a PNG image with
// 8-bit RGBA pixels.  An error is only returned if encoding fails.
func RenderPage(page *ir.Page, cfg Config, fm *fonts.Manager) ([]byte, error) {
	img := RenderPageImage(page, cfg, fm)
	return encodePNG(img)
}

// rgbaImage hides the opacity of an image from the PNG encoder, so that
// the output always uses the RGBA color type.
type rgbaImage struct {
	*image.NRGBA
}

func (rgbaImage) Opaque() bool {
	return false
}

func encodePNG(img *image.NRGBA) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	err := enc.Encode(buf, rgbaImage{img})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderPages renders all pages of a document to PNG images.  The result
// is in page order.  If cfg.Workers is greater than one, up to that many
// pages are rendered concurrently.
func RenderPages(doc *ir.Document, cfg Config, fm *fonts.Manager) ([][]byte, error) {
	n := len(doc.Pages)
	res := make([][]byte, n)
	errs := make([]error, n)

	workers := min(cfg.Workers, n)
	if workers < 2 {
		for i := range doc.Pages {
			res[i], errs[i] = RenderPage(&doc.Pages[i], cfg, fm)
			if errs[i] != nil {
				return nil, errs[i]
			}
		}
		return res, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res[i], errs[i] = RenderPage(&doc.Pages[i], cfg, fm)
			}
		}()
	}
	for i := range n {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
