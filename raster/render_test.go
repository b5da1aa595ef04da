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
	"archive/zip"
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/ir"
)

var (
	red   = ir.Color{R: 255, A: 255}
	green = ir.Color{G: 255, A: 255}
	blue  = ir.Color{B: 255, A: 255}
)

func config72() Config {
	cfg := DefaultConfig()
	cfg.DPI = 72
	return cfg
}

func pixel(img *image.NRGBA, x, y int) ir.Color {
	c := img.NRGBAAt(x, y)
	return ir.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func smallPage(elems ...ir.Element) *ir.Page {
	return &ir.Page{Width: 100, Height: 100, Elements: elems}
}

func TestMinimalDocument(t *testing.T) {
	page := ir.A4()
	page.Add(ir.Rect{X: 0, Y: 0, Width: 100, Height: 50, Fill: &red})

	data, err := RenderPage(&page, config72(), nil)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 596 || b.Dy() != 842 {
		t.Fatalf("image size %dx%d, want 596x842", b.Dx(), b.Dy())
	}
	if c := color.NRGBAModel.Convert(img.At(10, 10)).(color.NRGBA); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel (10,10) = %v, want red", c)
	}
	if c := color.NRGBAModel.Convert(img.At(200, 200)).(color.NRGBA); c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel (200,200) = %v, want white", c)
	}

	// IHDR: bit depth 8, color type 6 (RGBA)
	if data[24] != 8 || data[25] != 6 {
		t.Errorf("PNG depth/color type = %d/%d, want 8/6", data[24], data[25])
	}
}

func TestCanvasSize(t *testing.T) {
	cases := []struct {
		w, h, dpi  float64
		wantW, wantH int
	}{
		{ir.A4Width, ir.A4Height, 72, 596, 842},
		{ir.LetterWidth, ir.LetterHeight, 144, 1224, 1584},
		{0, 0, 72, 1, 1},
		{math.NaN(), -5, 72, 1, 1},
		{100, 100, 0, 209, 209}, // default DPI
	}
	for _, tc := range cases {
		cfg := config72()
		cfg.DPI = tc.dpi
		img := RenderPageImage(&ir.Page{Width: tc.w, Height: tc.h}, cfg, nil)
		b := img.Bounds()
		if b.Dx() != tc.wantW || b.Dy() != tc.wantH {
			t.Errorf("%gx%g at %g dpi: got %dx%d, want %dx%d",
				tc.w, tc.h, tc.dpi, b.Dx(), b.Dy(), tc.wantW, tc.wantH)
		}
	}
}

func TestClampDPI(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{10, 72},
		{72, 72},
		{150, 150},
		{600, 600},
		{1200, 600},
		{math.Inf(1), 600},
		{math.NaN(), DefaultDPI},
	}
	for _, tc := range cases {
		if got := ClampDPI(tc.in); got != tc.out {
			t.Errorf("ClampDPI(%g) = %g, want %g", tc.in, got, tc.out)
		}
	}
}

func TestEvenOddHole(t *testing.T) {
	var cmds []ir.PathCommand
	cmds = append(cmds, ir.RectPath(10, 10, 80, 80)...)
	cmds = append(cmds, ir.RectPath(30, 30, 40, 40)...)
	page := smallPage(ir.Path{Commands: cmds, Fill: &ir.Black})

	img := RenderPageImage(page, config72(), nil)
	if c := pixel(img, 50, 50); c != ir.White {
		t.Errorf("hole center = %v, want background", c)
	}
	for _, p := range []image.Point{{20, 50}, {80, 50}, {50, 20}, {50, 80}} {
		if c := pixel(img, p.X, p.Y); c != ir.Black {
			t.Errorf("annulus pixel %v = %v, want fill", p, c)
		}
	}
	if c := pixel(img, 5, 5); c != ir.White {
		t.Errorf("outside pixel = %v, want background", c)
	}
}

func TestPathWithNaN(t *testing.T) {
	nan := math.NaN()
	page := smallPage(ir.Path{
		Commands: []ir.PathCommand{
			ir.MoveTo{X: 10, Y: 10},
			ir.LineTo{X: nan, Y: 50},
			ir.LineTo{X: 90, Y: 90},
			ir.LineTo{X: 10, Y: math.Inf(1)},
			ir.Close{},
		},
		Fill:   &ir.Black,
		Stroke: &red,
	})
	RenderPageImage(page, config72(), nil)
}

func TestLongLine(t *testing.T) {
	for _, width := range []float64{0.5, 3} {
		page := ir.A4()
		page.Add(ir.Line{X1: 0, Y1: 0, X2: 1e7, Y2: 1e7, Width: width, Color: ir.Black})
		img := RenderPageImage(&page, config72(), nil)
		if c := pixel(img, 100, 100); c != ir.Black {
			t.Errorf("width %g: pixel on line = %v, want black", width, c)
		}
		if c := pixel(img, 300, 100); c != ir.White {
			t.Errorf("width %g: pixel off line = %v, want white", width, c)
		}
	}
}

func TestThinLine(t *testing.T) {
	page := smallPage(ir.Line{X1: 10, Y1: 20, X2: 60, Y2: 20, Width: 1, Color: blue})
	img := RenderPageImage(page, config72(), nil)
	for _, x := range []int{10, 35, 60} {
		if c := pixel(img, x, 20); c != blue {
			t.Errorf("pixel (%d,20) = %v, want blue", x, c)
		}
	}
	if c := pixel(img, 35, 21); c != ir.White {
		t.Errorf("pixel below line = %v, want white", c)
	}
}

func TestRectStroke(t *testing.T) {
	thin := smallPage(ir.Rect{X: 10, Y: 10, Width: 40, Height: 40, Stroke: &ir.Black, StrokeWidth: 0.5})
	img := RenderPageImage(thin, config72(), nil)
	if c := pixel(img, 10, 20); c != ir.Black {
		t.Errorf("thin: left edge = %v, want black", c)
	}
	if c := pixel(img, 50, 20); c != ir.Black {
		t.Errorf("thin: right edge = %v, want black", c)
	}
	if c := pixel(img, 11, 20); c != ir.White {
		t.Errorf("thin: inside = %v, want white", c)
	}

	wide := smallPage(ir.Rect{X: 10, Y: 10, Width: 40, Height: 40, Stroke: &ir.Black, StrokeWidth: 6})
	img = RenderPageImage(wide, config72(), nil)
	for _, x := range []int{7, 10, 12} {
		if c := pixel(img, x, 30); c != ir.Black {
			t.Errorf("wide: pixel (%d,30) = %v, want black", x, c)
		}
	}
	for _, x := range []int{5, 20} {
		if c := pixel(img, x, 30); c != ir.White {
			t.Errorf("wide: pixel (%d,30) = %v, want white", x, c)
		}
	}
}

func TestRectRotationIgnored(t *testing.T) {
	r := ir.Rect{X: 20, Y: 20, Width: 30, Height: 10, Fill: &red, Stroke: &ir.Black, StrokeWidth: 2}
	a := RenderPageImage(smallPage(r), config72(), nil)
	r.Rotation = 45
	b := RenderPageImage(smallPage(r), config72(), nil)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("rotation changed the output")
	}
}

func TestEllipse(t *testing.T) {
	img := RenderPageImage(smallPage(ir.Ellipse{CX: 50, CY: 50, RX: 20, RY: 20, Fill: &red}), config72(), nil)
	if c := pixel(img, 50, 50); c != red {
		t.Errorf("center = %v, want red", c)
	}
	if c := pixel(img, 5, 5); c != ir.White {
		t.Errorf("corner = %v, want white", c)
	}

	ring := ir.Ellipse{CX: 50, CY: 50, RX: 20, RY: 20, Stroke: &ir.Black, StrokeWidth: 4}
	img = RenderPageImage(smallPage(ring), config72(), nil)
	if c := pixel(img, 69, 50); c != ir.Black {
		t.Errorf("ring = %v, want black", c)
	}
	if c := pixel(img, 50, 50); c != ir.White {
		t.Errorf("ring center = %v, want white", c)
	}
}

func TestGradient(t *testing.T) {
	stops := []ir.GradientStop{
		{Position: 0, Color: ir.Black},
		{Position: 1, Color: ir.White},
	}
	lin := ir.GradientRect{Width: 100, Height: 100, Stops: stops, Type: ir.LinearGradient{Angle: 0}}
	img := RenderPageImage(smallPage(lin), config72(), nil)
	if c := pixel(img, 50, 0); c != ir.Black {
		t.Errorf("linear top = %v, want black", c)
	}
	if c := pixel(img, 50, 99); c.R < 250 || c.A != 255 {
		t.Errorf("linear bottom = %v, want nearly white", c)
	}
	if top, mid := pixel(img, 50, 10), pixel(img, 50, 60); !(top.R < mid.R) {
		t.Errorf("linear gradient not increasing: %v, %v", top, mid)
	}

	rad := ir.GradientRect{Width: 100, Height: 100, Stops: stops, Type: ir.RadialGradient{}}
	img = RenderPageImage(smallPage(rad), config72(), nil)
	if c := pixel(img, 50, 50); c != ir.Black {
		t.Errorf("radial center = %v, want black", c)
	}
	if c := pixel(img, 0, 0); c != ir.White {
		t.Errorf("radial corner = %v, want white", c)
	}
}

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, src); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageBlit(t *testing.T) {
	page := &ir.Page{Width: 40, Height: 40}
	page.Add(ir.Image{Width: 20, Height: 20, Data: encodeTestPNG(t), MimeType: "image/png"})
	img := RenderPageImage(page, config72(), nil)

	cases := []struct {
		x, y int
		want ir.Color
	}{
		{5, 5, red},
		{15, 5, green},
		{5, 15, blue},
		{15, 15, ir.White}, // transparent source pixel
		{30, 30, ir.White},
	}
	for _, tc := range cases {
		if c := pixel(img, tc.x, tc.y); c != tc.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tc.x, tc.y, c, tc.want)
		}
	}
}

func TestImagePlaceholder(t *testing.T) {
	page := &ir.Page{Width: 200, Height: 100}
	page.Add(ir.Image{X: 10, Y: 10, Width: 100, Height: 50, Data: []byte("not an image")})
	img := RenderPageImage(page, config72(), nil)

	if c := pixel(img, 10, 10); c != placeholderBorder {
		t.Errorf("border = %v, want %v", c, placeholderBorder)
	}
	if c := pixel(img, 12, 12); c != placeholderFill {
		t.Errorf("fill = %v, want %v", c, placeholderFill)
	}
	label := 0
	for y := 10; y < 60; y++ {
		for x := 10; x < 110; x++ {
			if c := pixel(img, x, y); c.R < placeholderBorder.R {
				label++
			}
		}
	}
	if label == 0 {
		t.Error("placeholder label missing")
	}
}

// pngHeader returns the start of a PNG file which declares an RGBA image
// of the given size, without any pixel data.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 4, 17)
	copy(ihdr, "IHDR")
	ihdr = binary.BigEndian.AppendUint32(ihdr, w)
	ihdr = binary.BigEndian.AppendUint32(ihdr, h)
	ihdr = append(ihdr, 8, 6, 0, 0, 0)

	buf := []byte("\x89PNG\r\n\x1a\n")
	buf = binary.BigEndian.AppendUint32(buf, 13)
	buf = append(buf, ihdr...)
	buf = binary.BigEndian.AppendUint32(buf, crc32.ChecksumIEEE(ihdr))
	return buf
}

func TestOversizedImage(t *testing.T) {
	data := pngHeader(100000, 100000)
	if _, ok := decodeImage(data); ok {
		t.Fatal("oversized image was decoded")
	}

	page := smallPage(ir.Image{X: 10, Y: 10, Width: 80, Height: 80, Data: data, MimeType: "image/png"})
	img := RenderPageImage(page, config72(), nil)
	if c := pixel(img, 12, 12); c != placeholderFill {
		t.Errorf("fill = %v, want placeholder %v", c, placeholderFill)
	}
}

func TestClippedImages(t *testing.T) {
	data := encodeTestPNG(t)
	page := smallPage(
		ir.EllipseImage{CX: 25, CY: 25, RX: 20, RY: 20, Data: data},
		ir.PathImage{Commands: ir.RectPath(60, 60, 30, 30), Data: []byte{1, 2, 3}},
	)
	img := RenderPageImage(page, config72(), nil)
	if c := pixel(img, 15, 15); c != red {
		t.Errorf("ellipse image top-left quadrant = %v, want red", c)
	}
	if c := pixel(img, 35, 15); c != green {
		t.Errorf("ellipse image top-right quadrant = %v, want green", c)
	}
	if c := pixel(img, 1, 1); c != ir.White {
		t.Errorf("outside ellipse = %v, want white", c)
	}
	if c := pixel(img, 75, 75); c != placeholderFill {
		t.Errorf("undecodable path image = %v, want %v", c, placeholderFill)
	}
}

func TestCMYK(t *testing.T) {
	cases := []struct {
		in   color.CMYK
		want color.NRGBA
	}{
		{color.CMYK{}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{color.CMYK{C: 255}, color.NRGBA{G: 255, B: 255, A: 255}},
		{color.CMYK{K: 255}, color.NRGBA{A: 255}},
		{color.CMYK{M: 255, Y: 255}, color.NRGBA{R: 255, A: 255}},
	}
	for _, tc := range cases {
		if got := cmykToNRGBA(tc.in); got != tc.want {
			t.Errorf("cmykToNRGBA(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func countDark(img *image.NRGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pixel(img, x, y).R < 128 {
				n++
			}
		}
	}
	return n
}

func TestGlyphText(t *testing.T) {
	fm := fonts.NewManager("Go", goregular.TTF)
	style := ir.FontStyle{FontName: "Go", Size: 40, Color: ir.Black}
	area := image.Rect(0, 0, 200, 100)

	img := RenderPageImage(&ir.Page{Width: 200, Height: 100, Elements: []ir.Element{
		ir.Text{X: 10, Y: 10, Text: "HHH", Style: style},
	}}, config72(), fm)
	if n := countDark(img, area); n < 50 {
		t.Errorf("only %d dark pixels for glyph text", n)
	}
	if n := countDark(img, image.Rect(0, 0, 200, 10)); n != 0 {
		t.Errorf("%d dark pixels above the text", n)
	}

	img = RenderPageImage(&ir.Page{Width: 200, Height: 100, Elements: []ir.Element{
		ir.Text{X: 10, Y: 10, Text: " \t ", Style: style},
	}}, config72(), fm)
	if n := countDark(img, area); n != 0 {
		t.Errorf("whitespace drew %d pixels", n)
	}
}

func TestGlyphCounter(t *testing.T) {
	fm := fonts.NewManager("Go", goregular.TTF)
	style := ir.FontStyle{FontName: "Go", Size: 60, Color: ir.Black}
	img := RenderPageImage(smallPage(ir.Text{X: 10, Y: 10, Text: "O", Style: style}), config72(), fm)

	var box image.Rectangle
	partial := 0
	for y := range 100 {
		for x := range 100 {
			c := pixel(img, x, y)
			if c.R < 128 {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
			if c.R > 0 && c.R < 255 {
				partial++
			}
		}
	}
	if box.Dx() < 20 || box.Dy() < 20 {
		t.Fatalf("glyph bounding box %v too small", box)
	}
	mid := image.Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2)
	if c := pixel(img, mid.X, mid.Y); c != ir.White {
		t.Errorf("counter of O at %v = %v, want white", mid, c)
	}
	if partial == 0 {
		t.Error("glyph edges are not anti-aliased")
	}
}

// A font that does not parse falls back to the next available font
// before boxes are used.
func TestUnparsableFont(t *testing.T) {
	style := ir.FontStyle{FontName: "Broken", Size: 30, Color: ir.Black}
	page := smallPage(ir.Text{X: 10, Y: 10, Text: "Hg", Style: style})

	want := RenderPageImage(page, config72(), fonts.NewManager("Go", goregular.TTF))

	fm := fonts.NewManager("Go", goregular.TTF)
	fm.AddFont("Broken", []byte("not a font"))
	got := RenderPageImage(page, config72(), fm)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("unparsable font not replaced by the builtin font")
	}
}

func TestHugeText(t *testing.T) {
	managers := map[string]*fonts.Manager{
		"none": nil,
		"go":   fonts.NewManager("Go", goregular.TTF),
	}
	for name, fm := range managers {
		done := make(chan *image.NRGBA, 1)
		go func() {
			page := ir.A4()
			page.Add(ir.Text{Text: "AB", Style: ir.FontStyle{Size: 1e6, Color: ir.Black}})
			done <- RenderPageImage(&page, config72(), fm)
		}()

		select {
		case img := <-done:
			if fm == nil {
				if c := pixel(img, 300, 400); c != ir.Black {
					t.Errorf("%s: box pixel = %v, want black", name, c)
				}
			}
		case <-time.After(20 * time.Second):
			t.Fatalf("%s: text with size 1e6 still rendering after 20s", name)
		}
	}
}

func TestTextFallback(t *testing.T) {
	fm := fonts.NewManager("", nil)
	fm.AddFont("Broken", []byte{})
	style := ir.FontStyle{FontName: "Broken", Size: 20, Color: ir.Black}

	for _, m := range []*fonts.Manager{fm, nil} {
		page := smallPage(ir.Text{X: 10, Y: 10, Text: "A 日", Style: style})
		img := RenderPageImage(page, config72(), m)

		// "A" is a narrow box starting at x=10, the space is skipped, the
		// CJK character is a full width box starting at x=34.
		if c := pixel(img, 15, 20); c != ir.Black {
			t.Errorf("narrow box = %v, want black", c)
		}
		if c := pixel(img, 26, 20); c != ir.White {
			t.Errorf("space = %v, want white", c)
		}
		if c := pixel(img, 50, 20); c != ir.Black {
			t.Errorf("wide box = %v, want black", c)
		}
	}
}

func TestTable(t *testing.T) {
	tbl := ir.Table{Rows: [][]ir.TableCell{
		{ir.NewTableCell(""), ir.NewTableCell("")},
		{ir.NewTableCell(""), ir.NewTableCell("")},
	}}
	page := smallPage(ir.TableBlock{X: 10, Y: 10, Width: 80, Table: tbl})
	img := RenderPageImage(page, config72(), nil)

	gray := ir.Color{R: 204, G: 204, B: 204, A: 255}
	for _, p := range []image.Point{{10, 15}, {50, 15}, {90, 15}, {20, 30}, {20, 50}} {
		if c := pixel(img, p.X, p.Y); c != gray {
			t.Errorf("border pixel %v = %v, want %v", p, c, gray)
		}
	}
	if c := pixel(img, 30, 20); c != ir.White {
		t.Errorf("cell interior = %v, want white", c)
	}
}

func TestArchive(t *testing.T) {
	doc := &ir.Document{}
	for i := range 3 {
		page := ir.A4()
		page.Add(ir.Rect{X: float64(10 * i), Y: 10, Width: 50, Height: 50, Fill: &red})
		doc.Pages = append(doc.Pages, page)
	}
	data, err := RenderDocumentToArchive(doc, nil, config72())
	if err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"page_0001.png", "page_0002.png", "page_0003.png"}
	if len(zr.File) != len(want) {
		t.Fatalf("%d entries, want %d", len(zr.File), len(want))
	}
	for i, f := range zr.File {
		if f.Name != want[i] {
			t.Errorf("entry %d is %q, want %q", i, f.Name, want[i])
		}
		if f.Method != zip.Deflate {
			t.Errorf("entry %q is not deflated", f.Name)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := png.Decode(bytes.NewReader(body)); err != nil {
			t.Errorf("entry %q: %v", f.Name, err)
		}
	}
}

func testDocument() *ir.Document {
	doc := &ir.Document{}
	for i := range 5 {
		page := ir.Page{Width: 120, Height: 90}
		x := float64(5 * i)
		page.Add(
			ir.Rect{X: x, Y: 5, Width: 40, Height: 30, Fill: &red, Stroke: &ir.Black, StrokeWidth: 2},
			ir.Ellipse{CX: 60, CY: 45, RX: 20 + x, RY: 15, Fill: &blue},
			ir.Line{X1: 0, Y1: 80, X2: 120, Y2: 10 + x, Width: 1, Color: green},
			ir.Text{X: 10, Y: 60, Text: "Page", Style: ir.DefaultFontStyle()},
		)
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}

func TestDeterminism(t *testing.T) {
	fm := fonts.NewManager("Go", goregular.TTF)
	doc := testDocument()
	a, err := RenderDocumentToArchive(doc, fm, config72())
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderDocumentToArchive(doc, fm, config72())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("archive output differs between runs")
	}
}

func TestRenderPagesConcurrent(t *testing.T) {
	fm := fonts.NewManager("Go", goregular.TTF)
	doc := testDocument()

	seq, err := RenderPages(doc, config72(), fm)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config72()
	cfg.Workers = 3
	par, err := RenderPages(doc, cfg, fm)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != len(par) {
		t.Fatalf("got %d pages, want %d", len(par), len(seq))
	}
	for i := range seq {
		if !bytes.Equal(seq[i], par[i]) {
			t.Errorf("page %d differs", i+1)
		}
	}

	empty, err := RenderPages(&ir.Document{}, cfg, fm)
	if err != nil || len(empty) != 0 {
		t.Errorf("empty document: %d pages, err %v", len(empty), err)
	}
}
