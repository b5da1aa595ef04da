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


// Package docrender converts office documents into PDF files and into
// ZIP archives of page images.
//
// Source files are first converted into the document model of package
// [ir], using the converters from package [convert].  The document is
// then written by package [pdf] or drawn by package [raster].  Fonts
// are shared between conversions through a [fonts.Manager].
package docrender

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/image/font/gofont/goregular"
	"pkt.systems/version"

	"seehuhn.de/go/docrender/convert"
	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
	"seehuhn.de/go/docrender/pdf"
	"seehuhn.de/go/docrender/raster"
)

const modulePath = "seehuhn.de/go/docrender"

// DefaultFontName is the name of the builtin font of [DefaultConverter].
const DefaultFontName = "Go Regular"

// ErrUnsupportedOutput is returned by [ConvertDocument] for unknown
// output formats.
var ErrUnsupportedOutput = errors.New("unsupported output format")

func init() {
	version.SetDefaultModule(modulePath)
}

// Converter converts source files using a shared set of fonts.
// A Converter can be used concurrently, but adding or removing fonts
// while conversions are running changes the fonts they see.
type Converter struct {
	fonts *fonts.Manager

	// Raster configures the page images.  The DPI field is replaced by
	// the argument of ConvertToImagesZip.
	Raster raster.Config
}

// NewConverter returns a Converter with the given builtin font.  The
// builtin font may be nil, in which case only fonts added with AddFont
// are available.
func NewConverter(builtinName string, builtin []byte) *Converter {
	return &Converter{
		fonts:  fonts.NewManager(builtinName, builtin),
		Raster: raster.DefaultConfig(),
	}
}

// DefaultConverter returns a Converter which uses the Go Regular font as
// its builtin font.
func DefaultConverter() *Converter {
	return NewConverter(DefaultFontName, goregular.TTF)
}

// Fonts returns the font registry of the converter.
func (c *Converter) Fonts() *fonts.Manager {
	return c.fonts
}

// AddFont registers an external font.  A font with the same name is
// replaced.
func (c *Converter) AddFont(name string, data []byte) {
	c.fonts.AddFont(name, data)
}

// RemoveFont removes an external font.
func (c *Converter) RemoveFont(name string) {
	c.fonts.RemoveFont(name)
}

// HasBuiltinFont reports whether the converter has a builtin font.
func (c *Converter) HasBuiltinFont() bool {
	return c.fonts.HasBuiltinFont()
}

// SupportedFormats returns the list of supported input formats as a
// JSON array of objects with "name" and "extensions" fields.
func (c *Converter) SupportedFormats() string {
	data, err := json.Marshal(convert.SupportedFormats())
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Convert converts a source file into a document.  The format is
// determined by the file name extension.
func (c *Converter) Convert(filename string, data []byte) (*ir.Document, error) {
	doc, err := convert.ConvertFile(filename, data)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("document converted",
		"file", filename, "pages", len(doc.Pages))
	return doc, nil
}

// ConvertToPDF converts a source file into a PDF file.
func (c *Converter) ConvertToPDF(filename string, data []byte) ([]byte, error) {
	doc, err := c.Convert(filename, data)
	if err != nil {
		return nil, err
	}
	return pdf.Render(doc, c.fonts), nil
}

// ConvertToImagesZip converts a source file into a ZIP archive with one
// PNG image per page.  If dpi is zero or negative, the resolution from
// c.Raster is used.  The resolution is clamped to the range from
// [raster.MinDPI] to [raster.MaxDPI].
func (c *Converter) ConvertToImagesZip(filename string, data []byte, dpi float64) ([]byte, error) {
	doc, err := c.Convert(filename, data)
	if err != nil {
		return nil, err
	}
	cfg := c.Raster
	if dpi > 0 {
		cfg.DPI = dpi
	}
	cfg.DPI = raster.ClampDPI(cfg.DPI)
	return raster.RenderDocumentToArchive(doc, c.fonts, cfg)
}

// ConvertToJSON converts a source file and returns the document model in
// indented JSON form.
func (c *Converter) ConvertToJSON(filename string, data []byte) (string, error) {
	doc, err := c.Convert(filename, data)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(out), nil
}

// ConvertDocument converts a source file using [DefaultConverter].
// The output format is "pdf", or "images_zip" (also "zip") for a ZIP
// archive of page images at the default resolution.
func ConvertDocument(filename string, data []byte, outputFormat string) ([]byte, error) {
	c := DefaultConverter()
	switch outputFormat {
	case "pdf":
		return c.ConvertToPDF(filename, data)
	case "images_zip", "zip":
		return c.ConvertToImagesZip(filename, data, 0)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedOutput, outputFormat)
}

// Version returns a description of the library version.
func Version() string {
	return fmt.Sprintf("%v %v (%d formats)",
		version.Module(), version.Current(), len(convert.SupportedFormats()))
}

// SetLogger sets the logger used by all packages of this module.
// Passing nil disables logging.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}
