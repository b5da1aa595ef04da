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


// Command genpdf generates reference images for the raster tests.
// It writes every test case as a PDF file and renders the PDF files to
// PNG images using Ghostscript.
//
// Only categories where the PDF writer reproduces the page faithfully
// are used by default.  Images are replaced by placeholders in PDF
// output, and text depends on the glyph mapping of the embedded font.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"

	"seehuhn.de/go/docrender/ir"
	"seehuhn.de/go/docrender/pdf"
	"seehuhn.de/go/docrender/testcases"
)

var defaultCategories = []string{
	"complex", "curve", "fill", "large", "precision", "stroke", "subpath",
}

func main() {
	refDir := pflag.StringP("output", "o", "raster/testdata/reference", "output directory")
	gs := pflag.String("gs", "gs", "Ghostscript executable")
	categories := pflag.StringSliceP("category", "c", defaultCategories, "test case categories")
	keepPDF := pflag.Bool("keep-pdf", false, "keep the intermediate PDF files")
	pflag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if !slices.Contains(*categories, category) {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			if err := renderPNG(*gs, pdfPath, pngPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			if !*keepPDF {
				os.Remove(pdfPath)
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	doc := &ir.Document{Pages: []ir.Page{tc.Page}}
	return os.WriteFile(pdfPath, pdf.Render(doc, nil), 0644)
}

func renderPNG(gs, pdfPath, pngPath string) error {
	// -sDEVICE=png16m: 24-bit RGB on a white page
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, like the raster fills
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-dTextAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
