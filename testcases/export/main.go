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


// Command export writes all test cases to a JSON file, so that other
// renderers can be checked against the same pages.  Optionally, each
// case is also rendered to a PNG image.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/ir"
	"seehuhn.de/go/docrender/raster"
	"seehuhn.de/go/docrender/testcases"
)

type jsonTestCase struct {
	Name string  `json:"name"`
	Page ir.Page `json:"page"`
}

func main() {
	output := pflag.StringP("output", "o", "testdata/testcases.json", "JSON output file")
	imageDir := pflag.String("images", "", "if set, render the cases as PNG images into this directory")
	dpi := pflag.Float64("dpi", 72, "resolution of the PNG images")
	pflag.Parse()

	if err := run(*output, *imageDir, *dpi); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(output, imageDir string, dpi float64) error {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name: category + "_" + tc.Name,
				Page: tc.Page,
			})
		}
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if imageDir == "" {
		return nil
	}
	if err := os.MkdirAll(imageDir, 0755); err != nil {
		return err
	}
	fm := fonts.NewManager("Go", goregular.TTF)
	cfg := raster.DefaultConfig()
	cfg.DPI = raster.ClampDPI(dpi)
	for _, tc := range out.TestCases {
		data, err := raster.RenderPage(&tc.Page, cfg, fm)
		if err != nil {
			return fmt.Errorf("%s: %w", tc.Name, err)
		}
		if err := os.WriteFile(filepath.Join(imageDir, tc.Name+".png"), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
