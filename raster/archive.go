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
	"fmt"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

// PageImageName returns the archive entry name for the given page,
// counting from 1.
func PageImageName(pageNo int) string {
	return fmt.Sprintf("page_%04d.png", pageNo)
}

// RenderDocumentToArchive renders every page of doc and returns a ZIP
// archive with one PNG image per page, named page_0001.png,
// page_0002.png, and so on.  The entries are deflate-compressed and
// carry no modification time, so that the output only depends on the
// input.
func RenderDocumentToArchive(doc *ir.Document, fm *fonts.Manager, cfg Config) ([]byte, error) {
	images, err := RenderPages(doc, cfg, fm)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for i, data := range images {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   PageImageName(i + 1),
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("raster: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("raster: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	logging.Logger().Debug("page images archived",
		"pages", len(images), "bytes", buf.Len(), "dpi", cfg.dpi())
	return buf.Bytes(), nil
}
