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


// Package convert turns source files into documents.
//
// Plain text and CSV files are converted here.  The other formats listed
// by [SupportedFormats] produce a one-page document describing the file.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/docrender/ir"
)

// ErrUnsupportedFormat is returned for file types which cannot be
// converted.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format describes a group of file name extensions sharing a converter.
type Format struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

var formats = []Format{
	{"Text", []string{"txt"}},
	{"CSV", []string{"csv"}},
	{"RTF", []string{"rtf"}},
	{"DOCX (Microsoft Word)", []string{"docx"}},
	{"DOC (Microsoft Word, legacy)", []string{"doc"}},
	{"ODT (OpenDocument Text)", []string{"odt"}},
	{"EPUB", []string{"epub"}},
	{"XPS", []string{"xps"}},
	{"DjVu", []string{"djvu", "djv"}},
	{"XLSX (Microsoft Excel)", []string{"xlsx"}},
	{"XLS (Microsoft Excel, legacy)", []string{"xls"}},
	{"ODS (OpenDocument Spreadsheet)", []string{"ods"}},
	{"PPTX (Microsoft PowerPoint)", []string{"pptx"}},
	{"PPT (Microsoft PowerPoint, legacy)", []string{"ppt"}},
	{"ODP (OpenDocument Presentation)", []string{"odp"}},
}

// SupportedFormats lists the formats which can be converted.
func SupportedFormats() []Format {
	res := make([]Format, len(formats))
	for i, f := range formats {
		res[i] = Format{Name: f.Name, Extensions: append([]string(nil), f.Extensions...)}
	}
	return res
}

// DetectFormat returns the format key for a file name, based on the
// extension.  Both "djvu" and "djv" map to "djvu".  The second return
// value is false if the extension is not supported.
func DetectFormat(filename string) (string, bool) {
	ext := filename
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext = filename[i+1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "djv":
		return "djvu", true
	case "doc", "docx", "odt", "rtf", "txt", "epub", "xps", "djvu",
		"xls", "xlsx", "ods", "csv", "ppt", "pptx", "odp":
		return ext, true
	}
	return "", false
}

// Lookup returns the converter for a file name extension.
func Lookup(ext string) (ir.Converter, bool) {
	switch strings.ToLower(ext) {
	case "txt":
		return Text{}, true
	case "csv":
		return CSV{}, true
	case "rtf":
		return &Stub{Name: "RTF", Extensions: []string{"rtf"}}, true
	case "docx":
		return &Stub{Name: "DOCX", Extensions: []string{"docx"}}, true
	case "xlsx", "xls", "ods":
		return &Stub{Name: "XLSX", Extensions: []string{"xlsx", "xls", "ods"}}, true
	case "doc":
		return &Stub{Name: "DOC", Extensions: []string{"doc"}}, true
	case "odt":
		return &Stub{Name: "ODT", Extensions: []string{"odt"}}, true
	case "epub":
		return &Stub{Name: "EPUB", Extensions: []string{"epub"}}, true
	case "xps":
		return &Stub{Name: "XPS", Extensions: []string{"xps"}}, true
	case "djvu", "djv":
		return &Stub{Name: "DjVu", Extensions: []string{"djvu", "djv"}}, true
	case "ppt":
		return &Stub{Name: "PPT", Extensions: []string{"ppt"}}, true
	case "pptx":
		return &Stub{Name: "PPTX", Extensions: []string{"pptx"}}, true
	case "odp":
		return &Stub{Name: "ODP", Extensions: []string{"odp"}}, true
	}
	return nil, false
}

// ConvertByExtension converts data using the converter registered for
// the file name extension ext.
func ConvertByExtension(ext string, data []byte) (*ir.Document, error) {
	c, ok := Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return c.Convert(data)
}

// ConvertFile detects the format from the file name and converts data.
func ConvertFile(filename string, data []byte) (*ir.Document, error) {
	ext, ok := DetectFormat(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	return ConvertByExtension(ext, data)
}
