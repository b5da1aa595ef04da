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


package convert

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"seehuhn.de/go/docrender/ir"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{"test.txt", "txt", true},
		{"Report.DOCX", "docx", true},
		{"a.b.xlsx", "xlsx", true},
		{"data.csv", "csv", true},
		{"scan.djv", "djvu", true},
		{"csv", "csv", true},
		{"test.unknown", "", false},
		{"noext.", "", false},
	}
	for _, tc := range cases {
		got, ok := DetectFormat(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("DetectFormat(%q) = %q, %t, want %q, %t",
				tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 15 {
		t.Errorf("got %d formats, want 15", len(formats))
	}
	for _, f := range formats {
		for _, ext := range f.Extensions {
			if _, ok := DetectFormat("x." + ext); !ok {
				t.Errorf("%s: extension %q not detected", f.Name, ext)
			}
			c, ok := Lookup(ext)
			if !ok {
				t.Errorf("%s: no converter for %q", f.Name, ext)
				continue
			}
			if !slices.Contains(c.SupportedExtensions(), ext) {
				t.Errorf("%s converter does not list %q", c.FormatName(), ext)
			}
		}
	}
}

func TestUnsupported(t *testing.T) {
	_, err := ConvertByExtension("exe", nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ConvertByExtension: got %v", err)
	}
	_, err = ConvertFile("program.exe", nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ConvertFile: got %v", err)
	}
}

func texts(page ir.Page) []string {
	var res []string
	for _, e := range page.Elements {
		if e, ok := e.(ir.Text); ok {
			res = append(res, e.Text)
		}
	}
	return res
}

func TestText(t *testing.T) {
	doc, err := ConvertFile("hello.txt", []byte("Hello, World!\r\nこんにちは世界！\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(doc.Pages))
	}
	got := texts(doc.Pages[0])
	want := []string{"Hello, World!", "こんにちは世界！"}
	if !slices.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextEmpty(t *testing.T) {
	doc, err := Text{}.Convert(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 1 || len(doc.Pages[0].Elements) != 0 {
		t.Errorf("got %d pages", len(doc.Pages))
	}
}

func encode(t *testing.T, enc encoding.Encoding, s string) []byte {
	t.Helper()
	data, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestDecodeText(t *testing.T) {
	const sample = "日本語のテキスト"
	utf16le := append([]byte{0xFF, 0xFE},
		encode(t, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), sample)...)
	utf16be := append([]byte{0xFE, 0xFF},
		encode(t, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), sample)...)

	cases := []struct {
		name string
		data []byte
	}{
		{"utf-8", []byte(sample)},
		{"utf-8 bom", append([]byte{0xEF, 0xBB, 0xBF}, sample...)},
		{"utf-16le", utf16le},
		{"utf-16be", utf16be},
		{"shift_jis", encode(t, japanese.ShiftJIS, sample)},
		{"euc-jp", encode(t, japanese.EUCJP, sample)},
		{"iso-2022-jp", encode(t, japanese.ISO2022JP, sample)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeText(tc.data, "TXT")
			if err != nil {
				t.Fatal(err)
			}
			if got != sample {
				t.Errorf("got %q, want %q", got, sample)
			}
		})
	}
}

func TestDecodeTextInvalidBOM(t *testing.T) {
	_, err := decodeText([]byte{0xEF, 0xBB, 0xBF, 0xFF}, "TXT")
	var convErr *ir.ConvertError
	if !errors.As(err, &convErr) || convErr.Format != "TXT" {
		t.Errorf("got %v", err)
	}
}

func TestTextLines(t *testing.T) {
	const width = 20
	inputs := []string{
		strings.Repeat("word ", 30),
		strings.Repeat("a", 75),
		strings.Repeat("日本", 30),
	}
	for _, in := range inputs {
		lines := textLines(in, width)
		if len(lines) < 2 {
			t.Errorf("%q: not wrapped", in)
		}
		for _, line := range lines {
			if n := utf8.RuneCountInString(strings.TrimRight(line, " ")); n > width {
				t.Errorf("line %q has %d characters", line, n)
			}
		}
	}

	if got := textLines("a\n\nb\n", 80); !slices.Equal(got, []string{"a", "", "b"}) {
		t.Errorf("got %q", got)
	}
}

func csvTable(t *testing.T, page ir.Page) ir.TableBlock {
	t.Helper()
	if len(page.Elements) != 1 {
		t.Fatalf("page has %d elements", len(page.Elements))
	}
	tb, ok := page.Elements[0].(ir.TableBlock)
	if !ok {
		t.Fatalf("element is %s", ir.Kind(page.Elements[0]))
	}
	return tb
}

func TestCSV(t *testing.T) {
	doc, err := ConvertFile("people.csv", []byte("Name,Age,City\nAlice,30,Tokyo\nBob,25\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Metadata.Title != CSVTitle {
		t.Errorf("title = %q", doc.Metadata.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages", len(doc.Pages))
	}
	tb := csvTable(t, doc.Pages[0])
	if tb.X != 40 || tb.Y != 40 || tb.Width != ir.A4Width-80 {
		t.Errorf("table at (%g, %g) width %g", tb.X, tb.Y, tb.Width)
	}
	rows := tb.Table.Rows
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells", i, len(row))
		}
	}
	if !rows[0][0].Style.Bold || rows[0][0].Style.Size != 11 {
		t.Errorf("header style = %+v", rows[0][0].Style)
	}
	if rows[1][0].Style.Bold {
		t.Error("body cell is bold")
	}
	if rows[2][2].Text != "" {
		t.Errorf("padding cell = %q", rows[2][2].Text)
	}
	if len(tb.Table.ColumnWidths) != 3 {
		t.Errorf("got %d column widths", len(tb.Table.ColumnWidths))
	}
}

func TestCSVPaging(t *testing.T) {
	if n := CSVRowsPerPage(); n != 33 {
		t.Errorf("CSVRowsPerPage() = %d, want 33", n)
	}

	var b strings.Builder
	for i := range 70 {
		fmt.Fprintf(&b, "%d,value %d\n", i, i)
	}
	doc, err := CSV{}.Convert([]byte(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(doc.Pages))
	}
	wantRows := []int{33, 33, 4}
	for i, page := range doc.Pages {
		tb := csvTable(t, page)
		if len(tb.Table.Rows) != wantRows[i] {
			t.Errorf("page %d: %d rows, want %d", i, len(tb.Table.Rows), wantRows[i])
		}
		if i > 0 && tb.Table.Rows[0][0].Style.Bold {
			t.Errorf("page %d: first row is bold", i)
		}
	}
	last := csvTable(t, doc.Pages[2])
	if last.Table.Rows[3][0].Text != "69" {
		t.Errorf("last cell = %q", last.Table.Rows[3][0].Text)
	}
}

func TestCSVQuoted(t *testing.T) {
	doc, err := CSV{}.Convert([]byte(`"a,b","c""d","line1` + "\n" + `line2"`))
	if err != nil {
		t.Fatal(err)
	}
	row := csvTable(t, doc.Pages[0]).Table.Rows[0]
	want := []string{"a,b", `c"d`, "line1\nline2"}
	for i, cell := range row {
		if cell.Text != want[i] {
			t.Errorf("cell %d = %q, want %q", i, cell.Text, want[i])
		}
	}
}

func TestCSVEmpty(t *testing.T) {
	doc, err := CSV{}.Convert(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 1 || len(doc.Pages[0].Elements) != 0 {
		t.Error("expected a single empty page")
	}
}

func TestCSVError(t *testing.T) {
	_, err := CSV{}.Convert([]byte("a,\"unterminated\n"))
	var convErr *ir.ConvertError
	if !errors.As(err, &convErr) {
		t.Fatalf("got %v", err)
	}
	if convErr.Format != "CSV" || !strings.HasPrefix(err.Error(), "[CSV] ") {
		t.Errorf("got %q", err)
	}
}

func TestStub(t *testing.T) {
	doc, err := ConvertFile("slides.pptx", []byte("0123456789"))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages", len(doc.Pages))
	}
	lines := texts(doc.Pages[0])
	if len(lines) == 0 || !strings.Contains(lines[0], "PPTX") {
		t.Errorf("title = %q", lines)
	}
	if !slices.Contains(lines, "File size: 10 bytes") {
		t.Errorf("file size missing from %q", lines)
	}
}
