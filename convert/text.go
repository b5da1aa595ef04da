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
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"seehuhn.de/go/docrender/fonts"
	"seehuhn.de/go/docrender/internal/logging"
	"seehuhn.de/go/docrender/ir"
)

// textColumns is the number of narrow characters which fit on a line of
// a text page.
var textColumns = columns(ir.A4Width-2*ir.TextMargin, ir.DefaultFontStyle().Size)

func columns(width, size float64) int {
	return int(width / (size * fonts.NarrowWidth))
}

// Text converts plain text files.  The encoding is detected
// automatically.  Long lines are wrapped to the page width.
type Text struct{}

// Convert implements [ir.Converter].
func (Text) Convert(data []byte) (*ir.Document, error) {
	s, err := decodeText(data, "TXT")
	if err != nil {
		return nil, err
	}
	return ir.FromTextLines(textLines(s, textColumns), ir.DefaultFontStyle()), nil
}

// SupportedExtensions implements [ir.Converter].
func (Text) SupportedExtensions() []string { return []string{"txt"} }

// FormatName implements [ir.Converter].
func (Text) FormatName() string { return "TXT" }

// textLines splits s into lines of at most width columns.  Lines are
// broken at spaces where possible.  A final line break does not start
// a new line.
func textLines(s string, width int) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	var res []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if width > 0 {
			line = wrap.String(wordwrap.String(line, width), width)
		}
		res = append(res, strings.Split(line, "\n")...)
	}
	return res
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decodeText converts data to UTF-8.  A byte order mark takes
// precedence.  Otherwise UTF-8, Shift_JIS, EUC-JP and ISO-2022-JP are
// tried in this order.
func decodeText(data []byte, format string) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		rest := data[len(bomUTF8):]
		if !utf8.Valid(rest) {
			return "", &ir.ConvertError{Format: format, Message: "invalid UTF-8"}
		}
		return string(rest), nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeStrict(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data[2:], format, "UTF-16LE")
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeStrict(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), data[2:], format, "UTF-16BE")
	}

	if utf8.Valid(data) {
		// ISO-2022-JP is 7-bit and therefore also valid UTF-8.
		if bytes.Contains(data, []byte("\x1b$B")) || bytes.Contains(data, []byte("\x1b$@")) {
			if s, ok := tryDecode(japanese.ISO2022JP, data); ok {
				logEncoding("ISO-2022-JP")
				return s, nil
			}
		}
		return string(data), nil
	}
	if s, ok := tryDecode(japanese.ShiftJIS, data); ok {
		logEncoding("Shift_JIS")
		return s, nil
	}
	if s, ok := tryDecode(japanese.EUCJP, data); ok {
		logEncoding("EUC-JP")
		return s, nil
	}
	out, _, _ := transform.Bytes(japanese.ISO2022JP.NewDecoder(), data)
	logEncoding("ISO-2022-JP")
	return string(out), nil
}

// tryDecode decodes data and reports whether this succeeded without
// replacement characters.
func tryDecode(enc encoding.Encoding, data []byte) (string, bool) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

func decodeStrict(enc encoding.Encoding, data []byte, format, name string) (string, error) {
	s, ok := tryDecode(enc, data)
	if !ok {
		return "", &ir.ConvertError{Format: format, Message: "invalid " + name}
	}
	return s, nil
}

func logEncoding(name string) {
	logging.Logger().Debug("text encoding detected", "encoding", name)
}
