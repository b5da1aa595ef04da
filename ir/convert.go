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

package ir

// Converter turns the bytes of a source file into a Document.
type Converter interface {
	// Convert parses a complete source file.  Errors are of type
	// *ConvertError.
	Convert(data []byte) (*Document, error)

	// SupportedExtensions lists the lower-case file name extensions,
	// without the leading dot, handled by the converter.
	SupportedExtensions() []string

	// FormatName is a short human readable name of the source format.
	FormatName() string
}

// ConvertError reports a problem with the source file.
type ConvertError struct {
	Format  string
	Message string
	Err     error
}

func (e *ConvertError) Error() string {
	msg := "[" + e.Format + "] " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
