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

// Package fonts implements the font registry used by the output backends.
//
// A Manager maps font names to the raw bytes of TrueType or OpenType
// fonts.  Lookups never fail as long as any font is known: names which
// do not match a registered font fall back to the best available font.
// An optional builtin font is passed to NewManager and is used when no
// external font has been registered.
package fonts

import (
	"strings"
	"sync"
	"unicode"

	"seehuhn.de/go/docrender/internal/logging"
)

// Aliases which select the builtin font, matched as substrings.
var builtinAliases = []string{"NotoSansJP", "Noto", "Japanese"}

// cjkFontNames lists common names of fonts with CJK coverage, matched
// case-insensitively as substrings.  Requests for these fonts are served
// by the best available font.
var cjkFontNames = []string{
	"MS Gothic", "MS Mincho", "MS PGothic", "MS PMincho",
	"Yu Gothic", "Yu Mincho", "Meiryo", "HGGothic",
	"HGMincho", "IPAGothic", "IPAMincho", "Hiragino",
	"ヒラギノ", "游ゴシック", "游明朝", "メイリオ",
	"ＭＳ ゴシック", "ＭＳ 明朝", "ＭＳ Ｐゴシック", "ＭＳ Ｐ明朝",
	"SimSun", "SimHei", "MingLiU", "PMingLiU",
	"Malgun Gothic", "Batang", "Gulim",
}

type namedFont struct {
	name string
	data []byte
}

// Manager is a registry of fonts.
//
// All methods are safe for concurrent use.  The byte slices returned by
// the lookup methods are shared and must not be modified.
type Manager struct {
	mu       sync.RWMutex
	external []namedFont

	builtinName string
	builtin     []byte
}

// NewManager returns a registry with the given builtin font.
// The builtin font may be nil.
func NewManager(builtinName string, builtin []byte) *Manager {
	if len(builtin) == 0 {
		builtin = nil
		builtinName = ""
	}
	return &Manager{
		builtinName: builtinName,
		builtin:     builtin,
	}
}

// AddFont registers a font.  A font previously registered under the same
// name is replaced.  The first registered font is the preferred fallback.
func (m *Manager) AddFont(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(name)
	m.external = append(m.external, namedFont{name: name, data: data})
}

// RemoveFont removes the font with the given name, if present.
func (m *Manager) RemoveFont(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(name)
}

func (m *Manager) removeLocked(name string) {
	out := m.external[:0]
	for _, f := range m.external {
		if f.name != name {
			out = append(out, f)
		}
	}
	clear(m.external[len(out):])
	m.external = out
}

// ExternalFontCount returns the number of registered fonts, not counting
// the builtin font.
func (m *Manager) ExternalFontCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.external)
}

// HasBuiltinFont reports whether a builtin font is available.
func (m *Manager) HasBuiltinFont() bool {
	return m.builtin != nil
}

// Builtin returns the data of the builtin font, or nil.
func (m *Manager) Builtin() []byte {
	return m.builtin
}

// HasAnyFont reports whether any font is available.
func (m *Manager) HasAnyFont() bool {
	return m.HasBuiltinFont() || m.ExternalFontCount() > 0
}

// AvailableFonts returns the names of all registered fonts, followed by
// the name of the builtin font.
func (m *Manager) AvailableFonts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.external)+1)
	for _, f := range m.external {
		names = append(names, f.name)
	}
	if m.builtin != nil {
		names = append(names, m.builtinName)
	}
	return names
}

// BestAvailable returns the first registered font, or the builtin font if
// the first registered font is empty or no font has been registered.
// The result is nil if no font is available.
func (m *Manager) BestAvailable() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.bestLocked()
}

func (m *Manager) bestLocked() []byte {
	if len(m.external) > 0 && len(m.external[0].data) > 0 {
		return m.external[0].data
	}
	return m.builtin
}

// FontData looks up a font by name without falling back to unrelated
// fonts.  The lookup tries an exact match, then a case-insensitive
// substring match in either direction, and finally the aliases of the
// builtin font.
func (m *Manager) FontData(name string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.lookupLocked(name)
}

func (m *Manager) lookupLocked(name string) []byte {
	for _, f := range m.external {
		if f.name == name {
			return f.data
		}
	}

	if name != "" {
		lower := strings.ToLower(name)
		for _, f := range m.external {
			fl := strings.ToLower(f.name)
			if fl == "" {
				continue
			}
			if strings.Contains(fl, lower) || strings.Contains(lower, fl) {
				return f.data
			}
		}
	}

	if m.builtin != nil {
		if name == m.builtinName {
			return m.builtin
		}
		for _, alias := range builtinAliases {
			if strings.Contains(name, alias) {
				return m.builtin
			}
		}
	}
	return nil
}

// Resolve returns the font to use for the given font name.
// If no font matches the name, the best available font is returned.
// The result is nil only if no font is available at all.
func (m *Manager) Resolve(name string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if data := m.lookupLocked(name); data != nil {
		return data
	}
	logging.Logger().Debug("font substituted",
		"requested", name, "cjk", IsCJKFontName(name))
	return m.bestLocked()
}

// IsCJKFontName reports whether name refers to a well-known Chinese,
// Japanese or Korean font, or contains CJK characters.
func IsCJKFontName(name string) bool {
	lower := strings.ToLower(name)
	for _, cjk := range cjkFontNames {
		if strings.Contains(lower, strings.ToLower(cjk)) {
			return true
		}
	}
	for _, r := range name {
		if isWide(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// isWide reports whether r is in the CJK symbol, kana, ideograph or
// full-width form ranges.
func isWide(r rune) bool {
	return (r >= 0x3000 && r <= 0x9FFF) || (r >= 0xFF00 && r <= 0xFFEF)
}
