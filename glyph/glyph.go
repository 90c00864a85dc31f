// seehuhn.de/go/oledmsg - glyph data for SSD1306 OLED displays
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

// Package glyph implements font tables for 5x8 pixel character displays.
//
// A font table maps character ordinals to glyphs.  Each glyph consists of
// [Width] bytes, one per display column.  Bit 0 of each byte is the top
// pixel of the column, which is the page layout used by SSD1306 display
// controllers.
//
// Font tables are read from text files with one glyph per line.  The first
// line describes the glyph for [FirstOrdinal] (the space character), and
// every following line describes the next ordinal.
package glyph

import (
	"slices"

	"golang.org/x/exp/maps"
)

const (
	// Width is the number of columns (bytes) in one glyph.
	Width = 5

	// FirstOrdinal is the ordinal described by the first line of a font
	// file.
	FirstOrdinal rune = 32
)

// Glyph holds the column data for one character.
type Glyph [Width]byte

// Table maps character ordinals to glyphs.
type Table struct {
	glyphs  map[rune]Glyph
	decimal bool
}

// NewTable returns an empty font table.
func NewTable() *Table {
	return &Table{glyphs: make(map[rune]Glyph)}
}

// Set stores the glyph for ordinal r.
func (t *Table) Set(r rune, g Glyph) {
	t.glyphs[r] = g
}

// Lookup returns the glyph for ordinal r.
// The second return value is false if the table has no glyph for r.
func (t *Table) Lookup(r rune) (Glyph, bool) {
	g, ok := t.glyphs[r]
	return g, ok
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.glyphs)
}

// Ordinals returns the ordinals covered by the table, in increasing order.
func (t *Table) Ordinals() []rune {
	keys := maps.Keys(t.glyphs)
	slices.Sort(keys)
	return keys
}

// Hex reports whether the font source spelled all byte values in
// hexadecimal notation.  Generated code uses the same notation as the
// font source.
func (t *Table) Hex() bool {
	return !t.decimal
}
