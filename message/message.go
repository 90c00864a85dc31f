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

// Package message converts text into the column data of a font table.
package message

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/oledmsg/glyph"
)

// LookupError is returned by [Encode] if the message contains a
// character which is not covered by the font.
type LookupError struct {
	Char rune
	Pos  int // position in the NFC-normalised message, in runes
}

func (err *LookupError) Error() string {
	desc := fmt.Sprintf("U+%04X", err.Char)
	if name := runenames.Name(err.Char); name != "" && !strings.HasPrefix(name, "<") {
		desc += " " + name
	}
	return fmt.Sprintf("no glyph for %s at position %d", desc, err.Pos)
}

// Encode returns the concatenated glyph data for all characters of msg.
// The result has [glyph.Width] bytes for every character.
//
// The message is brought into Unicode normal form C before the glyphs are
// looked up, so a decomposed character counts as a single position in a
// [LookupError].
func Encode(msg string, font *glyph.Table) ([]byte, error) {
	msg = norm.NFC.String(msg)

	res := make([]byte, 0, glyph.Width*len(msg))
	pos := 0
	for _, r := range msg {
		g, ok := font.Lookup(r)
		if !ok {
			return nil, &LookupError{Char: r, Pos: pos}
		}
		res = append(res, g[:]...)
		pos++
	}
	return res, nil
}
