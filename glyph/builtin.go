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

package glyph

import (
	"embed"
	"sync"
)

//go:embed data/ascii5x7.txt
var builtinData embed.FS

var (
	builtinOnce  sync.Once
	builtinTable *Table
)

// Builtin returns a 5x7 pixel font covering the printable ASCII characters
// (ordinals 32 to 127).
//
// The returned table is shared and must not be modified by the caller.
func Builtin() *Table {
	builtinOnce.Do(func() {
		fd, err := builtinData.Open("data/ascii5x7.txt")
		if err != nil {
			panic(err) // unreachable, the file is embedded
		}
		defer fd.Close()

		builtinTable, err = Read(fd)
		if err != nil {
			panic("glyph: corrupted builtin font: " + err.Error())
		}
	})
	return builtinTable
}
