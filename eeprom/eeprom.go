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

// Package eeprom places glyph data in the data EEPROM of a PIC
// microcontroller.
package eeprom

import (
	"fmt"
	"io"

	"github.com/marcinbor85/gohex"
)

// HexBase is the byte address at which Intel HEX files for mid-range PIC
// devices store the data EEPROM.  The EEPROM starts at program word 0x2100,
// and every EEPROM cell occupies one (two byte) program word.
const HexBase uint32 = 2 * 0x2100

// DefaultCapacity is the EEPROM size of the PIC12F675.
const DefaultCapacity = 128

// Layout describes where data is stored in the EEPROM.
type Layout struct {
	// Offset is the EEPROM address of the first byte.
	Offset int

	// Capacity is the size of the EEPROM in bytes.
	// Zero means no limit.
	Capacity int

	// RowWidth is the number of bytes per __EEPROM_DATA row.  The offset
	// must be a multiple of this value.  Zero disables the check.
	RowWidth int
}

// OverflowError indicates that data does not fit into the EEPROM.
type OverflowError struct {
	Offset   int
	Len      int
	Capacity int
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("%d bytes at EEPROM position %d exceed the capacity of %d bytes",
		err.Len, err.Offset, err.Capacity)
}

// AlignmentError indicates an EEPROM offset which does not start a new row.
type AlignmentError struct {
	Offset   int
	RowWidth int
}

func (err *AlignmentError) Error() string {
	return fmt.Sprintf("EEPROM position %d is not a multiple of %d",
		err.Offset, err.RowWidth)
}

// Check verifies that n bytes can be stored according to the layout.
func (l *Layout) Check(n int) error {
	if l.Offset < 0 {
		return &OverflowError{Offset: l.Offset, Len: n, Capacity: l.Capacity}
	}
	if l.RowWidth > 0 && l.Offset%l.RowWidth != 0 {
		return &AlignmentError{Offset: l.Offset, RowWidth: l.RowWidth}
	}
	if l.Capacity > 0 && l.Offset+n > l.Capacity {
		return &OverflowError{Offset: l.Offset, Len: n, Capacity: l.Capacity}
	}
	return nil
}

// Last returns the EEPROM address of the last of n bytes stored at the
// layout's offset.
func (l *Layout) Last(n int) int {
	return l.Offset + n - 1
}

// WriteIntelHex writes an Intel HEX image which programs data into the
// EEPROM, starting at the given offset.
func WriteIntelHex(w io.Writer, data []byte, offset int) error {
	if offset < 0 {
		return fmt.Errorf("invalid EEPROM offset %d", offset)
	}

	words := make([]byte, 2*len(data))
	for i, b := range data {
		words[2*i] = b
	}

	mem := gohex.NewMemory()
	if len(words) > 0 {
		err := mem.AddBinary(HexBase+2*uint32(offset), words)
		if err != nil {
			return err
		}
	}
	return mem.DumpIntelHex(w, 16)
}
