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

// Package decl writes glyph data as C declarations for the XC8 compiler.
//
// Two forms are supported: a flat array for program memory,
//
//	const char message[5]={0x7C,0x12,0x11,0x12,0x7C};
//
// and a sequence of EEPROM initialisers with a fixed number of bytes each,
//
//	__EEPROM_DATA(0x7C,0x12,0x11,0x12,0x7C,0xFF,0xFF,0xFF);
//
// The last EEPROM row is filled up with a sentinel value.
package decl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Style selects the notation for byte values in generated code.
type Style int

// These are the supported notations.
const (
	Hex     Style = iota // 0x7C
	Decimal              // 124
)

func (s Style) String() string {
	switch s {
	case Hex:
		return "hex"
	case Decimal:
		return "decimal"
	default:
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
}

func (s Style) format(b byte) string {
	if s == Decimal {
		return strconv.Itoa(int(b))
	}
	return fmt.Sprintf("0x%02X", b)
}

const (
	// DefaultRowWidth is the number of arguments of the __EEPROM_DATA macro.
	DefaultRowWidth = 8

	// DefaultSentinel is the value of erased EEPROM cells.
	DefaultSentinel byte = 0xFF

	// DefaultName is the default name of the flat array.
	DefaultName = "message"
)

// Options control the generated declarations.
type Options struct {
	// Name is the name of the flat array.
	// If this is empty, [DefaultName] is used.
	Name string

	// RowWidth is the number of bytes per EEPROM row.
	// If this is zero, [DefaultRowWidth] is used.
	RowWidth int

	// Sentinel is used to fill up the last EEPROM row.  Unlike the other
	// fields, zero is not replaced by a default: a zero Sentinel pads
	// with 0x00.  [DefaultOptions] sets this to [DefaultSentinel].
	Sentinel byte

	// Style is the notation used for glyph data.  Sentinel values are
	// always written in hexadecimal.
	Style Style
}

// DefaultOptions returns the options used when nil is passed to one of the
// Write functions.
func DefaultOptions() *Options {
	return &Options{
		Name:     DefaultName,
		RowWidth: DefaultRowWidth,
		Sentinel: DefaultSentinel,
		Style:    Hex,
	}
}

func (opt *Options) name() string {
	if opt.Name == "" {
		return DefaultName
	}
	return opt.Name
}

func (opt *Options) rowWidth() int {
	if opt.RowWidth <= 0 {
		return DefaultRowWidth
	}
	return opt.RowWidth
}

// Padding returns the number of sentinel values needed to extend n bytes to
// a whole number of rows.  The result is in the range 0, ..., width-1.
func Padding(n, width int) int {
	return (width - n%width) % width
}

// Rows splits data into rows of the given width.  If the length of data is
// not a multiple of width, the last row is filled up with copies of
// sentinel.  The returned rows do not share memory with data.
func Rows(data []byte, width int, sentinel byte) [][]byte {
	if width <= 0 {
		panic("decl: invalid row width " + strconv.Itoa(width))
	}

	fullRows := len(data) / width
	remainder := len(data) % width

	padded := make([]byte, len(data), len(data)+width)
	copy(padded, data)
	if remainder > 0 {
		for range width - remainder {
			padded = append(padded, sentinel)
		}
		fullRows++
	}

	rows := make([][]byte, fullRows)
	for i := range rows {
		rows[i] = padded[i*width : (i+1)*width : (i+1)*width]
	}
	return rows
}

// WriteFlat writes data as a single array declaration.
func WriteFlat(w io.Writer, data []byte, opt *Options) error {
	if opt == nil {
		opt = DefaultOptions()
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "const char %s[%d]={", opt.name(), len(data))
	for i, x := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(opt.Style.format(x))
	}
	b.WriteString("};\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRows writes data as a sequence of __EEPROM_DATA lines.
func WriteRows(w io.Writer, data []byte, opt *Options) error {
	if opt == nil {
		opt = DefaultOptions()
	}
	width := opt.rowWidth()
	sentinel := Hex.format(opt.Sentinel)

	b := &strings.Builder{}
	for i, row := range Rows(data, width, opt.Sentinel) {
		b.WriteString("__EEPROM_DATA(")
		for j, x := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			if i*width+j < len(data) {
				b.WriteString(opt.Style.format(x))
			} else {
				b.WriteString(sentinel)
			}
		}
		b.WriteString(");\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
