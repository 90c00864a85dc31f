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

package oledmsg

import (
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/oledmsg/decl"
	"seehuhn.de/go/oledmsg/eeprom"
	"seehuhn.de/go/oledmsg/glyph"
	"seehuhn.de/go/oledmsg/message"
)

// Result holds the encoded form of a message.
type Result struct {
	// Message is the encoded text.
	Message string

	// Data is the glyph data, [glyph.Width] bytes per character.
	Data []byte

	// Style is the notation of byte values in generated code.  This
	// follows the notation used in the font file.
	Style decl.Style

	cfg Config
}

// Build loads the font and encodes the message described by cfg.
// If cfg is nil, the default configuration is used.
func Build(cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Check()
	if err != nil {
		return nil, err
	}

	font, err := cfg.font()
	if err != nil {
		return nil, err
	}
	data, err := message.Encode(cfg.Message, font)
	if err != nil {
		return nil, err
	}

	n := len(data) + decl.Padding(len(data), decl.DefaultRowWidth)
	err = cfg.layout().Check(n)
	if err != nil {
		return nil, err
	}

	style := decl.Decimal
	if font.Hex() {
		style = decl.Hex
	}
	res := &Result{
		Message: cfg.Message,
		Data:    data,
		Style:   style,
		cfg:     *cfg,
	}
	return res, nil
}

// Chars returns the number of characters in the message.
func (r *Result) Chars() int {
	return len(r.Data) / glyph.Width
}

// Rows returns the EEPROM rows, including the padding of the last row.
func (r *Result) Rows() [][]byte {
	return decl.Rows(r.Data, decl.DefaultRowWidth, decl.DefaultSentinel)
}

func (r *Result) options() *decl.Options {
	return &decl.Options{
		Name:     r.cfg.Name,
		RowWidth: decl.DefaultRowWidth,
		Sentinel: decl.DefaultSentinel,
		Style:    r.Style,
	}
}

// WriteDeclarations writes the flat array declaration, followed by the
// __EEPROM_DATA rows.  If comments are enabled in the configuration, these
// are preceded by a description of the EEPROM range and the call which
// sends the message to the display.
func (r *Result) WriteDeclarations(w io.Writer) error {
	buf := &bytes.Buffer{}

	if r.cfg.Comment {
		l := r.cfg.layout()
		fmt.Fprintf(buf, "// Message %q on EEPROM (position %d-%d)\n",
			r.Message, l.Offset, l.Last(len(r.Data)))
		fmt.Fprintf(buf, "// ssd1306_SendChar(NULL,%d,%d);\n", l.Offset, r.Chars())
	}

	opt := r.options()
	err := decl.WriteFlat(buf, r.Data, opt)
	if err != nil {
		return err
	}
	err = decl.WriteRows(buf, r.Data, opt)
	if err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// WriteIntelHex writes the EEPROM rows, including padding, as an Intel HEX
// image.
func (r *Result) WriteIntelHex(w io.Writer) error {
	var data []byte
	for _, row := range r.Rows() {
		data = append(data, row...)
	}
	return eeprom.WriteIntelHex(w, data, r.cfg.Offset)
}

// Generate encodes the message described by cfg and writes the
// declarations to w.  Nothing is written if an error occurs.
func Generate(w io.Writer, cfg *Config) error {
	res, err := Build(cfg)
	if err != nil {
		return err
	}
	return res.WriteDeclarations(w)
}
