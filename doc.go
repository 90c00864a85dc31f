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

// Package oledmsg generates C source code which displays a text message on
// an SSD1306 OLED display driven by a small PIC microcontroller.
//
// The message is converted into glyph data using a font table (see package
// [seehuhn.de/go/oledmsg/glyph]) and written in two forms: a flat array for
// program memory and a sequence of __EEPROM_DATA rows for the data EEPROM.
//
// A typical use is:
//
//	cfg := oledmsg.DefaultConfig()
//	cfg.Message = "ADC value:"
//	cfg.FontSource = "Oled_Chars.txt"
//	err := oledmsg.Generate(os.Stdout, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// which prints
//
//	const char message[50]={0x7C,0x12,0x11,0x12,0x7C,...};
//	__EEPROM_DATA(0x7C,0x12,0x11,0x12,0x7C,0x7F,0x41,0x41);
//	...
//	__EEPROM_DATA(0x00,0x00,0xFF,0xFF,0xFF,0xFF,0xFF,0xFF);
package oledmsg
