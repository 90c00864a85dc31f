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

package message

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/oledmsg/glyph"
)

func exampleFont() *glyph.Table {
	font := glyph.NewTable()
	font.Set(' ', glyph.Glyph{1, 2, 3, 4, 5})
	font.Set('A', glyph.Glyph{6, 7, 8, 9, 10})
	return font
}

func TestEncodeExample(t *testing.T) {
	data, err := Encode("A", exampleFont())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{6, 7, 8, 9, 10}, data); d != "" {
		t.Errorf("encoded data (-want +got):\n%s", d)
	}

	data, err = Encode("A A", exampleFont())
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{6, 7, 8, 9, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if d := cmp.Diff(want, data); d != "" {
		t.Errorf("encoded data (-want +got):\n%s", d)
	}
}

func TestEncodeLength(t *testing.T) {
	font := glyph.Builtin()
	for _, msg := range []string{"", "x", "ADC value:", "Hello, World!", strings.Repeat("~", 100)} {
		data, err := Encode(msg, font)
		if err != nil {
			t.Fatalf("%q: %v", msg, err)
		}
		if len(data) != glyph.Width*utf8.RuneCountInString(msg) {
			t.Errorf("%q: got %d bytes", msg, len(data))
		}
	}
}

func TestEncodeLookupError(t *testing.T) {
	cases := []struct {
		msg  string
		char rune
		pos  int
		text string
	}{
		{"AB", 'B', 1, "no glyph for U+0042 LATIN CAPITAL LETTER B at position 1"},
		{"\u00e9", '\u00e9', 0, "no glyph for U+00E9 LATIN SMALL LETTER E WITH ACUTE at position 0"},
		{"A\tA", '\t', 1, "no glyph for U+0009 at position 1"},
	}
	for _, c := range cases {
		data, err := Encode(c.msg, exampleFont())
		if data != nil {
			t.Errorf("%q: unexpected data %v", c.msg, data)
		}
		var lookupErr *LookupError
		if !errors.As(err, &lookupErr) {
			t.Errorf("%q: expected LookupError, got %v", c.msg, err)
			continue
		}
		if lookupErr.Char != c.char || lookupErr.Pos != c.pos {
			t.Errorf("%q: got %q at %d, want %q at %d",
				c.msg, lookupErr.Char, lookupErr.Pos, c.char, c.pos)
		}
		if err.Error() != c.text {
			t.Errorf("%q: got message %q", c.msg, err.Error())
		}
	}
}

func TestEncodeNormalization(t *testing.T) {
	font := glyph.NewTable()
	font.Set('\u00e9', glyph.Glyph{0x38, 0x54, 0x56, 0x55, 0x18})

	// "e" followed by a combining acute accent
	data, err := Encode("e\u0301", font)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{0x38, 0x54, 0x56, 0x55, 0x18}, data); d != "" {
		t.Errorf("encoded data (-want +got):\n%s", d)
	}

	// positions count composed characters
	_, err = Encode("e\u0301e\u0301B", font)
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if lookupErr.Char != 'B' || lookupErr.Pos != 2 {
		t.Errorf("got %q at %d, want 'B' at 2", lookupErr.Char, lookupErr.Pos)
	}
}
