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

package preview

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// glyph data for "0." in the builtin font
var zeroDot = []byte{
	0x3E, 0x51, 0x49, 0x45, 0x3E,
	0x00, 0x00, 0x60, 0x60, 0x00,
}

func TestImageSize(t *testing.T) {
	cases := []struct {
		glyphs, perLine int
		dx, dy          int
	}{
		{0, 0, 0, 0},
		{1, 0, 6, 8},
		{21, 0, 126, 8},
		{22, 0, 126, 16},
		{10, 4, 24, 24},
	}
	for _, c := range cases {
		img := Image(make([]byte, 5*c.glyphs), c.perLine)
		r := img.Bounds()
		if r.Dx() != c.dx || r.Dy() != c.dy {
			t.Errorf("%d glyphs, %d per line: got %dx%d, want %dx%d",
				c.glyphs, c.perLine, r.Dx(), r.Dy(), c.dx, c.dy)
		}
	}
}

func TestImagePixels(t *testing.T) {
	img := Image(zeroDot, 0)

	// bit 0 is the top pixel
	if img.GrayAt(0, 0).Y != 0 || img.GrayAt(0, 1).Y == 0 {
		t.Error("wrong bit order in first column")
	}
	// the gap column between glyphs stays dark
	for y := range LineHeight {
		if img.GrayAt(5, y).Y != 0 {
			t.Errorf("pixel (5,%d) is lit", y)
		}
	}
	// the dot of the second glyph
	if img.GrayAt(Pitch+2, 5).Y == 0 || img.GrayAt(Pitch+2, 6).Y == 0 {
		t.Error("dot not rendered")
	}
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteText(buf, zeroDot, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		" ███",
		"█   █",
		"█  ██",
		"█ █ █",
		"██  █",
		"█   █   ██",
		" ███    ██",
		"",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("preview (-want +got):\n%s", d)
	}
}

func TestWritePNG(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WritePNG(buf, zeroDot, 0, 3)
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	r := img.Bounds()
	if r.Dx() != 3*2*Pitch || r.Dy() != 3*LineHeight {
		t.Errorf("image size %dx%d", r.Dx(), r.Dy())
	}
	if c, _, _, _ := img.At(3*0+1, 3*1+1).RGBA(); c == 0 {
		t.Error("scaled pixel (0,1) is dark")
	}
	if c, _, _, _ := img.At(3*0+2, 3*0+2).RGBA(); c != 0 {
		t.Error("scaled pixel (0,0) is lit")
	}

	if err := WritePNG(buf, nil, 0, 3); err == nil {
		t.Error("missing error for empty data")
	}
}
