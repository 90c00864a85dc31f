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

// Package preview renders glyph data the way an SSD1306 display shows it.
//
// Glyphs are placed at a pitch of [Pitch] pixels, leaving one blank column
// between characters, and each text line is one display page (8 pixels)
// high.  This matches the cursor arithmetic of the firmware, which sends
// glyph k to display columns 6k to 6k+4.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"

	"seehuhn.de/go/oledmsg/glyph"
)

const (
	// Pitch is the horizontal distance between glyphs, in pixels.
	Pitch = glyph.Width + 1

	// LineHeight is the height of one text line, in pixels.
	LineHeight = 8

	// DefaultPerLine is the number of glyphs on one line of a 128 pixel
	// wide display.
	DefaultPerLine = 128 / Pitch
)

var errEmpty = errors.New("preview: no glyph data")

var on = color.Gray{Y: 0xFF}

// Image renders data, which must consist of whole glyphs, as a grayscale
// image.  Lit pixels are white.  At most perLine glyphs are shown on each
// line; if perLine is not positive, [DefaultPerLine] is used.
func Image(data []byte, perLine int) *image.Gray {
	if perLine <= 0 {
		perLine = DefaultPerLine
	}

	n := (len(data) + glyph.Width - 1) / glyph.Width
	lines := (n + perLine - 1) / perLine
	cols := min(n, perLine)

	img := image.NewGray(image.Rect(0, 0, cols*Pitch, lines*LineHeight))
	for i, b := range data {
		k := i / glyph.Width
		x := (k%perLine)*Pitch + i%glyph.Width
		y0 := (k / perLine) * LineHeight
		for bit := range LineHeight {
			if b&(1<<bit) != 0 {
				img.SetGray(x, y0+bit, on)
			}
		}
	}
	return img
}

// WritePNG writes a PNG preview of data, enlarged by the given factor.
func WritePNG(w io.Writer, data []byte, perLine, scale int) error {
	src := Image(data, perLine)
	sr := src.Bounds()
	if sr.Empty() {
		return errEmpty
	}
	if scale < 1 {
		scale = 1
	}

	dst := image.NewGray(image.Rect(0, 0, sr.Dx()*scale, sr.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return png.Encode(w, dst)
}

// WriteText writes a preview of data using block characters.
func WriteText(w io.Writer, data []byte, perLine int) error {
	img := Image(data, perLine)
	r := img.Bounds()

	b := &strings.Builder{}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		var row strings.Builder
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.GrayAt(x, y).Y != 0 {
				row.WriteRune('█')
			} else {
				row.WriteByte(' ')
			}
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
