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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// NotFoundError is returned by [Load] if the font file cannot be opened.
type NotFoundError struct {
	Source string
	Err    error
}

func (err *NotFoundError) Error() string {
	return "font source " + strconv.Quote(err.Source) + " not found: " + err.Err.Error()
}

func (err *NotFoundError) Unwrap() error {
	return err.Err
}

// MalformedLineError indicates a line of a font file which does not
// describe a glyph.
type MalformedLineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (err *MalformedLineError) Error() string {
	return fmt.Sprintf("font line %d: %q: %v", err.Line, err.Text, err.Err)
}

func (err *MalformedLineError) Unwrap() error {
	return err.Err
}

var errColumns = fmt.Errorf("expected %d values", Width)

// Load reads a font table from the named file.
func Load(fname string) (*Table, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, &NotFoundError{Source: fname, Err: err}
	}
	defer fd.Close()

	return Read(fd)
}

// Read reads a font table from r.
//
// Each line holds the glyph for the next ordinal, starting with
// [FirstOrdinal].  A line consists of [Width] comma-separated byte values in
// Go integer literal syntax, for example "0x3E,0x51,0x49,0x45,0x3E".
// Surrounding white space and a single trailing comma are ignored.
// Blank lines at the end of the input are skipped; a blank line before
// another glyph is an error, since it would shift all later ordinals.
func Read(r io.Reader) (*Table, error) {
	t := NewTable()

	scanner := bufio.NewScanner(r)
	ordinal := FirstOrdinal
	lineNo := 0
	blankLine := 0 // first blank line not yet followed by a glyph
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if blankLine == 0 {
				blankLine = lineNo
			}
			continue
		}
		if blankLine > 0 {
			return nil, &MalformedLineError{Line: blankLine, Err: errColumns}
		}

		g, hex, err := parseLine(line)
		if err != nil {
			return nil, &MalformedLineError{Line: lineNo, Text: line, Err: err}
		}
		if !hex {
			t.decimal = true
		}
		t.Set(ordinal, g)
		ordinal++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseLine decodes one glyph.  The second return value reports whether
// all values were given in hexadecimal.
func parseLine(line string) (Glyph, bool, error) {
	var g Glyph

	line = strings.TrimSuffix(line, ",")
	ff := strings.Split(line, ",")
	if len(ff) != Width {
		return g, false, errColumns
	}

	hex := true
	for i, f := range ff {
		f = strings.TrimSpace(f)
		if f == "" {
			return g, false, errors.New("empty value")
		}
		x, err := strconv.ParseUint(f, 0, 8)
		if err != nil {
			return g, false, err
		}
		if !strings.HasPrefix(f, "0x") && !strings.HasPrefix(f, "0X") {
			hex = false
		}
		g[i] = byte(x)
	}
	return g, hex, nil
}
