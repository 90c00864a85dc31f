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

// Oled-msg converts a text message into C declarations for an SSD1306
// display attached to a PIC microcontroller.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/oledmsg"
	"seehuhn.de/go/oledmsg/decl"
	"seehuhn.de/go/oledmsg/eeprom"
	"seehuhn.de/go/oledmsg/preview"
	"seehuhn.de/go/oledmsg/tools/internal/buildinfo"
)

const toolName = "oled-msg"

var (
	fontArg     = flag.String("f", "", "font `file` (default: builtin 5x7 font)")
	envArg      = flag.String("env", ".env.local,.env", "comma-separated list of configuration `files`")
	nameArg     = flag.String("name", decl.DefaultName, "`name` of the flat array")
	offsetArg   = flag.Int("offset", 0, "EEPROM `position` of the message")
	capacityArg = flag.Int("capacity", 0, fmt.Sprintf("EEPROM size in `bytes` (%d on the PIC12F675), 0 = unlimited", eeprom.DefaultCapacity))
	commentArg  = flag.Bool("comment", false, "emit explanatory comments")
	outArg      = flag.String("o", "", "write the declarations to `file` instead of stdout")
	hexArg      = flag.String("hex", "", "write an Intel HEX image of the EEPROM rows to `file`")
	pngArg      = flag.String("png", "", "write a PNG preview to `file`")
	scaleArg    = flag.Int("scale", 4, "scale `factor` for the PNG preview")
	showArg     = flag.Bool("show", false, "show a preview on stderr")
	verboseArg  = flag.Bool("v", false, "report progress on stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "oled-msg \u2014 convert a message into SSD1306 glyph data\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  oled-msg [options] [message]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  message    the text to encode (default %q)\n\n", oledmsg.DefaultMessage)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nConfiguration files and environment variables:\n")
		fmt.Fprintf(os.Stderr, "  %s, %s, %s,\n", oledmsg.KeyMessage, oledmsg.KeyFont, oledmsg.KeyName)
		fmt.Fprintf(os.Stderr, "  %s, %s, %s\n", oledmsg.KeyOffset, oledmsg.KeyCapacity, oledmsg.KeyComment)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  oled-msg -f Oled_Chars.txt 'ADC value:'\n")
		fmt.Fprintf(os.Stderr, "  oled-msg -offset 56 -capacity 128 -comment -hex eeprom.hex -show\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, toolName+":", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := oledmsg.LoadConfig(strings.Split(*envArg, ",")...)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if flag.NArg() == 1 {
		cfg.Message = flag.Arg(0)
	}

	res, err := oledmsg.Build(cfg)
	if err != nil {
		return err
	}
	if *verboseArg {
		font := cfg.FontSource
		if font == "" {
			font = "builtin font"
		}
		fmt.Fprintf(os.Stderr, "%s: %d characters, %d bytes, %d EEPROM rows (%s)\n",
			toolName, res.Chars(), len(res.Data), len(res.Rows()), font)
	}

	writeDecl := func(w io.Writer) error {
		if cfg.Comment {
			_, err := fmt.Fprintln(w, buildinfo.Banner(toolName))
			if err != nil {
				return err
			}
		}
		return res.WriteDeclarations(w)
	}
	if *outArg == "" {
		err = writeDecl(os.Stdout)
	} else {
		err = writeFile(*outArg, writeDecl)
	}
	if err != nil {
		return err
	}

	if *hexArg != "" {
		err = writeFile(*hexArg, res.WriteIntelHex)
		if err != nil {
			return err
		}
	}

	if *pngArg != "" {
		err = writeFile(*pngArg, func(w io.Writer) error {
			return preview.WritePNG(w, res.Data, 0, *scaleArg)
		})
		if err != nil {
			return err
		}
	}

	if *showArg {
		err = preview.WriteText(os.Stderr, res.Data, terminalPerLine(os.Stderr))
		if err != nil {
			return err
		}
	}

	return nil
}

// applyFlags copies the explicitly given command line options into cfg.
func applyFlags(cfg *oledmsg.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "f":
			cfg.FontSource = *fontArg
		case "name":
			cfg.Name = *nameArg
		case "offset":
			cfg.Offset = *offsetArg
		case "capacity":
			cfg.Capacity = *capacityArg
		case "comment":
			cfg.Comment = *commentArg
		}
	})
}

// terminalPerLine returns the number of glyphs which fit on one line of
// the terminal.
func terminalPerLine(fd *os.File) int {
	if !term.IsTerminal(int(fd.Fd())) {
		return preview.DefaultPerLine
	}
	width, _, err := term.GetSize(int(fd.Fd()))
	if err != nil || width < preview.Pitch {
		return preview.DefaultPerLine
	}
	return width / preview.Pitch
}

func writeFile(fname string, write func(io.Writer) error) (err error) {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := fd.Close()
		if err == nil {
			err = closeErr
		}
	}()

	return write(fd)
}
