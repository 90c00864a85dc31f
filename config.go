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
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"seehuhn.de/go/oledmsg/decl"
	"seehuhn.de/go/oledmsg/eeprom"
	"seehuhn.de/go/oledmsg/glyph"
)

// DefaultMessage is the message used by [DefaultConfig].
const DefaultMessage = "ADC value:"

// Names of the configuration keys, used both in configuration files and as
// environment variables.
const (
	KeyMessage  = "OLEDMSG_MESSAGE"
	KeyFont     = "OLEDMSG_FONT"
	KeyName     = "OLEDMSG_NAME"
	KeyOffset   = "OLEDMSG_OFFSET"
	KeyCapacity = "OLEDMSG_CAPACITY"
	KeyComment  = "OLEDMSG_COMMENT"
)

var allKeys = []string{
	KeyMessage, KeyFont, KeyName, KeyOffset, KeyCapacity, KeyComment,
}

// Config holds the parameters for generating declarations.
type Config struct {
	// Message is the text to encode.
	Message string

	// FontSource is the name of the font file.  If this is empty, the
	// builtin 5x7 font is used.
	FontSource string

	// Name is the name of the flat array.
	Name string

	// Offset is the EEPROM position of the first byte of the message.
	// This must be a multiple of the __EEPROM_DATA row width.
	Offset int

	// Capacity is the EEPROM size in bytes.  Zero, the default, disables
	// the size check.  Use [eeprom.DefaultCapacity] for the PIC12F675.
	Capacity int

	// Comment enables explanatory comments in the generated code.
	Comment bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Message: DefaultMessage,
		Name:    decl.DefaultName,
	}
}

// LoadConfig returns the default configuration, modified by the settings in
// the given files and in the environment.
//
// The files contain KEY=value lines (see the Key* constants).  Files which
// do not exist are skipped.  If a key is set in more than one file, the
// first file wins.  Environment variables take precedence over all files.
func LoadConfig(files ...string) (*Config, error) {
	settings := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		fname := files[i]
		if _, err := os.Stat(fname); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		vals, err := godotenv.Read(fname)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		maps.Copy(settings, vals)
	}
	for _, key := range allKeys {
		if val, ok := os.LookupEnv(key); ok {
			settings[key] = val
		}
	}

	cfg := DefaultConfig()
	err := cfg.Set(settings)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Set updates the configuration from a map of KEY=value settings.
// Unknown keys are ignored.
func (cfg *Config) Set(settings map[string]string) error {
	for key, val := range settings {
		switch key {
		case KeyMessage:
			cfg.Message = val
		case KeyFont:
			cfg.FontSource = val
		case KeyName:
			cfg.Name = val
		case KeyOffset, KeyCapacity:
			x, err := strconv.Atoi(val)
			if err != nil {
				return &ConfigError{Key: key, Value: val, Err: err}
			}
			if key == KeyOffset {
				cfg.Offset = x
			} else {
				cfg.Capacity = x
			}
		case KeyComment:
			x, err := strconv.ParseBool(val)
			if err != nil {
				return &ConfigError{Key: key, Value: val, Err: err}
			}
			cfg.Comment = x
		}
	}
	return nil
}

// Check verifies that the configuration can be used to generate code.
func (cfg *Config) Check() error {
	if cfg.Message == "" {
		return &ConfigError{Key: KeyMessage, Err: errEmptyMessage}
	}
	if !isIdentifier(cfg.Name) {
		return &ConfigError{Key: KeyName, Value: cfg.Name, Err: errors.New("not a C identifier")}
	}
	if cfg.Offset < 0 {
		return &ConfigError{Key: KeyOffset, Value: strconv.Itoa(cfg.Offset), Err: errors.New("negative offset")}
	}
	if cfg.Capacity < 0 {
		return &ConfigError{Key: KeyCapacity, Value: strconv.Itoa(cfg.Capacity), Err: errors.New("negative capacity")}
	}
	return nil
}

func (cfg *Config) font() (*glyph.Table, error) {
	if cfg.FontSource == "" {
		return glyph.Builtin(), nil
	}
	return glyph.Load(cfg.FontSource)
}

func (cfg *Config) layout() *eeprom.Layout {
	return &eeprom.Layout{
		Offset:   cfg.Offset,
		Capacity: cfg.Capacity,
		RowWidth: decl.DefaultRowWidth,
	}
}

// cKeywords lists the reserved words of C99 and C11.
var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extern": true,
	"float": true, "for": true, "goto": true, "if": true,
	"inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true,
	"sizeof": true, "static": true, "struct": true, "switch": true,
	"typedef": true, "union": true, "unsigned": true, "void": true,
	"volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true,
	"_Complex": true, "_Generic": true, "_Imaginary": true,
	"_Noreturn": true, "_Static_assert": true, "_Thread_local": true,
}

func isIdentifier(s string) bool {
	if s == "" || cKeywords[s] {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}
