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
	"strconv"
)

var (
	errEmptyMessage = errors.New("message is empty")
)

// ConfigError indicates an invalid configuration value.
type ConfigError struct {
	Key   string
	Value string
	Err   error
}

func (err *ConfigError) Error() string {
	middle := ""
	if err.Value != "" {
		middle = "=" + strconv.Quote(err.Value)
	}
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "invalid configuration " + err.Key + middle + tail
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}
