// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
)

// ANSI pens used by the Colorizer.
const (
	normalPen = "\033[0m"
	dimPen    = "\033[2m"
	yellowPen = "\033[33m"
	redPen    = "\033[1;31m"
)

// levelWriter is implemented by echo writers that want to treat entries
// differently depending on their level.
type levelWriter interface {
	WriteLevel(level Level, s string) error
}

// Colorizer applies basic coloring rules to logging output.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Output written this way is not
// coloured.
func (c Colorizer) Write(p []byte) (n int, err error) {
	return c.out.Write(p)
}

// WriteLevel writes the string using the pen for the level.
func (c Colorizer) WriteLevel(level Level, s string) error {
	var pen string
	switch level {
	case Trace:
		pen = dimPen
	case Warn:
		pen = yellowPen
	case Error:
		pen = redPen
	}

	if pen == "" {
		_, err := io.WriteString(c.out, s)
		return err
	}

	_, err := io.WriteString(c.out, pen+s+normalPen)
	return err
}
