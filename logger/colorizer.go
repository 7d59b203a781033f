// This file is part of tracecompare.
//
// tracecompare is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tracecompare is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tracecompare.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
	"strings"

	"github.com/jetsetilly/tracecompare/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to multi-line output. The first line
// of each write is left as it is and any subsequent lines are written with the
// dim red pen.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. The count returned is of the bytes
// consumed from p and does not include the ANSI sequences.
func (c Colorizer) Write(p []byte) (int, error) {
	s, newline := strings.CutSuffix(string(p), "\n")
	if s == "" {
		return c.out.Write(p)
	}

	l := strings.Split(s, "\n")

	var b strings.Builder
	b.WriteString(l[0])
	if len(l) > 1 {
		b.WriteString("\n")
		b.WriteString(ansi.DimPens["red"])
		b.WriteString(strings.Join(l[1:], "\n"))
		if newline {
			b.WriteString("\n")
		}
		b.WriteString(ansi.NormalPen)
	} else if newline {
		b.WriteString("\n")
	}

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return 0, err
	}

	return len(p), nil
}
