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

package trace

import (
	"strings"
	"unicode"
)

// Line is a single line from a trace log.
type Line struct {
	// the line with trailing white space removed
	Raw string

	// maximal runs of non-whitespace characters in Raw
	Tokens []string
}

// NewLine trims trailing white space from the raw line and splits it into
// tokens.
func NewLine(raw string) Line {
	raw = strings.TrimRightFunc(raw, unicode.IsSpace)
	return Line{
		Raw:    raw,
		Tokens: strings.Fields(raw),
	}
}

func (l Line) String() string {
	return l.Raw
}

// Len returns the number of tokens in the line.
func (l Line) Len() int {
	return len(l.Tokens)
}

// Token returns the token at index i. A negative index counts from the end of
// the line, so that -1 is the last token. The boolean is false if the index is
// out of range.
func (l Line) Token(i int) (string, bool) {
	if i < 0 {
		i += len(l.Tokens)
	}
	if i < 0 || i >= len(l.Tokens) {
		return "", false
	}
	return l.Tokens[i], true
}
