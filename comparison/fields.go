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

package comparison

import (
	"strings"

	"github.com/jetsetilly/tracecompare/curated"
	"github.com/jetsetilly/tracecompare/trace"
)

// MalformedLine is the pattern for errors raised when a line does not have
// enough tokens for the comparison.
const MalformedLine = "malformed line %d: %s trace has %d tokens, %d required"

// CycleMarker is the token that, when second to last in the cpu line,
// indicates that the golden fields are shifted by one.
const CycleMarker = "CYC:"

// minimum number of tokens required in the cpu line. the golden line requires
// this number plus the cycle offset
const minTokens = 6

type field struct {
	name   string
	cpu    int
	golden int

	// golden index is moved towards the start of the line by the cycle offset
	shift bool
}

// the order of the list is the order of comparison
var fields = []field{
	{name: "CYC", cpu: -1, golden: -1},
	{name: "PC", cpu: 0, golden: 0},
	{name: "A", cpu: 1, golden: -6, shift: true},
	{name: "X", cpu: 2, golden: -5, shift: true},
	{name: "Y", cpu: 3, golden: -4, shift: true},
	{name: "P", cpu: 4, golden: -3, shift: true},
	{name: "SP", cpu: 5, golden: -2, shift: true},
}

// cycleOffset returns 1 if the second to last token of the cpu line is the
// CycleMarker. The comparison is case sensitive.
func cycleOffset(cpu trace.Line) int {
	if tok, ok := cpu.Token(-2); ok && tok == CycleMarker {
		return 1
	}
	return 0
}

// ComparePair compares the fields of a single pair of lines. The names of the
// fields that differ are returned, an empty list means the lines match. The
// line number is used only in the error message.
func ComparePair(lineNum int, cpu, golden trace.Line) ([]string, error) {
	if cpu.Len() < minTokens {
		return nil, curated.Errorf(MalformedLine, lineNum, "cpu", cpu.Len(), minTokens)
	}

	offset := cycleOffset(cpu)
	if golden.Len() < minTokens+offset {
		return nil, curated.Errorf(MalformedLine, lineNum, "golden", golden.Len(), minTokens+offset)
	}

	var diff []string
	for _, f := range fields {
		g := f.golden
		if f.shift {
			g -= offset
		}

		// bounds have been checked above so ok is always true
		c, _ := cpu.Token(f.cpu)
		r, _ := golden.Token(g)

		// simple case folding. the same as comparing upper case for ASCII
		if !strings.EqualFold(c, r) {
			diff = append(diff, f.name)
		}
	}

	return diff, nil
}
