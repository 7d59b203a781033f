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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/tracecompare/curated"
	"github.com/jetsetilly/tracecompare/logger"
	"github.com/jetsetilly/tracecompare/trace"
)

// MismatchCap is the number of mismatches after which the comparison stops.
const MismatchCap = 10

// OutputFailed is the pattern for errors raised when a mismatch cannot be
// written to the output.
const OutputFailed = "comparison output: %v"

// Mismatch records a pair of lines that did not match.
type Mismatch struct {
	// line number, counting from one
	Line int

	CPU    trace.Line
	Golden trace.Line

	// names of the fields that differed
	Fields []string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("error in line: %d\n%s\n%s\n", m.Line, m.CPU.Raw, m.Golden.Raw)
}

// Report is the result of a comparison.
type Report struct {
	// number of line pairs compared
	Lines int

	Mismatches []Mismatch
}

// Count returns the number of mismatches.
func (r Report) Count() int {
	return len(r.Mismatches)
}

// Capped returns true if the comparison stopped because MismatchCap was
// reached.
func (r Report) Capped() bool {
	return len(r.Mismatches) >= MismatchCap
}

func (r Report) String() string {
	s := fmt.Sprintf("%d lines compared, %d mismatches", r.Lines, r.Count())
	if r.Capped() {
		s = fmt.Sprintf("%s (stopped at limit)", s)
	}
	return s
}

// Comparison writes mismatches to an io.Writer as they are found.
type Comparison struct {
	output io.Writer
}

// NewComparison is the preferred method of initialisation for the Comparison
// type.
func NewComparison(output io.Writer) *Comparison {
	if output == nil {
		output = io.Discard
	}
	return &Comparison{output: output}
}

// CompareFiles opens the two named trace files and compares them. Both files
// are closed before returning, whatever the outcome.
func (cmp *Comparison) CompareFiles(cpuFilename, goldenFilename string) (Report, error) {
	cpu, err := trace.Open(cpuFilename)
	if err != nil {
		return Report{}, err
	}
	defer cpu.Close()

	golden, err := trace.Open(goldenFilename)
	if err != nil {
		return Report{}, err
	}
	defer golden.Close()

	return cmp.Compare(cpu, golden)
}

// Compare the cpu trace against the golden trace. The returned Report is valid
// even when an error is returned, in which case it describes the lines
// compared before the error.
func (cmp *Comparison) Compare(cpu, golden *trace.Source) (Report, error) {
	var rpt Report

	for rpt.Count() < MismatchCap {
		c, ok := cpu.Next()
		if !ok {
			break // for loop
		}
		g, ok := golden.Next()
		if !ok {
			break // for loop
		}

		diff, err := ComparePair(rpt.Lines+1, c, g)
		if err != nil {
			logger.Log(logger.Allow, "comparison", err)
			return rpt, err
		}

		rpt.Lines++

		if len(diff) > 0 {
			m := Mismatch{
				Line:   rpt.Lines,
				CPU:    c,
				Golden: g,
				Fields: diff,
			}
			rpt.Mismatches = append(rpt.Mismatches, m)

			logger.Logf(logger.Allow, "comparison", "line %d: %s differs", m.Line, strings.Join(diff, ", "))

			// the whole block is written at once. this matters for writers that
			// treat the first line of a write differently (logger.Colorizer)
			if _, err := io.WriteString(cmp.output, m.String()); err != nil {
				return rpt, curated.Errorf(OutputFailed, err)
			}
		}
	}

	if err := cpu.Err(); err != nil {
		return rpt, err
	}
	if err := golden.Err(); err != nil {
		return rpt, err
	}

	logger.Logf(logger.Allow, "comparison", "%s against %s: %s", cpu.Name(), golden.Name(), rpt)

	return rpt, nil
}
