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

// Package comparison compares the execution trace of the emulator under test
// (the "cpu" trace) with a trusted reference trace (the "golden" trace).
//
// The two traces are read in lockstep, one line from each. Reading stops as
// soon as either trace runs out of lines, any surplus in the longer trace is
// ignored. For each pair of lines seven fields are compared, ignoring letter
// case:
//
//	cpu[0]  golden[0]           program counter
//	cpu[1]  golden[-6-offset]   A register
//	cpu[2]  golden[-5-offset]   X register
//	cpu[3]  golden[-4-offset]   Y register
//	cpu[4]  golden[-3-offset]   status register
//	cpu[5]  golden[-2-offset]   stack pointer
//	cpu[-1] golden[-1]          cycle count
//
// Negative indices count from the end of the line. The offset is 1 if the
// second to last token of the cpu line is exactly "CYC:", which happens when
// the cycle count is padded and so appears as two tokens. Otherwise the
// offset is 0.
//
// A pair with any differing field is a mismatch. Each mismatch is written to
// the output as a block of three lines:
//
//	error in line: 12
//	<cpu line>
//	<golden line>
//
// The comparison ends after MismatchCap mismatches. A line with too few tokens
// for the comparison is a MalformedLine error and ends the comparison
// immediately.
package comparison
