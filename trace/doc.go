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

// Package trace reads CPU execution trace logs. A trace log is plain text with
// one line per executed instruction, for example:
//
//	C000 A:00 X:00 Y:00 P:24 SP:FD CYC:  0
//
// The package knows nothing about the meaning of the fields. A Line is the
// trimmed text and its whitespace separated tokens, nothing more.
//
// Trace logs for long runs are large and are often kept compressed. Open()
// recognises gzip and zstd files by their magic number and decompresses them
// as they are read.
package trace
