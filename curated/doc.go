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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf(). The pattern
// is remembered and can be tested for later with the Is() and Has()
// functions. Patterns that are meant to be tested for should be stored as an
// exported const string in the package that raises them. For example, the
// trace package exports:
//
//	const SourceUnavailable = "source unavailable: %v"
//
// and callers can then ask:
//
//	if curated.Is(err, trace.SourceUnavailable) {
//		...
//	}
//
// Has() is similar to Is() but checks the entire chain of curated errors, so
// a SourceUnavailable error wrapped inside another curated error is still
// found.
//
// IsAny() answers whether the error was created by curated.Errorf() at all.
// We can think of this as the difference between an 'expected' and an
// 'unexpected' error.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": " as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). So:
//
//	error: error: line too short
//
// is reported as:
//
//	error: line too short
//
// Curated errors also implement Unwrap(). The first value that is an error is
// returned, meaning that errors.Is(err, os.ErrNotExist) works as expected for
// a curated error wrapping the result of os.Open().
package curated
