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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The "Expect" functions report a test error and carry on. The "Demand"
// functions report a fatal error and stop the test. Use a Demand function
// when the value is needed by the remainder of the test.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. A bool is successful when true and an error is
// successful when nil.
//
// It is worth describing how nil is handled because it is not obvious. The
// nil type is considered a success and consequently will cause
// ExpectFailure() to fail and ExpectSuccess() to succeed. This is because a
// nil error is passed to the function as an untyped nil.
//
// All functions take an optional list of tags, which are prefixed to any
// failure message. Useful for identifying a failure inside a loop.
package test
