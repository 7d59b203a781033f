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

// Package statsview serves runtime statistics over HTTP while a comparison of
// large traces is running. The server is only included when the program is
// built with the statsview tag:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() does nothing.
//
// Graphs are served by "github.com/go-echarts/statsview" at:
//
//	localhost:12600/debug/statsview
//
// And the standard pprof endpoints at:
//
//	localhost:12600/debug/pprof/
package statsview
