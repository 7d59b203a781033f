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
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/jetsetilly/tracecompare/curated"
	"github.com/jetsetilly/tracecompare/logger"
)

// SourceUnavailable is the pattern for errors raised when a trace file cannot
// be opened or read.
const SourceUnavailable = "source unavailable: %v"

// the longest line accepted from a trace. trace lines are normally less than
// 100 characters
const maxLineLength = 1024 * 1024

// Source reads a trace log one line at a time.
type Source struct {
	name    string
	scanner *bufio.Scanner

	// closed in order by Close()
	closers []io.Closer

	err error
}

// Open a trace file for reading. Files compressed with gzip or zstd are
// decompressed transparently.
func Open(filename string) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(SourceUnavailable, err)
	}

	r, dc, err := decompress(filename, f)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(SourceUnavailable, &fs.PathError{Op: "decompress", Path: filename, Err: err})
	}

	src := NewSource(filename, r)
	if dc != nil {
		src.closers = append(src.closers, dc)
	}
	src.closers = append(src.closers, f)

	logger.Logf(logger.Allow, "trace", "opened %s", filename)

	return src, nil
}

// NewSource creates a Source from an io.Reader. The name is used in error
// messages. Close() has no effect on the reader.
func NewSource(name string, r io.Reader) *Source {
	src := &Source{
		name:    name,
		scanner: bufio.NewScanner(r),
	}
	src.scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	return src
}

// Name returns the name of the source.
func (src *Source) Name() string {
	return src.name
}

// Next returns the next line in the source. The boolean is false when there
// are no more lines, either because the end of the source has been reached or
// because of an error. Check Err() to tell the difference.
func (src *Source) Next() (Line, bool) {
	if src.err != nil {
		return Line{}, false
	}

	if !src.scanner.Scan() {
		if err := src.scanner.Err(); err != nil {
			src.err = curated.Errorf(SourceUnavailable, &fs.PathError{Op: "read", Path: src.name, Err: err})
		}
		return Line{}, false
	}

	return NewLine(src.scanner.Text()), true
}

// Err returns the error that stopped Next() from returning a line, if any. It
// returns nil if the source was read to the end.
func (src *Source) Err() error {
	return src.err
}

// Close releases the underlying file and any decompressor.
func (src *Source) Close() error {
	var errs []error
	for _, c := range src.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	src.closers = nil
	return errors.Join(errs...)
}
