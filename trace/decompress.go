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
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/jetsetilly/tracecompare/logger"
)

// magic numbers at the start of compressed files
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// decompress peeks at the start of r and returns a reader that produces the
// decompressed data. The returned io.Closer is nil if the data is not
// compressed.
func decompress(name string, r io.Reader) (io.Reader, io.Closer, error) {
	br := bufio.NewReader(r)

	// a short or unreadable file will be dealt with by the scanner
	magic, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		logger.Logf(logger.Allow, "trace", "%s is gzip compressed", name)
		return zr, zr, nil

	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, err
		}
		logger.Logf(logger.Allow, "trace", "%s is zstd compressed", name)
		rc := zr.IOReadCloser()
		return rc, rc, nil
	}

	return br, nil, nil
}
