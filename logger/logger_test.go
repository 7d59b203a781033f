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

package logger_test

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/jetsetilly/tracecompare/logger"
	"github.com/jetsetilly/tracecompare/terminal/easyterm/ansi"
	"github.com/jetsetilly/tracecompare/test"
)

// test logger and the use of the Tail() function
func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatsAndLimit(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "comparison", "line 1")
	log.Log(logger.Allow, "comparison", "line 1")
	log.Log(logger.Allow, "comparison", "line 1")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "comparison: line 1 (repeat x3)\n")

	// oldest entries are dropped once the maximum is exceeded
	log.Log(logger.Allow, "comparison", "line 2")
	log.Log(logger.Allow, "comparison", "line 3")
	w.Reset()
	log.Write(w)
	test.ExpectEquality(t, w.String(), "comparison: line 2\ncomparison: line 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &strings.Builder{}

	log.SetEcho(echo)
	log.Logf(logger.Allow, "trace", "opened %s", "cpu.log")
	test.ExpectEquality(t, echo.String(), "trace: opened cpu.log\n")

	log.SetEcho(nil)
	log.Logf(logger.Allow, "trace", "opened %s", "nestest.log")
	test.ExpectEquality(t, echo.String(), "trace: opened cpu.log\n")
}

// test permissions by randomising whether logging is allowed or not
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for range 100 {
		p.allow = rand.IntN(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerAndIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\ntag: 100\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	block := "error in line: 3\nC000 A:00\nC000 A:01\n"
	n, err := c.Write([]byte(block))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(block))
	test.ExpectEquality(t, w.String(), "error in line: 3\n"+ansi.DimPens["red"]+"C000 A:00\nC000 A:01\n"+ansi.NormalPen)

	// single line writes are not coloured
	w.Reset()
	_, err = c.Write([]byte("summary\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "summary\n")
}

func TestColorizerNoNewline(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("abc"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, w.String(), "abc")

	w.Reset()
	_, err = c.Write([]byte("header\nbody"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "header\n"+ansi.DimPens["red"]+"body"+ansi.NormalPen)
}

func TestCentralEcho(t *testing.T) {
	echo := &strings.Builder{}
	logger.SetEcho(echo)
	defer logger.SetEcho(nil)

	logger.Logf(logger.Allow, "central", "entry %d", 1)
	logger.Log(logger.Allow, "central", errors.New("entry 2"))
	test.ExpectEquality(t, echo.String(), "central: entry 1\ncentral: entry 2\n")
}
