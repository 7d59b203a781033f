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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/tracecompare/comparison"
	"github.com/jetsetilly/tracecompare/curated"
	"github.com/jetsetilly/tracecompare/logger"
	"github.com/jetsetilly/tracecompare/modalflag"
	"github.com/jetsetilly/tracecompare/statsview"
	"github.com/jetsetilly/tracecompare/terminal/easyterm"
	"github.com/jetsetilly/tracecompare/version"
)

// trace files used when none are given on the command line
const (
	defaultCPUTrace    = "cpu.log"
	defaultGoldenTrace = "nestest.log"
)

// exit values
const (
	exitUsage = 10
	exitError = 20
)

// pattern for command line errors found after the first parse
const usageError = "usage: %v"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. The return value is
// the exit value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("COMPARE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitUsage
	}

	switch md.Mode() {
	case "COMPARE":
		err = compare(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if curated.Is(err, usageError) {
			return exitUsage
		}
		return exitError
	}

	return 0
}

func compare(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("cpu and golden traces default to %s and %s", defaultCPUTrace, defaultGoldenTrace))

	log := md.AddBool("log", false, "echo debugging log to stdout")
	color := md.AddBool("color", true, "colorize mismatches when writing to a terminal")
	stats := md.AddBool("statsview", false, "run a statsview server during the comparison")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(usageError, err)
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	cpuFile := defaultCPUTrace
	goldenFile := defaultGoldenTrace

	switch len(md.RemainingArgs()) {
	case 0:
	case 2:
		cpuFile = md.GetArg(0)
		goldenFile = md.GetArg(1)
	default:
		return curated.Errorf(usageError, fmt.Errorf("%s mode requires a cpu trace and a golden trace, or neither", md))
	}

	var stopStats func()
	if *stats {
		if statsAvailable() {
			stopStats = statsLaunch(output)
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	w := output
	if *color {
		if f, ok := output.(*os.File); ok && easyterm.IsTerminal(f) {
			w = logger.NewColorizer(output)
		}
	}

	_, err = comparison.NewComparison(w).CompareFiles(cpuFile, goldenFile)

	if stopStats != nil {
		// the server is only kept running after a completed comparison
		if err == nil {
			fmt.Fprintln(output, "! comparison finished. press ctrl-c to stop statsview")
			waitForInterrupt()
		}
		stopStats()
	}

	return err
}

// statsview hooks. replaced in tests
var (
	statsAvailable   = statsview.Available
	statsLaunch      = statsview.Launch
	waitForInterrupt = waitForCtrlC
)

func waitForCtrlC() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	<-intChan
	signal.Stop(intChan)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return curated.Errorf(usageError, err)
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf(usageError, fmt.Errorf("%s mode does not accept arguments", md))
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintln(output, version.String())
	}

	return nil
}
