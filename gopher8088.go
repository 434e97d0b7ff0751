// This file is part of Gopher8088.
//
// Gopher8088 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8088 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8088.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/term"

	"github.com/jetsetilly/gopher8088/logger"
	"github.com/jetsetilly/gopher8088/modalflag"
	"github.com/jetsetilly/gopher8088/statsview"
	"github.com/jetsetilly/gopher8088/version"
)

// exit values
const (
	exitOkay   = 0
	exitParse  = 10
	exitMode   = 20
	exitFailed = 30
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. the return
// value is the exit value of the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "HARTE", "DUMP", "SCRIPT", "PERFORMANCE")

	showVersion := md.AddBool("version", false, "print version information and exit")
	echoLog := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, "launch the runtime statistics server (requires statsview build tag)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOkay
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOkay
	}

	if *echoLog {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)
	case "STEP":
		err = step(md, output)
	case "HARTE":
		err = harteTests(ctx, md, output, runtime.NumCPU())
	case "DUMP":
		err = dump(md, output)
	case "SCRIPT":
		err = script(ctx, md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if _, ok := err.(testsFailed); ok {
			return exitFailed
		}
		return exitMode
	}

	return exitOkay
}
