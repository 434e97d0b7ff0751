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

//go:build unix

// Package easyterm wraps "github.com/pkg/term/termios" with friendlier names
// and adds the features the stepper needs that the termios package lacks:
// terminal geometry and single keypress input.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry is the size of the output terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is a posix terminal with switchable input modes.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// geometry is updated by the SIGWINCH handler
	mu       sync.Mutex
	geometry Geometry

	terminate chan bool
	done      chan bool
}

// Initialise the Terminal with the input and output files. CleanUp() should
// be called when the terminal is no longer required.
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if output == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = input
	pt.output = output

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	// output processing is left on in raw mode so that newlines still
	// return the carriage
	pt.rawAttr.Oflag |= unix.OPOST

	_ = pt.UpdateGeometry()

	pt.terminate = make(chan bool)
	pt.done = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.done <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminate:
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and stops the signal
// handler.
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
	pt.terminate <- true
	<-pt.done
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Fprintf(pt.output, s, a...)
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

// UpdateGeometry reads the dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: geometry: %w", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry = Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts the terminal into normal line mode.
func (pt *Terminal) CanonicalMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts the terminal into raw mode. Every keypress is available
// immediately and is not echoed.
func (pt *Terminal) RawMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// CBreakMode puts the terminal into cbreak mode. Keypresses are available
// immediately but signals are still generated.
func (pt *Terminal) CBreakMode() {
	_ = termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Flush discards pending input and output.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// ReadKey waits for a single keypress. The terminal should be in raw or
// cbreak mode.
func (pt *Terminal) ReadKey() (Key, error) {
	b := make([]byte, 8)
	n, err := pt.input.Read(b)
	if err != nil {
		return Key{}, fmt.Errorf("easyterm: %w", err)
	}
	return DecodeKey(b[:n]), nil
}

// SuspendProcess sends the stop signal to the process group. The terminal
// should be returned to canonical mode first because raw mode disables the
// suspend key.
func SuspendProcess() error {
	return unix.Kill(0, unix.SIGTSTP)
}
