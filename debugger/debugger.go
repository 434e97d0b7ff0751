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

package debugger

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/debugger/govern"
	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm"
	"github.com/jetsetilly/gopher8088/hardware"
	"github.com/jetsetilly/gopher8088/logger"
)

// DebuggerError is the error pattern for errors originating in the debugger.
const DebuggerError = "debugger: %v"

// size of the key buffer. keys typed while the emulation is running are
// buffered until the next check
const inputBuffer = 256

// Debugger is the interactive stepper.
type Debugger struct {
	m   *hardware.Machine
	out io.Writer

	input chan easyterm.Key

	state    govern.State
	subState govern.SubState

	// most recent step command. repeated with the enter key
	lastStep rune

	color bool
	trace bool
	nmi   bool

	// filename of the most recently saved state
	savedState string

	// vector supplied by the raise interrupt command
	Vector uint8
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(m *hardware.Machine, out io.Writer) *Debugger {
	dbg := &Debugger{
		m:        m,
		out:      out,
		input:    make(chan easyterm.Key, inputBuffer),
		state:    govern.Paused,
		lastStep: 's',
		Vector:   0x08,
	}
	m.CPU.SetCycleStateCollection(true)
	return dbg
}

// SetColor turns ANSI colour output on or off.
func (dbg *Debugger) SetColor(color bool) {
	dbg.color = color
}

// State returns the current state of the emulation.
func (dbg *Debugger) State() (govern.State, govern.SubState) {
	return dbg.state, dbg.subState
}

// Start the debugger on the terminal. The function returns when the quit
// command is given or the terminal can no longer be read.
func (dbg *Debugger) Start(term *easyterm.Terminal) error {
	term.RawMode()
	defer term.CanonicalMode()

	errs := make(chan error, 1)
	go func() {
		for {
			k, err := term.ReadKey()
			if err != nil {
				errs <- err
				return
			}
			dbg.input <- k
		}
	}()

	dbg.print("gopher8088 stepper. press ? for help\n")
	_ = dbg.showRegisters()

	for {
		select {
		case err := <-errs:
			return curated.Errorf(DebuggerError, err)
		case k := <-dbg.input:
			if k.Special == easyterm.Suspend {
				term.CanonicalMode()
				if err := easyterm.SuspendProcess(); err != nil {
					logger.Log(logger.Allow, "debugger", err)
				}
				term.RawMode()
				continue // for loop
			}

			quit, err := dbg.handle(k)
			if err != nil {
				dbg.printError(err)
			}
			if quit {
				dbg.state = govern.Ending
				return nil
			}
		}
	}
}

// Process handles the keys in order. Keys following a command that prompts
// for input are consumed by that prompt. Processing ends early if a key
// requests the debugger to quit. Errors from commands are returned
// immediately.
func (dbg *Debugger) Process(keys ...easyterm.Key) error {
	if len(keys) > cap(dbg.input)-len(dbg.input) {
		return curated.Errorf(DebuggerError, fmt.Sprintf("too many keys (%d)", len(keys)))
	}
	for _, k := range keys {
		dbg.input <- k
	}

	for len(dbg.input) > 0 {
		quit, err := dbg.handle(<-dbg.input)
		if err != nil {
			return err
		}
		if quit {
			dbg.state = govern.Ending
			return nil
		}
	}

	return nil
}

// handle a single key. returns true if the debugger should quit.
func (dbg *Debugger) handle(k easyterm.Key) (bool, error) {
	switch k.Special {
	case easyterm.NoSpecial:
	case easyterm.Enter:
		k.Rune = dbg.lastStep
	case easyterm.Interrupt, easyterm.EOF:
		return true, nil
	default:
		return false, nil
	}

	if k.Rune == 'q' {
		return true, nil
	}

	cmd, ok := commands[k.Rune]
	if !ok || cmd.fn == nil {
		dbg.print(fmt.Sprintf("unknown command (%s). press ? for help\n", k))
		return false, nil
	}

	switch k.Rune {
	case 's', 'c', 'u':
		dbg.lastStep = k.Rune
	}

	if err := cmd.fn(dbg); err != nil {
		return false, err
	}

	if !govern.StateIntegrity(dbg.state, dbg.subState) {
		return false, curated.Errorf(DebuggerError, fmt.Sprintf("invalid state (%s with %s)", dbg.state, dbg.subState))
	}

	return false, nil
}

// readLine reads keys until the enter key is pressed. the second return
// value is false if the line was cancelled with the escape key or the
// interrupt key.
func (dbg *Debugger) readLine(prompt string) (string, bool) {
	dbg.print(prompt)

	var line []rune
	for {
		k := <-dbg.input
		switch k.Special {
		case easyterm.NoSpecial:
			line = append(line, k.Rune)
			dbg.print(string(k.Rune))
		case easyterm.Backspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
				dbg.print("\b \b")
			}
		case easyterm.Enter:
			dbg.print("\n")
			return string(line), true
		case easyterm.Escape, easyterm.Interrupt, easyterm.EOF:
			dbg.print("\n")
			return "", false
		}
	}
}
