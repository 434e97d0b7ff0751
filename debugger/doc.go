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

// Package debugger implements an interactive stepper for the emulated 8088.
// Commands are single keypresses read from a terminal in raw mode. The
// stepper can advance the CPU by instruction or by cycle, run until a
// breakpoint, rewind recent steps and show the CPU state.
//
// Keypresses are decoded by the easyterm package. The Debugger type itself
// only needs a source of keys and an io.Writer so it can be driven without
// a terminal:
//
//	dbg := debugger.NewDebugger(machine, os.Stdout)
//	err := dbg.Process(keys...)
//
// The Start() function connects the debugger to a terminal.
package debugger
