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
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm"
)

// command is a single keypress action.
type command struct {
	help string
	fn   func(dbg *Debugger) error
}

var commands map[rune]command

func init() {
	commands = map[rune]command{
		's':  {help: "step one instruction", fn: (*Debugger).step},
		'c':  {help: "step one cycle", fn: (*Debugger).stepCycle},
		'r':  {help: "run until breakpoint, halt or keypress", fn: (*Debugger).run},
		'u':  {help: "rewind one instruction", fn: (*Debugger).rewind},
		'x':  {help: "show registers", fn: (*Debugger).showRegisters},
		'h':  {help: "show instruction history", fn: (*Debugger).showHistory},
		'd':  {help: "disassemble from CS:IP", fn: (*Debugger).disassemble},
		'm':  {help: "dump memory at address", fn: (*Debugger).dumpMemory},
		'b':  {help: "set execution breakpoint", fn: (*Debugger).setBreakpoint},
		'k':  {help: "clear breakpoints", fn: (*Debugger).clearBreakpoints},
		'i':  {help: "raise maskable interrupt", fn: (*Debugger).raiseInterrupt},
		'n':  {help: "toggle NMI line", fn: (*Debugger).toggleNMI},
		't':  {help: "toggle cycle trace", fn: (*Debugger).toggleTrace},
		'w':  {help: "save state", fn: (*Debugger).saveState},
		'l':  {help: "load last saved state", fn: (*Debugger).loadState},
		'z':  {help: "reset machine", fn: (*Debugger).reset},
		'g':  {help: "show recent log entries", fn: (*Debugger).showLog},
		'?':  {help: "show this help", fn: (*Debugger).showHelp},
		'\r': {help: "repeat last step command"},
		'q':  {help: "quit"},
	}
}

func (dbg *Debugger) showHelp() error {
	keys := make([]rune, 0, len(commands))
	for k := range commands {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	s := strings.Builder{}
	for _, k := range keys {
		name := string(k)
		if k == '\r' {
			name = easyterm.Enter.String()
		}
		s.WriteString(dbg.styleLabel(name))
		s.WriteString(strings.Repeat(" ", 7-len(name)))
		s.WriteString(commands[k].help)
		s.WriteRune('\n')
	}
	dbg.print(s.String())

	return nil
}
