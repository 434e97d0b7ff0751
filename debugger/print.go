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
	"io"

	"github.com/jetsetilly/gopher8088/debugger/terminal/easyterm/ansi"
)

func linear(seg, off uint16) uint32 {
	return ((uint32(seg) << 4) + uint32(off)) & 0xfffff
}

// flags in the order they are displayed, most significant first
var flagNames = []struct {
	bit  uint16
	name byte
}{
	{bit: 0x0800, name: 'O'},
	{bit: 0x0400, name: 'D'},
	{bit: 0x0200, name: 'I'},
	{bit: 0x0100, name: 'T'},
	{bit: 0x0080, name: 'S'},
	{bit: 0x0040, name: 'Z'},
	{bit: 0x0010, name: 'A'},
	{bit: 0x0004, name: 'P'},
	{bit: 0x0001, name: 'C'},
}

// flagString returns the status flags as a string of letters. cleared flags
// are shown in lowercase.
func flagString(flags uint16) string {
	b := make([]byte, len(flagNames))
	for i, f := range flagNames {
		if flags&f.bit != 0 {
			b[i] = f.name
		} else {
			b[i] = f.name + ('a' - 'A')
		}
	}
	return string(b)
}

func (dbg *Debugger) print(s string) {
	io.WriteString(dbg.out, s)
}

func (dbg *Debugger) printError(err error) {
	if dbg.color {
		dbg.print(ansi.Pens["red"] + "* " + err.Error() + ansi.NormalPen + "\n")
		return
	}
	dbg.print("* " + err.Error() + "\n")
}

func (dbg *Debugger) style(pen string, s string) string {
	if !dbg.color {
		return s
	}
	return pen + s + ansi.NormalPen
}

func (dbg *Debugger) styleLabel(s string) string {
	return dbg.style(ansi.Pens["cyan"], s)
}

func (dbg *Debugger) styleAddress(s string) string {
	return dbg.style(ansi.DimPens["yellow"], s)
}

func (dbg *Debugger) styleNotice(s string) string {
	return dbg.style(ansi.DimPens["green"], s)
}
