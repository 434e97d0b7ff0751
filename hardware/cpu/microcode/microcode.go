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

package microcode

import "fmt"

// Special microcode markers. Real ROM addresses are all less than 0x200.
const (
	// jump to another microcode line
	Jump uint16 = 0x1000

	// return from a microcode subroutine
	Return uint16 = 0x1001

	// the CORR instruction, which corrects PC by the length of the queue
	Correct uint16 = 0x1002

	// no microcode is executing
	None uint16 = 0xffff
)

// Entry points shared by several routines.
const (
	LoadEA       uint16 = 0x1e0
	LoadEAFinish uint16 = 0x1e2
	SkipEA       uint16 = 0x1e3
	DispDirect   uint16 = 0x1dc
	DispIndirect uint16 = 0x1de
)

// Next returns the line following the specified line. The special markers
// other than None are not real lines but they advance in the same way.
func Next(line uint16) uint16 {
	if line < None {
		return line + 1
	}
	return line
}

// String returns a short string representation of a line tag suitable for
// the cycle trace. Blank for None.
func String(line uint16) string {
	switch line {
	case Jump:
		return "JMP"
	case Return:
		return "RET"
	case Correct:
		return "COR"
	case None:
		return ""
	}
	return fmt.Sprintf("%03x", line)
}
