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

// Package scripting allows control of the emulated machine from a Lua
// script. The script has access to three tables:
//
//	cpu       registers, stepping, breakpoints and disassembly
//	mem       peek, poke and load of the memory map
//	machine   interrupts, reset, rewind and state files
//
// For example, the following script runs a program until it halts and then
// prints the value of the AX register:
//
//	cpu.breakpoint(0x0100, 0x0040)
//	local s = cpu.run()
//	print(s, string.format("%04x", cpu.reg("ax")))
//
// The print() function writes to the io.Writer supplied to NewScript().
// Errors raised by the emulation are raised as Lua errors and will end the
// script unless caught with pcall().
package scripting
