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

// Package registers implements the register file of the 8088. The eight
// general purpose registers are stored as 16 bit values. The 8 bit halves
// of AX, BX, CX and DX are accessed through the Reg8 type.
//
// The instruction pointer is not stored in the register file. The CPU keeps
// the prefetch address (PC) and derives IP from it and the length of the
// prefetch queue.
//
// The Flags type is the status register. It is stored as a struct of bools
// and converted to and from the 16 bit value pushed onto the stack with
// Value() and FromValue().
package registers
