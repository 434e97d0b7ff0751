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

// Package instructions defines the instruction set of the 8088 and 8086 and
// the decoder that turns a stream of bytes into an Instruction.
//
// The definitions table in table.go is generated from
// generator/instructions.csv. There is one row for each of the 256 opcodes
// followed by eight rows for each of the twelve opcode groups. The group rows
// are indexed by the reg field of the ModR/M byte.
//
// Decoding is driven through the Reader interface. The CPU implements Reader
// by reading from the prefetch queue, spending cycles as it does so. A
// disassembler can implement Reader with untimed reads from memory.
package instructions
