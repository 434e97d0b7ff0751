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

// Package alu implements the arithmetic and logic operations of the 8088
// together with their effect on the flags. Operands are passed as uint16
// values. The word argument selects between 8 bit and 16 bit operation; in
// 8 bit operation only the low byte of each operand is used.
//
// The multiply and divide algorithms are not here. They are implemented in
// the cpu package because they are timed by the microcode loop.
package alu
