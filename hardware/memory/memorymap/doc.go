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

// Package memorymap names the conventional areas of the IBM PC physical
// address space and provides the segment arithmetic used everywhere else.
//
// A physical address is 20 bits wide. Addresses formed from a segment and an
// offset wrap at the 1MiB boundary:
//
//	Linear(0xffff, 0x0010) == 0x00000
package memorymap
