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

// Package memory implements the address spaces seen by the CPU: the 20 bit
// physical memory space and the 16 bit IO port space.
//
//	    CPU ---- bus ---- MEMORY ---- page table ---- RAM
//	                        |                 \
//	                        |                  \---- ROM
//	                        |                   \
//	                        |                    \---- Device
//	                        |
//	                        \---- port table ---- PortDevice
//
// The memory space is divided into pages of memorymap.PageSize bytes. Each
// page points to the device that handles accesses to it and carries the
// number of wait states for reads and writes. Pages with no device read as
// 0xff and ignore writes.
//
// The IO space is a list of port ranges, each handled by a PortDevice.
// Unmapped ports read as 0xff.
//
// The Memory type implements the bus.Bus interface. Accesses never fail. A
// write to ROM is silently ignored.
package memory
