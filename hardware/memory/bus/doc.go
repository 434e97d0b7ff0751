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

// Package bus defines the interfaces through which the CPU reaches the rest
// of the machine. The CPU never holds a reference to a device, only to an
// implementation of the Bus interface.
//
// All functions are total. There is no bus error on the 8088; an access to
// unmapped memory returns an implementation defined value, usually 0xff.
//
// The elapsed argument found on most functions is the number of CPU cycles
// since the last bus access. Implementations that model devices with their
// own clocks can use it to catch those devices up before servicing the
// request.
package bus
