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

package bus

// Memory is the 20bit physical address space as seen by the CPU. Addresses
// are masked to 20 bits by the implementation.
type Memory interface {
	// ReadU8 and ReadU16 return the data and the number of wait states the
	// access incurred.
	ReadU8(address uint32, elapsed int) (uint8, int)
	ReadU16(address uint32, elapsed int) (uint16, int)

	// WriteU8 and WriteU16 return the number of wait states the access
	// incurred. A write to read-only memory is silently ignored.
	WriteU8(address uint32, data uint8, elapsed int) int
	WriteU16(address uint32, data uint16, elapsed int) int

	// ReadWait and WriteWait are queried at T2 of a bus cycle.
	ReadWait(address uint32, elapsed int) int
	WriteWait(address uint32, elapsed int) int

	// PeekU8 reads memory without side effects or timing. It is never
	// used by the timed parts of the CPU.
	PeekU8(address uint32) uint8
}

// IO is the 16bit port address space.
type IO interface {
	IORead(port uint16, elapsed int) uint8
	IOWrite(port uint16, data uint8, elapsed int)

	// IOWriteWait is queried at T2 of an IO write cycle.
	IOWriteWait(port uint16, elapsed int) int
}

// Bus combines the memory and IO address spaces.
type Bus interface {
	Memory
	IO
}

// InterruptController is the CPU facing side of an 8259 style interrupt
// controller.
type InterruptController interface {
	// IntrPending reports the level of the INTR line.
	IntrPending() bool

	// NMIPending reports the level of the NMI line. The CPU latches the
	// rising edge.
	NMIPending() bool

	// AckInterrupt is called during the second INTA bus cycle and returns
	// the interrupt vector.
	AckInterrupt() uint8
}
