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

package memory

import "fmt"

// RAM is a block of read/write memory.
type RAM struct {
	origin uint32
	data   []uint8
}

func newRAM(origin uint32, size uint32) *RAM {
	return &RAM{
		origin: origin,
		data:   make([]uint8, size),
	}
}

// Label implements the Device interface.
func (ram *RAM) Label() string {
	return fmt.Sprintf("RAM %05x-%05x", ram.origin, ram.origin+uint32(len(ram.data))-1)
}

// Read implements the Device interface.
func (ram *RAM) Read(address uint32) uint8 {
	return ram.data[address-ram.origin]
}

// Write implements the Device interface.
func (ram *RAM) Write(address uint32, data uint8) {
	ram.data[address-ram.origin] = data
}

// Peek implements the Device interface.
func (ram *RAM) Peek(address uint32) uint8 {
	return ram.data[address-ram.origin]
}

// ROM is a block of read only memory. Writes are ignored.
type ROM struct {
	origin uint32
	data   []uint8
}

func newROM(origin uint32, size uint32, data []uint8) *ROM {
	rom := &ROM{
		origin: origin,
		data:   make([]uint8, size),
	}

	// unused space at the end of the last page reads as 0xff
	n := copy(rom.data, data)
	for i := n; i < len(rom.data); i++ {
		rom.data[i] = 0xff
	}

	return rom
}

// Label implements the Device interface.
func (rom *ROM) Label() string {
	return fmt.Sprintf("ROM %05x-%05x", rom.origin, rom.origin+uint32(len(rom.data))-1)
}

// Read implements the Device interface.
func (rom *ROM) Read(address uint32) uint8 {
	return rom.data[address-rom.origin]
}

// Write implements the Device interface.
func (rom *ROM) Write(_ uint32, _ uint8) {
}

// Peek implements the Device interface.
func (rom *ROM) Peek(address uint32) uint8 {
	return rom.data[address-rom.origin]
}

func (rom *ROM) poke(address uint32, data uint8) {
	rom.data[address-rom.origin] = data
}
