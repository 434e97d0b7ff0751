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

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
)

// Sentinal error patterns returned by the mapping functions.
const (
	MappingError = "memory: mapping: %v"
)

// Device is a memory mapped device. Addresses are physical addresses.
type Device interface {
	Label() string
	Read(address uint32) uint8
	Write(address uint32, data uint8)

	// Peek reads without side effects.
	Peek(address uint32) uint8
}

type page struct {
	dev       Device
	readWait  int
	writeWait int
}

// Memory is the physical address space and IO space of the machine.
type Memory struct {
	pages [memorymap.NumPages]page
	ports []portRange

	// the number of wait states for IO writes
	ioWriteWait int
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The amount of conventional RAM is in bytes and is rounded up to a whole
// number of pages. RAM starts at address zero.
func NewMemory(conventional uint32) (*Memory, error) {
	mem := &Memory{}
	if conventional > 0 {
		if err := mem.MapRAM(0, conventional); err != nil {
			return nil, err
		}
	}
	return mem, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d pages mapped, %d port ranges", mem.mappedPages(), len(mem.ports))
}

func (mem *Memory) mappedPages() int {
	var n int
	for _, p := range mem.pages {
		if p.dev != nil {
			n++
		}
	}
	return n
}

func pageRange(origin uint32, size uint32) (int, int, error) {
	if size == 0 {
		return 0, 0, curated.Errorf(MappingError, "zero size")
	}
	if origin&(memorymap.PageSize-1) != 0 {
		return 0, 0, curated.Errorf(MappingError, fmt.Sprintf("origin %05x is not page aligned", origin))
	}
	if origin+size-1 > memorymap.AddressMask {
		return 0, 0, curated.Errorf(MappingError, fmt.Sprintf("%05x+%x is outside of the address space", origin, size))
	}
	first := int(origin >> memorymap.PageShift)
	last := int((origin + size - 1) >> memorymap.PageShift)
	return first, last, nil
}

// MapDevice attaches a device to a range of addresses. The origin must be
// page aligned. Any existing device in the range is replaced.
func (mem *Memory) MapDevice(origin uint32, size uint32, dev Device) error {
	first, last, err := pageRange(origin, size)
	if err != nil {
		return err
	}
	for i := first; i <= last; i++ {
		mem.pages[i].dev = dev
	}
	return nil
}

// MapRAM creates a new RAM device and attaches it to a range of addresses.
func (mem *Memory) MapRAM(origin uint32, size uint32) error {
	size = (size + memorymap.PageSize - 1) &^ (memorymap.PageSize - 1)
	return mem.MapDevice(origin, size, newRAM(origin, size))
}

// MapROM creates a new ROM device containing the data and attaches it to
// the addresses starting at origin.
func (mem *Memory) MapROM(origin uint32, data []uint8) error {
	size := (uint32(len(data)) + memorymap.PageSize - 1) &^ (memorymap.PageSize - 1)
	rom := newROM(origin, size, data)
	return mem.MapDevice(origin, size, rom)
}

// Unmap removes devices from a range of addresses.
func (mem *Memory) Unmap(origin uint32, size uint32) error {
	first, last, err := pageRange(origin, size)
	if err != nil {
		return err
	}
	for i := first; i <= last; i++ {
		mem.pages[i] = page{}
	}
	return nil
}

// SetWaits sets the number of read and write wait states for a range of
// addresses.
func (mem *Memory) SetWaits(origin uint32, size uint32, read int, write int) error {
	first, last, err := pageRange(origin, size)
	if err != nil {
		return err
	}
	for i := first; i <= last; i++ {
		mem.pages[i].readWait = read
		mem.pages[i].writeWait = write
	}
	return nil
}

func (mem *Memory) page(address uint32) *page {
	return &mem.pages[(address&memorymap.AddressMask)>>memorymap.PageShift]
}

// Device returns the device mapped at the address. Returns nil if there is
// no device.
func (mem *Memory) Device(address uint32) Device {
	return mem.page(address).dev
}

// ReadU8 implements the bus.Memory interface.
func (mem *Memory) ReadU8(address uint32, _ int) (uint8, int) {
	address &= memorymap.AddressMask
	p := mem.page(address)
	if p.dev == nil {
		return 0xff, 0
	}
	return p.dev.Read(address), p.readWait
}

// ReadU16 implements the bus.Memory interface. The address wraps at the top
// of the address space.
func (mem *Memory) ReadU16(address uint32, elapsed int) (uint16, int) {
	lo, w0 := mem.ReadU8(address, elapsed)
	hi, w1 := mem.ReadU8(address+1, elapsed)
	return uint16(lo) | uint16(hi)<<8, max(w0, w1)
}

// WriteU8 implements the bus.Memory interface.
func (mem *Memory) WriteU8(address uint32, data uint8, _ int) int {
	address &= memorymap.AddressMask
	p := mem.page(address)
	if p.dev == nil {
		return 0
	}
	p.dev.Write(address, data)
	return p.writeWait
}

// WriteU16 implements the bus.Memory interface.
func (mem *Memory) WriteU16(address uint32, data uint16, elapsed int) int {
	w0 := mem.WriteU8(address, uint8(data), elapsed)
	w1 := mem.WriteU8(address+1, uint8(data>>8), elapsed)
	return max(w0, w1)
}

// ReadWait implements the bus.Memory interface.
func (mem *Memory) ReadWait(address uint32, _ int) int {
	return mem.page(address).readWait
}

// WriteWait implements the bus.Memory interface.
func (mem *Memory) WriteWait(address uint32, _ int) int {
	return mem.page(address).writeWait
}

// PeekU8 implements the bus.Memory interface.
func (mem *Memory) PeekU8(address uint32) uint8 {
	address &= memorymap.AddressMask
	p := mem.page(address)
	if p.dev == nil {
		return 0xff
	}
	return p.dev.Peek(address)
}

// Poke writes directly to the memory at the address. Unlike WriteU8() a
// poke to ROM changes the ROM contents.
func (mem *Memory) Poke(address uint32, data uint8) {
	address &= memorymap.AddressMask
	p := mem.page(address)
	switch d := p.dev.(type) {
	case *ROM:
		d.poke(address, data)
	case nil:
	default:
		d.Write(address, data)
	}
}

// Load copies data into memory starting at the address using Poke().
func (mem *Memory) Load(address uint32, data []uint8) {
	for i, v := range data {
		mem.Poke(address+uint32(i), v)
	}
}
