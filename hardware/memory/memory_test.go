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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/memory"
	"github.com/jetsetilly/gopher8088/hardware/memory/bus"
	"github.com/jetsetilly/gopher8088/test"
)

// the Memory type must satisfy the bus interface used by the CPU.
var _ bus.Bus = (*memory.Memory)(nil)

func TestRAM(t *testing.T) {
	mem, err := memory.NewMemory(0x10000)
	test.DemandSuccess(t, err)

	w := mem.WriteU8(0x1234, 0xab, 0)
	test.ExpectEquality(t, w, 0)
	v, w := mem.ReadU8(0x1234, 0)
	test.ExpectEquality(t, v, uint8(0xab))
	test.ExpectEquality(t, w, 0)

	mem.WriteU16(0x2000, 0xbeef, 0)
	v16, _ := mem.ReadU16(0x2000, 0)
	test.ExpectEquality(t, v16, uint16(0xbeef))
	test.ExpectEquality(t, mem.PeekU8(0x2001), uint8(0xbe))

	// outside of mapped RAM
	v, _ = mem.ReadU8(0x20000, 0)
	test.ExpectEquality(t, v, uint8(0xff))
	test.ExpectEquality(t, mem.WriteU8(0x20000, 0x00, 0), 0)
}

func TestAddressWrap(t *testing.T) {
	mem, err := memory.NewMemory(0x1000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.MapRAM(0xff000, 0x1000))

	mem.WriteU8(0x100000, 0x11, 0)
	v, _ := mem.ReadU8(0x00000, 0)
	test.ExpectEquality(t, v, uint8(0x11))

	// a word access at the top of memory wraps to the bottom
	mem.WriteU16(0xfffff, 0x2233, 0)
	test.ExpectEquality(t, mem.PeekU8(0xfffff), uint8(0x33))
	test.ExpectEquality(t, mem.PeekU8(0x00000), uint8(0x22))
}

func TestROM(t *testing.T) {
	mem, err := memory.NewMemory(0x10000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.MapROM(0xfe000, []uint8{0xea, 0x5b, 0xe0}))

	v, _ := mem.ReadU8(0xfe000, 0)
	test.ExpectEquality(t, v, uint8(0xea))

	// writes are ignored
	mem.WriteU8(0xfe000, 0x00, 0)
	v, _ = mem.ReadU8(0xfe000, 0)
	test.ExpectEquality(t, v, uint8(0xea))

	// unused space in the ROM page
	v, _ = mem.ReadU8(0xfe003, 0)
	test.ExpectEquality(t, v, uint8(0xff))

	// poke does change ROM
	mem.Poke(0xfe000, 0x90)
	test.ExpectEquality(t, mem.PeekU8(0xfe000), uint8(0x90))
}

func TestWaits(t *testing.T) {
	mem, err := memory.NewMemory(0x10000)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.MapRAM(0xb8000, 0x4000))
	test.DemandSuccess(t, mem.SetWaits(0xb8000, 0x4000, 2, 3))

	test.ExpectEquality(t, mem.ReadWait(0xb8000, 0), 2)
	test.ExpectEquality(t, mem.WriteWait(0xbbfff, 0), 3)
	test.ExpectEquality(t, mem.ReadWait(0x00000, 0), 0)

	_, w := mem.ReadU8(0xb8001, 0)
	test.ExpectEquality(t, w, 2)
}

func TestMappingErrors(t *testing.T) {
	mem, err := memory.NewMemory(0)
	test.DemandSuccess(t, err)

	err = mem.MapRAM(0x00001, 0x1000)
	test.ExpectSuccess(t, curated.Is(err, memory.MappingError))
	err = mem.MapRAM(0xff000, 0x2000)
	test.ExpectSuccess(t, curated.Is(err, memory.MappingError))
	err = mem.Unmap(0, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.MappingError))
}

func TestPorts(t *testing.T) {
	mem, err := memory.NewMemory(0)
	test.DemandSuccess(t, err)

	l := memory.NewLatch()
	test.DemandSuccess(t, mem.MapPorts(0x60, 0x63, l))
	test.ExpectFailure(t, mem.MapPorts(0x62, 0x70, l))
	test.ExpectFailure(t, mem.MapPorts(0x70, 0x60, l))

	test.ExpectEquality(t, mem.IORead(0x60, 0), uint8(0xff))
	mem.IOWrite(0x61, 0x4c, 0)
	test.ExpectEquality(t, mem.IORead(0x61, 0), uint8(0x4c))

	// unmapped port
	mem.IOWrite(0x3f8, 0x41, 0)
	test.ExpectEquality(t, mem.IORead(0x3f8, 0), uint8(0xff))

	mem.SetIOWriteWait(1)
	test.ExpectEquality(t, mem.IOWriteWait(0x61, 0), 1)
}
