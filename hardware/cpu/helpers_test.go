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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/hardware/memory/memorymap"
)

// mockBus is a flat 1MiB memory and a 64KiB IO space with no wait states
type mockBus struct {
	mem   []uint8
	io    []uint8
	reads int
}

func newMockBus() *mockBus {
	return &mockBus{
		mem: make([]uint8, memorymap.AddressMask+1),
		io:  make([]uint8, 0x10000),
	}
}

func (b *mockBus) ReadU8(address uint32, _ int) (uint8, int) {
	b.reads++
	return b.mem[address&memorymap.AddressMask], 0
}

func (b *mockBus) ReadU16(address uint32, _ int) (uint16, int) {
	b.reads++
	lo := b.mem[address&memorymap.AddressMask]
	hi := b.mem[(address+1)&memorymap.AddressMask]
	return uint16(hi)<<8 | uint16(lo), 0
}

func (b *mockBus) WriteU8(address uint32, data uint8, _ int) int {
	b.mem[address&memorymap.AddressMask] = data
	return 0
}

func (b *mockBus) WriteU16(address uint32, data uint16, _ int) int {
	b.mem[address&memorymap.AddressMask] = uint8(data)
	b.mem[(address+1)&memorymap.AddressMask] = uint8(data >> 8)
	return 0
}

func (b *mockBus) ReadWait(_ uint32, _ int) int  { return 0 }
func (b *mockBus) WriteWait(_ uint32, _ int) int { return 0 }

func (b *mockBus) PeekU8(address uint32) uint8 {
	return b.mem[address&memorymap.AddressMask]
}

func (b *mockBus) IORead(port uint16, _ int) uint8 {
	return b.io[port]
}

func (b *mockBus) IOWrite(port uint16, data uint8, _ int) {
	b.io[port] = data
}

func (b *mockBus) IOWriteWait(_ uint16, _ int) int { return 0 }

// putInstructions copies the bytes to memory at the segmented address and
// returns the offset of the byte after the last one
func (b *mockBus) putInstructions(seg uint16, offset uint16, bytes ...uint8) uint16 {
	for _, v := range bytes {
		b.mem[memorymap.Linear(seg, offset)] = v
		offset++
	}
	return offset
}

func (b *mockBus) word(seg uint16, offset uint16) uint16 {
	lo := b.mem[memorymap.Linear(seg, offset)]
	hi := b.mem[memorymap.Linear(seg, offset+1)]
	return uint16(hi)<<8 | uint16(lo)
}

func (b *mockBus) setWord(seg uint16, offset uint16, v uint16) {
	b.mem[memorymap.Linear(seg, offset)] = uint8(v)
	b.mem[memorymap.Linear(seg, offset+1)] = uint8(v >> 8)
}

// mockPIC is an interrupt controller with a single pending interrupt
type mockPIC struct {
	intr   bool
	nmi    bool
	vector uint8
	acks   int
}

func (p *mockPIC) IntrPending() bool { return p.intr }
func (p *mockPIC) NMIPending() bool  { return p.nmi }

func (p *mockPIC) AckInterrupt() uint8 {
	p.intr = false
	p.acks++
	return p.vector
}

// newCPU creates and resets an 8088 that starts executing at the address
func newCPU(t *testing.T, b *mockBus, cs uint16, ip uint16) *cpu.CPU {
	t.Helper()
	mc := cpu.NewCPU(nil, cpu.Intel8088, b)
	mc.SetResetVector(cs, ip)
	mc.Reset()
	return mc
}

// setRegisters changes the registers without moving CS:IP
func setRegisters(mc *cpu.CPU, f func(s *registers.Snapshot)) {
	s := mc.Registers()
	f(&s)
	mc.SetRegisters(s)
}

// step runs one instruction and checks that the result is valid
func step(t *testing.T, mc *cpu.CPU) cpu.StepResult {
	t.Helper()
	res, err := mc.StepInstruction()
	if err != nil {
		t.Fatal(err)
	}
	if res.Status == cpu.StepNormal && !res.Halted {
		if err := mc.LastResult.IsValid(); err != nil {
			t.Fatalf("%v: %s", err, mc.LastResult)
		}
	}
	return res
}
