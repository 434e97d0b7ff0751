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

package cpu

import (
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// corr rewinds PC by the number of bytes in the queue. PC then addresses
// the next instruction, as IP does.
func (mc *CPU) corr() {
	mc.pc -= uint16(mc.queue.LenP())
}

// reljmp2 is the RELJMP microcode subroutine. jump is false when the caller
// has fallen into the routine rather than jumped to it.
func (mc *CPU) reljmp2(rel uint16, jump bool) {
	if jump {
		mc.cycleI(microcode.Jump)
	}
	mc.biuFetchSuspend()
	mc.cyclesI(0x0d2, 0x0d3)
	mc.corr()
	mc.pc += rel
	mc.cycleI(0x0d4)
	mc.biuQueueFlush()
	mc.cycleI(0x0d5)
}

// farcall is the FARCALL microcode subroutine
func (mc *CPU) farcall(cs uint16, ip uint16, jump bool) {
	if jump {
		mc.cycleI(microcode.Jump)
	}
	mc.biuFetchSuspend()
	mc.cyclesI(0x06b, 0x06c)
	mc.corr()
	mc.cycleI(0x06d)
	mc.pushU16(mc.regs.CS())
	mc.regs.SetSeg(registers.CS, cs)
	mc.cyclesI(0x06e, 0x06f)
	mc.nearcall(ip)
}

// farcall2 is the FARCALL2 entry point used by the interrupt routine. fetch
// has already been suspended
func (mc *CPU) farcall2(cs uint16, ip uint16) {
	mc.cyclesI(microcode.Jump, 0x06c)
	mc.corr()
	mc.cycleI(0x06d)
	mc.pushU16(mc.regs.CS())
	mc.regs.SetSeg(registers.CS, cs)
	mc.cyclesI(0x06e, 0x06f)
	mc.nearcall(ip)
}

// nearcall is the NEARCALL microcode subroutine. PC must have been corrected
func (mc *CPU) nearcall(ip uint16) {
	ret := mc.pc
	mc.cycleI(microcode.Jump)
	mc.pc = ip
	mc.biuQueueFlush()
	mc.cyclesI(0x077, 0x078, 0x079)
	mc.pushU16(ret)
}

// farret is the FARRET microcode subroutine. also used by the near return
// with far false
func (mc *CPU) farret(far bool) {
	mc.cycleI(microcode.Jump)
	mc.mcPC = 0x0c2
	mc.pc = mc.popU16()
	mc.biuFetchSuspend()
	mc.cyclesI(0x0c3, 0x0c4)

	if far {
		mc.cycleI(microcode.Jump)
		mc.popSegment(registers.CS)
		mc.biuQueueFlush()
		mc.cyclesI(0x0c7, microcode.Return)
		return
	}

	mc.biuQueueFlush()
	mc.cyclesI(0x0c5, microcode.Return)
}

// iret is the IRET microcode routine
func (mc *CPU) iret() {
	mc.cycleI(0x0c8)
	mc.farret(true)
	mc.popFlags()
	mc.cycleI(0x0ca)
}

// jcc returns the condition of a conditional jump. the low four bits of the
// opcode select the condition
func (mc *CPU) jcc(opcode uint8) bool {
	f := mc.regs.Flags
	switch opcode & 0x0f {
	case 0x00:
		return f.Overflow
	case 0x01:
		return !f.Overflow
	case 0x02:
		return f.Carry
	case 0x03:
		return !f.Carry
	case 0x04:
		return f.Zero
	case 0x05:
		return !f.Zero
	case 0x06:
		return f.Carry || f.Zero
	case 0x07:
		return !f.Carry && !f.Zero
	case 0x08:
		return f.Sign
	case 0x09:
		return !f.Sign
	case 0x0a:
		return f.Parity
	case 0x0b:
		return !f.Parity
	case 0x0c:
		return f.Sign != f.Overflow
	case 0x0d:
		return f.Sign == f.Overflow
	case 0x0e:
		return f.Zero || f.Sign != f.Overflow
	}
	return !f.Zero && f.Sign == f.Overflow
}
