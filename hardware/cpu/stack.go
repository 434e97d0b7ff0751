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
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

func (mc *CPU) pushU8(v uint8) {
	sp := mc.regs.SP() - 2
	mc.regs.Set16(registers.SP, sp)
	mc.biuWriteU8(registers.SS, sp, v)
}

func (mc *CPU) pushU16(v uint16) {
	sp := mc.regs.SP() - 2
	mc.regs.Set16(registers.SP, sp)
	mc.biuWriteU16(registers.SS, sp, v)
}

func (mc *CPU) popU16() uint16 {
	v := mc.biuReadU16(registers.SS, mc.regs.SP())
	mc.regs.Set16(registers.SP, mc.regs.SP()+2)
	return v
}

// pushRegister16 decrements SP before reading the register so that PUSH SP
// pushes the new value of SP
func (mc *CPU) pushRegister16(r registers.Reg16) {
	sp := mc.regs.SP() - 2
	mc.regs.Set16(registers.SP, sp)
	mc.biuWriteU16(registers.SS, sp, mc.regs.Get16(r))
}

func (mc *CPU) pushSegment(s registers.Segment) {
	if mc.cfg.harrisInhibit {
		mc.interruptInhibit = true
	}
	sp := mc.regs.SP() - 2
	mc.regs.Set16(registers.SP, sp)
	mc.biuWriteU16(registers.SS, sp, mc.regs.Seg(s))
}

// popRegister16. POP SP leaves SP with the popped value
func (mc *CPU) popRegister16(r registers.Reg16) {
	v := mc.biuReadU16(registers.SS, mc.regs.SP())
	if r == registers.SP {
		mc.regs.Set16(registers.SP, v)
		return
	}
	mc.regs.Set16(r, v)
	mc.regs.Set16(registers.SP, mc.regs.SP()+2)
}

func (mc *CPU) popSegment(s registers.Segment) {
	v := mc.biuReadU16(registers.SS, mc.regs.SP())
	mc.regs.SetSeg(s, v)
	if s == registers.SS || mc.cfg.harrisInhibit {
		mc.interruptInhibit = true
	}
	if s == registers.SS {
		mc.trapSuppressed = true
	}
	mc.regs.Set16(registers.SP, mc.regs.SP()+2)
}

func (mc *CPU) pushFlags() {
	mc.pushU16(mc.regs.Flags.Value())
}

// popFlags applies the enable delays for IF and TF
func (mc *CPU) popFlags() {
	v := mc.popU16()

	f := &mc.regs.Flags
	trap := f.Trap
	intr := f.Interrupt
	f.FromValue(v)

	if !intr && f.Interrupt {
		mc.interruptInhibit = true
	}
	if !trap && f.Trap {
		mc.trapEnableDelay = 1
	}
	if trap && !f.Trap {
		mc.trapDisableDelay = 1
	}
}

// release discards bytes from the top of the stack
func (mc *CPU) release(n uint16) {
	mc.regs.Set16(registers.SP, mc.regs.SP()+n)
}
