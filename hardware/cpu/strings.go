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
	"github.com/jetsetilly/gopher8088/hardware/cpu/alu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// the type of repetition in progress
type repType int

const (
	repNone repType = iota
	repRep
	repRepne
	repRepe
	repMulDiv
)

// stringDelta returns the amount SI and DI change by after each iteration
func (mc *CPU) stringDelta() uint16 {
	d := uint16(1)
	if mc.instr.Word {
		d = 2
	}
	if mc.regs.Flags.Direction {
		return -d
	}
	return d
}

// stringOp performs one iteration of a string instruction. the source
// segment can be overridden. the destination is always ES:DI
func (mc *CPU) stringOp() {
	r := &mc.regs
	src := mc.instr.Segment(registers.DS)
	delta := mc.stringDelta()
	word := mc.instr.Word

	switch mc.instr.Mnemonic {
	case instructions.STOSB:
		mc.biuWriteU8(registers.ES, r.DI(), r.Get8(registers.AL))
		r.Set16(registers.DI, r.DI()+delta)

	case instructions.STOSW:
		mc.biuWriteU16(registers.ES, r.DI(), r.AX())
		r.Set16(registers.DI, r.DI()+delta)

	case instructions.LODSB, instructions.LODSW:
		mc.mcPC = 0x12d
		if word {
			r.Set16(registers.AX, mc.biuReadU16(src, r.SI()))
		} else {
			r.Set8(registers.AL, mc.biuReadU8(src, r.SI()))
		}
		r.Set16(registers.SI, r.SI()+delta)

	case instructions.MOVSB, instructions.MOVSW:
		if word {
			v := mc.biuReadU16(src, r.SI())
			mc.cycleI(0x12e)
			mc.biuWriteU16(registers.ES, r.DI(), v)
		} else {
			v := mc.biuReadU8(src, r.SI())
			mc.cycleI(0x12e)
			mc.biuWriteU8(registers.ES, r.DI(), v)
		}
		r.Set16(registers.SI, r.SI()+delta)
		r.Set16(registers.DI, r.DI()+delta)

	case instructions.SCASB, instructions.SCASW:
		mc.cyclesI(0x121, microcode.Jump)
		var a, b uint16
		if word {
			a = r.AX()
			b = mc.biuReadU16(registers.ES, r.DI())
		} else {
			a = uint16(r.Get8(registers.AL))
			b = uint16(mc.biuReadU8(registers.ES, r.DI()))
		}
		r.Set16(registers.DI, r.DI()+delta)
		mc.cyclesI(0x126, 0x127, 0x128)
		alu.Math(&r.Flags, alu.CMP, a, b, word)

	case instructions.CMPSB, instructions.CMPSW:
		mc.cycleI(0x121)
		var a, b uint16
		if word {
			a = mc.biuReadU16(src, r.SI())
			mc.cyclesI(0x123, 0x124)
			b = mc.biuReadU16(registers.ES, r.DI())
		} else {
			a = uint16(mc.biuReadU8(src, r.SI()))
			mc.cyclesI(0x123, 0x124)
			b = uint16(mc.biuReadU8(registers.ES, r.DI()))
		}
		r.Set16(registers.SI, r.SI()+delta)
		r.Set16(registers.DI, r.DI()+delta)
		mc.cyclesI(0x126, 0x127, 0x128)
		alu.Math(&r.Flags, alu.CMP, a, b, word)

	default:
		panic("cpu: string operation on non-string instruction")
	}
}

// repStart runs the start of a string instruction. it returns false if the
// instruction is repeated and CX is zero, in which case no iteration is
// performed
func (mc *CPU) repStart() bool {
	if !mc.repInit {
		switch mc.instr.Mnemonic {
		case instructions.MOVSB, instructions.MOVSW, instructions.LODSB, instructions.LODSW:
			mc.cycleI(0x12c)
		case instructions.CMPSB, instructions.CMPSW, instructions.SCASB, instructions.SCASW:
			mc.cycleI(0x120)
		case instructions.STOSB, instructions.STOSW:
			mc.cycleI(0x11c)
		}

		if mc.inRep {
			if mc.regs.CX() == 0 {
				mc.cyclesI(microcode.Jump, 0x112, 0x113, 0x114)
				mc.repEnd()
				return false
			}
			mc.cyclesI(microcode.Jump, 0x112, 0x113, 0x114, microcode.Jump, 0x116, microcode.Return)
			mc.reentrant = true
		}
		mc.repInit = true
	}
	return true
}

func (mc *CPU) repEnd() {
	mc.repInit = false
	mc.inRep = false
	mc.repType = repNone
}

// repInterrupt is the RPTI microcode routine. the instruction is rewound to
// the start of its prefixes so that it is resumed after the interrupt
func (mc *CPU) repInterrupt() {
	mc.biuFetchSuspend()
	mc.cyclesI(0x118, 0x119)
	mc.corr()
	mc.cycleI(0x11a)
	mc.biuQueueFlush()

	mc.pc -= 2
	if mc.instr.SegmentOverride != registers.NoSegment {
		mc.quirk = execution.StringRestart
	}

	mc.repEnd()
}

func (mc *CPU) decrementCX() {
	mc.regs.Set16(registers.CX, mc.regs.CX()-1)
}

// execString runs the string instructions, including the repeat loop
// control for one iteration
func (mc *CPU) execString() {
	if !mc.repStart() {
		return
	}

	mc.stringOp()

	switch mc.instr.Mnemonic {
	case instructions.MOVSB, instructions.MOVSW:
		mc.cycleI(0x130)
		if !mc.inRep {
			mc.cycleI(microcode.Jump)
			return
		}
		mc.decrementCX()
		if mc.intrPending {
			mc.cyclesI(0x131, microcode.Jump)
			mc.repInterrupt()
			return
		}
		mc.cyclesI(0x131, 0x132)
		if mc.regs.CX() == 0 {
			mc.repEnd()
		} else {
			mc.cycleI(microcode.Jump)
		}

	case instructions.CMPSB, instructions.CMPSW, instructions.SCASB, instructions.SCASW:
		if !mc.inRep {
			mc.cycleI(microcode.Jump)
			return
		}
		mc.cycleI(0x129)
		mc.decrementCX()

		z := mc.regs.Flags.Zero
		if (mc.repType == repRepne && z) || (mc.repType == repRepe && !z) {
			mc.repEnd()
			mc.cycleI(microcode.Jump)
			return
		}

		mc.cycleI(0x12a)
		if mc.intrPending {
			mc.cycleI(microcode.Jump)
			mc.repInterrupt()
		}
		mc.cycleI(0x12b)
		if mc.regs.CX() == 0 {
			mc.repEnd()
		} else {
			mc.cycleI(microcode.Jump)
		}

	case instructions.STOSB, instructions.STOSW:
		mc.cycleI(0x11e)
		if !mc.inRep {
			mc.cycleI(microcode.Jump)
			return
		}
		mc.cycleI(0x11f)
		if mc.intrPending {
			mc.cycleI(microcode.Jump)
			mc.repInterrupt()
		}
		mc.cycleI(0x1f0)
		mc.decrementCX()
		if mc.regs.CX() == 0 {
			mc.repEnd()
		} else {
			mc.cycleI(microcode.Jump)
		}

	case instructions.LODSB, instructions.LODSW:
		mc.cyclesI(0x12e, microcode.Jump, 0x1f8)
		if !mc.inRep {
			return
		}
		mc.cyclesI(microcode.Jump, 0x131)
		mc.decrementCX()
		if mc.intrPending {
			mc.cycleI(microcode.Jump)
			mc.repInterrupt()
			return
		}
		mc.cycleI(0x132)
		if mc.regs.CX() == 0 {
			mc.repEnd()
		} else {
			mc.cycleI(microcode.Jump)
		}
	}
}
