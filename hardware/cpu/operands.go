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
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// queueReader is the instructions.Reader used to decode instructions from
// the prefetch queue
type queueReader struct {
	mc *CPU
}

func (r queueReader) Fetch(kind instructions.ReadKind) uint8 {
	return r.mc.biuQueueRead(kind, false)
}

func (r queueReader) Cycles(lines ...uint16) {
	r.mc.cyclesI(lines...)
}

func (r queueReader) SetMicrocode(line uint16) {
	r.mc.mcPC = line
}

// memoryReader is the instructions.Reader used to decode instructions from
// memory without affecting the state of the CPU
type memoryReader struct {
	mc      *CPU
	address uint32
}

func (r *memoryReader) Fetch(_ instructions.ReadKind) uint8 {
	b := r.mc.mem.PeekU8(r.address)
	r.address++
	return b
}

func (r *memoryReader) Cycles(_ ...uint16) {}

func (r *memoryReader) SetMicrocode(_ uint16) {}

// queue reads by the execution unit
func (mc *CPU) qRead8() uint8 {
	return mc.biuQueueRead(instructions.Subsequent, true)
}

func (mc *CPU) qRead16() uint16 {
	lo := mc.biuQueueRead(instructions.Subsequent, true)
	hi := mc.biuQueueRead(instructions.Subsequent, true)
	return uint16(hi)<<8 | uint16(lo)
}

// memoryWord returns true if the memory operand of the current instruction
// is a word
func (mc *CPU) memoryWord() bool {
	d := mc.instr.Definition
	return d.Operand1 != instructions.ModRM8 && d.Operand2 != instructions.ModRM8
}

// memoryOperand returns the operand of the current instruction addressed by
// the ModR/M byte, if it is in memory
func (mc *CPU) memoryOperand() (instructions.Operand, bool) {
	if mc.instr.Operand1.Kind == instructions.KindMemory {
		return mc.instr.Operand1, true
	}
	if mc.instr.Operand2.Kind == instructions.KindMemory {
		return mc.instr.Operand2, true
	}
	return instructions.Operand{}, false
}

// effectiveAddress returns the segment and offset of a memory operand. the
// offset is recorded as the last EA.
func (mc *CPU) effectiveAddress(op instructions.Operand) (registers.Segment, uint16) {
	r := &mc.regs
	offset := op.Mode.Offset(r.BX(), r.BP(), r.SI(), r.DI(), op.Disp)
	seg := registers.DS
	if op.Mode.UsesBP() {
		seg = registers.SS
	}
	mc.lastEA = offset
	return mc.instr.Segment(seg), offset
}

// loadOperand reads the memory operand before the instruction routine
// starts, for those instructions that need it
func (mc *CPU) loadOperand() {
	op, ok := mc.memoryOperand()
	if !ok {
		return
	}

	if mc.instr.Definition.LoadsEA() {
		mc.mcPC = microcode.LoadEA
		seg, offset := mc.effectiveAddress(op)
		if mc.memoryWord() {
			mc.eaOpr = mc.biuReadU16(seg, offset)
		} else {
			mc.eaOpr = uint16(mc.biuReadU8(seg, offset))
		}
		mc.cyclesI(microcode.LoadEAFinish, microcode.Return)
		return
	}

	mc.cyclesI(microcode.SkipEA, microcode.Return)
}

// read8 returns the value of a byte operand. immediate and direct offset
// operands are read from the queue.
func (mc *CPU) read8(op instructions.Operand) uint8 {
	switch op.Kind {
	case instructions.KindImmediate8, instructions.KindImmediate8SignExtended, instructions.KindRelative8:
		return mc.qRead8()
	case instructions.KindOffset8, instructions.KindOffset16:
		offset := mc.qRead16()
		return mc.biuReadU8(mc.instr.Segment(registers.DS), offset)
	case instructions.KindRegister8:
		return mc.regs.Get8(op.Reg8)
	case instructions.KindRegister16:
		return uint8(mc.regs.Get16(op.Reg16))
	case instructions.KindMemory:
		return uint8(mc.eaOpr)
	}
	panic("cpu: invalid byte operand")
}

// read16 returns the value of a word operand. byte registers read as the
// whole 16 bit register, high registers byte swapped. byte memory operands
// read with the high byte set. both are only seen with the word forms of the
// FE group.
func (mc *CPU) read16(op instructions.Operand) uint16 {
	switch op.Kind {
	case instructions.KindImmediate8SignExtended, instructions.KindRelative8:
		return uint16(int16(int8(mc.qRead8())))
	case instructions.KindImmediate8:
		return uint16(mc.qRead8())
	case instructions.KindImmediate16, instructions.KindRelative16:
		return mc.qRead16()
	case instructions.KindOffset8, instructions.KindOffset16:
		offset := mc.qRead16()
		return mc.biuReadU16(mc.instr.Segment(registers.DS), offset)
	case instructions.KindRegister8:
		v := mc.regs.Get16(registers.Reg16(op.Reg8 & 0x03))
		if op.Reg8 >= registers.AH {
			v = v<<8 | v>>8
		}
		return v
	case instructions.KindRegister16:
		return mc.regs.Get16(op.Reg16)
	case instructions.KindSegment:
		return mc.regs.Seg(op.Seg)
	case instructions.KindMemory:
		if !mc.memoryWord() {
			return mc.eaOpr | 0xff00
		}
		return mc.eaOpr
	}
	panic("cpu: invalid word operand")
}

func (mc *CPU) write8(op instructions.Operand, v uint8) {
	switch op.Kind {
	case instructions.KindOffset8, instructions.KindOffset16:
		offset := mc.qRead16()
		mc.cycle()
		mc.biuWriteU8(mc.instr.Segment(registers.DS), offset, v)
	case instructions.KindRegister8:
		mc.regs.Set8(op.Reg8, v)
	case instructions.KindMemory:
		seg, offset := mc.effectiveAddress(op)
		mc.biuWriteU8(seg, offset, v)
	default:
		panic("cpu: invalid byte destination")
	}
}

func (mc *CPU) write16(op instructions.Operand, v uint16) {
	switch op.Kind {
	case instructions.KindOffset8, instructions.KindOffset16:
		offset := mc.qRead16()
		mc.cycle()
		mc.biuWriteU16(mc.instr.Segment(registers.DS), offset, v)
	case instructions.KindRegister16:
		mc.regs.Set16(op.Reg16, v)
	case instructions.KindSegment:
		mc.regs.SetSeg(op.Seg, v)
	case instructions.KindMemory:
		seg, offset := mc.effectiveAddress(op)
		if mc.memoryWord() {
			mc.biuWriteU16(seg, offset, v)
		} else {
			mc.biuWriteU8(seg, offset, uint8(v))
		}
	default:
		panic("cpu: invalid word destination")
	}
}

// readFarAddress reads the segment and offset of a far immediate address
// from the queue
func (mc *CPU) readFarAddress() (uint16, uint16) {
	offset := mc.qRead16()
	seg := mc.qRead16()
	return seg, offset
}

// readFarPointer returns the segment and offset of a far pointer in memory.
// the offset has already been loaded by loadOperand. the register form
// reads the pointer from the last EA.
func (mc *CPU) readFarPointer(op instructions.Operand) (uint16, uint16) {
	if op.Kind == instructions.KindMemory {
		offset := mc.eaOpr
		seg, ea := mc.effectiveAddress(op)
		return mc.biuReadU16(seg, ea+2), offset
	}

	mc.quirk = execution.RegisterFarPtr
	seg := mc.instr.Segment(registers.DS)
	offset := mc.biuReadU16(seg, mc.lastEA)
	return mc.biuReadU16(seg, mc.lastEA+2), offset
}

// readFarSegment reads the segment half of a far pointer operand. the
// register form reads from the last EA.
func (mc *CPU) readFarSegment(op instructions.Operand) uint16 {
	if op.Kind == instructions.KindMemory {
		seg, ea := mc.effectiveAddress(op)
		return mc.biuReadU16(seg, ea+2)
	}
	mc.quirk = execution.RegisterFarPtr
	return mc.biuReadU16(mc.instr.Segment(registers.DS), mc.lastEA+2)
}
