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
	"github.com/jetsetilly/gopher8088/hardware/cpu/biu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// arithmetic and logic mnemonics and the ALU operation they perform
var aluOps = map[instructions.Mnemonic]alu.Op{
	instructions.ADD:  alu.ADD,
	instructions.OR:   alu.OR,
	instructions.ADC:  alu.ADC,
	instructions.SBB:  alu.SBB,
	instructions.AND:  alu.AND,
	instructions.SUB:  alu.SUB,
	instructions.XOR:  alu.XOR,
	instructions.CMP:  alu.CMP,
	instructions.TEST: alu.TEST,
	instructions.INC:  alu.INC,
	instructions.DEC:  alu.DEC,
	instructions.NEG:  alu.NEG,
	instructions.NOT:  alu.NOT,
}

var shiftOps = map[instructions.Mnemonic]alu.ShiftOp{
	instructions.ROL:    alu.ROL,
	instructions.ROR:    alu.ROR,
	instructions.RCL:    alu.RCL,
	instructions.RCR:    alu.RCR,
	instructions.SHL:    alu.SHL,
	instructions.SHR:    alu.SHR,
	instructions.SETMO:  alu.SETMO,
	instructions.SETMOC: alu.SETMO,
	instructions.SAR:    alu.SAR,
}

// the opcodes that the NEC parts do not decode as 8088 instructions. 0xf1 is
// not in the list because the decoder consumes it as a LOCK prefix
func necUndefined(opcode uint8) bool {
	switch {
	case opcode == 0x0f:
		return true
	case opcode >= 0x60 && opcode <= 0x6f:
		return true
	case opcode == 0xc0 || opcode == 0xc1 || opcode == 0xc8 || opcode == 0xc9:
		return true
	case opcode == 0xd6:
		return true
	}
	return false
}

// math performs the ALU operation for the current instruction's mnemonic
func (mc *CPU) math(a, b uint16) uint16 {
	op, ok := aluOps[mc.instr.Mnemonic]
	if !ok {
		panic("cpu: no ALU operation for " + mc.instr.Mnemonic.String())
	}
	return alu.Math(&mc.regs.Flags, op, a, b, mc.instr.Word)
}

// readOperand and writeOperand use the width of the current instruction
func (mc *CPU) readOperand(op instructions.Operand) uint16 {
	if mc.instr.Word {
		return mc.read16(op)
	}
	return uint16(mc.read8(op))
}

func (mc *CPU) writeOperand(op instructions.Operand, v uint16) {
	if mc.instr.Word {
		mc.write16(op, v)
		return
	}
	mc.write8(op, uint8(v))
}

// the register form of a byte operand widened to the register pair
func reg16Of(op instructions.Operand) registers.Reg16 {
	if op.Kind == instructions.KindRegister16 {
		return op.Reg16
	}
	return registers.Reg16(op.Reg8 & 0x03)
}

// execute runs the decoded instruction in mc.instr. the memory operand, if
// the instruction needs one, has already been loaded
func (mc *CPU) execute() execution.Outcome {
	mc.reentrant = false
	mc.jumped = false
	mc.trapSuppressed = false

	if mc.trapEnableDelay > 0 {
		mc.trapEnableDelay--
	}
	if mc.trapDisableDelay > 0 {
		mc.trapDisableDelay--
	}

	if mc.lastQueueOp == biu.First {
		mc.mcPC = microcode.None
		mc.cycle()
	}

	mc.mcPC = mc.instr.Definition.Microcode

	if mc.instr.Rep() {
		switch mc.instr.Mnemonic {
		case instructions.MOVSB, instructions.MOVSW, instructions.LODSB, instructions.LODSW,
			instructions.STOSB, instructions.STOSW:
			mc.repType = repRep
			mc.inRep = true
		case instructions.CMPSB, instructions.CMPSW, instructions.SCASB, instructions.SCASW:
			if mc.instr.Prefixes&instructions.PrefixRepNZ == instructions.PrefixRepNZ {
				mc.repType = repRepne
			} else {
				mc.repType = repRepe
			}
			mc.inRep = true
		case instructions.MUL, instructions.IMUL, instructions.DIV, instructions.IDIV:
			mc.repType = repMulDiv
			mc.inRep = true
		}
	}

	mc.interruptInhibit = false

	opcode := mc.instr.Opcode
	if opcode == 0x00 {
		mc.opcode0Count++
		if mc.cfg.offRails && mc.opcode0Count > mc.cfg.offRailsLimit {
			mc.regs.Flags.Interrupt = false
			mc.halted = true
			mc.reentrant = true
			mc.pushEvent(EventOffRails, mc.instrAddress)
			mc.logf("off the rails at %05x", mc.instrAddress)
		}
	} else {
		mc.opcode0Count = 0
	}

	var jump bool
	outcome := execution.Okay

	if mc.model.nec() && necUndefined(opcode) {
		mc.swInterrupt(vectorUndefined)
		jump = true
		outcome = execution.UndefinedOpcode
	} else {
		jump, outcome = mc.dispatch(opcode)
	}

	if !mc.inRep {
		mc.repInit = false
	} else {
		mc.reentrant = true
	}

	switch {
	case mc.halted && !mc.reportedHalt && !mc.regs.Flags.Interrupt && !mc.regs.Flags.Trap:
		mc.reportedHalt = true
		outcome = execution.Halt
		mc.pushEvent(EventHalted, mc.instrAddress)
	case outcome == execution.UndefinedOpcode || outcome == execution.DivideError:
	case jump:
		outcome = execution.OkayJump
	case mc.inRep:
		if mc.repType == repMulDiv {
			mc.inRep = false
			outcome = execution.Okay
		} else {
			mc.repInit = true
			outcome = execution.OkayRep
		}
	}

	mc.jumped = jump
	return outcome
}

// dispatch runs the microcode routine for the opcode. returns true if the
// instruction changed the flow of the program
func (mc *CPU) dispatch(opcode uint8) (jump bool, outcome execution.Outcome) {
	ins := &mc.instr
	r := &mc.regs
	f := &mc.regs.Flags
	op1 := ins.Operand1
	op2 := ins.Operand2
	outcome = execution.Okay

	switch {
	// register and memory arithmetic
	case opcode < 0x40 && opcode&0x07 < 0x04:
		a := mc.readOperand(op1)
		b := mc.readOperand(op2)
		if ins.Mnemonic == instructions.CMP {
			mc.cycleI(0x008)
			mc.math(a, b)
			return
		}
		mc.cycleI(0x008)
		if op1.Kind == instructions.KindMemory {
			mc.cyclesI(0x009, 0x00a)
		}
		mc.writeOperand(op1, mc.math(a, b))
		return

	// accumulator and immediate arithmetic
	case opcode < 0x40 && (opcode&0x07 == 0x04 || opcode&0x07 == 0x05):
		if !ins.Word {
			a := uint16(r.Get8(registers.AL))
			b := uint16(mc.read8(op2))
			if opcode == 0x3c {
				mc.cycleI(microcode.Jump)
			} else {
				mc.cycleI(0x019)
			}
			r.Set8(registers.AL, uint8(mc.math(a, b)))
			return
		}
		a := r.AX()
		b := mc.read16(op2)
		r.Set16(registers.AX, mc.math(a, b))
		return
	}

	switch opcode {
	case 0x06, 0x0e, 0x16, 0x1e:
		mc.cyclesI(0x02c, 0x02d, 0x02e)
		mc.pushSegment(op1.Seg)

	case 0x07, 0x0f, 0x17, 0x1f:
		mc.popSegment(op1.Seg)

	case 0x26, 0x2e, 0x36, 0x3e:
		// segment prefixes are consumed by the decoder

	case 0x27:
		mc.cyclesI(0x144, 0x145)
		r.Set8(registers.AL, alu.DAA(f, r.Get8(registers.AL)))

	case 0x2f:
		mc.cyclesI(0x144, 0x145)
		r.Set8(registers.AL, alu.DAS(f, r.Get8(registers.AL)))

	case 0x37:
		mc.cyclesI(0x148, 0x149, 0x14a, 0x14b, 0x14c, 0x14d)
		ax, adjusted := alu.AAA(f, r.AX())
		r.Set16(registers.AX, ax)
		if !adjusted {
			mc.cycleI(microcode.Jump)
		}

	case 0x3f:
		mc.cyclesI(0x148, 0x149, 0x14a, 0x14b, microcode.Jump, 0x14d)
		ax, adjusted := alu.AAS(f, r.AX())
		r.Set16(registers.AX, ax)
		if !adjusted {
			mc.cycleI(microcode.Jump)
		}

	case 0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
		0x48, 0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e, 0x4f:
		reg := registers.Reg16(opcode & 0x07)
		r.Set16(reg, mc.math(r.Get16(reg), 0))

	case 0x50, 0x51, 0x52, 0x53, 0x54, 0x55, 0x56, 0x57:
		mc.cyclesI(0x028, 0x029, 0x02a)
		mc.pushRegister16(registers.Reg16(opcode & 0x07))

	case 0x58, 0x59, 0x5a, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f:
		mc.popRegister16(registers.Reg16(opcode & 0x07))

	case 0x80, 0x81, 0x82, 0x83:
		a := mc.readOperand(op1)
		b := mc.readOperand(op2)
		if opcode != 0x81 {
			mc.cycleI(microcode.Jump)
		}
		v := mc.math(a, b)
		memory := op1.Kind == instructions.KindMemory
		if ins.Mnemonic == instructions.CMP {
			if memory {
				mc.cycleI(0x00e)
			}
			return
		}
		if memory {
			if opcode == 0x81 {
				mc.cyclesI(0x00e, 0x00f)
			} else {
				mc.cycleI(0x00e)
			}
		}
		mc.writeOperand(op1, v)

	case 0x84, 0x85:
		mc.math(mc.readOperand(op1), mc.readOperand(op2))
		mc.cycleI(0x094)

	case 0x86, 0x87:
		a := mc.readOperand(op1)
		b := mc.readOperand(op2)
		mc.cycles(2)
		if op2.Kind == instructions.KindMemory {
			mc.cycles(2)
		}
		mc.writeOperand(op2, a)
		mc.writeOperand(op1, b)

	case 0x88, 0x89, 0x8a, 0x8b:
		v := mc.readOperand(op2)
		if op1.Kind == instructions.KindMemory {
			mc.cyclesI(0x000, 0x001)
		}
		mc.writeOperand(op1, v)

	case 0x8c, 0x8e:
		if ins.ModRM.Reg > 3 {
			mc.quirk = execution.SegmentAlias
		}
		if op1.Kind == instructions.KindMemory {
			mc.cycleI(0x0ec)
		}
		v := mc.read16(op2)
		mc.write16(op1, v)
		if opcode == 0x8e {
			if !mc.model.nec() || op1.Seg == registers.SS {
				mc.interruptInhibit = true
			}
			if op1.Seg == registers.SS {
				mc.trapSuppressed = true
			}
		}

	case 0x8d:
		ea := mc.lastEA
		if op2.Kind == instructions.KindMemory {
			_, ea = mc.effectiveAddress(op2)
		}
		mc.write16(op1, ea)

	case 0x8f:
		mc.cycleI(0x040)
		v := mc.popU16()
		mc.cycleI(0x042)
		if op1.Kind == instructions.KindMemory {
			mc.cyclesI(0x043, 0x044)
		}
		mc.write16(op1, v)

	case 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97:
		reg := registers.Reg16(opcode & 0x07)
		ax := r.AX()
		v := r.Get16(reg)
		mc.cycleI(0x084)
		r.Set16(registers.AX, v)
		r.Set16(reg, ax)

	case 0x98:
		if r.Get8(registers.AL)&0x80 != 0 {
			r.Set8(registers.AH, 0xff)
		} else {
			r.Set8(registers.AH, 0x00)
		}

	case 0x99:
		mc.cycles(3)
		if r.AX()&0x8000 == 0 {
			r.Set16(registers.DX, 0x0000)
		} else {
			mc.cycle()
			r.Set16(registers.DX, 0xffff)
		}

	case 0x9a:
		seg, offset := mc.readFarAddress()
		mc.farcall(seg, offset, true)
		jump = true

	case 0x9b:
		mc.cyclesI(0x0f8, microcode.Jump, 0x0fb)
		if mc.intrPending {
			mc.cyclesI(microcode.Jump, 0x0fd)
			mc.biuFetchSuspend()
			mc.cycleI(0x0fe)
			mc.corr()
			mc.cycleI(0x0ff)
			mc.pc--
			mc.biuQueueFlush()
		} else {
			mc.cyclesI(0x0fc, microcode.Jump)
		}

	case 0x9c:
		mc.cycles(3)
		mc.pushFlags()

	case 0x9d:
		mc.popFlags()

	case 0x9e:
		mc.cyclesI(0x100, 0x101)
		f.FromValue(f.Value()&0xff00 | uint16(r.Get8(registers.AH)))

	case 0x9f:
		r.Set8(registers.AH, uint8(f.Value()))

	case 0xa0, 0xa1:
		if ins.Word {
			r.Set16(registers.AX, mc.read16(op2))
		} else {
			r.Set8(registers.AL, mc.read8(op2))
		}

	case 0xa2, 0xa3:
		if ins.Word {
			mc.write16(op1, r.AX())
		} else {
			mc.write8(op1, r.Get8(registers.AL))
		}

	case 0xa4, 0xa5, 0xa6, 0xa7, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf:
		mc.execString()

	case 0xa8:
		a := uint16(r.Get8(registers.AL))
		b := uint16(mc.read8(op2))
		mc.cycleI(microcode.Jump)
		mc.math(a, b)

	case 0xa9:
		mc.math(r.AX(), mc.read16(op2))

	case 0xb0, 0xb1, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7:
		r.Set8(op1.Reg8, mc.read8(op2))
		mc.cycleI(microcode.Jump)
		mc.mcPC = 0x016

	case 0xb8, 0xb9, 0xba, 0xbb, 0xbc, 0xbd, 0xbe, 0xbf:
		r.Set16(op1.Reg16, mc.read16(op2))

	default:
		if opcode >= 0x60 && opcode <= 0x7f {
			taken := mc.jcc(opcode)
			rel := mc.read16(op1)
			mc.cycleI(0x0e9)
			if taken {
				mc.reljmp2(rel, true)
			}
			return taken, outcome
		}
		return mc.dispatchHigh(opcode)
	}

	return jump, outcome
}

// dispatchHigh runs the opcodes from 0xc0 upwards
func (mc *CPU) dispatchHigh(opcode uint8) (jump bool, outcome execution.Outcome) {
	ins := &mc.instr
	r := &mc.regs
	f := &mc.regs.Flags
	op1 := ins.Operand1
	op2 := ins.Operand2
	outcome = execution.Okay

	switch opcode {
	case 0xc0, 0xc2:
		disp := mc.read16(op1)
		mc.cycleI(microcode.Jump)
		mc.pc = mc.popU16()
		mc.biuFetchSuspend()
		mc.cyclesI(0x0c3, 0x0c4)
		mc.biuQueueFlush()
		mc.cyclesI(0x0c5, microcode.Jump, 0x0ce)
		mc.release(disp)
		jump = true

	case 0xc1, 0xc3:
		mc.pc = mc.popU16()
		mc.biuFetchSuspend()
		mc.cycleI(0x0bd)
		mc.biuQueueFlush()
		mc.cyclesI(0x0be, 0x0bf)
		jump = true

	case 0xc4, 0xc5:
		if opcode == 0xc4 {
			mc.cyclesI(0x0f0, 0x0f1)
		} else {
			mc.cyclesI(0x0f4, 0x0f5)
		}
		seg, offset := mc.readFarPointer(op2)
		mc.write16(op1, offset)
		if opcode == 0xc4 {
			r.SetSeg(registers.ES, seg)
		} else {
			r.SetSeg(registers.DS, seg)
		}

	case 0xc6:
		v := mc.read8(op2)
		mc.cycleI(microcode.Jump)
		if op1.Kind == instructions.KindMemory {
			mc.cycleI(0x016)
		}
		mc.write8(op1, v)

	case 0xc7:
		v := mc.read16(op2)
		if op1.Kind == instructions.KindMemory {
			mc.cycleI(0x016)
		}
		mc.write16(op1, v)

	case 0xc8, 0xca:
		disp := mc.read16(op1)
		mc.farret(true)
		mc.release(disp)
		mc.cycleI(0x0ce)
		jump = true

	case 0xc9, 0xcb:
		mc.cycleI(0x0c0)
		mc.farret(true)
		jump = true

	case 0xcc:
		mc.int3()
		jump = true

	case 0xcd:
		mc.swInterrupt(mc.read8(op1))
		jump = true

	case 0xce:
		if f.Overflow {
			mc.cyclesI(0x1ac, 0x1ad, microcode.Jump, 0x1af)
			mc.swInterrupt(vectorOverflow)
			jump = true
		} else {
			mc.cyclesI(0x1ac, 0x1ad)
		}

	case 0xcf:
		mc.iret()
		jump = true

	case 0xd0, 0xd1, 0xd2, 0xd3:
		mc.shift(opcode)

	case 0xd4:
		imm := mc.read8(op1)
		if !mc.aam(imm) {
			f.SetSZP(0, false)
			f.AuxCarry = false
			f.Carry = false
			f.Overflow = false
			mc.int0()
			jump = true
			outcome = execution.DivideError
		} else {
			f.Carry = false
			f.AuxCarry = false
			f.Overflow = false
		}

	case 0xd5:
		mc.aad(mc.read8(op1))

	case 0xd6:
		mc.quirk = execution.SALC
		mc.cycleI(0x0a0)
		if f.Carry {
			mc.cycleI(microcode.Jump)
			r.Set8(registers.AL, 0xff)
		} else {
			r.Set8(registers.AL, 0x00)
		}

	case 0xd7:
		offset := r.BX() + uint16(r.Get8(registers.AL))
		mc.cyclesI(0x10c, 0x10d, 0x10e)
		r.Set8(registers.AL, mc.biuReadU8(ins.Segment(registers.DS), offset))

	case 0xd8, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde, 0xdf:
		// no coprocessor. the memory operand is read and discarded
		_ = mc.read16(op1)

	case 0xe0, 0xe1:
		mc.decrementCX()
		mc.cyclesI(0x138, 0x139)
		rel := mc.read16(op1)
		if (opcode&0x01 == 0x01) != f.Zero {
			mc.cycleI(microcode.Jump)
		} else if r.CX() != 0 {
			mc.cycleI(0x13b)
			mc.reljmp2(rel, true)
			jump = true
		}

	case 0xe2:
		mc.decrementCX()
		mc.cyclesI(0x140, 0x141)
		rel := mc.read16(op1)
		if r.CX() != 0 {
			mc.reljmp2(rel, true)
			jump = true
		} else {
			mc.cycle()
		}

	case 0xe3:
		mc.cyclesI(0x134, 0x135)
		rel := mc.read16(op1)
		if r.CX() != 0 {
			mc.cycleI(microcode.Jump)
		} else {
			mc.cycleI(0x137)
			mc.reljmp2(rel, true)
			jump = true
		}

	case 0xe4, 0xe5:
		port := uint16(mc.read8(op2))
		mc.cycleI(0x0ad)
		mc.in(port)

	case 0xe6, 0xe7:
		port := uint16(mc.read8(op1))
		mc.cyclesI(0x0b1, 0x0b2)
		mc.out(port)

	case 0xec, 0xed:
		mc.in(r.DX())

	case 0xee, 0xef:
		mc.cycleI(0x0b8)
		mc.out(r.DX())

	case 0xe8:
		rel := mc.read16(op1)
		mc.biuFetchSuspend()
		mc.cyclesI(0x07e, 0x07f)
		mc.corr()
		mc.cycleI(0x080)
		ret := mc.pc
		mc.pc += rel
		mc.biuQueueFlush()
		mc.cyclesI(0x081, 0x082, microcode.Jump)
		mc.pushU16(ret)
		jump = true

	case 0xe9:
		mc.reljmp2(mc.read16(op1), false)
		jump = true

	case 0xea:
		seg, offset := mc.readFarAddress()
		mc.biuFetchSuspend()
		mc.cyclesI(0x0e4, 0x0e5)
		r.SetSeg(registers.CS, seg)
		mc.pc = offset
		mc.biuQueueFlush()
		mc.cycleI(0x0e6)
		jump = true

	case 0xeb:
		mc.reljmp2(mc.read16(op1), true)
		jump = true

	case 0xf0, 0xf2, 0xf3:
		panic("cpu: prefix executed as an instruction")

	case 0xf4:
		mc.biuBusWaitHalt()
		mc.fetchState = biu.Halted
		mc.biuBusWaitFinish()
		if mc.intrLine() {
			mc.cycles(2)
		} else {
			mc.halted = true
			mc.biuHalt()
			mc.reentrant = true
			mc.logf("halt at %05x", mc.instrAddress)
		}

	case 0xf5:
		f.Carry = !f.Carry

	case 0xf6, 0xf7:
		return mc.group3()

	case 0xf8:
		f.Carry = false
	case 0xf9:
		f.Carry = true
	case 0xfa:
		f.Interrupt = false
	case 0xfb:
		f.Interrupt = true
	case 0xfc:
		f.Direction = false
	case 0xfd:
		f.Direction = true

	case 0xfe:
		return mc.group4()

	case 0xff:
		return mc.group5()

	default:
		panic("cpu: unhandled opcode")
	}

	return jump, outcome
}

// in reads from the port into AL or AX
func (mc *CPU) in(port uint16) {
	if mc.instr.Word {
		mc.regs.Set16(registers.AX, mc.biuIOReadU16(port))
		return
	}
	mc.regs.Set8(registers.AL, mc.biuIOReadU8(port))
}

// out writes AL or AX to the port
func (mc *CPU) out(port uint16) {
	if mc.instr.Word {
		mc.biuIOWriteU16(port, mc.regs.AX())
		return
	}
	mc.biuIOWriteU8(port, mc.regs.Get8(registers.AL))
}
