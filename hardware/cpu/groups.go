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

// shift runs the D0 to D3 rotate and shift group
func (mc *CPU) shift(opcode uint8) {
	ins := &mc.instr
	op1 := ins.Operand1
	memory := op1.Kind == instructions.KindMemory

	if ins.Mnemonic == instructions.SETMO || ins.Mnemonic == instructions.SETMOC {
		mc.quirk = execution.SetMinusOne
	}

	v := mc.readOperand(op1)

	count := uint8(1)
	if opcode >= 0xd2 {
		count = mc.regs.Get8(registers.CL)
		if mc.model.nec() {
			count &= 0x1f
		}
		mc.cyclesI(0x08c, 0x08d, 0x08e, microcode.Jump, 0x090, 0x091)
		for i := uint8(0); i < count; i++ {
			mc.cyclesI(microcode.Jump, 0x08f, 0x090, 0x091)
		}
		if memory {
			mc.cycleI(0x092)
		}
	} else if memory {
		mc.cyclesI(0x088, 0x089)
	}

	op := shiftOps[ins.Mnemonic]
	v = mc.shiftValue(op, v, count)
	mc.writeOperand(op1, v)
}

func (mc *CPU) shiftValue(op alu.ShiftOp, v uint16, count uint8) uint16 {
	return alu.Shift(&mc.regs.Flags, op, v, count, mc.instr.Word)
}

// group3 runs the F6 and F7 group: TEST, NOT, NEG and the multiply and
// divide instructions
func (mc *CPU) group3() (jump bool, outcome execution.Outcome) {
	ins := &mc.instr
	r := &mc.regs
	f := &mc.regs.Flags
	op1 := ins.Operand1
	memory := op1.Kind == instructions.KindMemory
	outcome = execution.Okay

	negate := ins.Rep()
	if negate && ins.Mnemonic.IsMulDiv() {
		mc.quirk = execution.RepNegate
	}

	divideError := func() {
		f.SetSZP(uint16(r.Get8(registers.AH)), false)
		f.AuxCarry = false
		f.Carry = false
		f.Overflow = false
		mc.int0()
		jump = true
		outcome = execution.DivideError
	}

	switch ins.Mnemonic {
	case instructions.TEST:
		a := mc.readOperand(op1)
		b := mc.readOperand(ins.Operand2)
		if ins.Word {
			mc.cycleI(0x09a)
		} else {
			mc.cyclesI(microcode.Jump, 0x09a)
		}
		mc.math(a, b)

	case instructions.NOT:
		a := mc.readOperand(op1)
		if memory {
			mc.cyclesI(0x04c, 0x04d)
		} else {
			mc.cycleI(0x04c)
		}
		mc.writeOperand(op1, mc.math(a, 0))

	case instructions.NEG:
		a := mc.readOperand(op1)
		if memory {
			mc.cyclesI(0x050, 0x051)
		} else {
			mc.cycleI(0x050)
		}
		mc.writeOperand(op1, mc.math(a, 0))

	case instructions.MUL, instructions.IMUL:
		signed := ins.Mnemonic == instructions.IMUL
		v := mc.readOperand(op1)
		if !ins.Word {
			_, lo := mc.mul(uint16(r.Get8(registers.AL)), v, false, signed, negate)
			r.Set16(registers.AX, lo)
			if !memory {
				mc.cycle()
			}
			if !signed {
				f.AuxCarry = false
				f.SetSZP(uint16(r.Get8(registers.AH)), false)
			}
			break
		}
		hi, lo := mc.mul(r.AX(), v, true, signed, negate)
		if !memory {
			mc.cycle()
		}
		r.Set16(registers.DX, hi)
		r.Set16(registers.AX, lo)
		if !signed {
			f.AuxCarry = false
			f.SetSZP(hi, true)
		}

	case instructions.DIV, instructions.IDIV:
		signed := ins.Mnemonic == instructions.IDIV
		v := mc.readOperand(op1)
		if !memory {
			mc.cycle()
		}
		if !ins.Word {
			q, rem, ok := mc.div(uint32(r.AX()), v, false, signed, negate)
			if !ok {
				divideError()
				break
			}
			r.Set8(registers.AL, uint8(q))
			r.Set8(registers.AH, uint8(rem))
			break
		}
		dividend := uint32(r.DX())<<16 | uint32(r.AX())
		q, rem, ok := mc.div(dividend, v, true, signed, negate)
		if !ok {
			divideError()
			break
		}
		r.Set16(registers.AX, q)
		r.Set16(registers.DX, rem)

	default:
		panic("cpu: unexpected mnemonic in F6/F7 group")
	}

	return jump, outcome
}

// incdec runs INC and DEC on a ModR/M operand
func (mc *CPU) incdec() {
	op1 := mc.instr.Operand1
	v := mc.math(mc.readOperand(op1), 0)
	mc.cycleI(0x020)
	if op1.Kind == instructions.KindMemory {
		mc.cycleI(0x021)
	}
	mc.writeOperand(op1, v)
}

// group5 runs the FF group
func (mc *CPU) group5() (jump bool, outcome execution.Outcome) {
	ins := &mc.instr
	r := &mc.regs
	op1 := ins.Operand1
	memory := op1.Kind == instructions.KindMemory
	outcome = execution.Okay

	switch ins.Mnemonic {
	case instructions.INC, instructions.DEC:
		mc.incdec()

	case instructions.CALL:
		if memory {
			ptr := mc.read16(op1)
			mc.biuFetchSuspend()
			mc.cyclesI(0x074, 0x075, microcode.Correct, 0x076)
			ret := mc.IP()
			mc.pc = ptr
			mc.biuQueueFlush()
			mc.cyclesI(0x077, 0x078, 0x079)
			mc.pushU16(ret)
		} else {
			ptr := mc.read16(op1)
			mc.cycle()
			mc.biuFetchSuspend()
			mc.cyclesI(0x074, 0x075)
			mc.corr()
			mc.cycleI(0x076)
			next := mc.pc
			mc.pc = ptr
			mc.biuQueueFlush()
			mc.cyclesI(0x077, 0x078, 0x079)
			mc.pushU16(next)
		}
		jump = true

	case instructions.CALLF:
		if memory {
			mc.cycleI(0x068)
			seg, offset := mc.readFarPointer(op1)
			mc.farcall(seg, offset, true)
		} else {
			mc.quirk = execution.RegisterFarPtr
			segment := mc.biuReadU16(ins.Segment(registers.DS), 0x0004)
			mc.cycleI(0x06a)
			mc.biuFetchSuspend()
			mc.cyclesI(0x06b, 0x06c)
			mc.corr()
			mc.pushSegment(registers.CS)
			next := mc.pc
			r.SetSeg(registers.CS, segment)
			mc.cyclesI(0x06e, 0x06f, microcode.Jump)
			mc.biuQueueFlush()
			mc.cyclesI(0x077, 0x078, 0x079)
			mc.pushU16(next)
		}
		jump = true

	case instructions.JMP:
		ptr := mc.read16(op1)
		if !memory {
			mc.cycle()
		}
		mc.biuFetchSuspend()
		mc.cycleI(0x0d8)
		mc.pc = ptr
		mc.biuQueueFlush()
		jump = true

	case instructions.JMPF:
		if memory {
			mc.cycleI(0x0dc)
			mc.biuFetchSuspend()
			mc.cycleI(0x0dd)
			seg, offset := mc.readFarPointer(op1)
			r.SetSeg(registers.CS, seg)
			mc.pc = offset
			mc.biuQueueFlush()
		} else {
			mc.quirk = execution.RegisterFarPtr
			mc.cycle()
			mc.biuFetchSuspend()
			mc.cycle()
			r.SetSeg(registers.CS, mc.biuReadU16(ins.Segment(registers.DS), 0x0004))
			mc.biuQueueFlush()
		}
		jump = true

	case instructions.PUSH:
		v := mc.read16(op1)
		mc.cyclesI(0x024, 0x025, 0x026)
		if op1.Kind == instructions.KindRegister16 && op1.Reg16 == registers.SP {
			v -= 2
		}
		mc.pushU16(v)

	default:
		panic("cpu: unexpected mnemonic in FF group")
	}

	return jump, outcome
}

// group4 runs the FE group. only INC and DEC are documented. the other
// members operate on byte values with the high byte forced to 0xff
func (mc *CPU) group4() (jump bool, outcome execution.Outcome) {
	ins := &mc.instr
	r := &mc.regs
	op1 := ins.Operand1
	memory := op1.Kind == instructions.KindMemory
	outcome = execution.Okay

	if ins.Mnemonic != instructions.INC && ins.Mnemonic != instructions.DEC {
		mc.quirk = execution.ByteFormCallJump
	}

	switch ins.Mnemonic {
	case instructions.INC, instructions.DEC:
		mc.incdec()

	case instructions.CALL:
		if memory {
			p := mc.read8(op1)
			mc.biuFetchSuspend()
			mc.cyclesI(0x074, 0x075)
			mc.corr()
			mc.cyclesI(microcode.Correct, 0x076, 0x077)
			next := mc.pc
			mc.pc = 0xff00 | uint16(p)
			mc.biuQueueFlush()
			mc.cyclesI(0x078, 0x079)
			mc.pushU8(uint8(next))
		} else {
			mc.pushU8(uint8(mc.IP()))
			mc.biuFetchSuspend()
			mc.cycles(4)
			mc.biuQueueFlush()
			mc.pc = r.Get16(reg16Of(op1))
		}
		jump = true

	case instructions.CALLF:
		if memory {
			seg, ea := mc.effectiveAddress(op1)
			offset := mc.biuReadU8(seg, ea)
			mc.cyclesI(microcode.LoadEAFinish, microcode.Return, 0x068)
			segment := mc.biuReadU8(seg, ea+2)
			mc.cycleI(0x06a)
			mc.biuFetchSuspend()
			mc.cyclesI(0x06b, 0x06c, microcode.None)
			mc.pushU8(uint8(r.CS()))
			next := mc.IP()
			r.SetSeg(registers.CS, 0xff00|uint16(segment))
			mc.pc = 0xff00 | uint16(offset)
			mc.cyclesI(0x06e, 0x06f, microcode.Jump)
			mc.biuQueueFlush()
			mc.cyclesI(0x077, 0x078, 0x079)
			mc.pushU8(uint8(next))
			jump = true
		} else {
			// the register form does not report a jump
			mc.biuReadU8(ins.Segment(registers.DS), 0x0004)
			mc.pushU8(uint8(r.CS()))
			mc.pushU8(uint8(mc.IP()))
			mc.biuFetchSuspend()
			mc.cycles(4)
			mc.biuQueueFlush()
			mc.pc = r.Get16(reg16Of(op1))
		}

	case instructions.JMP:
		ptr := mc.read16(op1)
		mc.biuFetchSuspend()
		mc.cycles(4)
		mc.biuQueueFlush()
		mc.pc = ptr
		jump = true

	case instructions.JMPF:
		if memory {
			seg, ea := mc.effectiveAddress(op1)
			offset := mc.biuReadU8(seg, ea)
			segment := mc.biuReadU8(seg, ea+2)
			mc.biuFetchSuspend()
			mc.cycles(4)
			mc.biuQueueFlush()
			r.SetSeg(registers.CS, 0xff00|uint16(segment))
			mc.pc = 0xff00 | uint16(offset)
			jump = true
		} else {
			mc.biuReadU8(ins.Segment(registers.DS), 0x0004)
			mc.biuFetchSuspend()
			mc.cycles(4)
			mc.biuQueueFlush()
			mc.pc = r.Get16(reg16Of(op1))
		}

	case instructions.PUSH:
		v := mc.read8(op1)
		mc.cyclesI(0x024, 0x025, 0x026)
		mc.pushU8(v)

	default:
		panic("cpu: unexpected mnemonic in FE group")
	}

	return jump, outcome
}
