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
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// the multiply and divide instructions are implemented by the CORX and CORD
// microcode co-routines. the routines work on the internal tmpa, tmpb and
// tmpc registers and the width of the operation decides which bit is shifted
// out by the rotate steps. some intermediate values are always sixteen bits
// wide, even for byte operations, and the flag results depend on that

type muldivWidth struct {
	bits uint
	mask uint16
	sign uint16
}

var (
	width8  = muldivWidth{bits: 8, mask: 0x00ff, sign: 0x0080}
	width16 = muldivWidth{bits: 16, mask: 0xffff, sign: 0x8000}
)

func widthOf(word bool) muldivWidth {
	if word {
		return width16
	}
	return width8
}

func (w muldivWidth) word() bool {
	return w.bits == 16
}

// rcl rotates v left through carry by one bit
func (w muldivWidth) rcl(v uint16, carry bool) (uint16, bool) {
	v &= w.mask
	out := v&w.sign != 0
	r := (v << 1) & w.mask
	if carry {
		r |= 1
	}
	return r, out
}

// rcr rotates v right through carry by one bit
func (w muldivWidth) rcr(v uint16, carry bool) (uint16, bool) {
	v &= w.mask
	out := v&1 != 0
	r := v >> 1
	if carry {
		r |= w.sign
	}
	return r, out
}

func (w muldivWidth) sub(a, b uint16) (uint16, bool, bool, bool) {
	return alu.Sub(a, b, false, w.word())
}

func (w muldivWidth) add(a, b uint16) (uint16, bool) {
	r, cf, _, _ := alu.Add(a, b, false, w.word())
	return r, cf
}

// neg16 is the sixteen bit NEG used on tmp registers regardless of the
// operation width. carry is set for any non-zero operand
func neg16(v uint16) (uint16, bool) {
	return -v, v != 0
}

func (mc *CPU) setSubFlags(r uint16, cf, of, af bool, word bool) {
	f := &mc.regs.Flags
	f.AuxCarry = af
	f.Overflow = of
	f.Carry = cf
	f.SetSZP(r, word)
}

// corx is the multiplication co-routine. returns the high and low halves of
// the product in tmpa and tmpc
func (mc *CPU) corx(w muldivWidth, tmpb, tmpc uint16, carry bool) (uint16, uint16) {
	var tmpa uint16

	tmpc, carry = w.rcr(tmpc, carry)
	counter := w.bits - 1
	mc.cyclesI(0x17f, 0x180)

	for {
		mc.cycleI(0x181)
		if carry {
			tmpa, carry = w.add(tmpa, tmpb)
			mc.cyclesI(0x182, 0x183)
		} else {
			mc.cycleI(microcode.Jump)
		}

		tmpa, carry = w.rcr(tmpa, carry)
		tmpc, carry = w.rcr(tmpc, carry)
		mc.cyclesI(0x184, 0x185, 0x186)

		if counter == 0 {
			break
		}
		counter--
		mc.cycleI(microcode.Jump)
	}

	mc.cyclesI(0x187, microcode.Return)
	return tmpa, tmpc
}

// cord is the division co-routine. returns the quotient and remainder and
// the final state of the carry. ok is false if the quotient would not fit
func (mc *CPU) cord(w muldivWidth, tmpa, tmpb, tmpc uint16) (quotient uint16, remainder uint16, carry bool, ok bool) {
	word := mc.instr.Word

	sigma, carry, of, af := w.sub(tmpa, tmpb)
	counter := w.bits
	mc.setSubFlags(sigma, carry, of, af, word)
	mc.cyclesI(0x188, 0x189, 0x18a)

	if !carry {
		mc.cycleI(microcode.Jump)
		return 0, 0, false, false
	}

	for counter > 0 {
		tmpc, carry = w.rcl(tmpc, carry)
		tmpa, carry = w.rcl(tmpa, carry)
		mc.cyclesI(0x18b, 0x18c, 0x18d, 0x18e)

		if carry {
			mc.cyclesI(microcode.Jump, 0x195, 0x196)
			carry = false
			tmpa, _, _, _ = w.sub(tmpa, tmpb)
			counter--
			if counter > 0 {
				mc.cycleI(microcode.Jump)
				continue
			}
			mc.cyclesI(0x197, microcode.Jump)
			continue
		}

		sigma, carry, of, af = w.sub(tmpa, tmpb)
		mc.setSubFlags(sigma, carry, of, af, word)
		mc.cyclesI(0x18f, 0x190)

		if !carry {
			mc.cyclesI(microcode.Jump, 0x196)
			tmpa, _, _, _ = w.sub(tmpa, tmpb)
			counter--
			if counter > 0 {
				mc.cycleI(microcode.Jump)
				continue
			}
			mc.cyclesI(0x197, microcode.Jump)
			continue
		}

		mc.cycleI(0x191)
		counter--
		if counter > 0 {
			mc.cycleI(microcode.Jump)
		}
	}

	tmpc, carry = w.rcl(tmpc, carry)
	_, carry = w.rcl(tmpc, carry)
	mc.regs.Flags.Carry = carry
	mc.cyclesI(0x192, 0x193, 0x194, microcode.Return)

	return tmpc, tmpa, carry, true
}

// corNegate is the NEGATE co-routine used by the signed operations. skip
// enters the routine at the test of tmpb
func (mc *CPU) corNegate(w muldivWidth, tmpa, tmpb, tmpc uint16, negate bool, skip bool) (uint16, uint16, uint16, bool, bool) {
	if !skip {
		var carry bool
		tmpc, carry = neg16(tmpc)
		if carry {
			tmpa = ^tmpa
			mc.cyclesI(0x1b6, 0x1b7, 0x1b8, microcode.Jump, 0x1ba)
		} else {
			tmpa, _ = neg16(tmpa)
			mc.cyclesI(0x1b6, 0x1b7, 0x1b8, 0x1b9, 0x1ba)
		}
		negate = !negate
	}

	carry := tmpb&w.sign != 0
	mc.regs.Flags.Carry = carry
	sigma, _ := neg16(tmpb)
	mc.cyclesI(0x1bb, 0x1bc, 0x1bd)

	if !carry {
		mc.cyclesI(microcode.Jump, 0x1bf, microcode.Return)
	} else {
		tmpb = sigma
		negate = !negate
		mc.cyclesI(0x1be, microcode.Return)
	}

	return tmpa, tmpb, tmpc, carry, negate
}

// preIdiv tests the sign of the dividend before a signed division
func (mc *CPU) preIdiv(w muldivWidth, tmpa, tmpb, tmpc uint16, negate bool) (uint16, uint16, uint16, bool, bool) {
	_, carry := w.rcl(tmpa, false)
	mc.cyclesI(0x1b4, 0x1b5)
	if !carry {
		mc.cycleI(microcode.Jump)
		return mc.corNegate(w, tmpa, tmpb, tmpc, negate, true)
	}
	return mc.corNegate(w, tmpa, tmpb, tmpc, negate, false)
}

// postIdiv corrects the sign of the remainder and quotient after a signed
// division. ok is false if the quotient overflowed
func (mc *CPU) postIdiv(w muldivWidth, tmpa, tmpb, tmpc uint16, carry bool, negate bool) (uint16, uint16, bool) {
	mc.cycleI(0x1c4)
	if !carry {
		mc.cycleI(microcode.Jump)
		return 0, 0, false
	}

	_, carry = w.rcl(tmpb, false)
	sigma, _ := neg16(tmpa)
	mc.cyclesI(0x1c5, 0x1c6, 0x1c7)

	if !carry {
		mc.cycleI(microcode.Jump)
	} else {
		tmpa = sigma
		mc.cycleI(0x1c8)
	}

	sigma = tmpc + 1
	mc.cyclesI(0x1c9, 0x1ca)
	if !negate {
		sigma = ^tmpc
		mc.cycleI(0x1cb)
	} else {
		mc.cycleI(microcode.Jump)
	}

	mc.regs.Flags.Carry = false
	mc.regs.Flags.Overflow = false
	mc.cyclesI(0x1cc, microcode.Return)

	return tmpa, sigma, true
}

// the tail of the multiplication routines. CF and OF are set if the high
// half of the product is significant
func (mc *CPU) mulcof(sigma uint16) {
	f := &mc.regs.Flags
	if sigma == 0 {
		f.Carry = false
		f.Overflow = false
		mc.cyclesI(0x1d0, microcode.Jump, 0x1cc, microcode.Jump)
	} else {
		f.Carry = true
		f.Overflow = true
		mc.cyclesI(0x1d0, 0x1d1, microcode.Jump)
	}
}

// mul multiplies the accumulator by the operand. for byte operations the
// accumulator is AL and the product is returned as the single value in
// lo. for word operations hi and lo are the values for DX and AX
func (mc *CPU) mul(acc uint16, operand uint16, word bool, signed bool, negate bool) (hi uint16, lo uint16) {
	w := widthOf(word)

	tmpc := acc & w.mask
	carry := tmpc&w.sign != 0
	tmpb := operand & w.mask
	if word {
		mc.cyclesI(0x158, 0x159)
	} else {
		mc.cyclesI(0x150, 0x151)
	}

	if signed {
		sigma, _ := neg16(tmpc)
		mc.cyclesI(microcode.Jump, 0x1c0, 0x1c1)
		if carry {
			tmpc = sigma
			negate = !negate
			mc.cyclesI(0x1c2, 0x1c3, microcode.Jump)
		} else {
			mc.cycleI(microcode.Jump)
		}
		_, tmpb, tmpc, carry, negate = mc.corNegate(w, 0, tmpb, tmpc, negate, true)
	}

	if word {
		mc.cyclesI(0x15a, microcode.Jump)
	} else {
		mc.cyclesI(0x152, microcode.Jump)
	}
	tmpa, tmpc := mc.corx(w, tmpb, tmpc, carry)

	if word {
		mc.cycleI(0x15b)
	} else {
		mc.cycleI(0x153)
	}

	if negate {
		mc.cycleI(microcode.Jump)
		tmpa, _, tmpc, _, _ = mc.corNegate(w, tmpa, tmpb, tmpc, negate, false)
	}

	if word {
		mc.cycleI(0x15c)
	} else {
		mc.cycleI(0x154)
	}

	final := uint16(0x155)
	if word {
		final = 0x15d
	}

	if signed {
		// IMULCOF. the add is always sixteen bits wide
		mc.cycleI(microcode.Jump)
		carry = tmpc&w.sign != 0
		sigma, _, _, af := alu.Add(tmpa, 0, carry, true)
		mc.cyclesI(0x1cd, 0x1ce, 0x1cf)
		mc.regs.Flags.AuxCarry = af
		mc.regs.Flags.SetSZP(sigma, true)
		mc.mulcof(sigma)
		mc.cyclesI(final, microcode.Jump)
	} else {
		mc.cyclesI(final, final+1, microcode.Jump, 0x1d2, 0x1d3, microcode.Jump)
		mc.mulcof(tmpa)
	}

	if word {
		return tmpa, tmpc
	}
	return 0, tmpa<<8 | tmpc&0xff
}

// div divides the dividend by the operand. for byte operations the
// dividend is AX and the divisor is eight bits. for word operations the
// dividend is DX:AX. ok is false on a divide error
func (mc *CPU) div(dividend uint32, divisor uint16, word bool, signed bool, negate bool) (quotient uint16, remainder uint16, ok bool) {
	w := widthOf(word)

	var tmpa, tmpb, tmpc, hi uint16
	if word {
		hi = uint16(dividend >> 16)
		tmpa = hi
		tmpc = uint16(dividend)
		tmpb = divisor
		mc.cyclesI(0x168, 0x169, 0x16a)
	} else {
		hi = uint16(dividend>>8) & 0xff
		tmpa = hi
		tmpc = uint16(dividend) & 0xff
		tmpb = divisor & 0xff
		mc.cyclesI(0x160, 0x161, 0x162)
	}

	if signed {
		mc.cycleI(microcode.Jump)
		tmpa, tmpb, tmpc, _, negate = mc.preIdiv(w, tmpa, tmpb, tmpc, negate)
	}

	if word {
		mc.cyclesI(0x16b, microcode.Jump)
	} else {
		mc.cyclesI(0x163, microcode.Jump)
	}

	tmpc, tmpa, carry, ok := mc.cord(w, tmpa, tmpb, tmpc)
	if !ok {
		return 0, 0, false
	}

	sigma := ^tmpc
	tmpb = hi

	if word {
		mc.cyclesI(0x16c, 0x16d)
	} else {
		mc.cyclesI(0x164, 0x165)
	}

	if signed {
		mc.cycleI(microcode.Jump)
		tmpa, sigma, ok = mc.postIdiv(w, tmpa, tmpb, tmpc, carry, negate)
		if !ok {
			return 0, 0, false
		}
	}

	return sigma & w.mask, tmpa & w.mask, true
}

// aam divides AL by the immediate. returns false on a divide error
func (mc *CPU) aam(imm uint8) bool {
	mc.cyclesI(0x175, 0x176, microcode.Jump)

	q, r, _, ok := mc.cord(width8, 0, uint16(imm), uint16(mc.regs.Get8(registers.AL)))
	if !ok {
		return false
	}

	mc.regs.Set8(registers.AH, ^uint8(q))
	mc.regs.Set8(registers.AL, uint8(r))
	mc.cycleI(0x177)
	mc.regs.Flags.SetSZP(uint16(mc.regs.Get8(registers.AL)), false)
	return true
}

// aad multiplies AH by the immediate and adds the product to AL
func (mc *CPU) aad(imm uint8) {
	mc.cyclesI(0x170, 0x171, microcode.Jump)
	_, product := mc.corx(width8, uint16(mc.regs.Get8(registers.AH)), uint16(imm), false)

	mc.regs.Set8(registers.AL, mc.regs.Get8(registers.AL)+uint8(product))
	mc.regs.Set8(registers.AH, 0)
	mc.cyclesI(0x172, 0x173)
	mc.regs.Flags.SetSZP(uint16(mc.regs.Get8(registers.AL)), false)
}
