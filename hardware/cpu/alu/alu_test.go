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

package alu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/alu"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/test"
)

func TestAdd(t *testing.T) {
	var f registers.Flags

	r := alu.Math(&f, alu.ADD, 0x7f, 0x01, false)
	test.ExpectEquality(t, r, 0x80)
	test.ExpectSuccess(t, f.Overflow)
	test.ExpectSuccess(t, f.Sign)
	test.ExpectSuccess(t, f.AuxCarry)
	test.ExpectFailure(t, f.Carry)

	r = alu.Math(&f, alu.ADD, 0xff, 0x01, false)
	test.ExpectEquality(t, r, 0x00)
	test.ExpectSuccess(t, f.Carry)
	test.ExpectSuccess(t, f.Zero)
	test.ExpectSuccess(t, f.Parity)
	test.ExpectFailure(t, f.Overflow)

	r = alu.Math(&f, alu.ADD, 0xffff, 0x0001, true)
	test.ExpectEquality(t, r, 0x0000)
	test.ExpectSuccess(t, f.Carry)

	// adc uses the carry from the previous operation
	r = alu.Math(&f, alu.ADC, 0x1000, 0x0001, true)
	test.ExpectEquality(t, r, 0x1002)
	test.ExpectFailure(t, f.Carry)
}

func TestSub(t *testing.T) {
	var f registers.Flags

	r := alu.Math(&f, alu.SUB, 0x00, 0x01, false)
	test.ExpectEquality(t, r, 0xff)
	test.ExpectSuccess(t, f.Carry)
	test.ExpectSuccess(t, f.Sign)
	test.ExpectSuccess(t, f.AuxCarry)

	r = alu.Math(&f, alu.SUB, 0x8000, 0x0001, true)
	test.ExpectEquality(t, r, 0x7fff)
	test.ExpectSuccess(t, f.Overflow)
	test.ExpectFailure(t, f.Carry)

	// sbb with the borrow set
	f.Carry = true
	r = alu.Math(&f, alu.SBB, 0x10, 0x0f, false)
	test.ExpectEquality(t, r, 0x00)
	test.ExpectSuccess(t, f.Zero)
	test.ExpectFailure(t, f.Carry)

	// cmp does not change the destination
	r = alu.Math(&f, alu.CMP, 0x05, 0x06, false)
	test.ExpectEquality(t, r, 0x05)
	test.ExpectSuccess(t, f.Carry)
}

func TestIncDec(t *testing.T) {
	var f registers.Flags

	// carry is preserved
	f.Carry = true
	r := alu.Math(&f, alu.INC, 0x7fff, 0, true)
	test.ExpectEquality(t, r, 0x8000)
	test.ExpectSuccess(t, f.Overflow)
	test.ExpectSuccess(t, f.Carry)

	f.Carry = false
	r = alu.Math(&f, alu.DEC, 0x00, 0, false)
	test.ExpectEquality(t, r, 0xff)
	test.ExpectFailure(t, f.Carry)
}

func TestNeg(t *testing.T) {
	var f registers.Flags

	r := alu.Math(&f, alu.NEG, 0x01, 0, false)
	test.ExpectEquality(t, r, 0xff)
	test.ExpectSuccess(t, f.Carry)

	r = alu.Math(&f, alu.NEG, 0x00, 0, false)
	test.ExpectEquality(t, r, 0x00)
	test.ExpectFailure(t, f.Carry)

	r = alu.Math(&f, alu.NEG, 0x80, 0, false)
	test.ExpectEquality(t, r, 0x80)
	test.ExpectSuccess(t, f.Overflow)
}

func TestLogic(t *testing.T) {
	var f registers.Flags
	f.Carry = true
	f.Overflow = true
	f.AuxCarry = true

	r := alu.Math(&f, alu.AND, 0xf0, 0x0f, false)
	test.ExpectEquality(t, r, 0x00)
	test.ExpectSuccess(t, f.Zero)
	test.ExpectFailure(t, f.Carry)
	test.ExpectFailure(t, f.Overflow)
	test.ExpectFailure(t, f.AuxCarry)

	r = alu.Math(&f, alu.TEST, 0x80, 0x80, false)
	test.ExpectEquality(t, r, 0x80)
	test.ExpectSuccess(t, f.Sign)

	// not changes no flags
	f.Zero = true
	r = alu.Math(&f, alu.NOT, 0x00ff, 0, true)
	test.ExpectEquality(t, r, 0xff00)
	test.ExpectSuccess(t, f.Zero)
}

func TestShift(t *testing.T) {
	var f registers.Flags

	r := alu.Shift(&f, alu.SHL, 0x80, 1, false)
	test.ExpectEquality(t, r, 0x00)
	test.ExpectSuccess(t, f.Carry)
	test.ExpectSuccess(t, f.Overflow)
	test.ExpectSuccess(t, f.Zero)

	r = alu.Shift(&f, alu.SHR, 0x80, 7, false)
	test.ExpectEquality(t, r, 0x01)
	test.ExpectFailure(t, f.Carry)
	test.ExpectFailure(t, f.Overflow)

	r = alu.Shift(&f, alu.SHR, 0x04, 3, false)
	test.ExpectEquality(t, r, 0x00)
	test.ExpectSuccess(t, f.Carry)

	r = alu.Shift(&f, alu.SAR, 0x80, 3, false)
	test.ExpectEquality(t, r, 0xf0)
	r = alu.Shift(&f, alu.SAR, 0x8001, 1, true)
	test.ExpectEquality(t, r, 0xc000)
	test.ExpectSuccess(t, f.Carry)

	// zero count leaves everything alone
	f.Carry = true
	r = alu.Shift(&f, alu.SHR, 0x55, 0, false)
	test.ExpectEquality(t, r, 0x55)
	test.ExpectSuccess(t, f.Carry)
}

func TestRotate(t *testing.T) {
	var f registers.Flags

	r := alu.Shift(&f, alu.ROR, 0xaa, 8, false)
	test.ExpectEquality(t, r, 0xaa)
	test.ExpectSuccess(t, f.Carry)

	r = alu.Shift(&f, alu.ROR, 0x01, 1, false)
	test.ExpectEquality(t, r, 0x80)
	test.ExpectSuccess(t, f.Carry)

	f.Carry = false
	r = alu.Shift(&f, alu.RCL, 0x80, 2, false)
	test.ExpectEquality(t, r, 0x01)
	test.ExpectFailure(t, f.Carry)

	f.Carry = false
	r = alu.Shift(&f, alu.RCL, 0xdead, 17, true)
	test.ExpectEquality(t, r, 0xdead)
	test.ExpectFailure(t, f.Carry)

	f.Carry = true
	r = alu.Shift(&f, alu.RCR, 0x04, 1, false)
	test.ExpectEquality(t, r, 0x82)
	test.ExpectFailure(t, f.Carry)
	test.ExpectSuccess(t, f.Overflow)

	f.Carry = false
	r = alu.Shift(&f, alu.RCR, 0x80, 1, false)
	test.ExpectEquality(t, r, 0x40)
	test.ExpectSuccess(t, f.Overflow)
}

func TestSetmo(t *testing.T) {
	var f registers.Flags
	f.Carry = true
	r := alu.Shift(&f, alu.SETMO, 0x12, 1, false)
	test.ExpectEquality(t, r, 0xff)
	test.ExpectFailure(t, f.Carry)
	test.ExpectSuccess(t, f.Sign)
	r = alu.Shift(&f, alu.SETMO, 0x1234, 1, true)
	test.ExpectEquality(t, r, 0xffff)
}

func TestBCD(t *testing.T) {
	var f registers.Flags

	// 0x19 + 0x28 = 0x41, adjusted to 0x47
	al := uint8(alu.Math(&f, alu.ADD, 0x19, 0x28, false))
	al = alu.DAA(&f, al)
	test.ExpectEquality(t, al, 0x47)
	test.ExpectFailure(t, f.Carry)

	// 0x47 - 0x19 = 0x2e, adjusted to 0x28
	al = uint8(alu.Math(&f, alu.SUB, 0x47, 0x19, false))
	al = alu.DAS(&f, al)
	test.ExpectEquality(t, al, 0x28)

	// 9 + 5 = 0x0e, unpacked adjust gives 0x0104
	ax, adjusted := alu.AAA(&f, 0x000e)
	test.ExpectEquality(t, ax, 0x0104)
	test.ExpectSuccess(t, adjusted)
	test.ExpectSuccess(t, f.Carry)

	f.AuxCarry = false
	ax, adjusted = alu.AAS(&f, 0x0105)
	test.ExpectEquality(t, ax, 0x0105)
	test.ExpectFailure(t, adjusted)
}
