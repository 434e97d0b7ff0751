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

package alu

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// Op is an arithmetic or logical operation. The first eight values are in
// the order used by the reg field of the 0x80 to 0x83 group opcodes and by
// bits 3 to 5 of the 0x00 to 0x3f opcodes.
type Op int

// List of arithmetic and logical operations.
const (
	ADD Op = iota
	OR
	ADC
	SBB
	AND
	SUB
	XOR
	CMP
	TEST
	INC
	DEC
	NEG
	NOT
)

var opNames = [...]string{"ADD", "OR", "ADC", "SBB", "AND", "SUB", "XOR", "CMP", "TEST", "INC", "DEC", "NEG", "NOT"}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", int(op))
}

func widths(word bool) (mask uint32, sign uint32) {
	if word {
		return 0xffff, 0x8000
	}
	return 0xff, 0x80
}

// Add returns a + b + carry and the carry, overflow and auxiliary carry
// results.
func Add(a, b uint16, carry bool, word bool) (result uint16, cf bool, of bool, af bool) {
	mask, sign := widths(word)
	x := uint32(a) & mask
	y := uint32(b) & mask
	r := x + y
	if carry {
		r++
	}
	cf = r > mask
	r &= mask
	of = (x^r)&(y^r)&sign != 0
	af = (x^y^r)&0x10 != 0
	return uint16(r), cf, of, af
}

// Sub returns a - b - borrow and the carry (borrow), overflow and auxiliary
// carry results.
func Sub(a, b uint16, borrow bool, word bool) (result uint16, cf bool, of bool, af bool) {
	mask, sign := widths(word)
	x := uint32(a) & mask
	y := uint32(b) & mask
	c := uint32(0)
	if borrow {
		c = 1
	}
	cf = x < y+c
	r := (x - y - c) & mask
	of = (x^y)&(x^r)&sign != 0
	af = (x^y^r)&0x10 != 0
	return uint16(r), cf, of, af
}

// Math performs the operation on the two operands and updates the flags.
// The value returned is the value to be written back to the destination.
// For CMP and TEST the destination is returned unchanged.
func Math(f *registers.Flags, op Op, a, b uint16, word bool) uint16 {
	mask, _ := widths(word)
	a &= uint16(mask)
	b &= uint16(mask)

	var r uint16

	switch op {
	case ADD:
		r, f.Carry, f.Overflow, f.AuxCarry = Add(a, b, false, word)
	case ADC:
		r, f.Carry, f.Overflow, f.AuxCarry = Add(a, b, f.Carry, word)
	case SUB:
		r, f.Carry, f.Overflow, f.AuxCarry = Sub(a, b, false, word)
	case SBB:
		r, f.Carry, f.Overflow, f.AuxCarry = Sub(a, b, f.Carry, word)
	case CMP:
		r, f.Carry, f.Overflow, f.AuxCarry = Sub(a, b, false, word)
		f.SetSZP(r, word)
		return a
	case NEG:
		r, _, f.Overflow, f.AuxCarry = Sub(0, a, false, word)
		f.Carry = a != 0
	case INC:
		r, _, f.Overflow, f.AuxCarry = Add(a, 1, false, word)
	case DEC:
		r, _, f.Overflow, f.AuxCarry = Sub(a, 1, false, word)
	case OR:
		r = a | b
		f.Carry, f.Overflow, f.AuxCarry = false, false, false
	case AND:
		r = a & b
		f.Carry, f.Overflow, f.AuxCarry = false, false, false
	case XOR:
		r = a ^ b
		f.Carry, f.Overflow, f.AuxCarry = false, false, false
	case TEST:
		f.Carry, f.Overflow, f.AuxCarry = false, false, false
		f.SetSZP(a&b, word)
		return a
	case NOT:
		return ^a & uint16(mask)
	default:
		panic(fmt.Sprintf("alu: unsupported operation %s", op))
	}

	f.SetSZP(r, word)
	return r
}
