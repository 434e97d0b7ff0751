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

import "github.com/jetsetilly/gopher8088/hardware/cpu/registers"

// the undefined flags of the BCD adjust instructions are documented here as
// they are observed on real hardware

// DAA adjusts AL after a packed BCD addition.
func DAA(f *registers.Flags, al uint8) uint8 {
	oldCF := f.Carry
	oldAL := al

	var alCheck uint8 = 0x99
	if f.AuxCarry {
		alCheck = 0x9f
	}

	f.Overflow = false
	if oldCF {
		f.Overflow = al >= 0x1a && al <= 0x7f
	} else {
		f.Overflow = al >= 0x7a && al <= 0x7f
	}

	if al&0x0f > 9 || f.AuxCarry {
		al += 6
		f.AuxCarry = true
	} else {
		f.AuxCarry = false
	}

	if oldAL > alCheck || oldCF {
		al += 0x60
		f.Carry = true
	} else {
		f.Carry = false
	}

	f.SetSZP(uint16(al), false)
	return al
}

// DAS adjusts AL after a packed BCD subtraction.
func DAS(f *registers.Flags, al uint8) uint8 {
	oldCF := f.Carry
	oldAF := f.AuxCarry
	oldAL := al

	var alCheck uint8 = 0x99
	if oldAF {
		alCheck = 0x9f
	}

	switch {
	case !oldAF && !oldCF:
		f.Overflow = al >= 0x9a && al <= 0xdf
	case oldAF && !oldCF:
		f.Overflow = (al >= 0x80 && al <= 0x85) || (al >= 0xa0 && al <= 0xe5)
	case !oldAF && oldCF:
		f.Overflow = al >= 0x80 && al <= 0xdf
	default:
		f.Overflow = al >= 0x80 && al <= 0xe5
	}

	if al&0x0f > 9 || oldAF {
		al -= 6
		f.AuxCarry = true
	} else {
		f.AuxCarry = false
	}

	if oldAL > alCheck || oldCF {
		al -= 0x60
		f.Carry = true
	} else {
		f.Carry = false
	}

	f.SetSZP(uint16(al), false)
	return al
}

// AAA adjusts AX after an unpacked BCD addition. Returns the new value of AX
// and whether an adjustment was made.
func AAA(f *registers.Flags, ax uint16) (uint16, bool) {
	al := uint8(ax)
	ah := uint8(ax >> 8)
	oldAL := al

	var newAL uint8
	adjust := al&0x0f > 9 || f.AuxCarry
	if adjust {
		ah++
		newAL = al + 6
		al = newAL & 0x0f
		f.AuxCarry = true
		f.Carry = true
	} else {
		newAL = al
		al &= 0x0f
		f.AuxCarry = false
		f.Carry = false
	}

	f.Zero = newAL == 0
	f.Overflow = oldAL >= 0x7a && oldAL <= 0x7f
	f.Sign = oldAL >= 0x7a && oldAL <= 0xf9
	f.Parity = registers.Parity(newAL)

	return uint16(ah)<<8 | uint16(al), adjust
}

// AAS adjusts AX after an unpacked BCD subtraction. Returns the new value of
// AX and whether an adjustment was made.
func AAS(f *registers.Flags, ax uint16) (uint16, bool) {
	al := uint8(ax)
	ah := uint8(ax >> 8)
	oldAL := al
	oldAF := f.AuxCarry

	var newAL uint8
	adjust := al&0x0f > 9 || oldAF
	if adjust {
		newAL = al - 6
		ah--
		al = newAL & 0x0f
		f.AuxCarry = true
		f.Carry = true
	} else {
		newAL = al
		al &= 0x0f
		f.AuxCarry = false
		f.Carry = false
	}

	f.Zero = newAL == 0
	f.Overflow = oldAF && oldAL >= 0x80 && oldAL <= 0x85
	f.Sign = (!oldAF && oldAL >= 0x80) || (oldAF && (oldAL <= 0x05 || oldAL >= 0x86))
	f.Parity = registers.Parity(newAL)

	return uint16(ah)<<8 | uint16(al), adjust
}
