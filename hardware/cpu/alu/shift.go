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

// ShiftOp is a rotate or shift operation. The values are in the order used
// by the reg field of the 0xd0 to 0xd3 group opcodes.
type ShiftOp int

// List of rotate and shift operations. SETMO is the undocumented operation
// at reg field 6.
const (
	ROL ShiftOp = iota
	ROR
	RCL
	RCR
	SHL
	SHR
	SETMO
	SAR
)

var shiftNames = [...]string{"ROL", "ROR", "RCL", "RCR", "SHL", "SHR", "SETMO", "SAR"}

func (op ShiftOp) String() string {
	if int(op) < len(shiftNames) {
		return shiftNames[op]
	}
	return fmt.Sprintf("shift(%d)", int(op))
}

// Shift performs the rotate or shift operation count times and updates the
// flags. A count of zero returns the operand unchanged and leaves the flags
// alone.
//
// The operation is iterative. The count is not masked; the caller should
// mask the count on CPUs that do so.
func Shift(f *registers.Flags, op ShiftOp, a uint16, count uint8, word bool) uint16 {
	mask32, sign32 := widths(word)
	mask := uint16(mask32)
	sign := uint16(sign32)
	a &= mask

	if count == 0 {
		return a
	}

	r := a
	cf := f.Carry

	switch op {
	case ROL:
		for i := uint8(0); i < count; i++ {
			cf = r&sign == sign
			r = (r << 1) & mask
			if cf {
				r |= 1
			}
		}
		f.Carry = cf
		f.Overflow = (r&sign == sign) != cf
		return r

	case ROR:
		for i := uint8(0); i < count; i++ {
			cf = r&1 == 1
			r >>= 1
			if cf {
				r |= sign
			}
		}
		f.Carry = cf
		f.Overflow = (r&sign == sign) != (r&(sign>>1) == sign>>1)
		return r

	case RCL:
		for i := uint8(0); i < count; i++ {
			out := r&sign == sign
			r = (r << 1) & mask
			if cf {
				r |= 1
			}
			cf = out
		}
		f.Carry = cf
		f.Overflow = (r&sign == sign) != cf
		return r

	case RCR:
		for i := uint8(0); i < count; i++ {
			out := r&1 == 1
			r >>= 1
			if cf {
				r |= sign
			}
			cf = out
		}
		f.Carry = cf
		f.Overflow = (r&sign == sign) != (r&(sign>>1) == sign>>1)
		return r

	case SHL:
		for i := uint8(0); i < count; i++ {
			cf = r&sign == sign
			r = (r << 1) & mask
		}
		f.Carry = cf
		f.Overflow = (r&sign == sign) != cf
		f.AuxCarry = r&0x10 == 0x10
		f.SetSZP(r, word)
		return r

	case SHR:
		for i := uint8(0); i < count; i++ {
			cf = r&1 == 1
			r >>= 1
		}
		f.Carry = cf
		f.Overflow = count == 1 && a&sign == sign
		f.AuxCarry = false
		f.SetSZP(r, word)
		return r

	case SAR:
		for i := uint8(0); i < count; i++ {
			cf = r&1 == 1
			r = (r >> 1) | (r & sign)
		}
		f.Carry = cf
		f.Overflow = false
		f.AuxCarry = false
		f.SetSZP(r, word)
		return r

	case SETMO:
		f.Carry, f.Overflow, f.AuxCarry = false, false, false
		f.SetSZP(mask, word)
		return mask
	}

	panic(fmt.Sprintf("alu: unsupported shift %s", op))
}
