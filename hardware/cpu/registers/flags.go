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

package registers

import (
	"fmt"
	"strings"
)

// Flags is the status register of the CPU.
type Flags struct {
	Carry     bool
	Parity    bool
	AuxCarry  bool
	Zero      bool
	Sign      bool
	Trap      bool
	Interrupt bool
	Direction bool
	Overflow  bool
}

// Bit positions of each flag in the 16 bit value.
const (
	CarryBit     = 0x0001
	ParityBit    = 0x0004
	AuxCarryBit  = 0x0010
	ZeroBit      = 0x0040
	SignBit      = 0x0080
	TrapBit      = 0x0100
	InterruptBit = 0x0200
	DirectionBit = 0x0400
	OverflowBit  = 0x0800
)

// the reserved bits of the 8088 flags register. bit 1 and bits 12 to 15 are
// always set, bits 3 and 5 are always clear
const (
	reservedSet  = 0xf002
	reservedMask = 0x0fd5
)

// Label returns the canonical name for the status register.
func (f Flags) Label() string {
	return "FLAGS"
}

func (f Flags) String() string {
	s := strings.Builder{}

	flg := func(b bool, r rune) {
		if b {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flg(f.Overflow, 'O')
	flg(f.Direction, 'D')
	flg(f.Interrupt, 'I')
	flg(f.Trap, 'T')
	flg(f.Sign, 'S')
	flg(f.Zero, 'Z')
	flg(f.AuxCarry, 'A')
	flg(f.Parity, 'P')
	flg(f.Carry, 'C')

	return s.String()
}

// Reset flags to the power-on state.
func (f *Flags) Reset() {
	f.FromValue(0)
}

// Value returns the flags as a 16 bit value with the reserved bits in their
// fixed state.
func (f Flags) Value() uint16 {
	var v uint16

	if f.Carry {
		v |= CarryBit
	}
	if f.Parity {
		v |= ParityBit
	}
	if f.AuxCarry {
		v |= AuxCarryBit
	}
	if f.Zero {
		v |= ZeroBit
	}
	if f.Sign {
		v |= SignBit
	}
	if f.Trap {
		v |= TrapBit
	}
	if f.Interrupt {
		v |= InterruptBit
	}
	if f.Direction {
		v |= DirectionBit
	}
	if f.Overflow {
		v |= OverflowBit
	}

	return v | reservedSet
}

// FromValue sets the flags from a 16 bit value. The reserved bits are
// ignored.
func (f *Flags) FromValue(v uint16) {
	v = (v & reservedMask) | reservedSet
	f.Carry = v&CarryBit == CarryBit
	f.Parity = v&ParityBit == ParityBit
	f.AuxCarry = v&AuxCarryBit == AuxCarryBit
	f.Zero = v&ZeroBit == ZeroBit
	f.Sign = v&SignBit == SignBit
	f.Trap = v&TrapBit == TrapBit
	f.Interrupt = v&InterruptBit == InterruptBit
	f.Direction = v&DirectionBit == DirectionBit
	f.Overflow = v&OverflowBit == OverflowBit
}

// the parity flag is set if the low byte of a result has an even number of
// bits set
var parity [256]bool

func init() {
	for i := range parity {
		n := 0
		for b := i; b != 0; b >>= 1 {
			n += b & 1
		}
		parity[i] = n%2 == 0
	}
}

// SetSZP sets the sign, zero and parity flags from a result of the
// specified width. Parity is always taken from the low byte.
func (f *Flags) SetSZP(result uint16, word bool) {
	if word {
		f.Sign = result&0x8000 == 0x8000
		f.Zero = result == 0
	} else {
		f.Sign = result&0x80 == 0x80
		f.Zero = result&0xff == 0
	}
	f.Parity = parity[result&0xff]
}

// Parity returns the state of the parity flag for the value.
func Parity(v uint8) bool {
	return parity[v]
}

// Diff returns a list of the flags that differ between two flag values.
// Useful for debugging output.
func Diff(a, b uint16) string {
	d := a ^ b
	if d == 0 {
		return ""
	}
	var fa, fb Flags
	fa.FromValue(a)
	fb.FromValue(b)
	return fmt.Sprintf("%s -> %s", fa, fb)
}
