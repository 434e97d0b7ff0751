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
)

// Reg8 identifies one of the 8 bit registers. The order is the encoding
// order used in the reg and rm fields of the ModR/M byte.
type Reg8 int

// List of 8 bit registers.
const (
	AL Reg8 = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

var reg8Names = [...]string{"AL", "CL", "DL", "BL", "AH", "CH", "DH", "BH"}

func (r Reg8) String() string {
	return reg8Names[r&7]
}

// Reg16 identifies one of the 16 bit general purpose registers. The order
// is the encoding order used by the ModR/M byte and by opcodes that embed a
// register number.
type Reg16 int

// List of 16 bit registers.
const (
	AX Reg16 = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
)

var reg16Names = [...]string{"AX", "CX", "DX", "BX", "SP", "BP", "SI", "DI"}

func (r Reg16) String() string {
	return reg16Names[r&7]
}

// Segment identifies a segment register. NoSegment is used for bus cycles
// that are not relative to a segment (IO, interrupt acknowledge) and for
// the absence of a segment override.
type Segment int

// List of segment registers.
const (
	ES Segment = iota
	CS
	SS
	DS
	NoSegment
)

var segmentNames = [...]string{"ES", "CS", "SS", "DS", "--"}

func (s Segment) String() string {
	if s < ES || s > NoSegment {
		return "??"
	}
	return segmentNames[s]
}

// File is the register file of the 8088.
type File struct {
	gpr [8]uint16
	seg [4]uint16

	Flags Flags
}

func (f *File) String() string {
	return fmt.Sprintf("AX=%04x BX=%04x CX=%04x DX=%04x SP=%04x BP=%04x SI=%04x DI=%04x CS=%04x DS=%04x SS=%04x ES=%04x %s",
		f.gpr[AX], f.gpr[BX], f.gpr[CX], f.gpr[DX], f.gpr[SP], f.gpr[BP], f.gpr[SI], f.gpr[DI],
		f.seg[CS], f.seg[DS], f.seg[SS], f.seg[ES], f.Flags)
}

// Reset zeroes all registers and resets the flags.
func (f *File) Reset() {
	*f = File{}
	f.Flags.Reset()
}

// Get8 returns the value of an 8 bit register.
func (f *File) Get8(r Reg8) uint8 {
	if r < AH {
		return uint8(f.gpr[r])
	}
	return uint8(f.gpr[r-AH] >> 8)
}

// Set8 sets the value of an 8 bit register. The other half of the 16 bit
// register is unchanged.
func (f *File) Set8(r Reg8, v uint8) {
	if r < AH {
		f.gpr[r] = (f.gpr[r] & 0xff00) | uint16(v)
	} else {
		f.gpr[r-AH] = (f.gpr[r-AH] & 0x00ff) | uint16(v)<<8
	}
}

// Get16 returns the value of a 16 bit register.
func (f *File) Get16(r Reg16) uint16 {
	return f.gpr[r&7]
}

// Set16 sets the value of a 16 bit register.
func (f *File) Set16(r Reg16, v uint16) {
	f.gpr[r&7] = v
}

// Seg returns the value of a segment register.
func (f *File) Seg(s Segment) uint16 {
	if s == NoSegment {
		return 0
	}
	return f.seg[s&3]
}

// SetSeg sets the value of a segment register.
func (f *File) SetSeg(s Segment, v uint16) {
	if s == NoSegment {
		return
	}
	f.seg[s&3] = v
}

// Convenience accessors for the registers that the execution unit uses by
// name.

func (f *File) AX() uint16 { return f.gpr[AX] }
func (f *File) BX() uint16 { return f.gpr[BX] }
func (f *File) CX() uint16 { return f.gpr[CX] }
func (f *File) DX() uint16 { return f.gpr[DX] }
func (f *File) SP() uint16 { return f.gpr[SP] }
func (f *File) BP() uint16 { return f.gpr[BP] }
func (f *File) SI() uint16 { return f.gpr[SI] }
func (f *File) DI() uint16 { return f.gpr[DI] }
func (f *File) CS() uint16 { return f.seg[CS] }
func (f *File) DS() uint16 { return f.seg[DS] }
func (f *File) SS() uint16 { return f.seg[SS] }
func (f *File) ES() uint16 { return f.seg[ES] }
