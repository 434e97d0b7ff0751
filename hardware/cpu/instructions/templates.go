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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// Template describes how an operand is to be decoded.
type Template int

// List of valid Template values. The fixed templates name a register that is
// implied by the opcode.
const (
	NoOperand Template = iota
	ModRM8
	ModRM16
	Register8
	Register16
	SegmentRegister
	Immediate8
	Immediate16
	Immediate8SignExtended
	Relative8
	Relative16
	Offset8
	Offset16
	FarAddress

	FixedAL
	FixedCL
	FixedDL
	FixedBL
	FixedAH
	FixedCH
	FixedDH
	FixedBH
	FixedAX
	FixedCX
	FixedDX
	FixedBX
	FixedSP
	FixedBP
	FixedSI
	FixedDI
	FixedES
	FixedCS
	FixedSS
	FixedDS
)

var templateNames = map[string]Template{
	"NoOperand":              NoOperand,
	"ModRM8":                 ModRM8,
	"ModRM16":                ModRM16,
	"Register8":              Register8,
	"Register16":             Register16,
	"SegmentRegister":        SegmentRegister,
	"Immediate8":             Immediate8,
	"Immediate16":            Immediate16,
	"Immediate8SignExtended": Immediate8SignExtended,
	"Relative8":              Relative8,
	"Relative16":             Relative16,
	"Offset8":                Offset8,
	"Offset16":               Offset16,
	"FarAddress":             FarAddress,
	"AL":                     FixedAL,
	"CL":                     FixedCL,
	"DL":                     FixedDL,
	"BL":                     FixedBL,
	"AH":                     FixedAH,
	"CH":                     FixedCH,
	"DH":                     FixedDH,
	"BH":                     FixedBH,
	"AX":                     FixedAX,
	"CX":                     FixedCX,
	"DX":                     FixedDX,
	"BX":                     FixedBX,
	"SP":                     FixedSP,
	"BP":                     FixedBP,
	"SI":                     FixedSI,
	"DI":                     FixedDI,
	"ES":                     FixedES,
	"CS":                     FixedCS,
	"SS":                     FixedSS,
	"DS":                     FixedDS,
}

// ParseTemplate returns the Template named by the string. Fixed registers
// are named by the register alone.
func ParseTemplate(s string) (Template, error) {
	if t, ok := templateNames[s]; ok {
		return t, nil
	}
	return NoOperand, fmt.Errorf("instructions: unknown operand template (%s)", s)
}

func (t Template) String() string {
	for k, v := range templateNames {
		if v == t {
			return k
		}
	}
	return "unknown"
}

// IsFixed8 returns true if the template names an 8 bit register.
func (t Template) IsFixed8() bool {
	return t >= FixedAL && t <= FixedBH
}

// IsFixed16 returns true if the template names a 16 bit register.
func (t Template) IsFixed16() bool {
	return t >= FixedAX && t <= FixedDI
}

// IsFixedSegment returns true if the template names a segment register.
func (t Template) IsFixedSegment() bool {
	return t >= FixedES && t <= FixedDS
}

// Reg8 returns the register for fixed 8 bit templates.
func (t Template) Reg8() registers.Reg8 {
	return registers.Reg8(t - FixedAL)
}

// Reg16 returns the register for fixed 16 bit templates.
func (t Template) Reg16() registers.Reg16 {
	return registers.Reg16(t - FixedAX)
}

// Segment returns the register for fixed segment templates.
func (t Template) Segment() registers.Segment {
	return registers.Segment(t - FixedES)
}
