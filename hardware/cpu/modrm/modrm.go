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

package modrm

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
)

// Mode is the addressing mode selected by the mod and rm fields.
type Mode int

// List of addressing modes. The first eight modes have no displacement
// except for Disp16. The next sixteen take an 8 bit or 16 bit displacement.
const (
	BxSi Mode = iota
	BxDi
	BpSi
	BpDi
	Si
	Di
	Disp16
	Bx
	BxSiDisp8
	BxDiDisp8
	BpSiDisp8
	BpDiDisp8
	SiDisp8
	DiDisp8
	BpDisp8
	BxDisp8
	BxSiDisp16
	BxDiDisp16
	BpSiDisp16
	BpDiDisp16
	SiDisp16
	DiDisp16
	BpDisp16
	BxDisp16
	RegisterMode
)

var modeNames = [...]string{
	"[bx+si]", "[bx+di]", "[bp+si]", "[bp+di]", "[si]", "[di]", "[disp16]", "[bx]",
	"[bx+si+d8]", "[bx+di+d8]", "[bp+si+d8]", "[bp+di+d8]", "[si+d8]", "[di+d8]", "[bp+d8]", "[bx+d8]",
	"[bx+si+d16]", "[bx+di+d16]", "[bp+si+d16]", "[bp+di+d16]", "[si+d16]", "[di+d16]", "[bp+d16]", "[bx+d16]",
	"reg",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// UsesBP returns true if the mode forms its address from BP. These modes
// default to the SS segment rather than DS.
func (m Mode) UsesBP() bool {
	switch m {
	case BpSi, BpDi, BpSiDisp8, BpDiDisp8, BpDisp8, BpSiDisp16, BpDiDisp16, BpDisp16:
		return true
	}
	return false
}

// Offset returns the 16 bit offset for the mode given the base and index
// registers and the displacement. An 8 bit displacement should be sign
// extended before calling. The addition wraps at 64KiB.
func (m Mode) Offset(bx, bp, si, di, disp uint16) uint16 {
	switch m {
	case BxSi:
		return bx + si
	case BxDi:
		return bx + di
	case BpSi:
		return bp + si
	case BpDi:
		return bp + di
	case Si:
		return si
	case Di:
		return di
	case Disp16:
		return disp
	case Bx:
		return bx
	case BxSiDisp8, BxSiDisp16:
		return bx + si + disp
	case BxDiDisp8, BxDiDisp16:
		return bx + di + disp
	case BpSiDisp8, BpSiDisp16:
		return bp + si + disp
	case BpDiDisp8, BpDiDisp16:
		return bp + di + disp
	case SiDisp8, SiDisp16:
		return si + disp
	case DiDisp8, DiDisp16:
		return di + disp
	case BpDisp8, BpDisp16:
		return bp + disp
	case BxDisp8, BxDisp16:
		return bx + disp
	}
	panic(fmt.Sprintf("modrm: no offset for %s", m))
}

// Displacement describes the displacement that follows the ModR/M byte.
type Displacement int

// List of displacement kinds. The pending kinds are used in the table. The
// decoder replaces them with Disp8 or Disp16 once the value has been read.
const (
	NoDisplacement Displacement = iota
	Pending8
	Pending16
	Displacement8
	Displacement16
)

// Size returns the number of bytes occupied by the displacement.
func (d Displacement) Size() int {
	switch d {
	case Pending8, Displacement8:
		return 1
	case Pending16, Displacement16:
		return 2
	}
	return 0
}

// ModRM is one entry in the table.
type ModRM struct {
	Byte uint8

	Mod uint8
	Reg uint8
	RM  uint8

	Mode Mode
	Disp Displacement

	// microcode line the CPU is at when reading the displacement
	DispLine uint16

	// the lines spent before and after the displacement is read. the number
	// of cycles is the length of the slice
	Pre  []uint16
	Post []uint16
}

func (m ModRM) String() string {
	return fmt.Sprintf("%02x mod=%d reg=%d rm=%d %s", m.Byte, m.Mod, m.Reg, m.RM, m.Mode)
}

// IsMemory returns true if the ModR/M byte selects a memory operand.
func (m ModRM) IsMemory() bool {
	return m.Mod != 0b11
}

// Table of all 256 ModR/M bytes.
var Table [256]ModRM

// lines before the displacement, indexed by rm. the [bp] form with a
// displacement has its own entry because mod 0 rm 6 is the direct address
var pre = [8][]uint16{
	{0x1d4, 0x1d5, 0x1d6, microcode.Jump},
	{0x1da, microcode.Jump, 0x1d8, 0x1d9, microcode.Jump},
	{0x1db, microcode.Jump, 0x1d5, 0x1d6, microcode.Jump},
	{0x1d7, 0x1d8, 0x1d9, microcode.Jump},
	{0x003, microcode.Jump},
	{0x01f, microcode.Jump},
	{},
	{0x037, microcode.Jump},
}

var preBP = []uint16{0x023, microcode.Jump}

// lines after the displacement, indexed by mod
var post = [3][]uint16{
	{},
	{microcode.Jump, 0x1e0, microcode.Jump},
	{0x1e0, microcode.Jump},
}

var postDirect = []uint16{microcode.Jump}

func init() {
	for i := range Table {
		b := uint8(i)
		m := ModRM{
			Byte: b,
			Mod:  b >> 6,
			Reg:  (b >> 3) & 0x07,
			RM:   b & 0x07,
		}

		switch m.Mod {
		case 0b11:
			m.Mode = RegisterMode
		case 0b00:
			m.Mode = Mode(m.RM)
			m.Pre = pre[m.RM]
			m.Post = post[0]
			if m.Mode == Disp16 {
				m.Disp = Pending16
				m.DispLine = microcode.DispDirect
				m.Post = postDirect
			}
		case 0b01:
			m.Mode = Mode(8 + m.RM)
			m.Disp = Pending8
			m.DispLine = microcode.DispIndirect
			m.Pre = pre[m.RM]
			m.Post = post[1]
		case 0b10:
			m.Mode = Mode(16 + m.RM)
			m.Disp = Pending16
			m.DispLine = microcode.DispIndirect
			m.Pre = pre[m.RM]
			m.Post = post[2]
		}

		if m.RM == 6 && (m.Mod == 0b01 || m.Mod == 0b10) {
			m.Pre = preBP
		}

		Table[i] = m
	}
}
