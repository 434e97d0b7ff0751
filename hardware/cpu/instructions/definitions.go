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

import "fmt"

// group decode ROM bits used by the decoder and the execution unit.
const (
	flagLoadsEA   = 0x0002
	flagNoModRM   = 0x0010
	flagWidthBit0 = 0x4000
)

// NumGroups is the number of opcode groups. Group rows follow the 256 opcode
// rows in the definitions table.
const NumGroups = 12

// Definition defines each instruction in the instruction set; one per opcode
// and one per group extension.
type Definition struct {
	Opcode uint8

	// the group number, 1 to 12. zero if the opcode is not a group opcode
	Group int

	// the reg field of the ModR/M byte that selects this definition. only
	// meaningful for group rows
	Extension int

	// output of the group decode ROM for the opcode
	Flags uint16

	// entry point of the microcode routine
	Microcode uint16

	Mnemonic Mnemonic
	Operand1 Template
	Operand2 Template
}

func (defn Definition) String() string {
	if defn.Group > 0 && defn.Mnemonic != Group {
		return fmt.Sprintf("%02x/%d %s %s,%s [%03x]", defn.Opcode, defn.Extension, defn.Mnemonic, defn.Operand1, defn.Operand2, defn.Microcode)
	}
	return fmt.Sprintf("%02x %s %s,%s [%03x]", defn.Opcode, defn.Mnemonic, defn.Operand1, defn.Operand2, defn.Microcode)
}

// HasModRM returns true if the opcode is followed by a ModR/M byte.
func (defn Definition) HasModRM() bool {
	return defn.Flags&flagNoModRM == 0
}

// LoadsEA returns true if the operand addressed by the ModR/M byte is read
// before the instruction routine starts.
func (defn Definition) LoadsEA() bool {
	return defn.Flags&flagLoadsEA == 0
}

// IsGroup returns true if the opcode needs the ModR/M reg field to select
// the operation.
func (defn Definition) IsGroup() bool {
	return defn.Mnemonic == Group
}

// Word returns true if the instruction operates on 16 bit values. For most
// opcodes the width is given by bit zero of the opcode. MOV with an
// immediate uses bit three.
func (defn Definition) Word() bool {
	if defn.Opcode >= 0xb0 && defn.Opcode <= 0xbf {
		return defn.Opcode&0x08 == 0x08
	}
	if defn.Flags&flagWidthBit0 == flagWidthBit0 {
		return defn.Opcode&0x01 == 0x01
	}
	return defn.Operand1 != ModRM8
}

// Index returns the position of the definition in the table returned by
// GetDefinitions.
func (defn Definition) Index() int {
	if defn.Group > 0 && defn.Mnemonic != Group {
		return GroupIndex(defn.Group, uint8(defn.Extension))
	}
	return int(defn.Opcode)
}

// GroupIndex returns the position in the definitions table of a group
// extension.
func GroupIndex(group int, reg uint8) int {
	return 256 + (group-1)*8 + int(reg&0x07)
}
