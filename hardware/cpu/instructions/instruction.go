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
	"strings"

	"github.com/jetsetilly/gopher8088/hardware/cpu/modrm"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// OperandKind is the decoded form of an operand.
type OperandKind int

// List of valid OperandKind values.
const (
	KindNone OperandKind = iota
	KindRegister8
	KindRegister16
	KindSegment
	KindImmediate8
	KindImmediate8SignExtended
	KindImmediate16
	KindRelative8
	KindRelative16
	KindOffset8
	KindOffset16
	KindFarAddress
	KindMemory
)

// Operand is a decoded operand. Only the fields relevant to the Kind are
// meaningful.
type Operand struct {
	Kind OperandKind

	Reg8  registers.Reg8
	Reg16 registers.Reg16
	Seg   registers.Segment

	// addressing mode and displacement of a KindMemory operand
	Mode modrm.Mode
	Disp uint16

	// value of an immediate, relative or offset operand. for a far address
	// this is the offset and Segment is the segment. values are only filled
	// in if the instruction was decoded with peek set
	Value   uint16
	Segment uint16
}

// IsMemory returns true if the operand is in memory. This includes the
// direct offset forms.
func (op Operand) IsMemory() bool {
	return op.Kind == KindMemory || op.Kind == KindOffset8 || op.Kind == KindOffset16
}

func (op Operand) String() string {
	switch op.Kind {
	case KindRegister8:
		return op.Reg8.String()
	case KindRegister16:
		return op.Reg16.String()
	case KindSegment:
		return op.Seg.String()
	case KindImmediate8:
		return fmt.Sprintf("%02xh", op.Value&0xff)
	case KindImmediate8SignExtended:
		return fmt.Sprintf("%04xh", uint16(int16(int8(op.Value))))
	case KindImmediate16:
		return fmt.Sprintf("%04xh", op.Value)
	case KindRelative8:
		return fmt.Sprintf("%+d", int8(op.Value))
	case KindRelative16:
		return fmt.Sprintf("%+d", int16(op.Value))
	case KindOffset8:
		return fmt.Sprintf("byte [%04xh]", op.Value)
	case KindOffset16:
		return fmt.Sprintf("word [%04xh]", op.Value)
	case KindFarAddress:
		return fmt.Sprintf("%04x:%04x", op.Segment, op.Value)
	case KindMemory:
		return memoryString(op.Mode, op.Disp)
	}
	return ""
}

func memoryString(m modrm.Mode, disp uint16) string {
	s := m.String()
	switch {
	case m == modrm.Disp16:
		return fmt.Sprintf("[%04xh]", disp)
	case strings.Contains(s, "d8"):
		d := int8(disp)
		if d < 0 {
			return strings.Replace(s, "+d8", fmt.Sprintf("-%02xh", -int(d)), 1)
		}
		return strings.Replace(s, "d8", fmt.Sprintf("%02xh", d), 1)
	case strings.Contains(s, "d16"):
		return strings.Replace(s, "d16", fmt.Sprintf("%04xh", disp), 1)
	}
	return s
}

// Prefix is the set of prefix bytes seen before the opcode.
type Prefix uint8

// List of prefix bits.
const (
	PrefixES Prefix = 1 << iota
	PrefixCS
	PrefixSS
	PrefixDS
	PrefixLock
	PrefixRepNZ
	PrefixRepZ
)

// PrefixRep is set if either repeat prefix is present.
const PrefixRep = PrefixRepNZ | PrefixRepZ

const prefixSegment = PrefixES | PrefixCS | PrefixSS | PrefixDS

// prefix returns the prefix bit for a byte and whether the byte is a prefix.
func prefix(b uint8) (Prefix, registers.Segment, bool) {
	switch b {
	case 0x26:
		return PrefixES, registers.ES, true
	case 0x2e:
		return PrefixCS, registers.CS, true
	case 0x36:
		return PrefixSS, registers.SS, true
	case 0x3e:
		return PrefixDS, registers.DS, true
	case 0xf0, 0xf1:
		return PrefixLock, registers.NoSegment, true
	case 0xf2:
		return PrefixRepNZ, registers.NoSegment, true
	case 0xf3:
		return PrefixRepZ, registers.NoSegment, true
	}
	return 0, registers.NoSegment, false
}

// Instruction is a decoded instruction.
type Instruction struct {
	Opcode uint8

	Prefixes Prefix

	// the last segment override prefix. NoSegment if there was none
	SegmentOverride registers.Segment

	// definition of the instruction. for group opcodes this is the
	// definition of the extension selected by the ModR/M byte
	Definition *Definition
	Mnemonic   Mnemonic

	HasModRM bool
	ModRM    modrm.ModRM

	Operand1 Operand
	Operand2 Operand

	// instruction operates on 16 bit values
	Word bool

	// number of bytes including prefixes and all operands
	Size int

	// address of the first byte of the instruction. set by the caller
	CS uint16
	IP uint16
}

// Segment returns the segment to use for a memory operand that would
// otherwise use the segment def.
func (ins Instruction) Segment(def registers.Segment) registers.Segment {
	if ins.SegmentOverride != registers.NoSegment {
		return ins.SegmentOverride
	}
	return def
}

// Rep returns true if the instruction has a repeat prefix.
func (ins Instruction) Rep() bool {
	return ins.Prefixes&PrefixRep != 0
}

// String returns the instruction in assembler form.
func (ins Instruction) String() string {
	s := strings.Builder{}

	if ins.Prefixes&PrefixLock == PrefixLock {
		s.WriteString("LOCK ")
	}
	if ins.Rep() && (ins.Mnemonic.IsString() || ins.Mnemonic.IsMulDiv()) {
		switch {
		case ins.Mnemonic == CMPSB || ins.Mnemonic == CMPSW || ins.Mnemonic == SCASB || ins.Mnemonic == SCASW:
			if ins.Prefixes&PrefixRepNZ == PrefixRepNZ {
				s.WriteString("REPNE ")
			} else {
				s.WriteString("REPE ")
			}
		default:
			s.WriteString("REP ")
		}
	}

	s.WriteString(ins.Mnemonic.String())

	op1 := ins.operandString(ins.Operand1)
	op2 := ins.operandString(ins.Operand2)
	if op1 != "" {
		s.WriteString(" ")
		s.WriteString(op1)
		if op2 != "" {
			s.WriteString(", ")
			s.WriteString(op2)
		}
	}

	return s.String()
}

func (ins Instruction) operandString(op Operand) string {
	s := op.String()
	if op.IsMemory() && ins.SegmentOverride != registers.NoSegment {
		return fmt.Sprintf("%s:%s", ins.SegmentOverride, s)
	}
	return s
}
