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

	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/modrm"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
)

// ReadKind distinguishes the first byte of an instruction from the bytes
// that follow. The CPU treats them differently when reading from the queue.
type ReadKind int

// List of valid ReadKind values.
const (
	First ReadKind = iota
	Subsequent
)

// Reader is the source of instruction bytes for the decoder.
type Reader interface {
	// Fetch the next instruction byte.
	Fetch(kind ReadKind) uint8

	// Cycles spends one cycle for each microcode line. microcode.None spends
	// a cycle without changing the current line.
	Cycles(lines ...uint16)

	// SetMicrocode changes the current microcode line without spending a
	// cycle.
	SetMicrocode(line uint16)
}

// Decoder turns instruction bytes into Instruction values.
type Decoder struct {
	definitions []*Definition
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder() (*Decoder, error) {
	defs, err := GetDefinitions()
	if err != nil {
		return nil, err
	}
	if len(defs) != 256+NumGroups*8 {
		return nil, fmt.Errorf("instructions: definitions table has %d entries", len(defs))
	}
	for i, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("instructions: missing definition at index %d", i)
		}
	}
	return &Decoder{definitions: defs}, nil
}

// Definition returns the definition for an opcode. For group opcodes this is
// the group placeholder.
func (dec *Decoder) Definition(opcode uint8) *Definition {
	return dec.definitions[opcode]
}

// Decode an instruction from the Reader. If peek is true the values of
// immediate operands are read from the Reader too. Otherwise the decoder
// stops after the ModR/M byte and its displacement and the immediate values
// are left for the execution unit to read.
func (dec *Decoder) Decode(r Reader, peek bool) (Instruction, error) {
	ins := Instruction{
		SegmentOverride: registers.NoSegment,
	}

	opcode := r.Fetch(First)
	ins.Size = 1

	for {
		p, seg, ok := prefix(opcode)
		if !ok {
			break
		}
		ins.Prefixes |= p
		if p&prefixSegment != 0 {
			ins.SegmentOverride = seg
		}
		if ins.Size >= 15 {
			return ins, fmt.Errorf("instructions: too many prefixes")
		}
		r.Cycles(microcode.None)
		opcode = r.Fetch(First)
		ins.Size++
	}

	ins.Opcode = opcode
	defn := dec.definitions[opcode]

	if defn.HasModRM() {
		ins.HasModRM = true
		ins.ModRM = modrm.Table[r.Fetch(Subsequent)]
		ins.Size++
		if ins.ModRM.IsMemory() {
			r.Cycles(microcode.Jump)
			r.Cycles(ins.ModRM.Pre...)
			r.SetMicrocode(ins.ModRM.DispLine)
		}
	}

	// displacement is read as part of the ModR/M sequence
	var disp uint16
	switch ins.ModRM.Disp {
	case modrm.Pending8:
		disp = uint16(int16(int8(r.Fetch(Subsequent))))
		ins.ModRM.Disp = modrm.Displacement8
		ins.Size++
	case modrm.Pending16:
		lo := r.Fetch(Subsequent)
		hi := r.Fetch(Subsequent)
		disp = uint16(hi)<<8 | uint16(lo)
		ins.ModRM.Disp = modrm.Displacement16
		ins.Size += 2
	}
	if ins.HasModRM && ins.ModRM.IsMemory() {
		r.Cycles(ins.ModRM.Post...)
	}

	if defn.IsGroup() {
		defn = dec.definitions[GroupIndex(defn.Group, ins.ModRM.Reg)]
	}

	ins.Definition = defn
	ins.Mnemonic = defn.Mnemonic
	ins.Word = defn.Word()

	ins.Operand1 = ins.resolve(r, defn.Operand1, disp, peek)
	ins.Operand2 = ins.resolve(r, defn.Operand2, disp, peek)

	return ins, nil
}

func fetch16(r Reader) uint16 {
	lo := r.Fetch(Subsequent)
	hi := r.Fetch(Subsequent)
	return uint16(hi)<<8 | uint16(lo)
}

func (ins *Instruction) resolve(r Reader, t Template, disp uint16, peek bool) Operand {
	var op Operand

	switch t {
	case ModRM8, ModRM16:
		if !ins.ModRM.IsMemory() {
			if t == ModRM8 {
				op.Kind = KindRegister8
				op.Reg8 = registers.Reg8(ins.ModRM.RM)
			} else {
				op.Kind = KindRegister16
				op.Reg16 = registers.Reg16(ins.ModRM.RM)
			}
			return op
		}
		op.Kind = KindMemory
		op.Mode = ins.ModRM.Mode
		op.Disp = disp

	case Register8:
		op.Kind = KindRegister8
		op.Reg8 = registers.Reg8(ins.ModRM.Reg)

	case Register16:
		op.Kind = KindRegister16
		op.Reg16 = registers.Reg16(ins.ModRM.Reg)

	case SegmentRegister:
		// only two bits select the segment register. the top bit is ignored
		op.Kind = KindSegment
		op.Seg = registers.Segment(ins.ModRM.Reg & 0x03)

	case Immediate8, Immediate8SignExtended, Relative8:
		switch t {
		case Immediate8:
			op.Kind = KindImmediate8
		case Immediate8SignExtended:
			op.Kind = KindImmediate8SignExtended
		default:
			op.Kind = KindRelative8
		}
		if peek {
			op.Value = uint16(r.Fetch(Subsequent))
		}
		ins.Size++

	case Immediate16, Relative16:
		op.Kind = KindImmediate16
		if t == Relative16 {
			op.Kind = KindRelative16
		}
		if peek {
			op.Value = fetch16(r)
		}
		ins.Size += 2

	case Offset8, Offset16:
		op.Kind = KindOffset8
		if t == Offset16 {
			op.Kind = KindOffset16
		}
		if peek {
			op.Value = fetch16(r)
		}
		ins.Size += 2

	case FarAddress:
		op.Kind = KindFarAddress
		if peek {
			op.Value = fetch16(r)
			op.Segment = fetch16(r)
		}
		ins.Size += 4

	default:
		switch {
		case t.IsFixed8():
			op.Kind = KindRegister8
			op.Reg8 = t.Reg8()
		case t.IsFixed16():
			op.Kind = KindRegister16
			op.Reg16 = t.Reg16()
		case t.IsFixedSegment():
			op.Kind = KindSegment
			op.Seg = t.Segment()
		}
	}

	return op
}
