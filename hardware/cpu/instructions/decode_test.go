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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8088/hardware/cpu/microcode"
	"github.com/jetsetilly/gopher8088/hardware/cpu/modrm"
	"github.com/jetsetilly/gopher8088/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8088/test"
)

// bytes is a Reader that counts cycles rather than spending them
type bytes struct {
	data   []uint8
	pos    int
	cycles int
	firsts int
	line   uint16
}

func (b *bytes) Fetch(kind instructions.ReadKind) uint8 {
	if kind == instructions.First {
		b.firsts++
	}
	v := b.data[b.pos]
	b.pos++
	return v
}

func (b *bytes) Cycles(lines ...uint16) {
	b.cycles += len(lines)
}

func (b *bytes) SetMicrocode(line uint16) {
	b.line = line
}

func decode(t *testing.T, peek bool, data ...uint8) (instructions.Instruction, *bytes) {
	t.Helper()
	dec, err := instructions.NewDecoder()
	test.DemandSuccess(t, err)
	r := &bytes{data: data}
	ins, err := dec.Decode(r, peek)
	test.DemandSuccess(t, err)
	return ins, r
}

func TestDefinitions(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(defs), 256+instructions.NumGroups*8)

	for i, d := range defs {
		test.ExpectEquality(t, d.Index(), i, d)
	}

	// group placeholders
	test.ExpectSuccess(t, defs[0x80].IsGroup())
	test.ExpectSuccess(t, defs[0xff].IsGroup())
	test.ExpectFailure(t, defs[0x00].IsGroup())

	test.ExpectSuccess(t, defs[0x00].HasModRM())
	test.ExpectFailure(t, defs[0x04].HasModRM())
	test.ExpectSuccess(t, defs[0x00].LoadsEA())
	test.ExpectFailure(t, defs[0x8d].LoadsEA())
}

func TestWidth(t *testing.T) {
	defs, _ := instructions.GetDefinitions()
	test.ExpectFailure(t, defs[0x00].Word())
	test.ExpectSuccess(t, defs[0x01].Word())
	test.ExpectFailure(t, defs[0xb0].Word())
	test.ExpectSuccess(t, defs[0xb8].Word())
	test.ExpectSuccess(t, defs[0x40].Word())
	test.ExpectFailure(t, defs[0xa4].Word())
	test.ExpectSuccess(t, defs[0xa5].Word())
	test.ExpectFailure(t, defs[instructions.GroupIndex(11, 0)].Word())
	test.ExpectSuccess(t, defs[instructions.GroupIndex(12, 0)].Word())
}

func TestParse(t *testing.T) {
	m, err := instructions.ParseMnemonic("movsb")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, instructions.MOVSB)
	_, err = instructions.ParseMnemonic("ldx")
	test.ExpectFailure(t, err)

	o, err := instructions.ParseTemplate("DS")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o, instructions.FixedDS)
	test.ExpectEquality(t, o.Segment(), registers.DS)
	_, err = instructions.ParseTemplate("ModRM32")
	test.ExpectFailure(t, err)
}

func TestDecodeRegister(t *testing.T) {
	// ADD AX, BX
	ins, r := decode(t, false, 0x01, 0xd8)
	test.ExpectEquality(t, ins.Mnemonic, instructions.ADD)
	test.ExpectEquality(t, ins.Size, 2)
	test.ExpectEquality(t, ins.Operand1.Kind, instructions.KindRegister16)
	test.ExpectEquality(t, ins.Operand1.Reg16, registers.AX)
	test.ExpectEquality(t, ins.Operand2.Reg16, registers.BX)
	test.ExpectEquality(t, r.cycles, 0)
	test.ExpectEquality(t, ins.String(), "ADD AX, BX")
}

func TestDecodeMemory(t *testing.T) {
	// MOV [BP+SI+12h], CL
	ins, r := decode(t, false, 0x88, 0x4a, 0x12)
	test.ExpectEquality(t, ins.Mnemonic, instructions.MOV)
	test.ExpectEquality(t, ins.Size, 3)
	test.ExpectEquality(t, ins.Operand1.Kind, instructions.KindMemory)
	test.ExpectEquality(t, ins.Operand1.Mode, modrm.BpSiDisp8)
	test.ExpectEquality(t, ins.Operand1.Disp, 0x0012)
	test.ExpectEquality(t, ins.Operand2.Reg8, registers.CL)
	test.ExpectEquality(t, ins.ModRM.Disp, modrm.Displacement8)
	test.ExpectEquality(t, r.line, microcode.DispIndirect)

	// jump, the pre lines and the post lines
	m := modrm.Table[0x4a]
	test.ExpectEquality(t, r.cycles, 1+len(m.Pre)+len(m.Post))
	test.ExpectEquality(t, ins.String(), "MOV [bp+si+12h], CL")

	// negative displacement is sign extended
	ins, _ = decode(t, false, 0x8b, 0x47, 0xfe)
	test.ExpectEquality(t, ins.Operand2.Disp, 0xfffe)
	test.ExpectEquality(t, ins.String(), "MOV AX, [bx-02h]")
}

func TestDecodePrefixes(t *testing.T) {
	// ES: CS: REP MOVSW. the last segment override wins
	ins, r := decode(t, false, 0x26, 0x2e, 0xf3, 0xa5)
	test.ExpectEquality(t, ins.Mnemonic, instructions.MOVSW)
	test.ExpectEquality(t, ins.Size, 4)
	test.ExpectEquality(t, ins.SegmentOverride, registers.CS)
	test.ExpectSuccess(t, ins.Rep())
	test.ExpectEquality(t, ins.Segment(registers.DS), registers.CS)
	test.ExpectEquality(t, r.firsts, 4)
	test.ExpectEquality(t, r.cycles, 3)
	test.ExpectEquality(t, ins.String(), "REP MOVSW")

	ins, _ = decode(t, false, 0xf2, 0xae)
	test.ExpectEquality(t, ins.String(), "REPNE SCASB")

	// repeat prefix is not shown for other instructions
	ins, _ = decode(t, false, 0xf3, 0x90)
	test.ExpectEquality(t, ins.String(), "NOP AX, AX")
}

func TestDecodeGroup(t *testing.T) {
	// DIV BL
	ins, _ := decode(t, false, 0xf6, 0xf3)
	test.ExpectEquality(t, ins.Mnemonic, instructions.DIV)
	test.ExpectEquality(t, ins.Operand1.Reg8, registers.BL)
	test.ExpectFailure(t, ins.Word)

	// PUSH word [1234h]
	ins, _ = decode(t, false, 0xff, 0x36, 0x34, 0x12)
	test.ExpectEquality(t, ins.Mnemonic, instructions.PUSH)
	test.ExpectEquality(t, ins.Operand1.Mode, modrm.Disp16)
	test.ExpectEquality(t, ins.Operand1.Disp, 0x1234)
	test.ExpectEquality(t, ins.Size, 4)
}

func TestDecodeImmediates(t *testing.T) {
	// without peek the immediate bytes are counted but not read
	ins, r := decode(t, false, 0x81, 0xc3, 0x34, 0x12)
	test.ExpectEquality(t, ins.Mnemonic, instructions.ADD)
	test.ExpectEquality(t, ins.Size, 4)
	test.ExpectEquality(t, r.pos, 2)
	test.ExpectEquality(t, ins.Operand2.Value, 0)

	ins, r = decode(t, true, 0x81, 0xc3, 0x34, 0x12)
	test.ExpectEquality(t, r.pos, 4)
	test.ExpectEquality(t, ins.Operand2.Value, 0x1234)
	test.ExpectEquality(t, ins.String(), "ADD BX, 1234h")

	ins, _ = decode(t, true, 0xea, 0x00, 0x01, 0x00, 0xf0)
	test.ExpectEquality(t, ins.Mnemonic, instructions.JMPF)
	test.ExpectEquality(t, ins.Size, 5)
	test.ExpectEquality(t, ins.String(), "JMPF f000:0100")

	ins, _ = decode(t, true, 0xa1, 0x10, 0x00)
	test.ExpectEquality(t, ins.Size, 3)
	test.ExpectEquality(t, ins.String(), "MOV AX, word [0010h]")
}

func TestPrefixDefinitions(t *testing.T) {
	defs, err := instructions.GetDefinitions()
	test.DemandSuccess(t, err)
	for _, op := range []uint8{0x26, 0x2e, 0x36, 0x3e, 0xf2, 0xf3} {
		test.ExpectEquality(t, defs[op].Mnemonic, instructions.PREFIX, op)
	}
	test.ExpectEquality(t, defs[0xf0].Mnemonic, instructions.LOCK)

	m, err := instructions.ParseMnemonic("prefix")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, instructions.PREFIX)
	test.ExpectEquality(t, m.String(), "PREFIX")
}
