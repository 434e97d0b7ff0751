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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
)

// Outcome describes how an instruction ended.
type Outcome int

// List of valid Outcome values.
const (
	// the instruction completed without changing the flow of the program
	Okay Outcome = iota

	// the instruction changed CS or IP other than by falling through
	OkayJump

	// one iteration of a repeated string instruction completed and the
	// instruction will be resumed by the next step
	OkayRep

	// a divide error was raised and INT 0 has been taken
	DivideError

	// an undefined opcode was executed on a model that traps them
	UndefinedOpcode

	// the CPU executed HLT with interrupts disabled and no NMI pending
	Halt
)

var outcomeNames = [...]string{"Okay", "OkayJump", "OkayRep", "DivideError", "UndefinedOpcode", "Halt"}

func (o Outcome) String() string {
	if o < Okay || o > Halt {
		return "??"
	}
	return outcomeNames[o]
}

// Quirk is an undocumented behaviour of the 8088 that an instruction has
// relied on.
type Quirk string

// List of known quirks.
const (
	NoQuirk          Quirk = ""
	RepNegate        Quirk = "REP prefix negates MUL/DIV result"
	StringRestart    Quirk = "interrupted string instruction restarts at last prefix"
	RegisterFarPtr   Quirk = "register form of far pointer instruction uses last EA"
	SegmentAlias     Quirk = "segment register field aliased"
	SetMinusOne      Quirk = "SETMO/SETMOC shift group"
	ByteFormCallJump Quirk = "byte form of CALL/JMP group"
	SALC             Quirk = "SALC"
)

// Result records the execution of one instruction, or one iteration of a
// repeated string instruction.
type Result struct {
	// the decoded instruction
	Instruction instructions.Instruction

	// linear address of the first byte of the instruction (including
	// prefixes)
	Address uint32

	// the number of cycles spent, including the fetch of the next
	// instruction's first byte
	Cycles int

	Outcome Outcome

	// the vector of an interrupt taken at the end of the instruction. only
	// meaningful if Interrupted is true
	Interrupted bool
	Vector      uint8

	Quirk Quirk

	// whether this data has been finalised - note that the values of the
	// other fields may be undefined unless Final is true
	Final bool
}

// Reset the result to the empty state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := fmt.Sprintf("%05x %s (%d cycles)", r.Address, r.Instruction, r.Cycles)
	if r.Outcome != Okay {
		s = fmt.Sprintf("%s %s", s, r.Outcome)
	}
	if r.Interrupted {
		s = fmt.Sprintf("%s INT %02xh", s, r.Vector)
	}
	if r.Quirk != NoQuirk {
		s = fmt.Sprintf("%s [%s]", s, r.Quirk)
	}
	return s
}
