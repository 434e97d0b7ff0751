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
	"github.com/jetsetilly/gopher8088/curated"
	"github.com/jetsetilly/gopher8088/hardware/cpu/instructions"
)

// every instruction spends at least one cycle reading the next opcode
const minCycles = 1

// the longest instruction, including redundant prefixes, that the decoder
// will accept
const maxSize = 15

// InvalidResult is the error pattern returned by IsValid.
const InvalidResult = "execution: %s"

// IsValid checks whether the instance of Result contains information
// consistent with the decoded instruction.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "not finalised")
	}

	defn := r.Instruction.Definition
	if defn == nil {
		return curated.Errorf(InvalidResult, "no instruction definition")
	}

	if defn.IsGroup() {
		return curated.Errorf(InvalidResult, "group placeholder was not resolved")
	}

	if r.Instruction.Mnemonic != defn.Mnemonic {
		return curated.Errorf(InvalidResult, "mnemonic does not match definition")
	}

	if r.Instruction.Size < 1 || r.Instruction.Size > maxSize {
		return curated.Errorf(InvalidResult, "unexpected instruction size")
	}

	if r.Instruction.HasModRM != defn.HasModRM() {
		return curated.Errorf(InvalidResult, "ModR/M presence does not match definition")
	}

	// a REP prefix only has meaning for the string and multiply/divide
	// instructions. it is still allowed on other instructions so we can't
	// complain about it. but an OkayRep outcome is only possible for a
	// string instruction
	if r.Outcome == OkayRep && !r.Instruction.Mnemonic.IsString() {
		return curated.Errorf(InvalidResult, "repeat outcome for non-string instruction")
	}

	if r.Outcome == DivideError {
		switch r.Instruction.Mnemonic {
		case instructions.DIV, instructions.IDIV, instructions.AAM:
		default:
			return curated.Errorf(InvalidResult, "divide error for non-divide instruction")
		}
	}

	if r.Cycles < minCycles {
		return curated.Errorf(InvalidResult, "too few cycles")
	}

	return nil
}
