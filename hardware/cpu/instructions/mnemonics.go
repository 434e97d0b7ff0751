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
)

// Mnemonic identifies the operation performed by an instruction.
type Mnemonic int

// List of valid Mnemonic values. Group is a placeholder for opcodes that need
// the reg field of the ModR/M byte to select the operation. PREFIX covers
// the segment override and repeat prefixes.
const (
	Invalid Mnemonic = iota
	AAA
	AAD
	AAM
	AAS
	ADC
	ADD
	AND
	CALL
	CALLF
	CBW
	CLC
	CLD
	CLI
	CMC
	CMP
	CMPSB
	CMPSW
	CWD
	DAA
	DAS
	DEC
	DIV
	ESC
	Group
	HLT
	IDIV
	IMUL
	IN
	INC
	INT
	INT3
	INTO
	IRET
	JB
	JBE
	JCXZ
	JL
	JLE
	JMP
	JMPF
	JNB
	JNBE
	JNL
	JNLE
	JNO
	JNP
	JNS
	JNZ
	JO
	JP
	JS
	JZ
	LAHF
	LDS
	LEA
	LES
	LOCK
	LODSB
	LODSW
	LOOP
	LOOPE
	LOOPNE
	MOV
	MOVSB
	MOVSW
	MUL
	NEG
	NOP
	NOT
	OR
	OUT
	POP
	POPF
	PUSH
	PUSHF
	PREFIX
	RCL
	RCR
	RETF
	RETN
	ROL
	ROR
	SAHF
	SALC
	SAR
	SBB
	SCASB
	SCASW
	SETMO
	SETMOC
	SHL
	SHR
	STC
	STD
	STI
	STOSB
	STOSW
	SUB
	TEST
	WAIT
	XCHG
	XLAT
	XOR
)

var mnemonicNames = []string{
	"(invalid)",
	"AAA",
	"AAD",
	"AAM",
	"AAS",
	"ADC",
	"ADD",
	"AND",
	"CALL",
	"CALLF",
	"CBW",
	"CLC",
	"CLD",
	"CLI",
	"CMC",
	"CMP",
	"CMPSB",
	"CMPSW",
	"CWD",
	"DAA",
	"DAS",
	"DEC",
	"DIV",
	"ESC",
	"Group",
	"HLT",
	"IDIV",
	"IMUL",
	"IN",
	"INC",
	"INT",
	"INT3",
	"INTO",
	"IRET",
	"JB",
	"JBE",
	"JCXZ",
	"JL",
	"JLE",
	"JMP",
	"JMPF",
	"JNB",
	"JNBE",
	"JNL",
	"JNLE",
	"JNO",
	"JNP",
	"JNS",
	"JNZ",
	"JO",
	"JP",
	"JS",
	"JZ",
	"LAHF",
	"LDS",
	"LEA",
	"LES",
	"LOCK",
	"LODSB",
	"LODSW",
	"LOOP",
	"LOOPE",
	"LOOPNE",
	"MOV",
	"MOVSB",
	"MOVSW",
	"MUL",
	"NEG",
	"NOP",
	"NOT",
	"OR",
	"OUT",
	"POP",
	"POPF",
	"PUSH",
	"PUSHF",
	"PREFIX",
	"RCL",
	"RCR",
	"RETF",
	"RETN",
	"ROL",
	"ROR",
	"SAHF",
	"SALC",
	"SAR",
	"SBB",
	"SCASB",
	"SCASW",
	"SETMO",
	"SETMOC",
	"SHL",
	"SHR",
	"STC",
	"STD",
	"STI",
	"STOSB",
	"STOSW",
	"SUB",
	"TEST",
	"WAIT",
	"XCHG",
	"XLAT",
	"XOR",
}

func (m Mnemonic) String() string {
	if m < 0 || int(m) >= len(mnemonicNames) {
		return "(invalid)"
	}
	return mnemonicNames[m]
}

// ParseMnemonic returns the Mnemonic for the string. The test is case
// insensitive.
func ParseMnemonic(s string) (Mnemonic, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range mnemonicNames {
		if i > 0 && n == s {
			return Mnemonic(i), nil
		}
	}
	return Invalid, fmt.Errorf("instructions: unknown mnemonic (%s)", s)
}

// IsString returns true for the string instructions. These are the only
// instructions for which a repeat prefix is meaningful, apart from the
// multiply and divide group.
func (m Mnemonic) IsString() bool {
	switch m {
	case MOVSB, MOVSW, CMPSB, CMPSW, STOSB, STOSW, LODSB, LODSW, SCASB, SCASW:
		return true
	}
	return false
}

// IsMulDiv returns true for the multiply and divide instructions.
func (m Mnemonic) IsMulDiv() bool {
	switch m {
	case MUL, IMUL, DIV, IDIV:
		return true
	}
	return false
}
