// generated code - do not change

package instructions

// GetDefinitions returns the table of instruction definitions for the 8088. The
// 256 opcodes are followed by the extensions for each opcode group
func GetDefinitions() ([]*Definition, error) {
	return []*Definition{
		&Definition{Opcode: 0x00, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADD, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x01, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADD, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x02, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADD, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x03, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADD, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x04, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: ADD, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x05, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: ADD, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x06, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x02c, Mnemonic: PUSH, Operand1: FixedES, Operand2: NoOperand},
		&Definition{Opcode: 0x07, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x038, Mnemonic: POP, Operand1: FixedES, Operand2: NoOperand},
		&Definition{Opcode: 0x08, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: OR, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x09, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: OR, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x0a, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: OR, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x0b, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: OR, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x0c, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: OR, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x0d, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: OR, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x0e, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x02c, Mnemonic: PUSH, Operand1: FixedCS, Operand2: NoOperand},
		&Definition{Opcode: 0x0f, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x038, Mnemonic: POP, Operand1: FixedCS, Operand2: NoOperand},
		&Definition{Opcode: 0x10, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADC, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x11, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADC, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x12, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADC, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x13, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: ADC, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x14, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: ADC, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x15, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: ADC, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x16, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x02c, Mnemonic: PUSH, Operand1: FixedSS, Operand2: NoOperand},
		&Definition{Opcode: 0x17, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x038, Mnemonic: POP, Operand1: FixedSS, Operand2: NoOperand},
		&Definition{Opcode: 0x18, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SBB, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x19, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SBB, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x1a, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SBB, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x1b, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SBB, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x1c, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: SBB, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x1d, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: SBB, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x1e, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x02c, Mnemonic: PUSH, Operand1: FixedDS, Operand2: NoOperand},
		&Definition{Opcode: 0x1f, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x038, Mnemonic: POP, Operand1: FixedDS, Operand2: NoOperand},
		&Definition{Opcode: 0x20, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: AND, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x21, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: AND, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x22, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: AND, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x23, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: AND, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x24, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: AND, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x25, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: AND, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x26, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: PREFIX, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x27, Group: 0, Extension: 0, Flags: 0x5032, Microcode: 0x144, Mnemonic: DAA, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x28, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SUB, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x29, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SUB, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x2a, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SUB, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x2b, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: SUB, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x2c, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: SUB, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x2d, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: SUB, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x2e, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: PREFIX, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x2f, Group: 0, Extension: 0, Flags: 0x5032, Microcode: 0x144, Mnemonic: DAS, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x30, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: XOR, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x31, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: XOR, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x32, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: XOR, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x33, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: XOR, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x34, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: XOR, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x35, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: XOR, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x36, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: PREFIX, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x37, Group: 0, Extension: 0, Flags: 0x5032, Microcode: 0x148, Mnemonic: AAA, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x38, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: CMP, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x39, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: CMP, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x3a, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: CMP, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x3b, Group: 0, Extension: 0, Flags: 0x4a00, Microcode: 0x008, Mnemonic: CMP, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x3c, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: CMP, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0x3d, Group: 0, Extension: 0, Flags: 0x4892, Microcode: 0x018, Mnemonic: CMP, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0x3e, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: PREFIX, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x3f, Group: 0, Extension: 0, Flags: 0x5032, Microcode: 0x148, Mnemonic: AAS, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x40, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedAX, Operand2: NoOperand},
		&Definition{Opcode: 0x41, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedCX, Operand2: NoOperand},
		&Definition{Opcode: 0x42, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedDX, Operand2: NoOperand},
		&Definition{Opcode: 0x43, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedBX, Operand2: NoOperand},
		&Definition{Opcode: 0x44, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedSP, Operand2: NoOperand},
		&Definition{Opcode: 0x45, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedBP, Operand2: NoOperand},
		&Definition{Opcode: 0x46, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedSI, Operand2: NoOperand},
		&Definition{Opcode: 0x47, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: INC, Operand1: FixedDI, Operand2: NoOperand},
		&Definition{Opcode: 0x48, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedAX, Operand2: NoOperand},
		&Definition{Opcode: 0x49, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedCX, Operand2: NoOperand},
		&Definition{Opcode: 0x4a, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedDX, Operand2: NoOperand},
		&Definition{Opcode: 0x4b, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedBX, Operand2: NoOperand},
		&Definition{Opcode: 0x4c, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedSP, Operand2: NoOperand},
		&Definition{Opcode: 0x4d, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedBP, Operand2: NoOperand},
		&Definition{Opcode: 0x4e, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedSI, Operand2: NoOperand},
		&Definition{Opcode: 0x4f, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x17c, Mnemonic: DEC, Operand1: FixedDI, Operand2: NoOperand},
		&Definition{Opcode: 0x50, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedAX, Operand2: NoOperand},
		&Definition{Opcode: 0x51, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedCX, Operand2: NoOperand},
		&Definition{Opcode: 0x52, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedDX, Operand2: NoOperand},
		&Definition{Opcode: 0x53, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedBX, Operand2: NoOperand},
		&Definition{Opcode: 0x54, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedSP, Operand2: NoOperand},
		&Definition{Opcode: 0x55, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedBP, Operand2: NoOperand},
		&Definition{Opcode: 0x56, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedSI, Operand2: NoOperand},
		&Definition{Opcode: 0x57, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x028, Mnemonic: PUSH, Operand1: FixedDI, Operand2: NoOperand},
		&Definition{Opcode: 0x58, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedAX, Operand2: NoOperand},
		&Definition{Opcode: 0x59, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedCX, Operand2: NoOperand},
		&Definition{Opcode: 0x5a, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedDX, Operand2: NoOperand},
		&Definition{Opcode: 0x5b, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedBX, Operand2: NoOperand},
		&Definition{Opcode: 0x5c, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedSP, Operand2: NoOperand},
		&Definition{Opcode: 0x5d, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedBP, Operand2: NoOperand},
		&Definition{Opcode: 0x5e, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedSI, Operand2: NoOperand},
		&Definition{Opcode: 0x5f, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x034, Mnemonic: POP, Operand1: FixedDI, Operand2: NoOperand},
		&Definition{Opcode: 0x60, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JO, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x61, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNO, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x62, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JB, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x63, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNB, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x64, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JZ, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x65, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNZ, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x66, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JBE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x67, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNBE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x68, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JS, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x69, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNS, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x6a, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JP, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x6b, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNP, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x6c, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JL, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x6d, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNL, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x6e, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JLE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x6f, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNLE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x70, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JO, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x71, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNO, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x72, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JB, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x73, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNB, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x74, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JZ, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x75, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNZ, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x76, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JBE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x77, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNBE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x78, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JS, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x79, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNS, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x7a, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JP, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x7b, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNP, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x7c, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JL, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x7d, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNL, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x7e, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JLE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x7f, Group: 0, Extension: 0, Flags: 0x0032, Microcode: 0x0e8, Mnemonic: JNLE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0x80, Group: 1, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x81, Group: 2, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x82, Group: 3, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x83, Group: 4, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x84, Group: 0, Extension: 0, Flags: 0x6800, Microcode: 0x094, Mnemonic: TEST, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x85, Group: 0, Extension: 0, Flags: 0x6800, Microcode: 0x094, Mnemonic: TEST, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x86, Group: 0, Extension: 0, Flags: 0x6800, Microcode: 0x0a4, Mnemonic: XCHG, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x87, Group: 0, Extension: 0, Flags: 0x6800, Microcode: 0x0a4, Mnemonic: XCHG, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x88, Group: 0, Extension: 0, Flags: 0x4a22, Microcode: 0x000, Mnemonic: MOV, Operand1: ModRM8, Operand2: Register8},
		&Definition{Opcode: 0x89, Group: 0, Extension: 0, Flags: 0x4a22, Microcode: 0x000, Mnemonic: MOV, Operand1: ModRM16, Operand2: Register16},
		&Definition{Opcode: 0x8a, Group: 0, Extension: 0, Flags: 0x4a20, Microcode: 0x000, Mnemonic: MOV, Operand1: Register8, Operand2: ModRM8},
		&Definition{Opcode: 0x8b, Group: 0, Extension: 0, Flags: 0x4a20, Microcode: 0x000, Mnemonic: MOV, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x8c, Group: 0, Extension: 0, Flags: 0x4322, Microcode: 0x0ec, Mnemonic: MOV, Operand1: ModRM16, Operand2: SegmentRegister},
		&Definition{Opcode: 0x8d, Group: 0, Extension: 0, Flags: 0x4022, Microcode: 0x004, Mnemonic: LEA, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0x8e, Group: 0, Extension: 0, Flags: 0x4320, Microcode: 0x0ec, Mnemonic: MOV, Operand1: SegmentRegister, Operand2: ModRM16},
		&Definition{Opcode: 0x8f, Group: 0, Extension: 0, Flags: 0x4022, Microcode: 0x040, Mnemonic: POP, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0x90, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: NOP, Operand1: FixedAX, Operand2: FixedAX},
		&Definition{Opcode: 0x91, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedCX, Operand2: FixedAX},
		&Definition{Opcode: 0x92, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedDX, Operand2: FixedAX},
		&Definition{Opcode: 0x93, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedBX, Operand2: FixedAX},
		&Definition{Opcode: 0x94, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedSP, Operand2: FixedAX},
		&Definition{Opcode: 0x95, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedBP, Operand2: FixedAX},
		&Definition{Opcode: 0x96, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedSI, Operand2: FixedAX},
		&Definition{Opcode: 0x97, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x084, Mnemonic: XCHG, Operand1: FixedDI, Operand2: FixedAX},
		&Definition{Opcode: 0x98, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x054, Mnemonic: CBW, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x99, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x058, Mnemonic: CWD, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x9a, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x070, Mnemonic: CALLF, Operand1: FarAddress, Operand2: NoOperand},
		&Definition{Opcode: 0x9b, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x0f8, Mnemonic: WAIT, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x9c, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x030, Mnemonic: PUSHF, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x9d, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x03c, Mnemonic: POPF, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x9e, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x100, Mnemonic: SAHF, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x9f, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x104, Mnemonic: LAHF, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xa0, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x060, Mnemonic: MOV, Operand1: FixedAL, Operand2: Offset8},
		&Definition{Opcode: 0xa1, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x060, Mnemonic: MOV, Operand1: FixedAX, Operand2: Offset16},
		&Definition{Opcode: 0xa2, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x064, Mnemonic: MOV, Operand1: Offset8, Operand2: FixedAL},
		&Definition{Opcode: 0xa3, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x064, Mnemonic: MOV, Operand1: Offset16, Operand2: FixedAX},
		&Definition{Opcode: 0xa4, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x12c, Mnemonic: MOVSB, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xa5, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x12c, Mnemonic: MOVSW, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xa6, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x120, Mnemonic: CMPSB, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xa7, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x120, Mnemonic: CMPSW, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xa8, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x09c, Mnemonic: TEST, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0xa9, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x09c, Mnemonic: TEST, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0xaa, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x11c, Mnemonic: STOSB, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xab, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x11c, Mnemonic: STOSW, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xac, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x12c, Mnemonic: LODSB, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xad, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x12c, Mnemonic: LODSW, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xae, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x120, Mnemonic: SCASB, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xaf, Group: 0, Extension: 0, Flags: 0x48b2, Microcode: 0x120, Mnemonic: SCASW, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xb0, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0xb1, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedCL, Operand2: Immediate8},
		&Definition{Opcode: 0xb2, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedDL, Operand2: Immediate8},
		&Definition{Opcode: 0xb3, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedBL, Operand2: Immediate8},
		&Definition{Opcode: 0xb4, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedAH, Operand2: Immediate8},
		&Definition{Opcode: 0xb5, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedCH, Operand2: Immediate8},
		&Definition{Opcode: 0xb6, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedDH, Operand2: Immediate8},
		&Definition{Opcode: 0xb7, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedBH, Operand2: Immediate8},
		&Definition{Opcode: 0xb8, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedAX, Operand2: Immediate16},
		&Definition{Opcode: 0xb9, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedCX, Operand2: Immediate16},
		&Definition{Opcode: 0xba, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedDX, Operand2: Immediate16},
		&Definition{Opcode: 0xbb, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedBX, Operand2: Immediate16},
		&Definition{Opcode: 0xbc, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedSP, Operand2: Immediate16},
		&Definition{Opcode: 0xbd, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedBP, Operand2: Immediate16},
		&Definition{Opcode: 0xbe, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedSI, Operand2: Immediate16},
		&Definition{Opcode: 0xbf, Group: 0, Extension: 0, Flags: 0x4032, Microcode: 0x01c, Mnemonic: MOV, Operand1: FixedDI, Operand2: Immediate16},
		&Definition{Opcode: 0xc0, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0cc, Mnemonic: RETN, Operand1: Immediate16, Operand2: NoOperand},
		&Definition{Opcode: 0xc1, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0bc, Mnemonic: RETN, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xc2, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0cc, Mnemonic: RETN, Operand1: Immediate16, Operand2: NoOperand},
		&Definition{Opcode: 0xc3, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0bc, Mnemonic: RETN, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xc4, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x0f0, Mnemonic: LES, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0xc5, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x0f4, Mnemonic: LDS, Operand1: Register16, Operand2: ModRM16},
		&Definition{Opcode: 0xc6, Group: 0, Extension: 0, Flags: 0x4822, Microcode: 0x014, Mnemonic: MOV, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0xc7, Group: 0, Extension: 0, Flags: 0x4822, Microcode: 0x014, Mnemonic: MOV, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0xc8, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0cc, Mnemonic: RETF, Operand1: Immediate16, Operand2: NoOperand},
		&Definition{Opcode: 0xc9, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0c0, Mnemonic: RETF, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xca, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0cc, Mnemonic: RETF, Operand1: Immediate16, Operand2: NoOperand},
		&Definition{Opcode: 0xcb, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0c0, Mnemonic: RETF, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xcc, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x1b0, Mnemonic: INT3, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xcd, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x1a8, Mnemonic: INT, Operand1: Immediate8, Operand2: NoOperand},
		&Definition{Opcode: 0xce, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x1ac, Mnemonic: INTO, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xcf, Group: 0, Extension: 0, Flags: 0x4030, Microcode: 0x0c8, Mnemonic: IRET, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 0, Flags: 0x4800, Microcode: 0x088, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 0, Flags: 0x4800, Microcode: 0x088, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 0, Flags: 0x4800, Microcode: 0x08c, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 0, Flags: 0x4800, Microcode: 0x08c, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd4, Group: 0, Extension: 0, Flags: 0x5030, Microcode: 0x174, Mnemonic: AAM, Operand1: Immediate8, Operand2: NoOperand},
		&Definition{Opcode: 0xd5, Group: 0, Extension: 0, Flags: 0x5030, Microcode: 0x170, Mnemonic: AAD, Operand1: Immediate8, Operand2: NoOperand},
		&Definition{Opcode: 0xd6, Group: 0, Extension: 0, Flags: 0x5030, Microcode: 0x0a0, Mnemonic: SALC, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd7, Group: 0, Extension: 0, Flags: 0x5030, Microcode: 0x10c, Mnemonic: XLAT, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xd8, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd9, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xda, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xdb, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xdc, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xdd, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xde, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xdf, Group: 0, Extension: 0, Flags: 0x4020, Microcode: 0x108, Mnemonic: ESC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xe0, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x138, Mnemonic: LOOPNE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0xe1, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x138, Mnemonic: LOOPE, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0xe2, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x140, Mnemonic: LOOP, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0xe3, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x134, Mnemonic: JCXZ, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0xe4, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0ac, Mnemonic: IN, Operand1: FixedAL, Operand2: Immediate8},
		&Definition{Opcode: 0xe5, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0ac, Mnemonic: IN, Operand1: FixedAX, Operand2: Immediate8},
		&Definition{Opcode: 0xe6, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0b0, Mnemonic: OUT, Operand1: Immediate8, Operand2: FixedAL},
		&Definition{Opcode: 0xe7, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0b0, Mnemonic: OUT, Operand1: Immediate8, Operand2: FixedAX},
		&Definition{Opcode: 0xe8, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x07c, Mnemonic: CALL, Operand1: Relative16, Operand2: NoOperand},
		&Definition{Opcode: 0xe9, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x0d0, Mnemonic: JMP, Operand1: Relative16, Operand2: NoOperand},
		&Definition{Opcode: 0xea, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x0e0, Mnemonic: JMPF, Operand1: FarAddress, Operand2: NoOperand},
		&Definition{Opcode: 0xeb, Group: 0, Extension: 0, Flags: 0x6030, Microcode: 0x0d0, Mnemonic: JMP, Operand1: Relative8, Operand2: NoOperand},
		&Definition{Opcode: 0xec, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0b4, Mnemonic: IN, Operand1: FixedAL, Operand2: FixedDX},
		&Definition{Opcode: 0xed, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0b4, Mnemonic: IN, Operand1: FixedAX, Operand2: FixedDX},
		&Definition{Opcode: 0xee, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0b8, Mnemonic: OUT, Operand1: FixedDX, Operand2: FixedAL},
		&Definition{Opcode: 0xef, Group: 0, Extension: 0, Flags: 0x48b3, Microcode: 0x0b8, Mnemonic: OUT, Operand1: FixedDX, Operand2: FixedAX},
		&Definition{Opcode: 0xf0, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: LOCK, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf1, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: LOCK, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf2, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: PREFIX, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf3, Group: 0, Extension: 0, Flags: 0x443a, Microcode: 0x1ff, Mnemonic: PREFIX, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf4, Group: 0, Extension: 0, Flags: 0x4432, Microcode: 0x1ff, Mnemonic: HLT, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf5, Group: 0, Extension: 0, Flags: 0x4432, Microcode: 0x1ff, Mnemonic: CMC, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 0, Flags: 0x4824, Microcode: 0x098, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 0, Flags: 0x4824, Microcode: 0x160, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf8, Group: 0, Extension: 0, Flags: 0x4472, Microcode: 0x1ff, Mnemonic: CLC, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xf9, Group: 0, Extension: 0, Flags: 0x4472, Microcode: 0x1ff, Mnemonic: STC, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xfa, Group: 0, Extension: 0, Flags: 0x4472, Microcode: 0x1ff, Mnemonic: CLI, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xfb, Group: 0, Extension: 0, Flags: 0x4472, Microcode: 0x1ff, Mnemonic: STI, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xfc, Group: 0, Extension: 0, Flags: 0x4472, Microcode: 0x1ff, Mnemonic: CLD, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xfd, Group: 0, Extension: 0, Flags: 0x4472, Microcode: 0x1ff, Mnemonic: STD, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 0, Flags: 0x0824, Microcode: 0x020, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 0, Flags: 0x0824, Microcode: 0x026, Mnemonic: Group, Operand1: NoOperand, Operand2: NoOperand},
		&Definition{Opcode: 0x80, Group: 1, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADD, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 1, Flags: 0x6800, Microcode: 0x00c, Mnemonic: OR, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 2, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADC, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 3, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SBB, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 4, Flags: 0x6800, Microcode: 0x00c, Mnemonic: AND, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 5, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SUB, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 6, Flags: 0x6800, Microcode: 0x00c, Mnemonic: XOR, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x80, Group: 1, Extension: 7, Flags: 0x6800, Microcode: 0x00c, Mnemonic: CMP, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x81, Group: 2, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADD, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 1, Flags: 0x6800, Microcode: 0x00c, Mnemonic: OR, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 2, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADC, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 3, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SBB, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 4, Flags: 0x6800, Microcode: 0x00c, Mnemonic: AND, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 5, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SUB, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 6, Flags: 0x6800, Microcode: 0x00c, Mnemonic: XOR, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x81, Group: 2, Extension: 7, Flags: 0x6800, Microcode: 0x00c, Mnemonic: CMP, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0x82, Group: 3, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADD, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 1, Flags: 0x6800, Microcode: 0x00c, Mnemonic: OR, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 2, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADC, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 3, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SBB, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 4, Flags: 0x6800, Microcode: 0x00c, Mnemonic: AND, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 5, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SUB, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 6, Flags: 0x6800, Microcode: 0x00c, Mnemonic: XOR, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x82, Group: 3, Extension: 7, Flags: 0x6800, Microcode: 0x00c, Mnemonic: CMP, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0x83, Group: 4, Extension: 0, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADD, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 1, Flags: 0x6800, Microcode: 0x00c, Mnemonic: OR, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 2, Flags: 0x6800, Microcode: 0x00c, Mnemonic: ADC, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 3, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SBB, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 4, Flags: 0x6800, Microcode: 0x00c, Mnemonic: AND, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 5, Flags: 0x6800, Microcode: 0x00c, Mnemonic: SUB, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 6, Flags: 0x6800, Microcode: 0x00c, Mnemonic: XOR, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0x83, Group: 4, Extension: 7, Flags: 0x6800, Microcode: 0x00c, Mnemonic: CMP, Operand1: ModRM16, Operand2: Immediate8SignExtended},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 0, Flags: 0x4800, Microcode: 0x088, Mnemonic: ROL, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 1, Flags: 0x4800, Microcode: 0x088, Mnemonic: ROR, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 2, Flags: 0x4800, Microcode: 0x088, Mnemonic: RCL, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 3, Flags: 0x4800, Microcode: 0x088, Mnemonic: RCR, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 4, Flags: 0x4800, Microcode: 0x088, Mnemonic: SHL, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 5, Flags: 0x4800, Microcode: 0x088, Mnemonic: SHR, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 6, Flags: 0x4800, Microcode: 0x088, Mnemonic: SETMO, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd0, Group: 5, Extension: 7, Flags: 0x4800, Microcode: 0x088, Mnemonic: SAR, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 0, Flags: 0x4800, Microcode: 0x088, Mnemonic: ROL, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 1, Flags: 0x4800, Microcode: 0x088, Mnemonic: ROR, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 2, Flags: 0x4800, Microcode: 0x088, Mnemonic: RCL, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 3, Flags: 0x4800, Microcode: 0x088, Mnemonic: RCR, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 4, Flags: 0x4800, Microcode: 0x088, Mnemonic: SHL, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 5, Flags: 0x4800, Microcode: 0x088, Mnemonic: SHR, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 6, Flags: 0x4800, Microcode: 0x088, Mnemonic: SETMO, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd1, Group: 6, Extension: 7, Flags: 0x4800, Microcode: 0x088, Mnemonic: SAR, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 0, Flags: 0x4800, Microcode: 0x08c, Mnemonic: ROL, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 1, Flags: 0x4800, Microcode: 0x08c, Mnemonic: ROR, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 2, Flags: 0x4800, Microcode: 0x08c, Mnemonic: RCL, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 3, Flags: 0x4800, Microcode: 0x08c, Mnemonic: RCR, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 4, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SHL, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 5, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SHR, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 6, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SETMOC, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd2, Group: 7, Extension: 7, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SAR, Operand1: ModRM8, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 0, Flags: 0x4800, Microcode: 0x08c, Mnemonic: ROL, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 1, Flags: 0x4800, Microcode: 0x08c, Mnemonic: ROR, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 2, Flags: 0x4800, Microcode: 0x08c, Mnemonic: RCL, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 3, Flags: 0x4800, Microcode: 0x08c, Mnemonic: RCR, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 4, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SHL, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 5, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SHR, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 6, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SETMOC, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xd3, Group: 8, Extension: 7, Flags: 0x4800, Microcode: 0x08c, Mnemonic: SAR, Operand1: ModRM16, Operand2: FixedCL},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 0, Flags: 0x4824, Microcode: 0x098, Mnemonic: TEST, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 1, Flags: 0x4824, Microcode: 0x098, Mnemonic: TEST, Operand1: ModRM8, Operand2: Immediate8},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 2, Flags: 0x4824, Microcode: 0x04c, Mnemonic: NOT, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 3, Flags: 0x4824, Microcode: 0x050, Mnemonic: NEG, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 4, Flags: 0x4824, Microcode: 0x150, Mnemonic: MUL, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 5, Flags: 0x4824, Microcode: 0x150, Mnemonic: IMUL, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 6, Flags: 0x4824, Microcode: 0x160, Mnemonic: DIV, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xf6, Group: 9, Extension: 7, Flags: 0x4824, Microcode: 0x160, Mnemonic: IDIV, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 0, Flags: 0x4824, Microcode: 0x098, Mnemonic: TEST, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 1, Flags: 0x4824, Microcode: 0x098, Mnemonic: TEST, Operand1: ModRM16, Operand2: Immediate16},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 2, Flags: 0x4824, Microcode: 0x04c, Mnemonic: NOT, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 3, Flags: 0x4824, Microcode: 0x050, Mnemonic: NEG, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 4, Flags: 0x4824, Microcode: 0x158, Mnemonic: MUL, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 5, Flags: 0x4824, Microcode: 0x158, Mnemonic: IMUL, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 6, Flags: 0x4824, Microcode: 0x168, Mnemonic: DIV, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xf7, Group: 10, Extension: 7, Flags: 0x4824, Microcode: 0x168, Mnemonic: IDIV, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 0, Flags: 0x0824, Microcode: 0x020, Mnemonic: INC, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 1, Flags: 0x0824, Microcode: 0x020, Mnemonic: DEC, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 2, Flags: 0x0824, Microcode: 0x074, Mnemonic: CALL, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 3, Flags: 0x0824, Microcode: 0x068, Mnemonic: CALLF, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 4, Flags: 0x0824, Microcode: 0x0d8, Mnemonic: JMP, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 5, Flags: 0x0824, Microcode: 0x0dc, Mnemonic: JMPF, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 6, Flags: 0x0824, Microcode: 0x026, Mnemonic: PUSH, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xfe, Group: 11, Extension: 7, Flags: 0x0824, Microcode: 0x026, Mnemonic: PUSH, Operand1: ModRM8, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 0, Flags: 0x0824, Microcode: 0x020, Mnemonic: INC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 1, Flags: 0x0824, Microcode: 0x020, Mnemonic: DEC, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 2, Flags: 0x0824, Microcode: 0x074, Mnemonic: CALL, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 3, Flags: 0x0824, Microcode: 0x068, Mnemonic: CALLF, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 4, Flags: 0x0824, Microcode: 0x0d8, Mnemonic: JMP, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 5, Flags: 0x0824, Microcode: 0x0dc, Mnemonic: JMPF, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 6, Flags: 0x0824, Microcode: 0x026, Mnemonic: PUSH, Operand1: ModRM16, Operand2: NoOperand},
		&Definition{Opcode: 0xff, Group: 12, Extension: 7, Flags: 0x0824, Microcode: 0x026, Mnemonic: PUSH, Operand1: ModRM16, Operand2: NoOperand},
	}, nil
}
