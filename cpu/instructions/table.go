package instructions

// jamOpcodes lists the twelve undocumented single-byte KIL/JAM opcodes that
// halt the processor in this instruction set.
var jamOpcodes = [...]uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2}

// entries is the sparse source of the decode table, keyed by opcode. Table
// is built from this map at package init so the source stays organised by
// mnemonic rather than by numeric opcode order.
var entries = map[uint8]Definition{
	// LDA
	0xA9: {Mnemonic: "LDA", Uop: LDA, Mode: IMM, NCycles: 2},
	0xA5: {Mnemonic: "LDA", Uop: LDA, Mode: Z, NCycles: 3},
	0xB5: {Mnemonic: "LDA", Uop: LDA, Mode: ZX, NCycles: 4},
	0xAD: {Mnemonic: "LDA", Uop: LDA, Mode: ABS, NCycles: 4},
	0xBD: {Mnemonic: "LDA", Uop: LDA, Mode: ABSX, NCycles: 4, XPageStall: true},
	0xB9: {Mnemonic: "LDA", Uop: LDA, Mode: ABSY, NCycles: 4, XPageStall: true},
	0xA1: {Mnemonic: "LDA", Uop: LDA, Mode: INDX, NCycles: 6},
	0xB1: {Mnemonic: "LDA", Uop: LDA, Mode: INDY, NCycles: 5, XPageStall: true},

	// LDX
	0xA2: {Mnemonic: "LDX", Uop: LDX, Mode: IMM, NCycles: 2},
	0xA6: {Mnemonic: "LDX", Uop: LDX, Mode: Z, NCycles: 3},
	0xB6: {Mnemonic: "LDX", Uop: LDX, Mode: ZY, NCycles: 4},
	0xAE: {Mnemonic: "LDX", Uop: LDX, Mode: ABS, NCycles: 4},
	0xBE: {Mnemonic: "LDX", Uop: LDX, Mode: ABSY, NCycles: 4, XPageStall: true},

	// LDY
	0xA0: {Mnemonic: "LDY", Uop: LDY, Mode: IMM, NCycles: 2},
	0xA4: {Mnemonic: "LDY", Uop: LDY, Mode: Z, NCycles: 3},
	0xB4: {Mnemonic: "LDY", Uop: LDY, Mode: ZX, NCycles: 4},
	0xAC: {Mnemonic: "LDY", Uop: LDY, Mode: ABS, NCycles: 4},
	0xBC: {Mnemonic: "LDY", Uop: LDY, Mode: ABSX, NCycles: 4, XPageStall: true},

	// STA
	0x85: {Mnemonic: "STA", Uop: STA, Mode: Z, NCycles: 3},
	0x95: {Mnemonic: "STA", Uop: STA, Mode: ZX, NCycles: 4},
	0x8D: {Mnemonic: "STA", Uop: STA, Mode: ABS, NCycles: 4},
	0x9D: {Mnemonic: "STA", Uop: STA, Mode: ABSX, NCycles: 5, AlwaysStall: true},
	0x99: {Mnemonic: "STA", Uop: STA, Mode: ABSY, NCycles: 5, AlwaysStall: true},
	0x81: {Mnemonic: "STA", Uop: STA, Mode: INDX, NCycles: 6},
	0x91: {Mnemonic: "STA", Uop: STA, Mode: INDY, NCycles: 6, AlwaysStall: true},

	// STX / STY
	0x86: {Mnemonic: "STX", Uop: STX, Mode: Z, NCycles: 3},
	0x96: {Mnemonic: "STX", Uop: STX, Mode: ZY, NCycles: 4},
	0x8E: {Mnemonic: "STX", Uop: STX, Mode: ABS, NCycles: 4},
	0x84: {Mnemonic: "STY", Uop: STY, Mode: Z, NCycles: 3},
	0x94: {Mnemonic: "STY", Uop: STY, Mode: ZX, NCycles: 4},
	0x8C: {Mnemonic: "STY", Uop: STY, Mode: ABS, NCycles: 4},

	// register transfers
	0xAA: {Mnemonic: "TAX", Uop: TAX, Mode: IMP, NCycles: 2},
	0xA8: {Mnemonic: "TAY", Uop: TAY, Mode: IMP, NCycles: 2},
	0xBA: {Mnemonic: "TSX", Uop: TSX, Mode: IMP, NCycles: 2},
	0x8A: {Mnemonic: "TXA", Uop: TXA, Mode: IMP, NCycles: 2},
	0x9A: {Mnemonic: "TXS", Uop: TXS, Mode: IMP, NCycles: 2},
	0x98: {Mnemonic: "TYA", Uop: TYA, Mode: IMP, NCycles: 2},

	// stack
	0x48: {Mnemonic: "PHA", Uop: PHA, Mode: IMP, NCycles: 3},
	0x68: {Mnemonic: "PLA", Uop: PLA, Mode: IMP, NCycles: 4},
	0x08: {Mnemonic: "PHP", Uop: PHP, Mode: IMP, NCycles: 3},
	0x28: {Mnemonic: "PLP", Uop: PLP, Mode: IMP, NCycles: 4},

	// increment / decrement
	0xE6: {Mnemonic: "INC", Uop: INC, Mode: Z, NCycles: 5, RMW: true},
	0xF6: {Mnemonic: "INC", Uop: INC, Mode: ZX, NCycles: 6, RMW: true},
	0xEE: {Mnemonic: "INC", Uop: INC, Mode: ABS, NCycles: 6, RMW: true},
	0xFE: {Mnemonic: "INC", Uop: INC, Mode: ABSX, NCycles: 7, RMW: true, AlwaysStall: true},
	0xC6: {Mnemonic: "DEC", Uop: DEC, Mode: Z, NCycles: 5, RMW: true},
	0xD6: {Mnemonic: "DEC", Uop: DEC, Mode: ZX, NCycles: 6, RMW: true},
	0xCE: {Mnemonic: "DEC", Uop: DEC, Mode: ABS, NCycles: 6, RMW: true},
	0xDE: {Mnemonic: "DEC", Uop: DEC, Mode: ABSX, NCycles: 7, RMW: true, AlwaysStall: true},
	0xE8: {Mnemonic: "INX", Uop: INX, Mode: IMP, NCycles: 2},
	0xCA: {Mnemonic: "DEX", Uop: DEX, Mode: IMP, NCycles: 2},
	0xC8: {Mnemonic: "INY", Uop: INY, Mode: IMP, NCycles: 2},
	0x88: {Mnemonic: "DEY", Uop: DEY, Mode: IMP, NCycles: 2},

	// ADC
	0x69: {Mnemonic: "ADC", Uop: ADC, Mode: IMM, NCycles: 2},
	0x65: {Mnemonic: "ADC", Uop: ADC, Mode: Z, NCycles: 3},
	0x75: {Mnemonic: "ADC", Uop: ADC, Mode: ZX, NCycles: 4},
	0x6D: {Mnemonic: "ADC", Uop: ADC, Mode: ABS, NCycles: 4},
	0x7D: {Mnemonic: "ADC", Uop: ADC, Mode: ABSX, NCycles: 4, XPageStall: true},
	0x79: {Mnemonic: "ADC", Uop: ADC, Mode: ABSY, NCycles: 4, XPageStall: true},
	0x61: {Mnemonic: "ADC", Uop: ADC, Mode: INDX, NCycles: 6},
	0x71: {Mnemonic: "ADC", Uop: ADC, Mode: INDY, NCycles: 5, XPageStall: true},

	// SBC
	0xE9: {Mnemonic: "SBC", Uop: SBC, Mode: IMM, NCycles: 2},
	0xE5: {Mnemonic: "SBC", Uop: SBC, Mode: Z, NCycles: 3},
	0xF5: {Mnemonic: "SBC", Uop: SBC, Mode: ZX, NCycles: 4},
	0xED: {Mnemonic: "SBC", Uop: SBC, Mode: ABS, NCycles: 4},
	0xFD: {Mnemonic: "SBC", Uop: SBC, Mode: ABSX, NCycles: 4, XPageStall: true},
	0xF9: {Mnemonic: "SBC", Uop: SBC, Mode: ABSY, NCycles: 4, XPageStall: true},
	0xE1: {Mnemonic: "SBC", Uop: SBC, Mode: INDX, NCycles: 6},
	0xF1: {Mnemonic: "SBC", Uop: SBC, Mode: INDY, NCycles: 5, XPageStall: true},

	// AND
	0x29: {Mnemonic: "AND", Uop: AND, Mode: IMM, NCycles: 2},
	0x25: {Mnemonic: "AND", Uop: AND, Mode: Z, NCycles: 3},
	0x35: {Mnemonic: "AND", Uop: AND, Mode: ZX, NCycles: 4},
	0x2D: {Mnemonic: "AND", Uop: AND, Mode: ABS, NCycles: 4},
	0x3D: {Mnemonic: "AND", Uop: AND, Mode: ABSX, NCycles: 4, XPageStall: true},
	0x39: {Mnemonic: "AND", Uop: AND, Mode: ABSY, NCycles: 4, XPageStall: true},
	0x21: {Mnemonic: "AND", Uop: AND, Mode: INDX, NCycles: 6},
	0x31: {Mnemonic: "AND", Uop: AND, Mode: INDY, NCycles: 5, XPageStall: true},

	// EOR
	0x49: {Mnemonic: "EOR", Uop: EOR, Mode: IMM, NCycles: 2},
	0x45: {Mnemonic: "EOR", Uop: EOR, Mode: Z, NCycles: 3},
	0x55: {Mnemonic: "EOR", Uop: EOR, Mode: ZX, NCycles: 4},
	0x4D: {Mnemonic: "EOR", Uop: EOR, Mode: ABS, NCycles: 4},
	0x5D: {Mnemonic: "EOR", Uop: EOR, Mode: ABSX, NCycles: 4, XPageStall: true},
	0x59: {Mnemonic: "EOR", Uop: EOR, Mode: ABSY, NCycles: 4, XPageStall: true},
	0x41: {Mnemonic: "EOR", Uop: EOR, Mode: INDX, NCycles: 6},
	0x51: {Mnemonic: "EOR", Uop: EOR, Mode: INDY, NCycles: 5, XPageStall: true},

	// ORA
	0x09: {Mnemonic: "ORA", Uop: ORA, Mode: IMM, NCycles: 2},
	0x05: {Mnemonic: "ORA", Uop: ORA, Mode: Z, NCycles: 3},
	0x15: {Mnemonic: "ORA", Uop: ORA, Mode: ZX, NCycles: 4},
	0x0D: {Mnemonic: "ORA", Uop: ORA, Mode: ABS, NCycles: 4},
	0x1D: {Mnemonic: "ORA", Uop: ORA, Mode: ABSX, NCycles: 4, XPageStall: true},
	0x19: {Mnemonic: "ORA", Uop: ORA, Mode: ABSY, NCycles: 4, XPageStall: true},
	0x01: {Mnemonic: "ORA", Uop: ORA, Mode: INDX, NCycles: 6},
	0x11: {Mnemonic: "ORA", Uop: ORA, Mode: INDY, NCycles: 5, XPageStall: true},

	// shifts / rotates
	0x0A: {Mnemonic: "ASL", Uop: ASL, Mode: IMP, NCycles: 2},
	0x06: {Mnemonic: "ASL", Uop: ASL, Mode: Z, NCycles: 5, RMW: true},
	0x16: {Mnemonic: "ASL", Uop: ASL, Mode: ZX, NCycles: 6, RMW: true},
	0x0E: {Mnemonic: "ASL", Uop: ASL, Mode: ABS, NCycles: 6, RMW: true},
	0x1E: {Mnemonic: "ASL", Uop: ASL, Mode: ABSX, NCycles: 7, RMW: true, AlwaysStall: true},

	0x4A: {Mnemonic: "LSR", Uop: LSR, Mode: IMP, NCycles: 2},
	0x46: {Mnemonic: "LSR", Uop: LSR, Mode: Z, NCycles: 5, RMW: true},
	0x56: {Mnemonic: "LSR", Uop: LSR, Mode: ZX, NCycles: 6, RMW: true},
	0x4E: {Mnemonic: "LSR", Uop: LSR, Mode: ABS, NCycles: 6, RMW: true},
	0x5E: {Mnemonic: "LSR", Uop: LSR, Mode: ABSX, NCycles: 7, RMW: true, AlwaysStall: true},

	0x2A: {Mnemonic: "ROL", Uop: ROL, Mode: IMP, NCycles: 2},
	0x26: {Mnemonic: "ROL", Uop: ROL, Mode: Z, NCycles: 5, RMW: true},
	0x36: {Mnemonic: "ROL", Uop: ROL, Mode: ZX, NCycles: 6, RMW: true},
	0x2E: {Mnemonic: "ROL", Uop: ROL, Mode: ABS, NCycles: 6, RMW: true},
	0x3E: {Mnemonic: "ROL", Uop: ROL, Mode: ABSX, NCycles: 7, RMW: true, AlwaysStall: true},

	0x6A: {Mnemonic: "ROR", Uop: ROR, Mode: IMP, NCycles: 2},
	0x66: {Mnemonic: "ROR", Uop: ROR, Mode: Z, NCycles: 5, RMW: true},
	0x76: {Mnemonic: "ROR", Uop: ROR, Mode: ZX, NCycles: 6, RMW: true},
	0x6E: {Mnemonic: "ROR", Uop: ROR, Mode: ABS, NCycles: 6, RMW: true},
	0x7E: {Mnemonic: "ROR", Uop: ROR, Mode: ABSX, NCycles: 7, RMW: true, AlwaysStall: true},

	// flags
	0x18: {Mnemonic: "CLC", Uop: CLC, Mode: IMP, NCycles: 2},
	0xD8: {Mnemonic: "CLD", Uop: CLD, Mode: IMP, NCycles: 2},
	0x58: {Mnemonic: "CLI", Uop: CLI, Mode: IMP, NCycles: 2},
	0xB8: {Mnemonic: "CLV", Uop: CLV, Mode: IMP, NCycles: 2},
	0x38: {Mnemonic: "SEC", Uop: SEC, Mode: IMP, NCycles: 2},
	0xF8: {Mnemonic: "SED", Uop: SED, Mode: IMP, NCycles: 2},
	0x78: {Mnemonic: "SEI", Uop: SEI, Mode: IMP, NCycles: 2},

	// no-op
	0xEA: {Mnemonic: "NOP", Uop: NOP, Mode: IMP, NCycles: 2},
}

// Table is the full 256-entry sparse decode table, indexed by opcode byte. A
// nil entry means the opcode is unimplemented in this instruction set.
var Table [256]*Definition

func init() {
	for opcode, def := range entries {
		def := def
		Table[opcode] = &def
	}
	for _, opcode := range jamOpcodes {
		Table[opcode] = &Definition{Mnemonic: "JAM", Uop: HLT, Mode: IMP, NCycles: 1}
	}
}

// Lookup returns the decode-table entry for opcode, or nil if the opcode is
// not implemented.
func Lookup(opcode uint8) *Definition {
	return Table[opcode]
}
