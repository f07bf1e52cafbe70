package cpu

// AddressingMode identifies one of the 13 ways an instruction can locate its
// operand. It is carried per opcode in opcodeTable, and drives both
// decodeAddress (effective-address resolution) and instructionSize (operand
// byte count).
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX
	IndirectY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
)

// instructionSize returns the total instruction length in bytes (opcode
// plus operand) for the given addressing mode.
func instructionSize(m AddressingMode) byte {
	switch m {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	}
	return 1
}

// opEntry pairs an opcode's mnemonic and addressing mode with the handler
// that executes it. An entry with a nil fn is an illegal opcode: Step sets
// OpTrap and performs no side effect.
type opEntry struct {
	name string
	mode AddressingMode
	fn   func(*CPU) error
}

// opcodeTable is the 256-entry dispatch table. Only the 151 opcodes of the
// documented NMOS 6502 instruction set have an entry with a non-nil fn;
// every other index is the illegal-opcode zero value.
var opcodeTable = [256]opEntry{
	0x00: {"BRK", Implied, (*CPU).brk},
	0x01: {"ORA", IndirectX, (*CPU).ora},
	0x05: {"ORA", ZeroPage, (*CPU).ora},
	0x06: {"ASL", ZeroPage, (*CPU).asl},
	0x08: {"PHP", Implied, (*CPU).php},
	0x09: {"ORA", Immediate, (*CPU).ora},
	0x0A: {"ASL", Accumulator, (*CPU).asl},
	0x0D: {"ORA", Absolute, (*CPU).ora},
	0x0E: {"ASL", Absolute, (*CPU).asl},

	0x10: {"BPL", Relative, (*CPU).bpl},
	0x11: {"ORA", IndirectY, (*CPU).ora},
	0x15: {"ORA", ZeroPageX, (*CPU).ora},
	0x16: {"ASL", ZeroPageX, (*CPU).asl},
	0x18: {"CLC", Implied, (*CPU).clc},
	0x19: {"ORA", AbsoluteY, (*CPU).ora},
	0x1D: {"ORA", AbsoluteX, (*CPU).ora},
	0x1E: {"ASL", AbsoluteX, (*CPU).asl},

	0x20: {"JSR", Absolute, (*CPU).jsr},
	0x21: {"AND", IndirectX, (*CPU).and},
	0x24: {"BIT", ZeroPage, (*CPU).bit},
	0x25: {"AND", ZeroPage, (*CPU).and},
	0x26: {"ROL", ZeroPage, (*CPU).rol},
	0x28: {"PLP", Implied, (*CPU).plp},
	0x29: {"AND", Immediate, (*CPU).and},
	0x2A: {"ROL", Accumulator, (*CPU).rol},
	0x2C: {"BIT", Absolute, (*CPU).bit},
	0x2D: {"AND", Absolute, (*CPU).and},
	0x2E: {"ROL", Absolute, (*CPU).rol},

	0x30: {"BMI", Relative, (*CPU).bmi},
	0x31: {"AND", IndirectY, (*CPU).and},
	0x35: {"AND", ZeroPageX, (*CPU).and},
	0x36: {"ROL", ZeroPageX, (*CPU).rol},
	0x38: {"SEC", Implied, (*CPU).sec},
	0x39: {"AND", AbsoluteY, (*CPU).and},
	0x3D: {"AND", AbsoluteX, (*CPU).and},
	0x3E: {"ROL", AbsoluteX, (*CPU).rol},

	0x40: {"RTI", Implied, (*CPU).rti},
	0x41: {"EOR", IndirectX, (*CPU).eor},
	0x45: {"EOR", ZeroPage, (*CPU).eor},
	0x46: {"LSR", ZeroPage, (*CPU).lsr},
	0x48: {"PHA", Implied, (*CPU).pha},
	0x49: {"EOR", Immediate, (*CPU).eor},
	0x4A: {"LSR", Accumulator, (*CPU).lsr},
	0x4C: {"JMP", Absolute, (*CPU).jmp},
	0x4D: {"EOR", Absolute, (*CPU).eor},
	0x4E: {"LSR", Absolute, (*CPU).lsr},

	0x50: {"BVC", Relative, (*CPU).bvc},
	0x51: {"EOR", IndirectY, (*CPU).eor},
	0x55: {"EOR", ZeroPageX, (*CPU).eor},
	0x56: {"LSR", ZeroPageX, (*CPU).lsr},
	0x58: {"CLI", Implied, (*CPU).cli},
	0x59: {"EOR", AbsoluteY, (*CPU).eor},
	0x5D: {"EOR", AbsoluteX, (*CPU).eor},
	0x5E: {"LSR", AbsoluteX, (*CPU).lsr},

	0x60: {"RTS", Implied, (*CPU).rts},
	0x61: {"ADC", IndirectX, (*CPU).adc},
	0x65: {"ADC", ZeroPage, (*CPU).adc},
	0x66: {"ROR", ZeroPage, (*CPU).ror},
	0x68: {"PLA", Implied, (*CPU).pla},
	0x69: {"ADC", Immediate, (*CPU).adc},
	0x6A: {"ROR", Accumulator, (*CPU).ror},
	0x6C: {"JMP", Indirect, (*CPU).jmp},
	0x6D: {"ADC", Absolute, (*CPU).adc},
	0x6E: {"ROR", Absolute, (*CPU).ror},

	0x70: {"BVS", Relative, (*CPU).bvs},
	0x71: {"ADC", IndirectY, (*CPU).adc},
	0x75: {"ADC", ZeroPageX, (*CPU).adc},
	0x76: {"ROR", ZeroPageX, (*CPU).ror},
	0x78: {"SEI", Implied, (*CPU).sei},
	0x79: {"ADC", AbsoluteY, (*CPU).adc},
	0x7D: {"ADC", AbsoluteX, (*CPU).adc},
	0x7E: {"ROR", AbsoluteX, (*CPU).ror},

	0x81: {"STA", IndirectX, (*CPU).sta},
	0x84: {"STY", ZeroPage, (*CPU).sty},
	0x85: {"STA", ZeroPage, (*CPU).sta},
	0x86: {"STX", ZeroPage, (*CPU).stx},
	0x88: {"DEY", Implied, (*CPU).dey},
	0x8A: {"TXA", Implied, (*CPU).txa},
	0x8C: {"STY", Absolute, (*CPU).sty},
	0x8D: {"STA", Absolute, (*CPU).sta},
	0x8E: {"STX", Absolute, (*CPU).stx},

	0x90: {"BCC", Relative, (*CPU).bcc},
	0x91: {"STA", IndirectY, (*CPU).sta},
	0x94: {"STY", ZeroPageX, (*CPU).sty},
	0x95: {"STA", ZeroPageX, (*CPU).sta},
	0x96: {"STX", ZeroPageY, (*CPU).stx},
	0x98: {"TYA", Implied, (*CPU).tya},
	0x99: {"STA", AbsoluteY, (*CPU).sta},
	0x9A: {"TXS", Implied, (*CPU).txs},
	0x9D: {"STA", AbsoluteX, (*CPU).sta},

	0xA0: {"LDY", Immediate, (*CPU).ldy},
	0xA1: {"LDA", IndirectX, (*CPU).lda},
	0xA2: {"LDX", Immediate, (*CPU).ldx},
	0xA4: {"LDY", ZeroPage, (*CPU).ldy},
	0xA5: {"LDA", ZeroPage, (*CPU).lda},
	0xA6: {"LDX", ZeroPage, (*CPU).ldx},
	0xA8: {"TAY", Implied, (*CPU).tay},
	0xA9: {"LDA", Immediate, (*CPU).lda},
	0xAA: {"TAX", Implied, (*CPU).tax},
	0xAC: {"LDY", Absolute, (*CPU).ldy},
	0xAD: {"LDA", Absolute, (*CPU).lda},
	0xAE: {"LDX", Absolute, (*CPU).ldx},

	0xB0: {"BCS", Relative, (*CPU).bcs},
	0xB1: {"LDA", IndirectY, (*CPU).lda},
	0xB4: {"LDY", ZeroPageX, (*CPU).ldy},
	0xB5: {"LDA", ZeroPageX, (*CPU).lda},
	0xB6: {"LDX", ZeroPageY, (*CPU).ldx},
	0xB8: {"CLV", Implied, (*CPU).clv},
	0xB9: {"LDA", AbsoluteY, (*CPU).lda},
	0xBA: {"TSX", Implied, (*CPU).tsx},
	0xBC: {"LDY", AbsoluteX, (*CPU).ldy},
	0xBD: {"LDA", AbsoluteX, (*CPU).lda},
	0xBE: {"LDX", AbsoluteY, (*CPU).ldx},

	0xC0: {"CPY", Immediate, (*CPU).cpy},
	0xC1: {"CMP", IndirectX, (*CPU).cmp},
	0xC4: {"CPY", ZeroPage, (*CPU).cpy},
	0xC5: {"CMP", ZeroPage, (*CPU).cmp},
	0xC6: {"DEC", ZeroPage, (*CPU).dec},
	0xC8: {"INY", Implied, (*CPU).iny},
	0xC9: {"CMP", Immediate, (*CPU).cmp},
	0xCA: {"DEX", Implied, (*CPU).dex},
	0xCC: {"CPY", Absolute, (*CPU).cpy},
	0xCD: {"CMP", Absolute, (*CPU).cmp},
	0xCE: {"DEC", Absolute, (*CPU).dec},

	0xD0: {"BNE", Relative, (*CPU).bne},
	0xD1: {"CMP", IndirectY, (*CPU).cmp},
	0xD5: {"CMP", ZeroPageX, (*CPU).cmp},
	0xD6: {"DEC", ZeroPageX, (*CPU).dec},
	0xD8: {"CLD", Implied, (*CPU).cld},
	0xD9: {"CMP", AbsoluteY, (*CPU).cmp},
	0xDD: {"CMP", AbsoluteX, (*CPU).cmp},
	0xDE: {"DEC", AbsoluteX, (*CPU).dec},

	0xE0: {"CPX", Immediate, (*CPU).cpx},
	0xE1: {"SBC", IndirectX, (*CPU).sbc},
	0xE4: {"CPX", ZeroPage, (*CPU).cpx},
	0xE5: {"SBC", ZeroPage, (*CPU).sbc},
	0xE6: {"INC", ZeroPage, (*CPU).inc},
	0xE8: {"INX", Implied, (*CPU).inx},
	0xE9: {"SBC", Immediate, (*CPU).sbc},
	0xEA: {"NOP", Implied, (*CPU).nop},
	0xEC: {"CPX", Absolute, (*CPU).cpx},
	0xED: {"SBC", Absolute, (*CPU).sbc},
	0xEE: {"INC", Absolute, (*CPU).inc},

	0xF0: {"BEQ", Relative, (*CPU).beq},
	0xF1: {"SBC", IndirectY, (*CPU).sbc},
	0xF5: {"SBC", ZeroPageX, (*CPU).sbc},
	0xF6: {"INC", ZeroPageX, (*CPU).inc},
	0xF8: {"SED", Implied, (*CPU).sed},
	0xF9: {"SBC", AbsoluteY, (*CPU).sbc},
	0xFD: {"SBC", AbsoluteX, (*CPU).sbc},
	0xFE: {"INC", AbsoluteX, (*CPU).inc},
}
