package cpu

import "sixty502/internal/bits"

// This file holds one method per mnemonic, each matching the handler
// signature referenced from opcodeTable. A handler reads its operand via
// operand() (never directly from the bus) and writes it back via
// storeResult(), so the same method serves every addressing mode it's
// registered under.

// --- load/store -----------------------------------------------------------

func (c *CPU) lda() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.A = v
	c.setNZ(v)
	return nil
}

func (c *CPU) ldx() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.X = v
	c.setNZ(v)
	return nil
}

func (c *CPU) ldy() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.Y = v
	c.setNZ(v)
	return nil
}

// sta, stx, sty set N and Z from the stored register, a quirk of the
// reference implementation this core matches rather than real 6502
// hardware, which leaves flags untouched on a store.
func (c *CPU) sta() error {
	if err := c.storeResult(c.A); err != nil {
		return err
	}
	c.setNZ(c.A)
	return nil
}

func (c *CPU) stx() error {
	if err := c.storeResult(c.X); err != nil {
		return err
	}
	c.setNZ(c.X)
	return nil
}

func (c *CPU) sty() error {
	if err := c.storeResult(c.Y); err != nil {
		return err
	}
	c.setNZ(c.Y)
	return nil
}

// --- transfers -------------------------------------------------------------

func (c *CPU) tax() error { c.X = c.A; c.setNZ(c.X); return nil }
func (c *CPU) tay() error { c.Y = c.A; c.setNZ(c.Y); return nil }
func (c *CPU) txa() error { c.A = c.X; c.setNZ(c.A); return nil }
func (c *CPU) tya() error { c.A = c.Y; c.setNZ(c.A); return nil }
func (c *CPU) tsx() error { c.X = c.SP; c.setNZ(c.X); return nil }
func (c *CPU) txs() error { c.SP = c.X; return nil }

// --- stack -------------------------------------------------------------

func (c *CPU) pha() error { return c.push(c.A) }

// php always pushes the status word with the break bit set, regardless of
// the CPU's current Break flag; that bit only reads as 1 from the stack.
func (c *CPU) php() error { return c.push(c.GetStatus() | 0x10) }

func (c *CPU) pla() error {
	v, err := c.pop()
	if err != nil {
		return err
	}
	c.A = v
	c.setNZ(v)
	return nil
}

func (c *CPU) plp() error {
	v, err := c.pop()
	if err != nil {
		return err
	}
	c.SetStatus(v)
	return nil
}

// --- logic -------------------------------------------------------------

func (c *CPU) and() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.A &= v
	c.setNZ(c.A)
	return nil
}

func (c *CPU) ora() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.A |= v
	c.setNZ(c.A)
	return nil
}

func (c *CPU) eor() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.A ^= v
	c.setNZ(c.A)
	return nil
}

func (c *CPU) bit() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.Flags.Zero = c.A&v == 0
	c.Flags.Overflow = v&0x40 != 0
	c.Flags.Negative = v&0x80 != 0
	return nil
}

// --- arithmetic --------------------------------------------------------

// adc implements binary and BCD addition. In decimal mode N and V are
// forced false and Z is taken from the decimal result rather than its bit
// pattern -- real NMOS hardware leaves N and V undefined here, so this core
// picks the simpler, fully specified contract instead.
func (c *CPU) adc() error {
	m, err := c.operand()
	if err != nil {
		return err
	}
	if c.Flags.Decimal {
		result, carry := addDecimal(c.A, m, c.Flags.Carry)
		c.Flags.Carry = carry
		c.Flags.Overflow = false
		c.Flags.Negative = false
		c.Flags.Zero = result == 0
		c.A = result
		return nil
	}
	result, carry, overflow := addBinary(c.A, m, c.Flags.Carry)
	c.Flags.Carry = carry
	c.Flags.Overflow = overflow
	c.setNZ(result)
	c.A = result
	return nil
}

// sbc mirrors adc's binary/decimal split and decimal flag contract.
func (c *CPU) sbc() error {
	m, err := c.operand()
	if err != nil {
		return err
	}
	if c.Flags.Decimal {
		result, carry := subDecimal(c.A, m, c.Flags.Carry)
		c.Flags.Carry = carry
		c.Flags.Overflow = false
		c.Flags.Negative = false
		c.Flags.Zero = result == 0
		c.A = result
		return nil
	}
	result, carry, overflow := subBinary(c.A, m, c.Flags.Carry)
	c.Flags.Carry = carry
	c.Flags.Overflow = overflow
	c.setNZ(result)
	c.A = result
	return nil
}

// compare implements the CMP/CPX/CPY family. Carry and Zero follow real
// hardware; Negative is set from the sign of the plain int difference
// rather than bit 7 of the wrapped byte result, matching the reference
// implementation this core reproduces.
func (c *CPU) compare(reg, m byte) {
	diff := int(reg) - int(m)
	c.Flags.Carry = reg >= m
	c.Flags.Zero = reg == m
	c.Flags.Negative = diff > 0
}

func (c *CPU) cmp() error {
	m, err := c.operand()
	if err != nil {
		return err
	}
	c.compare(c.A, m)
	return nil
}

func (c *CPU) cpx() error {
	m, err := c.operand()
	if err != nil {
		return err
	}
	c.compare(c.X, m)
	return nil
}

func (c *CPU) cpy() error {
	m, err := c.operand()
	if err != nil {
		return err
	}
	c.compare(c.Y, m)
	return nil
}

// --- increment/decrement -------------------------------------------------

func (c *CPU) inc() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	v++
	if err := c.storeResult(v); err != nil {
		return err
	}
	c.setNZ(v)
	return nil
}

func (c *CPU) dec() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	v--
	if err := c.storeResult(v); err != nil {
		return err
	}
	c.setNZ(v)
	return nil
}

func (c *CPU) inx() error { c.X++; c.setNZ(c.X); return nil }
func (c *CPU) iny() error { c.Y++; c.setNZ(c.Y); return nil }
func (c *CPU) dex() error { c.X--; c.setNZ(c.X); return nil }
func (c *CPU) dey() error { c.Y--; c.setNZ(c.Y); return nil }

// --- shifts/rotates ------------------------------------------------------

func (c *CPU) asl() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	if err := c.storeResult(v); err != nil {
		return err
	}
	c.setNZ(v)
	return nil
}

func (c *CPU) lsr() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	if err := c.storeResult(v); err != nil {
		return err
	}
	c.setNZ(v)
	return nil
}

func (c *CPU) rol() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	oldCarry := c.Flags.Carry
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	if err := c.storeResult(v); err != nil {
		return err
	}
	c.setNZ(v)
	return nil
}

func (c *CPU) ror() error {
	v, err := c.operand()
	if err != nil {
		return err
	}
	oldCarry := c.Flags.Carry
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	if err := c.storeResult(v); err != nil {
		return err
	}
	c.setNZ(v)
	return nil
}

// --- branches ------------------------------------------------------------

// branchIf adds the instruction's signed relative offset to PC when cond is
// true. PC has already advanced past the two-byte branch instruction by the
// time this runs, matching real hardware's PC-relative addressing.
func (c *CPU) branchIf(cond bool) error {
	if cond {
		c.PC += bits.SignExtend16(c.args[0])
	}
	return nil
}

func (c *CPU) bcc() error { return c.branchIf(!c.Flags.Carry) }
func (c *CPU) bcs() error { return c.branchIf(c.Flags.Carry) }
func (c *CPU) beq() error { return c.branchIf(c.Flags.Zero) }
func (c *CPU) bne() error { return c.branchIf(!c.Flags.Zero) }
func (c *CPU) bmi() error { return c.branchIf(c.Flags.Negative) }
func (c *CPU) bpl() error { return c.branchIf(!c.Flags.Negative) }
func (c *CPU) bvc() error { return c.branchIf(!c.Flags.Overflow) }
func (c *CPU) bvs() error { return c.branchIf(c.Flags.Overflow) }

// --- jumps and subroutines ------------------------------------------------

// jmp moves PC to the already-resolved effective address. decodeAddress
// computes Indirect mode with a plain two-byte pointer read, so this core
// does not reproduce the page-boundary wraparound bug of the original
// hardware's indirect JMP.
func (c *CPU) jmp() error {
	c.PC = uint16(c.effAddr)
	return nil
}

// jsr pushes the address of the last byte of the JSR instruction (PC-1,
// since PC already points past the two-byte operand) and jumps to the
// target.
func (c *CPU) jsr() error {
	ret := c.PC - 1
	if err := c.push(byte(ret >> 8)); err != nil {
		return err
	}
	if err := c.push(byte(ret)); err != nil {
		return err
	}
	c.PC = uint16(c.effAddr)
	return nil
}

// rts pops the return address pushed by jsr and resumes one byte past it.
func (c *CPU) rts() error {
	lo, err := c.pop()
	if err != nil {
		return err
	}
	hi, err := c.pop()
	if err != nil {
		return err
	}
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return nil
}

// --- interrupts ------------------------------------------------------------

// brk pushes PC+1 (skipping the signature/padding byte that follows a BRK
// opcode), sets the Break flag, pushes the status word, disables further
// IRQs, and loads PC from the IRQ/BRK vector. If the Interrupt Disable flag
// is already set, BRK is a no-op: no push, no flag change, no PC change.
func (c *CPU) brk() error {
	if c.Flags.InterruptDisable {
		return nil
	}

	ret := c.PC + 1
	if err := c.push(byte(ret >> 8)); err != nil {
		return err
	}
	if err := c.push(byte(ret)); err != nil {
		return err
	}
	c.Flags.Break = true
	if err := c.push(c.GetStatus()); err != nil {
		return err
	}
	c.Flags.InterruptDisable = true

	lo, err := c.busRead(vectorIRQ)
	if err != nil {
		return err
	}
	hi, err := c.busRead(vectorIRQ + 1)
	if err != nil {
		return err
	}
	c.PC = uint16(lo) | uint16(hi)<<8
	return nil
}

// rti pops the status word and return address pushed by an interrupt (brk
// or an externally driven NMI/IRQ), resuming execution there exactly --
// unlike rts, the popped PC is not incremented.
func (c *CPU) rti() error {
	p, err := c.pop()
	if err != nil {
		return err
	}
	c.SetStatus(p)

	lo, err := c.pop()
	if err != nil {
		return err
	}
	hi, err := c.pop()
	if err != nil {
		return err
	}
	c.PC = uint16(lo) | uint16(hi)<<8
	return nil
}

// --- flags ---------------------------------------------------------------

func (c *CPU) clc() error { c.Flags.Carry = false; return nil }
func (c *CPU) sec() error { c.Flags.Carry = true; return nil }
func (c *CPU) cli() error { c.Flags.InterruptDisable = false; return nil }
func (c *CPU) sei() error { c.Flags.InterruptDisable = true; return nil }
func (c *CPU) cld() error { c.Flags.Decimal = false; return nil }
func (c *CPU) sed() error { c.Flags.Decimal = true; return nil }
func (c *CPU) clv() error { c.Flags.Overflow = false; return nil }

// --- misc ------------------------------------------------------------------

func (c *CPU) nop() error { return nil }
