package cpu

// addBinary performs standard 8-bit addition with carry-in, returning the
// result, the carry out of bit 7, and whether the addition overflowed a
// signed 8-bit interpretation of the operands.
func addBinary(a, m byte, carryIn bool) (result byte, carryOut, overflow bool) {
	cin := 0
	if carryIn {
		cin = 1
	}
	sum := int(a) + int(m) + cin
	result = byte(sum)
	carryOut = sum > 0xFF
	overflow = (int(a)^int(result))&(int(m)^int(result))&0x80 != 0
	return result, carryOut, overflow
}

// subBinary computes A - M - (1-C) the way the 6502 ALU does it: SBC is ADC
// with the subtrahend's bits inverted, using the same carry-in.
func subBinary(a, m byte, carryIn bool) (result byte, carryOut, overflow bool) {
	return addBinary(a, ^m, carryIn)
}

// addDecimal performs BCD addition one nibble at a time, carrying a digit
// into the next when a nibble exceeds 9.
func addDecimal(a, m byte, carryIn bool) (result byte, carryOut bool) {
	cin := byte(0)
	if carryIn {
		cin = 1
	}
	lo := (a & 0x0F) + (m & 0x0F) + cin
	hi := (a >> 4) + (m >> 4)
	if lo > 9 {
		lo += 6
		hi++
	}
	if hi > 9 {
		hi += 6
		carryOut = true
	}
	result = (hi << 4) | (lo & 0x0F)
	return result, carryOut
}

// subDecimal performs BCD subtraction one nibble at a time, borrowing a
// digit from the next nibble when the low nibble underflows.
func subDecimal(a, m byte, carryIn bool) (result byte, carryOut bool) {
	borrow := 0
	if !carryIn {
		borrow = 1
	}
	lo := int(a&0x0F) - int(m&0x0F) - borrow
	hi := int(a>>4) - int(m>>4)
	if lo < 0 {
		lo += 10
		hi--
	}
	if hi < 0 {
		hi += 10
	} else {
		carryOut = true
	}
	result = byte(hi<<4) | byte(lo&0x0F)
	return result, carryOut
}
