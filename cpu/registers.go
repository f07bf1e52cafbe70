package cpu

// This file exposes typed getters and setters for each register and each
// status flag, in both boolean and integer-bit form, per the external
// interface contract. Arithmetic and addressing logic never calls these --
// they exist for hosts (debuggers, test harnesses) that want to inspect or
// force state without going through Step.

func (c *CPU) GetA() byte   { return c.A }
func (c *CPU) SetA(v byte)  { c.A = v }
func (c *CPU) GetX() byte   { return c.X }
func (c *CPU) SetX(v byte)  { c.X = v }
func (c *CPU) GetY() byte   { return c.Y }
func (c *CPU) SetY(v byte)  { c.Y = v }
func (c *CPU) GetSP() byte  { return c.SP }
func (c *CPU) SetSP(v byte) { c.SP = v }
func (c *CPU) GetIR() byte  { return c.IR }

func (c *CPU) GetPC() uint16  { return c.PC }
func (c *CPU) SetPC(v uint16) { c.PC = v }

func (c *CPU) GetCarry() bool           { return c.Flags.Carry }
func (c *CPU) SetCarry(v bool)          { c.Flags.Carry = v }
func (c *CPU) GetZero() bool            { return c.Flags.Zero }
func (c *CPU) SetZero(v bool)           { c.Flags.Zero = v }
func (c *CPU) GetInterruptDisable() bool  { return c.Flags.InterruptDisable }
func (c *CPU) SetInterruptDisable(v bool) { c.Flags.InterruptDisable = v }
func (c *CPU) GetDecimal() bool         { return c.Flags.Decimal }
func (c *CPU) SetDecimal(v bool)        { c.Flags.Decimal = v }
func (c *CPU) GetBreak() bool           { return c.Flags.Break }
func (c *CPU) SetBreak(v bool)          { c.Flags.Break = v }
func (c *CPU) GetOverflow() bool        { return c.Flags.Overflow }
func (c *CPU) SetOverflow(v bool)       { c.Flags.Overflow = v }
func (c *CPU) GetNegative() bool        { return c.Flags.Negative }
func (c *CPU) SetNegative(v bool)       { c.Flags.Negative = v }

func boolToBit(v bool) byte {
	if v {
		return 1
	}
	return 0
}

func (c *CPU) GetCarryBit() byte  { return boolToBit(c.Flags.Carry) }
func (c *CPU) SetCarryBit(v byte) { c.Flags.Carry = v != 0 }

func (c *CPU) GetZeroBit() byte  { return boolToBit(c.Flags.Zero) }
func (c *CPU) SetZeroBit(v byte) { c.Flags.Zero = v != 0 }

func (c *CPU) GetInterruptDisableBit() byte  { return boolToBit(c.Flags.InterruptDisable) }
func (c *CPU) SetInterruptDisableBit(v byte) { c.Flags.InterruptDisable = v != 0 }

func (c *CPU) GetDecimalBit() byte  { return boolToBit(c.Flags.Decimal) }
func (c *CPU) SetDecimalBit(v byte) { c.Flags.Decimal = v != 0 }

func (c *CPU) GetBreakBit() byte  { return boolToBit(c.Flags.Break) }
func (c *CPU) SetBreakBit(v byte) { c.Flags.Break = v != 0 }

func (c *CPU) GetOverflowBit() byte  { return boolToBit(c.Flags.Overflow) }
func (c *CPU) SetOverflowBit(v byte) { c.Flags.Overflow = v != 0 }

func (c *CPU) GetNegativeBit() byte  { return boolToBit(c.Flags.Negative) }
func (c *CPU) SetNegativeBit(v byte) { c.Flags.Negative = v != 0 }
