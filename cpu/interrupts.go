package cpu

// nmi performs the non-maskable-interrupt sequence: push PC and status
// (break clear), disable further IRQs, and load PC from the NMI vector.
//
// Step never calls this -- nothing in the instruction set or the fetch
// loop raises an NMI, since line-level interrupt assertion is a property
// of a host's wiring, not of the core. The method is unexported, so code
// outside this package cannot call it either.
func (c *CPU) nmi() error {
	ret := c.PC
	if err := c.push(byte(ret >> 8)); err != nil {
		return err
	}
	if err := c.push(byte(ret)); err != nil {
		return err
	}
	if err := c.push(c.GetStatus() &^ 0x10); err != nil {
		return err
	}
	c.Flags.InterruptDisable = true

	lo, err := c.busRead(vectorNMI)
	if err != nil {
		return err
	}
	hi, err := c.busRead(vectorNMI + 1)
	if err != nil {
		return err
	}
	c.PC = uint16(lo) | uint16(hi)<<8
	return nil
}
