package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLDAImmediate(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0x0200, 0xA9)
	ram.Write(0x0201, 0x2A)

	require.NoError(t, c.Step())

	assert.Equal(t, byte(0x2A), c.GetA())
	assert.False(t, c.GetZero())
	assert.False(t, c.GetNegative())
	assert.Equal(t, uint16(0x0202), c.GetPC())
}

func TestLDAImmediateZero(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0x0200, 0xA9)
	ram.Write(0x0201, 0x00)

	require.NoError(t, c.Step())

	assert.Equal(t, byte(0), c.GetA())
	assert.True(t, c.GetZero())
	assert.False(t, c.GetNegative())
}

func TestADCBinaryOverflow(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x50)
	ram.Write(0x0200, 0x69)
	ram.Write(0x0201, 0x50)

	require.NoError(t, c.Step())

	assert.Equal(t, byte(0xA0), c.GetA())
	assert.False(t, c.GetCarry())
	assert.True(t, c.GetOverflow())
	assert.True(t, c.GetNegative())
	assert.False(t, c.GetZero())
}

func TestSBCBinary(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x50)
	c.SetCarry(true)
	ram.Write(0x0200, 0xE9)
	ram.Write(0x0201, 0xF0)

	require.NoError(t, c.Step())

	assert.Equal(t, byte(0x60), c.GetA())
	assert.False(t, c.GetCarry())
	assert.False(t, c.GetOverflow())
}

func TestADCDecimal(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x25)
	c.SetCarry(false)
	c.SetDecimal(true)
	ram.Write(0x0200, 0x69)
	ram.Write(0x0201, 0x48)

	require.NoError(t, c.Step())

	assert.Equal(t, byte(0x73), c.GetA())
	assert.False(t, c.GetCarry())
	assert.False(t, c.GetZero())
	assert.False(t, c.GetNegative())
	assert.False(t, c.GetOverflow())
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0x0200, 0x20) // JSR $0208
	ram.Write(0x0201, 0x08)
	ram.Write(0x0202, 0x02)
	ram.Write(0x0208, 0x60) // RTS

	spBefore := c.GetSP()
	require.NoError(t, c.StepN(2))

	assert.Equal(t, uint16(0x0203), c.GetPC())
	assert.Equal(t, spBefore, c.GetSP())
}

func TestBRKWithInterruptDisableClear(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0xFFFE, 0x34)
	ram.Write(0xFFFF, 0x12)
	ram.Write(0x0200, 0x00)
	ram.Write(0x0201, 0xEA) // padding byte, never executed

	spBefore := c.GetSP()
	require.NoError(t, c.Step())

	assert.Equal(t, uint16(0x1234), c.GetPC())
	assert.True(t, c.GetInterruptDisable())
	assert.True(t, c.GetBreak(), "BRK must set the CPU's own Break flag, not just the pushed copy")
	assert.Equal(t, spBefore-3, c.GetSP())

	status, err := ram.Read(0x01FD)
	require.NoError(t, err)
	assert.NotZero(t, status&0x10, "break bit must be set in the pushed status")

	pcHigh, err := ram.Read(0x01FF)
	require.NoError(t, err)
	pcLow, err := ram.Read(0x01FE)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0202), uint16(pcLow)|uint16(pcHigh)<<8)
}

func TestBRKWithInterruptDisableSetIsNoOp(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0xFFFE, 0x34)
	ram.Write(0xFFFF, 0x12)
	ram.Write(0x0200, 0x00)
	c.SetInterruptDisable(true)

	spBefore := c.GetSP()
	stackByteBefore, err := ram.Read(0x01FF)
	require.NoError(t, err)

	require.NoError(t, c.Step())

	assert.Equal(t, uint16(0x0201), c.GetPC())
	assert.Equal(t, spBefore, c.GetSP())
	assert.False(t, c.GetBreak())

	stackByteAfter, err := ram.Read(0x01FF)
	require.NoError(t, err)
	assert.Equal(t, stackByteBefore, stackByteAfter, "no push should have occurred")
}

func TestIllegalOpcodeScenario(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0x0200, 0x02)
	c.SetA(1)
	c.SetX(2)
	c.SetY(3)

	require.NoError(t, c.Step())

	assert.True(t, c.GetOpTrap())
	assert.Equal(t, byte(1), c.GetA())
	assert.Equal(t, byte(2), c.GetX())
	assert.Equal(t, byte(3), c.GetY())
	assert.Equal(t, uint16(0x0201), c.GetPC())
}

func TestBranchTakenAdvancesByOffsetPlusTwo(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetZero(true)
	ram.Write(0x0200, 0xF0) // BEQ +0x10
	ram.Write(0x0201, 0x10)

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0200+2+0x10), c.GetPC())
}

func TestBranchTakenWithNegativeOffset(t *testing.T) {
	c, ram := newTestCPU(t, 0x0210)
	c.SetZero(true)
	ram.Write(0x0210, 0xF0) // BEQ -0x10
	ram.Write(0x0211, 0xF0) // -16 as two's complement

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0210+2-0x10), c.GetPC())
}

func TestBranchNotTakenFallsThrough(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetZero(false)
	ram.Write(0x0200, 0xF0) // BEQ +0x10, condition false
	ram.Write(0x0201, 0x10)

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x0202), c.GetPC())
}

func TestStackPushPopRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t, 0x0200)
	spBefore := c.GetSP()

	require.NoError(t, c.push(0x42))
	v, err := c.pop()
	require.NoError(t, err)

	assert.Equal(t, byte(0x42), v)
	assert.Equal(t, spBefore, c.GetSP())
}

func TestFirstPushAfterResetWritesTopOfStackPage(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	require.Equal(t, byte(0xFF), c.GetSP())

	require.NoError(t, c.push(0x7E))
	assert.Equal(t, byte(0xFE), c.GetSP())

	b, err := ram.Read(0x01FF)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7E), b)
}

func TestRolRorIsIdentity(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x5A)
	c.SetCarry(true)
	carryBefore := c.GetCarry()

	ram.Write(0x0200, 0x2A) // ROL A
	ram.Write(0x0201, 0x6A) // ROR A

	require.NoError(t, c.StepN(2))
	assert.Equal(t, byte(0x5A), c.GetA())
	assert.Equal(t, carryBefore, c.GetCarry())
}

func TestAdcSbcRoundTripPreservesAccumulator(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x40)
	c.SetCarry(true)

	ram.Write(0x0200, 0x69) // ADC #$20
	ram.Write(0x0201, 0x20)
	ram.Write(0x0202, 0xE9) // SBC #$20
	ram.Write(0x0203, 0x20)

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())

	assert.Equal(t, byte(0x40), c.GetA())
}

func TestCMPPreservesSignedDifferenceQuirk(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x00)
	ram.Write(0x0200, 0xC9) // CMP #$01 -- wrapped difference has bit 7 set,
	ram.Write(0x0201, 0x01) // but the signed difference is negative.

	require.NoError(t, c.Step())

	assert.False(t, c.GetCarry())
	assert.False(t, c.GetZero())
	assert.False(t, c.GetNegative())
}

func TestSTASetsNZFromStoredRegister(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetA(0x00)
	ram.Write(0x0200, 0x85) // STA $10
	ram.Write(0x0201, 0x10)

	require.NoError(t, c.Step())

	v, err := ram.Read(0x0010)
	require.NoError(t, err)
	assert.Equal(t, byte(0), v)
	assert.True(t, c.GetZero())
}

func TestJMPIndirectDoesNotEmulatePageWrapBug(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	ram.Write(0x0200, 0x6C) // JMP ($02FF)
	ram.Write(0x0201, 0xFF)
	ram.Write(0x0202, 0x02)
	ram.Write(0x02FF, 0x00)
	ram.Write(0x0300, 0x80) // the byte a buggy implementation would skip

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8000), c.GetPC())
}

func TestOperandAndIndirectIndexedAddressing(t *testing.T) {
	c, ram := newTestCPU(t, 0x0200)
	c.SetY(0x05)
	ram.Write(0x0010, 0x00)
	ram.Write(0x0011, 0x03) // pointer at $10 -> $0300
	ram.Write(0x0305, 0x99) // $0300 + Y($05)
	ram.Write(0x0200, 0xB1) // LDA ($10),Y
	ram.Write(0x0201, 0x10)

	require.NoError(t, c.Step())
	assert.Equal(t, byte(0x99), c.GetA())
}
