package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddBinaryCarryAndOverflow(t *testing.T) {
	result, carry, overflow := addBinary(0x7F, 0x01, false)
	assert.Equal(t, byte(0x80), result)
	assert.False(t, carry)
	assert.True(t, overflow, "0x7F + 0x01 overflows a signed byte")

	result, carry, overflow = addBinary(0xFF, 0x01, false)
	assert.Equal(t, byte(0x00), result)
	assert.True(t, carry)
	assert.False(t, overflow)
}

func TestSubBinaryMatchesAddBinaryOfComplement(t *testing.T) {
	result, carry, _ := subBinary(0x50, 0xF0, true)
	assert.Equal(t, byte(0x60), result)
	assert.False(t, carry)
}

func TestAddDecimalCarriesBetweenNibbles(t *testing.T) {
	result, carry := addDecimal(0x25, 0x48, false)
	assert.Equal(t, byte(0x73), result)
	assert.False(t, carry)

	result, carry = addDecimal(0x99, 0x01, false)
	assert.Equal(t, byte(0x00), result)
	assert.True(t, carry)
}

func TestSubDecimalBorrowsBetweenNibbles(t *testing.T) {
	result, carry := subDecimal(0x42, 0x13, true)
	assert.Equal(t, byte(0x29), result)
	assert.True(t, carry)

	result, carry = subDecimal(0x00, 0x01, true)
	assert.Equal(t, byte(0x99), result)
	assert.False(t, carry)
}
