package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSetWithBit(t *testing.T) {
	var b byte = 0b1101_1000

	assert.True(t, IsSet(b, 3))
	assert.True(t, IsSet(b, 4))
	assert.False(t, IsSet(b, 2))
	assert.True(t, IsSet(b, 7))

	b = WithBit(b, 0, true)
	assert.Equal(t, byte(0b1101_1001), b)

	b = WithBit(b, 7, false)
	assert.Equal(t, byte(0b0101_1001), b)
}

func TestLast(t *testing.T) {
	assert.Equal(t, byte(0b0000_1111), Last(0b1010_1111, 4))
	assert.Equal(t, byte(0b0000_0011), Last(0b1111_1011, 2))
	assert.Equal(t, byte(0), Last(0b1111_1111, 0))
}

func TestSignExtend16(t *testing.T) {
	assert.Equal(t, uint16(0x0001), SignExtend16(0x01))
	assert.Equal(t, uint16(0xffff), SignExtend16(0xff))
	assert.Equal(t, uint16(0xff80), SignExtend16(0x80))
	assert.Equal(t, uint16(0x007f), SignExtend16(0x7f))
}
