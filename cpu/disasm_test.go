package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeDisassembly(t *testing.T) {
	assert.Equal(t, "LDA #$2A", Opcode(0xA9, 0x2A, 0x00))
	assert.Equal(t, "STA $0010", Opcode(0x8D, 0x10, 0x00))
	assert.Equal(t, "JSR $0208", Opcode(0x20, 0x08, 0x02))
	assert.Equal(t, "BRK", Opcode(0x00, 0x00, 0x00))
	assert.Equal(t, "ASL A", Opcode(0x0A, 0x00, 0x00))
	assert.Equal(t, "???", Opcode(0x02, 0x00, 0x00))
}
