// Package cpu implements the MOS Technology 6502 microprocessor: a
// fetch-decode-execute engine over an externally supplied memory bus.
//
// The CPU owns no memory. It reads instructions and data exclusively through
// a mem.Bus, and every register -- A, X, Y, the program counter, the stack
// pointer, and the packed status word -- is plain architectural state,
// mutated by Step and Reset, and by the setters a host uses to force state.
package cpu

import (
	"fmt"

	"github.com/golang/glog"

	"sixty502/internal/bits"
	"sixty502/mem"
)

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE

	stackBase uint16 = 0x0100
)

// StatusFlags holds the seven semantic bits of the 6502 status register.
// Bit 5 (the "unused" bit) is not modeled here; GetStatus synthesizes it as
// always-1 and SetStatus ignores it on input.
//
// 7654 3210
// NV-BDIZC
type StatusFlags struct {
	Negative         bool
	Overflow         bool
	Break            bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// CPU is the architectural state of a 6502: three data registers, a program
// counter, a stack pointer, an instruction register, and the status word.
// It has no memory of its own; Bus must be set via SetBus before Step or
// Reset are called.
type CPU struct {
	bus mem.Bus

	A  byte
	X  byte
	Y  byte
	PC uint16
	SP byte
	IR byte

	Flags StatusFlags

	// OpTrap is raised when Step decodes a byte with no handler (the
	// standard NMOS illegal-opcode set). The instruction is a no-op:
	// registers, memory, and flags are left exactly as they were.
	OpTrap bool

	// addr is the PC at which the current instruction was fetched, kept
	// for introspection (Line, verbose logging).
	addr uint16
	args [2]byte
	mode AddressingMode

	// effAddr/effData mirror the "effective address"/"effective data"
	// fields of the reference design: effAddr defaults to the sentinel
	// 0xFFFFFF and effData to -1 at the start of every step, and are
	// filled in by decodeAddress/operand as the current instruction
	// requires. They exist for debugging, not for correctness.
	effAddr uint32
	effData int32

	verboseLog bool
}

// New returns a CPU with no bus attached. SetBus must be called before
// Reset or Step.
func New() *CPU {
	return &CPU{}
}

// SetBus wires the CPU to its memory bus.
func (c *CPU) SetBus(b mem.Bus) { c.bus = b }

// GetBus returns the CPU's current bus, or nil if none has been set.
func (c *CPU) GetBus() mem.Bus { return c.bus }

// SetVerboseLogging enables or disables per-instruction glog output. Off by
// default; with it off, Step and Reset pay only a boolean check.
func (c *CPU) SetVerboseLogging(v bool) { c.verboseLog = v }

func (c *CPU) busRead(addr uint16) (byte, error) {
	b, err := c.bus.Read(addr)
	if err != nil {
		return 0, fmt.Errorf("cpu: read $%04x: %w", addr, err)
	}
	return b, nil
}

func (c *CPU) busWrite(addr uint16, v byte) error {
	if err := c.bus.Write(addr, v); err != nil {
		return fmt.Errorf("cpu: write $%04x: %w", addr, err)
	}
	return nil
}

// push writes v to the stack page at the current SP, then decrements SP,
// wrapping modulo 256.
func (c *CPU) push(v byte) error {
	err := c.busWrite(stackBase|uint16(c.SP), v)
	c.SP--
	return err
}

// pop increments SP, wrapping modulo 256, then reads the stack page at the
// new SP.
func (c *CPU) pop() (byte, error) {
	c.SP++
	return c.busRead(stackBase | uint16(c.SP))
}

// GetStatus packs the seven semantic flags into a byte, with bit 5 always
// reported as 1.
func (c *CPU) GetStatus() byte {
	var p byte = 0x20
	p = bits.WithBit(p, 0, c.Flags.Carry)
	p = bits.WithBit(p, 1, c.Flags.Zero)
	p = bits.WithBit(p, 2, c.Flags.InterruptDisable)
	p = bits.WithBit(p, 3, c.Flags.Decimal)
	p = bits.WithBit(p, 4, c.Flags.Break)
	p = bits.WithBit(p, 6, c.Flags.Overflow)
	p = bits.WithBit(p, 7, c.Flags.Negative)
	return p
}

// SetStatus unpacks p into the seven semantic flags. Bit 5 is ignored.
func (c *CPU) SetStatus(p byte) {
	c.Flags.Carry = bits.IsSet(p, 0)
	c.Flags.Zero = bits.IsSet(p, 1)
	c.Flags.InterruptDisable = bits.IsSet(p, 2)
	c.Flags.Decimal = bits.IsSet(p, 3)
	c.Flags.Break = bits.IsSet(p, 4)
	c.Flags.Overflow = bits.IsSet(p, 6)
	c.Flags.Negative = bits.IsSet(p, 7)
}

// StatusString renders the flags as "[NV-BDIZC]", each letter present if
// set, '.' if clear; bit 5 always renders as '-'.
func (c *CPU) StatusString() string {
	ch := func(set bool, letter byte) byte {
		if set {
			return letter
		}
		return '.'
	}
	b := [8]byte{
		ch(c.Flags.Negative, 'N'),
		ch(c.Flags.Overflow, 'V'),
		'-',
		ch(c.Flags.Break, 'B'),
		ch(c.Flags.Decimal, 'D'),
		ch(c.Flags.InterruptDisable, 'I'),
		ch(c.Flags.Zero, 'Z'),
		ch(c.Flags.Carry, 'C'),
	}
	return "[" + string(b[:]) + "]"
}

// GetOpTrap reports whether the last-decoded opcode was illegal.
func (c *CPU) GetOpTrap() bool { return c.OpTrap }

// SetOpTrap forces the op-trap flag; provided for hosts that want to
// simulate a trap without decoding one.
func (c *CPU) SetOpTrap(v bool) { c.OpTrap = v }

// ClearOpTrap clears the op-trap flag.
func (c *CPU) ClearOpTrap() { c.OpTrap = false }

// Line renders the current instruction in the form
// "$PPPP  OPCODE        A=$AA  X=$XX  Y=$YY  PC=$PPPP  P=[NV-BDIZC]".
func (c *CPU) Line() string {
	name := opcodeTable[c.IR].name
	if name == "" {
		name = "???"
	}
	return fmt.Sprintf("$%04X  %-12s  A=$%02X  X=$%02X  Y=$%02X  PC=$%04X  P=%s",
		c.addr, name, c.A, c.X, c.Y, c.PC, c.StatusString())
}

// Reset performs the 6502 reset sequence: SP is set to 0xFF, IR and the
// carry/interrupt/decimal/break/overflow flags are cleared, OpTrap is
// cleared, and PC is loaded from the reset vector. A, X, Y, Z, and N are
// left untouched (undefined on real hardware).
func (c *CPU) Reset() error {
	c.SP = 0xFF
	c.IR = 0
	c.Flags.Carry = false
	c.Flags.InterruptDisable = false
	c.Flags.Decimal = false
	c.Flags.Break = false
	c.Flags.Overflow = false
	c.OpTrap = false

	lo, err := c.busRead(vectorReset)
	if err != nil {
		return err
	}
	hi, err := c.busRead(vectorReset + 1)
	if err != nil {
		return err
	}
	c.PC = uint16(lo) | uint16(hi)<<8

	if c.verboseLog {
		glog.V(1).Infof("cpu: reset, pc=$%04x", c.PC)
	}
	return nil
}

// Step executes exactly one instruction: fetch, decode addressing mode and
// operands, compute the effective address, and dispatch. A bus failure
// aborts the step and propagates out; any state mutated before the failure
// remains mutated, matching real hardware's lack of rollback.
func (c *CPU) Step() error {
	c.addr = c.PC

	op, err := c.busRead(c.PC)
	if err != nil {
		return err
	}
	c.IR = op
	c.PC++
	c.OpTrap = false

	entry := &opcodeTable[op]
	if entry.fn == nil {
		c.OpTrap = true
		if c.verboseLog {
			glog.V(2).Infof("cpu: op trap at $%04x: opcode $%02x", c.addr, op)
		}
		return nil
	}

	c.mode = entry.mode
	size := instructionSize(entry.mode)
	for i := 0; i < int(size)-1; i++ {
		b, err := c.busRead(c.PC)
		if err != nil {
			return err
		}
		c.args[i] = b
		c.PC++
	}

	c.effAddr = 0xFFFFFF
	c.effData = -1

	if err := c.decodeAddress(entry.mode); err != nil {
		return err
	}

	if err := entry.fn(c); err != nil {
		return err
	}

	if c.verboseLog {
		glog.V(2).Info(c.Line())
	}
	return nil
}

// StepN invokes Step n times, aborting on the first error.
func (c *CPU) StepN(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// decodeAddress resolves the effective address for mode from the already
// fetched operand bytes in c.args, issuing whatever bus reads the
// addressing mode itself requires (the indexed-indirect modes must read
// through a zero-page pointer to find their target). It never reads the
// final operand at the effective address -- that is left to operand(),
// called lazily by instructions that need data, so that store instructions
// never perform a spurious read.
func (c *CPU) decodeAddress(mode AddressingMode) error {
	switch mode {
	case Implied, Accumulator, Immediate, Relative:
		return nil

	case ZeroPage:
		c.effAddr = uint32(c.args[0])

	case ZeroPageX:
		c.effAddr = uint32((c.args[0] + c.X) & 0xFF)

	case ZeroPageY:
		c.effAddr = uint32((c.args[0] + c.Y) & 0xFF)

	case IndirectX:
		ptr := (c.args[0] + c.X) & 0xFF
		lo, err := c.busRead(uint16(ptr))
		if err != nil {
			return err
		}
		hi, err := c.busRead(uint16((ptr + 1) & 0xFF))
		if err != nil {
			return err
		}
		c.effAddr = uint32(uint16(lo) | uint16(hi)<<8)

	case IndirectY:
		lo, err := c.busRead(uint16(c.args[0]))
		if err != nil {
			return err
		}
		hi, err := c.busRead(uint16((c.args[0] + 1) & 0xFF))
		if err != nil {
			return err
		}
		base := uint16(lo) | uint16(hi)<<8
		c.effAddr = uint32(base + uint16(c.Y))

	case Absolute:
		c.effAddr = uint32(uint16(c.args[0]) | uint16(c.args[1])<<8)

	case AbsoluteX:
		base := uint16(c.args[0]) | uint16(c.args[1])<<8
		c.effAddr = uint32(base + uint16(c.X))

	case AbsoluteY:
		base := uint16(c.args[0]) | uint16(c.args[1])<<8
		c.effAddr = uint32(base + uint16(c.Y))

	case Indirect:
		ptr := uint16(c.args[0]) | uint16(c.args[1])<<8
		lo, err := c.busRead(ptr)
		if err != nil {
			return err
		}
		hi, err := c.busRead(ptr + 1)
		if err != nil {
			return err
		}
		c.effAddr = uint32(uint16(lo) | uint16(hi)<<8)
	}
	return nil
}

// operand returns the byte the current instruction operates on: the
// accumulator in Accumulator mode, the fetched byte in Immediate mode, or a
// bus read at the effective address otherwise.
func (c *CPU) operand() (byte, error) {
	switch c.mode {
	case Accumulator:
		c.effData = int32(c.A)
		return c.A, nil
	case Immediate:
		c.effData = int32(c.args[0])
		return c.args[0], nil
	default:
		b, err := c.busRead(uint16(c.effAddr))
		if err != nil {
			return 0, err
		}
		c.effData = int32(b)
		return b, nil
	}
}

// storeResult writes v back to wherever operand() would have read from:
// the accumulator in Accumulator mode, memory at the effective address
// otherwise.
func (c *CPU) storeResult(v byte) error {
	if c.mode == Accumulator {
		c.A = v
		return nil
	}
	return c.busWrite(uint16(c.effAddr), v)
}

func (c *CPU) setNZ(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}
