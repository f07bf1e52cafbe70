// Package mem defines the memory bus contract the cpu package depends on,
// and provides a flat RAM implementation of it.
//
// The CPU owns no memory of its own. Every instruction that touches memory
// does so through a Bus, so a host can interpose ROM, memory-mapped
// devices, or mirroring without the cpu package knowing anything about it.
package mem

import "fmt"

// A Bus is the contract the cpu package depends on: two operations, either
// of which may fail. Implementations decide what "address" means beyond
// the 16-bit range the CPU presents -- mirroring, bank switching, and
// memory-mapped I/O all live on this side of the interface.
type Bus interface {
	Read(addr uint16) (byte, error)
	Write(addr uint16, data byte) error
}

// AccessError is the single error kind a Bus is permitted to raise. The CPU
// never constructs one itself; it only propagates whatever the Bus returns.
type AccessError struct {
	Addr uint16
	Op   string // "read" or "write"
	Msg  string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("mem: %s at $%04x: %s", e.Op, e.Addr, e.Msg)
}

// RAM is a flat, unmirrored 64KiB address space. Every uint16 address is
// valid, so Read and Write never fail. Suitable for tests and the step502
// demo; a host with memory-mapped devices or partial address decoding
// should supply its own Bus.
type RAM [64 * 1024]byte

func (r *RAM) Read(addr uint16) (byte, error) {
	return r[addr], nil
}

func (r *RAM) Write(addr uint16, data byte) error {
	r[addr] = data
	return nil
}

// Load copies program into RAM starting at addr, wrapping at the top of the
// address space.
func (r *RAM) Load(addr uint16, program []byte) {
	for i, b := range program {
		r[addr+uint16(i)] = b
	}
}
