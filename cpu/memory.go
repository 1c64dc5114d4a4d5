package cpu

import (
	"errors"
)

const (
	DEFAULT_MEMORY_SIZE = 0x0f_ffff // Zero-config memory bank size.
	STACK_SLOT_SIZE     = 8         // Bytes occupied by one pushed value.
)

// Memory is a fixed size, zero initialized, byte addressable bank.
type Memory struct {
	data []byte
}

// NewMemory creates a memory bank of size bytes.
func NewMemory(size uint64) *Memory {
	return &Memory{
		data: make([]byte, size),
	}
}

// Size returns the number of addressable bytes.
func (mem *Memory) Size() uint64 {
	return uint64(len(mem.data))
}

// Check verifies that all count bytes starting at addr are addressable.
func (mem *Memory) Check(addr uint64, count uint64) (err error) {
	size := mem.Size()
	if addr >= size || count > size-addr {
		err = errors.Join(ErrOutOfBounds, ErrAddress(addr))
		return
	}

	return
}

// Read a single byte.
func (mem *Memory) Read(addr uint64) (value byte, err error) {
	err = mem.Check(addr, 1)
	if err != nil {
		return
	}

	value = mem.data[addr]
	return
}

// Write a single byte.
func (mem *Memory) Write(addr uint64, value byte) (err error) {
	err = mem.Check(addr, 1)
	if err != nil {
		return
	}

	mem.data[addr] = value
	return
}

// Reset zeroes the bank.
func (mem *Memory) Reset() {
	clear(mem.data)
}
