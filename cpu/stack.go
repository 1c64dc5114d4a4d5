package cpu

import (
	"errors"
)

// StackModel selects where the stack pointer is held.
type StackModel int

const (
	STACK_CURSOR = StackModel(iota) // cursor
	STACK_RSP                       // rsp
)

var stackModelNames = map[string]StackModel{
	"cursor": STACK_CURSOR,
	"rsp":    STACK_RSP,
}

// ParseStackModel parses a stack model name.
func ParseStackModel(name string) (model StackModel, err error) {
	model, ok := stackModelNames[name]
	if !ok {
		err = errors.Join(ErrConfig, ErrToken(name))
		return
	}

	return
}

func (model StackModel) String() string {
	switch model {
	case STACK_CURSOR:
		return "cursor"
	case STACK_RSP:
		return "rsp"
	}
	return f("StackModel(%d)", int(model))
}

// StackBase returns the lowest address the stack may occupy (register SS).
func (cpu *Cpu) StackBase() uint64 {
	return cpu.Registers.Read(REG_SS)
}

// StackTop returns the address just past the highest stack slot.
// The stack is empty when the stack pointer equals StackTop.
func (cpu *Cpu) StackTop() uint64 {
	return cpu.Memory.Size()
}

// StackPointer returns the stack pointer for the configured model.
func (cpu *Cpu) StackPointer() uint64 {
	if cpu.StackModel == STACK_RSP {
		return cpu.Registers.Read(REG_RSP)
	}
	return cpu.cursor
}

func (cpu *Cpu) setStackPointer(sp uint64) {
	if cpu.StackModel == STACK_RSP {
		cpu.Registers.Write(REG_RSP, sp)
		return
	}
	cpu.cursor = sp
}

// slotAddress returns the address of byte n (LSB first) of the slot
// just below top.
func (cpu *Cpu) slotAddress(top uint64, n int) uint64 {
	if cpu.StackModel == STACK_RSP {
		return top - STACK_SLOT_SIZE + uint64(n)
	}
	return top - 1 - uint64(n)
}

// Push writes value into the next slot below the stack pointer.
// Nothing is modified if the slot would cross the stack base.
func (cpu *Cpu) Push(value uint64) (err error) {
	sp := cpu.StackPointer()
	if sp < STACK_SLOT_SIZE || sp-STACK_SLOT_SIZE < cpu.StackBase() {
		err = errors.Join(ErrStackOverflow, ErrAddress(sp))
		return
	}

	err = cpu.Memory.Check(sp-STACK_SLOT_SIZE, STACK_SLOT_SIZE)
	if err != nil {
		return
	}

	for n := range STACK_SLOT_SIZE {
		err = cpu.Memory.Write(cpu.slotAddress(sp, n), byte(value>>(8*n)))
		if err != nil {
			return
		}
	}

	cpu.setStackPointer(sp - STACK_SLOT_SIZE)

	return
}

// Pop reads the most recently pushed slot and releases it.
// Nothing is modified if the stack is empty.
func (cpu *Cpu) Pop() (value uint64, err error) {
	sp := cpu.StackPointer()
	top := cpu.StackTop()
	if sp > top || top-sp < STACK_SLOT_SIZE {
		err = errors.Join(ErrStackUnderflow, ErrAddress(sp))
		return
	}

	next := sp + STACK_SLOT_SIZE
	for n := range STACK_SLOT_SIZE {
		var data byte
		data, err = cpu.Memory.Read(cpu.slotAddress(next, n))
		if err != nil {
			return
		}
		value |= uint64(data) << (8 * n)
	}

	cpu.setStackPointer(next)

	return
}
