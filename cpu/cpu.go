// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
	"strings"
)

// Condition flags written by CMP.
const (
	FLAG_ZERO     = "Z" // Operands are equal.
	FLAG_NEGATIVE = "N" // First operand is less than the second, signed.
)

// Config holds construction parameters of a Cpu.
type Config struct {
	MemorySize uint64 // Size of the memory bank in bytes.
	// StackSize is the reservation carved from the top of memory for the
	// stack. Zero reserves all of memory, so SS is 0.
	StackSize  uint64
	StackModel StackModel // Location of the stack pointer.
	FloatMode  FloatMode  // Conversion of floating point literals.
}

// DefaultConfig returns the zero-config setup: a DEFAULT_MEMORY_SIZE bank
// with no explicit stack reservation.
func DefaultConfig() Config {
	return Config{
		MemorySize: DEFAULT_MEMORY_SIZE,
	}
}

// Cpu is the simulation context for one execution session.
//
// A Cpu owns its register file and memory bank and must not be shared
// between goroutines. Independent sessions use independent Cpus.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Config // StackModel and FloatMode may be changed between instructions.

	Registers Registers // Register file and condition flags.
	Memory    *Memory   // Memory bank.
	Output    io.Writer // Destination of RDUMP.

	Ticks int // Successfully executed instructions.

	cursor uint64 // Stack pointer for STACK_CURSOR.
}

// NewCpu creates a Cpu with the given configuration.
func NewCpu(config Config) (cpu *Cpu, err error) {
	if config.MemorySize == 0 || config.StackSize > config.MemorySize {
		err = errors.Join(ErrConfig, fmt.Errorf("memory 0x%x, stack 0x%x", config.MemorySize, config.StackSize))
		return
	}

	cpu = &Cpu{
		Config: config,
		Memory: NewMemory(config.MemorySize),
		Output: os.Stdout,
	}

	cpu.Reset()

	return
}

// NewDefaultCpu creates a Cpu with DefaultConfig().
func NewDefaultCpu() (cpu *Cpu) {
	cpu, err := NewCpu(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return
}

// Defines returns the memory layout as assembler equates.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%#x", cpu.Memory.Size()),
		"STACK_SIZE":  fmt.Sprintf("%#x", cpu.StackTop()-cpu.StackBase()),
		"STACK_BASE":  fmt.Sprintf("%#x", cpu.StackBase()),
	})
}

// Reset the CPU state.
// - Zeroes the registers, flags and memory.
// - Zeroes the tick counter.
// - Sets SS to the stack base, and both RSP and the stack cursor to the
// top of memory (empty stack).
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Memory.Reset()
	cpu.Ticks = 0

	top := cpu.Memory.Size()
	var base uint64
	if cpu.StackSize != 0 {
		base = top - cpu.StackSize
	}

	cpu.Registers.Write(REG_SS, base)
	cpu.Registers.Write(REG_RSP, top)
	cpu.cursor = top
}

// String returns the stack state and flags as a string.
func (cpu *Cpu) String() (text string) {
	text = f("ss: %016X sp: %016X model: %v", cpu.StackBase(), cpu.StackPointer(), cpu.StackModel)
	for name, value := range cpu.Registers.Flags() {
		text += f(" %v: %v", name, value)
	}
	return
}

// Decode splits an instruction into its opcode and resolved operands.
// Decode reads state but never modifies it.
func (cpu *Cpu) Decode(text string) (op Opcode, args []Operand, err error) {
	words := strings.Fields(strings.ReplaceAll(text, ",", " "))
	if len(words) == 0 {
		err = ErrMalformedInstruction
		return
	}

	op, err = ParseOpcode(strings.ToUpper(words[0]))
	if err != nil {
		return
	}

	words = words[1:]
	form, ok := op.Form(len(words))
	if !ok {
		err = ErrArity{Opcode: op, Count: len(words)}
		return
	}

	args = make([]Operand, len(words))
	for n, word := range words {
		args[n], err = cpu.resolveOperand(form[n], word)
		if err != nil {
			args = nil
			return
		}
	}

	return
}

// Execute decodes and executes a single textual instruction.
//
// On failure the error wraps one of the Err* sentinels, and the register
// file and memory are left as they were before the call.
func (cpu *Cpu) Execute(text string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Line: text, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %v", text)
	}

	op, args, err := cpu.Decode(text)
	if err != nil {
		return
	}

	info := op.info()
	err = info.handler(cpu, info, args)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}
