package cpu

import (
	"errors"

	"github.com/ezrec/x64emu/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrMalformedInstruction = errors.New(f("malformed instruction"))
	ErrUnknownInstruction   = errors.New(f("unknown instruction"))
	ErrArityMismatch        = errors.New(f("operand count mismatch"))
	ErrUnknownOperand       = errors.New(f("unknown operand"))
	ErrUnknownRegister      = errors.New(f("unknown register"))
	ErrInvalidDestination   = errors.New(f("destination must be a register"))

	// Execution errors
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrStackOverflow  = errors.New(f("stack overflow"))
	ErrStackUnderflow = errors.New(f("stack underflow"))
	ErrOutOfBounds    = errors.New(f("memory access out of bounds"))

	// Construction errors
	ErrConfig = errors.New(f("invalid configuration"))
)

// ErrToken names the offending source token.
type ErrToken string

func (err ErrToken) Error() string {
	return f("'%v'", string(err))
}

// ErrAddress names the offending memory address.
type ErrAddress uint64

func (err ErrAddress) Error() string {
	return f("address 0x%x", uint64(err))
}

// ErrArity describes an operand count that no form of an opcode accepts.
type ErrArity struct {
	Opcode Opcode
	Count  int
}

func (err ErrArity) Error() string {
	return f("%v takes %v operands, not %v", err.Opcode, err.Opcode.Arity(), err.Count)
}

func (err ErrArity) Is(target error) bool {
	return target == ErrArityMismatch
}

// ErrInstruction wraps a failure with the instruction text that caused it.
type ErrInstruction struct {
	Line string
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("'%v' %v", err.Line, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
