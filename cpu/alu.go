package cpu

import (
	"errors"
)

// AluOp is an arithmetic or logic operation.
type AluOp int

const (
	ALU_OP_ADD = AluOp(iota) // add
	ALU_OP_SUB               // sub
	ALU_OP_AND               // and
	ALU_OP_OR                // or
	ALU_OP_XOR               // xor
	ALU_OP_MUL               // mul
	ALU_OP_DIV               // div
	ALU_OP_NEG               // neg
	ALU_OP_NOT               // not
	ALU_OP_LSL               // lsl
	ALU_OP_LSR               // lsr
)

var aluNames = [...]string{
	ALU_OP_ADD: "add",
	ALU_OP_SUB: "sub",
	ALU_OP_AND: "and",
	ALU_OP_OR:  "or",
	ALU_OP_XOR: "xor",
	ALU_OP_MUL: "mul",
	ALU_OP_DIV: "div",
	ALU_OP_NEG: "neg",
	ALU_OP_NOT: "not",
	ALU_OP_LSL: "lsl",
	ALU_OP_LSR: "lsr",
}

func (op AluOp) String() string {
	if op < 0 || int(op) >= len(aluNames) {
		return f("AluOp(%d)", int(op))
	}
	return aluNames[op]
}

// Unary returns true if the operation ignores its second operand.
func (op AluOp) Unary() bool {
	return op == ALU_OP_NEG || op == ALU_OP_NOT
}

// Alu computes a op b over 64-bit two's complement values.
//
// ADD, SUB and MUL wrap. DIV is signed and truncates toward zero.
// Shift amounts use only their low 6 bits. NEG and NOT ignore b.
func Alu(op AluOp, a, b uint64) (output uint64, err error) {
	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_SUB:
		output = a - b
	case ALU_OP_AND:
		output = a & b
	case ALU_OP_OR:
		output = a | b
	case ALU_OP_XOR:
		output = a ^ b
	case ALU_OP_MUL:
		output = a * b
	case ALU_OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		// MinInt64 / -1 wraps back to MinInt64.
		output = uint64(int64(a) / int64(b))
	case ALU_OP_NEG:
		output = -a
	case ALU_OP_NOT:
		output = ^a
	case ALU_OP_LSL:
		output = a << (b & 0x3f)
	case ALU_OP_LSR:
		output = a >> (b & 0x3f)
	default:
		err = errors.Join(ErrUnknownInstruction, ErrToken(op.String()))
	}

	return
}

// Compare returns the equal (Z) and signed less-than (N) conditions of a and b.
func Compare(a, b uint64) (z, n bool) {
	z = a == b
	n = int64(a) < int64(b)
	return
}
