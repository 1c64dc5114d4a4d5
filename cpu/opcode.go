package cpu

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Opcode is an instruction mnemonic.
type Opcode int

const (
	OP_MOV   = Opcode(iota) // MOV
	OP_ADD                  // ADD
	OP_SUB                  // SUB
	OP_AND                  // AND
	OP_OR                   // OR
	OP_XOR                  // XOR
	OP_MUL                  // MUL
	OP_DIV                  // DIV
	OP_NEG                  // NEG
	OP_NOT                  // NOT
	OP_LSL                  // LSL
	OP_LSR                  // LSR
	OP_CMP                  // CMP
	OP_PUSH                 // PUSH
	OP_POP                  // POP
	OP_RDUMP                // RDUMP
)

// OperandForm lists the operand kinds of one accepted operand layout.
type OperandForm []OperandKind

// opcodeHandler applies a decoded instruction. Operands are fully resolved
// and validated; the handler must not mutate state before it can no
// longer fail.
type opcodeHandler func(cpu *Cpu, info *opcodeInfo, args []Operand) error

type opcodeInfo struct {
	name    string
	forms   []OperandForm
	alu     AluOp
	handler opcodeHandler
}

var (
	formNone       = OperandForm{}
	formDest       = OperandForm{OPERAND_DEST}
	formValue      = OperandForm{OPERAND_VALUE}
	formDestValue  = OperandForm{OPERAND_DEST, OPERAND_VALUE}
	formValueValue = OperandForm{OPERAND_VALUE, OPERAND_VALUE}
	formDestPair   = OperandForm{OPERAND_DEST, OPERAND_VALUE, OPERAND_VALUE}
)

// opcodeTable is indexed by Opcode.
var opcodeTable = [...]opcodeInfo{
	OP_MOV:   {"MOV", []OperandForm{formDestValue}, 0, doMov},
	OP_ADD:   {"ADD", []OperandForm{formDestValue, formDestPair}, ALU_OP_ADD, doAlu},
	OP_SUB:   {"SUB", []OperandForm{formDestValue, formDestPair}, ALU_OP_SUB, doAlu},
	OP_AND:   {"AND", []OperandForm{formDestValue, formDestPair}, ALU_OP_AND, doAlu},
	OP_OR:    {"OR", []OperandForm{formDestValue, formDestPair}, ALU_OP_OR, doAlu},
	OP_XOR:   {"XOR", []OperandForm{formDestValue, formDestPair}, ALU_OP_XOR, doAlu},
	OP_MUL:   {"MUL", []OperandForm{formDestValue, formDestPair}, ALU_OP_MUL, doAlu},
	OP_DIV:   {"DIV", []OperandForm{formDestValue, formDestPair}, ALU_OP_DIV, doAlu},
	OP_NEG:   {"NEG", []OperandForm{formDest}, ALU_OP_NEG, doAlu},
	OP_NOT:   {"NOT", []OperandForm{formDest}, ALU_OP_NOT, doAlu},
	OP_LSL:   {"LSL", []OperandForm{formDestValue}, ALU_OP_LSL, doAlu},
	OP_LSR:   {"LSR", []OperandForm{formDestValue}, ALU_OP_LSR, doAlu},
	OP_CMP:   {"CMP", []OperandForm{formValueValue}, 0, doCmp},
	OP_PUSH:  {"PUSH", []OperandForm{formValue}, 0, doPush},
	OP_POP:   {"POP", []OperandForm{formDest}, 0, doPop},
	OP_RDUMP: {"RDUMP", []OperandForm{formNone}, 0, doDump},
}

var opcodeIndex = func() map[string]Opcode {
	index := make(map[string]Opcode, len(opcodeTable))
	for op, info := range opcodeTable {
		index[info.name] = Opcode(op)
	}
	return index
}()

// ParseOpcode looks up an upper case mnemonic.
func ParseOpcode(word string) (op Opcode, err error) {
	op, ok := opcodeIndex[word]
	if !ok {
		err = errors.Join(ErrUnknownInstruction, ErrToken(word))
		return
	}

	return
}

// Opcodes returns all mnemonics, in opcode order.
func Opcodes() (names []string) {
	for _, info := range opcodeTable {
		names = append(names, info.name)
	}
	return
}

func (op Opcode) info() *opcodeInfo {
	if op < 0 || int(op) >= len(opcodeTable) {
		return nil
	}
	return &opcodeTable[op]
}

func (op Opcode) String() string {
	info := op.info()
	if info == nil {
		return f("Opcode(%d)", int(op))
	}
	return info.name
}

// Form returns the operand layout accepted for count operands.
func (op Opcode) Form(count int) (form OperandForm, ok bool) {
	info := op.info()
	if info == nil {
		return
	}

	for _, form = range info.forms {
		if len(form) == count {
			ok = true
			return
		}
	}

	form = nil
	return
}

// Arity describes the accepted operand counts, e.g. "2 or 3".
func (op Opcode) Arity() string {
	info := op.info()
	if info == nil {
		return "0"
	}

	var counts []string
	for _, form := range info.forms {
		counts = append(counts, strconv.Itoa(len(form)))
	}
	slices.Sort(counts)

	return strings.Join(counts, " or ")
}

// doMov copies a value into a register.
func doMov(cpu *Cpu, info *opcodeInfo, args []Operand) (err error) {
	cpu.Registers.Write(args[0].Register, args[1].Value)
	return
}

// doAlu handles the unary, in place and three operand ALU forms.
func doAlu(cpu *Cpu, info *opcodeInfo, args []Operand) (err error) {
	a, b := args[0].Value, uint64(0)
	switch len(args) {
	case 2:
		b = args[1].Value
	case 3:
		a, b = args[1].Value, args[2].Value
	}

	output, err := Alu(info.alu, a, b)
	if err != nil {
		return
	}

	cpu.Registers.Write(args[0].Register, output)
	return
}

// doCmp sets the Z and N flags only.
func doCmp(cpu *Cpu, info *opcodeInfo, args []Operand) (err error) {
	z, n := Compare(args[0].Value, args[1].Value)
	cpu.Registers.SetFlag(FLAG_ZERO, z)
	cpu.Registers.SetFlag(FLAG_NEGATIVE, n)
	return
}

func doPush(cpu *Cpu, info *opcodeInfo, args []Operand) (err error) {
	return cpu.Push(args[0].Value)
}

func doPop(cpu *Cpu, info *opcodeInfo, args []Operand) (err error) {
	value, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.Registers.Write(args[0].Register, value)
	return
}

func doDump(cpu *Cpu, info *opcodeInfo, args []Operand) (err error) {
	return cpu.Registers.Dump(cpu.Output)
}
