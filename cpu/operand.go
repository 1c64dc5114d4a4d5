package cpu

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FloatMode selects how floating point literals become 64-bit operands.
type FloatMode int

const (
	FLOAT_BITS     = FloatMode(iota) // bits
	FLOAT_TRUNCATE                   // trunc
)

var floatModeNames = map[string]FloatMode{
	"bits":  FLOAT_BITS,
	"trunc": FLOAT_TRUNCATE,
}

// ParseFloatMode parses a float literal mode name.
func ParseFloatMode(name string) (mode FloatMode, err error) {
	mode, ok := floatModeNames[name]
	if !ok {
		err = errors.Join(ErrConfig, ErrToken(name))
		return
	}

	return
}

func (mode FloatMode) String() string {
	switch mode {
	case FLOAT_BITS:
		return "bits"
	case FLOAT_TRUNCATE:
		return "trunc"
	}
	return f("FloatMode(%d)", int(mode))
}

// OperandKind is the role an operand plays in an instruction.
type OperandKind int

const (
	OPERAND_VALUE = OperandKind(iota) // value
	OPERAND_DEST                      // dest
)

// Operand is a resolved instruction operand.
type Operand struct {
	Kind     OperandKind
	Register Register // Destination register, OPERAND_DEST only.
	Value    uint64   // Resolved value; for OPERAND_DEST the current register value.
}

var (
	decimalSyntax = regexp.MustCompile(`^[0-9]+$`)
	floatSyntax   = regexp.MustCompile(`^[0-9]+\.[0-9]+$`)
)

// parseLiteral converts a numeric literal.
// ok is false if word is not shaped like a literal at all.
func (cpu *Cpu) parseLiteral(word string) (value uint64, ok bool, err error) {
	switch {
	case strings.HasPrefix(word, "0x"):
		ok = true
		value, err = strconv.ParseUint(word[2:], 16, 64)
	case decimalSyntax.MatchString(word):
		ok = true
		value, err = strconv.ParseUint(word, 10, 64)
	case floatSyntax.MatchString(word):
		ok = true
		var number float64
		number, err = strconv.ParseFloat(word, 64)
		if err != nil {
			return
		}
		value = cpu.floatValue(number)
	}

	return
}

// floatValue converts a non-negative float per the configured FloatMode.
func (cpu *Cpu) floatValue(number float64) uint64 {
	if cpu.FloatMode == FLOAT_TRUNCATE {
		// Saturate, as conversion of out of range floats is implementation defined.
		if number >= math.MaxInt64 {
			return math.MaxInt64
		}
		return uint64(int64(number))
	}
	return math.Float64bits(number)
}

// Resolve converts a token to its 64-bit value: a hex, decimal or float
// literal, or the contents of a named register.
func (cpu *Cpu) Resolve(word string) (value uint64, err error) {
	value, ok, err := cpu.parseLiteral(word)
	if ok {
		if err != nil {
			err = errors.Join(ErrUnknownOperand, ErrToken(word), err)
		}
		return
	}

	if IsRegisterName(word) {
		value, err = cpu.Registers.Get(word)
		return
	}

	err = errors.Join(ErrUnknownOperand, ErrToken(word))
	return
}

// destination resolves a token that must name a writable register.
func (cpu *Cpu) destination(word string) (reg Register, err error) {
	if !IsRegisterName(word) {
		err = errors.Join(ErrInvalidDestination, ErrToken(word))
		return
	}

	return ParseRegister(word)
}

// resolveOperand resolves a token for an operand of the given kind.
func (cpu *Cpu) resolveOperand(kind OperandKind, word string) (operand Operand, err error) {
	operand.Kind = kind

	switch kind {
	case OPERAND_DEST:
		operand.Register, err = cpu.destination(word)
		if err != nil {
			return
		}
		operand.Value = cpu.Registers.Read(operand.Register)
	default:
		operand.Value, err = cpu.Resolve(word)
	}

	return
}
