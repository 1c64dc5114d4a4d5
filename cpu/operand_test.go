package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	cpu := NewDefaultCpu()
	cpu.Registers.Write(REG_RBX, 0x77)

	table := [](struct {
		word     string
		expected uint64
	}){
		{"0xFF", 255},
		{"0xff", 255},
		{"0xffffffffffffffff", math.MaxUint64},
		{"0", 0},
		{"42", 42},
		{"18446744073709551615", math.MaxUint64},
		{"1.5", math.Float64bits(1.5)},
		{"RBX", 0x77},
		{"RCX", 0},
	}

	for _, entry := range table {
		value, err := cpu.Resolve(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.expected, value, entry.word)
	}
}

func TestResolve_FloatTruncate(t *testing.T) {
	assert := assert.New(t)

	cpu := NewDefaultCpu()
	cpu.FloatMode = FLOAT_TRUNCATE

	value, err := cpu.Resolve("3.99")
	assert.NoError(err)
	assert.Equal(uint64(3), value)

	value, err = cpu.Resolve("99999999999999999999.0")
	assert.NoError(err)
	assert.Equal(uint64(math.MaxInt64), value)
}

func TestResolve_Errors(t *testing.T) {
	assert := assert.New(t)

	cpu := NewDefaultCpu()

	table := [](struct {
		word string
		err  error
	}){
		{"0x", ErrUnknownOperand},
		{"0xZZ", ErrUnknownOperand},
		{"0x10000000000000000", ErrUnknownOperand},
		{"18446744073709551616", ErrUnknownOperand},
		{"rax", ErrUnknownOperand},
		{"-1", ErrUnknownOperand},
		{"1.", ErrUnknownOperand},
		{"$5", ErrUnknownOperand},
		{"FOO", ErrUnknownRegister},
		{"R99", ErrUnknownRegister},
	}

	for _, entry := range table {
		_, err := cpu.Resolve(entry.word)
		assert.ErrorIs(err, entry.err, entry.word)

		var token ErrToken
		assert.ErrorAs(err, &token, entry.word)
		assert.Equal(ErrToken(entry.word), token, entry.word)
	}
}

func TestDestination(t *testing.T) {
	assert := assert.New(t)

	cpu := NewDefaultCpu()

	reg, err := cpu.destination("R12")
	assert.NoError(err)
	assert.Equal(REG_R12, reg)

	_, err = cpu.destination("5")
	assert.ErrorIs(err, ErrInvalidDestination)

	_, err = cpu.destination("0x10")
	assert.ErrorIs(err, ErrInvalidDestination)

	_, err = cpu.destination("NOPE")
	assert.ErrorIs(err, ErrUnknownRegister)
}

func TestParseFloatMode(t *testing.T) {
	assert := assert.New(t)

	mode, err := ParseFloatMode("trunc")
	assert.NoError(err)
	assert.Equal(FLOAT_TRUNCATE, mode)
	assert.Equal("trunc", mode.String())

	mode, err = ParseFloatMode("bits")
	assert.NoError(err)
	assert.Equal(FLOAT_BITS, mode)

	_, err = ParseFloatMode("round")
	assert.ErrorIs(err, ErrConfig)
}
