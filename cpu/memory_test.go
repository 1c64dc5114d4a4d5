package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)
	assert.Equal(uint64(16), mem.Size())

	for addr := range uint64(16) {
		value, err := mem.Read(addr)
		assert.NoError(err)
		assert.Equal(byte(0), value)
	}

	assert.NoError(mem.Write(0, 0xaa))
	assert.NoError(mem.Write(15, 0x55))

	value, err := mem.Read(0)
	assert.NoError(err)
	assert.Equal(byte(0xaa), value)

	value, err = mem.Read(15)
	assert.NoError(err)
	assert.Equal(byte(0x55), value)

	mem.Reset()
	value, err = mem.Read(15)
	assert.NoError(err)
	assert.Equal(byte(0), value)
}

func TestMemory_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)

	_, err := mem.Read(16)
	assert.ErrorIs(err, ErrOutOfBounds)

	err = mem.Write(16, 1)
	assert.ErrorIs(err, ErrOutOfBounds)

	err = mem.Write(0xffff_ffff_ffff_ffff, 1)
	assert.ErrorIs(err, ErrOutOfBounds)

	var addr ErrAddress
	assert.ErrorAs(err, &addr)
	assert.Equal(ErrAddress(0xffff_ffff_ffff_ffff), addr)
}

func TestMemory_Check(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(16)

	assert.NoError(mem.Check(0, 16))
	assert.NoError(mem.Check(8, 8))
	assert.ErrorIs(mem.Check(9, 8), ErrOutOfBounds)
	assert.ErrorIs(mem.Check(16, 0), ErrOutOfBounds)
	assert.ErrorIs(mem.Check(1, 0xffff_ffff_ffff_ffff), ErrOutOfBounds)
}
