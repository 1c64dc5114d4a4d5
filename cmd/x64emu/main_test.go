package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefineList(t *testing.T) {
	assert := assert.New(t)

	dl := defineList{}
	assert.NoError(dl.Set("COUNT=5"))
	assert.NoError(dl.Set("EMPTY="))
	assert.NoError(dl.Set("COUNT=0x10"))
	assert.Equal(defineList{"COUNT": "0x10", "EMPTY": ""}, dl)

	assert.Error(dl.Set("COUNT"))
	assert.Error(dl.Set("=5"))
}
