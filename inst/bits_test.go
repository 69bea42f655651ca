package inst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBits(t *testing.T) {
	tests := []struct {
		b          byte
		start, end uint
		result     byte
	}{
		{0b10001001, 0, 6, 0b100010},
		{0b10001001, 6, 7, 0},
		{0b10001001, 7, 8, 1},
		{0b10001011, 6, 7, 1},
		{0b11011001, 0, 2, 0b11},
		{0b11011001, 2, 5, 0b011},
		{0b11011001, 5, 8, 0b001},
		{0b10111001, 4, 5, 1},
		{0b10110001, 5, 8, 0b001},
		{0xff, 0, 8, 0xff},
	}

	for _, test := range tests {
		assert.Equal(t, test.result, extractBits(test.b, test.start, test.end),
			"extractBits(%08b, %d, %d)", test.b, test.start, test.end)
	}
}

func TestExtractBitsInvalidRange(t *testing.T) {
	assert.Panics(t, func() { extractBits(0, 3, 3) })
	assert.Panics(t, func() { extractBits(0, 5, 2) })
	assert.Panics(t, func() { extractBits(0, 0, 9) })
}

func TestByteFields(t *testing.T) {
	op := byte1(0x8b)
	assert.Equal(t, opDst, op.D())
	assert.Equal(t, opWord, op.W())

	modrm := byte2(0xd9)
	assert.Equal(t, RegisterNoDisplacement, modrm.Mod())
	assert.Equal(t, blbx, modrm.Reg())
	assert.Equal(t, clcx, modrm.RM())

	imm := byte1(0xbd)
	assert.Equal(t, opWord, imm.immW())
	assert.Equal(t, chbp, imm.immReg())

	sr, reserved := byte2(0xd8).SR()
	assert.Equal(t, ds, sr)
	assert.Equal(t, byte(0), reserved)
}
