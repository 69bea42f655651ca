package inst

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"
)

// skipReference filters encodings that x86asm decodes as something other
// than a plain 8086 MOV.
func skipReference(form Form, op, modrm byte) bool {
	switch form {
	case ImmediateToRegisterOrMemory:
		return byte2(modrm).Reg() != 0
	case RegisterOrMemoryToSegmentRegister, SegmentRegisterToRegisterOrMemory:
		sr, reserved := byte2(modrm).SR()
		if op&1 == 1 || reserved != 0 {
			return true
		}
		return form == RegisterOrMemoryToSegmentRegister && sr == cs
	}
	return false
}

func TestLengthMatchesReference(t *testing.T) {
	pad := []byte{0x11, 0x22, 0x33, 0x44, 0x55}

	for op := 0; op < 256; op++ {
		form, ok := Classify(byte(op))
		if !ok {
			continue
		}

		var encodings [][]byte
		if form.hasModRM() {
			for modrm := 0; modrm < 256; modrm++ {
				if skipReference(form, byte(op), byte(modrm)) {
					continue
				}
				encodings = append(encodings, append([]byte{byte(op), byte(modrm)}, pad...))
			}
		} else {
			encodings = append(encodings, append([]byte{byte(op)}, pad...))
		}

		for _, b := range encodings {
			ref, err := x86asm.Decode(b, 16)
			require.NoError(t, err, "x86asm.Decode(% x)", b[:2])
			require.Equal(t, x86asm.MOV, ref.Op, "% x", b[:2])

			got, err := Decode(form, b)
			require.NoError(t, err, "% x", b[:2])
			assert.Equal(t, ref.Len, got.Length, "length of % x", b[:ref.Len])
		}
	}
}

func TestRegistersMatchReference(t *testing.T) {
	for op := byte(0x88); op <= 0x8b; op++ {
		for modrm := 0xc0; modrm < 0x100; modrm++ {
			b := []byte{op, byte(modrm)}
			ref, err := x86asm.Decode(b, 16)
			require.NoError(t, err)

			got, err := Decode(RegisterOrMemoryToOrFromRegister, b)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(ref.Args[0].String()), got.Destination.String(), "% x", b)
			assert.Equal(t, strings.ToLower(ref.Args[1].String()), got.Source.String(), "% x", b)
		}
	}
}
