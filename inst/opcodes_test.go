package inst

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedForm(b byte) (Form, bool) {
	switch {
	case b >= 0x88 && b <= 0x8b:
		return RegisterOrMemoryToOrFromRegister, true
	case b >= 0xa0 && b <= 0xa1:
		return MemoryToAccumulator, true
	case b >= 0xa2 && b <= 0xa3:
		return AccumulatorToMemory, true
	case b >= 0xb0 && b <= 0xbf:
		return ImmediateToRegister, true
	case b >= 0xc6 && b <= 0xc7:
		return ImmediateToRegisterOrMemory, true
	case b >= 0x8e && b <= 0x8f:
		return RegisterOrMemoryToSegmentRegister, true
	case b >= 0x8c && b <= 0x8d:
		return SegmentRegisterToRegisterOrMemory, true
	default:
		return 0, false
	}
}

func TestClassifyAllBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		want, wantOK := expectedForm(b)
		got, ok := Classify(b)
		assert.Equal(t, wantOK, ok, "Classify(%#02x) ok", b)
		assert.Equal(t, want, got, "Classify(%#02x) = %s", b, got)
	}
}

func TestRulesDoNotOverlap(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		var matched []Form
		for _, r := range rules {
			if b&r.mask == r.pattern {
				matched = append(matched, r.form)
			}
		}
		assert.LessOrEqual(t, len(matched), 1, "byte %08b matches %v", b, matched)
	}
}

func TestClassifyIsOrderIndependent(t *testing.T) {
	reversed := rules
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	for i := 0; i < 256; i++ {
		b := byte(i)
		var got Form
		for _, r := range reversed {
			if b&r.mask == r.pattern {
				got = r.form
				break
			}
		}
		want, _ := Classify(b)
		assert.Equal(t, want, got, "byte %#02x", b)
	}
}

func TestRequire(t *testing.T) {
	form, err := Require(0x89)
	require.NoError(t, err)
	assert.Equal(t, RegisterOrMemoryToOrFromRegister, form)

	for _, b := range []byte{0x00, 0x01, 0x10, 0x42, 0xd0, 0xff} {
		_, err := Require(b)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnrecognizedOpcode))

		var de *DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, UnrecognizedOpcode, de.Kind)
		assert.Equal(t, b, de.Byte)
	}
}

func TestFormString(t *testing.T) {
	assert.Equal(t, "ImmediateToRegister", ImmediateToRegister.String())
	assert.Equal(t, "Form(invalid)", Form(0).String())
}
