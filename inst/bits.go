package inst

import "fmt"

// extractBits returns bits [start, end) of b, where bit 0 is the most
// significant bit.
func extractBits(b byte, start, end uint) byte {
	if start >= end || end > 8 {
		panic(fmt.Sprintf("extractBits: invalid range [%d, %d)", start, end))
	}
	return (b << start) >> (8 - (end - start))
}

// byte1 is the opcode byte.
type byte1 byte

func (b byte1) D() opDirection {
	return opDirection(extractBits(byte(b), 6, 7))
}

func (b byte1) W() opSize {
	return opSize(extractBits(byte(b), 7, 8))
}

// immW and immReg read the 1011|w|reg layout of immediate-to-register.
func (b byte1) immW() opSize {
	return opSize(extractBits(byte(b), 4, 5))
}

func (b byte1) immReg() register {
	return register(extractBits(byte(b), 5, 8))
}

// byte2 is the mod/reg/r-m byte.
type byte2 byte

func (b byte2) Mod() Mode {
	return Mode(extractBits(byte(b), 0, 2))
}

func (b byte2) Reg() register {
	return register(extractBits(byte(b), 2, 5))
}

func (b byte2) RM() register {
	return register(extractBits(byte(b), 5, 8))
}

// SR reads the segment register selector of the segment forms. The bit
// above it must be clear.
func (b byte2) SR() (segment, byte) {
	return segment(extractBits(byte(b), 3, 5)), extractBits(byte(b), 2, 3)
}
