package inst

import (
	"errors"
	"fmt"
)

type ErrorKind byte

const (
	UnrecognizedOpcode ErrorKind = iota + 1
	UnsupportedAddressingMode
	TruncatedInstruction
	InvalidField
)

var (
	ErrUnrecognizedOpcode        = errors.New("unrecognized opcode")
	ErrUnsupportedAddressingMode = errors.New("unsupported addressing mode")
	ErrTruncatedInstruction      = errors.New("truncated instruction")
	ErrInvalidField              = errors.New("invalid field")
)

var kindErrors = map[ErrorKind]error{
	UnrecognizedOpcode:        ErrUnrecognizedOpcode,
	UnsupportedAddressingMode: ErrUnsupportedAddressingMode,
	TruncatedInstruction:      ErrTruncatedInstruction,
	InvalidField:              ErrInvalidField,
}

// DecodeError describes why an instruction could not be decoded. Byte is
// the opcode byte of the failing instruction; the remaining fields are set
// according to Kind.
type DecodeError struct {
	Kind ErrorKind
	Byte byte

	Mode Mode

	Needed    int
	Available int

	Field string
	Value byte
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case UnrecognizedOpcode:
		return fmt.Sprintf("unrecognized opcode %08b", e.Byte)
	case UnsupportedAddressingMode:
		return fmt.Sprintf("unsupported addressing mode %02b (%s)", byte(e.Mode), e.Mode)
	case TruncatedInstruction:
		return fmt.Sprintf("truncated instruction: need %d bytes, have %d", e.Needed, e.Available)
	case InvalidField:
		return fmt.Sprintf("invalid %s field %#x", e.Field, e.Value)
	default:
		return "decode error"
	}
}

func (e *DecodeError) Unwrap() error {
	return kindErrors[e.Kind]
}

func errUnrecognizedOpcode(b byte) *DecodeError {
	return &DecodeError{Kind: UnrecognizedOpcode, Byte: b}
}

func errUnsupportedMode(m Mode) *DecodeError {
	return &DecodeError{Kind: UnsupportedAddressingMode, Mode: m}
}

func errTruncated(needed, available int) *DecodeError {
	return &DecodeError{Kind: TruncatedInstruction, Needed: needed, Available: available}
}

func errInvalidField(field string, value byte) *DecodeError {
	return &DecodeError{Kind: InvalidField, Field: field, Value: value}
}

// withByte stamps the opcode byte on every DecodeError inside err.
func withByte(err error, b byte) error {
	var de *DecodeError
	if errors.As(err, &de) {
		de.Byte = b
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			withByte(e, b)
		}
	}
	return err
}
