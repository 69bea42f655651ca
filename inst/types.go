package inst

import (
	"errors"
)

type opDirection byte
type opSize byte
type register byte
type segment byte

// Mode is the 2-bit MOD field of the mod/reg/r-m byte.
type Mode byte

const (
	opSrc opDirection = 0x0
	opDst opDirection = 0x1

	opByte opSize = 0x0
	opWord opSize = 0x1

	MemoryNoDisplacement   Mode = 0x0
	MemoryDisplacement8    Mode = 0x1
	MemoryDisplacement16   Mode = 0x2
	RegisterNoDisplacement Mode = 0x3

	alax register = 0x0
	clcx register = 0x1
	dldx register = 0x2
	blbx register = 0x3
	ahsp register = 0x4
	chbp register = 0x5
	dhsi register = 0x6
	bhdi register = 0x7

	es segment = 0x0
	cs segment = 0x1
	ss segment = 0x2
	ds segment = 0x3
)

func (m Mode) String() string {
	switch m {
	case MemoryNoDisplacement:
		return "memory, no displacement"
	case MemoryDisplacement8:
		return "memory, 8-bit displacement"
	case MemoryDisplacement16:
		return "memory, 16-bit displacement"
	case RegisterNoDisplacement:
		return "register"
	default:
		return "unknown mode"
	}
}

// dispLen is the number of displacement bytes that follow the mod/reg/r-m byte.
func (m Mode) dispLen(rm register) int {
	switch m {
	case MemoryNoDisplacement:
		if isDirectAddress(m, rm) {
			return 2
		}
		return 0
	case MemoryDisplacement8:
		return 1
	case MemoryDisplacement16:
		return 2
	default:
		return 0
	}
}

func (o opDirection) validate() error {
	switch o {
	case opDst, opSrc:
		return nil
	default:
		return errInvalidField("d", byte(o))
	}
}

func (o opSize) validate() error {
	switch o {
	case opByte, opWord:
		return nil
	default:
		return errInvalidField("w", byte(o))
	}
}

func (m Mode) validate() error {
	switch m {
	case RegisterNoDisplacement, MemoryNoDisplacement, MemoryDisplacement8, MemoryDisplacement16:
		return nil
	default:
		return errInvalidField("mod", byte(m))
	}
}

func (r register) validate(field string) error {
	switch r {
	case alax, clcx, dldx, blbx, ahsp, chbp, dhsi, bhdi:
		return nil
	default:
		return errInvalidField(field, byte(r))
	}
}

// Fields holds the raw bitfields of a decoded instruction. Fields the form
// does not encode are left at zero; HasModRM reports whether a mod/reg/r-m
// byte was present.
type Fields struct {
	Direction byte
	Width     byte
	Mode      Mode
	Reg       byte
	RM        byte
	HasModRM  bool
}

type fields struct {
	direction opDirection
	size      opSize
	mode      Mode
	reg       register
	rm        register
}

func (f fields) validate() error {
	return errors.Join(
		f.direction.validate(),
		f.size.validate(),
		f.mode.validate(),
		f.reg.validate("reg"),
		f.rm.validate("r/m"),
	)
}

func (f fields) export(hasModRM bool) Fields {
	return Fields{
		Direction: byte(f.direction),
		Width:     byte(f.size),
		Mode:      f.mode,
		Reg:       byte(f.reg),
		RM:        byte(f.rm),
		HasModRM:  hasModRM,
	}
}
