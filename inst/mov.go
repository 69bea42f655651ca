package inst

import "fmt"

const Mnemonic = "mov"

// DecodedInstruction is one decoded MOV. Length is the number of bytes the
// instruction occupies in the stream.
type DecodedInstruction struct {
	Form        Form
	Mnemonic    string
	Destination Operand
	Source      Operand
	Length      int
	Fields      Fields
}

func (i DecodedInstruction) String() string {
	src := i.Source.String()
	if imm, ok := i.Source.(Immediate); ok {
		if _, mem := i.Destination.(Memory); mem {
			src = imm.sized()
		}
	}
	return fmt.Sprintf("%s %s, %s", i.Mnemonic, i.Destination, src)
}

// Options configures decoding. The zero value decodes every addressing mode.
type Options struct {
	// RegistersOnly rejects memory operands with UnsupportedAddressingMode.
	RegistersOnly bool
}

// Decode decodes the instruction of the given form at the start of b.
func Decode(form Form, b []byte) (DecodedInstruction, error) {
	return Options{}.Decode(form, b)
}

// Length returns the encoded length of the instruction at the start of b.
// It needs the opcode byte and, for forms that have one, the mod/reg/r-m
// byte; trailing bytes are not required.
func Length(form Form, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, errTruncated(1, 0)
	}
	n, err := length(form, b)
	if err != nil {
		return 0, withByte(err, b[0])
	}
	return n, nil
}

func length(form Form, b []byte) (int, error) {
	if f, ok := Classify(b[0]); !ok || f != form {
		return 0, errInvalidField("opcode", b[0])
	}
	op := byte1(b[0])
	switch form {
	case ImmediateToRegister:
		return 1 + immLen(op.immW()), nil
	case MemoryToAccumulator, AccumulatorToMemory:
		return 3, nil
	}
	if len(b) < 2 {
		return 0, errTruncated(2, len(b))
	}
	modrm := byte2(b[1])
	n := 2 + modrm.Mod().dispLen(modrm.RM())
	if form == ImmediateToRegisterOrMemory {
		n += immLen(op.W())
	}
	return n, nil
}

func immLen(s opSize) int {
	if s == opWord {
		return 2
	}
	return 1
}

func (o Options) Decode(form Form, b []byte) (DecodedInstruction, error) {
	n, err := Length(form, b)
	if err != nil {
		return DecodedInstruction{}, err
	}
	if len(b) < n {
		return DecodedInstruction{}, withByte(errTruncated(n, len(b)), b[0])
	}

	c := cursor{b: b[:n]}
	inst, err := o.decode(form, &c)
	if err != nil {
		return DecodedInstruction{}, withByte(err, b[0])
	}
	inst.Form = form
	inst.Mnemonic = Mnemonic
	inst.Length = c.pos
	return inst, nil
}

type cursor struct {
	b   []byte
	pos int
}

func (c *cursor) next() byte {
	v := c.b[c.pos]
	c.pos++
	return v
}

// word reads a little-endian 16-bit value.
func (c *cursor) word() uint16 {
	lo := c.next()
	hi := c.next()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *cursor) immediate(s opSize) Immediate {
	if s == opWord {
		return Immediate{Value: int16(c.word()), Word: true}
	}
	return Immediate{Value: int16(int8(c.next()))}
}

func (o Options) decode(form Form, c *cursor) (DecodedInstruction, error) {
	op := byte1(c.next())
	switch form {
	case RegisterOrMemoryToOrFromRegister:
		return o.regMemToFromReg(op, c)
	case ImmediateToRegisterOrMemory:
		return o.immToRegMem(op, c)
	case ImmediateToRegister:
		return immToReg(op, c)
	case MemoryToAccumulator, AccumulatorToMemory:
		return o.accumulator(form, op, c)
	case RegisterOrMemoryToSegmentRegister, SegmentRegisterToRegisterOrMemory:
		return o.segment(form, op, c)
	}
	return DecodedInstruction{}, errUnrecognizedOpcode(byte(op))
}

// regOrMem resolves the r/m field, reading any displacement from c.
func (o Options) regOrMem(f fields, c *cursor) (Operand, error) {
	if f.mode == RegisterNoDisplacement {
		reg, err := regEncoding{f.rm, f.size}.operand("r/m")
		if err != nil {
			return nil, err
		}
		return reg, nil
	}
	if o.RegistersOnly {
		return nil, errUnsupportedMode(f.mode)
	}

	var disp uint16
	switch f.mode.dispLen(f.rm) {
	case 1:
		disp = uint16(c.next())
	case 2:
		disp = c.word()
	}
	mem, err := effectiveAddress(f.mode, f.rm, disp)
	if err != nil {
		return nil, err
	}
	return mem, nil
}

// [100010|d|w] [mod|reg|r/m] [disp-lo] [disp-hi]
func (o Options) regMemToFromReg(op byte1, c *cursor) (DecodedInstruction, error) {
	modrm := byte2(c.next())
	f := fields{
		direction: op.D(),
		size:      op.W(),
		mode:      modrm.Mod(),
		reg:       modrm.Reg(),
		rm:        modrm.RM(),
	}
	if err := f.validate(); err != nil {
		return DecodedInstruction{}, err
	}

	reg, err := regEncoding{f.reg, f.size}.operand("reg")
	if err != nil {
		return DecodedInstruction{}, err
	}
	rm, err := o.regOrMem(f, c)
	if err != nil {
		return DecodedInstruction{}, err
	}

	var dst, src Operand = rm, reg
	if f.direction == opDst {
		dst, src = src, dst
	}
	return DecodedInstruction{Destination: dst, Source: src, Fields: f.export(true)}, nil
}

// [1100011|w] [mod|000|r/m] [disp-lo] [disp-hi] [data] [data if w=1]
func (o Options) immToRegMem(op byte1, c *cursor) (DecodedInstruction, error) {
	modrm := byte2(c.next())
	f := fields{
		size: op.W(),
		mode: modrm.Mod(),
		reg:  modrm.Reg(),
		rm:   modrm.RM(),
	}
	if err := f.validate(); err != nil {
		return DecodedInstruction{}, err
	}

	dst, err := o.regOrMem(f, c)
	if err != nil {
		return DecodedInstruction{}, err
	}
	imm := c.immediate(f.size)
	return DecodedInstruction{Destination: dst, Source: imm, Fields: f.export(true)}, nil
}

// [1011|w|reg] [data] [data if w=1]
func immToReg(op byte1, c *cursor) (DecodedInstruction, error) {
	f := fields{size: op.immW(), reg: op.immReg()}
	if err := f.validate(); err != nil {
		return DecodedInstruction{}, err
	}

	dst, err := regEncoding{f.reg, f.size}.operand("reg")
	if err != nil {
		return DecodedInstruction{}, err
	}
	imm := c.immediate(f.size)
	return DecodedInstruction{Destination: dst, Source: imm, Fields: f.export(false)}, nil
}

// [101000|d|w] [addr-lo] [addr-hi]
func (o Options) accumulator(form Form, op byte1, c *cursor) (DecodedInstruction, error) {
	if o.RegistersOnly {
		return DecodedInstruction{}, errUnsupportedMode(MemoryNoDisplacement)
	}
	f := fields{size: op.W()}

	acc, err := regEncoding{alax, f.size}.operand("reg")
	if err != nil {
		return DecodedInstruction{}, err
	}
	addr := Memory{Disp: int16(c.word()), Direct: true}

	if form == MemoryToAccumulator {
		return DecodedInstruction{Destination: acc, Source: addr, Fields: f.export(false)}, nil
	}
	return DecodedInstruction{Destination: addr, Source: acc, Fields: f.export(false)}, nil
}

// [100011|d|0] [mod|0|sr|r/m] [disp-lo] [disp-hi]
func (o Options) segment(form Form, op byte1, c *cursor) (DecodedInstruction, error) {
	// 0x8d and 0x8f share the mask but are not segment moves.
	if op.W() != opByte {
		return DecodedInstruction{}, errInvalidField("opcode", byte(op))
	}
	modrm := byte2(c.next())
	sr, reserved := modrm.SR()
	if reserved != 0 {
		return DecodedInstruction{}, errInvalidField("sr", byte(modrm.Reg()))
	}
	f := fields{
		direction: op.D(),
		size:      opWord,
		mode:      modrm.Mod(),
		reg:       modrm.Reg(),
		rm:        modrm.RM(),
	}
	if err := f.validate(); err != nil {
		return DecodedInstruction{}, err
	}

	seg, err := segOperand(sr)
	if err != nil {
		return DecodedInstruction{}, err
	}
	rm, err := o.regOrMem(f, c)
	if err != nil {
		return DecodedInstruction{}, err
	}

	if form == RegisterOrMemoryToSegmentRegister {
		return DecodedInstruction{Destination: seg, Source: rm, Fields: f.export(true)}, nil
	}
	return DecodedInstruction{Destination: rm, Source: seg, Fields: f.export(true)}, nil
}
