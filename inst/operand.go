package inst

import (
	"fmt"
	"strconv"
)

// Operand is one side of a decoded instruction: a Register, a
// SegmentRegister, a Memory reference or an Immediate.
type Operand interface {
	fmt.Stringer
	operand()
}

type Register string

func (r Register) String() string { return string(r) }
func (Register) operand()         {}

type SegmentRegister string

func (s SegmentRegister) String() string { return string(s) }
func (SegmentRegister) operand()         {}

// Memory is an effective address. Direct addresses have no Base and carry
// the address in Disp.
type Memory struct {
	Base   string
	Disp   int16
	Direct bool
}

func (m Memory) String() string {
	switch {
	case m.Direct:
		return "[" + strconv.Itoa(int(uint16(m.Disp))) + "]"
	case m.Disp > 0:
		return fmt.Sprintf("[%s+%d]", m.Base, m.Disp)
	case m.Disp < 0:
		return fmt.Sprintf("[%s-%d]", m.Base, -int(m.Disp))
	default:
		return "[" + m.Base + "]"
	}
}

func (Memory) operand() {}

// Immediate is a literal operand. Byte immediates are sign-extended into
// Value.
type Immediate struct {
	Value int16
	Word  bool
}

func (i Immediate) String() string {
	return strconv.Itoa(int(i.Value))
}

// sized renders the immediate with an explicit byte/word size, needed when
// the other operand is memory.
func (i Immediate) sized() string {
	if i.Word {
		return "word " + i.String()
	}
	return "byte " + i.String()
}

func (Immediate) operand() {}
