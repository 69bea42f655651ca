package inst

// Form is one of the seven MOV encodings. The zero value is not a form.
type Form byte

const (
	RegisterOrMemoryToOrFromRegister  Form = iota + 1 // 100010dw
	ImmediateToRegisterOrMemory                       // 1100011w
	ImmediateToRegister                               // 1011wreg
	MemoryToAccumulator                               // 1010000w
	AccumulatorToMemory                               // 1010001w
	RegisterOrMemoryToSegmentRegister                 // 10001110
	SegmentRegisterToRegisterOrMemory                 // 10001100
)

var formNames = map[Form]string{
	RegisterOrMemoryToOrFromRegister:  "RegisterOrMemoryToOrFromRegister",
	ImmediateToRegisterOrMemory:       "ImmediateToRegisterOrMemory",
	ImmediateToRegister:               "ImmediateToRegister",
	MemoryToAccumulator:               "MemoryToAccumulator",
	AccumulatorToMemory:               "AccumulatorToMemory",
	RegisterOrMemoryToSegmentRegister: "RegisterOrMemoryToSegmentRegister",
	SegmentRegisterToRegisterOrMemory: "SegmentRegisterToRegisterOrMemory",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return "Form(invalid)"
}

// hasModRM reports whether the form is followed by a mod/reg/r-m byte.
func (f Form) hasModRM() bool {
	switch f {
	case RegisterOrMemoryToOrFromRegister, ImmediateToRegisterOrMemory,
		RegisterOrMemoryToSegmentRegister, SegmentRegisterToRegisterOrMemory:
		return true
	default:
		return false
	}
}

type opcodeRule struct {
	mask    byte
	pattern byte
	form    Form
}

// rules is evaluated in order. No two rules match the same byte, which
// opcodes_test.go checks over all 256 values.
var rules = [...]opcodeRule{
	{0xfc, 0x88, RegisterOrMemoryToOrFromRegister},
	{0xfe, 0xa0, MemoryToAccumulator},
	{0xfe, 0xa2, AccumulatorToMemory},
	{0xf0, 0xb0, ImmediateToRegister},
	{0xfe, 0xc6, ImmediateToRegisterOrMemory},
	{0xfe, 0x8e, RegisterOrMemoryToSegmentRegister},
	{0xfe, 0x8c, SegmentRegisterToRegisterOrMemory},
}

// Classify returns the MOV form of an opcode byte. ok is false when the byte
// is not a MOV opcode.
func Classify(b byte) (form Form, ok bool) {
	for _, r := range rules {
		if b&r.mask == r.pattern {
			return r.form, true
		}
	}
	return 0, false
}

// Require is Classify for callers that have already checked the byte.
// An unknown opcode is reported as an UnrecognizedOpcode error.
func Require(b byte) (Form, error) {
	form, ok := Classify(b)
	if !ok {
		return 0, errUnrecognizedOpcode(b)
	}
	return form, nil
}
