package disasm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artemijrodionov/sim8086/inst"
	"golang.org/x/arch/x86/x86asm"
)

var ErrReferenceMismatch = errors.New("reference decoder mismatch")

// crossCheck decodes b with x86asm in 16-bit mode and compares the opcode,
// the length and any register operands with decoded.
func crossCheck(b []byte, decoded inst.DecodedInstruction) error {
	ref, err := x86asm.Decode(b, 16)
	if err != nil {
		return fmt.Errorf("%w: x86asm: %v", ErrReferenceMismatch, err)
	}
	if ref.Op != x86asm.MOV || ref.Len != decoded.Length {
		return fmt.Errorf("%w: x86asm decodes % x as %q (%d bytes)", ErrReferenceMismatch, b, ref, ref.Len)
	}

	for i, arg := range []inst.Operand{decoded.Destination, decoded.Source} {
		reg, ok := ref.Args[i].(x86asm.Reg)
		if !ok {
			continue
		}
		if want := strings.ToLower(reg.String()); want != arg.String() {
			return fmt.Errorf("%w: operand %d is %s, x86asm has %s", ErrReferenceMismatch, i, arg, want)
		}
	}
	return nil
}
