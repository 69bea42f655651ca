package disasm

import (
	"bytes"
	"fmt"

	"github.com/artemijrodionov/sim8086/inst"
	"github.com/xlab/treeprint"
)

// Explain renders the decoded bitfields of every instruction in data as a
// tree.
func (o Options) Explain(data []byte) (string, error) {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("%d bytes", len(data)))

	d := NewDecoder(bytes.NewReader(data), o)
	for d.Next() {
		i := d.Instruction()
		branch := tree.AddBranch(fmt.Sprintf("0x%04x: % x  %s", d.Offset(), d.Bytes(), i))
		explainFields(branch, i)
	}
	if err := d.Err(); err != nil {
		return "", err
	}
	return tree.String(), nil
}

func explainFields(t treeprint.Tree, i inst.DecodedInstruction) {
	f := i.Fields
	t.AddNode("form: " + i.Form.String())

	switch i.Form {
	case inst.RegisterOrMemoryToOrFromRegister:
		t.AddNode(fmt.Sprintf("d: %d (%s)", f.Direction, directionName(f.Direction)))
		t.AddNode(fmt.Sprintf("w: %d (%s)", f.Width, widthName(f.Width)))
	case inst.RegisterOrMemoryToSegmentRegister, inst.SegmentRegisterToRegisterOrMemory:
		t.AddNode(fmt.Sprintf("d: %d (%s)", f.Direction, directionName(f.Direction)))
	default:
		t.AddNode(fmt.Sprintf("w: %d (%s)", f.Width, widthName(f.Width)))
	}

	if f.HasModRM {
		t.AddNode(fmt.Sprintf("mod: %02b (%s)", byte(f.Mode), f.Mode))
		t.AddNode(fmt.Sprintf("reg: %03b", f.Reg))
		t.AddNode(fmt.Sprintf("r/m: %03b", f.RM))
	} else if i.Form == inst.ImmediateToRegister {
		t.AddNode(fmt.Sprintf("reg: %03b", f.Reg))
	}

	t.AddNode("destination: " + i.Destination.String())
	t.AddNode("source: " + i.Source.String())
}

func directionName(d byte) string {
	if d == 1 {
		return "reg is destination"
	}
	return "reg is source"
}

func widthName(w byte) string {
	if w == 1 {
		return "word"
	}
	return "byte"
}
