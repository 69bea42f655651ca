package disasm

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/artemijrodionov/sim8086/inst"
	"github.com/artemijrodionov/sim8086/log"
)

// Options configures the driver. The zero value produces plain
// "mov <dst>, <src>" lines.
type Options struct {
	inst.Options

	// Offsets prefixes every line with its offset and encoded bytes.
	Offsets bool
	// Bits16 emits a leading "bits 16" so the output reassembles with nasm.
	Bits16 bool
	// Verify cross-checks every instruction against x86asm.
	Verify bool
}

// PositionError is a decode failure at a byte offset of the input.
type PositionError struct {
	Offset int
	Byte   byte
	Err    error
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("offset %d (byte %#02x): %v", e.Offset, e.Byte, e.Err)
}

func (e *PositionError) Unwrap() error {
	return e.Err
}

// ScanInstructions is a bufio.SplitFunc that returns each encoded
// instruction as a token.
func ScanInstructions(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}

	form, err := inst.Require(data[0])
	if err != nil {
		return 0, nil, err
	}

	n, err := inst.Length(form, data)
	switch {
	case err == nil && n <= len(data):
		return n, data[:n], nil
	case err != nil && !errors.Is(err, inst.ErrTruncatedInstruction):
		return 0, nil, err
	case !atEOF:
		return 0, nil, nil
	}

	// The input ends inside this instruction.
	_, err = inst.Decode(form, data)
	return 0, nil, err
}

// Decoder decodes instructions one at a time from a reader. It owns its
// cursor; a new Decoder over the same input starts again from offset 0.
type Decoder struct {
	opts    Options
	scanner *bufio.Scanner

	offset int
	next   int
	raw    []byte
	cur    inst.DecodedInstruction
	err    error
}

func NewDecoder(r io.Reader, opts Options) *Decoder {
	s := bufio.NewScanner(r)
	s.Split(ScanInstructions)
	return &Decoder{opts: opts, scanner: s}
}

// Next decodes the next instruction. It returns false at the end of the
// input or on the first error, which Err then reports.
func (d *Decoder) Next() bool {
	if d.err != nil {
		return false
	}
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			d.fail(err, 0)
		}
		return false
	}

	d.raw = d.scanner.Bytes()
	form, err := inst.Require(d.raw[0])
	if err != nil {
		d.fail(err, d.raw[0])
		return false
	}
	decoded, err := d.opts.Decode(form, d.raw)
	if err != nil {
		d.fail(err, d.raw[0])
		return false
	}
	if d.opts.Verify {
		if err := crossCheck(d.raw, decoded); err != nil {
			d.fail(err, d.raw[0])
			return false
		}
	}

	d.offset = d.next
	d.next += decoded.Length
	d.cur = decoded
	log.Debug(log.Disasm, "decoded", "offset", d.offset, "bytes", fmt.Sprintf("% x", d.raw), "form", decoded.Form, "inst", decoded)
	return true
}

func (d *Decoder) fail(err error, b byte) {
	var de *inst.DecodeError
	if errors.As(err, &de) {
		b = de.Byte
	}
	d.err = &PositionError{Offset: d.next, Byte: b, Err: err}
	log.Debug(log.Disasm, "decode failed", "offset", d.next, "err", err)
}

// Instruction returns the instruction decoded by the last call to Next.
func (d *Decoder) Instruction() inst.DecodedInstruction {
	return d.cur
}

// Offset returns the input offset of the current instruction.
func (d *Decoder) Offset() int {
	return d.offset
}

// Bytes returns the encoding of the current instruction. The slice is only
// valid until the next call to Next.
func (d *Decoder) Bytes() []byte {
	return d.raw
}

// Line renders the current instruction according to the options.
func (d *Decoder) Line() string {
	if !d.opts.Offsets {
		return d.cur.String()
	}
	return fmt.Sprintf("0x%04x: %-17s %s", d.offset, fmt.Sprintf("% x", d.raw), d.cur)
}

func (d *Decoder) Err() error {
	return d.err
}

// Disassemble decodes data into newline separated instruction lines.
func Disassemble(data []byte) (string, error) {
	return Options{}.Disassemble(data)
}

func (o Options) Disassemble(data []byte) (string, error) {
	lines, err := o.Lines(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Lines decodes all of r.
func (o Options) Lines(r io.Reader) ([]string, error) {
	var lines []string
	if o.Bits16 {
		lines = append(lines, "bits 16")
	}
	d := NewDecoder(r, o)
	for d.Next() {
		lines = append(lines, d.Line())
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Stream writes one line per instruction of r to w as it is decoded. Lines
// written before a decode error are kept.
func (o Options) Stream(w io.Writer, r io.Reader) error {
	if o.Bits16 {
		if _, err := fmt.Fprintln(w, "bits 16"); err != nil {
			return err
		}
	}
	d := NewDecoder(r, o)
	for d.Next() {
		if _, err := fmt.Fprintln(w, d.Line()); err != nil {
			return err
		}
	}
	return d.Err()
}
