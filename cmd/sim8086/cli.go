package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/artemijrodionov/sim8086/disasm"
	"github.com/artemijrodionov/sim8086/log"
)

var ErrInvalidObjPath = errors.New("executable file name is not valid")

func isObjFile(filename string) bool {
	return filename != "" && !strings.HasSuffix(filename, ".asm")
}

type Cli struct {
	ObjPath string
	Options disasm.Options
}

func NewCli(objPath string, opts disasm.Options) (*Cli, error) {
	if !isObjFile(objPath) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidObjPath, objPath)
	}
	return &Cli{ObjPath: objPath, Options: opts}, nil
}

func (c *Cli) Run(w io.Writer) error {
	file, err := os.Open(c.ObjPath)
	if err != nil {
		return err
	}
	defer file.Close()

	log.Debug(log.CLI, "decoding", "path", c.ObjPath, "offsets", c.Options.Offsets, "registersOnly", c.Options.RegistersOnly)
	if err := c.Options.Stream(w, bufio.NewReader(file)); err != nil {
		return fmt.Errorf("%s: %w", c.ObjPath, err)
	}
	return nil
}

// parseHex accepts bytes as "89 d9", "89d9", "0x89,0xd9" or any mix.
func parseHex(fields ...string) ([]byte, error) {
	var sb strings.Builder
	for _, f := range fields {
		for _, tok := range strings.FieldsFunc(f, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		}) {
			tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
			sb.WriteString(tok)
		}
	}
	b, err := hex.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return b, nil
}
