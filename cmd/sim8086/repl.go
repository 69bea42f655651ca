package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/artemijrodionov/sim8086/disasm"
	"github.com/artemijrodionov/sim8086/log"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

type readlineReader struct {
	rl *readline.Instance
}

func (r readlineReader) ReadLine() (string, error) {
	return r.rl.Readline()
}

func (r readlineReader) Close() error {
	return r.rl.Close()
}

type scannerReader struct {
	s *bufio.Scanner
}

func (r scannerReader) ReadLine() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

func (r scannerReader) Close() error {
	return nil
}

// newLineReader uses readline with history on a terminal and plain line
// scanning otherwise.
func newLineReader(in *os.File) (lineReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return scannerReader{bufio.NewScanner(in)}, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "sim8086> ",
		HistoryFile: filepath.Join(os.TempDir(), "sim8086_history.txt"),
	})
	if err != nil {
		return nil, err
	}
	return readlineReader{rl}, nil
}

// runRepl decodes one line of hex bytes at a time until exit or EOF.
// Decode errors are printed and do not end the session.
func runRepl(r lineReader, w io.Writer, opts disasm.Options) error {
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		b, err := parseHex(line)
		if err == nil {
			var out string
			if out, err = opts.Disassemble(b); err == nil {
				fmt.Fprintln(w, out)
				continue
			}
		}
		log.Debug(log.Repl, "line rejected", "line", line, "err", err)
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
