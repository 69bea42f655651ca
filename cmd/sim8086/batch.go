package main

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/artemijrodionov/sim8086/disasm"
	"github.com/artemijrodionov/sim8086/log"
)

type fileResult struct {
	path string
	out  bytes.Buffer
	err  error
}

// decodeFiles disassembles every file on its own goroutine. Results keep
// the order of paths.
func decodeFiles(paths []string, opts disasm.Options) []*fileResult {
	results := make([]*fileResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		results[i] = &fileResult{path: path}
		wg.Add(1)
		go func(r *fileResult) {
			defer wg.Done()
			cli, err := NewCli(r.path, opts)
			if err != nil {
				r.err = err
				return
			}
			r.err = cli.Run(&r.out)
		}(results[i])
	}

	wg.Wait()
	log.Debug(log.CLI, "decoded files", "count", len(paths))
	return results
}

// runFiles writes each file's listing under a "; <path>" header and
// returns the first error in path order. Output of later files is still
// written.
func runFiles(w io.Writer, paths []string, opts disasm.Options) error {
	var first error
	for _, r := range decodeFiles(paths, opts) {
		fmt.Fprintf(w, "; %s\n", r.path)
		if _, err := io.Copy(w, &r.out); err != nil {
			return err
		}
		if r.err != nil {
			log.Error(log.CLI, "decode failed", "path", r.path, "err", r.err)
			if first == nil {
				first = r.err
			}
		}
	}
	return first
}
