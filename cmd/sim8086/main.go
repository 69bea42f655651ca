package main

import (
	"fmt"
	"os"

	"github.com/artemijrodionov/sim8086/disasm"
	"github.com/artemijrodionov/sim8086/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel     string
		debugModules string
		opts         disasm.Options
	)

	rootCmd := &cobra.Command{
		Use:   "sim8086",
		Short: "8086 MOV instruction decoder",
		Long: `Decodes 8086 MOV instructions from binaries assembled with nasm
and prints them back as assembly.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.InitLogger(logLevel); err != nil {
				return err
			}
			log.EnableModules(debugModules)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&debugModules, "debug-modules", "", "Comma separated modules logged at debug level (disasm, cli, repl)")
	rootCmd.PersistentFlags().BoolVar(&opts.RegistersOnly, "registers-only", false, "Reject memory operands")
	rootCmd.PersistentFlags().BoolVar(&opts.Verify, "verify", false, "Cross-check every instruction against x86asm")

	var objPath string
	disasmCmd := &cobra.Command{
		Use:   "disasm [objPath]...",
		Short: "Disassemble binary files",
		Long: `Disassembles one binary file, or several files concurrently. With more
than one file each listing is preceded by a "; <path>" line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if objPath != "" {
				args = append([]string{objPath}, args...)
			}
			if len(args) > 1 {
				return runFiles(cmd.OutOrStdout(), args, opts)
			}
			if len(args) == 1 {
				objPath = args[0]
			}
			cli, err := NewCli(objPath, opts)
			if err != nil {
				return err
			}
			return cli.Run(cmd.OutOrStdout())
		},
	}
	disasmCmd.Flags().StringVar(&objPath, "objPath", "", "Unix path to a binary file compiled with nasm")
	disasmCmd.Flags().BoolVar(&opts.Offsets, "offsets", false, "Prefix lines with offset and encoded bytes")
	disasmCmd.Flags().BoolVar(&opts.Bits16, "bits16", false, "Emit a leading 'bits 16' line")

	explainCmd := &cobra.Command{
		Use:   "explain <hex bytes>...",
		Short: "Show the decoded bitfields of hex encoded instructions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex(args...)
			if err != nil {
				return err
			}
			out, err := opts.Explain(b)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Decode hex encoded instructions line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newLineReader(os.Stdin)
			if err != nil {
				return err
			}
			defer r.Close()
			return runRepl(r, cmd.OutOrStdout(), opts)
		},
	}

	rootCmd.AddCommand(disasmCmd, explainCmd, replCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
