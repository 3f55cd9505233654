package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

// ErrDiagnostics is returned when a program had at least one diagnostic.
// The diagnostics themselves have already been written.
var ErrDiagnostics = errors.New("diagnostics reported")

// NewRootCmd builds the jander command tree
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "jander [input output]",
		Short: "Jander semantic checker",
		Long: `jander checks programs written in the Jander (LA) teaching language.

With two arguments it analyzes input and writes the diagnostics to output,
one "Linha <n>: <message>" per line followed by "Fim da compilacao".
Nothing is written for a correct program.

Commands:
  check    Analyze one or more files and print the diagnostics
  symbols  Print the symbol table of a file
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected <input> <output>, got %d argument(s)", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.debugSet = cmd.Flags().Changed("debug")
			flags.formatSet = cmd.Flags().Changed("format")
			flags.workersSet = cmd.Flags().Changed("workers")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFileToFile(cmd, flags, args[0], args[1])
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to the configuration file (default ./jander.toml)")
	pf.BoolVar(&flags.debug, "debug", false, "trace compilation phases on stderr")
	pf.StringVar(&flags.format, "format", "", "diagnostic format: plain or detailed (default plain)")
	pf.IntVar(&flags.workers, "workers", 0, "files analyzed in parallel (default: number of CPUs)")

	rootCmd.AddCommand(newCheckCmd(flags), newSymbolsCmd(flags))
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		return err
	}
	return nil
}

// runner resolves the runner for the running command
func runner(cmd *cobra.Command, flags *globalFlags) (*Runner, error) {
	injector := newContainer(flags, cmd.ErrOrStderr())
	return do.Invoke[*Runner](injector)
}

// runFileToFile is the two-argument mode: diagnostics of input go to output
func runFileToFile(cmd *cobra.Command, flags *globalFlags, input, output string) error {
	r, err := runner(cmd, flags)
	if err != nil {
		return err
	}

	_, files, err := r.Run([]string{input})
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output %s: %w", output, err)
	}

	if err := writeAndClose(out, files[0].EmitDiagnostics(out, r.Options().Format)); err != nil {
		return fmt.Errorf("failed to write output %s: %w", output, err)
	}

	if files[0].HasErrors() {
		return ErrDiagnostics
	}
	return nil
}

// writeAndClose closes c and keeps the first error
func writeAndClose(c io.Closer, err error) error {
	if cerr := c.Close(); err == nil {
		err = cerr
	}
	return err
}
