package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// check: analyze source files
func newCheckCmd(flags *globalFlags) *cobra.Command {
	var output string

	checkCmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Analyze Jander source files and print their diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner(cmd, flags)
			if err != nil {
				return err
			}

			ctx, files, err := r.Run(args)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			var file *os.File
			if output != "" {
				file, err = os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output %s: %w", output, err)
				}
				out = file
			}

			err = emitFiles(out, files, r.Options().Format)
			if file != nil {
				err = writeAndClose(file, err)
			}
			if err != nil {
				return fmt.Errorf("failed to write diagnostics: %w", err)
			}

			if ctx.HasErrors() {
				return ErrDiagnostics
			}
			return nil
		},
	}

	checkCmd.Flags().StringVarP(&output, "output", "o", "", "write diagnostics to this file instead of stdout")
	return checkCmd
}
