package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// symbols: dump the symbol table of one file
func newSymbolsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols <file>",
		Short: "Print the symbols declared by a Jander program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner(cmd, flags)
			if err != nil {
				return err
			}

			_, files, err := r.Run(args)
			if err != nil {
				return err
			}
			file := files[0]

			if file.Symbols != nil {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NOME\tCATEGORIA\tTIPO")
				for _, sym := range file.Symbols.Symbols() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", sym.Name, sym.Kind, sym.Type)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			if file.HasErrors() {
				if err := file.EmitDiagnostics(cmd.ErrOrStderr(), r.Options().Format); err != nil {
					return err
				}
				return ErrDiagnostics
			}
			return nil
		},
	}
}
