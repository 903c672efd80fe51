package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kitejava/compile"
)

func newEmitCmd() *cobra.Command {
	var werror bool

	cmd := &cobra.Command{
		Use:   "emit <file>",
		Short: "Print the Java translation of a .kite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read kite file: %w", err)
			}
			res := compile.Source(filename, data, compile.Options{WarningsAsErrors: werror})
			if err := newRenderer(false).Render(filename, data, res.Diagnostics); err != nil {
				return err
			}
			if res.Failed() {
				return res.Err
			}
			_, err = os.Stdout.Write(res.Java)
			return err
		},
	}

	cmd.Flags().BoolVar(&werror, "werror", false, "Treat warnings as errors")
	return cmd
}
