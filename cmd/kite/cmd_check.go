package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kitejava/compile"
)

func newCheckCmd(configPath *string) *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "check [file or directory...]",
		Short: "Report syntax and semantic problems without writing any files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags.apply(cmd, cfg)
			opts, err := flags.options(cfg, false)
			if err != nil {
				return err
			}
			files, err := sourceFiles(cfg, args)
			if err != nil {
				return fmt.Errorf("collect sources: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			driver := &compile.Driver{Options: opts, Jobs: cfg.Jobs}
			results, err := driver.Run(ctx, files)
			report(newRenderer(flags.noColor), results)
			return err
		},
	}

	flags.register(cmd, false)
	return cmd
}
