package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kitejava/compile"
)

func newCompileCmd(configPath *string) *cobra.Command {
	var flags projectFlags
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "compile [file or directory...]",
		Short: "Translate .kite files into .java files",
		Long: `Translate .kite files into .java files.

Each Foo.kite becomes Foo.java in the output directory, below the
subdirectory matching its package. A file with errors produces no output.
Without arguments the sources listed in kite.yaml are compiled.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags.apply(cmd, cfg)
			opts, err := flags.options(cfg, true)
			if err != nil {
				return err
			}
			driver := &compile.Driver{Options: opts, Jobs: cfg.Jobs}
			renderer := newRenderer(flags.noColor)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if watch {
				w := &compile.Watcher{
					Driver:       driver,
					List:         func() ([]string, error) { return sourceFiles(cfg, args) },
					Report:       func(results []*compile.Result, err error) { report(renderer, results) },
					PollInterval: interval,
				}
				if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}

			files, err := sourceFiles(cfg, args)
			if err != nil {
				return fmt.Errorf("collect sources: %w", err)
			}
			if len(files) == 0 {
				return fmt.Errorf("no .kite files found")
			}
			results, err := driver.Run(ctx, files)
			report(renderer, results)
			return err
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Recompile files whenever they change")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Polling interval for --watch")

	return cmd
}
