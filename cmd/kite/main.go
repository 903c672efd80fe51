package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("kite")

func main() {
	var verbosity int
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "kite",
		Short:        "Translate Kite classes into Java source",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to kite.yaml (default: searched upwards from the working directory)")

	rootCmd.AddCommand(newCompileCmd(&configPath))
	rootCmd.AddCommand(newCheckCmd(&configPath))
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newEmitCmd())
	rootCmd.AddCommand(newResolveCmd(&configPath))
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
