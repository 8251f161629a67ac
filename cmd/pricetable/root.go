package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pricetable/internal/config"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pricetable",
		Short:         "Edit, theme and export package pricing tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the editor
			if len(args) == 0 {
				return runEditor(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultPath, "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newSuggestCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
