package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	apiURL     string
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "frota",
		Short:         "Frota manages a vehicle fleet from the terminal",
		Long:          "Frota lists, searches, registers, edits and removes the vehicles of a fleet stored behind a REST API.\nRun without a subcommand to open the interactive client.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, tuiOptions{})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Base URL of the vehicle API (default "+defaultAPIURL+")")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default ~/.frota/config.yaml)")

	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newLoginCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
