package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, false)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, false)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark and remember the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, true)
		},
	})

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, toggle bool) error {
	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "command.theme")
	current := app.Theme.Initialize(ctx)

	if toggle {
		current = app.Theme.Toggle()
		flushCtx, cancel := context.WithTimeout(ctx, flushTimeout)
		defer cancel()
		if err := app.Theme.Flush(flushCtx); err != nil {
			return newCommandError("theme", "saving theme", err, "Check that "+app.Prefs.Path()+" is writable.")
		}
		log.Info(ctx, "theme toggled", "theme", current.String())
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), current.String())
	return nil
}
