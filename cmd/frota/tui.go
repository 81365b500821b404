package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/tui"
)

type tuiOptions struct {
	skipLogin bool
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	opts := tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive client",
		Long:  "Open the interactive client. Logs are written to ~/.frota/frota.log while it runs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.skipLogin, "skip-login", false, "Open the vehicle list directly")

	return cmd
}

func runTUI(cmd *cobra.Command, flags *rootFlags, opts tuiOptions) error {
	app, err := newAppContext(cmd, flags, appOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "command.tui")
	log.Info(ctx, "launching terminal client", "api_url", app.Client.BaseURL())

	current := app.Theme.Initialize(ctx)
	log.Debug(ctx, "theme ready", "theme", current.String())

	err = tui.Run(tui.Options{
		Context:   ctx,
		Theme:     app.Theme,
		Logger:    log,
		Login:     app.Login,
		List:      app.List,
		Create:    app.Create,
		Edit:      app.Edit,
		SkipLogin: opts.skipLogin,
	}, tea.WithAltScreen(), tea.WithContext(ctx))
	if err != nil {
		log.Error(ctx, "terminal client failed", "error", err)
		return newCommandError("run", "the terminal client", err, "Run 'frota list' to check connectivity, or inspect "+app.Config.LogPath()+".")
	}

	log.Info(ctx, "terminal client closed")
	return nil
}
