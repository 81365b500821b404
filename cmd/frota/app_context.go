package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/api"
	"github.com/alexisbeaulieu97/frota/internal/config"
	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/prefs"
	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/theme"
)

const (
	defaultAPIURL = api.DefaultBaseURL
	flushTimeout  = 5 * time.Second
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config config.Config
	Logger *logger.Logger
	Client *api.Client
	Prefs  *prefs.FileStore
	Theme  *theme.Store

	Login  *screens.Login
	List   *screens.List
	Create *screens.Create
	Edit   *screens.Edit

	closers []io.Closer
}

// appOptions tweaks how newAppContext wires logging.
type appOptions struct {
	// logToFile sends log output to the data directory instead of stderr.
	logToFile bool
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg}

	log, err := app.newLogger(cmd, flags, opts)
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "creating logger", err, "Check that the data directory is writable.")
	}
	app.Logger = log

	client, err := api.New(api.Options{BaseURL: cfg.APIURL, Timeout: cfg.Timeout, Logger: log})
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "configuring the API client", err, "Pass a valid --api-url such as "+defaultAPIURL+".")
	}
	app.Client = client

	store, err := prefs.Open(cfg.PrefsPath())
	if err != nil {
		app.Close()
		return nil, newCommandError("start", "opening preferences", err, "Check that "+cfg.DataDir+" is writable.")
	}
	app.Prefs = store
	app.Theme = theme.NewStore(store, theme.SystemScheme(), log)

	app.Login = screens.NewLogin(log)
	app.List = screens.NewList(client, log)
	app.Create = screens.NewCreate(client, log)
	app.Edit = screens.NewEdit(client, log)

	return app, nil
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.Config{}, newCommandError("start", "determining home directory", err, "Ensure your HOME directory is set correctly.")
	}

	path := flags.configPath
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, newCommandError("start", "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
	}

	cfg, err := config.Load(path, config.Default(home))
	if err != nil {
		return config.Config{}, newCommandError("start", fmt.Sprintf("reading %s", path), err, "Fix the YAML syntax error shown above.")
	}
	cfg.ApplyEnv(os.LookupEnv)

	if flags.apiURL != "" {
		cfg.APIURL = flags.apiURL
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, newCommandError("start", "validating configuration", err, "Correct the setting named above in the config file, environment or flags.")
	}
	return cfg, nil
}

func (a *AppContext) newLogger(cmd *cobra.Command, flags *rootFlags, opts appOptions) (*logger.Logger, error) {
	switch {
	case opts.logToFile:
		if err := os.MkdirAll(a.Config.DataDir, 0o755); err != nil {
			return nil, err
		}
		file, err := os.OpenFile(a.Config.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, file)
		return logger.New(logger.Options{Level: a.Config.LogLevel, Writer: file, Component: "tui"})
	case flags.verbose:
		return logger.New(logger.Options{Level: a.Config.LogLevel, HumanReadable: true, Writer: cmd.ErrOrStderr(), Component: "cli"})
	default:
		return logger.Nop(), nil
	}
}

// CommandContext derives the context of one command run. Every log line it
// produces carries the same correlation id.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, *logger.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithCorrelationID(ctx, logger.NewCorrelationID())
	return ctx, a.Logger.With("command", name)
}

// Close waits for pending preference writes and releases open files.
func (a *AppContext) Close() {
	if a.Theme != nil {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		_ = a.Theme.Flush(ctx)
		cancel()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
