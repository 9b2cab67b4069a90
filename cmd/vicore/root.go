package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dshills/vicore/internal/app"
	"github.com/dshills/vicore/internal/config"
	"github.com/dshills/vicore/internal/logging"
	"github.com/dshills/vicore/internal/terminal"
)

// session is everything needed to start the editor.
type session struct {
	opts   app.Options
	logger *logging.Logger
}

// runFunc starts an editing session. Tests replace it.
type runFunc func(ctx context.Context, s session) error

func newRootCmd(run runFunc) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("VICORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "vicore [file]",
		Short: "A modal text editor",
		Long: `vicore edits one file in the terminal with Vim-style modal commands.

A missing file opens as an empty buffer and is created on the first save.

Settings are read from $XDG_CONFIG_HOME/vicore/config.toml unless --config
names another file. Flags override the file, and VICORE_CONFIG,
VICORE_LOG_LEVEL and VICORE_LOG_FILE override their flags' defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("file")
			if len(args) == 1 {
				if path != "" && path != args[0] {
					return fmt.Errorf("file given twice: %q and %q", path, args[0])
				}
				path = args[0]
			}
			cmd.SilenceUsage = true
			return start(cmd.Context(), v, run, path, false)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default: $XDG_CONFIG_HOME/vicore/config.toml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-file", "", "write diagnostic logs to this file")
	root.Flags().StringP("file", "f", "", "file to edit")

	_ = v.BindPFlag("config", flags.Lookup("config"))
	_ = v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log-file", flags.Lookup("log-file"))
	_ = v.BindPFlag("file", root.Flags().Lookup("file"))

	root.AddCommand(newNewCmd(v, run), newVersionCmd())
	return root
}

// start loads settings, applies overrides and hands off to run.
func start(ctx context.Context, v *viper.Viper, run runFunc, path string, create bool) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Info("starting", "version", version, "path", path, "create", create)
	return run(ctx, session{
		opts: app.Options{
			Path:   path,
			Create: create,
			Config: cfg,
			Logger: logger.Logger,
		},
		logger: logger,
	})
}

func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if v.IsSet("log-level") {
		cfg.Log.Level = v.GetString("log-level")
	}
	if v.IsSet("log-file") {
		cfg.Log.File = v.GetString("log-file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runEditor runs a session on the controlling terminal.
func runEditor(ctx context.Context, s session) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	application, err := app.New(s.opts)
	if err != nil {
		return err
	}
	defer application.Close()

	scr, err := terminal.New(s.opts.Config.Editor.TabWidth)
	if err != nil {
		return err
	}

	err = application.Run(ctx, scr)
	if errors.Is(err, context.Canceled) {
		s.logger.Info("stopped by signal")
		return nil
	}
	return err
}
