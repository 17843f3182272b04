// Package cli implements the sheetview command line: build a viewer's
// view-model or launch URL from a CSV without running the server.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/sheetview/internal/config"
	"github.com/dgallion1/sheetview/internal/launcher"
	"github.com/dgallion1/sheetview/internal/source"
	"github.com/dgallion1/sheetview/internal/tools"
)

type ctxKey string

const appKey ctxKey = "app"

type app struct {
	cfg      config.Config
	log      *slog.Logger
	client   *source.Client
	driver   *tools.Driver
	launcher *launcher.Launcher
}

// Execute builds the root command and runs it with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd constructs the root command. Flags override the environment
// configuration the server reads.
func NewRootCmd() *cobra.Command {
	var (
		verbose   bool
		timeout   time.Duration
		userAgent string
	)

	cmd := &cobra.Command{
		Use:           "sheetview",
		Short:         "Turn CSV sheets into viewer models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if timeout > 0 {
				cfg.FetchTimeout = timeout
			}
			if userAgent != "" {
				cfg.UserAgent = userAgent
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			client := source.NewClient(cfg.SourceOptions(), log)
			registry := tools.Default()
			a := &app{
				cfg:      cfg,
				log:      log,
				client:   client,
				driver:   tools.NewDriver(registry, client, log),
				launcher: launcher.New(cfg.LaunchBase, registry),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, a))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a, ok := cmd.Context().Value(appKey).(*app); ok {
				a.client.Close()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "CSV fetch timeout (default FETCH_TIMEOUT or 30s)")
	cmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "User-Agent for CSV fetches")

	cmd.AddCommand(newViewCmd())
	cmd.AddCommand(newLaunchCmd())
	cmd.AddCommand(newToolsCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getApp(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey).(*app)
	if !ok {
		return nil, fmt.Errorf("internal error: app not initialized")
	}
	return a, nil
}
