package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/sheetview/internal/api"
	"github.com/dgallion1/sheetview/internal/config"
	"github.com/dgallion1/sheetview/internal/launcher"
	"github.com/dgallion1/sheetview/internal/source"
	"github.com/dgallion1/sheetview/internal/tools"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize clients.
	client := source.NewClient(cfg.SourceOptions(), log)
	registry := tools.Default()

	// Initialize HTTP server.
	srv := api.NewServer(
		tools.NewDriver(registry, client, log),
		launcher.New(cfg.LaunchBase, registry),
		client.Stats(),
		log,
	)

	httpServer := &http.Server{
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.FetchTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Error("listen failed", "error", err)
		os.Exit(1)
	}

	log.Info("starting sheetview", "port", cfg.Port, "tools", len(registry.List()))
	if err := serve(ctx, httpServer, ln, log, client.Close); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// serve runs httpServer on ln until ctx ends, then shuts down gracefully. It
// returns only after in-flight requests have drained and cleanup has run.
func serve(ctx context.Context, httpServer *http.Server, ln net.Listener, log *slog.Logger, cleanup func()) error {
	serveErr := make(chan error, 1)
	go func() { serveErr <- httpServer.Serve(ln) }()

	select {
	case err := <-serveErr:
		cleanup()
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	shutdownErr := httpServer.Shutdown(shutdownCtx)
	cleanup()

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return shutdownErr
}
