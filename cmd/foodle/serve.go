package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/config"
	"github.com/sagarc03/foodle/database"
	foodlehttp "github.com/sagarc03/foodle/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server that publishes the client-visible settings
on /api/config and a database health check on /healthz.

The server refuses to start when the settings fail validation, for
example in production without SECRET_KEY.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 5000, "HTTP server port (env: FOODLE_SERVER_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	settings, err := settingsFromContext(ctx)
	if err != nil {
		return err
	}

	if err = config.ValidateSettings(settings); err != nil {
		return err
	}

	db, err := openDatabase(ctx, settings)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	handlerConfig := foodlehttp.HandlerConfig{
		Settings: settings,
		CORS:     cfg.CORS,
	}
	handler := foodlehttp.NewHandler(&handlerConfig, db)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	slog.Info("starting server", "addr", ln.Addr().String(), "debug", settings.Debug)
	return runServer(ctx, server, ln, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
}

// runServer serves on ln until ctx is done, then shuts down gracefully.
// It returns only after in-flight requests have finished or
// shutdownTimeout has passed, so callers may release what the handlers
// use once it returns.
func runServer(ctx context.Context, server *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Serve(ln) }()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		_ = server.Close()
		return fmt.Errorf("server shutdown: %w", err)
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// openDatabase connects to the configured database. An unreachable
// database is logged but does not stop the server; /healthz reports it.
func openDatabase(ctx context.Context, settings foodle.Settings) (database.Database, error) {
	dbCfg, err := database.ParseURL(settings.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", foodle.KeyDatabaseURI, err)
	}

	db, err := database.Connect(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Ping(pingCtx); err != nil {
		slog.Warn("database is not reachable", "type", dbCfg.Type, "err", err)
	} else {
		slog.Info("connected to database", "type", dbCfg.Type)
	}

	return db, nil
}
