package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/bookstall/config"
	bookstallhttp "github.com/sagarc03/bookstall/http"
	"github.com/sagarc03/bookstall/keybackend"
	"github.com/sagarc03/bookstall/seed"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the bookstall HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 5708, "HTTP server port (env: BOOKSTALL_SERVER_PORT)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	catalog, err := seed.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("catalog loaded", "items", catalog.Len(), "categories", len(catalog.Categories()))

	verifier, err := keybackend.NewTokenVerifier(cfg.Auth.Token)
	if err != nil {
		return fmt.Errorf("create token verifier: %w", err)
	}

	handlerConfig := bookstallhttp.HandlerConfig{
		Token:  verifier,
		CORS:   cfg.CORS,
		Logger: slog.Default(),
	}

	handler := bookstallhttp.NewHandler(&handlerConfig, catalog)

	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  config.Timeout(cfg.Server.ReadTimeout),
		WriteTimeout: config.Timeout(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Timeout(cfg.Server.IdleTimeout),
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigCh:
		case <-ctx.Done():
			return
		}

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.Timeout(cfg.Server.ShutdownTimeout))
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server", "addr", addr, "cors", cfg.CORS.Enabled)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
