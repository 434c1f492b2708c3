package root

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/powerdrill/internal/api"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/repository/sqlite"
	"github.com/vytor/powerdrill/internal/services"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the high score boards over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Addr
			}
			log := logger.Default()
			log.Info("Power Drill scoreboard server starting")
			log.Debug("addr=%s", addr)
			log.Debug("db_path=%s", cfg.DBPath)
			log.Debug("log_level=%s", cfg.LogLevel)

			database, cleanup, err := openDB()
			if err != nil {
				return err
			}
			defer cleanup()

			srv := api.NewServer(database, services.NewScoreService(sqlite.NewHighScoreRepository(database)))
			httpServer := &http.Server{
				Addr:         addr,
				Handler:      srv.Routes(),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("HTTP server listening on %s", addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("HTTP server error: %v", err)
					return err
				}
			case <-ctx.Done():
				log.Info("shutdown signal received, stopping server")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				log.Error("HTTP server shutdown error: %v", err)
				return err
			}
			log.Info("Power Drill scoreboard server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to ADDR)")
	return cmd
}
