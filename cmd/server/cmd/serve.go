package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"churchdata/internal/app/server/api"
	"churchdata/internal/domain/schema"
	"churchdata/internal/domain/session"
	"churchdata/internal/infrastructure/cache"
	"churchdata/internal/infrastructure/storage"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	var schemaCache schema.Cache
	if cfg.Redis.URL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		schemaCache = cache.NewSchemaCache(client, cfg.Redis.SchemaTTL)
		log.Info("schema cache enabled", "ttl", cfg.Redis.SchemaTTL)
	}

	sessions, err := session.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	if err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}

	srv := &http.Server{
		Addr: cfg.Server.RunAddress,
		Handler: api.New(api.Deps{
			Config:      cfg,
			Storage:     st,
			SchemaCache: schemaCache,
			Session:     sessions,
			Log:         log,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", "addr", srv.Addr, "env", cfg.Env, "driver", st.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped gracefully")
	return nil
}
