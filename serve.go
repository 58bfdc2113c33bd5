package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/handler"
	"github.com/solware/solware-id/internal/repository/sqlite"
	"github.com/solware/solware-id/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	dir, err := loadDirectory(cfg)
	if err != nil {
		return fmt.Errorf("load directory: %w", err)
	}
	slog.Info("directory loaded", "profiles", dir.Store.Len(), "default", dir.DefaultSlug)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	var (
		sink   domain.EventSink = service.LogSink{Logger: logger}
		events domain.EventRepository
	)
	if cfg.DatabasePath != "" {
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open analytics database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("database migrations applied")

		events = db.Events()
		async := service.NewAsyncSink(events, cfg.AnalyticsBuffer, logger)
		g.Go(func() error { return async.Run(ctx) })
		sink = async
	}

	resolver, err := service.NewResolver(dir.Store, dir.DefaultSlug, sink, logger)
	if err != nil {
		return err
	}

	limiter := service.NewTokenBucket(cfg.TrackRate, cfg.TrackBurst)
	g.Go(func() error { return limiter.Cleanup(ctx, 5*time.Minute, 10*time.Minute) })

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.NewCardHandler(resolver, dir.Store, limiter, events, cfg.TrustProxy))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(handler.RequestLogger(logger, mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown on SIGINT/SIGTERM or when another worker fails.
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
