// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api serves the modhub threaded comments API.
//
// Startup order: logger, config, Postgres, Redis, migrations, token
// verifier, domain services, HTTP server. SIGINT or SIGTERM drains in-flight
// requests before the pools close.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/modhub/data/migrations"
	"github.com/taibuivan/modhub/internal/api"
	"github.com/taibuivan/modhub/internal/core/item"
	"github.com/taibuivan/modhub/internal/platform/config"
	"github.com/taibuivan/modhub/internal/platform/constants"
	"github.com/taibuivan/modhub/internal/platform/httpcache"
	"github.com/taibuivan/modhub/internal/platform/migration"
	pgstore "github.com/taibuivan/modhub/internal/platform/postgres"
	redisstore "github.com/taibuivan/modhub/internal/platform/redis"
	"github.com/taibuivan/modhub/internal/platform/sec"
	"github.com/taibuivan/modhub/internal/social/comment"
)

const startupTimeout = 30 * time.Second

func main() {
	logger := newLogger(slog.LevelInfo)
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("service_exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Debug {
		logger = newLogger(slog.LevelDebug)
		slog.SetDefault(logger)
	}

	logger.Info("service_starting",
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
		slog.Any("commentable_types", cfg.Comments.AllowedTypes),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startupCtx, cancelStartup := context.WithTimeout(ctx, startupTimeout)
	defer cancelStartup()

	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("redis_close_failed", slog.String("error", err.Error()))
		}
	}()

	if err := migration.RunUp(cfg.DatabaseURL, migrationSource(cfg), logger); err != nil {
		return err
	}

	verifier, err := sec.LoadTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	if err != nil {
		return err
	}

	commentHandler, err := newCommentHandler(cfg, pool, rdb, logger)
	if err != nil {
		return err
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, logger)

	server := api.NewServer(ctx, cfg, logger, verifier, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comment:   commentHandler,
	})

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.ListenAndServe() }()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown_requested", slog.Duration("timeout", constants.ShutdownTimeout))
	}

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("service_stopped")
	return nil
}

// newCommentHandler wires the item resolver, Postgres store, Redis aggregate
// cache and renderer behind the comment HTTP handler.
func newCommentHandler(cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, logger *slog.Logger) (*comment.Handler, error) {
	renderer, err := comment.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("comment template: %w", err)
	}

	limits := comment.Limits{
		DefaultPerPage: cfg.Comments.DefaultPerPage,
		MaxPerPage:     cfg.Comments.MaxPerPage,
	}
	items := item.NewService(item.NewPostgresRepository(pool), cfg.Comments.AllowedTypes, logger)

	service := comment.NewService(
		comment.NewPostgresRepository(pool, cfg.Comments.MaxDepth),
		comment.NewRedisAggregateCache(rdb, cfg.Comments.AggregateTTL),
		items,
		renderer,
		comment.Settings{Limits: limits, MaxDepth: cfg.Comments.MaxDepth},
		logger,
	)

	return comment.NewHandler(service, httpcache.Policy{
		MaxAge:               cfg.Comments.CacheMaxAge,
		StaleWhileRevalidate: cfg.Comments.CacheStaleWhileRevalidate,
		Vary:                 []string{"Accept-Encoding", constants.HeaderAuthorization},
	}, limits), nil
}

// migrationSource prefers MIGRATION_PATH over the embedded set.
func migrationSource(cfg *config.Config) fs.FS {
	if cfg.MigrationPath != "" {
		return os.DirFS(cfg.MigrationPath)
	}
	return migrations.FS
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}
