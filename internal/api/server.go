// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api is the composition root of the HTTP surface: one chi router, the
shared middleware chain, the probes and the versioned comment routes.

	GET    /health                              liveness
	GET    /ready                               readiness (postgres, redis)
	GET    /metrics                             prometheus exposition
	GET    /api/v1/items/{itemRef}/comments     ranked, paginated listing
	PUT    /api/v1/items/{itemRef}/comments/pin pin a thread (moderators)
	DELETE /api/v1/items/{itemRef}/comments/pin clear the pin (moderators)
	POST   /api/v1/comments/{commentID}/like    like (members)
	DELETE /api/v1/comments/{commentID}/like    unlike (members)
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/modhub/internal/platform/config"
	"github.com/taibuivan/modhub/internal/platform/constants"
	"github.com/taibuivan/modhub/internal/platform/middleware"
	"github.com/taibuivan/modhub/internal/social/comment"
)

// Handlers are the endpoint sets mounted by [NewServer].
type Handlers struct {
	Liveness  http.HandlerFunc
	Readiness http.HandlerFunc

	// Metrics defaults to promhttp.Handler.
	Metrics http.Handler

	Comment *comment.Handler
}

// Server owns the router and the listening [http.Server].
type Server struct {
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the router. The rate limiter's idle sweep runs until
// context is cancelled.
func NewServer(context context.Context, cfg *config.Config, logger *slog.Logger, verifier middleware.TokenVerifier, handlers Handlers) *Server {
	limiter := middleware.NewIPLimiter(constants.RateLimitRPS, constants.RateLimitBurst)
	go limiter.Sweep(context, constants.RateLimitSweepInterval, constants.RateLimitIdleTTL)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(logger),
		chimw.Timeout(constants.GlobalRequestTimeout),
		limiter.Handler,
		middleware.Recover(),
		middleware.Authenticate(verifier),
		middleware.CORS(cfg),
		chimw.CleanPath,
	)

	mountRoutes(router, handlers)

	return &Server{
		router: router,
		logger: logger,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
	}
}

func mountRoutes(router chi.Router, handlers Handlers) {
	metrics := handlers.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	router.Get("/health", handlers.Liveness)
	router.Get("/ready", handlers.Readiness)
	router.Method(http.MethodGet, "/metrics", metrics)

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Mount("/items", handlers.Comment.ItemRoutes())
		v1.Mount("/comments", handlers.Comment.Routes())
	})
}

// Handler returns the wired router.
func (server *Server) Handler() http.Handler {
	return server.router
}

// ListenAndServe blocks until the server stops. After [Server.Shutdown] it
// returns [http.ErrServerClosed].
func (server *Server) ListenAndServe() error {
	server.logger.Info("http_server_listening", slog.String("addr", server.httpServer.Addr))
	return server.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests for at most timeout.
func (server *Server) Shutdown(timeout time.Duration) error {
	drainCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.httpServer.Shutdown(drainCtx)
}
