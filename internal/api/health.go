// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/modhub/internal/platform/constants"
	"github.com/taibuivan/modhub/internal/platform/respond"
)

// HealthDependencies are the probes behind /ready. A nil probe is skipped.
type HealthDependencies struct {
	CheckDatabase func(context.Context) error
	CheckCache    func(context.Context) error
}

type probe struct {
	name  string
	check func(context.Context) error
}

type probeResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers returns the /health and /ready handlers.
//
// Readiness turns 503 when the Redis probe fails, although listings keep
// working by recomputing thread totals.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	probes := make([]probe, 0, 2)
	for _, candidate := range []probe{
		{name: "postgres", check: deps.CheckDatabase},
		{name: "redis", check: deps.CheckCache},
	} {
		if candidate.check != nil {
			probes = append(probes, candidate)
		}
	}

	liveness = func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
	}

	readiness = func(writer http.ResponseWriter, request *http.Request) {
		results, ready := runProbes(request.Context(), probes, logger)

		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		respond.Status(writer, code, map[string]any{
			constants.FieldStatus: status,
			constants.FieldChecks: results,
		})
	}

	return liveness, readiness
}

func runProbes(ctx context.Context, probes []probe, logger *slog.Logger) ([]probeResult, bool) {
	results := make([]probeResult, len(probes))
	ready := true

	for i, p := range probes {
		results[i] = probeResult{Name: p.name, OK: true}
		if err := p.check(ctx); err != nil {
			results[i].OK = false
			results[i].Error = err.Error()
			ready = false
			logger.ErrorContext(ctx, "readiness_check_failed",
				slog.String("dependency", p.name),
				slog.String("error", err.Error()),
			)
		}
	}
	return results, ready
}
