// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/modhub/internal/api"
	"github.com/taibuivan/modhub/internal/platform/config"
	"github.com/taibuivan/modhub/internal/platform/httpcache"
	"github.com/taibuivan/modhub/internal/platform/sec"
	"github.com/taibuivan/modhub/internal/social/comment"
)

type rejectAll struct{}

func (rejectAll) VerifyToken(string) (*sec.AuthClaims, error) {
	return nil, errors.New("no keys in tests")
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	renderer, err := comment.NewHTMLRenderer()
	require.NoError(t, err)

	limits := comment.Limits{DefaultPerPage: 15, MaxPerPage: 100}
	service := comment.NewService(nil, nil, nil, renderer, comment.Settings{Limits: limits, MaxDepth: 64}, logger)
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "development"}, logger, rejectAll{}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Comment:   comment.NewHandler(service, httpcache.Policy{}, limits),
	})
	return server.Handler()
}

/*
TestServer_Routes exercises the probes and the guards in front of the comment
routes without touching storage.
*/
func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		auth   string
		status int
	}{
		{"liveness", http.MethodGet, "/health", "", http.StatusOK},
		{"readiness_without_probes", http.MethodGet, "/ready", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"like_requires_auth", http.MethodPost, "/api/v1/comments/5/like", "", http.StatusUnauthorized},
		{"bad_token", http.MethodGet, "/health", "Bearer forged", http.StatusUnauthorized},
		{"pin_requires_auth", http.MethodPut, "/api/v1/items/7/comments/pin", "", http.StatusUnauthorized},
		{"unknown_route", http.MethodGet, "/api/v1/nothing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.auth != "" {
				request.Header.Set("Authorization", tt.auth)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}
