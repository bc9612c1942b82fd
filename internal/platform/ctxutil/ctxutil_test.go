// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/modhub/internal/platform/ctxkey"
	"github.com/taibuivan/modhub/internal/platform/ctxutil"
	"github.com/taibuivan/modhub/internal/platform/sec"
)

/*
TestContext_Empty returns zero values and the default logger on a bare context.
*/
func TestContext_Empty(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.RequestID(ctx))
	assert.Nil(t, ctxutil.Claims(ctx))
	assert.Same(t, slog.Default(), ctxutil.Logger(ctx))
}

/*
TestContext_RoundTrip reads back every value set by middleware.
*/
func TestContext_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	claims := &sec.AuthClaims{UserID: "u-7", Role: string(sec.RoleModerator)}

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	ctx = ctxutil.WithLogger(ctx, logger)
	ctx = ctxutil.WithClaims(ctx, claims)

	assert.Equal(t, "req-42", ctxutil.RequestID(ctx))
	assert.Same(t, logger, ctxutil.Logger(ctx))
	require.NotNil(t, ctxutil.Claims(ctx))
	assert.Equal(t, "u-7", ctxutil.Claims(ctx).UserID)
}

/*
TestContext_ForeignKeys ignores string keys that collide by name.
*/
func TestContext_ForeignKeys(t *testing.T) {
	//nolint:staticcheck
	ctx := context.WithValue(context.Background(), "request_id", "spoofed")

	assert.Empty(t, ctxutil.RequestID(ctx))
	assert.Equal(t, "request_id", ctxkey.RequestID.String())
}
