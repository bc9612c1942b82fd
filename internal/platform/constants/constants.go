// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds fixed values shared across the modhub API: server
// timing, abuse limits, header names, body keys and cache key prefixes.
//
// Anything an operator may want to tune belongs in config instead.
package constants

import "time"

const (
	AppName    = "modhub-comments"
	AppVersion = "0.1.0-dev"
)

// # HTTP Server

const (
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 2 * time.Minute

	// GlobalRequestTimeout also becomes the Postgres statement_timeout.
	GlobalRequestTimeout = 30 * time.Second

	ShutdownTimeout = 30 * time.Second
)

// # Abuse Limits

const (
	// Per client IP, shared by listings and like toggles.
	RateLimitRPS   = 20.0
	RateLimitBurst = 60

	RateLimitSweepInterval = time.Minute
	RateLimitIdleTTL       = 3 * time.Minute
)

// # Headers

const (
	HeaderAuthorization = "Authorization"
	HeaderCacheControl  = "Cache-Control"
	HeaderContentType   = "Content-Type"
	HeaderETag          = "ETag"
	HeaderIfNoneMatch   = "If-None-Match"
	HeaderLastModified  = "Last-Modified"
	HeaderOrigin        = "Origin"
	HeaderRetryAfter    = "Retry-After"
	HeaderVary          = "Vary"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSONUTF8 = "application/json; charset=utf-8"
	BearerScheme        = "Bearer"
)

// # Body Keys

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Keys

const (
	// RedisPrefixThreadLikes + top-level comment ID holds the thread like total.
	RedisPrefixThreadLikes = "comments:thread_likes:"
)
