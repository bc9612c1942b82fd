// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the HTTP chain shared by every route.

Order in the router: RequestID, AccessLog, timeout, IPLimiter, Recover,
Authenticate, CORS. Authorization guards (authz.go) are mounted per route group.
*/
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/taibuivan/modhub/internal/platform/apperr"
	"github.com/taibuivan/modhub/internal/platform/constants"
	"github.com/taibuivan/modhub/internal/platform/ctxutil"
	"github.com/taibuivan/modhub/internal/platform/respond"
)

// # Correlation

const maxRequestIDLength = 64

// RequestID propagates a caller-supplied X-Request-ID or mints a UUIDv7.
// Oversized or non-printable IDs are replaced.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			id := request.Header.Get(constants.HeaderXRequestID)
			if !usableRequestID(id) {
				id = newRequestID()
			}

			writer.Header().Set(constants.HeaderXRequestID, id)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), id)))
		})
	}
}

func usableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		if r < '!' || r > '~' {
			return false
		}
	}
	return true
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// # Access Log

// responseRecorder captures what the handler wrote.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (recorder *responseRecorder) WriteHeader(status int) {
	if recorder.status == 0 {
		recorder.status = status
	}
	recorder.ResponseWriter.WriteHeader(status)
}

func (recorder *responseRecorder) Write(body []byte) (int, error) {
	if recorder.status == 0 {
		recorder.status = http.StatusOK
	}
	n, err := recorder.ResponseWriter.Write(body)
	recorder.bytes += n
	return n, err
}

func (recorder *responseRecorder) statusCode() int {
	if recorder.status == 0 {
		return http.StatusOK
	}
	return recorder.status
}

/*
AccessLog binds a request-scoped logger into the context and emits one
"http_request_finished" event per request.

Requests carrying If-None-Match are flagged as conditional. Server errors log
at ERROR, client errors at WARN.
*/
func AccessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			started := time.Now()
			ctx := request.Context()

			scoped := logger.With(
				slog.String("request_id", ctxutil.RequestID(ctx)),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
			)
			ctx = ctxutil.WithLogger(ctx, scoped)

			recorder := &responseRecorder{ResponseWriter: writer}
			next.ServeHTTP(recorder, request.WithContext(ctx))

			status := recorder.statusCode()
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			scoped.Log(ctx, level, "http_request_finished",
				slog.Int("status", status),
				slog.Int("bytes", recorder.bytes),
				slog.Bool("conditional", request.Header.Get(constants.HeaderIfNoneMatch) != ""),
				slog.String("ip", ClientIP(request)),
				slog.Duration("latency", time.Since(started)),
			)
		})
	}
}

// # Rate Limiting

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPLimiter is a token bucket per client IP.
type IPLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewIPLimiter allows rps sustained requests per IP with the given burst.
func NewIPLimiter(rps float64, burst int) *IPLimiter {
	return &IPLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow takes one token from ip's bucket.
func (limiter *IPLimiter) Allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	entry, ok := limiter.visitors[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.visitors[ip] = entry
	}
	entry.lastSeen = limiter.now()
	return entry.limiter.Allow()
}

// Forget drops visitors idle for longer than idle and returns how many remain.
func (limiter *IPLimiter) Forget(idle time.Duration) int {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	cutoff := limiter.now().Add(-idle)
	for ip, entry := range limiter.visitors {
		if entry.lastSeen.Before(cutoff) {
			delete(limiter.visitors, ip)
		}
	}
	return len(limiter.visitors)
}

// Sweep calls [IPLimiter.Forget] every interval until ctx is done.
func (limiter *IPLimiter) Sweep(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Forget(idle)
		}
	}
}

// Handler answers 429 with a Retry-After hint once an IP drains its bucket.
func (limiter *IPLimiter) Handler(next http.Handler) http.Handler {
	retryAfter := "1"
	if limiter.limit > 0 && limiter.limit < 1 {
		retryAfter = strconv.Itoa(int(1 / float64(limiter.limit)))
	}

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !limiter.Allow(ClientIP(request)) {
			writer.Header().Set(constants.HeaderRetryAfter, retryAfter)
			respond.Error(writer, request, apperr.TooManyRequests())
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// # Recovery

// Recover turns a handler panic into a logged 500.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				ctxutil.Logger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("panic", recovered),
					slog.String("stack", string(debug.Stack())),
				)
				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # CORS

// OriginPolicy is implemented by the application config.
type OriginPolicy interface {
	IsDevelopment() bool
	OriginSuffixes() []string
}

// CORS reflects allowed origins and exposes the ETag and Last-Modified
// validators to browser clients.
func CORS(policy OriginPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin != "" && originAllowed(policy, origin) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, If-None-Match, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "ETag, Last-Modified, Retry-After, X-Request-ID")
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "300")
				header.Add(constants.HeaderVary, constants.HeaderOrigin)
			}

			if origin != "" && request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

func originAllowed(policy OriginPolicy, origin string) bool {
	if policy.IsDevelopment() {
		return true
	}
	for _, suffix := range policy.OriginSuffixes() {
		if suffix != "" && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}

// # Client Address

// ClientIP prefers X-Real-IP, then the first X-Forwarded-For hop, then the
// socket peer.
func ClientIP(request *http.Request) string {
	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		return ip
	}
	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
		return host
	}
	return request.RemoteAddr
}
