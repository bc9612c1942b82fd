// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package httpcache implements HTTP cache validation for read endpoints.

Validators are weak ETags built from a caller-provided composite key, so they
are cheap to compute and never require serialising the response body.

Comparison follows the weak comparison function of RFC 9110: the W/ prefix
and surrounding quotes are ignored on both sides.
*/
package httpcache

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/modhub/internal/platform/constants"
)

// WeakETag wraps a composite key as a weak entity tag: W/"key".
func WeakETag(key string) string {
	return `W/"` + key + `"`
}

// Normalize strips the weak prefix, surrounding whitespace and quotes.
func Normalize(tag string) string {
	tag = strings.TrimSpace(tag)
	if len(tag) >= 2 && (tag[:2] == "W/" || tag[:2] == "w/") {
		tag = tag[2:]
	}
	return strings.Trim(tag, `"`)
}

// Matches reports whether the If-None-Match header value selects etag.
// The header may hold a comma separated list or "*".
func Matches(etag, ifNoneMatch string) bool {
	if strings.TrimSpace(ifNoneMatch) == "" || etag == "" {
		return false
	}

	local := Normalize(etag)
	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || Normalize(candidate) == local {
			return true
		}
	}
	return false
}

// Policy describes the caching headers attached to a cacheable response.
type Policy struct {
	MaxAge               time.Duration
	StaleWhileRevalidate time.Duration
	Vary                 []string
}

// CacheControl renders the Cache-Control value for shared caches.
func (p Policy) CacheControl() string {
	value := fmt.Sprintf("public, max-age=%d", int(p.MaxAge.Seconds()))
	if p.StaleWhileRevalidate > 0 {
		value += fmt.Sprintf(", stale-while-revalidate=%d", int(p.StaleWhileRevalidate.Seconds()))
	}
	return value
}

// Apply writes Cache-Control, ETag, Last-Modified and Vary. It must run before
// the status line is written, for both 200 and 304 responses.
func (p Policy) Apply(header http.Header, etag string, lastModified time.Time) {
	header.Set(constants.HeaderCacheControl, p.CacheControl())

	if etag != "" {
		header.Set(constants.HeaderETag, etag)
	}

	if !lastModified.IsZero() {
		header.Set(constants.HeaderLastModified, lastModified.UTC().Format(http.TimeFormat))
	}

	if len(p.Vary) > 0 {
		header.Set(constants.HeaderVary, strings.Join(p.Vary, ", "))
	}
}
