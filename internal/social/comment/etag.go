// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"fmt"
	"time"

	"github.com/taibuivan/modhub/internal/platform/httpcache"
)

// LastModified is the newest comment time of index, or fallback when the
// item has no comments yet.
func LastModified(index *Index, fallback time.Time) time.Time {
	if index != nil && !index.MaxTimestamp().IsZero() {
		return index.MaxTimestamp()
	}
	return fallback
}

// ValidatorKey composes the cache key of one listing from everything that
// changes its content. The timestamp is kept in microseconds so comments
// posted within the same second still change the key. Missing parts are
// written as 0.
func ValidatorKey(itemID int64, mode OrderMode, page, perPage int, lastModified time.Time) string {
	modePart := string(mode)
	if modePart == "" {
		modePart = "0"
	}

	var micros int64
	if !lastModified.IsZero() {
		micros = lastModified.UnixMicro()
	}

	return fmt.Sprintf("comments-%d-%s-%d-%d-%d", max(itemID, 0), modePart, max(page, 0), max(perPage, 0), micros)
}

// Validator returns the weak ETag of one listing.
func Validator(itemID int64, mode OrderMode, page, perPage int, lastModified time.Time) string {
	return httpcache.WeakETag(ValidatorKey(itemID, mode, page, perPage, lastModified))
}
