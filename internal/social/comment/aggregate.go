// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"log/slog"

	"github.com/taibuivan/modhub/internal/platform/ctxutil"
)

// # Thread Aggregate Cache

// AggregateCache stores the total likes of a thread keyed by its top-level ID.
//
// Get distinguishes an unset key (found=false) from a stored zero.
// Writers may race; every writer stores the same value for the same like data.
type AggregateCache interface {
	Get(context context.Context, topLevelID int64) (value int64, found bool, err error)
	Set(context context.Context, topLevelID int64, value int64) error
	Delete(context context.Context, topLevelIDs ...int64) error
}

// # Aggregator

// Aggregator answers like counts for one index snapshot.
//
// It reads through the cache and memoises per snapshot, so a sort comparator
// asking for the same thread repeatedly costs one lookup. It is not safe for
// concurrent use; build one per request.
type Aggregator struct {
	index *Index
	cache AggregateCache
	memo  map[int64]int64
}

// NewAggregator binds an [Aggregator] to index. cache may be nil, in which
// case every thread is summed in-line.
func NewAggregator(index *Index, cache AggregateCache) *Aggregator {
	return &Aggregator{
		index: index,
		cache: cache,
		memo:  make(map[int64]int64),
	}
}

// LikeCountOf is the immediate like count of c.
func (aggregator *Aggregator) LikeCountOf(c *Comment) int64 {
	return likesOf(c)
}

// likesOf reads a stored like count, treating negative values as 0.
func likesOf(c *Comment) int64 {
	if c == nil || c.LikeCount < 0 {
		return 0
	}
	return c.LikeCount
}

/*
ThreadAggregateOf returns the likes of a top-level comment plus all of its
descendants.

Description: The cache is consulted first. On a miss the thread is summed
from the index and the result is written back. Cache failures on either side
are logged and treated as a miss, so the answer is always computed.

Parameters:
  - context: context.Context
  - topLevelID: int64

Returns:
  - int64: Total likes of the thread (0 for an unknown ID)
*/
func (aggregator *Aggregator) ThreadAggregateOf(context context.Context, topLevelID int64) int64 {
	if value, ok := aggregator.memo[topLevelID]; ok {
		return value
	}
	if aggregator.index.Get(topLevelID) == nil {
		return 0
	}

	value, ok := aggregator.cached(context, topLevelID)
	if !ok {
		value = aggregator.sum(topLevelID)
		aggregator.store(context, topLevelID, value)
	}

	aggregator.memo[topLevelID] = value
	return value
}

func (aggregator *Aggregator) cached(context context.Context, topLevelID int64) (int64, bool) {
	if aggregator.cache == nil {
		return 0, false
	}

	value, found, err := aggregator.cache.Get(context, topLevelID)
	switch {
	case err != nil:
		aggregateLookups.WithLabelValues(cacheError).Inc()
		ctxutil.Logger(context).WarnContext(context, "thread_aggregate_cache_error",
			slog.Int64("comment_id", topLevelID),
			slog.String("error", err.Error()),
		)
		return 0, false
	case !found:
		aggregateLookups.WithLabelValues(cacheMiss).Inc()
		return 0, false
	}

	aggregateLookups.WithLabelValues(cacheHit).Inc()
	return value, true
}

func (aggregator *Aggregator) store(context context.Context, topLevelID int64, value int64) {
	if aggregator.cache == nil {
		return
	}

	if err := aggregator.cache.Set(context, topLevelID, value); err != nil {
		ctxutil.Logger(context).WarnContext(context, "thread_aggregate_cache_write_failed",
			slog.Int64("comment_id", topLevelID),
			slog.String("error", err.Error()),
		)
	}
}

func (aggregator *Aggregator) sum(topLevelID int64) int64 {
	var total int64
	aggregator.index.walk(aggregator.index.Get(topLevelID), func(c *Comment) {
		total += aggregator.LikeCountOf(c)
	})
	return total
}
