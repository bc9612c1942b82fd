// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/taibuivan/modhub/internal/platform/constants"
)

// RedisAggregateCache implements [AggregateCache] with one string key per thread.
type RedisAggregateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAggregateCache creates the cache. A ttl of 0 keeps totals until invalidated.
func NewRedisAggregateCache(client *redis.Client, ttl time.Duration) *RedisAggregateCache {
	return &RedisAggregateCache{client: client, ttl: ttl}
}

func aggregateKey(topLevelID int64) string {
	return constants.RedisPrefixThreadLikes + strconv.FormatInt(topLevelID, 10)
}

/*
Get reads the cached total of a thread.

Description: A missing key is reported as found=false with no error, so a
stored zero and an absent value stay distinguishable.

Parameters:
  - context: context.Context
  - topLevelID: int64

Returns:
  - int64: Cached total
  - bool: Whether a value was stored
  - error: Connectivity or decoding failures
*/
func (cache *RedisAggregateCache) Get(context context.Context, topLevelID int64) (int64, bool, error) {
	value, err := cache.client.Get(context, aggregateKey(topLevelID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis_thread_aggregate_get_failed: %w", err)
	}
	return value, true, nil
}

// Set stores the total of a thread.
func (cache *RedisAggregateCache) Set(context context.Context, topLevelID int64, value int64) error {
	if err := cache.client.Set(context, aggregateKey(topLevelID), value, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_thread_aggregate_set_failed: %w", err)
	}
	return nil
}

// Delete drops the totals of the given threads.
func (cache *RedisAggregateCache) Delete(context context.Context, topLevelIDs ...int64) error {
	if len(topLevelIDs) == 0 {
		return nil
	}

	keys := lo.Map(topLevelIDs, func(id int64, _ int) string {
		return aggregateKey(id)
	})

	if err := cache.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_thread_aggregate_delete_failed: %w", err)
	}
	return nil
}
