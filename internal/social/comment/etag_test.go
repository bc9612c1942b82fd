// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/modhub/internal/platform/httpcache"
	"github.com/taibuivan/modhub/internal/social/comment"
)

/*
TestValidatorKey composes every input and degrades missing parts to 0.
*/
func TestValidatorKey(t *testing.T) {
	modified := time.Unix(1767225600, 0)

	assert.Equal(t, "comments-7-best-2-10-1767225600000000", comment.ValidatorKey(7, comment.OrderBest, 2, 10, modified))
	assert.Equal(t, "comments-7-oldest-1-15-0", comment.ValidatorKey(7, comment.OrderOldest, 1, 15, time.Time{}))
	assert.Equal(t, "comments-0-0-0-0-0", comment.ValidatorKey(-1, "", -2, 0, time.Time{}))
}

/*
TestValidator_RoundTrip matches its own echo and nothing else.
*/
func TestValidator_RoundTrip(t *testing.T) {
	modified := time.Unix(1767225600, 0)
	etag := comment.Validator(7, comment.OrderBest, 1, 15, modified)

	assert.Equal(t, `W/"comments-7-best-1-15-1767225600000000"`, etag)
	assert.True(t, httpcache.Matches(etag, etag))
	assert.False(t, httpcache.Matches(comment.Validator(7, comment.OrderNewest, 1, 15, modified), etag))
	assert.False(t, httpcache.Matches(comment.Validator(7, comment.OrderBest, 1, 15, modified.Add(time.Second)), etag))
}

/*
TestValidator_SubSecond tells apart listings whose newest comments share a second.
*/
func TestValidator_SubSecond(t *testing.T) {
	first := comment.Validator(7, comment.OrderBest, 1, 15, base.Add(100*time.Millisecond))
	second := comment.Validator(7, comment.OrderBest, 1, 15, base.Add(600*time.Millisecond))

	assert.NotEqual(t, first, second)
	assert.False(t, httpcache.Matches(second, first))
}

/*
TestLastModified prefers the newest comment over the item fallback.
*/
func TestLastModified(t *testing.T) {
	fallback := at(-60)

	assert.Equal(t, fallback, comment.LastModified(comment.NewIndex(nil), fallback))
	assert.Equal(t, at(3), comment.LastModified(comment.NewIndex([]comment.Comment{
		{ID: 1, CreatedAt: at(1)},
		{ID: 2, ParentID: 1, CreatedAt: at(3)},
	}), fallback))
}
