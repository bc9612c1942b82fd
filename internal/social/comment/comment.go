// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment serves threaded comments for content items.

A read request runs one pipeline over a snapshot of approved comments:

	index -> rank replies -> aggregate thread likes -> rank threads
	      -> pin -> paginate threads -> flatten -> render

The weak validator is derived from the same snapshot before ranking, so a
conditional request that still matches stops after the index is built.

Core Responsibility:

  - Ordering: Replies are always best-first; threads follow the requested [OrderMode].
  - Paging: per_page bounds threads, never the number of rendered nodes.
  - Writes: Likes and pins are the only mutations, each invalidating what it affects.
*/
package comment

import (
	"strings"
	"time"
)

// # Domain Enums

// OrderMode selects how top-level threads are ranked.
type OrderMode string

const (
	// OrderBest ranks threads by the total likes of the whole thread.
	OrderBest OrderMode = "best"

	// OrderNewest ranks threads by creation time, newest first.
	OrderNewest OrderMode = "newest"

	// OrderOldest ranks threads by creation time, oldest first.
	OrderOldest OrderMode = "oldest"
)

// ParseOrderMode maps a raw query value onto an [OrderMode]. Anything that is
// not a known mode becomes [OrderBest].
func ParseOrderMode(raw string) OrderMode {
	switch mode := OrderMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case OrderNewest, OrderOldest:
		return mode
	}
	return OrderBest
}

// # Domain Entities

// Comment is one approved reply as read from storage.
//
// ParentID is 0 for top-level comments.
type Comment struct {
	ID         int64     `json:"id"`
	ItemID     int64     `json:"item_id"`
	ParentID   int64     `json:"parent_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	LikeCount  int64     `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsTopLevel reports whether the comment starts a thread.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == 0
}

// # Request Parameters

// Limits bounds the page size accepted from clients.
type Limits struct {
	DefaultPerPage int
	MaxPerPage     int
}

// Query is the validated form of a comment listing request. It is built once
// at the transport boundary and passed by value.
type Query struct {
	OrderMode OrderMode
	Page      int
	PerPage   int
}

// NewQuery coerces raw parameters into a [Query].
//
// # Rules
//
//   - Unknown order modes become [OrderBest].
//   - page < 1 becomes 1. The upper bound is applied once the thread count is known.
//   - perPage <= 0 becomes the default; values above the maximum are capped.
func NewQuery(orderBy string, page, perPage int, limits Limits) Query {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = limits.DefaultPerPage
	}

	return Query{
		OrderMode: ParseOrderMode(orderBy),
		Page:      page,
		PerPage:   limits.capPerPage(perPage),
	}
}

func (limits Limits) capPerPage(perPage int) int {
	if limits.MaxPerPage > 0 && perPage > limits.MaxPerPage {
		return limits.MaxPerPage
	}
	return perPage
}
