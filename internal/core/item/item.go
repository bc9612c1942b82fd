// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package item defines the content items that comments attach to.

Items (mods, posts) are owned by the catalogue; this package only reads them
to answer two questions for the comment engine: does the item exist, and does
its type accept comments.
*/
package item

import "time"

// # Domain Enums

// Status represents the publication status of an item.
type Status string

const (
	// StatusDraft items are invisible to readers.
	StatusDraft Status = "draft"

	// StatusPublished items are publicly visible.
	StatusPublished Status = "published"

	// StatusArchived items are visible but frozen.
	StatusArchived Status = "archived"
)

// IsVisible reports whether readers can see items in this status.
func (s Status) IsVisible() bool {
	return s == StatusPublished || s == StatusArchived
}

// # Domain Entities

// Item is a commentable piece of content.
type Item struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Type      string    `json:"type"`
	Status    Status    `json:"status"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}
