// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import "context"

// # Item Data Access

// ItemRepository defines the read contract for content items.
type ItemRepository interface {

	/*
		FindByID returns the item with the given numeric ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Item: The item record
		  - error: NotFound if missing or soft-deleted
	*/
	FindByID(context context.Context, id int64) (*Item, error)

	/*
		FindBySlug returns the item matching the unique URL identifier.

		Parameters:
		  - context: context.Context
		  - slug: string (canonical form)

		Returns:
		  - *Item: The item record
		  - error: NotFound if missing or soft-deleted
	*/
	FindBySlug(context context.Context, slug string) (*Item, error)
}
