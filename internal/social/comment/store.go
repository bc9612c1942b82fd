// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "context"

// # Comment Data Access

// Repository groups every storage contract the comment service needs.
type Repository interface {
	CommentRepository
	LikeRepository
	PinRepository
}

// CommentRepository reads approved comments.
type CommentRepository interface {

	/*
		ListApproved returns every approved, non-deleted comment of an item.

		Parameters:
		  - context: context.Context
		  - itemID: int64

		Returns:
		  - []Comment: Comments in arrival order with immediate like counts
		  - error: Database retrieval failures
	*/
	ListApproved(context context.Context, itemID int64) ([]Comment, error)

	/*
		FindByID returns one approved, non-deleted comment.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Comment: The comment
		  - error: NotFound if missing, unapproved or deleted
	*/
	FindByID(context context.Context, id int64) (*Comment, error)

	/*
		ThreadRootOf follows parent links up to the top-level comment.

		Parameters:
		  - context: context.Context
		  - commentID: int64

		Returns:
		  - int64: ID of the thread's top-level comment
		  - error: NotFound if the chain is broken or too deep
	*/
	ThreadRootOf(context context.Context, commentID int64) (int64, error)
}

// LikeRepository records per-user likes.
type LikeRepository interface {

	/*
		Like records that userID likes commentID.

		Returns:
		  - bool: false if the like already existed
		  - error: Storage failures
	*/
	Like(context context.Context, commentID int64, userID string) (bool, error)

	/*
		Unlike removes userID's like from commentID.

		Returns:
		  - bool: false if there was nothing to remove
		  - error: Storage failures
	*/
	Unlike(context context.Context, commentID int64, userID string) (bool, error)
}

// PinRepository keeps at most one pinned comment per item.
type PinRepository interface {

	// GetPin returns the pinned comment of an item, or 0 when none is set.
	GetPin(context context.Context, itemID int64) (int64, error)

	// SetPin replaces the pinned comment of an item.
	SetPin(context context.Context, itemID, commentID int64, pinnedBy string) error

	// ClearPin removes the pin of an item. Clearing an unpinned item is not an error.
	ClearPin(context context.Context, itemID int64) error
}
