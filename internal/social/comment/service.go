// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/modhub/internal/core/item"
	"github.com/taibuivan/modhub/internal/platform/apperr"
	"github.com/taibuivan/modhub/internal/platform/ctxutil"
	"github.com/taibuivan/modhub/internal/platform/httpcache"
	"github.com/taibuivan/modhub/internal/platform/validate"
	"github.com/taibuivan/modhub/pkg/pagination"
)

// Field names used in validation errors.
const (
	FieldCommentID = "comment_id"
)

// # Service Layer

// ItemResolver finds the commentable item behind a URL reference.
type ItemResolver interface {
	ResolveCommentable(context context.Context, ref string) (*item.Item, error)
}

// Settings bounds the listing pipeline.
type Settings struct {
	Limits   Limits
	MaxDepth int
}

// Service orchestrates comment listings, likes and pins.
type Service struct {
	repo     Repository
	cache    AggregateCache
	items    ItemResolver
	renderer Renderer
	settings Settings
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its collaborators.
func NewService(repo Repository, cache AggregateCache, items ItemResolver, renderer Renderer, settings Settings, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		items:    items,
		renderer: renderer,
		settings: settings,
		logger:   logger,
	}
}

// Listing is the outcome of [Service.ListThreads].
//
// When NotModified is set, View is nil and Rendered is empty; only the
// validator fields are meaningful.
type Listing struct {
	ETag         string
	LastModified time.Time
	NotModified  bool
	View         *RankedView
	Rendered     string
}

// # Listing

/*
ListThreads produces one page of threaded comments for an item.

Description: The item is resolved and its approved comments are indexed. The
weak validator is derived from the snapshot before any ranking happens; if it
matches ifNoneMatch the call returns immediately with NotModified set.
Otherwise the pin is read, the pipeline runs and the view is rendered.

Parameters:
  - context: context.Context
  - itemRef: string (numeric ID or slug)
  - query: Query (already coerced at the boundary)
  - ifNoneMatch: string (raw If-None-Match header, may be empty)

Returns:
  - *Listing: Validator plus either the rendered page or NotModified
  - error: NotFound/Unprocessable for bad items, Internal for storage failures
*/
func (service *Service) ListThreads(context context.Context, itemRef string, query Query, ifNoneMatch string) (*Listing, error) {
	target, err := service.items.ResolveCommentable(context, itemRef)
	if err != nil {
		return nil, err
	}

	records, err := service.repo.ListApproved(context, target.ID)
	if err != nil {
		return nil, err
	}
	index := NewIndex(records)

	// Page resolution only depends on the thread count, which pinning keeps.
	limits := service.settings.Limits
	window := pagination.Resolve(len(index.TopLevel()), query.Page, limits.capPerPage(query.PerPage), limits.DefaultPerPage)
	query.Page, query.PerPage = window.Page, window.PerPage

	lastModified := LastModified(index, target.UpdatedAt)
	etag := Validator(target.ID, query.OrderMode, query.Page, query.PerPage, lastModified)

	if httpcache.Matches(etag, ifNoneMatch) {
		conditionalRequests.WithLabelValues("not_modified").Inc()
		return &Listing{ETag: etag, LastModified: lastModified, NotModified: true}, nil
	}
	conditionalRequests.WithLabelValues("full").Inc()

	started := time.Now()

	pinnedID, err := service.repo.GetPin(context, target.ID)
	if err != nil {
		return nil, err
	}

	view := Rank(context, index, query, Options{
		PinnedID: pinnedID,
		Cache:    service.cache,
		MaxDepth: service.settings.MaxDepth,
	})
	view.ItemID = target.ID
	view.LastModified = lastModified

	rendered, err := service.renderer.Render(context, view)
	if err != nil {
		service.logger.ErrorContext(context, "comment_render_failed",
			slog.Int64("item_id", target.ID),
			slog.String("orderby", string(query.OrderMode)),
			slog.String("error", err.Error()),
		)
		return nil, apperr.Internal(err)
	}

	pipelineLatency.WithLabelValues(string(query.OrderMode)).Observe(time.Since(started).Seconds())

	return &Listing{
		ETag:         etag,
		LastModified: lastModified,
		View:         view,
		Rendered:     rendered,
	}, nil
}

// # Likes

// LikeState reports a comment's like status for the acting user.
type LikeState struct {
	CommentID int64 `json:"comment_id"`
	Liked     bool  `json:"liked"`
	Changed   bool  `json:"changed"`
}

/*
Like records a like and invalidates the thread's cached total.

Parameters:
  - context: context.Context
  - commentID: int64
  - userID: string

Returns:
  - *LikeState: Resulting state; Changed is false for a repeated like
  - error: NotFound if the comment is not visible
*/
func (service *Service) Like(context context.Context, commentID int64, userID string) (*LikeState, error) {
	return service.toggleLike(context, commentID, userID, true)
}

/*
Unlike removes a like and invalidates the thread's cached total.

Parameters:
  - context: context.Context
  - commentID: int64
  - userID: string

Returns:
  - *LikeState: Resulting state; Changed is false when there was no like
  - error: NotFound if the comment is not visible
*/
func (service *Service) Unlike(context context.Context, commentID int64, userID string) (*LikeState, error) {
	return service.toggleLike(context, commentID, userID, false)
}

func (service *Service) toggleLike(context context.Context, commentID int64, userID string, like bool) (*LikeState, error) {
	target, err := service.repo.FindByID(context, commentID)
	if err != nil {
		return nil, err
	}

	var changed bool
	if like {
		changed, err = service.repo.Like(context, target.ID, userID)
	} else {
		changed, err = service.repo.Unlike(context, target.ID, userID)
	}
	if err != nil {
		return nil, err
	}

	action := "unlike"
	if like {
		action = "like"
	}

	if changed {
		likeChanges.WithLabelValues(action).Inc()
		service.invalidateThread(context, target)
		ctxutil.Logger(context).InfoContext(context, "comment_"+action+"d",
			slog.Int64("comment_id", target.ID),
			slog.String("user_id", userID),
		)
	}

	return &LikeState{CommentID: target.ID, Liked: like, Changed: changed}, nil
}

// invalidateThread drops the cached total of the thread containing target.
// The like is already stored, so failures here are logged and not returned.
func (service *Service) invalidateThread(context context.Context, target *Comment) {
	if service.cache == nil {
		return
	}
	logger := ctxutil.Logger(context)

	rootID := target.ID
	if !target.IsTopLevel() {
		var err error
		rootID, err = service.repo.ThreadRootOf(context, target.ID)
		if err != nil {
			logger.WarnContext(context, "thread_root_lookup_failed",
				slog.Int64("comment_id", target.ID),
				slog.String("error", err.Error()),
			)
			return
		}
	}

	if err := service.cache.Delete(context, rootID); err != nil {
		logger.ErrorContext(context, "thread_aggregate_invalidation_failed",
			slog.Int64("thread_id", rootID),
			slog.String("error", err.Error()),
		)
	}
}

// # Pinning

/*
Pin makes commentID the pinned thread of an item.

Description: Only approved, non-deleted top-level comments of the same item
can be pinned. Anything else is rejected as a validation error on comment_id.

Parameters:
  - context: context.Context
  - itemRef: string
  - commentID: int64
  - actorID: string (moderator performing the change)

Returns:
  - error: Validation, NotFound or storage failures
*/
func (service *Service) Pin(context context.Context, itemRef string, commentID int64, actorID string) error {
	validator := &validate.Validator{}
	if err := validator.PositiveID(FieldCommentID, commentID).Err(); err != nil {
		return err
	}

	target, err := service.items.ResolveCommentable(context, itemRef)
	if err != nil {
		return err
	}

	candidate, err := service.repo.FindByID(context, commentID)
	if err != nil && !apperr.IsNotFound(err) {
		return err
	}

	validator.Check(
		candidate != nil && candidate.ItemID == target.ID && candidate.IsTopLevel(),
		FieldCommentID, "Only visible top-level comments of this item can be pinned",
	)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.SetPin(context, target.ID, candidate.ID, actorID); err != nil {
		return err
	}

	ctxutil.Logger(context).InfoContext(context, "comment_pinned",
		slog.Int64("item_id", target.ID),
		slog.Int64("comment_id", candidate.ID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// Unpin clears the pinned thread of an item.
func (service *Service) Unpin(context context.Context, itemRef string, actorID string) error {
	target, err := service.items.ResolveCommentable(context, itemRef)
	if err != nil {
		return err
	}

	if err := service.repo.ClearPin(context, target.ID); err != nil {
		return err
	}

	ctxutil.Logger(context).InfoContext(context, "comment_unpinned",
		slog.Int64("item_id", target.ID),
		slog.String("actor_id", actorID),
	)
	return nil
}
