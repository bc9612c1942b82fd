// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/modhub/internal/platform/constants"
	"github.com/taibuivan/modhub/internal/platform/httpcache"
	"github.com/taibuivan/modhub/internal/platform/middleware"
	requestutil "github.com/taibuivan/modhub/internal/platform/request"
	"github.com/taibuivan/modhub/internal/platform/respond"
	"github.com/taibuivan/modhub/internal/platform/sec"
	"github.com/taibuivan/modhub/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for comment listings, likes and pins.
type Handler struct {
	service *Service
	policy  httpcache.Policy
	limits  Limits
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service, policy httpcache.Policy, limits Limits) *Handler {
	return &Handler{service: service, policy: policy, limits: limits}
}

// ItemRoutes returns the endpoints nested under an item. Mount at /items.
//
// # Routing Strategy
//
//   - Listing (Public): conditional GET aware, cacheable by shared caches.
//   - Pinning (Restricted): requires [sec.PermPinThread].
func (handler *Handler) ItemRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{itemRef}/comments", handler.listThreads)

	router.Group(func(moderator chi.Router) {
		moderator.Use(middleware.RequirePermission(sec.PermPinThread))

		moderator.Put("/{itemRef}/comments/pin", handler.pinComment)
		moderator.Delete("/{itemRef}/comments/pin", handler.unpinComment)
	})

	return router
}

// Routes returns the endpoints addressing a single comment. Mount at /comments.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(member chi.Router) {
		member.Use(middleware.RequirePermission(sec.PermLikeComment))

		member.Post("/{commentID}/like", handler.likeComment)
		member.Delete("/{commentID}/like", handler.unlikeComment)
	})

	return router
}

// # Listing Endpoint

// listResponse is the payload of a full (non-304) listing.
type listResponse struct {
	Rendered        string    `json:"rendered"`
	Total           int       `json:"total"`
	Page            int       `json:"page"`
	PerPage         int       `json:"per_page"`
	TotalPages      int       `json:"total_pages"`
	OrderBy         OrderMode `json:"orderby"`
	LastModified    int64     `json:"last_modified"`
	PinnedCommentID int64     `json:"pinned_comment_id"`
	HasMore         bool      `json:"has_more"`
}

/*
GET /api/v1/items/{itemRef}/comments.

Description: Returns one page of threads, each fully expanded, rendered as
HTML. per_page counts threads, not replies.

Request:
  - itemRef: string (numeric ID or slug)
  - orderby: string (best, newest, oldest; anything else means best)
  - page: int
  - per_page: int
  - If-None-Match: weak validator of a previous response

Response:
  - 200: listResponse
  - 304: Validator matched, empty body
  - 404: Item not found
  - 422: Item type does not accept comments
*/
func (handler *Handler) listThreads(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request, pagination.Defaults{
		PerPage:    handler.limits.DefaultPerPage,
		MaxPerPage: handler.limits.MaxPerPage,
	})
	query := NewQuery(request.URL.Query().Get("orderby"), params.Page, params.PerPage, handler.limits)

	listing, err := handler.service.ListThreads(
		request.Context(),
		requestutil.Param(request, "itemRef"),
		query,
		request.Header.Get(constants.HeaderIfNoneMatch),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.policy.Apply(writer.Header(), listing.ETag, listing.LastModified)

	if listing.NotModified {
		respond.NotModified(writer)
		return
	}

	view := listing.View
	var lastModified int64
	if !view.LastModified.IsZero() {
		lastModified = view.LastModified.Unix()
	}

	respond.OK(writer, listResponse{
		Rendered:        listing.Rendered,
		Total:           view.Total,
		Page:            view.Page,
		PerPage:         view.PerPage,
		TotalPages:      view.TotalPages,
		OrderBy:         view.OrderMode,
		LastModified:    lastModified,
		PinnedCommentID: view.PinnedID,
		HasMore:         view.HasMore,
	})
}

// # Like Endpoints

/*
POST /api/v1/comments/{commentID}/like.

Response:
  - 200: LikeState
  - 401: Not authenticated
  - 404: Comment not found
*/
func (handler *Handler) likeComment(writer http.ResponseWriter, request *http.Request) {
	handler.toggleLike(writer, request, handler.service.Like)
}

/*
DELETE /api/v1/comments/{commentID}/like.

Response:
  - 200: LikeState
  - 401: Not authenticated
  - 404: Comment not found
*/
func (handler *Handler) unlikeComment(writer http.ResponseWriter, request *http.Request) {
	handler.toggleLike(writer, request, handler.service.Unlike)
}

// likeAction is [Service.Like] or [Service.Unlike].
type likeAction func(context context.Context, commentID int64, userID string) (*LikeState, error)

func (handler *Handler) toggleLike(writer http.ResponseWriter, request *http.Request, apply likeAction) {
	commentID, err := requestutil.PathID(request, "commentID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.CallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state, err := apply(request.Context(), commentID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, state)
}

// # Pin Endpoints

// pinRequest defines the inbound JSON schema for pinning.
type pinRequest struct {
	CommentID int64 `json:"comment_id"`
}

/*
PUT /api/v1/items/{itemRef}/comments/pin.

Description: Pins a visible top-level comment of the item, replacing any
previous pin.

Request (Body):
  - comment_id: int64

Response:
  - 204: Pinned
  - 400: Comment cannot be pinned
  - 403: Caller is not a moderator
  - 404: Item not found
*/
func (handler *Handler) pinComment(writer http.ResponseWriter, request *http.Request) {
	var body pinRequest
	if err := requestutil.DecodeBody(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	actorID, err := requestutil.CallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Pin(request.Context(), requestutil.Param(request, "itemRef"), body.CommentID, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
DELETE /api/v1/items/{itemRef}/comments/pin.

Response:
  - 204: Pin cleared (also when none was set)
  - 403: Caller is not a moderator
  - 404: Item not found
*/
func (handler *Handler) unpinComment(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.CallerID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Unpin(request.Context(), requestutil.Param(request, "itemRef"), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
