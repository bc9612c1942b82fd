// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/taibuivan/modhub/internal/platform/apperr"
	"github.com/taibuivan/modhub/pkg/slug"
)

// # Service Layer

// Service resolves item references coming from URLs.
type Service struct {
	repo         ItemRepository
	allowedTypes []string
	logger       *slog.Logger
}

// NewService constructs a [Service]. allowedTypes lists the item types that
// accept comments; matching is case-insensitive.
func NewService(repo ItemRepository, allowedTypes []string, logger *slog.Logger) *Service {
	return &Service{
		repo: repo,
		allowedTypes: lo.Map(allowedTypes, func(t string, _ int) string {
			return strings.ToLower(strings.TrimSpace(t))
		}),
		logger: logger,
	}
}

/*
ResolveCommentable finds the item behind a URL reference and checks that it
can carry comments.

Description: A reference made only of digits is tried as a primary key first
and falls back to a slug lookup when no item has that ID, so numeric slugs
stay reachable. Anything else is normalised into a slug. Items that are missing, soft-deleted or not
visible to readers are reported as not found.

Parameters:
  - context: context.Context
  - ref: string (numeric ID or slug)

Returns:
  - *Item: The commentable item
  - error: NotFound, or Unprocessable when the type does not accept comments
*/
func (service *Service) ResolveCommentable(context context.Context, ref string) (*Item, error) {
	found, err := service.lookup(context, strings.TrimSpace(ref))
	if err != nil {
		return nil, err
	}

	if !found.Status.IsVisible() {
		return nil, apperr.NotFound("Item")
	}

	if !lo.Contains(service.allowedTypes, strings.ToLower(found.Type)) {
		service.logger.Debug("item_type_not_commentable",
			slog.Int64("item_id", found.ID),
			slog.String("type", found.Type),
		)
		return nil, apperr.Unprocessable(fmt.Sprintf("Items of type %q do not accept comments", found.Type))
	}

	return found, nil
}

func (service *Service) lookup(context context.Context, ref string) (*Item, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil && id > 0 {
		found, err := service.repo.FindByID(context, id)
		if !apperr.IsNotFound(err) {
			return found, err
		}
	}

	normalised := slug.From(ref)
	if normalised == "" {
		return nil, apperr.NotFound("Item")
	}
	return service.repo.FindBySlug(context, normalised)
}
