// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/modhub/internal/core/item"
	"github.com/taibuivan/modhub/internal/platform/apperr"
)

type fakeRepository struct {
	byID   map[int64]*item.Item
	bySlug map[string]*item.Item
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64) (*item.Item, error) {
	if found, ok := repository.byID[id]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("Item")
}

func (repository *fakeRepository) FindBySlug(_ context.Context, slug string) (*item.Item, error) {
	if found, ok := repository.bySlug[slug]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("Item")
}

func newService() *item.Service {
	mod := &item.Item{ID: 7, Slug: "better-inventory", Type: "mod", Status: item.StatusPublished}
	page := &item.Item{ID: 8, Slug: "about", Type: "page", Status: item.StatusPublished}
	draft := &item.Item{ID: 9, Slug: "wip", Type: "mod", Status: item.StatusDraft}
	numeric := &item.Item{ID: 11, Slug: "2077", Type: "mod", Status: item.StatusPublished}
	shadowed := &item.Item{ID: 12, Slug: "7", Type: "mod", Status: item.StatusPublished}

	repo := &fakeRepository{
		byID:   map[int64]*item.Item{7: mod, 8: page, 9: draft, 11: numeric, 12: shadowed},
		bySlug: map[string]*item.Item{"better-inventory": mod, "about": page, "wip": draft, "2077": numeric, "7": shadowed},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return item.NewService(repo, []string{"Mod", " post"}, logger)
}

/*
TestResolveCommentable covers ID and slug lookups and every rejection path.
*/
func TestResolveCommentable(t *testing.T) {
	service := newService()

	tests := []struct {
		name       string
		ref        string
		wantID     int64
		wantStatus int
	}{
		{name: "numeric id", ref: "7", wantID: 7},
		{name: "numeric slug without matching id", ref: "2077", wantID: 11},
		{name: "canonical slug", ref: "better-inventory", wantID: 7},
		{name: "slug is normalised", ref: "Better Inventory", wantID: 7},
		{name: "unknown id", ref: "404", wantStatus: http.StatusNotFound},
		{name: "non positive id", ref: "0", wantStatus: http.StatusNotFound},
		{name: "empty ref", ref: "  ", wantStatus: http.StatusNotFound},
		{name: "draft is hidden", ref: "9", wantStatus: http.StatusNotFound},
		{name: "type not commentable", ref: "about", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := service.ResolveCommentable(context.Background(), tt.ref)

			if tt.wantStatus != 0 {
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
				assert.Nil(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, found.ID)
		})
	}
}
