// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/taibuivan/modhub/internal/core/item"
	"github.com/taibuivan/modhub/internal/platform/apperr"
	"github.com/taibuivan/modhub/internal/social/comment"
)

var base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// at returns base shifted by n minutes.
func at(n int) time.Time {
	return base.Add(time.Duration(n) * time.Minute)
}

func ids(nodes []comment.Node) []int64 {
	out := make([]int64, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.Comment.ID)
	}
	return out
}

func commentIDs(list []*comment.Comment) []int64 {
	out := make([]int64, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

// # Aggregate Cache

type fakeCache struct {
	values  map[int64]int64
	gets    int
	sets    int
	deleted []int64
	failGet bool
	failSet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[int64]int64)}
}

func (cache *fakeCache) Get(_ context.Context, id int64) (int64, bool, error) {
	cache.gets++
	if cache.failGet {
		return 0, false, errors.New("connection refused")
	}
	value, ok := cache.values[id]
	return value, ok, nil
}

func (cache *fakeCache) Set(_ context.Context, id int64, value int64) error {
	cache.sets++
	if cache.failSet {
		return errors.New("connection refused")
	}
	cache.values[id] = value
	return nil
}

func (cache *fakeCache) Delete(_ context.Context, ids ...int64) error {
	for _, id := range ids {
		delete(cache.values, id)
		cache.deleted = append(cache.deleted, id)
	}
	return nil
}

// # Repository

type fakeRepository struct {
	comments  []comment.Comment
	hidden    map[int64]bool
	pins      map[int64]int64
	likes     map[string]bool
	listCalls int
	pinReads  int
}

func newFakeRepository(comments ...comment.Comment) *fakeRepository {
	return &fakeRepository{
		comments: comments,
		hidden:   make(map[int64]bool),
		pins:     make(map[int64]int64),
		likes:    make(map[string]bool),
	}
}

func (repository *fakeRepository) ListApproved(_ context.Context, itemID int64) ([]comment.Comment, error) {
	repository.listCalls++
	var out []comment.Comment
	for _, c := range repository.comments {
		if c.ItemID == itemID && !repository.hidden[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64) (*comment.Comment, error) {
	for i := range repository.comments {
		if repository.comments[i].ID == id && !repository.hidden[id] {
			found := repository.comments[i]
			return &found, nil
		}
	}
	return nil, apperr.NotFound("Comment")
}

func (repository *fakeRepository) ThreadRootOf(ctx context.Context, id int64) (int64, error) {
	for depth := 0; depth < comment.DefaultMaxDepth; depth++ {
		found, err := repository.FindByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if found.IsTopLevel() {
			return found.ID, nil
		}
		id = found.ParentID
	}
	return 0, apperr.NotFound("Comment")
}

func (repository *fakeRepository) Like(_ context.Context, commentID int64, userID string) (bool, error) {
	key := fmt.Sprintf("%d:%s", commentID, userID)
	if repository.likes[key] {
		return false, nil
	}
	repository.likes[key] = true
	repository.bump(commentID, 1)
	return true, nil
}

func (repository *fakeRepository) Unlike(_ context.Context, commentID int64, userID string) (bool, error) {
	key := fmt.Sprintf("%d:%s", commentID, userID)
	if !repository.likes[key] {
		return false, nil
	}
	delete(repository.likes, key)
	repository.bump(commentID, -1)
	return true, nil
}

func (repository *fakeRepository) bump(commentID, delta int64) {
	for i := range repository.comments {
		if repository.comments[i].ID == commentID {
			repository.comments[i].LikeCount += delta
		}
	}
}

func (repository *fakeRepository) GetPin(_ context.Context, itemID int64) (int64, error) {
	repository.pinReads++
	return repository.pins[itemID], nil
}

func (repository *fakeRepository) SetPin(_ context.Context, itemID, commentID int64, _ string) error {
	repository.pins[itemID] = commentID
	return nil
}

func (repository *fakeRepository) ClearPin(_ context.Context, itemID int64) error {
	delete(repository.pins, itemID)
	return nil
}

// # Items

type fakeItems map[string]*item.Item

func (items fakeItems) ResolveCommentable(_ context.Context, ref string) (*item.Item, error) {
	if found, ok := items[ref]; ok {
		return found, nil
	}
	return nil, apperr.NotFound("Item")
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
