// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"time"

	"github.com/taibuivan/modhub/pkg/pagination"
)

// RankedView is the result of one listing. It is rebuilt per request.
type RankedView struct {
	ItemID        int64
	OrderMode     OrderMode
	Page          int
	PerPage       int
	TotalTopLevel int
	TotalPages    int
	HasMore       bool
	PinnedID      int64
	Total         int
	Sequence      []Node
	LastModified  time.Time
}

// Options carries the collaborators and bounds of [Rank].
type Options struct {
	PinnedID int64
	Cache    AggregateCache
	MaxDepth int
}

/*
Rank runs the ordering pipeline over index for one query.

Description: Replies are ranked best-first, threads by the query's order mode,
the pin is moved to the front, the page is cut over threads only and each
selected thread is expanded with all of its replies. The index's reply lists
are reordered in place.

Parameters:
  - context: context.Context
  - index: *Index (snapshot of one item's approved comments)
  - query: Query
  - options: Options

Returns:
  - *RankedView: Ordering and paging result without item or cache metadata
*/
func Rank(context context.Context, index *Index, query Query, options Options) *RankedView {
	RankChildren(index)

	aggregator := NewAggregator(index, options.Cache)
	threads := RankTopLevel(context, index.TopLevel(), query.OrderMode, aggregator.ThreadAggregateOf)
	threads, pinnedID := ApplyPin(threads, options.PinnedID)

	window := pagination.Resolve(len(threads), query.Page, query.PerPage, pagination.DefaultPerPage)
	page := pagination.Slice(threads, window)

	return &RankedView{
		OrderMode:     query.OrderMode,
		Page:          window.Page,
		PerPage:       window.PerPage,
		TotalTopLevel: window.Total,
		TotalPages:    window.TotalPages,
		HasMore:       window.HasMore,
		PinnedID:      pinnedID,
		Total:         index.Len(),
		Sequence:      Flatten(index, page, options.MaxDepth),
	}
}
