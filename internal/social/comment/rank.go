// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"sort"
)

// # Reply Ranking

// RankChildren orders every reply list of index best-first: more likes win,
// then the newer reply, then the higher ID. Top-level order has no influence.
func RankChildren(index *Index) {
	for parentID, replies := range index.children {
		if parentID == 0 || len(replies) < 2 {
			continue
		}
		sort.SliceStable(replies, func(i, j int) bool {
			return replyBefore(replies[i], replies[j])
		})
	}
}

func replyBefore(a, b *Comment) bool {
	if likesA, likesB := likesOf(a), likesOf(b); likesA != likesB {
		return likesA > likesB
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// # Thread Ranking

// AggregateFunc returns the total likes of a thread.
type AggregateFunc func(context context.Context, topLevelID int64) int64

// RankTopLevel returns a sorted copy of threads.
//
// # Orders
//
//   - [OrderNewest]: created_at desc, then ID desc.
//   - [OrderOldest]: created_at asc, then ID asc.
//   - [OrderBest] (and anything else): aggregate desc, created_at desc, ID desc.
//
// aggregateOf is only called in best mode.
func RankTopLevel(context context.Context, threads []*Comment, mode OrderMode, aggregateOf AggregateFunc) []*Comment {
	ranked := make([]*Comment, len(threads))
	copy(ranked, threads)

	var less func(a, b *Comment) bool
	switch mode {
	case OrderNewest:
		less = newerFirst
	case OrderOldest:
		less = func(a, b *Comment) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		}
	default:
		less = func(a, b *Comment) bool {
			aggregateA, aggregateB := aggregateOf(context, a.ID), aggregateOf(context, b.ID)
			if aggregateA != aggregateB {
				return aggregateA > aggregateB
			}
			return newerFirst(a, b)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func newerFirst(a, b *Comment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// # Pinning

// ApplyPin moves the pinned thread to the front of ranked, keeping the order
// of the rest. When pinnedID is 0 or not among ranked the list is returned
// unchanged with an effective pin of 0.
func ApplyPin(ranked []*Comment, pinnedID int64) ([]*Comment, int64) {
	if pinnedID <= 0 {
		return ranked, 0
	}

	position := -1
	for i, c := range ranked {
		if c.ID == pinnedID {
			position = i
			break
		}
	}
	if position < 0 {
		return ranked, 0
	}

	pinned := make([]*Comment, 0, len(ranked))
	pinned = append(pinned, ranked[position])
	pinned = append(pinned, ranked[:position]...)
	pinned = append(pinned, ranked[position+1:]...)
	return pinned, pinnedID
}
