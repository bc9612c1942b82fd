// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "time"

// Index is the adjacency view of one item's comments.
//
// Children lists start in arrival order; [RankChildren] reorders them in place.
type Index struct {
	byID         map[int64]*Comment
	children     map[int64][]*Comment
	topLevel     []*Comment
	maxTimestamp time.Time
}

// NewIndex builds an [Index] in a single pass over records.
//
// Records with a non-positive ID are skipped, as are repeated IDs after the
// first. A reply whose parent is missing is still filed under that parent ID
// and is simply never reached.
func NewIndex(records []Comment) *Index {
	index := &Index{
		byID:     make(map[int64]*Comment, len(records)),
		children: make(map[int64][]*Comment),
	}

	for i := range records {
		record := records[i]
		if record.ID <= 0 {
			continue
		}
		if _, seen := index.byID[record.ID]; seen {
			continue
		}

		c := &record
		index.byID[c.ID] = c
		index.children[c.ParentID] = append(index.children[c.ParentID], c)

		if c.IsTopLevel() {
			index.topLevel = append(index.topLevel, c)
		}

		if c.CreatedAt.After(index.maxTimestamp) {
			index.maxTimestamp = c.CreatedAt
		}
	}

	return index
}

// Get returns the comment with the given ID, or nil.
func (index *Index) Get(id int64) *Comment {
	return index.byID[id]
}

// Children returns the replies filed under parentID.
func (index *Index) Children(parentID int64) []*Comment {
	if parentID == 0 {
		return nil
	}
	return index.children[parentID]
}

// TopLevel returns the thread roots in arrival order.
func (index *Index) TopLevel() []*Comment {
	return index.topLevel
}

// Len is the number of indexed comments.
func (index *Index) Len() int {
	return len(index.byID)
}

// MaxTimestamp is the newest CreatedAt seen, or the zero time when empty.
func (index *Index) MaxTimestamp() time.Time {
	return index.maxTimestamp
}

// walk visits root and every descendant reachable from it once each.
// A corrupt parent chain cannot make it loop.
func (index *Index) walk(root *Comment, visit func(*Comment)) {
	if root == nil {
		return
	}

	visited := map[int64]bool{root.ID: true}
	stack := []*Comment{root}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(current)

		for _, child := range index.Children(current.ID) {
			if !visited[child.ID] {
				visited[child.ID] = true
				stack = append(stack, child)
			}
		}
	}
}
