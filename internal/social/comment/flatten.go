// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

// DefaultMaxDepth bounds [Flatten] when no positive depth is given.
const DefaultMaxDepth = 64

// Node is one entry of a flattened page. Depth is 0 for thread roots.
type Node struct {
	Comment *Comment `json:"comment"`
	Depth   int      `json:"depth"`
}

// Flatten expands each thread of page in pre-order: a comment is followed by
// its replies in their ranked order, each followed by its own replies.
//
// A comment is emitted at most once and nodes deeper than maxDepth are
// dropped together with their subtrees.
func Flatten(index *Index, page []*Comment, maxDepth int) []Node {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var (
		nodes   = make([]Node, 0, len(page))
		visited = make(map[int64]bool)
	)

	var emit func(c *Comment, depth int)
	emit = func(c *Comment, depth int) {
		if depth > maxDepth || visited[c.ID] {
			return
		}
		visited[c.ID] = true
		nodes = append(nodes, Node{Comment: c, Depth: depth})

		for _, reply := range index.Children(c.ID) {
			emit(reply, depth+1)
		}
	}

	for _, root := range page {
		emit(root, 0)
	}
	return nodes
}
