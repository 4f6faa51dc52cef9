package services

import (
	"sort"

	"github.com/Abhivamsh/community-backend/internal/models"
)

// CommentNode is a comment plus its (recursively nested) replies
type CommentNode struct {
	models.Comment
	LikeCount int64          `json:"like_count"`
	Replies   []*CommentNode `json:"replies"`
}

// BuildCommentTree turns a flat slice of comments — the complete set for
// one post, in any order — into a forest of reply trees. It is a pure
// function over its input: no queries, linear in the number of comments
// regardless of nesting depth.
//
// First pass indexes a node per comment; second pass links each node to
// its parent, or collects it as a root when ParentID is nil. A ParentID
// that does not appear in the input (parent outside the fetched set) also
// makes the node a root rather than an error. Roots and reply lists are
// ordered by creation time ascending.
//
// likeCounts maps comment ID to like count and may be nil.
func BuildCommentTree(flat []models.Comment, likeCounts map[uint]int64) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(flat))
	for i := range flat {
		c := flat[i]
		nodes[c.ID] = &CommentNode{
			Comment:   c,
			LikeCount: likeCounts[c.ID],
			Replies:   []*CommentNode{},
		}
	}

	roots := []*CommentNode{}
	for i := range flat {
		node := nodes[flat[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	sortNodes(roots)
	for _, node := range nodes {
		sortNodes(node.Replies)
	}
	return roots
}

func sortNodes(nodes []*CommentNode) {
	sort.Slice(nodes, func(i, j int) bool {
		if !nodes[i].CreatedAt.Equal(nodes[j].CreatedAt) {
			return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
		}
		return nodes[i].ID < nodes[j].ID
	})
}
