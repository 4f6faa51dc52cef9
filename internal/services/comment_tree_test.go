package services

import (
	"testing"
	"time"

	"github.com/Abhivamsh/community-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comment(id uint, parentID *uint, createdAt time.Time) models.Comment {
	return models.Comment{
		ID:        id,
		PostID:    1,
		ParentID:  parentID,
		AuthorID:  1,
		Content:   "c",
		CreatedAt: createdAt,
	}
}

func ptr(v uint) *uint { return &v }

func countNodes(nodes []*CommentNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Replies)
	}
	return total
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	tree := BuildCommentTree(nil, nil)
	assert.NotNil(t, tree)
	assert.Len(t, tree, 0)
}

func TestBuildCommentTreeNesting(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// root(1) -> reply(2) -> reply(4); root(3)
	flat := []models.Comment{
		comment(4, ptr(2), base.Add(3*time.Minute)),
		comment(1, nil, base),
		comment(3, nil, base.Add(2*time.Minute)),
		comment(2, ptr(1), base.Add(time.Minute)),
	}

	tree := BuildCommentTree(flat, nil)
	require.Len(t, tree, 2)
	assert.Equal(t, countNodes(tree), len(flat))

	assert.Equal(t, uint(1), tree[0].ID)
	assert.Equal(t, uint(3), tree[1].ID)

	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, uint(2), tree[0].Replies[0].ID)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, uint(4), tree[0].Replies[0].Replies[0].ID)
	assert.Empty(t, tree[1].Replies)
}

func TestBuildCommentTreeRepliesOrderedByCreation(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	flat := []models.Comment{
		comment(1, nil, base),
		comment(4, ptr(1), base.Add(3*time.Minute)),
		comment(2, ptr(1), base.Add(time.Minute)),
		comment(3, ptr(1), base.Add(2*time.Minute)),
	}

	tree := BuildCommentTree(flat, nil)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 3)
	assert.Equal(t, uint(2), tree[0].Replies[0].ID)
	assert.Equal(t, uint(3), tree[0].Replies[1].ID)
	assert.Equal(t, uint(4), tree[0].Replies[2].ID)
}

func TestBuildCommentTreeOrphanBecomesRoot(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// comment 2 declares a parent that is not in the fetched set
	flat := []models.Comment{
		comment(1, nil, base),
		comment(2, ptr(99), base.Add(time.Minute)),
	}

	tree := BuildCommentTree(flat, nil)
	require.Len(t, tree, 2)
	assert.Equal(t, uint(1), tree[0].ID)
	assert.Equal(t, uint(2), tree[1].ID)
	assert.Equal(t, countNodes(tree), len(flat))
}

func TestBuildCommentTreeDeepChain(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	const depth = 200
	flat := make([]models.Comment, 0, depth)
	flat = append(flat, comment(1, nil, base))
	for i := uint(2); i <= depth; i++ {
		parent := i - 1
		flat = append(flat, comment(i, &parent, base.Add(time.Duration(i)*time.Second)))
	}

	tree := BuildCommentTree(flat, nil)
	require.Len(t, tree, 1)
	assert.Equal(t, depth, countNodes(tree))

	node := tree[0]
	for node != nil && len(node.Replies) > 0 {
		require.Len(t, node.Replies, 1)
		node = node.Replies[0]
	}
	assert.Equal(t, uint(depth), node.ID)
}

func TestBuildCommentTreeLikeCounts(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	flat := []models.Comment{
		comment(1, nil, base),
		comment(2, ptr(1), base.Add(time.Minute)),
	}
	counts := map[uint]int64{1: 3}

	tree := BuildCommentTree(flat, counts)
	require.Len(t, tree, 1)
	assert.Equal(t, int64(3), tree[0].LikeCount)
	assert.Equal(t, int64(0), tree[0].Replies[0].LikeCount)
}
